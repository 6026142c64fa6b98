package consultations

import (
	"context"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type consultationUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	DoctorRepository       contracts.DoctorRepository
	PatientRepository      contracts.PatientRepository
	NotificationUsecase    contracts.NotificationUsecase
	Locker                 contracts.LockerService
	Log                    *zap.Logger
}

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

func NewConsultationUsecase(
	consultationMongoRepository contracts.ConsultationRepository,
	doctorMongoRepository contracts.DoctorRepository,
	patientMongoRepository contracts.PatientRepository,
	notificationUsecase contracts.NotificationUsecase,
	lockerService contracts.LockerService,
	logger *zap.Logger,
) contracts.ConsultationUsecase {
	onceConsultationUsecase.Do(func() {
		consultationUsecaseInstance = &consultationUsecase{
			ConsultationRepository: consultationMongoRepository,
			DoctorRepository:       doctorMongoRepository,
			PatientRepository:      patientMongoRepository,
			NotificationUsecase:    notificationUsecase,
			Locker:                 lockerService,
			Log:                    logger,
		}
	})
	return consultationUsecaseInstance
}

// withConsultationLock serializes transitions on one consultation. Distinct
// consultations proceed in parallel.
func (uc *consultationUsecase) withConsultationLock(ctx context.Context, consultationID string, fn func(ctx context.Context) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := fmt.Sprintf(constvars.RedisKeyConsultationLockFormat, consultationID)
	ttl := time.Duration(constvars.ConsultationLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.Locker.TryLock(ctx, key, ttl)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrRedisLockUnavailable(fmt.Errorf("consultation %s is locked by a concurrent operation", consultationID))
	}
	defer func() {
		if err := uc.Locker.Unlock(ctx, key, lockValue); err != nil {
			uc.Log.Error("consultationUsecase lock release failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}()

	return fn(ctx)
}

func (uc *consultationUsecase) RequestConsultation(ctx context.Context, actor *models.Actor, request *requests.CreateConsultation) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.RequestConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, actor.ID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	if !actor.IsPatient() {
		return nil, exceptions.ErrActorNotAuthorized(fmt.Errorf("role %s cannot request a consultation", actor.Role))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", actor.ID))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", request.DoctorID))
	}

	consultation := &models.Consultation{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Status:    models.ConsultationRequested,
	}
	consultation, err = uc.ConsultationRepository.Create(ctx, consultation)
	if err != nil {
		return nil, err
	}

	if err := uc.DoctorRepository.AddToPending(ctx, doctor.ID, consultation.ID); err != nil {
		return nil, err
	}
	if err := uc.PatientRepository.AddToRequested(ctx, patient.ID, consultation.ID); err != nil {
		return nil, err
	}

	// No consultation ref here: the payment-received notification dedupes on
	// the consultation+receiver pair and must not be suppressed by this one.
	uc.notify(ctx, &contracts.NotifyInput{
		ReceiverID:   doctor.ID,
		ReceiverKind: constvars.ReceiverKindDoctor,
		DeviceToken:  doctor.DeviceToken,
		Title:        "New consultation request",
		Content:      fmt.Sprintf("%s has requested a consultation with you.", patient.Name),
	})

	return consultation, nil
}

// AcceptConsultation flips requested to accepted. Membership lists stay put;
// they only move once the payment is confirmed.
func (uc *consultationUsecase) AcceptConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.AcceptConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	var consultation *models.Consultation
	err := uc.withConsultationLock(ctx, consultationID, func(ctx context.Context) error {
		var err error
		consultation, err = uc.loadForParty(ctx, actor, consultationID)
		if err != nil {
			return err
		}
		if !actor.IsDoctor() || consultation.DoctorID.Hex() != actor.ID {
			return exceptions.ErrActorNotAuthorized(fmt.Errorf("only the assigned doctor may accept"))
		}

		updated, err := uc.ConsultationRepository.UpdateStatusIfCurrent(ctx, consultation.ID, models.ConsultationRequested, models.ConsultationAccepted)
		if err != nil {
			return err
		}
		if !updated {
			return exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s is not requested", consultationID))
		}
		consultation.Status = models.ConsultationAccepted

		patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID.Hex())
		if err != nil {
			return err
		}
		if patient != nil {
			uc.notify(ctx, &contracts.NotifyInput{
				ReceiverID:     patient.ID,
				ReceiverKind:   constvars.ReceiverKindPatient,
				DeviceToken:    patient.DeviceToken,
				Title:          "Consultation accepted",
				Content:        "Your consultation request was accepted. Complete the payment to continue.",
				ConsultationID: &consultation.ID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consultation, nil
}

// CancelConsultation hard-deletes a request that has not been accepted yet.
// Either party of record may cancel; the counterpart is notified.
func (uc *consultationUsecase) CancelConsultation(ctx context.Context, actor *models.Actor, consultationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.CancelConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	return uc.withConsultationLock(ctx, consultationID, func(ctx context.Context) error {
		consultation, err := uc.loadForParty(ctx, actor, consultationID)
		if err != nil {
			return err
		}
		if consultation.Status != models.ConsultationRequested {
			return exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s is already %s", consultationID, consultation.Status))
		}

		if err := uc.ConsultationRepository.Delete(ctx, consultation.ID); err != nil {
			return err
		}
		if err := uc.DoctorRepository.RemoveFromPending(ctx, consultation.DoctorID, consultation.ID); err != nil {
			return err
		}
		if err := uc.PatientRepository.RemoveFromRequested(ctx, consultation.PatientID, consultation.ID); err != nil {
			return err
		}

		uc.notifyCounterpart(ctx, actor, consultation,
			"Consultation cancelled",
			"The consultation request was cancelled before acceptance.",
		)

		uc.Log.Info("consultation cancelled and deleted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
		)
		return nil
	})
}

// StartConsultation claims both parties' ongoing slots, with the doctor's
// slot acting as the arbiter, then flips paid to ongoing.
func (uc *consultationUsecase) StartConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.StartConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	var consultation *models.Consultation
	err := uc.withConsultationLock(ctx, consultationID, func(ctx context.Context) error {
		var err error
		consultation, err = uc.loadForParty(ctx, actor, consultationID)
		if err != nil {
			return err
		}
		if !actor.IsDoctor() || consultation.DoctorID.Hex() != actor.ID {
			return exceptions.ErrActorNotAuthorized(fmt.Errorf("only the assigned doctor may start"))
		}
		if consultation.Status != models.ConsultationPaid {
			return exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s is %s, not paid", consultationID, consultation.Status))
		}

		claimed, err := uc.DoctorRepository.SetOngoing(ctx, consultation.DoctorID, consultation.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return exceptions.ErrDoctorOngoingSlotOccupied(fmt.Errorf("doctor %s already has an ongoing consultation", consultation.DoctorID.Hex()))
		}

		claimed, err = uc.PatientRepository.SetOngoing(ctx, consultation.PatientID, consultation.ID)
		if err != nil {
			uc.releaseDoctorSlot(ctx, consultation)
			return err
		}
		if !claimed {
			uc.releaseDoctorSlot(ctx, consultation)
			return exceptions.ErrInvalidConsultationState(fmt.Errorf("patient %s already has an ongoing consultation", consultation.PatientID.Hex()))
		}

		updated, err := uc.ConsultationRepository.UpdateStatusIfCurrent(ctx, consultation.ID, models.ConsultationPaid, models.ConsultationOngoing)
		if err != nil {
			uc.releaseOngoingSlots(ctx, consultation)
			return err
		}
		if !updated {
			uc.releaseOngoingSlots(ctx, consultation)
			return exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s left paid concurrently", consultationID))
		}
		consultation.Status = models.ConsultationOngoing

		if err := uc.DoctorRepository.RemoveFromAccepted(ctx, consultation.DoctorID, consultation.ID); err != nil {
			return err
		}
		if err := uc.PatientRepository.RemoveFromAccepted(ctx, consultation.PatientID, consultation.ID); err != nil {
			return err
		}

		patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID.Hex())
		if err != nil {
			return err
		}
		if patient != nil {
			uc.notify(ctx, &contracts.NotifyInput{
				ReceiverID:     patient.ID,
				ReceiverKind:   constvars.ReceiverKindPatient,
				DeviceToken:    patient.DeviceToken,
				Title:          "Consultation started",
				Content:        "Your consultation is now ongoing. You may interact with your doctor.",
				ConsultationID: &consultation.ID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consultation, nil
}

func (uc *consultationUsecase) EndConsultation(ctx context.Context, actor *models.Actor, consultationID string, request *requests.EndConsultation) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.EndConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	var consultation *models.Consultation
	err := uc.withConsultationLock(ctx, consultationID, func(ctx context.Context) error {
		var err error
		consultation, err = uc.loadForParty(ctx, actor, consultationID)
		if err != nil {
			return err
		}
		if !actor.IsDoctor() || consultation.DoctorID.Hex() != actor.ID {
			return exceptions.ErrActorNotAuthorized(fmt.Errorf("only the assigned doctor may end"))
		}

		updated, err := uc.ConsultationRepository.End(ctx, consultation.ID, request.Duration)
		if err != nil {
			return err
		}
		if !updated {
			return exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s is not ongoing", consultationID))
		}
		consultation.Status = models.ConsultationEnded
		consultation.Duration = &request.Duration

		if err := uc.DoctorRepository.ClearOngoing(ctx, consultation.DoctorID, consultation.ID); err != nil {
			return err
		}
		if err := uc.PatientRepository.ClearOngoing(ctx, consultation.PatientID, consultation.ID); err != nil {
			return err
		}
		if err := uc.DoctorRepository.AddToHistory(ctx, consultation.DoctorID, consultation.ID); err != nil {
			return err
		}
		if err := uc.PatientRepository.AddToHistory(ctx, consultation.PatientID, consultation.ID); err != nil {
			return err
		}

		patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID.Hex())
		if err != nil {
			return err
		}
		if patient != nil {
			uc.notify(ctx, &contracts.NotifyInput{
				ReceiverID:     patient.ID,
				ReceiverKind:   constvars.ReceiverKindPatient,
				DeviceToken:    patient.DeviceToken,
				Title:          "Consultation ended",
				Content:        fmt.Sprintf("Your consultation has ended after %d minutes.", request.Duration),
				ConsultationID: &consultation.ID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consultation, nil
}

func (uc *consultationUsecase) GetConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.GetConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	if actor.IsAdmin() {
		consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
		if err != nil {
			return nil, err
		}
		if consultation == nil {
			return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
		}
		return consultation, nil
	}
	return uc.loadForParty(ctx, actor, consultationID)
}

func (uc *consultationUsecase) ResetConsultations(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Warn("consultationUsecase.ResetConsultations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.ConsultationRepository.DeleteAll(ctx); err != nil {
		return err
	}
	if err := uc.DoctorRepository.ResetMemberships(ctx); err != nil {
		return err
	}
	return uc.PatientRepository.ResetMemberships(ctx)
}

// loadForParty fetches the consultation and verifies the actor is its doctor
// or patient of record.
func (uc *consultationUsecase) loadForParty(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error) {
	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}

	actorObjectID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	if !consultation.HasParty(actorObjectID) {
		return nil, exceptions.ErrNotConsultationParty(fmt.Errorf("actor %s is not a party of consultation %s", actor.ID, consultationID))
	}
	return consultation, nil
}

func (uc *consultationUsecase) releaseDoctorSlot(ctx context.Context, consultation *models.Consultation) {
	if err := uc.DoctorRepository.ClearOngoing(ctx, consultation.DoctorID, consultation.ID); err != nil {
		uc.Log.Error("consultationUsecase failed to release doctor ongoing slot",
			zap.String(constvars.LoggingConsultationIDKey, consultation.ID.Hex()),
			zap.Error(err),
		)
	}
}

// releaseOngoingSlots backs out both parties' claimed slots when a start
// transition fails after the claims succeeded; otherwise both parties would
// stay blocked from every future start.
func (uc *consultationUsecase) releaseOngoingSlots(ctx context.Context, consultation *models.Consultation) {
	uc.releaseDoctorSlot(ctx, consultation)
	if err := uc.PatientRepository.ClearOngoing(ctx, consultation.PatientID, consultation.ID); err != nil {
		uc.Log.Error("consultationUsecase failed to release patient ongoing slot",
			zap.String(constvars.LoggingConsultationIDKey, consultation.ID.Hex()),
			zap.Error(err),
		)
	}
}

// notify is fire-and-forget relative to the transition; failures are logged
// inside the notification usecase and never abort the commit.
func (uc *consultationUsecase) notify(ctx context.Context, input *contracts.NotifyInput) {
	if _, err := uc.NotificationUsecase.Notify(ctx, input); err != nil {
		uc.Log.Error("consultationUsecase notification failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *consultationUsecase) notifyCounterpart(ctx context.Context, actor *models.Actor, consultation *models.Consultation, title, content string) {
	if actor.ID == consultation.PatientID.Hex() {
		doctor, err := uc.DoctorRepository.FindByID(ctx, consultation.DoctorID.Hex())
		if err != nil || doctor == nil {
			return
		}
		uc.notify(ctx, &contracts.NotifyInput{
			ReceiverID:   doctor.ID,
			ReceiverKind: constvars.ReceiverKindDoctor,
			DeviceToken:  doctor.DeviceToken,
			Title:        title,
			Content:      content,
		})
		return
	}
	patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID.Hex())
	if err != nil || patient == nil {
		return
	}
	uc.notify(ctx, &contracts.NotifyInput{
		ReceiverID:   patient.ID,
		ReceiverKind: constvars.ReceiverKindPatient,
		DeviceToken:  patient.DeviceToken,
		Title:        title,
		Content:      content,
	})
}
