package payments

import (
	"context"
	"fmt"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	ConsultationRepository  contracts.ConsultationRepository
	DoctorRepository        contracts.DoctorRepository
	PatientRepository       contracts.PatientRepository
	PlatformStatsRepository contracts.PlatformStatsRepository
	NotificationUsecase     contracts.NotificationUsecase
	PaymentGateway          contracts.PaymentGatewayService
	Locker                  contracts.LockerService
	GatewayConfig           *config.PaymentGateway
	Log                     *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	consultationMongoRepository contracts.ConsultationRepository,
	doctorMongoRepository contracts.DoctorRepository,
	patientMongoRepository contracts.PatientRepository,
	platformStatsMongoRepository contracts.PlatformStatsRepository,
	notificationUsecase contracts.NotificationUsecase,
	paymentGatewayService contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	gatewayConfig *config.PaymentGateway,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			ConsultationRepository:  consultationMongoRepository,
			DoctorRepository:        doctorMongoRepository,
			PatientRepository:       patientMongoRepository,
			PlatformStatsRepository: platformStatsMongoRepository,
			NotificationUsecase:     notificationUsecase,
			PaymentGateway:          paymentGatewayService,
			Locker:                  lockerService,
			GatewayConfig:           gatewayConfig,
			Log:                     logger,
		}
	})
	return paymentUsecaseInstance
}

// CreateCheckout issues a hosted payment page for an accepted consultation.
// It mutates nothing locally, so the patient may retry it freely.
func (uc *paymentUsecase) CreateCheckout(ctx context.Context, actor *models.Actor, consultationID string) (*responses.CreateCheckout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}
	if !actor.IsPatient() || consultation.PatientID.Hex() != actor.ID {
		return nil, exceptions.ErrActorNotAuthorized(fmt.Errorf("only the consultation's patient may pay"))
	}
	if consultation.Status != models.ConsultationAccepted {
		return nil, exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s is %s, not accepted", consultationID, consultation.Status))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, consultation.DoctorID.Hex())
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", consultation.DoctorID.Hex()))
	}
	patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID.Hex())
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", consultation.PatientID.Hex()))
	}

	cartID := utils.GenerateCartID(consultationID)
	pageRequest := &requests.PayTabsCreatePage{
		ProfileID:       uc.GatewayConfig.ProfileID,
		TranType:        constvars.PayTabsTranTypeSale,
		TranClass:       constvars.PayTabsTranClassECom,
		CartID:          cartID,
		CartDescription: fmt.Sprintf("Consultation with %s", doctor.Name),
		CartCurrency:    uc.GatewayConfig.Currency,
		CartAmount:      doctor.ConsultationFees,
		CustomerDetails: requests.PayTabsCustomer{
			Name:  patient.Name,
			Email: patient.Email,
			Phone: patient.PhoneNumber,
		},
		Callback: uc.GatewayConfig.CallbackURL,
		Return:   uc.GatewayConfig.ReturnURL,
	}

	page, err := uc.PaymentGateway.CreateHostedPage(ctx, pageRequest)
	if err != nil {
		return nil, err
	}

	return &responses.CreateCheckout{
		PaymentURL: page.RedirectURL,
		CartID:     cartID,
	}, nil
}

// PaymentCallback applies the gateway confirmation. The per-consultation lock
// serializes retried callbacks; a replay that finds the consultation already
// paid acknowledges success without mutating anything.
func (uc *paymentUsecase) PaymentCallback(ctx context.Context, callback *requests.PaymentCallback) (*responses.PaymentCallbackAck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.PaymentCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartIDKey, callback.CartID),
		zap.String(constvars.LoggingTransactionRefKey, callback.TranRef),
	)

	consultationID, err := utils.ParseCartID(callback.CartID)
	if err != nil {
		return nil, exceptions.ErrInvalidCartID(err)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyConsultationLockFormat, consultationID)
	ttl := time.Duration(constvars.ConsultationLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrRedisLockUnavailable(fmt.Errorf("consultation %s is locked by a concurrent operation", consultationID))
	}
	defer func() {
		if err := uc.Locker.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("paymentUsecase.PaymentCallback lock release failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}

	if callback.PaymentResult.ResponseStatus != constvars.PayTabsStatusAuthorized {
		return nil, exceptions.ErrPaymentRejected(fmt.Errorf("gateway reported status %q for consultation %s", callback.PaymentResult.ResponseStatus, consultationID))
	}

	if consultation.ReachedPaid() {
		// Re-apply the idempotent follow-ups from the stored payment details:
		// a prior callback may have committed MarkPaid and then failed partway,
		// so the replay is what finishes the ledger credit, membership moves
		// and notification.
		if err := uc.convergePaidFollowUps(ctx, consultation); err != nil {
			return nil, err
		}
		uc.Log.Info("paymentUsecase.PaymentCallback replay acknowledged",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
			zap.String(constvars.LoggingTransactionRefKey, callback.TranRef),
		)
		return &responses.PaymentCallbackAck{ConsultationID: consultationID, AlreadyProcessed: true}, nil
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, consultation.DoctorID.Hex())
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", consultation.DoctorID.Hex()))
	}

	amountPaid := doctor.ConsultationFees
	platformCut, paidToDoctor := utils.SplitPayment(amountPaid)

	details := &models.PaymentDetails{
		TransactionRef: callback.TranRef,
		AmountPaid:     amountPaid,
		PlatformCut:    platformCut,
		PaidToDoctor:   paidToDoctor,
		PayoutStatus:   models.PayoutPending,
	}
	// The snapshot is the counter value before this payment; the increment
	// itself only runs once MarkPaid has committed, so a lost race can never
	// bump the counter for a payment that was not applied.
	committed, err := uc.ConsultationRepository.MarkPaid(ctx, consultation.ID, details, doctor.RespondTime)
	if err != nil {
		return nil, err
	}
	if !committed {
		// Another writer got past the status check first; treat as replay.
		return &responses.PaymentCallbackAck{ConsultationID: consultationID, AlreadyProcessed: true}, nil
	}

	if _, err := uc.DoctorRepository.IncrementRespondTime(ctx, consultation.DoctorID); err != nil {
		uc.Log.Error("paymentUsecase.PaymentCallback respond-time increment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultationIDKey, consultationID),
			zap.Error(err),
		)
	}

	if err := uc.moveMembershipsToAccepted(ctx, consultation); err != nil {
		return nil, err
	}

	if err := uc.PlatformStatsRepository.Credit(ctx, details.TransactionRef, platformCut); err != nil {
		return nil, err
	}

	uc.notifyDoctorPaid(ctx, doctor, consultation.ID)

	utils.LogBusinessEvent(uc.Log, "payment_confirmed", requestID,
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
		zap.String(constvars.LoggingTransactionRefKey, callback.TranRef),
		zap.Int64("amount_paid", amountPaid),
		zap.Int64("platform_cut", platformCut),
		zap.Int64("paid_to_doctor", paidToDoctor),
	)

	return &responses.PaymentCallbackAck{ConsultationID: consultationID, AlreadyProcessed: false}, nil
}

// moveMembershipsToAccepted shifts the ref out of both pending lists into the
// accepted-awaiting-payment lists. Every operation is a set mutation, so a
// retried follow-up converges instead of duplicating.
func (uc *paymentUsecase) moveMembershipsToAccepted(ctx context.Context, consultation *models.Consultation) error {
	if err := uc.DoctorRepository.RemoveFromPending(ctx, consultation.DoctorID, consultation.ID); err != nil {
		return err
	}
	if err := uc.DoctorRepository.AddToAccepted(ctx, consultation.DoctorID, consultation.ID); err != nil {
		return err
	}
	if err := uc.PatientRepository.RemoveFromRequested(ctx, consultation.PatientID, consultation.ID); err != nil {
		return err
	}
	return uc.PatientRepository.AddToAccepted(ctx, consultation.PatientID, consultation.ID)
}

// convergePaidFollowUps re-runs the post-commit side effects for a
// consultation that already reached paid. Every step is idempotent: the
// membership moves are set mutations (skipped entirely once the consultation
// has moved past paid), the ledger credit dedupes on the transaction ref, and
// the notification dedupes on the consultation-receiver pair. An error here
// keeps the callback failing so the gateway retries until all of them land.
func (uc *paymentUsecase) convergePaidFollowUps(ctx context.Context, consultation *models.Consultation) error {
	details := consultation.PaymentDetails
	if details == nil {
		return exceptions.ErrInvalidConsultationState(fmt.Errorf("consultation %s is %s without payment details", consultation.ID.Hex(), consultation.Status))
	}

	if consultation.Status == models.ConsultationPaid {
		if err := uc.moveMembershipsToAccepted(ctx, consultation); err != nil {
			return err
		}
	}

	if err := uc.PlatformStatsRepository.Credit(ctx, details.TransactionRef, details.PlatformCut); err != nil {
		return err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, consultation.DoctorID.Hex())
	if err != nil {
		return err
	}
	if doctor != nil {
		uc.notifyDoctorPaid(ctx, doctor, consultation.ID)
	}
	return nil
}

func (uc *paymentUsecase) notifyDoctorPaid(ctx context.Context, doctor *models.Doctor, consultationID primitive.ObjectID) {
	_, err := uc.NotificationUsecase.Notify(ctx, &contracts.NotifyInput{
		ReceiverID:     doctor.ID,
		ReceiverKind:   constvars.ReceiverKindDoctor,
		DeviceToken:    doctor.DeviceToken,
		Title:          "Payment received",
		Content:        "The consultation has been paid. You may start it now.",
		ConsultationID: &consultationID,
		SkipIfExists:   true,
	})
	if err != nil {
		uc.Log.Error("paymentUsecase doctor notification failed",
			zap.String(constvars.LoggingConsultationIDKey, consultationID.Hex()),
			zap.Error(err),
		)
	}
}
