package notifications

import (
	"context"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	PushDispatcher         contracts.PushDispatcher
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationMongoRepository contracts.NotificationRepository,
	pushDispatcher contracts.PushDispatcher,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationMongoRepository,
			PushDispatcher:         pushDispatcher,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

// Notify persists the record first so the in-app feed never misses an event,
// then enqueues device delivery. A failed enqueue is logged and swallowed.
func (uc *notificationUsecase) Notify(ctx context.Context, input *contracts.NotifyInput) (*models.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.Notify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if input.SkipIfExists && input.ConsultationID != nil {
		exists, err := uc.NotificationRepository.ExistsForConsultationAndReceiver(ctx, *input.ConsultationID, input.ReceiverID)
		if err != nil {
			return nil, err
		}
		if exists {
			uc.Log.Info("notificationUsecase.Notify duplicate suppressed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingConsultationIDKey, input.ConsultationID.Hex()),
			)
			return nil, nil
		}
	}

	notification := &models.Notification{
		Title:          input.Title,
		Content:        input.Content,
		ReceiverID:     input.ReceiverID,
		ReceiverKind:   input.ReceiverKind,
		ConsultationID: input.ConsultationID,
	}
	notification, err := uc.NotificationRepository.Insert(ctx, notification)
	if err != nil {
		return nil, err
	}

	if input.DeviceToken == "" {
		return notification, nil
	}

	dispatch := &contracts.PushDispatch{
		NotificationID: notification.ID.Hex(),
		DeviceToken:    input.DeviceToken,
		Title:          input.Title,
		Body:           input.Content,
	}
	if err := uc.PushDispatcher.EnqueuePushDispatch(ctx, dispatch); err != nil {
		uc.Log.Error("notificationUsecase.Notify enqueue push dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notification.ID.Hex()),
			zap.Error(err),
		)
	}
	return notification, nil
}

func (uc *notificationUsecase) ListForActor(ctx context.Context, actor *models.Actor) ([]models.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.ListForActor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)

	receiverID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var receiverKind string
	switch {
	case actor.IsDoctor():
		receiverKind = constvars.ReceiverKindDoctor
	case actor.IsPatient():
		receiverKind = constvars.ReceiverKindPatient
	default:
		return nil, exceptions.ErrActorNotAuthorized(fmt.Errorf("role %s has no notification feed", actor.Role))
	}

	return uc.NotificationRepository.FindByReceiver(ctx, receiverID, receiverKind)
}
