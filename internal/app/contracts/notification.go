package contracts

import (
	"context"
	"medilink-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	FindByReceiver(ctx context.Context, receiverID primitive.ObjectID, receiverKind string) ([]models.Notification, error)
	// ExistsForConsultationAndReceiver backs the duplicate-notification guard
	// on replayed payment callbacks.
	ExistsForConsultationAndReceiver(ctx context.Context, consultationID, receiverID primitive.ObjectID) (bool, error)
}

type NotifyInput struct {
	ReceiverID     primitive.ObjectID
	ReceiverKind   string
	DeviceToken    string
	Title          string
	Content        string
	ConsultationID *primitive.ObjectID
	// SkipIfExists suppresses the notification when one already references
	// the same consultation and receiver.
	SkipIfExists bool
}

// NotificationUsecase persists the record first, then hands delivery to the
// push pipeline. Delivery failure never propagates to the caller.
type NotificationUsecase interface {
	Notify(ctx context.Context, input *NotifyInput) (*models.Notification, error)
	ListForActor(ctx context.Context, actor *models.Actor) ([]models.Notification, error)
}
