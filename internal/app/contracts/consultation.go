package contracts

import (
	"context"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/dto/requests"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error)
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	// UpdateStatusIfCurrent flips the status only when it still equals `from`;
	// a false return means another writer got there first.
	UpdateStatusIfCurrent(ctx context.Context, id primitive.ObjectID, from, to models.ConsultationStatus) (bool, error)
	// MarkPaid is the payment commit point: it sets status, payment details
	// and the respond-time snapshot in one conditional update that fails
	// (returns false) when the consultation already reached paid.
	MarkPaid(ctx context.Context, id primitive.ObjectID, details *models.PaymentDetails, respondTimeSnapshot int) (bool, error)
	// End stamps the duration while moving ongoing -> ended.
	End(ctx context.Context, id primitive.ObjectID, duration int) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
	FindPendingPayouts(ctx context.Context) ([]models.Consultation, error)
	MarkPayoutSent(ctx context.Context, id primitive.ObjectID, payoutDate time.Time) (bool, error)
}

type ConsultationUsecase interface {
	RequestConsultation(ctx context.Context, actor *models.Actor, request *requests.CreateConsultation) (*models.Consultation, error)
	AcceptConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error)
	CancelConsultation(ctx context.Context, actor *models.Actor, consultationID string) error
	StartConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error)
	EndConsultation(ctx context.Context, actor *models.Actor, consultationID string, request *requests.EndConsultation) (*models.Consultation, error)
	GetConsultation(ctx context.Context, actor *models.Actor, consultationID string) (*models.Consultation, error)
	ResetConsultations(ctx context.Context) error
}
