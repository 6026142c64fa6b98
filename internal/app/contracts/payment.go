package contracts

import (
	"context"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	// CreateCheckout issues a hosted-payment-page redirect URL. Repeatable;
	// mutates nothing locally.
	CreateCheckout(ctx context.Context, actor *models.Actor, consultationID string) (*responses.CreateCheckout, error)
	// PaymentCallback applies the gateway confirmation. A replayed callback
	// returns AlreadyProcessed without re-mutating anything.
	PaymentCallback(ctx context.Context, request *requests.PaymentCallback) (*responses.PaymentCallbackAck, error)
}
