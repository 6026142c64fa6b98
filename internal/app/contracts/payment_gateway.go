package contracts

import (
	"context"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateHostedPage(ctx context.Context, request *requests.PayTabsCreatePage) (*responses.PayTabsCreatePage, error)
}
