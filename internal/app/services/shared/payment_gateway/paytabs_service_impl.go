package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	payTabsServiceInstance contracts.PaymentGatewayService
	oncePayTabsService     sync.Once
)

type payTabsService struct {
	BaseUrl   string
	ProfileID int
	ServerKey string
	Log       *zap.Logger
	client    *http.Client
	limiter   *rate.Limiter
}

func NewPayTabsService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	oncePayTabsService.Do(func() {
		rps := internalConfig.PaymentGateway.MaxRequestsPerSecond
		if rps <= 0 {
			rps = 1
		}
		instance := &payTabsService{
			BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
			ProfileID: internalConfig.PaymentGateway.ProfileID,
			ServerKey: internalConfig.PaymentGateway.ServerKey,
			Log:       logger,
			client:    &http.Client{Timeout: 15 * time.Second},
			limiter:   rate.NewLimiter(rate.Limit(rps), rps),
		}
		payTabsServiceInstance = instance
	})
	return payTabsServiceInstance
}

// CreateHostedPage asks the gateway for a hosted payment page and returns its
// redirect URL. Gateway failures are surfaced as retryable errors; nothing is
// persisted here.
func (s *payTabsService) CreateHostedPage(ctx context.Context, request *requests.PayTabsCreatePage) (*responses.PayTabsCreatePage, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("payTabsService.CreateHostedPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartIDKey, request.CartID),
	)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrPaymentGatewayUnavailable(err)
	}

	request.ProfileID = s.ProfileID
	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/payment/request", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpReq.Header.Set(constvars.HeaderAuthorization, s.ServerKey)

	httpResp, err := s.client.Do(httpReq)
	if err != nil {
		s.Log.Error("payTabsService.CreateHostedPage request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGatewayUnavailable(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		err := fmt.Errorf("gateway returned status %d", httpResp.StatusCode)
		s.Log.Error("payTabsService.CreateHostedPage non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, httpResp.StatusCode),
		)
		return nil, exceptions.ErrPaymentGatewayUnavailable(err)
	}

	response := new(responses.PayTabsCreatePage)
	if err := json.NewDecoder(httpResp.Body).Decode(response); err != nil {
		return nil, exceptions.ErrPaymentGatewayBadResponse(err)
	}
	if response.RedirectURL == "" {
		return nil, exceptions.ErrPaymentGatewayBadResponse(fmt.Errorf("redirect_url missing from gateway response"))
	}

	s.Log.Info("payTabsService.CreateHostedPage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartIDKey, request.CartID),
		zap.String(constvars.LoggingTransactionRefKey, response.TranRef),
	)
	return response, nil
}
