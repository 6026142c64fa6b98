package push

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"context"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type pushService struct {
	Endpoint  string
	ServerKey string
	Log       *zap.Logger
	client    *http.Client
}

var (
	pushServiceInstance *pushService
	oncePushService     sync.Once
)

// NewPushService builds the HTTP sender for the device push provider.
func NewPushService(cfg *config.Push, logger *zap.Logger) contracts.PushService {
	oncePushService.Do(func() {
		timeout := time.Duration(cfg.HTTPTimeoutInSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		pushServiceInstance = &pushService{
			Endpoint:  cfg.Endpoint,
			ServerKey: cfg.ServerKey,
			Log:       logger,
			client:    &http.Client{Timeout: timeout},
		}
	})
	return pushServiceInstance
}

type pushPayload struct {
	To           string           `json:"to"`
	Notification pushNotification `json:"notification"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send posts one message to the provider. Any non-2xx status is a delivery failure.
func (s *pushService) Send(ctx context.Context, token, title, body string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("PushService.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := pushPayload{
		To:           token,
		Notification: pushNotification{Title: title, Body: body},
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "key="+s.ServerKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return exceptions.ErrPushDelivery(fmt.Errorf("push provider returned status %d", resp.StatusCode))
	}
	return nil
}
