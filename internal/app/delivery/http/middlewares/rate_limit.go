package middlewares

import (
	"fmt"
	"medilink-service/internal/app/services/shared/ratelimiter"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// CallbackRateLimit applies a fixed-window quota to the unauthenticated
// payment callback endpoint, keyed by the caller's address.
func (m *Middlewares) CallbackRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		out, err := m.CallbackLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      host,
			LimiterGroupName:  "payment-callback",
			WindowDurationSec: m.InternalConfig.App.CallbackLimitWindowInSeconds,
			MaxQuota:          m.InternalConfig.App.CallbackLimitMaxQuota,
		})
		if err != nil {
			// Limiter outage must not block gateway callbacks.
			m.Log.Error("callback rate limiter unavailable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}
		if !out.Allowed {
			utils.LogSecurityEvent(m.Log, "payment_callback_rate_limited", requestID, "warning",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Int("retry_after_secs", out.RetryAfterSecs),
			)
			w.Header().Set("Retry-After", strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrGatewayCallbackRateLimited(fmt.Errorf("quota exceeded for %s", host)))
			return
		}
		next.ServeHTTP(w, r)
	})
}
