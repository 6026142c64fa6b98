package middlewares

import (
	"context"
	"fmt"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authentication resolves the bearer token into an Actor and stores it in the
// request context. The role always comes from the token's explicit claim.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.LogSecurityEvent(m.Log, "missing_bearer_token", requestID, "warning",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		actorID, role, err := utils.ParseActorJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "token_rejected", requestID, "warning",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		switch role {
		case constvars.RoleDoctor, constvars.RolePatient, constvars.RoleAdmin:
		default:
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleClaimMissing(fmt.Errorf("unknown role %q", role)))
			return
		}

		actor := &models.Actor{ID: actorID, Role: role}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACTOR_KEY, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates the admin surface; it assumes Authentication ran first.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
		if !ok || actor == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrActorMissing(nil))
			return
		}
		if !actor.IsAdmin() {
			utils.LogSecurityEvent(m.Log, "admin_surface_denied", requestID, "warning",
				zap.String(constvars.LoggingActorIDKey, actor.ID),
				zap.String(constvars.LoggingActorRoleKey, actor.Role),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrActorNotAuthorized(fmt.Errorf("role %s cannot access the admin surface", actor.Role)))
			return
		}
		next.ServeHTTP(w, r)
	})
}
