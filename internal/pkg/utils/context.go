package utils

import (
	"context"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
)

// GetActor returns the authenticated actor placed in the context by the
// authentication middleware.
func GetActor(ctx context.Context) (*models.Actor, error) {
	actor, ok := ctx.Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor)
	if !ok || actor == nil {
		return nil, exceptions.ErrActorMissing(nil)
	}
	return actor, nil
}
