package contracts

import (
	"context"
	"medilink-service/internal/app/models"
)

// PlatformStatsRepository owns the singleton counters. Credit is keyed by the
// gateway transaction ref and applies at most once per ref, so replayed
// callbacks can call it again safely.
type PlatformStatsRepository interface {
	Credit(ctx context.Context, transactionRef string, platformCut int64) error
	Get(ctx context.Context) (*models.PlatformStats, error)
}

type LedgerUsecase interface {
	ListPendingPayouts(ctx context.Context) ([]models.Consultation, error)
	MarkPayoutSent(ctx context.Context, consultationID string) (*models.Consultation, error)
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
}
