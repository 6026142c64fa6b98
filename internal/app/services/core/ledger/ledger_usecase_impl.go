package ledger

import (
	"context"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ledgerUsecase struct {
	ConsultationRepository  contracts.ConsultationRepository
	PlatformStatsRepository contracts.PlatformStatsRepository
	Log                     *zap.Logger
}

var (
	ledgerUsecaseInstance contracts.LedgerUsecase
	onceLedgerUsecase     sync.Once
)

func NewLedgerUsecase(
	consultationMongoRepository contracts.ConsultationRepository,
	platformStatsMongoRepository contracts.PlatformStatsRepository,
	logger *zap.Logger,
) contracts.LedgerUsecase {
	onceLedgerUsecase.Do(func() {
		ledgerUsecaseInstance = &ledgerUsecase{
			ConsultationRepository:  consultationMongoRepository,
			PlatformStatsRepository: platformStatsMongoRepository,
			Log:                     logger,
		}
	})
	return ledgerUsecaseInstance
}

func (uc *ledgerUsecase) ListPendingPayouts(ctx context.Context) ([]models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ledgerUsecase.ListPendingPayouts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ConsultationRepository.FindPendingPayouts(ctx)
}

// MarkPayoutSent is conditional on the payout still being pending, so two
// admins marking the same payout cannot both succeed.
func (uc *ledgerUsecase) MarkPayoutSent(ctx context.Context, consultationID string) (*models.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ledgerUsecase.MarkPayoutSent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationIDKey, consultationID),
	)

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(fmt.Errorf("consultation %s not found", consultationID))
	}
	if consultation.PaymentDetails == nil {
		return nil, exceptions.ErrPayoutNotPending(fmt.Errorf("consultation %s has no payment", consultationID))
	}

	payoutDate := time.Now()
	updated, err := uc.ConsultationRepository.MarkPayoutSent(ctx, consultation.ID, payoutDate)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrPayoutNotPending(fmt.Errorf("payout for consultation %s is not pending", consultationID))
	}

	consultation.PaymentDetails.PayoutStatus = models.PayoutSent
	consultation.PaymentDetails.PayoutDate = &payoutDate
	return consultation, nil
}

func (uc *ledgerUsecase) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ledgerUsecase.GetPlatformStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.PlatformStatsRepository.Get(ctx)
}
