package controllers

import (
	"context"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminController exposes the settlement and operations surface. Every route
// sits behind the admin role guard.
type AdminController struct {
	Log                 *zap.Logger
	LedgerUsecase       contracts.LedgerUsecase
	ConsultationUsecase contracts.ConsultationUsecase
}

var (
	adminControllerInstance *AdminController
	onceAdminController     sync.Once
)

func NewAdminController(logger *zap.Logger, ledgerUsecase contracts.LedgerUsecase, consultationUsecase contracts.ConsultationUsecase) *AdminController {
	onceAdminController.Do(func() {
		adminControllerInstance = &AdminController{
			Log:                 logger,
			LedgerUsecase:       ledgerUsecase,
			ConsultationUsecase: consultationUsecase,
		}
	})
	return adminControllerInstance
}

func (ctrl *AdminController) PendingPayouts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payouts, err := ctrl.LedgerUsecase.ListPendingPayouts(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PendingPayoutsFetchedMessage, payouts)
}

func (ctrl *AdminController) MarkPayoutSent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	if consultationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamConsultationID))
		return
	}

	consultation, err := ctrl.LedgerUsecase.MarkPayoutSent(ctx, consultationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PayoutMarkedSentMessage, consultation)
}

func (ctrl *AdminController) PlatformStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := ctrl.LedgerUsecase.GetPlatformStats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PlatformStatsFetchedMessage, stats)
}

func (ctrl *AdminController) ResetConsultations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.LogSecurityEvent(ctrl.Log, "consultations_bulk_reset", requestID, "warning",
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
	)

	if err := ctrl.ConsultationUsecase.ResetConsultations(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationsResetMessage, nil)
}
