package controllers

import (
	"context"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

var (
	notificationControllerInstance *NotificationController
	onceNotificationController     sync.Once
)

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	onceNotificationController.Do(func() {
		notificationControllerInstance = &NotificationController{
			Log:                 logger,
			NotificationUsecase: notificationUsecase,
		}
	})
	return notificationControllerInstance
}

func (ctrl *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	actor, err := utils.GetActor(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	notifications, err := ctrl.NotificationUsecase.ListForActor(ctx, actor)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationListFetchedMessage, notifications)
}
