package routers

import (
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.Use(middlewares.Authentication)
	router.Use(middlewares.RequireAdmin)

	router.Get("/payouts/pending", adminController.PendingPayouts)
	router.Put("/payouts/{consultationID}/sent", adminController.MarkPayoutSent)
	router.Get("/stats", adminController.PlatformStats)
	router.Delete("/consultations", adminController.ResetConsultations)
}
