package routers

import (
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The callback route is gateway-facing and carries no bearer token; the
// fixed-window limiter is its only inbound guard.
func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.CallbackRateLimit).Post("/callback", paymentController.Callback)
}
