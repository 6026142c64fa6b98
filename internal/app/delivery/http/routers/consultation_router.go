package routers

import (
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *controllers.ConsultationController, paymentController *controllers.PaymentController) {
	router.Use(middlewares.Authentication)

	router.Post("/", consultationController.Request)
	router.Get("/{consultationID}", consultationController.Get)
	router.Put("/{consultationID}/accept", consultationController.Accept)
	router.Put("/{consultationID}/cancel", consultationController.Cancel)
	router.Post("/{consultationID}/pay", paymentController.CreateCheckout)
	router.Put("/{consultationID}/start", consultationController.Start)
	router.Put("/{consultationID}/end", consultationController.End)
}
