package server

import (
	"net/http"

	"atelier/internal/order/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(orderCtrl *controller.OrderController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.ListOrders)
			r.Post("/", orderCtrl.CreateOrder)
			r.Get("/stats", orderCtrl.GetStats)
			r.Patch("/{orderId}/status", orderCtrl.UpdateStatus)
			r.Post("/{orderId}/messages", orderCtrl.AddMessage)
			r.Post("/{orderId}/files", orderCtrl.AddFile)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", orderCtrl.ListNotifications)
			r.Post("/{notificationId}/read", orderCtrl.MarkNotificationRead)
		})
	})

	return r
}
