package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/internal/order/events"
	"atelier/internal/order/migrate"
	"atelier/internal/order/notify"
	"atelier/internal/order/registry"
	"atelier/internal/order/service"
	"atelier/internal/order/store"
	"atelier/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	backing := storage.NewMemoryStore()
	logger := zap.NewNop()
	bus := events.NewBus()
	dispatcher := notify.NewDispatcher(backing, bus, logger, 0)
	reg := registry.NewClientRegistry(backing, logger)
	orders := store.NewOrderStore(backing, dispatcher, bus, logger)
	migrator := migrate.NewMigrator(backing, reg, logger)
	svc := service.NewOrderService(reg, orders, dispatcher, migrator, bus, logger)
	ctrl := NewOrderController(svc, logger)

	r := chi.NewRouter()
	r.Post("/api/orders", ctrl.CreateOrder)
	r.Get("/api/orders", ctrl.ListOrders)
	r.Get("/api/orders/stats", ctrl.GetStats)
	r.Patch("/api/orders/{orderId}/status", ctrl.UpdateStatus)
	r.Post("/api/orders/{orderId}/messages", ctrl.AddMessage)
	r.Post("/api/orders/{orderId}/files", ctrl.AddFile)
	r.Get("/api/notifications", ctrl.ListNotifications)
	r.Post("/api/notifications/{notificationId}/read", ctrl.MarkNotificationRead)
	return r
}

const intakeBody = `{
	"clientName": "Aminata Diallo",
	"clientEmail": "aminata@example.com",
	"clientPhone": "+221 77 123 45 67",
	"title": "Site vitrine",
	"category": "Développement Web",
	"description": "Un site vitrine pour notre agence",
	"budget": "500 000 - 1 000 000 FCFA",
	"timeline": "1-2 mois"
}`

func TestCreateOrder_Created(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(intakeBody))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quote_requested"`)
	assert.Contains(t, rec.Body.String(), `"progress":5`)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"clientEmail":"a@x.com"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "title is required")
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{broken"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-missing/status", strings.NewReader(`{"status":"quote_sent"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/status", strings.NewReader(`{"status":"done"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddMessage_ValidatesSenderType(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/messages", strings.NewReader(`{"content":"hello","senderType":"robot"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "senderType")
}

func TestNotificationFlow(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(intakeBody))
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/notifications?recipient=admin", nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nouvelle demande de devis")
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/notif-missing/read", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStats_EmptyStore(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/stats", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalOrders":0`)
}
