package controller

import (
	"encoding/json"
	"net/http"

	"atelier/internal/domain"
	"atelier/internal/dto"
	apperrors "atelier/internal/errors"
	"atelier/internal/order/registry"
	"atelier/internal/order/service"
	"atelier/internal/order/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService is the façade surface the controller adapts to HTTP.
type OrderService interface {
	CreateOrder(client registry.ClientInput, input store.CreateOrderInput) (*domain.Order, error)
	UpdateOrderStatus(orderID string, status domain.OrderStatus) (*domain.Order, error)
	AddMessage(orderID string, input store.MessageInput) (*domain.OrderMessage, error)
	AddFile(orderID string, input store.FileInput) (*domain.ProjectFile, error)
	GetOrders() ([]domain.Order, error)
	GetOrdersByClientID(clientID string) ([]domain.Order, error)
	GetOrdersByStatus(status domain.OrderStatus) ([]domain.Order, error)
	GetOrderStats() (*service.OrderStats, error)
	GetNotifications() ([]domain.OrderNotification, error)
	GetNotificationsForRecipient(recipient domain.RecipientType) ([]domain.OrderNotification, error)
	MarkNotificationAsRead(id string) error
}

type OrderController struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderController(svc OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: svc,
		logger:  logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateCreateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.service.CreateOrder(
		registry.ClientInput{
			Name:    req.ClientName,
			Email:   req.ClientEmail,
			Phone:   req.ClientPhone,
			Company: req.ClientCompany,
		},
		store.CreateOrderInput{
			Type:                   domain.OrderType(req.Type),
			Title:                  req.Title,
			Category:               req.Category,
			Description:            req.Description,
			Budget:                 req.Budget,
			Timeline:               req.Timeline,
			AdditionalRequirements: req.AdditionalRequirements,
		},
	)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func (c *OrderController) validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"clientName", req.ClientName},
		{"clientEmail", req.ClientEmail},
		{"title", req.Title},
		{"category", req.Category},
		{"description", req.Description},
		{"budget", req.Budget},
		{"timeline", req.Timeline},
	}
	for _, r := range required {
		if r.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   r.field,
				Message: r.field + " is required",
			})
		}
	}

	if req.Type != "" && req.Type != string(domain.TypeQuote) && req.Type != string(domain.TypeProject) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "type",
			Message: "type must be quote or project",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.service.UpdateOrderStatus(orderID, domain.OrderStatus(req.Status))
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) AddMessage(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")

	var req dto.AddMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.Content == "" {
		details = append(details, apperrors.ValidationDetail{Field: "content", Message: "content is required"})
	}
	if req.SenderType != string(domain.SenderClient) && req.SenderType != string(domain.SenderAdmin) {
		details = append(details, apperrors.ValidationDetail{Field: "senderType", Message: "senderType must be client or admin"})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	message, err := c.service.AddMessage(orderID, store.MessageInput{
		SenderID:   req.SenderID,
		SenderType: domain.SenderType(req.SenderType),
		Content:    req.Content,
	})
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, message)
}

func (c *OrderController) AddFile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")

	var req dto.AddFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.UploadedBy != string(domain.SenderClient) && req.UploadedBy != string(domain.SenderAdmin) {
		details = append(details, apperrors.ValidationDetail{Field: "uploadedBy", Message: "uploadedBy must be client or admin"})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	file, err := c.service.AddFile(orderID, store.FileInput{
		Name:       req.Name,
		Category:   domain.FileCategory(req.Type),
		URL:        req.URL,
		Size:       req.Size,
		UploadedBy: domain.SenderType(req.UploadedBy),
	})
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, file)
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var (
		orders []domain.Order
		err    error
	)

	switch {
	case r.URL.Query().Get("clientId") != "":
		orders, err = c.service.GetOrdersByClientID(r.URL.Query().Get("clientId"))
	case r.URL.Query().Get("status") != "":
		status := domain.OrderStatus(r.URL.Query().Get("status"))
		if !domain.IsValidStatus(status) {
			c.writeValidationError(w, "unknown status", apperrors.ValidationDetail{
				Field:   "status",
				Message: "status is not a known order status",
			})
			return
		}
		orders, err = c.service.GetOrdersByStatus(status)
	default:
		orders, err = c.service.GetOrders()
	}

	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	c.writeJSON(w, http.StatusOK, orders)
}

func (c *OrderController) GetStats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	stats, err := c.service.GetOrderStats()
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, stats)
}

func (c *OrderController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var (
		notifications []domain.OrderNotification
		err           error
	)

	if recipient := r.URL.Query().Get("recipient"); recipient != "" {
		if recipient != string(domain.RecipientClient) && recipient != string(domain.RecipientAdmin) {
			c.writeValidationError(w, "unknown recipient", apperrors.ValidationDetail{
				Field:   "recipient",
				Message: "recipient must be client or admin",
			})
			return
		}
		notifications, err = c.service.GetNotificationsForRecipient(domain.RecipientType(recipient))
	} else {
		notifications, err = c.service.GetNotifications()
	}

	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	if notifications == nil {
		notifications = []domain.OrderNotification{}
	}
	c.writeJSON(w, http.StatusOK, notifications)
}

func (c *OrderController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	notificationID := chi.URLParam(r, "notificationId")

	if err := c.service.MarkNotificationAsRead(notificationID); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (c *OrderController) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsCorruptedStoreError(err); ok {
		logger.Error("corrupted store", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "CORRUPTED_STORE",
			"message": "persisted data could not be read",
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
