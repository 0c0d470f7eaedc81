package store

import (
	"fmt"
	"time"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/order/events"
	"atelier/internal/order/notify"
	"atelier/internal/storage"

	"go.uber.org/zap"
)

// Notifier produces addressed notification records as a side effect of
// order mutations.
type Notifier interface {
	Create(input notify.Input) (*domain.OrderNotification, error)
}

// EventPublisher announces successful status updates to in-process
// listeners.
type EventPublisher interface {
	PublishStatusChanged(event events.StatusChanged)
}

// CreateOrderInput is the intake data for a new order. Client must already
// be resolved through the registry.
type CreateOrderInput struct {
	Client                 domain.Client
	Type                   domain.OrderType
	Title                  string
	Category               string
	Description            string
	Budget                 string
	Timeline               string
	AdditionalRequirements string
}

// MessageInput is a message before the store assigns id, timestamp and read
// flag.
type MessageInput struct {
	SenderID    string
	SenderType  domain.SenderType
	Content     string
	Attachments []domain.ProjectFile
}

// FileInput is a file record before the store assigns id and upload time.
type FileInput struct {
	Name       string
	Category   domain.FileCategory
	URL        string
	Size       int64
	UploadedBy domain.SenderType
}

// MilestoneInput is a planned sub-deliverable of an order.
type MilestoneInput struct {
	Title       string
	Description string
	DueDate     time.Time
}

// OrderStore owns order records and their embedded messages, files and
// milestones. Progress is always recomputed from status, never set
// directly.
type OrderStore struct {
	store    storage.Store
	notifier Notifier
	bus      EventPublisher
	logger   *zap.Logger
}

func NewOrderStore(store storage.Store, notifier Notifier, bus EventPublisher, logger *zap.Logger) *OrderStore {
	return &OrderStore{
		store:    store,
		notifier: notifier,
		bus:      bus,
		logger:   logger,
	}
}

// Create appends a new order in quote_requested state and notifies the
// admin side of the new quote request.
func (s *OrderStore) Create(input CreateOrderInput) (*domain.Order, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orderType := input.Type
	if orderType == "" {
		orderType = domain.TypeQuote
	}

	order := domain.Order{
		ID:                     domain.NewID("order"),
		ClientID:               input.Client.ID,
		Client:                 input.Client,
		Type:                   orderType,
		Status:                 domain.StatusQuoteRequested,
		Priority:               domain.PriorityMedium,
		Title:                  input.Title,
		Category:               input.Category,
		Description:            input.Description,
		Budget:                 input.Budget,
		Timeline:               input.Timeline,
		AdditionalRequirements: input.AdditionalRequirements,
		CreatedAt:              now,
		UpdatedAt:              now,
		Progress:               domain.ProgressFor(domain.StatusQuoteRequested),
		Messages:               []domain.OrderMessage{},
		Files:                  []domain.ProjectFile{},
		Milestones:             []domain.Milestone{},
	}

	orders = append(orders, order)
	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("clientId", order.ClientID),
		zap.String("title", order.Title),
	)

	_, err = s.notifier.Create(notify.Input{
		OrderID:       order.ID,
		RecipientType: domain.RecipientAdmin,
		Kind:          domain.NotifStatusChange,
		Title:         "Nouvelle demande de devis",
		Message:       fmt.Sprintf("%s a demandé un devis pour %q", order.Client.Name, order.Title),
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func validateCreateInput(input CreateOrderInput) error {
	var details []apperrors.ValidationDetail

	if input.Client.ID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "client", Message: "client must be resolved before creating an order"})
	}
	required := []struct {
		field string
		value string
	}{
		{"title", input.Title},
		{"category", input.Category},
		{"description", input.Description},
		{"budget", input.Budget},
		{"timeline", input.Timeline},
	}
	for _, r := range required {
		if r.value == "" {
			details = append(details, apperrors.ValidationDetail{Field: r.field, Message: r.field + " is required"})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

// UpdateStatus moves an order to newStatus, recomputes progress from the
// fixed table, notifies the client side and publishes a StatusChanged event
// exactly once. Unknown order ids return NotFoundError with no notification
// and no event.
func (s *OrderStore) UpdateStatus(orderID string, newStatus domain.OrderStatus) (*domain.Order, error) {
	if !domain.IsValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("unknown status", apperrors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("%q is not a known order status", newStatus),
		})
	}

	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	idx := findOrder(orders, orderID)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	oldStatus := orders[idx].Status
	if !domain.CanTransition(oldStatus, newStatus) {
		s.logger.Warn("off-graph status transition",
			zap.String("orderId", orderID),
			zap.String("from", string(oldStatus)),
			zap.String("to", string(newStatus)),
		)
	}

	orders[idx].Status = newStatus
	orders[idx].Progress = domain.ProgressFor(newStatus)
	orders[idx].UpdatedAt = time.Now()

	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	updated := orders[idx]
	s.logger.Info("order status updated",
		zap.String("orderId", orderID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)),
		zap.Int("progress", updated.Progress),
	)

	_, err = s.notifier.Create(notify.Input{
		OrderID:       orderID,
		RecipientType: domain.RecipientClient,
		Kind:          domain.NotifStatusChange,
		Title:         "Mise à jour de votre projet",
		Message:       domain.StatusAnnouncement(newStatus),
		Urgent:        domain.UrgentStatus(newStatus),
	})
	if err != nil {
		return nil, err
	}

	s.bus.PublishStatusChanged(events.StatusChanged{
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Order:     updated,
	})

	return &updated, nil
}

// AddMessage appends a message to an order and notifies the opposite party.
func (s *OrderStore) AddMessage(orderID string, input MessageInput) (*domain.OrderMessage, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	idx := findOrder(orders, orderID)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	message := domain.OrderMessage{
		ID:          domain.NewID("msg"),
		OrderID:     orderID,
		SenderID:    input.SenderID,
		SenderType:  input.SenderType,
		Content:     input.Content,
		Attachments: input.Attachments,
		Timestamp:   time.Now(),
		Read:        false,
	}

	orders[idx].Messages = append(orders[idx].Messages, message)
	orders[idx].UpdatedAt = time.Now()

	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	recipient := domain.RecipientClient
	body := "L'équipe vous a envoyé un message"
	if input.SenderType == domain.SenderClient {
		recipient = domain.RecipientAdmin
		body = "Le client vous a envoyé un message"
	}

	_, err = s.notifier.Create(notify.Input{
		OrderID:       orderID,
		RecipientType: recipient,
		Kind:          domain.NotifNewMessage,
		Title:         "Nouveau message",
		Message:       body,
	})
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// AddFile appends a file record to an order and notifies the party opposite
// to the uploader.
func (s *OrderStore) AddFile(orderID string, input FileInput) (*domain.ProjectFile, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	idx := findOrder(orders, orderID)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	category := input.Category
	if category == "" {
		category = domain.FileOther
	}

	file := domain.ProjectFile{
		ID:         domain.NewID("file"),
		OrderID:    orderID,
		Name:       input.Name,
		Category:   category,
		URL:        input.URL,
		Size:       input.Size,
		UploadedBy: input.UploadedBy,
		UploadedAt: time.Now(),
	}

	orders[idx].Files = append(orders[idx].Files, file)
	orders[idx].UpdatedAt = time.Now()

	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	recipient := domain.RecipientClient
	if input.UploadedBy == domain.SenderClient {
		recipient = domain.RecipientAdmin
	}

	_, err = s.notifier.Create(notify.Input{
		OrderID:       orderID,
		RecipientType: recipient,
		Kind:          domain.NotifNewFile,
		Title:         "Nouveau fichier",
		Message:       fmt.Sprintf("Un nouveau fichier %q a été ajouté", file.Name),
	})
	if err != nil {
		return nil, err
	}

	return &file, nil
}

// AddMilestone appends a planned milestone at the next ordinal position.
// No notification is emitted until the milestone completes.
func (s *OrderStore) AddMilestone(orderID string, input MilestoneInput) (*domain.Milestone, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	idx := findOrder(orders, orderID)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	milestone := domain.Milestone{
		ID:          domain.NewID("milestone"),
		OrderID:     orderID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Position:    len(orders[idx].Milestones) + 1,
	}

	orders[idx].Milestones = append(orders[idx].Milestones, milestone)
	orders[idx].UpdatedAt = time.Now()

	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	return &milestone, nil
}

// CompleteMilestone marks a milestone done and notifies the client.
func (s *OrderStore) CompleteMilestone(orderID, milestoneID string) (*domain.Milestone, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	idx := findOrder(orders, orderID)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	var completed *domain.Milestone
	for i := range orders[idx].Milestones {
		if orders[idx].Milestones[i].ID == milestoneID {
			now := time.Now()
			orders[idx].Milestones[i].Completed = true
			orders[idx].Milestones[i].CompletedAt = &now
			completed = &orders[idx].Milestones[i]
			break
		}
	}
	if completed == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("milestone %s not found on order %s", milestoneID, orderID))
	}

	orders[idx].UpdatedAt = time.Now()
	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	_, err = s.notifier.Create(notify.Input{
		OrderID:       orderID,
		RecipientType: domain.RecipientClient,
		Kind:          domain.NotifMilestoneCompleted,
		Title:         "Jalon terminé",
		Message:       fmt.Sprintf("Le jalon %q a été complété", completed.Title),
	})
	if err != nil {
		return nil, err
	}

	result := *completed
	return &result, nil
}

// SetFinalPrice records the agreed price and paid flag on a delivered or
// completed order.
func (s *OrderStore) SetFinalPrice(orderID string, price float64, paid bool) (*domain.Order, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	idx := findOrder(orders, orderID)
	if idx == -1 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	orders[idx].FinalPrice = &price
	orders[idx].Paid = paid
	orders[idx].UpdatedAt = time.Now()

	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	updated := orders[idx]
	return &updated, nil
}

// Orders returns every persisted order.
func (s *OrderStore) Orders() ([]domain.Order, error) {
	return s.store.LoadOrders()
}

// ByClientID returns the orders owned by a client.
func (s *OrderStore) ByClientID(clientID string) ([]domain.Order, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.ClientID == clientID {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// ByStatus returns the orders currently in status.
func (s *OrderStore) ByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	orders, err := s.store.LoadOrders()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func findOrder(orders []domain.Order, orderID string) int {
	for i := range orders {
		if orders[i].ID == orderID {
			return i
		}
	}
	return -1
}
