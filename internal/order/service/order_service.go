package service

import (
	"sync"

	"atelier/internal/domain"
	"atelier/internal/order/events"
	"atelier/internal/order/migrate"
	"atelier/internal/order/notify"
	"atelier/internal/order/registry"
	"atelier/internal/order/store"

	"go.uber.org/zap"
)

// OrderStats aggregates counts by lifecycle bucket plus revenue summed over
// delivered, priced orders.
type OrderStats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalClients      int     `json:"totalClients"`
	PendingQuotes     int     `json:"pendingQuotes"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// OrderService composes the registry, order store, dispatcher and migrator
// into the public API used by UI and admin surfaces. All operations are
// serialized behind one mutex: the backing store's whole-collection
// read-modify-write cannot tolerate concurrent writers.
type OrderService struct {
	mu         sync.Mutex
	registry   *registry.ClientRegistry
	orders     *store.OrderStore
	dispatcher *notify.Dispatcher
	migrator   *migrate.Migrator
	bus        *events.Bus
	logger     *zap.Logger
}

func NewOrderService(
	reg *registry.ClientRegistry,
	orders *store.OrderStore,
	dispatcher *notify.Dispatcher,
	migrator *migrate.Migrator,
	bus *events.Bus,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		registry:   reg,
		orders:     orders,
		dispatcher: dispatcher,
		migrator:   migrator,
		bus:        bus,
		logger:     logger,
	}
}

// Initialize migrates legacy quote requests, but only when the order
// collection is empty. A populated collection is assumed already migrated or
// freshly seeded.
func (s *OrderService) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.Orders()
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return nil
	}

	migrated, err := s.migrator.Run()
	if err != nil {
		return err
	}
	if migrated > 0 {
		s.logger.Info("initialization migrated legacy data", zap.Int("orders", migrated))
	}
	return nil
}

// Bus exposes the event bus so UI layers can register listeners.
func (s *OrderService) Bus() *events.Bus {
	return s.bus
}

func (s *OrderService) CreateOrUpdateClient(input registry.ClientInput) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.CreateOrUpdate(input)
}

// CreateOrder resolves the client through the registry, records the order
// and bumps the client's order total.
func (s *OrderService) CreateOrder(client registry.ClientInput, input store.CreateOrderInput) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := s.registry.CreateOrUpdate(client)
	if err != nil {
		return nil, err
	}

	input.Client = *resolved
	order, err := s.orders.Create(input)
	if err != nil {
		return nil, err
	}

	if err := s.registry.RecordOrder(resolved.ID, 0); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) UpdateOrderStatus(orderID string, status domain.OrderStatus) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.UpdateStatus(orderID, status)
}

func (s *OrderService) AddMessage(orderID string, input store.MessageInput) (*domain.OrderMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.AddMessage(orderID, input)
}

func (s *OrderService) AddFile(orderID string, input store.FileInput) (*domain.ProjectFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.AddFile(orderID, input)
}

func (s *OrderService) AddMilestone(orderID string, input store.MilestoneInput) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.AddMilestone(orderID, input)
}

func (s *OrderService) CompleteMilestone(orderID, milestoneID string) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.CompleteMilestone(orderID, milestoneID)
}

func (s *OrderService) SetFinalPrice(orderID string, price float64, paid bool) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.SetFinalPrice(orderID, price, paid)
}

func (s *OrderService) GetOrders() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Orders()
}

func (s *OrderService) GetOrdersByClientID(clientID string) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.ByClientID(clientID)
}

func (s *OrderService) GetOrdersByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.ByStatus(status)
}

func (s *OrderService) GetClients() ([]domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Clients()
}

func (s *OrderService) GetNotifications() ([]domain.OrderNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatcher.List()
}

func (s *OrderService) GetNotificationsForRecipient(recipient domain.RecipientType) ([]domain.OrderNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatcher.ListForRecipient(recipient)
}

func (s *OrderService) MarkNotificationAsRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatcher.MarkAsRead(id)
}

// GetOrderStats derives aggregate counters over the whole order set.
func (s *OrderService) GetOrderStats() (*OrderStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.Orders()
	if err != nil {
		return nil, err
	}
	clients, err := s.registry.Clients()
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{
		TotalOrders:  len(orders),
		TotalClients: len(clients),
	}

	for _, o := range orders {
		switch o.Status {
		case domain.StatusQuoteRequested:
			stats.PendingQuotes++
		case domain.StatusProjectStarted, domain.StatusProjectInProgress, domain.StatusProjectReview:
			stats.ActiveProjects++
		case domain.StatusProjectCompleted, domain.StatusProjectDelivered:
			stats.CompletedProjects++
		}

		if o.Status == domain.StatusProjectDelivered && o.FinalPrice != nil {
			stats.TotalRevenue += *o.FinalPrice
		}
	}

	return stats, nil
}
