package events

import (
	"sync"

	"atelier/internal/domain"
)

// StatusChanged is published exactly once per successful status update,
// never on a not-found update.
type StatusChanged struct {
	OrderID   string
	OldStatus domain.OrderStatus
	NewStatus domain.OrderStatus
	Order     domain.Order
}

// NotificationCreated carries the full notification record.
type NotificationCreated struct {
	Notification domain.OrderNotification
}

// Bus delivers order events synchronously and in-process to registered
// listeners. Delivery is fire-and-forget: no retry, no persistence of the
// event itself.
type Bus struct {
	mu              sync.Mutex
	statusListeners []func(StatusChanged)
	notifListeners  []func(NotificationCreated)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeStatusChanged(fn func(StatusChanged)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statusListeners = append(b.statusListeners, fn)
}

func (b *Bus) SubscribeNotificationCreated(fn func(NotificationCreated)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifListeners = append(b.notifListeners, fn)
}

func (b *Bus) PublishStatusChanged(event StatusChanged) {
	b.mu.Lock()
	listeners := make([]func(StatusChanged), len(b.statusListeners))
	copy(listeners, b.statusListeners)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}

func (b *Bus) PublishNotificationCreated(event NotificationCreated) {
	b.mu.Lock()
	listeners := make([]func(NotificationCreated), len(b.notifListeners))
	copy(listeners, b.notifListeners)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}
