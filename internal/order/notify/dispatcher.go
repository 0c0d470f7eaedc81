package notify

import (
	"time"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/order/events"
	"atelier/internal/storage"

	"go.uber.org/zap"
)

// DefaultRetention is the number of notifications kept before the oldest
// are dropped.
const DefaultRetention = 100

// Input is a notification before the dispatcher assigns id, timestamp and
// read flag.
type Input struct {
	OrderID       string
	RecipientType domain.RecipientType
	Kind          domain.NotificationKind
	Title         string
	Message       string
	Urgent        bool
}

// Dispatcher owns the notification collection: newest-first ordering,
// bounded retention, broadcast on creation.
type Dispatcher struct {
	store     storage.Store
	bus       *events.Bus
	logger    *zap.Logger
	retention int
}

func NewDispatcher(store storage.Store, bus *events.Bus, logger *zap.Logger, retention int) *Dispatcher {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Dispatcher{
		store:     store,
		bus:       bus,
		logger:    logger,
		retention: retention,
	}
}

// Create persists a new notification at the head of the list, truncating
// from the tail beyond the retention bound, and broadcasts the full record.
func (d *Dispatcher) Create(input Input) (*domain.OrderNotification, error) {
	notifications, err := d.store.LoadNotifications()
	if err != nil {
		return nil, err
	}

	notification := domain.OrderNotification{
		ID:            domain.NewID("notif"),
		OrderID:       input.OrderID,
		RecipientType: input.RecipientType,
		Kind:          input.Kind,
		Title:         input.Title,
		Message:       input.Message,
		Timestamp:     time.Now(),
		Read:          false,
		Urgent:        input.Urgent,
	}

	notifications = append([]domain.OrderNotification{notification}, notifications...)
	if len(notifications) > d.retention {
		notifications = notifications[:d.retention]
	}

	if err := d.store.SaveNotifications(notifications); err != nil {
		return nil, err
	}

	d.logger.Debug("notification created",
		zap.String("notificationId", notification.ID),
		zap.String("orderId", notification.OrderID),
		zap.String("recipient", string(notification.RecipientType)),
		zap.String("kind", string(notification.Kind)),
	)

	d.bus.PublishNotificationCreated(events.NotificationCreated{Notification: notification})

	return &notification, nil
}

// MarkAsRead flips the read flag in place.
func (d *Dispatcher) MarkAsRead(id string) error {
	notifications, err := d.store.LoadNotifications()
	if err != nil {
		return err
	}

	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			return d.store.SaveNotifications(notifications)
		}
	}

	return apperrors.NewNotFoundError("notification " + id + " not found")
}

// List returns all retained notifications, newest first.
func (d *Dispatcher) List() ([]domain.OrderNotification, error) {
	return d.store.LoadNotifications()
}

// ListForRecipient filters the retained notifications by recipient side.
func (d *Dispatcher) ListForRecipient(recipient domain.RecipientType) ([]domain.OrderNotification, error) {
	notifications, err := d.store.LoadNotifications()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.OrderNotification, 0, len(notifications))
	for _, n := range notifications {
		if n.RecipientType == recipient {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}
