package storage

import (
	"atelier/internal/domain"
)

// Collection names in the backing store. Each collection is persisted as a
// single serialized array under its logical name; consistency is
// whole-collection read-modify-write.
const (
	CollectionOrders        = "unified_orders"
	CollectionClients       = "unified_clients"
	CollectionNotifications = "unified_notifications"
	CollectionLegacyQuotes  = "quoteRequests"
)

// Store abstracts the persistence backend behind per-collection load/save.
// Implementations must rehydrate all date-bearing fields on load and report
// undecodable payloads as CorruptedStoreError.
type Store interface {
	LoadOrders() ([]domain.Order, error)
	SaveOrders(orders []domain.Order) error

	LoadClients() ([]domain.Client, error)
	SaveClients(clients []domain.Client) error

	LoadNotifications() ([]domain.OrderNotification, error)
	SaveNotifications(notifications []domain.OrderNotification) error

	LoadLegacyQuotes() ([]domain.LegacyQuoteRequest, error)
	DeleteLegacyQuotes() error
}
