package storage

import (
	"testing"
	"time"

	"atelier/internal/domain"
	"atelier/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestMySQLStore_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	s := NewMySQLStore(db)
	assert.NoError(t, s.EnsureSchema())

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	err := s.SaveOrders([]domain.Order{{
		ID:        "order-1",
		ClientID:  "client-1",
		Status:    domain.StatusQuoteSent,
		Progress:  25,
		Title:     "Site vitrine",
		CreatedAt: created,
		UpdatedAt: created,
	}})
	assert.NoError(t, err)

	orders, err := s.LoadOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, domain.StatusQuoteSent, orders[0].Status)
	assert.True(t, orders[0].CreatedAt.Equal(created))

	// Saving again overwrites the whole collection.
	assert.NoError(t, s.SaveOrders([]domain.Order{}))
	orders, err = s.LoadOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestMySQLStore_IndependentCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	s := NewMySQLStore(db)
	assert.NoError(t, s.EnsureSchema())

	assert.NoError(t, s.SaveClients([]domain.Client{{ID: "client-1", Email: "a@x.com", RegisteredAt: time.Now()}}))
	assert.NoError(t, s.SaveNotifications([]domain.OrderNotification{{ID: "notif-1", Timestamp: time.Now()}}))

	orders, err := s.LoadOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)

	clients, err := s.LoadClients()
	assert.NoError(t, err)
	assert.Len(t, clients, 1)

	notifications, err := s.LoadNotifications()
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestMySQLStore_DeleteLegacyQuotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	s := NewMySQLStore(db)
	assert.NoError(t, s.EnsureSchema())

	_, err := db.Exec(
		"INSERT INTO Collections (name, payload) VALUES (?, ?) ON DUPLICATE KEY UPDATE payload = VALUES(payload)",
		CollectionLegacyQuotes, `[{"id":"l1","clientEmail":"a@x.com","status":"new"}]`,
	)
	assert.NoError(t, err)

	quotes, err := s.LoadLegacyQuotes()
	assert.NoError(t, err)
	assert.Len(t, quotes, 1)

	assert.NoError(t, s.DeleteLegacyQuotes())

	quotes, err = s.LoadLegacyQuotes()
	assert.NoError(t, err)
	assert.Empty(t, quotes)
}
