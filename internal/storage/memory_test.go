package storage

import (
	"testing"
	"time"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_EmptyCollections(t *testing.T) {
	s := NewMemoryStore()

	orders, err := s.LoadOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)

	clients, err := s.LoadClients()
	assert.NoError(t, err)
	assert.Empty(t, clients)

	notifications, err := s.LoadNotifications()
	assert.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestMemoryStore_OrderRoundTripRehydratesDates(t *testing.T) {
	s := NewMemoryStore()

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	due := created.AddDate(0, 1, 0)

	err := s.SaveOrders([]domain.Order{{
		ID:        "order-1",
		Status:    domain.StatusQuoteRequested,
		CreatedAt: created,
		UpdatedAt: created,
		DueDate:   &due,
		Messages: []domain.OrderMessage{{
			ID:        "msg-1",
			OrderID:   "order-1",
			Timestamp: created,
		}},
		Files: []domain.ProjectFile{{
			ID:         "file-1",
			OrderID:    "order-1",
			UploadedAt: created,
		}},
		Milestones: []domain.Milestone{{
			ID:      "milestone-1",
			OrderID: "order-1",
			DueDate: due,
		}},
	}})
	assert.NoError(t, err)

	orders, err := s.LoadOrders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	assert.True(t, orders[0].CreatedAt.Equal(created))
	assert.NotNil(t, orders[0].DueDate)
	assert.True(t, orders[0].DueDate.Equal(due))
	assert.True(t, orders[0].Messages[0].Timestamp.Equal(created))
	assert.True(t, orders[0].Files[0].UploadedAt.Equal(created))
	assert.True(t, orders[0].Milestones[0].DueDate.Equal(due))
}

func TestMemoryStore_CorruptedPayload(t *testing.T) {
	s := NewMemoryStore()
	s.SeedPayload(CollectionOrders, []byte("{not json"))

	_, err := s.LoadOrders()
	cse, ok := apperrors.IsCorruptedStoreError(err)
	assert.True(t, ok)
	assert.Equal(t, CollectionOrders, cse.Collection)
}

func TestMemoryStore_DeleteLegacyQuotes(t *testing.T) {
	s := NewMemoryStore()
	s.SeedPayload(CollectionLegacyQuotes, []byte(`[{"id":"l1","status":"new"}]`))

	quotes, err := s.LoadLegacyQuotes()
	assert.NoError(t, err)
	assert.Len(t, quotes, 1)

	assert.NoError(t, s.DeleteLegacyQuotes())
	assert.False(t, s.HasPayload(CollectionLegacyQuotes))

	quotes, err = s.LoadLegacyQuotes()
	assert.NoError(t, err)
	assert.Empty(t, quotes)
}
