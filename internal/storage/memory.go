package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

// MemoryStore keeps collections as serialized JSON payloads in memory. It
// goes through the same encode/decode cycle as the MySQL store so tests
// exercise serialization, including date rehydration.
type MemoryStore struct {
	mu       sync.Mutex
	payloads map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{payloads: make(map[string][]byte)}
}

// SeedPayload installs a raw payload under a collection name. Tests use it
// to stage legacy data or corrupted content.
func (s *MemoryStore) SeedPayload(name string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[name] = payload
}

// HasPayload reports whether a collection currently holds a payload.
func (s *MemoryStore) HasPayload(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.payloads[name]
	return ok
}

func (s *MemoryStore) loadPayload(name string, out any) error {
	s.mu.Lock()
	payload, ok := s.payloads[name]
	s.mu.Unlock()

	if !ok {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.NewCorruptedStoreError(name, err)
	}
	return nil
}

func (s *MemoryStore) savePayload(name string, in any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}

	s.mu.Lock()
	s.payloads[name] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadOrders() ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.loadPayload(CollectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MemoryStore) SaveOrders(orders []domain.Order) error {
	return s.savePayload(CollectionOrders, orders)
}

func (s *MemoryStore) LoadClients() ([]domain.Client, error) {
	var clients []domain.Client
	if err := s.loadPayload(CollectionClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *MemoryStore) SaveClients(clients []domain.Client) error {
	return s.savePayload(CollectionClients, clients)
}

func (s *MemoryStore) LoadNotifications() ([]domain.OrderNotification, error) {
	var notifications []domain.OrderNotification
	if err := s.loadPayload(CollectionNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *MemoryStore) SaveNotifications(notifications []domain.OrderNotification) error {
	return s.savePayload(CollectionNotifications, notifications)
}

func (s *MemoryStore) LoadLegacyQuotes() ([]domain.LegacyQuoteRequest, error) {
	var quotes []domain.LegacyQuoteRequest
	if err := s.loadPayload(CollectionLegacyQuotes, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *MemoryStore) DeleteLegacyQuotes() error {
	s.mu.Lock()
	delete(s.payloads, CollectionLegacyQuotes)
	s.mu.Unlock()
	return nil
}
