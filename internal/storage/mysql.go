package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

// MySQLStore persists each collection as one JSON payload row in the
// Collections table, mirroring the whole-collection write model of the
// original browser store.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// EnsureSchema creates the Collections table if it does not exist.
func (s *MySQLStore) EnsureSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS Collections (
		name VARCHAR(100) NOT NULL PRIMARY KEY,
		payload LONGTEXT NOT NULL,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating Collections table: %w", err)
	}
	return nil
}

func (s *MySQLStore) loadPayload(name string, out any) error {
	query := `SELECT payload FROM Collections WHERE name = ?`

	var payload []byte
	err := s.db.QueryRow(query, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("querying collection %s: %w", name, err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.NewCorruptedStoreError(name, err)
	}
	return nil
}

func (s *MySQLStore) savePayload(name string, in any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}

	query := `
		INSERT INTO Collections (name, payload) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload)
	`
	if _, err := s.db.Exec(query, name, payload); err != nil {
		return fmt.Errorf("saving collection %s: %w", name, err)
	}
	return nil
}

func (s *MySQLStore) LoadOrders() ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.loadPayload(CollectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MySQLStore) SaveOrders(orders []domain.Order) error {
	return s.savePayload(CollectionOrders, orders)
}

func (s *MySQLStore) LoadClients() ([]domain.Client, error) {
	var clients []domain.Client
	if err := s.loadPayload(CollectionClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *MySQLStore) SaveClients(clients []domain.Client) error {
	return s.savePayload(CollectionClients, clients)
}

func (s *MySQLStore) LoadNotifications() ([]domain.OrderNotification, error) {
	var notifications []domain.OrderNotification
	if err := s.loadPayload(CollectionNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *MySQLStore) SaveNotifications(notifications []domain.OrderNotification) error {
	return s.savePayload(CollectionNotifications, notifications)
}

func (s *MySQLStore) LoadLegacyQuotes() ([]domain.LegacyQuoteRequest, error) {
	var quotes []domain.LegacyQuoteRequest
	if err := s.loadPayload(CollectionLegacyQuotes, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *MySQLStore) DeleteLegacyQuotes() error {
	query := `DELETE FROM Collections WHERE name = ?`
	if _, err := s.db.Exec(query, CollectionLegacyQuotes); err != nil {
		return fmt.Errorf("deleting collection %s: %w", CollectionLegacyQuotes, err)
	}
	return nil
}
