package registry

import (
	"strings"
	"time"

	"atelier/internal/domain"
	"atelier/internal/storage"

	"go.uber.org/zap"
)

// ClientInput carries the fields a caller may supply when creating or
// updating a client. Zero-valued fields leave existing values untouched on
// merge.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// ClientRegistry owns client identity records. Email is the natural key,
// lower-cased at the boundary so lookups behave the same everywhere.
// Clients are never deleted.
type ClientRegistry struct {
	store  storage.Store
	logger *zap.Logger
}

func NewClientRegistry(store storage.Store, logger *zap.Logger) *ClientRegistry {
	return &ClientRegistry{store: store, logger: logger}
}

// NormalizeEmail lower-cases and trims an email for matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateOrUpdate finds a client by email and merges the input into it, or
// registers a new client with zeroed totals. The id never changes once
// allocated.
func (r *ClientRegistry) CreateOrUpdate(input ClientInput) (*domain.Client, error) {
	clients, err := r.store.LoadClients()
	if err != nil {
		return nil, err
	}

	email := NormalizeEmail(input.Email)

	if email != "" {
		for i := range clients {
			if NormalizeEmail(clients[i].Email) != email {
				continue
			}

			if input.Name != "" {
				clients[i].Name = input.Name
			}
			if input.Phone != "" {
				clients[i].Phone = input.Phone
			}
			if input.Company != "" {
				clients[i].Company = input.Company
			}
			clients[i].Email = email

			if err := r.store.SaveClients(clients); err != nil {
				return nil, err
			}

			r.logger.Debug("client updated", zap.String("clientId", clients[i].ID), zap.String("email", email))
			merged := clients[i]
			return &merged, nil
		}
	}

	client := domain.Client{
		ID:           domain.NewID("client"),
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		Company:      input.Company,
		RegisteredAt: time.Now(),
		TotalOrders:  0,
		TotalValue:   0,
	}

	clients = append(clients, client)
	if err := r.store.SaveClients(clients); err != nil {
		return nil, err
	}

	r.logger.Info("client registered", zap.String("clientId", client.ID), zap.String("email", email))
	return &client, nil
}

// FindByEmail returns the client matching email, or a nil client when no
// record matches.
func (r *ClientRegistry) FindByEmail(email string) (*domain.Client, error) {
	clients, err := r.store.LoadClients()
	if err != nil {
		return nil, err
	}

	normalized := NormalizeEmail(email)
	for i := range clients {
		if NormalizeEmail(clients[i].Email) == normalized {
			found := clients[i]
			return &found, nil
		}
	}
	return nil, nil
}

// Clients returns every registered client.
func (r *ClientRegistry) Clients() ([]domain.Client, error) {
	return r.store.LoadClients()
}

// RecordOrder bumps a client's running totals after an order is created or
// priced.
func (r *ClientRegistry) RecordOrder(clientID string, value float64) error {
	clients, err := r.store.LoadClients()
	if err != nil {
		return err
	}

	for i := range clients {
		if clients[i].ID == clientID {
			clients[i].TotalOrders++
			clients[i].TotalValue += value
			return r.store.SaveClients(clients)
		}
	}
	return nil
}
