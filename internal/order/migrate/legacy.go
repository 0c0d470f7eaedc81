package migrate

import (
	"time"

	"atelier/internal/domain"
	"atelier/internal/order/registry"
	"atelier/internal/storage"

	"go.uber.org/zap"
)

// Migrator converts the pre-split flat quote-request records into Client and
// Order records. It runs once, at initialization, and only against an empty
// order collection; the populated-store guard is the idempotency mechanism.
type Migrator struct {
	store    storage.Store
	registry *registry.ClientRegistry
	logger   *zap.Logger
}

func NewMigrator(store storage.Store, reg *registry.ClientRegistry, logger *zap.Logger) *Migrator {
	return &Migrator{store: store, registry: reg, logger: logger}
}

// Run migrates every legacy quote request, saves the resulting orders in one
// bulk write, then deletes the legacy source. Returns the number of orders
// migrated. A failure before the bulk save leaves the legacy source intact.
func (m *Migrator) Run() (int, error) {
	quotes, err := m.store.LoadLegacyQuotes()
	if err != nil {
		return 0, err
	}
	if len(quotes) == 0 {
		return 0, nil
	}

	orders := make([]domain.Order, 0, len(quotes))
	// In-batch de-dup: repeat emails within the legacy list must resolve to
	// one client, not one per record.
	seen := make(map[string]*domain.Client)

	for _, quote := range quotes {
		email := registry.NormalizeEmail(quote.ClientEmail)

		client := seen[email]
		if client == nil {
			client, err = m.registry.CreateOrUpdate(registry.ClientInput{
				Name:  quote.ClientName,
				Email: quote.ClientEmail,
				Phone: quote.ClientPhone,
			})
			if err != nil {
				return 0, err
			}
			seen[email] = client
		}

		status := domain.MapLegacyStatus(quote.Status)
		createdAt := time.Now()
		if quote.Timestamp != "" {
			if parsed, err := time.Parse(time.RFC3339, quote.Timestamp); err == nil {
				createdAt = parsed
			}
		}

		orderID := quote.ID
		if orderID == "" {
			orderID = domain.NewID("order")
		}

		orders = append(orders, domain.Order{
			ID:                     orderID,
			ClientID:               client.ID,
			Client:                 *client,
			Type:                   domain.TypeQuote,
			Status:                 status,
			Priority:               domain.PriorityMedium,
			Title:                  quote.ProjectTitle,
			Category:               quote.ProjectCategory,
			Description:            quote.ProjectDescription,
			Budget:                 quote.Budget,
			Timeline:               quote.Timeline,
			AdditionalRequirements: quote.AdditionalRequirements,
			CreatedAt:              createdAt,
			UpdatedAt:              time.Now(),
			Progress:               domain.ProgressFor(status),
			Messages:               []domain.OrderMessage{},
			Files:                  []domain.ProjectFile{},
			Milestones:             []domain.Milestone{},
		})
	}

	if err := m.store.SaveOrders(orders); err != nil {
		return 0, err
	}

	if err := m.store.DeleteLegacyQuotes(); err != nil {
		return 0, err
	}

	m.logger.Info("legacy quote requests migrated", zap.Int("orders", len(orders)), zap.Int("clients", len(seen)))
	return len(orders), nil
}
