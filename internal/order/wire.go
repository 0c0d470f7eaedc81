package order

import (
	"database/sql"

	"atelier/internal/config"
	"atelier/internal/order/controller"
	"atelier/internal/order/events"
	"atelier/internal/order/migrate"
	"atelier/internal/order/notify"
	"atelier/internal/order/registry"
	"atelier/internal/order/service"
	"atelier/internal/order/store"
	"atelier/internal/storage"

	"go.uber.org/zap"
)

// Module bundles the assembled façade and its HTTP controller.
type Module struct {
	Service    *service.OrderService
	Controller *controller.OrderController
}

// NewModule wires the order engine on top of a MySQL-backed store.
func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) (*Module, error) {
	backing := storage.NewMySQLStore(db)
	if err := backing.EnsureSchema(); err != nil {
		return nil, err
	}
	return NewModuleWithStore(backing, cfg, logger), nil
}

// NewModuleWithStore wires the order engine on any Store implementation.
// Tests and single-binary demos pass a MemoryStore.
func NewModuleWithStore(backing storage.Store, cfg *config.Config, logger *zap.Logger) *Module {
	bus := events.NewBus()
	dispatcher := notify.NewDispatcher(backing, bus, logger, cfg.Notification.Retention)
	reg := registry.NewClientRegistry(backing, logger)
	orders := store.NewOrderStore(backing, dispatcher, bus, logger)
	migrator := migrate.NewMigrator(backing, reg, logger)

	svc := service.NewOrderService(reg, orders, dispatcher, migrator, bus, logger)

	return &Module{
		Service:    svc,
		Controller: controller.NewOrderController(svc, logger),
	}
}
