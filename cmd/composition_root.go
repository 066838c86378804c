package cmd

import (
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/memory/cartstore"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/adapters/out/postgres/storerepo"
	"fulfillment/internal/adapters/out/routing"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/notifications"
	"fulfillment/internal/pkg/keymutex"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  *cartstore.Store
	orderLocks *keymutex.KeyMutex
	estimator  *services.DeliveryEstimator
	notifier   *notifications.Pool
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	routingClient, err := routing.NewClient(
		configs.RoutingAPIKey,
		routing.WithBaseURL(configs.RoutingBaseURL),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	estimator, err := services.NewDeliveryEstimator(routingClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartstore.New(),
		orderLocks: keymutex.New(),
		estimator:  estimator,
		notifier:   notifications.NewPool(0, 0, notifications.NewLogSender(logger), logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Shutdown stops the notification pool, draining queued events.
func (c *CompositionRoot) Shutdown() {
	c.notifier.Stop()
}

func (c *CompositionRoot) menuCatalog() ports.MenuCatalog {
	return menurepo.NewGormMenuRepository(c.gormDB)
}

func (c *CompositionRoot) storeCatalog() ports.StoreCatalog {
	return storerepo.NewGormStoreRepository(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartStore, c.menuCatalog())
}

func (c *CompositionRoot) CreateUpdateCartLineCommandHandler() commands.UpdateCartLineCommandHandler {
	return commands.NewUpdateCartLineCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateSetLineQuantityCommandHandler() commands.SetLineQuantityCommandHandler {
	return commands.NewSetLineQuantityCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	return commands.NewRemoveCartLineCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.cartStore,
		c.storeCatalog(),
		c.estimator,
		c.orderUoWFactory(),
		c.notifier,
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateStartPreparingCommandHandler() commands.StartPreparingCommandHandler {
	return commands.NewStartPreparingCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateStartDeliveringCommandHandler() commands.StartDeliveringCommandHandler {
	return commands.NewStartDeliveringCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.orderLocks, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.orderUoWFactory(), c.orderLocks, c.estimator)
}

func (c *CompositionRoot) CreateRefreshEtasCommandHandler() commands.RefreshEtasCommandHandler {
	return commands.NewRefreshEtasCommandHandler(c.orderUoWFactory(), c.orderLocks, c.estimator)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore)
}

func (c *CompositionRoot) CreateGetDeliveryQuoteQueryHandler() queries.GetDeliveryQuoteQueryHandler {
	return queries.NewGetDeliveryQuoteQueryHandler(c.storeCatalog(), c.estimator)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
