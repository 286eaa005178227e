package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"bitebox/internal/adapters/out/kafka"
	"bitebox/internal/adapters/out/postgres"
	"bitebox/internal/adapters/out/postgres/orderrepo"
	"bitebox/internal/adapters/out/postgres/productrepo"
	"bitebox/internal/adapters/out/postgres/restaurantrepo"
	"bitebox/internal/adapters/out/postgres/userrepo"
	"bitebox/internal/core/application/usecases/commands"
	"bitebox/internal/core/application/usecases/queries"
	"bitebox/internal/jobs"
	"bitebox/internal/notifications"
)

// notificationBufferSize bounds the dispatcher queue. Events beyond the
// buffer are dropped rather than blocking command handlers.
const notificationBufferSize = 256

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	kafkaPublisher *kafka.NotificationPublisher
	dispatcher     *notifications.Dispatcher
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	var publisher notifications.Publisher = notifications.NewLogPublisher()
	if configs.KafkaHost != "" {
		root.kafkaPublisher = kafka.NewNotificationPublisher(configs.KafkaHost, configs.KafkaNotificationsTopic)
		publisher = root.kafkaPublisher
	}
	root.dispatcher = notifications.NewDispatcher(publisher, notificationBufferSize)

	return root
}

// MigrateDatabase creates or updates the database schema.
func (c *CompositionRoot) MigrateDatabase() error {
	return c.gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
	)
}

// Shutdown drains the notification dispatcher and releases the Kafka writer.
func (c *CompositionRoot) Shutdown() {
	c.dispatcher.Stop()
	if c.kafkaPublisher != nil {
		_ = c.kafkaPublisher.Close()
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	return commands.NewUpdateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateReconcilePopularityCommandHandler() commands.ReconcilePopularityCommandHandler {
	return commands.NewReconcilePopularityCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSendOrderCommandHandler() commands.SendOrderCommandHandler {
	return commands.NewSendOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetUserByIDQueryHandler() queries.GetUserByIDQueryHandler {
	return queries.NewGetUserByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByFiltersQueryHandler() queries.GetOrdersByFiltersQueryHandler {
	return queries.NewGetOrdersByFiltersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotAcceptedOrdersQueryHandler() queries.GetNotAcceptedOrdersQueryHandler {
	return queries.NewGetNotAcceptedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	return queries.NewGetRestaurantMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOngoingOrdersQueryHandler() queries.GetRestaurantOngoingOrdersQueryHandler {
	return queries.NewGetRestaurantOngoingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantFinishedOrdersQueryHandler() queries.GetRestaurantFinishedOrdersQueryHandler {
	return queries.NewGetRestaurantFinishedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcilePopularityCommandHandler(), logger)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
