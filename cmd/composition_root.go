package cmd

import (
	"log/slog"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/sellerrepo"
	"fooddelivery/internal/core/application/availability"
	"fooddelivery/internal/core/application/notifications"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	registry   *availability.Registry
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot builds the long-lived services. publisher is expected to
// be non-blocking; callers on the request path never wait for it.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		registry: availability.NewRegistry(
			sellerrepo.NewGormAvailabilityRepository(gormDB), publisher, logger),
		dispatcher: notifications.NewDispatcher(
			notificationrepo.NewGormNotificationRepository(gormDB),
			orderrepo.NewGormOrderRepository(gormDB),
			publisher,
			logger,
		),
		logger: logger,
	}
}

func (c *CompositionRoot) Registry() *availability.Registry {
	return c.registry
}

func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dishUoWFactory() commands.DishUoWFactory {
	return FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.registry, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.dispatcher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAddDishCommandHandler() commands.AddDishCommandHandler {
	return commands.NewAddDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateSendNotificationCommandHandler() commands.SendNotificationCommandHandler {
	return commands.NewSendNotificationCommandHandler(c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateCleanupNotificationsCommandHandler() commands.CleanupNotificationsCommandHandler {
	return commands.NewCleanupNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	return commands.NewCreateAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateSetDefaultAddressCommandHandler() commands.SetDefaultAddressCommandHandler {
	return commands.NewSetDefaultAddressCommandHandler(c.addressUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListSellerOrdersQueryHandler() queries.ListSellerOrdersQueryHandler {
	return queries.NewListSellerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountUnreadNotificationsQueryHandler() queries.CountUnreadNotificationsQueryHandler {
	return queries.NewCountUnreadNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.gormDB)
}

// HTTPHandlers collects every use case the HTTP server dispatches to.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	transitionOrder := c.CreateTransitionOrderCommandHandler()
	addDish := c.CreateAddDishCommandHandler()
	sendNotification := c.CreateSendNotificationCommandHandler()
	markRead := c.CreateMarkNotificationReadCommandHandler()
	markAllRead := c.CreateMarkAllNotificationsReadCommandHandler()
	createAddress := c.CreateCreateAddressCommandHandler()
	setDefaultAddress := c.CreateSetDefaultAddressCommandHandler()

	return httpadapter.Handlers{
		CreateOrder:              &createOrder,
		TransitionOrder:          &transitionOrder,
		AddDish:                  &addDish,
		SendNotification:         &sendNotification,
		MarkNotificationRead:     &markRead,
		MarkAllNotificationsRead: &markAllRead,
		CreateAddress:            &createAddress,
		SetDefaultAddress:        &setDefaultAddress,

		GetOrder:                 c.CreateGetOrderQueryHandler(),
		ListCustomerOrders:       c.CreateListCustomerOrdersQueryHandler(),
		ListSellerOrders:         c.CreateListSellerOrdersQueryHandler(),
		ListNotifications:        c.CreateListNotificationsQueryHandler(),
		CountUnreadNotifications: c.CreateCountUnreadNotificationsQueryHandler(),
		ListAddresses:            c.CreateListAddressesQueryHandler(),
	}
}

// CreateJobManager schedules the inactivity reaper and notification cleanup.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	cleanup := c.CreateCleanupNotificationsCommandHandler()

	return jobs.NewJobManager(
		jobs.NewAvailabilityReaperJob(
			c.registry, c.config.ReaperSchedule, c.config.SellerInactivityTimeout, c.logger),
		jobs.NewNotificationCleanupJob(
			&cleanup, c.config.NotificationCleanupSchedule, c.config.ReadNotificationRetention, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
