package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/addressrepo"
	"fooddelivery/internal/adapters/out/postgres/dishrepo"
	"fooddelivery/internal/adapters/out/postgres/notificationrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/sellerrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by this adapter, in truncate-safe order.
var Tables = []string{"orders", "dishes", "addresses", "notifications", "seller_availability"}

// Migrate creates or updates the schema for every repository in this package.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&dishrepo.DishDTO{},
		&addressrepo.AddressDTO{},
		&notificationrepo.NotificationDTO{},
		&sellerrepo.AvailabilityDTO{},
	)
}
