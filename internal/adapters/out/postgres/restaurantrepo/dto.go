// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence, including the restaurant's menu.
package restaurantrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. The address is kept as a raw string and geocoded lazily by the
// routing query through the location cache.
type RestaurantDTO struct {
	ID      uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name    string        `gorm:"type:varchar(255);not null"`
	Address string        `gorm:"type:varchar(512);not null"`
	Menu    []MenuItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents one menu position of a restaurant.
// A restaurant lists each product at most once.
type MenuItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_menu_restaurant_product"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_menu_restaurant_product"`
	Available    bool      `gorm:"not null"`
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	restaurantID := aggregate.ID().Bytes()
	menu := make([]MenuItemDTO, 0, len(aggregate.Menu()))

	for _, item := range aggregate.Menu() {
		menu = append(menu, MenuItemDTO{
			RestaurantID: restaurantID,
			ProductID:    item.ProductID().Bytes(),
			Available:    item.Available(),
		})
	}

	return RestaurantDTO{
		ID:      restaurantID,
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Menu:    menu,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
// Reconstructs the complete aggregate including its menu using RestoreRestaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menu := make([]restaurant.MenuItem, 0, len(dto.Menu))
	for _, itemDto := range dto.Menu {
		productID, itemErr := kernel.UUIDFromBytes(itemDto.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := restaurant.NewMenuItem(productID, itemDto.Available)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Address, menu)
}
