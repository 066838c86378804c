// Package menurepo persists menu items for the catalog lookups the cart
// engine performs on every add.
package menurepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting menu items.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (ItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item to its database representation.
func fromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		StoreID:   item.StoreID().Bytes(),
		Name:      item.Name(),
		Price:     item.Price().Amount(),
		Available: item.IsAvailable(),
	}
}

// toDomain converts a database DTO to a menu item via RestoreItem.
func toDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, storeID, dto.Name, price, dto.Available)
}
