// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and its relational shape.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Per-status timestamps are flattened to columns; frozen line items live in a
// child table keyed by order id.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreOwnerID    uuid.UUID       `gorm:"type:uuid;not null"`
	Fulfillment     string          `gorm:"type:varchar(16);not null"`
	DeliveryLat     *float64        `gorm:"type:double precision"`
	DeliveryLon     *float64        `gorm:"type:double precision"`
	Status          int             `gorm:"type:int;not null;index"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustomerNotes   string          `gorm:"type:text"`
	RejectionReason string          `gorm:"type:text"`

	PlacedAt     time.Time  `gorm:"not null"`
	AcceptedAt   *time.Time
	PreparingAt  *time.Time
	ReadyAt      *time.Time
	DeliveringAt *time.Time
	CompletedAt  *time.Time
	RejectedAt   *time.Time
	CancelledAt  *time.Time

	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	DriverLat           *float64   `gorm:"type:double precision"`
	DriverLon           *float64   `gorm:"type:double precision"`
	EstimateDistanceKm  *float64   `gorm:"type:double precision"`
	EstimateDurationMin *int       `gorm:"type:int"`

	Lines []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one frozen order line. Choice and removal ids are
// stored as Postgres text arrays; Position preserves cart order.
type LineItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null"`
	Name         string          `gorm:"type:varchar(255);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	Choices      pq.StringArray  `gorm:"type:text[]"`
	Removed      pq.StringArray  `gorm:"type:text[]"`
	Instructions string          `gorm:"type:text"`
	Position     int             `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "order_lines".
func (LineItemDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]LineItemDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, LineItemDTO{
			ID:           line.ID().Bytes(),
			OrderID:      orderID,
			MenuItemID:   line.MenuItemID().Bytes(),
			Name:         line.Name(),
			UnitPrice:    line.UnitPrice().Amount(),
			Quantity:     line.Quantity(),
			Choices:      uuidsToStrings(line.Choices()),
			Removed:      uuidsToStrings(line.Removed()),
			Instructions: line.Instructions(),
			Position:     i,
		})
	}

	dto := OrderDTO{
		ID:              orderID,
		CustomerID:      aggregate.CustomerID().Bytes(),
		StoreID:         aggregate.StoreID().Bytes(),
		StoreOwnerID:    aggregate.StoreOwnerID().Bytes(),
		Fulfillment:     aggregate.FulfillmentType().String(),
		Status:          int(aggregate.Status()),
		DeliveryFee:     aggregate.DeliveryFee().Amount(),
		CustomerNotes:   aggregate.CustomerNotes(),
		RejectionReason: aggregate.RejectionReason(),
		Lines:           lines,
	}

	if addr := aggregate.DeliveryAddress(); addr != nil {
		lat, lon := addr.Lat(), addr.Lon()
		dto.DeliveryLat = &lat
		dto.DeliveryLon = &lon
	}

	timestamps := aggregate.Timestamps()
	if at, ok := timestamps.At(order.Placed); ok {
		dto.PlacedAt = at
	}
	dto.AcceptedAt = timestampAt(timestamps, order.Accepted)
	dto.PreparingAt = timestampAt(timestamps, order.Preparing)
	dto.ReadyAt = timestampAt(timestamps, order.Ready)
	dto.DeliveringAt = timestampAt(timestamps, order.Delivering)
	dto.CompletedAt = timestampAt(timestamps, order.Completed)
	dto.RejectedAt = timestampAt(timestamps, order.Rejected)
	dto.CancelledAt = timestampAt(timestamps, order.Cancelled)

	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}
	if pos := aggregate.DriverPosition(); pos != nil {
		lat, lon := pos.Lat(), pos.Lon()
		dto.DriverLat = &lat
		dto.DriverLon = &lon
	}
	if estimate := aggregate.LiveEstimate(); estimate != nil {
		distance := estimate.DistanceKm()
		duration := estimate.DurationMin()
		dto.EstimateDistanceKm = &distance
		dto.EstimateDurationMin = &duration
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	storeOwnerID, err := kernel.UUIDFromBytes(dto.StoreOwnerID[:])
	if err != nil {
		return nil, err
	}

	fulfillment, err := kernel.FulfillmentTypeFromString(dto.Fulfillment)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := pointFromColumns(dto.DeliveryLat, dto.DeliveryLon)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	byStatus := map[order.Status]time.Time{order.Placed: dto.PlacedAt}
	putTimestamp(byStatus, order.Accepted, dto.AcceptedAt)
	putTimestamp(byStatus, order.Preparing, dto.PreparingAt)
	putTimestamp(byStatus, order.Ready, dto.ReadyAt)
	putTimestamp(byStatus, order.Delivering, dto.DeliveringAt)
	putTimestamp(byStatus, order.Completed, dto.CompletedAt)
	putTimestamp(byStatus, order.Rejected, dto.RejectedAt)
	putTimestamp(byStatus, order.Cancelled, dto.CancelledAt)
	timestamps, err := order.RestoreTimestamps(byStatus)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	driverPosition, err := pointFromColumns(dto.DriverLat, dto.DriverLon)
	if err != nil {
		return nil, err
	}

	var liveEstimate *delivery.Quote
	if dto.EstimateDistanceKm != nil && dto.EstimateDurationMin != nil {
		estimate, estErr := delivery.NewQuote(*dto.EstimateDistanceKm, *dto.EstimateDurationMin, deliveryFee)
		if estErr != nil {
			return nil, estErr
		}
		liveEstimate = &estimate
	}

	return order.RestoreOrder(
		id, customerID, storeID, storeOwnerID,
		fulfillment, deliveryAddress, lines,
		order.Status(dto.Status), deliveryFee,
		dto.CustomerNotes, dto.RejectionReason,
		timestamps, driverID, driverPosition, liveEstimate,
	)
}

func lineToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	choices, err := stringsToUUIDs(dto.Choices)
	if err != nil {
		return order.LineItem{}, err
	}
	removed, err := stringsToUUIDs(dto.Removed)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(
		id, menuItemID, dto.Name, unitPrice, dto.Quantity, choices, removed, dto.Instructions)
}

func uuidsToStrings(ids []kernel.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func stringsToUUIDs(raw pq.StringArray) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func pointFromColumns(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	p, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func timestampAt(timestamps order.Timestamps, status order.Status) *time.Time {
	if at, ok := timestamps.At(status); ok {
		return &at
	}
	return nil
}

func putTimestamp(byStatus map[order.Status]time.Time, status order.Status, at *time.Time) {
	if at != nil {
		byStatus[status] = *at
	}
}
