package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order straight from the database, bypassing
// the aggregate. The projection recomputes subtotal and total from the
// frozen lines the same way the aggregate does.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError for an unknown
// order id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, subtotal, err := h.readLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lines
	response.Subtotal = subtotal

	total, err := subtotal.Add(response.DeliveryFee)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Total = total

	return response, nil
}

func (h GetOrderQueryHandler) readHeader(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			store_id,
			fulfillment,
			status,
			delivery_fee,
			customer_notes,
			rejection_reason,
			placed_at,
			driver_lat,
			driver_lon,
			estimate_distance_km,
			estimate_duration_min
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var (
		id, customerID, storeID        uuid.UUID
		fulfillment                    string
		status                         int
		deliveryFee                    decimal.Decimal
		customerNotes, rejectionReason string
		placedAt                       time.Time
		driverLat, driverLon           *float64
		estimateDistance               *float64
		estimateDuration               *int
	)
	if err = rows.Scan(
		&id, &customerID, &storeID,
		&fulfillment, &status, &deliveryFee,
		&customerNotes, &rejectionReason, &placedAt,
		&driverLat, &driverLon, &estimateDistance, &estimateDuration,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		Status:          order.Status(status),
		CustomerNotes:   customerNotes,
		RejectionReason: rejectionReason,
		PlacedAt:        placedAt,
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Fulfillment, err = kernel.FulfillmentTypeFromString(fulfillment); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if driverLat != nil && driverLon != nil {
		position, posErr := kernel.NewGeoPoint(*driverLat, *driverLon)
		if posErr != nil {
			return GetOrderQueryResponse{}, posErr
		}
		response.Driver = &DriverStateResponse{
			Position:            &position,
			EstimateDistanceKm:  estimateDistance,
			EstimateDurationMin: estimateDuration,
		}
	}

	return response, nil
}

func (h GetOrderQueryHandler) readLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, kernel.Money, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price,
			quantity,
			instructions
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, kernel.Money{}, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	subtotal := kernel.ZeroMoney()

	for rows.Next() {
		var (
			menuItemID   uuid.UUID
			name         string
			unitPrice    decimal.Decimal
			quantity     int
			instructions string
		)
		if err = rows.Scan(&menuItemID, &name, &unitPrice, &quantity, &instructions); err != nil {
			return nil, kernel.Money{}, err
		}

		line := OrderLineResponse{
			Name:         name,
			Quantity:     quantity,
			Instructions: instructions,
		}
		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, kernel.Money{}, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, kernel.Money{}, err
		}

		lineTotal, totalErr := line.UnitPrice.MulInt(quantity)
		if totalErr != nil {
			return nil, kernel.Money{}, totalErr
		}
		if subtotal, err = subtotal.Add(lineTotal); err != nil {
			return nil, kernel.Money{}, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, kernel.Money{}, err
	}

	return lines, subtotal, nil
}
