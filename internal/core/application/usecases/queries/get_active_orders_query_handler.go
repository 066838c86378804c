package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists a store's open orders straight from the
// database. The total is computed in SQL from the frozen lines plus the fee,
// so the queue never loads full aggregates.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for store queue reads.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders arrive sorted by placement time, oldest
// first, matching the sequence the kitchen should work them in.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.fulfillment,
			o.status,
			o.placed_at,
			o.delivery_fee + COALESCE(SUM(l.unit_price * l.quantity), 0) AS total
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.store_id = ?
		  AND o.status NOT IN (?, ?, ?)
		GROUP BY o.id
		ORDER BY o.placed_at
	`, query.StoreID().Bytes(),
		int(order.Completed), int(order.Rejected), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, customerID uuid.UUID
			fulfillment    string
			status         int
			placedAt       time.Time
			total          decimal.Decimal
		)
		if err = rows.Scan(&id, &customerID, &fulfillment, &status, &placedAt, &total); err != nil {
			return nil, err
		}

		response := GetActiveOrdersQueryResponse{
			Status:   order.Status(status),
			PlacedAt: placedAt,
		}
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if response.Fulfillment, err = kernel.FulfillmentTypeFromString(fulfillment); err != nil {
			return nil, err
		}
		if response.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
