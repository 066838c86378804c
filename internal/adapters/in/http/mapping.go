package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// writeError maps a core error to an HTTP status and a JSON error body.
// The mapping follows the errs sentinel taxonomy; anything unclassified is
// a 500 with a generic message so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrBelowMinimumOrder):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrOrderClosed),
		errors.Is(err, errs.ErrStoreMismatch):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrRoutingUnavailable):
		code = http.StatusServiceUnavailable
		message = err.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func domainUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func domainUUIDs(ids *[]openapi_types.UUID) ([]kernel.UUID, error) {
	if ids == nil {
		return nil, nil
	}

	out := make([]kernel.UUID, 0, len(*ids))
	for _, id := range *ids {
		parsed, err := domainUUID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}

	return out, nil
}

func apiUUIDs(ids []kernel.UUID) *[]openapi_types.UUID {
	if len(ids) == 0 {
		return nil
	}

	out := make([]openapi_types.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}

	return &out
}

func domainPoint(p servers.GeoPoint) (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(p.Lat, p.Lon)
}

func apiPoint(p kernel.GeoPoint) servers.GeoPoint {
	return servers.GeoPoint{Lat: p.Lat(), Lon: p.Lon()}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cartToAPI(resp queries.GetCartQueryResponse) servers.Cart {
	lines := make([]servers.CartLine, 0, len(resp.Lines))
	for _, l := range resp.Lines {
		lines = append(lines, servers.CartLine{
			LineId:       l.LineID.Bytes(),
			ItemId:       l.ItemID.Bytes(),
			Name:         l.Name,
			UnitPrice:    l.UnitPrice.String(),
			Quantity:     l.Quantity,
			Choices:      apiUUIDs(l.Choices),
			Removed:      apiUUIDs(l.Removed),
			Instructions: strPtr(l.Instructions),
		})
	}

	cart := servers.Cart{
		Lines:         lines,
		TotalQuantity: resp.TotalQuantity,
		Subtotal:      resp.Subtotal.String(),
	}
	if resp.StoreID != nil {
		storeID := resp.StoreID.Bytes()
		cart.StoreId = &storeID
	}

	return cart
}

func orderToAPI(resp queries.GetOrderQueryResponse) servers.Order {
	lines := make([]servers.OrderLine, 0, len(resp.Lines))
	for _, l := range resp.Lines {
		lines = append(lines, servers.OrderLine{
			MenuItemId:   l.MenuItemID.Bytes(),
			Name:         l.Name,
			UnitPrice:    l.UnitPrice.String(),
			Quantity:     l.Quantity,
			Instructions: strPtr(l.Instructions),
		})
	}

	out := servers.Order{
		Id:              resp.ID.Bytes(),
		CustomerId:      resp.CustomerID.Bytes(),
		StoreId:         resp.StoreID.Bytes(),
		Fulfillment:     servers.OrderFulfillment(resp.Fulfillment.String()),
		Status:          servers.OrderStatus(resp.Status.String()),
		Subtotal:        resp.Subtotal.String(),
		DeliveryFee:     resp.DeliveryFee.String(),
		Total:           resp.Total.String(),
		CustomerNotes:   strPtr(resp.CustomerNotes),
		RejectionReason: strPtr(resp.RejectionReason),
		PlacedAt:        resp.PlacedAt,
		Lines:           lines,
	}

	if resp.Driver != nil {
		driver := servers.DriverState{
			EstimateDistanceKm:  resp.Driver.EstimateDistanceKm,
			EstimateDurationMin: resp.Driver.EstimateDurationMin,
		}
		if resp.Driver.Position != nil {
			position := apiPoint(*resp.Driver.Position)
			driver.Position = &position
		}
		out.Driver = &driver
	}

	return out
}
