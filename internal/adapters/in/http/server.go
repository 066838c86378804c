// Package http adapts the generated ServerInterface onto the application's
// command and query handlers. It only translates between wire types and
// core types; every business rule lives behind the handlers.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	AddCartItem          commands.AddCartItemCommandHandler
	UpdateCartLine       commands.UpdateCartLineCommandHandler
	SetLineQuantity      commands.SetLineQuantityCommandHandler
	RemoveCartLine       commands.RemoveCartLineCommandHandler
	ClearCart            commands.ClearCartCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	AcceptOrder          commands.AcceptOrderCommandHandler
	RejectOrder          commands.RejectOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	StartPreparing       commands.StartPreparingCommandHandler
	MarkReady            commands.MarkReadyCommandHandler
	StartDelivering      commands.StartDeliveringCommandHandler
	CompleteOrder        commands.CompleteOrderCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	GetCart          queries.GetCartQueryHandler
	GetDeliveryQuote queries.GetDeliveryQuoteQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	GetActiveOrders  queries.GetActiveOrdersQueryHandler
}

// Server implements the generated ServerInterface.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(commandHandlers Commands, queryHandlers Queries) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// GetCart handles GET /api/v1/carts/{sessionId}.
func (s *Server) GetCart(ctx echo.Context, sessionId string) error {
	query, err := queries.NewGetCartQuery(sessionId)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartToAPI(resp))
}

// ClearCart handles DELETE /api/v1/carts/{sessionId}.
func (s *Server) ClearCart(ctx echo.Context, sessionId string) error {
	cmd, err := commands.NewClearCartCommand(sessionId)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /api/v1/carts/{sessionId}/items.
func (s *Server) AddCartItem(ctx echo.Context, sessionId string) error {
	var body servers.AddCartItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	itemID, err := domainUUID(body.ItemId)
	if err != nil {
		return writeError(ctx, err)
	}
	choices, err := domainUUIDs(body.Choices)
	if err != nil {
		return writeError(ctx, err)
	}
	removed, err := domainUUIDs(body.Removed)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(
		sessionId, itemID, body.Quantity, choices, removed, strValue(body.Instructions))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionId)
}

// UpdateCartLine handles PUT /api/v1/carts/{sessionId}/items/{lineId}.
func (s *Server) UpdateCartLine(ctx echo.Context, sessionId string, lineId openapi_types.UUID) error {
	var body servers.UpdateCartLineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	lineID, err := domainUUID(lineId)
	if err != nil {
		return writeError(ctx, err)
	}
	choices, err := domainUUIDs(body.Choices)
	if err != nil {
		return writeError(ctx, err)
	}
	removed, err := domainUUIDs(body.Removed)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateCartLineCommand(
		sessionId, lineID, choices, removed, strValue(body.Instructions))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.UpdateCartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCart(ctx, sessionId)
}

// SetCartLineQuantity handles PUT /api/v1/carts/{sessionId}/items/{lineId}/quantity.
func (s *Server) SetCartLineQuantity(ctx echo.Context, sessionId string, lineId openapi_types.UUID) error {
	var body servers.SetCartLineQuantityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	lineID, err := domainUUID(lineId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetLineQuantityCommand(sessionId, lineID, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.SetLineQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartLine handles DELETE /api/v1/carts/{sessionId}/items/{lineId}.
func (s *Server) RemoveCartLine(ctx echo.Context, sessionId string, lineId openapi_types.UUID) error {
	lineID, err := domainUUID(lineId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartLineCommand(sessionId, lineID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.RemoveCartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryQuote handles POST /api/v1/quotes.
func (s *Server) GetDeliveryQuote(ctx echo.Context) error {
	var body servers.GetDeliveryQuoteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	storeID, err := domainUUID(body.StoreId)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := domainPoint(body.Destination)
	if err != nil {
		return writeError(ctx, err)
	}
	subtotal, err := kernel.MoneyFromString(body.Subtotal)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuoteQuery(storeID, destination, subtotal)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.queries.GetDeliveryQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		DistanceKm:  resp.DistanceKm,
		DurationMin: resp.DurationMin,
		Fee:         resp.Fee.String(),
	})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	customerID, err := domainUUID(body.CustomerId)
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillment, err := kernel.FulfillmentTypeFromString(string(body.Fulfillment))
	if err != nil {
		return writeError(ctx, err)
	}

	var address *kernel.GeoPoint
	if body.DeliveryAddress != nil {
		point, pointErr := domainPoint(*body.DeliveryAddress)
		if pointErr != nil {
			return writeError(ctx, pointErr)
		}
		address = &point
	}

	cmd, err := commands.NewPlaceOrderCommand(
		body.SessionId, customerID, fulfillment, address, strValue(body.CustomerNotes))
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderRef{OrderId: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := domainUUID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(resp))
}

// GetActiveOrders handles GET /api/v1/stores/{storeId}/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context, storeId openapi_types.UUID) error {
	storeID, err := domainUUID(storeId)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(storeID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ActiveOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, servers.ActiveOrder{
			Id:          o.ID.Bytes(),
			CustomerId:  o.CustomerID.Bytes(),
			Fulfillment: servers.ActiveOrderFulfillment(o.Fulfillment.String()),
			Status:      servers.ActiveOrderStatus(o.Status.String()),
			Total:       o.Total.String(),
			PlacedAt:    o.PlacedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, func(orderID, actorID kernel.UUID, role order.Role) error {
		cmd, err := commands.NewAcceptOrderCommand(orderID, actorID, role)
		if err != nil {
			return err
		}
		return s.commands.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RejectOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	actorID, err := domainUUID(body.ActorId)
	if err != nil {
		return writeError(ctx, err)
	}
	role, err := order.RoleFromString(string(body.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actorID, role, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, func(orderID, actorID kernel.UUID, role order.Role) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actorID, role)
		if err != nil {
			return err
		}
		return s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// StartPreparingOrder handles POST /api/v1/orders/{orderId}/start-preparing.
func (s *Server) StartPreparingOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, func(orderID, actorID kernel.UUID, role order.Role) error {
		cmd, err := commands.NewStartPreparingCommand(orderID, actorID, role)
		if err != nil {
			return err
		}
		return s.commands.StartPreparing.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, func(orderID, actorID kernel.UUID, role order.Role) error {
		cmd, err := commands.NewMarkReadyCommand(orderID, actorID, role)
		if err != nil {
			return err
		}
		return s.commands.MarkReady.Handle(ctx.Request().Context(), cmd)
	})
}

// StartDeliveringOrder handles POST /api/v1/orders/{orderId}/start-delivering.
func (s *Server) StartDeliveringOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, func(orderID, actorID kernel.UUID, role order.Role) error {
		cmd, err := commands.NewStartDeliveringCommand(orderID, actorID, role)
		if err != nil {
			return err
		}
		return s.commands.StartDelivering.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, func(orderID, actorID kernel.UUID, role order.Role) error {
		cmd, err := commands.NewCompleteOrderCommand(orderID, actorID, role)
		if err != nil {
			return err
		}
		return s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// UpdateDriverLocation handles POST /api/v1/orders/{orderId}/driver-location.
func (s *Server) UpdateDriverLocation(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateDriverLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	driverID, err := domainUUID(body.DriverId)
	if err != nil {
		return writeError(ctx, err)
	}
	position, err := domainPoint(body.Position)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(orderID, driverID, position)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.UpdateDriverLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// transition factors the shared shape of the simple lifecycle endpoints:
// bind the actor, build the command, run it, answer 204.
func (s *Server) transition(
	ctx echo.Context,
	orderId openapi_types.UUID,
	run func(orderID, actorID kernel.UUID, role order.Role) error,
) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	orderID, err := domainUUID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	actorID, err := domainUUID(body.ActorId)
	if err != nil {
		return writeError(ctx, err)
	}
	role, err := order.RoleFromString(string(body.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = run(orderID, actorID, role); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithCart(ctx echo.Context, sessionID string) error {
	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartToAPI(resp))
}

func badRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
