package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder godoc
//
//	@Summary		Place an order
//	@Description	Rejected with 403 SELLER_OFFLINE when the dish's seller cannot accept orders.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		servers.CreateOrderRequest	true	"Order"
//	@Success		201		{object}	servers.CreateOrderResponse
//	@Failure		400		{object}	servers.Error
//	@Failure		403		{object}	servers.Error
//	@Failure		404		{object}	servers.Error
//	@Router			/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := pathID(body.CustomerId)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	dishID, err := pathID(body.DishId)
	if err != nil {
		return badRequest(ctx, "Invalid dish id")
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, dishID, body.DeliveryAddress, body.TotalAmount)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreateOrderResponse{
		Id:      result.ID.Google(),
		OrderId: result.OrderID,
		Status:  servers.OrderStatus(result.Status),
		Pricing: toPriceBreakdown(result.Pricing),
	})
}

// GetOrder godoc
//
//	@Summary	Order details by public order id
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Public order id"
//	@Success	200		{object}	servers.Order
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// TransitionOrder godoc
//
//	@Summary	Move an order to another status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string						true	"Public order id"
//	@Param		request	body		servers.TransitionRequest	true	"Actor and target status"
//	@Success	200		{object}	servers.TransitionResponse
//	@Failure	400		{object}	servers.Error
//	@Failure	404		{object}	servers.Error
//	@Failure	409		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/transitions [post]
func (s *Server) TransitionOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	// payment confirmation only arrives through the webhook
	if order.Actor(body.Actor) == order.ActorPayment {
		return badRequest(ctx, "Payment transitions are accepted only from the payment webhook")
	}

	return s.transition(ctx, orderId, order.Actor(body.Actor), order.Status(body.Status))
}

// PaymentWebhook godoc
//
//	@Summary	Payment provider callback marking an order paid
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		servers.PaymentWebhookRequest	true	"Paid order"
//	@Success	200		{object}	servers.TransitionResponse
//	@Failure	404		{object}	servers.Error
//	@Failure	409		{object}	servers.Error
//	@Router		/api/v1/payments/webhook [post]
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	var body servers.PaymentWebhookRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transition(ctx, body.OrderId, order.ActorPayment, order.PaymentCompleted)
}

func (s *Server) transition(ctx echo.Context, orderID string, actor order.Actor, target order.Status) error {
	cmd, err := commands.NewTransitionOrderCommand(orderID, actor, target)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TransitionResponse{
		Order:   orderFromDomain(result.Order),
		Changed: result.Changed,
	})
}

// ListCustomerOrders godoc
//
//	@Summary	Orders placed by a customer, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		customerId	path	string	true	"Customer ID"	format(uuid)
//	@Success	200			{array}	servers.Order
//	@Router		/api/v1/customers/{customerId}/orders [get]
func (s *Server) ListCustomerOrders(ctx echo.Context, customerId openapi_types.UUID) error {
	id, err := pathID(customerId)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewListCustomerOrdersQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromViews(views))
}

// ListSellerOrders godoc
//
//	@Summary	Orders placed with a seller, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		sellerId	path	string	true	"Seller ID"	format(uuid)
//	@Param		status		query	string	false	"Only orders in this status"
//	@Success	200			{array}	servers.Order
//	@Router		/api/v1/sellers/{sellerId}/orders [get]
func (s *Server) ListSellerOrders(ctx echo.Context, sellerId servers.SellerId, params servers.ListSellerOrdersParams) error {
	id, err := pathID(sellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}

	var status *order.Status
	if params.Status != nil {
		st := order.Status(*params.Status)
		status = &st
	}

	query, err := queries.NewListSellerOrdersQuery(id, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.ListSellerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromViews(views))
}
