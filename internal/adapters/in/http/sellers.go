package http

import (
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/seller"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ConnectSeller godoc
//
//	@Summary	Mark a seller online with a fresh connection
//	@Tags		sellers
//	@Accept		json
//	@Produce	json
//	@Param		sellerId	path		string						true	"Seller ID"	format(uuid)
//	@Param		request		body		servers.ConnectSellerRequest	true	"Connection"
//	@Success	200			{object}	servers.SellerStatus
//	@Failure	400			{object}	servers.Error
//	@Router		/api/v1/sellers/{sellerId}/connect [post]
func (s *Server) ConnectSeller(ctx echo.Context, sellerId servers.SellerId) error {
	id, err := pathID(sellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}

	var body servers.ConnectSellerRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := s.availability.SetOnline(ctx.Request().Context(), id, body.ConnectionId); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSellerStatus(s.availability.GetStatus(ctx.Request().Context(), id)))
}

// DisconnectSeller godoc
//
//	@Summary	Mark a seller offline
//	@Tags		sellers
//	@Produce	json
//	@Param		sellerId	path		string	true	"Seller ID"	format(uuid)
//	@Success	200			{object}	servers.SellerStatus
//	@Failure	400			{object}	servers.Error
//	@Router		/api/v1/sellers/{sellerId}/disconnect [post]
func (s *Server) DisconnectSeller(ctx echo.Context, sellerId servers.SellerId) error {
	id, err := pathID(sellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}

	if err := s.availability.SetOffline(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSellerStatus(s.availability.GetStatus(ctx.Request().Context(), id)))
}

// SellerHeartbeat godoc
//
//	@Summary	Refresh the activity timestamp of a connected seller
//	@Tags		sellers
//	@Param		sellerId	path	string	true	"Seller ID"	format(uuid)
//	@Success	204
//	@Failure	400	{object}	servers.Error
//	@Router		/api/v1/sellers/{sellerId}/heartbeat [post]
func (s *Server) SellerHeartbeat(ctx echo.Context, sellerId servers.SellerId) error {
	id, err := pathID(sellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}

	if err := s.availability.Heartbeat(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDashboardStatus godoc
//
//	@Summary	Change the seller-chosen dashboard status
//	@Tags		sellers
//	@Accept		json
//	@Produce	json
//	@Param		sellerId	path		string							true	"Seller ID"	format(uuid)
//	@Param		request		body		servers.DashboardStatusRequest	true	"Status"
//	@Success	200			{object}	servers.SellerStatus
//	@Failure	400			{object}	servers.Error
//	@Router		/api/v1/sellers/{sellerId}/dashboard-status [put]
func (s *Server) UpdateDashboardStatus(ctx echo.Context, sellerId servers.SellerId) error {
	id, err := pathID(sellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}

	var body servers.DashboardStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	err = s.availability.UpdateDashboardStatus(ctx.Request().Context(), id, seller.DashboardStatus(body.Status))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSellerStatus(s.availability.GetStatus(ctx.Request().Context(), id)))
}

// GetSellerStatus godoc
//
//	@Summary	Current availability of a seller
//	@Tags		sellers
//	@Produce	json
//	@Param		sellerId	path		string	true	"Seller ID"	format(uuid)
//	@Success	200			{object}	servers.SellerStatus
//	@Failure	400			{object}	servers.Error
//	@Router		/api/v1/sellers/{sellerId}/status [get]
func (s *Server) GetSellerStatus(ctx echo.Context, sellerId servers.SellerId) error {
	id, err := pathID(sellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}
	return ctx.JSON(http.StatusOK, toSellerStatus(s.availability.GetStatus(ctx.Request().Context(), id)))
}

// ListOnlineSellers godoc
//
//	@Summary	Sellers currently able to accept orders
//	@Tags		sellers
//	@Produce	json
//	@Success	200	{array}	servers.SellerStatus
//	@Router		/api/v1/sellers/online [get]
func (s *Server) ListOnlineSellers(ctx echo.Context) error {
	online := s.availability.ListOnline()

	response := make([]servers.SellerStatus, len(online))
	for i, a := range online {
		response[i] = toSellerStatus(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// BulkSellerStatus godoc
//
//	@Summary	Availability of several sellers at once
//	@Tags		sellers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		servers.BulkStatusRequest	true	"Seller IDs"
//	@Success	200		{array}		servers.SellerStatus
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/sellers/status/bulk [post]
func (s *Server) BulkSellerStatus(ctx echo.Context) error {
	var body servers.BulkStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(body.SellerIds) == 0 {
		return badRequest(ctx, "sellerIds must not be empty")
	}

	ids := make([]kernel.UUID, 0, len(body.SellerIds))
	for _, raw := range body.SellerIds {
		id, err := pathID(raw)
		if err != nil {
			return badRequest(ctx, "Invalid seller id")
		}
		ids = append(ids, id)
	}

	statuses := s.availability.BulkStatus(ctx.Request().Context(), ids)

	response := make([]servers.SellerStatus, len(ids))
	for i, id := range ids {
		a, ok := statuses[id]
		if !ok {
			a = seller.Offline(id)
		}
		response[i] = toSellerStatus(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

func pathID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}
