package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateAddress godoc
//
//	@Summary	Save a delivery address
//	@Tags		addresses
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string				true	"User ID"	format(uuid)
//	@Param		request	body		servers.NewAddress	true	"Address"
//	@Success	201		{object}	servers.Address
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/users/{userId}/addresses [post]
func (s *Server) CreateAddress(ctx echo.Context, userId servers.UserId) error {
	id, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	var body servers.NewAddress
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateAddressCommand(
		id, body.Label, body.Line, body.City, deref(body.PostalCode), deref(body.IsDefault))
	if err != nil {
		return s.writeError(ctx, err)
	}

	a, err := s.handlers.CreateAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAddress(a))
}

// ListAddresses godoc
//
//	@Summary	A user's saved addresses, default first
//	@Tags		addresses
//	@Produce	json
//	@Param		userId	path	string	true	"User ID"	format(uuid)
//	@Success	200		{array}	servers.Address
//	@Router		/api/v1/users/{userId}/addresses [get]
func (s *Server) ListAddresses(ctx echo.Context, userId servers.UserId) error {
	id, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewListAddressesQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.ListAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Address, len(views))
	for i, v := range views {
		response[i] = addressFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetDefaultAddress godoc
//
//	@Summary	Make an address the user's default
//	@Tags		addresses
//	@Param		userId		path	string	true	"User ID"		format(uuid)
//	@Param		addressId	path	string	true	"Address ID"	format(uuid)
//	@Success	204
//	@Failure	404	{object}	servers.Error
//	@Router		/api/v1/users/{userId}/addresses/{addressId}/default [put]
func (s *Server) SetDefaultAddress(ctx echo.Context, userId servers.UserId, addressId openapi_types.UUID) error {
	uid, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}
	aid, err := pathID(addressId)
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewSetDefaultAddressCommand(uid, aid)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.SetDefaultAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
