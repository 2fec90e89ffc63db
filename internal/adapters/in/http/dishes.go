package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// AddDish godoc
//
//	@Summary	Add a dish to a seller's catalog
//	@Tags		dishes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		servers.NewDish	true	"Dish"
//	@Success	201		{object}	servers.Dish
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/dishes [post]
func (s *Server) AddDish(ctx echo.Context) error {
	var body servers.NewDish
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sellerID, err := pathID(body.SellerId)
	if err != nil {
		return badRequest(ctx, "Invalid seller id")
	}

	isAvailable := true
	if body.IsAvailable != nil {
		isAvailable = *body.IsAvailable
	}

	cmd, err := commands.NewAddDishCommand(
		sellerID, body.Name, body.Price, body.RestaurantName, deref(body.ImageUrl), isAvailable)
	if err != nil {
		return s.writeError(ctx, err)
	}

	d, err := s.handlers.AddDish.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toDish(d))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
