package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto the HTTP error contract:
// validation 400, seller offline 403, not found 404, invalid transition 409,
// anything else 500 with the cause kept out of the response.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var offline *errs.SellerOfflineError
	if errors.As(err, &offline) {
		code := servers.SELLEROFFLINE
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:         http.StatusForbidden,
			Message:      "Seller is offline and cannot accept orders",
			ErrorCode:    &code,
			SellerStatus: offlineSnapshot(offline),
		})
	}

	var invalid *errs.InvalidTransitionError
	if errors.As(err, &invalid) {
		code := servers.INVALIDTRANSITION
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:      http.StatusConflict,
			Message:   invalid.Error(),
			ErrorCode: &code,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: err.Error()})
	}

	s.logger.Error("request failed",
		"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

func offlineSnapshot(e *errs.SellerOfflineError) *servers.SellerStatus {
	id, err := kernel.UUIDFromString(e.SellerID)
	if err != nil {
		return nil
	}
	status := &servers.SellerStatus{
		SellerId:        id.Google(),
		IsOnline:        e.IsOnline,
		DashboardStatus: servers.DashboardStatus(e.DashboardStatus),
	}
	if !e.LastActiveAt.IsZero() {
		at := e.LastActiveAt
		status.LastActiveAt = &at
	}
	return status
}

// ErrorHandler renders framework errors (routing, binding, request validation)
// in the same envelope as application errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: code, Message: message})
}
