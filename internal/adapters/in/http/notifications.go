package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// SendNotification godoc
//
//	@Summary	Persist and push a standalone notification
//	@Tags		notifications
//	@Accept		json
//	@Produce	json
//	@Param		request	body		servers.NewNotification	true	"Notification"
//	@Success	201		{object}	servers.Notification
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/notifications [post]
func (s *Server) SendNotification(ctx echo.Context) error {
	var body servers.NewNotification
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := pathID(body.UserId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	var metadata map[string]any
	if body.Metadata != nil {
		metadata = *body.Metadata
	}

	cmd, err := commands.NewSendNotificationCommand(
		userID,
		notification.Type(body.Type),
		body.Title,
		body.Message,
		metadata,
		notification.Priority(deref(body.Priority)),
		deref(body.ActionRoute),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	n, err := s.handlers.SendNotification.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toNotification(n))
}

// ListNotifications godoc
//
//	@Summary	A user's notifications, newest first
//	@Tags		notifications
//	@Produce	json
//	@Param		userId		path	string	true	"User ID"	format(uuid)
//	@Param		unreadOnly	query	bool	false	"Only unread notifications"
//	@Param		limit		query	int		false	"Page size, 1 to 100"
//	@Success	200			{array}	servers.Notification
//	@Failure	400			{object}	servers.Error
//	@Router		/api/v1/users/{userId}/notifications [get]
func (s *Server) ListNotifications(ctx echo.Context, userId servers.UserId, params servers.ListNotificationsParams) error {
	id, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewListNotificationsQuery(id, deref(params.UnreadOnly), deref(params.Limit))
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Notification, len(views))
	for i, v := range views {
		response[i] = notificationFromView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CountUnreadNotifications godoc
//
//	@Summary	Number of unread notifications
//	@Tags		notifications
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"	format(uuid)
//	@Success	200		{object}	servers.UnreadCount
//	@Router		/api/v1/users/{userId}/notifications/unread-count [get]
func (s *Server) CountUnreadNotifications(ctx echo.Context, userId servers.UserId) error {
	id, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewCountUnreadNotificationsQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	count, err := s.handlers.CountUnreadNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.UnreadCount{Count: count})
}

// MarkNotificationRead godoc
//
//	@Summary	Mark one notification read
//	@Tags		notifications
//	@Produce	json
//	@Param		userId			path		string	true	"User ID"			format(uuid)
//	@Param		notificationId	path		string	true	"Notification ID"	format(uuid)
//	@Success	200				{object}	servers.Notification
//	@Failure	404				{object}	servers.Error
//	@Router		/api/v1/users/{userId}/notifications/{notificationId}/read [post]
func (s *Server) MarkNotificationRead(
	ctx echo.Context,
	userId servers.UserId,
	notificationId openapi_types.UUID,
) error {
	uid, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}
	nid, err := pathID(notificationId)
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(uid, nid)
	if err != nil {
		return s.writeError(ctx, err)
	}

	n, err := s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toNotification(n))
}

// MarkAllNotificationsRead godoc
//
//	@Summary	Mark every unread notification read
//	@Tags		notifications
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"	format(uuid)
//	@Success	200		{object}	servers.MarkAllReadResponse
//	@Router		/api/v1/users/{userId}/notifications/read-all [post]
func (s *Server) MarkAllNotificationsRead(ctx echo.Context, userId servers.UserId) error {
	id, err := pathID(userId)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.MarkAllNotificationsRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.MarkAllReadResponse{Updated: updated})
}
