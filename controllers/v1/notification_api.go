package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/notification"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	notificationapimodels "quickpay-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Own notifications
// @Tags Notification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   limit				query		int		false	"0 = all"
// @Param   unread_only			query		bool	false	"only unread"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var filter notificationapimodels.ListFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := notification.Instance.List(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mark notification read
// @Tags Notification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"notification ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = notification.Instance.MarkRead(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
