package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/leave"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	leaveapimodels "quickpay-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("leave", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.apply)
		router.Get("", controller.list)
		router.Get("my", controller.my)
		router.Get("remaining", controller.remaining)
		router.Post(":id/decide", controller.decide)
	})
}

// @Summary Apply for leave
// @Tags Leave
// @Description Paid leave (sick, vacation) is capped per calendar year
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.ApplyLeave	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave [post]
func (c *leaveApiController) apply(ctx *fiber.Ctx) error {
	var payload leaveapimodels.ApplyLeave
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := leave.Instance.Apply(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Leave requests for management
// @Tags Leave
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"pending (default) | approved | rejected | all"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave [get]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	var filter leaveapimodels.LeaveFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := leave.Instance.ListForManagement(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Own leave requests
// @Tags Leave
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/my [get]
func (c *leaveApiController) my(ctx *fiber.Ctx) error {
	resp, err := leave.Instance.ListByUser(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Remaining paid leave
// @Tags Leave
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveBalance}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/remaining [get]
func (c *leaveApiController) remaining(ctx *fiber.Ctx) error {
	resp, err := leave.Instance.Remaining(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve or reject a leave request
// @Tags Leave
// @Description Approval marks every day of the leave in attendance
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"leave request ID"
// @Param	body				body		leaveapimodels.LeaveDecision	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id}/decide [post]
func (c *leaveApiController) decide(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload leaveapimodels.LeaveDecision
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := leave.Instance.Decide(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
