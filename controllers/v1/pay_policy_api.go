package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	paypolicy "quickpay-backend/lib/pay-policy"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	paypolicyapimodels "quickpay-backend/models/api/pay-policy"
)

type payPolicyApiController struct {
	controllers.BaseAPIController
}

func InitPayPolicyApiRouters(app *fiber.App) {
	controller := payPolicyApiController{}
	app.Route("pay_policy", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.create)
		router.Get("latest", controller.latest)
		router.Get("current", controller.current)
		router.Put(":id", controller.update)
		router.Post(":id/approve", controller.approve)
		router.Post(":id/request_change", controller.requestChange)
	})
}

// @Summary Create pay policy
// @Tags Pay policy
// @Description New policies wait for HR approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		paypolicyapimodels.PolicyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=paypolicyapimodels.PolicyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pay_policy [post]
func (c *payPolicyApiController) create(ctx *fiber.Ctx) error {
	var payload paypolicyapimodels.PolicyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := paypolicy.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Latest pay policy
// @Tags Pay policy
// @Description Most recently created policy whatever its status
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=paypolicyapimodels.PolicyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pay_policy/latest [get]
func (c *payPolicyApiController) latest(ctx *fiber.Ctx) error {
	resp, err := paypolicy.Instance.Latest()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Pay policy in effect
// @Tags Pay policy
// @Description Latest approved policy effective on the date
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date				query		string	false	"YYYY-MM-DD, today by default"
// @Success 200 {object} apimodels.Response{data=paypolicyapimodels.PolicyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pay_policy/current [get]
func (c *payPolicyApiController) current(ctx *fiber.Ctx) error {
	var query paypolicyapimodels.CurrentQuery
	if err := c.QueryParser(ctx, &query); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := query.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := paypolicy.Instance.Current(ctx.UserContext(), query)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Edit pay policy
// @Tags Pay policy
// @Description Editing sends the policy back to approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"policy ID"
// @Param	body				body		paypolicyapimodels.PolicyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=paypolicyapimodels.PolicyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pay_policy/{id} [put]
func (c *payPolicyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload paypolicyapimodels.PolicyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := paypolicy.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve pay policy
// @Tags Pay policy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"policy ID"
// @Success 200 {object} apimodels.Response{data=paypolicyapimodels.PolicyView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pay_policy/{id}/approve [post]
func (c *payPolicyApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := paypolicy.Instance.Approve(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Request pay policy change
// @Tags Pay policy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"policy ID"
// @Param	body				body		paypolicyapimodels.ChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=paypolicyapimodels.PolicyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pay_policy/{id}/request_change [post]
func (c *payPolicyApiController) requestChange(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload paypolicyapimodels.ChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := paypolicy.Instance.RequestChange(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
