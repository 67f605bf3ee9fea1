package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	performancereview "quickpay-backend/lib/performance-review"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	reviewapimodels "quickpay-backend/models/api/review"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app *fiber.App) {
	controller := reviewApiController{}
	app.Route("review", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.create)
		router.Get("my", controller.my)
		router.Get("employee/:employee_id", controller.listByEmployee)
		router.Put(":id", controller.update)
	})
}

// @Summary Create performance review
// @Tags Performance review
// @Description The bonus amount is derived from the rating
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reviewapimodels.CreateReview	true	"request body"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.ReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review [post]
func (c *reviewApiController) create(ctx *fiber.Ctx) error {
	var payload reviewapimodels.CreateReview
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := performancereview.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update performance review
// @Tags Performance review
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"review ID"
// @Param	body				body		reviewapimodels.UpdateReview	true	"request body"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.ReviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review/{id} [put]
func (c *reviewApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload reviewapimodels.UpdateReview
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := performancereview.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Own performance reviews
// @Tags Performance review
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reviewapimodels.ReviewView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review/my [get]
func (c *reviewApiController) my(ctx *fiber.Ctx) error {
	resp, err := performancereview.Instance.ListByUser(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Performance reviews of an employee
// @Tags Performance review
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]reviewapimodels.ReviewView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review/employee/{employee_id} [get]
func (c *reviewApiController) listByEmployee(ctx *fiber.Ctx) error {
	employeeID, err := c.GetParam(ctx, "employee_id")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := performancereview.Instance.ListByEmployee(employeeID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
