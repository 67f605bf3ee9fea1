package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/feedback"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	feedbackapimodels "quickpay-backend/models/api/feedback"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.submit)
		router.Get("", controller.list)
		router.Put(":id/resolve", controller.resolve)
		router.Put(":id/review", controller.review)
	})
}

// @Summary Submit feedback
// @Tags Feedback
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feedbackapimodels.SubmitFeedback	true	"request body"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback [post]
func (c *feedbackApiController) submit(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.SubmitFeedback
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := feedback.Instance.Submit(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List feedback
// @Tags Feedback
// @Description Admins and HR managers see all feedback, other users their own
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback [get]
func (c *feedbackApiController) list(ctx *fiber.Ctx) error {
	resp, err := feedback.Instance.List(middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Resolve feedback
// @Tags Feedback
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"feedback ID"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id}/resolve [put]
func (c *feedbackApiController) resolve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := feedback.Instance.Resolve(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Review feedback
// @Tags Feedback
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"feedback ID"
// @Success 200 {object} apimodels.Response{data=feedbackapimodels.FeedbackView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id}/review [put]
func (c *feedbackApiController) review(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := feedback.Instance.Review(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
