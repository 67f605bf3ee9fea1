package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/users"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	usersapimodels "quickpay-backend/models/api/users"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersApiRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id/toggle_status", controller.toggleStatus)
		router.Delete(":id", controller.delete)
	})
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.getProfile)
		router.Put("", controller.updateProfile)
	})
}

// @Summary List users
// @Tags Users
// @Description Users except the superuser, optionally filtered by role and status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   role				query		string	false	"role"
// @Param   status				query		string	false	"active | blocked"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	var filter usersapimodels.UserFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := users.Instance.ListUsers(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create user
// @Tags Users
// @Description Creates a user with a generated username and password, the credentials are mailed to the user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.CreateUser	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.CreatedUser}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *usersApiController) create(ctx *fiber.Ctx) error {
	var payload usersapimodels.CreateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := users.Instance.CreateUser(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Block or unblock user
// @Tags Users
// @Description Flips the active flag
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"user ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/toggle_status [put]
func (c *usersApiController) toggleStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := users.Instance.ToggleStatus(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete user
// @Tags Users
// @Description Deletes a user without an employee profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"user ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *usersApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = users.Instance.DeleteUser(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Own profile
// @Tags Profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *usersApiController) getProfile(ctx *fiber.Ctx) error {
	resp, err := users.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Edit own profile
// @Tags Profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.ProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *usersApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload usersapimodels.ProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := users.Instance.UpdateProfile(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
