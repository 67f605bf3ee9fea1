package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/attendance"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	attendanceapimodels "quickpay-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("my", controller.my)
		router.Get(":employee_id", controller.list)
		router.Post(":employee_id/mark", controller.mark)
	})
}

// @Summary Own attendance
// @Tags Attendance
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/my [get]
func (c *attendanceApiController) my(ctx *fiber.Ctx) error {
	var filter apimodels.MonthFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := attendance.Instance.ListByUser(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Employee attendance for a month
// @Tags Attendance
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			path		string	true	"employee ID"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/{employee_id} [get]
func (c *attendanceApiController) list(ctx *fiber.Ctx) error {
	employeeID, err := c.GetParam(ctx, "employee_id")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var filter apimodels.MonthFilter
	if err = c.QueryParser(ctx, &filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = filter.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := attendance.Instance.List(employeeID, filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mark attendance
// @Tags Attendance
// @Description Creates or updates the attendance of one day, days on approved leave can not be changed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			path		string	true	"employee ID"
// @Param	body				body		attendanceapimodels.MarkAttendance	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/{employee_id}/mark [post]
func (c *attendanceApiController) mark(ctx *fiber.Ctx) error {
	employeeID, err := c.GetParam(ctx, "employee_id")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload attendanceapimodels.MarkAttendance
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := attendance.Instance.Mark(employeeID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
