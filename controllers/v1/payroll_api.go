package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/payroll"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
	payrollapimodels "quickpay-backend/models/api/payroll"
)

type payrollApiController struct {
	controllers.BaseAPIController
}

func InitPayrollApiRouters(app *fiber.App) {
	controller := payrollApiController{}
	app.Route("payroll", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("my_payslips", controller.myPayslips)
		router.Get("payslip/:id", controller.payslip)
		router.Get("payslip/:id/pdf", controller.payslipPdf)
		router.Get(":employee_id/preview", controller.preview)
		router.Post(":employee_id/run", controller.run)
		router.Get(":employee_id/payslips", controller.payslips)
	})
}

// @Summary Payroll preview
// @Tags Payroll
// @Description Inputs of the current month run: salary, policy in effect, unpaid days, bonus
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.PreviewView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/{employee_id}/preview [get]
func (c *payrollApiController) preview(ctx *fiber.Ctx) error {
	employeeID, err := c.GetParam(ctx, "employee_id")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := payroll.Instance.Preview(ctx.UserContext(), employeeID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Run payroll
// @Tags Payroll
// @Description Processes the current month once per employee and creates the payslip
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			path		string	true	"employee ID"
// @Param	body				body		payrollapimodels.RunPayroll	true	"request body"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.PayrollView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/{employee_id}/run [post]
func (c *payrollApiController) run(ctx *fiber.Ctx) error {
	employeeID, err := c.GetParam(ctx, "employee_id")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload payrollapimodels.RunPayroll
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := payroll.Instance.Run(ctx.UserContext(), middleware.GetUserID(ctx), employeeID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Payslips of an employee
// @Tags Payroll
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]payrollapimodels.PayslipView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/{employee_id}/payslips [get]
func (c *payrollApiController) payslips(ctx *fiber.Ctx) error {
	employeeID, err := c.GetParam(ctx, "employee_id")
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := payroll.Instance.ListPayslips(employeeID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Own payslips
// @Tags Payroll
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]payrollapimodels.PayslipView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/my_payslips [get]
func (c *payrollApiController) myPayslips(ctx *fiber.Ctx) error {
	resp, err := payroll.Instance.MyPayslips(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Payslip details
// @Tags Payroll
// @Description Employees only reach their own payslips
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"payslip ID"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.PayslipView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/payslip/{id} [get]
func (c *payrollApiController) payslip(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := payroll.Instance.GetPayslip(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Payslip PDF
// @Tags Payroll
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"payslip ID"
// @Produce application/pdf
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/payslip/{id}/pdf [get]
func (c *payrollApiController) payslipPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	fileName, body, err := payroll.Instance.PayslipPDF(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendAttachment(ctx, fileName, "application/pdf", body)
}
