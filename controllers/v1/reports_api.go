package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"quickpay-backend/controllers"
	"quickpay-backend/lib/reports"
	"quickpay-backend/middleware"
	apimodels "quickpay-backend/models/api"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportsApiController struct {
	controllers.BaseAPIController
}

func InitReportsApiRouters(app *fiber.App) {
	controller := reportsApiController{}
	app.Route("reports", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("payroll_summary", controller.payrollSummary)
		router.Get("payroll_summary/pdf", controller.payrollSummaryPdf)
		router.Get("payroll_summary/xlsx", controller.payrollSummaryXlsx)
		router.Get("tax_deductions", controller.taxDeductions)
		router.Get("tax_deductions/pdf", controller.taxDeductionsPdf)
		router.Get("tax_deductions/xlsx", controller.taxDeductionsXlsx)
		router.Get("admin_analytics", controller.adminAnalytics)
		router.Get("admin_analytics/pdf", controller.adminAnalyticsPdf)
	})
}

func (c *reportsApiController) monthFilter(ctx *fiber.Ctx) (apimodels.MonthFilter, error) {
	var filter apimodels.MonthFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return filter, err
	}
	return filter, filter.Validate()
}

// @Summary Payroll summary
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.PayrollSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/payroll_summary [get]
func (c *reportsApiController) payrollSummary(ctx *fiber.Ctx) error {
	filter, err := c.monthFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := reports.Instance.PayrollSummary(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Payroll summary PDF
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Produce application/pdf
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/payroll_summary/pdf [get]
func (c *reportsApiController) payrollSummaryPdf(ctx *fiber.Ctx) error {
	filter, err := c.monthFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	body, err := reports.Instance.PayrollSummaryPDF(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendAttachment(ctx, reportFileName("payroll_summary", filter, "pdf"), "application/pdf", body)
}

// @Summary Payroll summary XLSX
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/payroll_summary/xlsx [get]
func (c *reportsApiController) payrollSummaryXlsx(ctx *fiber.Ctx) error {
	filter, err := c.monthFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := reports.Instance.PayrollSummaryXlsx(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendAttachment(ctx, reportFileName("payroll_summary", filter, "xlsx"), xlsxContentType, data.Bytes())
}

// @Summary Tax deductions
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.TaxDeductionReport}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/tax_deductions [get]
func (c *reportsApiController) taxDeductions(ctx *fiber.Ctx) error {
	filter, err := c.monthFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	resp, err := reports.Instance.TaxDeductions(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tax deductions PDF
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Produce application/pdf
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/tax_deductions/pdf [get]
func (c *reportsApiController) taxDeductionsPdf(ctx *fiber.Ctx) error {
	filter, err := c.monthFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	body, err := reports.Instance.TaxDeductionsPDF(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendAttachment(ctx, reportFileName("tax_deductions", filter, "pdf"), "application/pdf", body)
}

// @Summary Tax deductions XLSX
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month				query		int		false	"1..12, current month by default"
// @Param   year				query		int		false	"current year by default"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/tax_deductions/xlsx [get]
func (c *reportsApiController) taxDeductionsXlsx(ctx *fiber.Ctx) error {
	filter, err := c.monthFilter(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	data, err := reports.Instance.TaxDeductionsXlsx(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendAttachment(ctx, reportFileName("tax_deductions", filter, "xlsx"), xlsxContentType, data.Bytes())
}

// @Summary Admin analytics
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.AdminAnalytics}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/admin_analytics [get]
func (c *reportsApiController) adminAnalytics(ctx *fiber.Ctx) error {
	resp, err := reports.Instance.AdminAnalytics()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Admin analytics PDF
// @Tags Reports
// @Param   Authorization		header		string	true	"Authorization token"
// @Produce application/pdf
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/admin_analytics/pdf [get]
func (c *reportsApiController) adminAnalyticsPdf(ctx *fiber.Ctx) error {
	body, err := reports.Instance.AdminAnalyticsPDF()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendAttachment(ctx, "admin_analytics.pdf", "application/pdf", body)
}

func reportFileName(name string, filter apimodels.MonthFilter, ext string) string {
	if filter.Month == 0 || filter.Year == 0 {
		return fmt.Sprintf("%s.%s", name, ext)
	}
	return fmt.Sprintf("%s_%04d_%02d.%s", name, filter.Year, filter.Month, ext)
}
