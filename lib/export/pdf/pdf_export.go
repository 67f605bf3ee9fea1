package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	payrollapimodels "quickpay-backend/models/api/payroll"
	reportsapimodels "quickpay-backend/models/api/reports"
)

const (
	fontFamily  = "Helvetica"
	lineHeight  = 8.0
	pageWidth   = 190.0
	currencySym = "Rs."
)

type Provider interface {
	Payslip(view payrollapimodels.PayslipView) ([]byte, error)
	PayrollSummary(report reportsapimodels.PayrollSummary) ([]byte, error)
	TaxDeductions(report reportsapimodels.TaxDeductionReport) ([]byte, error)
	AdminAnalytics(report reportsapimodels.AdminAnalytics) ([]byte, error)
}

var Instance Provider

func NewHandler(companyName string, compress bool) {
	Instance = NewInstance(companyName, compress)
}

func NewInstance(companyName string, compress bool) Provider {
	return impl{
		companyName: companyName,
		compress:    compress,
	}
}

type impl struct {
	companyName string
	compress    bool
}

type column struct {
	title string
	width float64
	align string
}

func (i impl) Payslip(view payrollapimodels.PayslipView) (pdfFile []byte, err error) {
	defer recoverPanic("Payslip", &err)
	pdf := i.newDocument("Payslip " + view.Period)
	i.writeHeader(pdf, "Payslip for "+view.Period)

	writePair(pdf, "Employee", view.EmployeeName)
	writePair(pdf, "Department", view.Department)
	writePair(pdf, "Pay date", view.PayDate)
	pdf.Ln(4)

	if view.Earnings != nil {
		writeSection(pdf, "Earnings")
		writeAmount(pdf, "Basic pay", view.Earnings.BasicPay)
		writeAmount(pdf, "Dearness allowance", view.Earnings.DAAmount)
		writeAmount(pdf, "House rent allowance", view.Earnings.HRAAmount)
		writeAmount(pdf, "Other allowances", view.Earnings.OtherAllowances)
		writeAmount(pdf, "Performance bonus", view.Earnings.PerformanceBonus)
		pdf.Ln(2)
	}
	writeAmount(pdf, "Total earnings", view.TotalEarnings)
	pdf.Ln(4)

	if view.Deductions != nil {
		writeSection(pdf, "Deductions")
		writeAmount(pdf, "Provident fund", view.Deductions.PF)
		writeAmount(pdf, "Employee state insurance", view.Deductions.ESI)
		writeAmount(pdf, "Professional tax", view.Deductions.PT)
		writeAmount(pdf, "Income tax", view.Deductions.IncomeTax)
		writeAmount(pdf, "Leave deduction", view.Deductions.LeaveDeduction)
		pdf.Ln(2)
	}
	writeAmount(pdf, "Total deductions", view.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "B", 13)
	writeAmount(pdf, "Net pay", view.NetPay)
	return i.output(pdf)
}

var summaryColumns = []column{
	{"Employee", 50, "L"},
	{"Department", 35, "L"},
	{"Pay date", 25, "C"},
	{"Gross", 27, "R"},
	{"Deductions", 27, "R"},
	{"Net", 26, "R"},
}

func (i impl) PayrollSummary(report reportsapimodels.PayrollSummary) (pdfFile []byte, err error) {
	defer recoverPanic("PayrollSummary", &err)
	pdf := i.newDocument("Payroll summary " + report.Period)
	i.writeHeader(pdf, "Payroll summary for "+report.Period)

	writeTableHeader(pdf, summaryColumns)
	for _, row := range report.Rows {
		writeTableRow(pdf, summaryColumns, []string{
			row.EmployeeName,
			row.Department,
			row.PayDate,
			formatMoney(row.GrossSalary),
			formatMoney(row.TotalDeductions),
			formatMoney(row.NetSalary),
		})
	}
	pdf.SetFont(fontFamily, "B", 10)
	writeTableRow(pdf, summaryColumns, []string{
		"Total", "", "",
		formatMoney(report.TotalGross),
		formatMoney(report.TotalDeductions),
		formatMoney(report.TotalNet),
	})
	return i.output(pdf)
}

var taxColumns = []column{
	{"Employee", 45, "L"},
	{"PF", 24, "R"},
	{"ESI", 22, "R"},
	{"PT", 22, "R"},
	{"Income tax", 25, "R"},
	{"Leave", 24, "R"},
	{"Total", 28, "R"},
}

func (i impl) TaxDeductions(report reportsapimodels.TaxDeductionReport) (pdfFile []byte, err error) {
	defer recoverPanic("TaxDeductions", &err)
	pdf := i.newDocument("Tax deductions " + report.Period)
	i.writeHeader(pdf, "Tax and deduction report for "+report.Period)

	writeTableHeader(pdf, taxColumns)
	for _, row := range report.Rows {
		writeTableRow(pdf, taxColumns, []string{
			row.EmployeeName,
			formatMoney(row.PF),
			formatMoney(row.ESI),
			formatMoney(row.PT),
			formatMoney(row.IncomeTax),
			formatMoney(row.LeaveDeduction),
			formatMoney(row.Total),
		})
	}
	pdf.SetFont(fontFamily, "B", 10)
	writeTableRow(pdf, taxColumns, []string{
		"Total",
		formatMoney(report.TotalPF),
		formatMoney(report.TotalESI),
		formatMoney(report.TotalPT),
		formatMoney(report.TotalIncomeTax),
		formatMoney(report.TotalLeaveDeduction),
		formatMoney(report.Total),
	})
	return i.output(pdf)
}

func (i impl) AdminAnalytics(report reportsapimodels.AdminAnalytics) (pdfFile []byte, err error) {
	defer recoverPanic("AdminAnalytics", &err)
	pdf := i.newDocument("Admin analytics")
	i.writeHeader(pdf, "Admin analytics")

	writeSection(pdf, "Users")
	writePair(pdf, "Total users", strconv.FormatInt(report.TotalUsers, 10))
	writePair(pdf, "Active users", strconv.FormatInt(report.ActiveUsers, 10))
	writePair(pdf, "Inactive users", strconv.FormatInt(report.InactiveUsers, 10))
	for _, item := range report.UsersByRole {
		writePair(pdf, item.Role, strconv.FormatInt(item.Count, 10))
	}
	pdf.Ln(4)

	writeSection(pdf, "Payroll")
	writePair(pdf, "Processed payrolls", strconv.FormatInt(report.PayrollCount, 10))
	writeAmount(pdf, "Total net paid", report.TotalNetPaid)
	pdf.Ln(4)

	writeSection(pdf, "Feedback")
	writePair(pdf, "Reviewed", strconv.FormatInt(report.FeedbackReviewed, 10))
	writePair(pdf, "Pending", strconv.FormatInt(report.FeedbackPending, 10))
	return i.output(pdf)
}

func (i impl) newDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(i.compress)
	pdf.SetTitle(title, false)
	pdf.SetCreator(i.companyName, false)
	pdf.AddPage()
	return pdf
}

func (i impl) writeHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(pageWidth, 10, i.companyName, "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(pageWidth, lineHeight, title, "B", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont(fontFamily, "", 10)
}

func (i impl) output(pdf *fpdf.Fpdf) ([]byte, error) {
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(pageWidth, lineHeight, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
}

func writePair(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(pageWidth-70, lineHeight, value, "", 1, "L", false, 0, "")
}

func writeAmount(pdf *fpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.CellFormat(120, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(pageWidth-120, lineHeight, formatMoney(amount), "", 1, "R", false, 0, "")
}

func writeTableHeader(pdf *fpdf.Fpdf, columns []column) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, lineHeight, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 9)
}

func writeTableRow(pdf *fpdf.Fpdf, columns []column, values []string) {
	for idx, col := range columns {
		pdf.CellFormat(col.width, lineHeight, values[idx], "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatMoney(v decimal.Decimal) string {
	return fmt.Sprintf("%s %s", currencySym, v.StringFixed(2))
}

func recoverPanic(name string, err *error) {
	if r := recover(); r != nil {
		*err = errors.Errorf("%s panic recover: %v", name, r)
	}
}
