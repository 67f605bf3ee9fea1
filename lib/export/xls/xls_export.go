package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	reportsapimodels "quickpay-backend/models/api/reports"
)

const defaultSheet = "Sheet1"

type Provider interface {
	ExportPayrollSummary(report reportsapimodels.PayrollSummary) (*bytes.Buffer, error)
	ExportTaxDeductions(report reportsapimodels.TaxDeductionReport) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var payrollSummaryHeaders = []string{"Employee", "Department", "Pay date", "Gross salary", "Total deductions", "Net salary"}

var taxDeductionHeaders = []string{"Employee", "PF", "ESI", "PT", "Income tax", "Leave deduction", "Total"}

func (i impl) ExportPayrollSummary(report reportsapimodels.PayrollSummary) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(report.Rows)+1)
	for _, item := range report.Rows {
		rows = append(rows, []interface{}{
			item.EmployeeName,
			item.Department,
			item.PayDate,
			amount(item.GrossSalary),
			amount(item.TotalDeductions),
			amount(item.NetSalary),
		})
	}
	rows = append(rows, []interface{}{
		"Total", "", "",
		amount(report.TotalGross),
		amount(report.TotalDeductions),
		amount(report.TotalNet),
	})
	return export("Payroll "+report.Period, payrollSummaryHeaders, 4, rows)
}

func (i impl) ExportTaxDeductions(report reportsapimodels.TaxDeductionReport) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(report.Rows)+1)
	for _, item := range report.Rows {
		rows = append(rows, []interface{}{
			item.EmployeeName,
			amount(item.PF),
			amount(item.ESI),
			amount(item.PT),
			amount(item.IncomeTax),
			amount(item.LeaveDeduction),
			amount(item.Total),
		})
	}
	rows = append(rows, []interface{}{
		"Total",
		amount(report.TotalPF),
		amount(report.TotalESI),
		amount(report.TotalPT),
		amount(report.TotalIncomeTax),
		amount(report.TotalLeaveDeduction),
		amount(report.Total),
	})
	return export("Tax "+report.Period, taxDeductionHeaders, 2, rows)
}

func export(sheetName string, headers []string, firstMoneyCol int, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file closing failed")
		}
	}()
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, err
	}
	w := newSheetWriter(f, sheetName, len(headers))
	if err := w.writeHeader(headers); err != nil {
		return nil, errors.Wrap(err, "xlsx header writing failed")
	}
	firstDataRow := w.row + 1
	for _, values := range rows {
		if err := w.writeRow(values); err != nil {
			return nil, errors.Wrap(err, "xlsx data writing failed")
		}
	}
	if err := w.styleBody(firstDataRow, firstMoneyCol); err != nil {
		return nil, errors.Wrap(err, "xlsx data style failed")
	}
	return f.WriteToBuffer()
}

// amount keeps two decimals as a number cell.
func amount(v decimal.Decimal) float64 {
	result, _ := v.Round(2).Float64()
	return result
}
