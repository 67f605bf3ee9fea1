package xlsexport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	reportsapimodels "quickpay-backend/models/api/reports"
)

func TestExportPayrollSummary(t *testing.T) {
	buf, err := impl{}.ExportPayrollSummary(reportsapimodels.PayrollSummary{
		Period: "2024-05",
		Rows: []reportsapimodels.PayrollSummaryRow{
			{EmployeeName: "Ravi Kumar", Department: "Finance", PayDate: "2024-05-31",
				GrossSalary: decimal.NewFromInt(39000), TotalDeductions: decimal.NewFromInt(4200), NetSalary: decimal.NewFromInt(34800)},
			{EmployeeName: "Asha Rao", Department: "Sales", PayDate: "2024-05-31",
				GrossSalary: decimal.NewFromInt(19500), TotalDeductions: decimal.RequireFromString("2396.25"), NetSalary: decimal.RequireFromString("17103.75")},
		},
		TotalGross:      decimal.NewFromInt(58500),
		TotalDeductions: decimal.RequireFromString("6596.25"),
		TotalNet:        decimal.RequireFromString("51903.75"),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payroll 2024-05")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, payrollSummaryHeaders, rows[0])
	require.Equal(t, "Ravi Kumar", rows[1][0])
	require.Equal(t, "Total", rows[3][0])

	net, err := f.GetCellValue("Payroll 2024-05", "F4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, "51903.75", net)
}

func TestExportTaxDeductions(t *testing.T) {
	buf, err := impl{}.ExportTaxDeductions(reportsapimodels.TaxDeductionReport{
		Period: "2024-05",
		Rows: []reportsapimodels.TaxDeductionRow{
			{EmployeeName: "Asha Rao", PF: decimal.NewFromInt(1800), ESI: decimal.RequireFromString("146.25"),
				PT: decimal.NewFromInt(450), LeaveDeduction: decimal.NewFromInt(650), Total: decimal.RequireFromString("3046.25")},
		},
		TotalPF:             decimal.NewFromInt(1800),
		TotalESI:            decimal.RequireFromString("146.25"),
		TotalPT:             decimal.NewFromInt(450),
		TotalLeaveDeduction: decimal.NewFromInt(650),
		Total:               decimal.RequireFromString("3046.25"),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	esi, err := f.GetCellValue("Tax 2024-05", "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, "146.25", esi)
	total, err := f.GetCellValue("Tax 2024-05", "G3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, "3046.25", total)
	leave, err := f.GetCellValue("Tax 2024-05", "F3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, "650", leave)
}
