package pdfexport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	payrollapimodels "quickpay-backend/models/api/payroll"
	reportsapimodels "quickpay-backend/models/api/reports"
)

func TestPayslip(t *testing.T) {
	exporter := NewInstance("QuickPay Pvt. Ltd.", false)
	body, err := exporter.Payslip(payrollapimodels.PayslipView{
		EmployeeName:    "Ravi Kumar",
		Department:      "Finance",
		Period:          "2024-05",
		PayDate:         "2024-05-31",
		TotalEarnings:   decimal.NewFromInt(39000),
		TotalDeductions: decimal.NewFromInt(4200),
		NetPay:          decimal.NewFromInt(34800),
		Earnings: &payrollapimodels.Earnings{
			BasicPay:   decimal.NewFromInt(30000),
			DAAmount:   decimal.NewFromInt(3000),
			HRAAmount:  decimal.NewFromInt(6000),
			GrossTotal: decimal.NewFromInt(39000),
		},
		Deductions: &payrollapimodels.Deductions{
			PF:             decimal.NewFromInt(3600),
			PT:             decimal.NewFromInt(600),
			TotalDeduction: decimal.NewFromInt(4200),
		},
	})
	require.NoError(t, err)
	require.Equal(t, "%PDF-", string(body[:5]))
	for _, text := range []string{"QuickPay Pvt. Ltd.", "Ravi Kumar", "Rs. 39000.00", "Rs. 4200.00", "Rs. 34800.00", "Rs. 3600.00"} {
		require.Contains(t, string(body), text)
	}
}

func TestReports(t *testing.T) {
	exporter := NewInstance("QuickPay Pvt. Ltd.", false)

	t.Run("payroll summary", func(t *testing.T) {
		body, err := exporter.PayrollSummary(reportsapimodels.PayrollSummary{
			Period: "2024-05",
			Rows: []reportsapimodels.PayrollSummaryRow{
				{EmployeeName: "Ravi Kumar", GrossSalary: decimal.NewFromInt(39000), TotalDeductions: decimal.NewFromInt(4200), NetSalary: decimal.NewFromInt(34800)},
			},
			TotalGross:      decimal.NewFromInt(39000),
			TotalDeductions: decimal.NewFromInt(4200),
			TotalNet:        decimal.NewFromInt(34800),
		})
		require.NoError(t, err)
		require.Contains(t, string(body), "Payroll summary for 2024-05")
		require.Contains(t, string(body), "Rs. 34800.00")
	})

	t.Run("tax deductions", func(t *testing.T) {
		body, err := exporter.TaxDeductions(reportsapimodels.TaxDeductionReport{
			Period: "2024-05",
			Rows: []reportsapimodels.TaxDeductionRow{
				{EmployeeName: "Asha Rao", PF: decimal.NewFromInt(1800), ESI: decimal.RequireFromString("146.25"), PT: decimal.NewFromInt(450), LeaveDeduction: decimal.NewFromInt(500), Total: decimal.RequireFromString("2896.25")},
				{EmployeeName: "Ravi Kumar", PF: decimal.NewFromInt(3600), LeaveDeduction: decimal.NewFromInt(800), Total: decimal.NewFromInt(4400)},
			},
			TotalESI:            decimal.RequireFromString("146.25"),
			TotalLeaveDeduction: decimal.NewFromInt(1300),
			Total:               decimal.RequireFromString("7296.25"),
		})
		require.NoError(t, err)
		require.Contains(t, string(body), "Rs. 146.25")
		require.Contains(t, string(body), "Rs. 7296.25")
		require.Contains(t, string(body), "Rs. 1300.00")
	})

	t.Run("admin analytics", func(t *testing.T) {
		body, err := exporter.AdminAnalytics(reportsapimodels.AdminAnalytics{
			TotalUsers:   7,
			PayrollCount: 3,
			TotalNetPaid: decimal.RequireFromString("86703.75"),
			UsersByRole:  []reportsapimodels.RoleCount{{Role: "Employee", Count: 5}},
		})
		require.NoError(t, err)
		require.Contains(t, string(body), "Rs. 86703.75")
		require.Contains(t, string(body), "Processed payrolls")
	})
}
