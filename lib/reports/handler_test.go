package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	payrollstore "quickpay-backend/lib/payroll/store"
	reportsstore "quickpay-backend/lib/reports/store"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	payrollapimodels "quickpay-backend/models/api/payroll"
	reportsapimodels "quickpay-backend/models/api/reports"
	dbmodels "quickpay-backend/models/db"
)

type fakeReportsStore struct{}

func (fakeReportsStore) GetUserCounts() (reportsstore.UserCounts, error) {
	return reportsstore.UserCounts{
		Total:  5,
		Active: 4,
		ByRole: map[models.UserRole]int64{
			models.HRManagerRole: 1,
			models.EmployeeRole:  4,
		},
	}, nil
}

type fakePayrollStore struct {
	payrollstore.Provider
	periods []string
	list    []dbmodels.Payroll
}

func (f *fakePayrollStore) GetPayrollsByPeriod(period string) ([]dbmodels.Payroll, error) {
	f.periods = append(f.periods, period)
	return f.list, nil
}

func (f *fakePayrollStore) GetTotals() (int64, decimal.Decimal, error) {
	return 2, decimal.RequireFromString("51903.75"), nil
}

type fakeFeedbackStore struct {
	counts map[models.FeedbackStatus]int64
}

func (f fakeFeedbackStore) Create(rec dbmodels.Feedback) (string, error) { return "", nil }

func (f fakeFeedbackStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeFeedbackStore) GetByID(id string) (*dbmodels.Feedback, error) { return nil, nil }

func (f fakeFeedbackStore) GetList(userID string) ([]dbmodels.Feedback, error) { return nil, nil }

func (f fakeFeedbackStore) CountByStatus(status models.FeedbackStatus) (int64, error) {
	return f.counts[status], nil
}

func (f fakeFeedbackStore) CountExceptStatus(status models.FeedbackStatus) (int64, error) {
	var total int64
	for s, n := range f.counts {
		if s != status {
			total += n
		}
	}
	return total, nil
}

type fakePdf struct {
	summaries int
}

func (f *fakePdf) Payslip(view payrollapimodels.PayslipView) ([]byte, error) { return nil, nil }

func (f *fakePdf) PayrollSummary(report reportsapimodels.PayrollSummary) ([]byte, error) {
	f.summaries++
	return []byte(report.TotalNet.String()), nil
}

func (f *fakePdf) TaxDeductions(report reportsapimodels.TaxDeductionReport) ([]byte, error) {
	return []byte(report.Total.String()), nil
}

func (f *fakePdf) AdminAnalytics(report reportsapimodels.AdminAnalytics) ([]byte, error) {
	return nil, nil
}

type fakeXls struct{}

func (fakeXls) ExportPayrollSummary(report reportsapimodels.PayrollSummary) (*bytes.Buffer, error) {
	return bytes.NewBufferString(report.Period), nil
}

func (fakeXls) ExportTaxDeductions(report reportsapimodels.TaxDeductionReport) (*bytes.Buffer, error) {
	return bytes.NewBufferString(report.Period), nil
}

func payrollRec(name, gross, deductions, net string) dbmodels.Payroll {
	return dbmodels.Payroll{
		Employee: &dbmodels.Employee{
			BaseModel:  dbmodels.BaseModel{ID: "emp-" + name},
			User:       &dbmodels.User{FirstName: name},
			Department: models.DepartmentFinance,
		},
		PayDate:         time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
		GrossSalary:     &dbmodels.GrossSalary{GrossTotal: decimal.RequireFromString(gross)},
		TotalDeductions: &dbmodels.TotalDeductions{PF: decimal.NewFromInt(100), TotalDeduction: decimal.RequireFromString(deductions)},
		NetSalary:       decimal.RequireFromString(net),
	}
}

func newTestHandler(list []dbmodels.Payroll) (impl, *fakePayrollStore, *fakePdf) {
	payrolls := &fakePayrollStore{list: list}
	pdf := &fakePdf{}
	return impl{
		store:        fakeReportsStore{},
		payrollStore: payrolls,
		feedbackStore: fakeFeedbackStore{counts: map[models.FeedbackStatus]int64{
			models.FeedbackPending:  3,
			models.FeedbackResolved: 2,
			models.FeedbackReviewed: 1,
		}},
		pdf: pdf,
		xls: fakeXls{},
		now: func() time.Time { return time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC) },
	}, payrolls, pdf
}

func TestPayrollSummary(t *testing.T) {
	h, payrolls, pdf := newTestHandler([]dbmodels.Payroll{
		payrollRec("Ravi", "39000", "4200", "34800"),
		payrollRec("Asha", "19500", "2396.25", "17103.75"),
	})

	t.Run("explicit month", func(t *testing.T) {
		report, err := h.PayrollSummary(apimodels.MonthFilter{Month: 5, Year: 2024})
		require.NoError(t, err)
		require.Equal(t, "2024-05", report.Period)
		require.Len(t, report.Rows, 2)
		require.Equal(t, "Finance", report.Rows[0].Department)
		require.True(t, decimal.RequireFromString("58500").Equal(report.TotalGross))
		require.True(t, decimal.RequireFromString("6596.25").Equal(report.TotalDeductions))
		require.True(t, decimal.RequireFromString("51903.75").Equal(report.TotalNet))
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		_, err := h.PayrollSummary(apimodels.MonthFilter{})
		require.NoError(t, err)
		require.Equal(t, "2024-06", payrolls.periods[len(payrolls.periods)-1])
	})

	t.Run("pdf and xlsx", func(t *testing.T) {
		body, err := h.PayrollSummaryPDF(apimodels.MonthFilter{Month: 5, Year: 2024})
		require.NoError(t, err)
		require.Equal(t, "51903.75", string(body))
		require.Equal(t, 1, pdf.summaries)

		buf, err := h.PayrollSummaryXlsx(apimodels.MonthFilter{Month: 5, Year: 2024})
		require.NoError(t, err)
		require.Equal(t, "2024-05", buf.String())
	})
}

func TestTaxDeductions(t *testing.T) {
	h, _, _ := newTestHandler([]dbmodels.Payroll{
		payrollRec("Ravi", "39000", "4200", "34800"),
		payrollRec("Asha", "19500", "2396.25", "17103.75"),
	})
	report, err := h.TaxDeductions(apimodels.MonthFilter{Month: 5, Year: 2024})
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	require.Equal(t, "Ravi", report.Rows[0].EmployeeName)
	require.True(t, decimal.NewFromInt(200).Equal(report.TotalPF))
	require.True(t, decimal.RequireFromString("6596.25").Equal(report.Total))

	t.Run("leave deductions are totalled", func(t *testing.T) {
		withLeave := payrollRec("Meena", "30000", "5100", "24900")
		withLeave.TotalDeductions = &dbmodels.TotalDeductions{
			PF:             decimal.NewFromInt(3600),
			PT:             decimal.NewFromInt(500),
			LeaveDeduction: decimal.NewFromInt(1000),
			TotalDeduction: decimal.NewFromInt(5100),
		}
		h, _, _ := newTestHandler([]dbmodels.Payroll{withLeave})
		report, err := h.TaxDeductions(apimodels.MonthFilter{Month: 5, Year: 2024})
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(1000).Equal(report.TotalLeaveDeduction))
		sum := report.TotalPF.Add(report.TotalESI).Add(report.TotalPT).Add(report.TotalIncomeTax).Add(report.TotalLeaveDeduction)
		require.True(t, sum.Equal(report.Total))
	})
}

func TestAdminAnalytics(t *testing.T) {
	h, _, _ := newTestHandler(nil)
	report, err := h.AdminAnalytics()
	require.NoError(t, err)
	require.EqualValues(t, 5, report.TotalUsers)
	require.EqualValues(t, 4, report.ActiveUsers)
	require.EqualValues(t, 1, report.InactiveUsers)
	require.EqualValues(t, 2, report.PayrollCount)
	require.True(t, decimal.RequireFromString("51903.75").Equal(report.TotalNetPaid))
	require.EqualValues(t, 1, report.FeedbackReviewed)
	// resolved but not yet reviewed feedback counts as pending
	require.EqualValues(t, 5, report.FeedbackPending)
	require.Len(t, report.UsersByRole, 4)
	require.Equal(t, reportsapimodels.RoleCount{Role: "Employee", Count: 4}, report.UsersByRole[3])
}
