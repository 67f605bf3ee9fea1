package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	pdfexport "quickpay-backend/lib/export/pdf"
	xlsexport "quickpay-backend/lib/export/xls"
	feedbackstore "quickpay-backend/lib/feedback/store"
	payrollstore "quickpay-backend/lib/payroll/store"
	reportsstore "quickpay-backend/lib/reports/store"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	reportsapimodels "quickpay-backend/models/api/reports"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	PayrollSummary(filter apimodels.MonthFilter) (reportsapimodels.PayrollSummary, error)
	PayrollSummaryPDF(filter apimodels.MonthFilter) ([]byte, error)
	PayrollSummaryXlsx(filter apimodels.MonthFilter) (*bytes.Buffer, error)
	TaxDeductions(filter apimodels.MonthFilter) (reportsapimodels.TaxDeductionReport, error)
	TaxDeductionsPDF(filter apimodels.MonthFilter) ([]byte, error)
	TaxDeductionsXlsx(filter apimodels.MonthFilter) (*bytes.Buffer, error)
	AdminAnalytics() (reportsapimodels.AdminAnalytics, error)
	AdminAnalyticsPDF() ([]byte, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"pdf_export", pdfexport.Instance,
		"xls_export", xlsexport.Instance,
	)
	Instance = NewInstance(reportsstore.NewInstance(db.DB), payrollstore.NewInstance(db.DB),
		feedbackstore.NewInstance(db.DB), pdfexport.Instance, xlsexport.Instance)
}

func NewInstance(store reportsstore.Provider, payrollStore payrollstore.Provider, feedbackStore feedbackstore.Provider,
	pdf pdfexport.Provider, xls xlsexport.Provider) Provider {
	return impl{
		store:         store,
		payrollStore:  payrollStore,
		feedbackStore: feedbackStore,
		pdf:           pdf,
		xls:           xls,
		now:           time.Now,
	}
}

type impl struct {
	store         reportsstore.Provider
	payrollStore  payrollstore.Provider
	feedbackStore feedbackstore.Provider
	pdf           pdfexport.Provider
	xls           xlsexport.Provider
	now           func() time.Time
}

func (i impl) PayrollSummary(filter apimodels.MonthFilter) (reportsapimodels.PayrollSummary, error) {
	period, list, err := i.payrolls(filter)
	if err != nil {
		return reportsapimodels.PayrollSummary{}, err
	}
	result := reportsapimodels.PayrollSummary{
		Period: period,
		Rows:   make([]reportsapimodels.PayrollSummaryRow, 0, len(list)),
	}
	for _, rec := range list {
		row := reportsapimodels.PayrollSummaryRow{
			PayDate:   apimodels.FormatDate(rec.PayDate),
			NetSalary: rec.NetSalary,
		}
		if rec.Employee != nil {
			row.EmployeeName = employeeName(rec.Employee)
			row.Department = rec.Employee.Department.ToHuman()
		}
		if rec.GrossSalary != nil {
			row.GrossSalary = rec.GrossSalary.GrossTotal
		}
		if rec.TotalDeductions != nil {
			row.TotalDeductions = rec.TotalDeductions.TotalDeduction
		}
		result.TotalGross = result.TotalGross.Add(row.GrossSalary)
		result.TotalDeductions = result.TotalDeductions.Add(row.TotalDeductions)
		result.TotalNet = result.TotalNet.Add(row.NetSalary)
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func (i impl) PayrollSummaryPDF(filter apimodels.MonthFilter) ([]byte, error) {
	report, err := i.PayrollSummary(filter)
	if err != nil {
		return nil, err
	}
	return i.pdf.PayrollSummary(report)
}

func (i impl) PayrollSummaryXlsx(filter apimodels.MonthFilter) (*bytes.Buffer, error) {
	report, err := i.PayrollSummary(filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportPayrollSummary(report)
}

func (i impl) TaxDeductions(filter apimodels.MonthFilter) (reportsapimodels.TaxDeductionReport, error) {
	period, list, err := i.payrolls(filter)
	if err != nil {
		return reportsapimodels.TaxDeductionReport{}, err
	}
	result := reportsapimodels.TaxDeductionReport{
		Period: period,
		Rows:   make([]reportsapimodels.TaxDeductionRow, 0, len(list)),
	}
	for _, rec := range list {
		if rec.TotalDeductions == nil {
			continue
		}
		ded := rec.TotalDeductions
		row := reportsapimodels.TaxDeductionRow{
			PF:             ded.PF,
			ESI:            ded.ESI,
			PT:             ded.PT,
			IncomeTax:      ded.IncomeTax,
			LeaveDeduction: ded.LeaveDeduction,
			Total:          ded.TotalDeduction,
		}
		if rec.Employee != nil {
			row.EmployeeName = employeeName(rec.Employee)
		}
		result.TotalPF = result.TotalPF.Add(row.PF)
		result.TotalESI = result.TotalESI.Add(row.ESI)
		result.TotalPT = result.TotalPT.Add(row.PT)
		result.TotalIncomeTax = result.TotalIncomeTax.Add(row.IncomeTax)
		result.TotalLeaveDeduction = result.TotalLeaveDeduction.Add(row.LeaveDeduction)
		result.Total = result.Total.Add(row.Total)
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func (i impl) TaxDeductionsPDF(filter apimodels.MonthFilter) ([]byte, error) {
	report, err := i.TaxDeductions(filter)
	if err != nil {
		return nil, err
	}
	return i.pdf.TaxDeductions(report)
}

func (i impl) TaxDeductionsXlsx(filter apimodels.MonthFilter) (*bytes.Buffer, error) {
	report, err := i.TaxDeductions(filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportTaxDeductions(report)
}

func (i impl) AdminAnalytics() (reportsapimodels.AdminAnalytics, error) {
	users, err := i.store.GetUserCounts()
	if err != nil {
		log.WithError(err).Error("user counts loading failed")
		return reportsapimodels.AdminAnalytics{}, err
	}
	payrollCount, netPaid, err := i.payrollStore.GetTotals()
	if err != nil {
		log.WithError(err).Error("payroll totals loading failed")
		return reportsapimodels.AdminAnalytics{}, err
	}
	reviewed, err := i.feedbackStore.CountByStatus(models.FeedbackReviewed)
	if err != nil {
		log.WithError(err).Error("feedback count loading failed")
		return reportsapimodels.AdminAnalytics{}, err
	}
	// resolved feedback still waits for review
	pending, err := i.feedbackStore.CountExceptStatus(models.FeedbackReviewed)
	if err != nil {
		log.WithError(err).Error("feedback count loading failed")
		return reportsapimodels.AdminAnalytics{}, err
	}
	result := reportsapimodels.AdminAnalytics{
		TotalUsers:       users.Total,
		ActiveUsers:      users.Active,
		InactiveUsers:    users.Total - users.Active,
		PayrollCount:     payrollCount,
		TotalNetPaid:     netPaid,
		FeedbackReviewed: reviewed,
		FeedbackPending:  pending,
	}
	for _, role := range models.AllUserRoles() {
		result.UsersByRole = append(result.UsersByRole, reportsapimodels.RoleCount{
			Role:  role.ToHuman(),
			Count: users.ByRole[role],
		})
	}
	return result, nil
}

func (i impl) AdminAnalyticsPDF() ([]byte, error) {
	report, err := i.AdminAnalytics()
	if err != nil {
		return nil, err
	}
	return i.pdf.AdminAnalytics(report)
}

func (i impl) payrolls(filter apimodels.MonthFilter) (string, []dbmodels.Payroll, error) {
	month, year := filter.Resolve(i.now())
	period := fmt.Sprintf("%04d-%02d", year, int(month))
	list, err := i.payrollStore.GetPayrollsByPeriod(period)
	if err != nil {
		log.WithField("period", period).WithError(err).Error("payrolls loading failed")
		return "", nil, err
	}
	return period, list, nil
}

func employeeName(rec *dbmodels.Employee) string {
	if name := strings.TrimSpace(rec.GetFullName()); name != "" {
		return name
	}
	return rec.ID
}
