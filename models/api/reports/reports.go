package reportsapimodels

import (
	"github.com/shopspring/decimal"
)

type PayrollSummaryRow struct {
	EmployeeName    string          `json:"employee_name"`
	Department      string          `json:"department"`
	PayDate         string          `json:"pay_date"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

type PayrollSummary struct {
	Period          string              `json:"period"`
	Rows            []PayrollSummaryRow `json:"rows"`
	TotalGross      decimal.Decimal     `json:"total_gross"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	TotalNet        decimal.Decimal     `json:"total_net"`
}

type TaxDeductionRow struct {
	EmployeeName   string          `json:"employee_name"`
	PF             decimal.Decimal `json:"pf"`
	ESI            decimal.Decimal `json:"esi"`
	PT             decimal.Decimal `json:"pt"`
	IncomeTax      decimal.Decimal `json:"income_tax"`
	LeaveDeduction decimal.Decimal `json:"leave_deduction"`
	Total          decimal.Decimal `json:"total"`
}

type TaxDeductionReport struct {
	Period              string            `json:"period"`
	Rows                []TaxDeductionRow `json:"rows"`
	TotalPF             decimal.Decimal   `json:"total_pf"`
	TotalESI            decimal.Decimal   `json:"total_esi"`
	TotalPT             decimal.Decimal   `json:"total_pt"`
	TotalIncomeTax      decimal.Decimal   `json:"total_income_tax"`
	TotalLeaveDeduction decimal.Decimal   `json:"total_leave_deduction"`
	Total               decimal.Decimal   `json:"total"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type AdminAnalytics struct {
	TotalUsers       int64           `json:"total_users"`
	ActiveUsers      int64           `json:"active_users"`
	InactiveUsers    int64           `json:"inactive_users"`
	UsersByRole      []RoleCount     `json:"users_by_role"`
	PayrollCount     int64           `json:"payroll_count"`
	TotalNetPaid     decimal.Decimal `json:"total_net_paid"`
	FeedbackReviewed int64           `json:"feedback_reviewed"`
	FeedbackPending  int64           `json:"feedback_pending"`
}
