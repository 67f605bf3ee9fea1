package payrollapimodels

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"quickpay-backend/models"
	paypolicyapimodels "quickpay-backend/models/api/pay-policy"
)

type RunPayroll struct {
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	TaxType         models.TaxType  `json:"tax_type"`   // income_tax | other
	TaxAmount       decimal.Decimal `json:"tax_amount"` // counted as income tax only for tax_type income_tax
}

func (r RunPayroll) Validate() error {
	if r.OtherAllowances.IsNegative() {
		return errors.New("other allowances must not be negative")
	}
	if r.TaxAmount.IsNegative() {
		return errors.New("tax amount must not be negative")
	}
	if r.TaxType == "" {
		if r.TaxAmount.IsPositive() {
			return errors.New("tax_type is required when tax_amount is set")
		}
		return nil
	}
	return r.TaxType.Validate()
}

type PreviewView struct {
	EmployeeID       string                         `json:"employee_id"`
	Period           string                         `json:"period"`
	Salary           decimal.Decimal                `json:"salary"`
	Policy           *paypolicyapimodels.PolicyView `json:"policy"` // nil when no approved policy applies
	UnpaidDays       int                            `json:"unpaid_days"`
	PerDaySalary     decimal.Decimal                `json:"per_day_salary"`
	PerformanceBonus decimal.Decimal                `json:"performance_bonus"`
	AlreadyProcessed bool                           `json:"already_processed"`
}

type Earnings struct {
	BasicPay         decimal.Decimal `json:"basic_pay"`
	DAAmount         decimal.Decimal `json:"da_amount"`
	HRAAmount        decimal.Decimal `json:"hra_amount"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	PerformanceBonus decimal.Decimal `json:"performance_bonus"`
	GrossTotal       decimal.Decimal `json:"gross_total"`
}

type Deductions struct {
	PF             decimal.Decimal `json:"pf"`
	ESI            decimal.Decimal `json:"esi"`
	PT             decimal.Decimal `json:"pt"`
	IncomeTax      decimal.Decimal `json:"income_tax"`
	LeaveDeduction decimal.Decimal `json:"leave_deduction"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
}

type PayrollView struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Period       string          `json:"period"`
	PayDate      string          `json:"pay_date"`
	UnpaidDays   int             `json:"unpaid_days"`
	PerDaySalary decimal.Decimal `json:"per_day_salary"`
	Earnings     Earnings        `json:"earnings"`
	Deductions   Deductions      `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	PayslipID    string          `json:"payslip_id"`
}

type PayslipView struct {
	ID              string          `json:"id"`
	PayrollID       string          `json:"payroll_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Department      string          `json:"department"`
	Period          string          `json:"period"`
	PayDate         string          `json:"pay_date"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Earnings        *Earnings       `json:"earnings,omitempty"`
	Deductions      *Deductions     `json:"deductions,omitempty"`
}
