package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"
	apimodels "quickpay-backend/models/api"
	payrollapimodels "quickpay-backend/models/api/payroll"
)

// Payroll is one processed salary run, at most one per employee and period.
type Payroll struct {
	BaseModel
	EmployeeID        string           `gorm:"uniqueIndex:idx_payroll_employee_period"`
	Employee          *Employee        `gorm:"foreignKey:EmployeeID"`
	Period            string           `gorm:"type:varchar(7);uniqueIndex:idx_payroll_employee_period"`
	PayDate           time.Time        `gorm:"type:date;index"`
	GrossSalaryID     string           `gorm:"index"`
	GrossSalary       *GrossSalary     `gorm:"foreignKey:GrossSalaryID"`
	TotalDeductionsID string           `gorm:"index"`
	TotalDeductions   *TotalDeductions `gorm:"foreignKey:TotalDeductionsID"`
	UnpaidDays        int              `gorm:"type:smallint"`
	PerDaySalary      decimal.Decimal  `gorm:"type:numeric(12,2)"`
	Bonuses           decimal.Decimal  `gorm:"type:numeric(12,2)"`
	NetSalary         decimal.Decimal  `gorm:"type:numeric(12,2)"`
	ProcessedByID     string           `gorm:"index"`
}

func (r Payroll) ToModel() payrollapimodels.PayrollView {
	result := payrollapimodels.PayrollView{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Period:       r.Period,
		PayDate:      apimodels.FormatDate(r.PayDate),
		UnpaidDays:   r.UnpaidDays,
		PerDaySalary: r.PerDaySalary,
		NetSalary:    r.NetSalary,
	}
	if r.GrossSalary != nil {
		result.Earnings = r.GrossSalary.ToModel()
	}
	if r.TotalDeductions != nil {
		result.Deductions = r.TotalDeductions.ToModel()
	}
	return result
}

// Payslip mirrors the totals of a payroll run and is never edited.
type Payslip struct {
	BaseModel
	PayrollID       string          `gorm:"uniqueIndex"`
	Payroll         *Payroll        `gorm:"foreignKey:PayrollID"`
	EmployeeID      string          `gorm:"index"`
	Employee        *Employee       `gorm:"foreignKey:EmployeeID"`
	PayDate         time.Time       `gorm:"type:date;index"`
	TotalEarnings   decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(12,2)"`
	NetPay          decimal.Decimal `gorm:"type:numeric(12,2)"`
	ArchiveKey      string          `gorm:"type:varchar(255)"` // object storage key of the rendered PDF
}

func (r Payslip) ToModel() payrollapimodels.PayslipView {
	result := payrollapimodels.PayslipView{
		ID:              r.ID,
		PayrollID:       r.PayrollID,
		EmployeeID:      r.EmployeeID,
		PayDate:         apimodels.FormatDate(r.PayDate),
		Period:          apimodels.Period(r.PayDate),
		TotalEarnings:   r.TotalEarnings,
		TotalDeductions: r.TotalDeductions,
		NetPay:          r.NetPay,
	}
	if r.Employee != nil {
		result.EmployeeName = r.Employee.GetFullName()
		result.Department = r.Employee.Department.ToHuman()
	}
	if r.Payroll != nil {
		result.Period = r.Payroll.Period
		if r.Payroll.GrossSalary != nil {
			earnings := r.Payroll.GrossSalary.ToModel()
			result.Earnings = &earnings
		}
		if r.Payroll.TotalDeductions != nil {
			deductions := r.Payroll.TotalDeductions.ToModel()
			result.Deductions = &deductions
		}
	}
	return result
}
