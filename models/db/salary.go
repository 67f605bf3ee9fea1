package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"
	"quickpay-backend/models"
	payrollapimodels "quickpay-backend/models/api/payroll"
)

// GrossSalary is the earnings snapshot of one payroll run.
type GrossSalary struct {
	BaseModel
	EmployeeID       string          `gorm:"index"`
	BasicPay         decimal.Decimal `gorm:"type:numeric(12,2)"`
	DAAmount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	HRAAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	OtherAllowances  decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerformanceBonus decimal.Decimal `gorm:"type:numeric(12,2)"`
	Allowances       decimal.Decimal `gorm:"type:numeric(12,2)"` // other allowances plus bonus
	GrossTotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (r GrossSalary) ToModel() payrollapimodels.Earnings {
	return payrollapimodels.Earnings{
		BasicPay:         r.BasicPay,
		DAAmount:         r.DAAmount,
		HRAAmount:        r.HRAAmount,
		OtherAllowances:  r.OtherAllowances,
		PerformanceBonus: r.PerformanceBonus,
		GrossTotal:       r.GrossTotal,
	}
}

// TotalDeductions is the deductions snapshot of one payroll run.
type TotalDeductions struct {
	BaseModel
	EmployeeID        string          `gorm:"index"`
	GrossSalaryAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	PF                decimal.Decimal `gorm:"type:numeric(12,2)"`
	ESI               decimal.Decimal `gorm:"type:numeric(12,2)"`
	PT                decimal.Decimal `gorm:"type:numeric(12,2)"`
	IncomeTax         decimal.Decimal `gorm:"type:numeric(12,2)"`
	LeaveDeduction    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalDeduction    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (r TotalDeductions) ToModel() payrollapimodels.Deductions {
	return payrollapimodels.Deductions{
		PF:             r.PF,
		ESI:            r.ESI,
		PT:             r.PT,
		IncomeTax:      r.IncomeTax,
		LeaveDeduction: r.LeaveDeduction,
		TotalDeduction: r.TotalDeduction,
	}
}

type TaxDeduction struct {
	BaseModel
	EmployeeID    string          `gorm:"index"`
	PayrollID     string          `gorm:"index"`
	TaxType       models.TaxType  `gorm:"type:varchar(20)"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeductionDate time.Time       `gorm:"type:date"`
}
