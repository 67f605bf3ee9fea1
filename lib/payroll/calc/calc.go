// Package calc holds the payroll formulas. Every amount is rounded to two
// decimal places, half away from zero.
package calc

import (
	"github.com/shopspring/decimal"
	"quickpay-backend/models"
)

const moneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)

	// PerDayDivisor is fixed, it does not follow calendar days in the month.
	PerDayDivisor = decimal.NewFromInt(30)

	ESICeiling = decimal.NewFromInt(21000)
	ESIRate    = decimal.RequireFromString("0.75")
)

type ptSlab struct {
	from   decimal.Decimal
	amount decimal.Decimal
}

// professional tax slabs ordered by lower bound, each covers [from, next.from)
var ptSlabs = []ptSlab{
	{from: decimal.NewFromInt(12000), amount: decimal.NewFromInt(320)},
	{from: decimal.NewFromInt(18000), amount: decimal.NewFromInt(450)},
	{from: decimal.NewFromInt(30000), amount: decimal.NewFromInt(600)},
	{from: decimal.NewFromInt(45000), amount: decimal.NewFromInt(750)},
	{from: decimal.NewFromInt(100000), amount: decimal.NewFromInt(1000)},
	{from: decimal.NewFromInt(125000), amount: decimal.NewFromInt(1250)},
}

var reviewBonusPercent = map[int]decimal.Decimal{
	1: decimal.Zero,
	2: decimal.NewFromInt(4),
	3: decimal.NewFromInt(8),
	4: decimal.NewFromInt(15),
	5: decimal.NewFromInt(25),
}

func Money(v decimal.Decimal) decimal.Decimal {
	return v.Round(moneyPlaces)
}

// Percent returns base * percent / 100.
func Percent(base, percent decimal.Decimal) decimal.Decimal {
	return Money(base.Mul(percent).Div(hundred))
}

// ESI is 0.75% of gross when gross does not exceed the ceiling.
func ESI(gross decimal.Decimal) decimal.Decimal {
	if gross.GreaterThan(ESICeiling) {
		return decimal.Zero
	}
	return Percent(gross, ESIRate)
}

// PT looks up professional tax by gross, zero below the first slab.
func PT(gross decimal.Decimal) decimal.Decimal {
	result := decimal.Zero
	for _, slab := range ptSlabs {
		if gross.LessThan(slab.from) {
			break
		}
		result = slab.amount
	}
	return result
}

// ReviewBonus is salary * table[rating] / 100, zero for an unknown rating.
func ReviewBonus(salary decimal.Decimal, rating int) decimal.Decimal {
	percent, ok := reviewBonusPercent[rating]
	if !ok {
		return decimal.Zero
	}
	return Percent(salary, percent)
}

// PerDaySalary is the displayed daily rate. Deductions use LeaveDeduction.
func PerDaySalary(salary decimal.Decimal) decimal.Decimal {
	return Money(salary.Div(PerDayDivisor))
}

// LeaveDeduction is days * salary / 30, rounded once at the end.
func LeaveDeduction(salary decimal.Decimal, days int) decimal.Decimal {
	return Money(salary.Mul(decimal.NewFromInt(int64(days))).Div(PerDayDivisor))
}

type Policy struct {
	DA  decimal.Decimal
	HRA decimal.Decimal
	PF  decimal.Decimal
}

type Input struct {
	Salary          decimal.Decimal
	Policy          Policy
	UnpaidDays      int
	IncrementPct    decimal.Decimal // latest review, zero without one
	OtherAllowances decimal.Decimal
	TaxType         models.TaxType
	TaxAmount       decimal.Decimal
}

type Result struct {
	PerDaySalary     decimal.Decimal
	PerformanceBonus decimal.Decimal

	BasicPay        decimal.Decimal
	DAAmount        decimal.Decimal
	HRAAmount       decimal.Decimal
	OtherAllowances decimal.Decimal
	Allowances      decimal.Decimal // other allowances plus bonus
	GrossTotal      decimal.Decimal

	PF             decimal.Decimal
	ESI            decimal.Decimal
	PT             decimal.Decimal
	IncomeTax      decimal.Decimal
	LeaveDeduction decimal.Decimal
	TotalDeduction decimal.Decimal

	NetSalary decimal.Decimal
}

// Compute runs the payroll arithmetic. Net pay is not clamped and may be negative.
func Compute(in Input) Result {
	salary := Money(in.Salary)
	res := Result{
		BasicPay:         salary,
		PerDaySalary:     PerDaySalary(salary),
		PerformanceBonus: Percent(salary, in.IncrementPct),
		DAAmount:         Percent(salary, in.Policy.DA),
		HRAAmount:        Percent(salary, in.Policy.HRA),
		OtherAllowances:  Money(in.OtherAllowances),
	}
	res.Allowances = res.OtherAllowances.Add(res.PerformanceBonus)
	res.GrossTotal = salary.Add(res.DAAmount).Add(res.HRAAmount).Add(res.Allowances)

	res.PF = Percent(salary, in.Policy.PF)
	res.ESI = ESI(res.GrossTotal)
	res.PT = PT(res.GrossTotal)
	res.IncomeTax = decimal.Zero
	if in.TaxType == models.TaxIncomeTax {
		res.IncomeTax = Money(in.TaxAmount)
	}
	res.LeaveDeduction = LeaveDeduction(salary, in.UnpaidDays)
	res.TotalDeduction = res.PF.Add(res.ESI).Add(res.PT).Add(res.IncomeTax).Add(res.LeaveDeduction)

	res.NetSalary = res.GrossTotal.Sub(res.TotalDeduction)
	return res
}
