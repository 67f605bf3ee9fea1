package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func requireDec(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

var basePolicy = Policy{
	DA:  dec("10"),
	HRA: dec("20"),
	PF:  dec("12"),
}

func TestESI(t *testing.T) {
	t.Run("boundary applies the rate", func(t *testing.T) {
		requireDec(t, "157.5", ESI(dec("21000")))
	})
	t.Run("above the ceiling", func(t *testing.T) {
		requireDec(t, "0", ESI(dec("21000.01")))
	})
	t.Run("rounded to paise", func(t *testing.T) {
		requireDec(t, "146.25", ESI(dec("19500")))
		requireDec(t, "0.08", ESI(dec("10")))
	})
}

func TestPT(t *testing.T) {
	for gross, expected := range map[string]string{
		"0":         "0",
		"11999.99":  "0",
		"12000":     "320",
		"17999.99":  "320",
		"18000":     "450",
		"29999":     "450",
		"30000":     "600",
		"44999.99":  "600",
		"45000":     "750",
		"99999":     "750",
		"100000":    "1000",
		"124999.99": "1000",
		"125000":    "1250",
		"900000":    "1250",
	} {
		requireDec(t, expected, PT(dec(gross)))
	}
}

func TestReviewBonus(t *testing.T) {
	salary := dec("40000")
	for rating, expected := range map[int]string{
		0: "0",
		1: "0",
		2: "1600",
		3: "3200",
		4: "6000",
		5: "10000",
		6: "0",
	} {
		requireDec(t, expected, ReviewBonus(salary, rating))
	}
}

func TestCompute(t *testing.T) {
	t.Run("salary above the esi ceiling", func(t *testing.T) {
		res := Compute(Input{Salary: dec("30000"), Policy: basePolicy, TaxType: models.TaxOther})
		requireDec(t, "39000", res.GrossTotal)
		requireDec(t, "3600", res.PF)
		requireDec(t, "0", res.ESI)
		requireDec(t, "600", res.PT)
		requireDec(t, "4200", res.TotalDeduction)
		requireDec(t, "34800", res.NetSalary)
	})

	t.Run("salary under the esi ceiling", func(t *testing.T) {
		res := Compute(Input{Salary: dec("15000"), Policy: basePolicy, TaxType: models.TaxOther})
		requireDec(t, "19500", res.GrossTotal)
		requireDec(t, "146.25", res.ESI)
		requireDec(t, "1800", res.PF)
		requireDec(t, "450", res.PT)
		requireDec(t, "2396.25", res.TotalDeduction)
		requireDec(t, "17103.75", res.NetSalary)
	})

	t.Run("tax is applied only for income tax", func(t *testing.T) {
		res := Compute(Input{Salary: dec("30000"), Policy: basePolicy, TaxType: models.TaxOther, TaxAmount: dec("1000")})
		requireDec(t, "0", res.IncomeTax)
		res = Compute(Input{Salary: dec("30000"), Policy: basePolicy, TaxType: models.TaxIncomeTax, TaxAmount: dec("1000")})
		requireDec(t, "1000", res.IncomeTax)
		requireDec(t, "5200", res.TotalDeduction)
		requireDec(t, "33800", res.NetSalary)
	})

	t.Run("unpaid days and bonus", func(t *testing.T) {
		res := Compute(Input{
			Salary:          dec("30000"),
			Policy:          basePolicy,
			UnpaidDays:      3,
			IncrementPct:    dec("10"),
			OtherAllowances: dec("500"),
			TaxType:         models.TaxOther,
		})
		requireDec(t, "1000", res.PerDaySalary)
		requireDec(t, "3000", res.PerformanceBonus)
		requireDec(t, "3500", res.Allowances)
		requireDec(t, "42500", res.GrossTotal)
		requireDec(t, "3000", res.LeaveDeduction)
		requireDec(t, "7200", res.TotalDeduction)
		requireDec(t, "35300", res.NetSalary)
	})

	t.Run("leave deduction is rounded once", func(t *testing.T) {
		res := Compute(Input{Salary: dec("10000"), UnpaidDays: 3, TaxType: models.TaxOther})
		requireDec(t, "333.33", res.PerDaySalary)
		requireDec(t, "1000", res.LeaveDeduction)

		res = Compute(Input{Salary: dec("25000"), UnpaidDays: 30, TaxType: models.TaxOther})
		requireDec(t, "25000", res.LeaveDeduction)
	})

	t.Run("net pay is not clamped", func(t *testing.T) {
		res := Compute(Input{Salary: dec("3000"), Policy: Policy{}, UnpaidDays: 31, TaxType: models.TaxOther})
		requireDec(t, "3000", res.GrossTotal)
		requireDec(t, "22.5", res.ESI)
		requireDec(t, "3100", res.LeaveDeduction)
		require.True(t, res.NetSalary.IsNegative())
		requireDec(t, "-122.5", res.NetSalary)
	})

	t.Run("net equals gross minus every deduction", func(t *testing.T) {
		res := Compute(Input{
			Salary:          dec("23456.78"),
			Policy:          Policy{DA: dec("7.5"), HRA: dec("12.25"), PF: dec("12")},
			UnpaidDays:      2,
			IncrementPct:    dec("3"),
			OtherAllowances: dec("111.11"),
			TaxType:         models.TaxIncomeTax,
			TaxAmount:       dec("999.99"),
		})
		deductions := res.PF.Add(res.ESI).Add(res.PT).Add(res.IncomeTax).Add(res.LeaveDeduction)
		require.True(t, deductions.Equal(res.TotalDeduction))
		require.True(t, res.GrossTotal.Sub(deductions).Equal(res.NetSalary))
	})
}

func TestLeaveDeduction(t *testing.T) {
	requireDec(t, "0", LeaveDeduction(dec("10000"), 0))
	requireDec(t, "333.33", LeaveDeduction(dec("10000"), 1))
	requireDec(t, "666.67", LeaveDeduction(dec("10000"), 2))
	requireDec(t, "1000", LeaveDeduction(dec("10000"), 3))
	requireDec(t, "17777.78", LeaveDeduction(dec("26666.67"), 20))
}
