package payrollapimodels

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
)

func TestRunPayrollValidate(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		require.NoError(t, RunPayroll{}.Validate())
	})
	t.Run("tax types", func(t *testing.T) {
		require.NoError(t, RunPayroll{TaxType: models.TaxIncomeTax, TaxAmount: decimal.NewFromInt(100)}.Validate())
		require.NoError(t, RunPayroll{TaxType: models.TaxOther, TaxAmount: decimal.NewFromInt(100)}.Validate())
		require.Error(t, RunPayroll{TaxType: "gst", TaxAmount: decimal.NewFromInt(100)}.Validate())
	})
	t.Run("tax amount needs a type", func(t *testing.T) {
		err := RunPayroll{TaxAmount: decimal.NewFromInt(100)}.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "tax_type")
	})
	t.Run("negative amounts", func(t *testing.T) {
		require.Error(t, RunPayroll{OtherAllowances: decimal.NewFromInt(-1)}.Validate())
		require.Error(t, RunPayroll{TaxType: models.TaxIncomeTax, TaxAmount: decimal.NewFromInt(-1)}.Validate())
	})
}
