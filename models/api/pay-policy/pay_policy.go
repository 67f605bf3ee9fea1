package paypolicyapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	apimodels "quickpay-backend/models/api"
	"quickpay-backend/models"
)

var hundred = decimal.NewFromInt(100)

type PolicyData struct {
	DA            decimal.Decimal `json:"da"`  // dearness allowance, % of basic
	HRA           decimal.Decimal `json:"hra"` // house rent allowance, % of basic
	PF            decimal.Decimal `json:"pf"`  // provident fund, % of basic
	ESI           decimal.Decimal `json:"esi"` // informational, payroll applies the statutory rate
	EffectiveFrom string          `json:"effective_from"`
}

func (r PolicyData) Validate() error {
	for name, v := range map[string]decimal.Decimal{"da": r.DA, "hra": r.HRA, "pf": r.PF, "esi": r.ESI} {
		if v.IsNegative() || v.GreaterThan(hundred) {
			return errors.Errorf("%s must be between 0 and 100", name)
		}
	}
	if _, err := apimodels.ParseDate(r.EffectiveFrom); err != nil {
		return errors.Wrap(err, "effective_from")
	}
	return nil
}

type ChangeRequest struct {
	Reason string `json:"reason"`
}

func (r ChangeRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("reason is required")
	}
	return nil
}

type CurrentQuery struct {
	Date string `query:"date" json:"date"` // YYYY-MM-DD, defaults to today
}

func (r CurrentQuery) Validate() error {
	if r.Date == "" {
		return nil
	}
	_, err := apimodels.ParseDate(r.Date)
	return err
}

type PolicyView struct {
	ID            string                 `json:"id"`
	DA            decimal.Decimal        `json:"da"`
	HRA           decimal.Decimal        `json:"hra"`
	PF            decimal.Decimal        `json:"pf"`
	ESI           decimal.Decimal        `json:"esi"`
	EffectiveFrom string                 `json:"effective_from"`
	Status        models.PayPolicyStatus `json:"status"`
	ChangeReason  string                 `json:"change_reason,omitempty"`
	UpdatedAt     string                 `json:"updated_at"`
}
