package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	paypolicyapimodels "quickpay-backend/models/api/pay-policy"
)

// CommonPay is the company wide pay policy, versioned by EffectiveFrom.
type CommonPay struct {
	BaseModel
	DA            decimal.Decimal        `gorm:"type:numeric(5,2)"`
	HRA           decimal.Decimal        `gorm:"type:numeric(5,2)"`
	PF            decimal.Decimal        `gorm:"type:numeric(5,2)"`
	ESI           decimal.Decimal        `gorm:"type:numeric(5,2)"`
	EffectiveFrom time.Time              `gorm:"type:date;index"`
	Status        models.PayPolicyStatus `gorm:"type:varchar(20);index"`
	ChangeReason  string                 `gorm:"type:text"`
	CreatedByID   string
	ApprovedByID  *string
}

func (r CommonPay) ToModel() paypolicyapimodels.PolicyView {
	return paypolicyapimodels.PolicyView{
		ID:            r.ID,
		DA:            r.DA,
		HRA:           r.HRA,
		PF:            r.PF,
		ESI:           r.ESI,
		EffectiveFrom: apimodels.FormatDate(r.EffectiveFrom),
		Status:        r.Status,
		ChangeReason:  r.ChangeReason,
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}
