package dbmodels

import (
	"time"

	"github.com/shopspring/decimal"
	apimodels "quickpay-backend/models/api"
	reviewapimodels "quickpay-backend/models/api/review"
)

type PerformanceReview struct {
	BaseModel
	EmployeeID          string          `gorm:"index"`
	Employee            *Employee       `gorm:"foreignKey:EmployeeID"`
	ReviewedByID        string          `gorm:"index"`
	ReviewDate          time.Time       `gorm:"type:date;index"`
	Rating              int             `gorm:"type:smallint"`
	Comments            string          `gorm:"type:text"`
	IncrementPercentage decimal.Decimal `gorm:"type:numeric(5,2)"`
	BonusAmount         decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (r PerformanceReview) ToModel() reviewapimodels.ReviewView {
	result := reviewapimodels.ReviewView{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		ReviewedByID:        r.ReviewedByID,
		ReviewDate:          apimodels.FormatDate(r.ReviewDate),
		Rating:              r.Rating,
		Comments:            r.Comments,
		IncrementPercentage: r.IncrementPercentage,
		BonusAmount:         r.BonusAmount,
	}
	if r.Employee != nil {
		result.EmployeeName = r.Employee.GetFullName()
	}
	return result
}
