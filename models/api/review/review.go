package reviewapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	apimodels "quickpay-backend/models/api"
)

type ReviewData struct {
	Rating              int             `json:"rating"` // 1..5
	Comments            string          `json:"comments"`
	IncrementPercentage decimal.Decimal `json:"increment_percentage"`
	ReviewDate          string          `json:"review_date"` // YYYY-MM-DD, defaults to today
}

func (r ReviewData) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if r.IncrementPercentage.IsNegative() {
		return errors.New("increment percentage must not be negative")
	}
	if r.ReviewDate != "" {
		if _, err := apimodels.ParseDate(r.ReviewDate); err != nil {
			return errors.Wrap(err, "review_date")
		}
	}
	return nil
}

type CreateReview struct {
	EmployeeID string `json:"employee_id"`
	ReviewData
}

func (r CreateReview) Validate() error {
	if strings.TrimSpace(r.EmployeeID) == "" {
		return errors.New("employee_id is required")
	}
	return r.ReviewData.Validate()
}

type UpdateReview struct {
	ReviewData
}

type ReviewView struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeName        string          `json:"employee_name,omitempty"`
	ReviewedByID        string          `json:"reviewed_by_id"`
	ReviewDate          string          `json:"review_date"`
	Rating              int             `json:"rating"`
	Comments            string          `json:"comments"`
	IncrementPercentage decimal.Decimal `json:"increment_percentage"`
	BonusAmount         decimal.Decimal `json:"bonus_amount"`
}
