package apimodels

import (
	"time"

	"github.com/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`            // fail/success
	Message string      `json:"message,omitempty"` // error message
	Data    interface{} `json:"data,omitempty"`    // payload
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` // total rows matching the filter
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // rows per page
	Page  int `json:"page"`  // page number (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

const DateFormat = "2006-01-02"

// ParseDate parses a calendar date and returns it as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// Today returns the current calendar date as UTC midnight.
func Today() time.Time {
	return DateOf(time.Now())
}

func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthFilter selects a calendar month, defaults to the current one.
type MonthFilter struct {
	Month int `query:"month" json:"month"` // 1..12
	Year  int `query:"year" json:"year"`
}

func (r MonthFilter) Validate() error {
	if r.Month < 0 || r.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if r.Year < 0 {
		return errors.New("year must be positive")
	}
	return nil
}

func (r MonthFilter) Resolve(now time.Time) (month time.Month, year int) {
	month = now.Month()
	year = now.Year()
	if r.Month > 0 {
		month = time.Month(r.Month)
	}
	if r.Year > 0 {
		year = r.Year
	}
	return month, year
}

// Period returns the payroll period key, e.g. 2024-05.
func Period(t time.Time) string {
	return t.Format("2006-01")
}
