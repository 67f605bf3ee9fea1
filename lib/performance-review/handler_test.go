package performancereview

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"quickpay-backend/lib/notification"
	"quickpay-backend/models"
	reviewapimodels "quickpay-backend/models/api/review"
	dbmodels "quickpay-backend/models/db"
)

type fakeStore struct {
	recs map[string]*dbmodels.PerformanceReview
}

func (f *fakeStore) Create(rec dbmodels.PerformanceReview) (string, error) {
	rec.ID = fmt.Sprintf("review-%d", len(f.recs)+1)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	rec.Rating = updMap["rating"].(int)
	rec.Comments = updMap["comments"].(string)
	rec.BonusAmount = updMap["bonus_amount"].(decimal.Decimal)
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.PerformanceReview, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeStore) GetListByEmployee(employeeID string) (list []dbmodels.PerformanceReview, err error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeStore) GetLatest(employeeID string) (*dbmodels.PerformanceReview, error) {
	return nil, nil
}

type fakeEmployeeStore struct {
	salary decimal.Decimal
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return "", nil }

func (f *fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	if id != "emp-1" {
		return nil, nil
	}
	return &dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: id}, UserID: "user-1", Salary: f.salary}, nil
}

func (f *fakeEmployeeStore) GetByUserID(userID string) (*dbmodels.Employee, error) {
	return f.GetByID("emp-1")
}

func (f *fakeEmployeeStore) GetList() ([]dbmodels.Employee, error) { return nil, nil }

type fakeEmitter struct {
	sent []notification.Target
}

func (f *fakeEmitter) Emit(target notification.Target, message string) error {
	f.sent = append(f.sent, target)
	return nil
}

func TestReviewBonusOnSave(t *testing.T) {
	store := &fakeStore{recs: map[string]*dbmodels.PerformanceReview{}}
	employees := &fakeEmployeeStore{salary: decimal.NewFromInt(40000)}
	emitter := &fakeEmitter{}
	handler := impl{
		store:         store,
		employeeStore: employees,
		notifier:      emitter,
		now:           func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) },
	}

	view, err := handler.Create("hr-1", reviewapimodels.CreateReview{
		EmployeeID: "emp-1",
		ReviewData: reviewapimodels.ReviewData{Rating: 4, IncrementPercentage: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(6000).Equal(view.BonusAmount))
	require.Equal(t, "2024-05-10", view.ReviewDate)
	require.Equal(t, []notification.Target{notification.ToUser("user-1")}, emitter.sent)

	t.Run("update recomputes with the current salary", func(t *testing.T) {
		employees.salary = decimal.NewFromInt(50000)
		view, err := handler.Update(view.ID, reviewapimodels.UpdateReview{
			ReviewData: reviewapimodels.ReviewData{Rating: 4, Comments: "steady"},
		})
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(7500).Equal(view.BonusAmount))
		require.Equal(t, "steady", view.Comments)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := handler.Create("hr-1", reviewapimodels.CreateReview{
			EmployeeID: "emp-2",
			ReviewData: reviewapimodels.ReviewData{Rating: 3},
		})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
