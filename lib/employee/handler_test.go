package employee

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"quickpay-backend/lib/notification"
	usersstore "quickpay-backend/lib/users/store"
	"quickpay-backend/models"
	employeeapimodels "quickpay-backend/models/api/employee"
	dbmodels "quickpay-backend/models/db"
)

type fakeStore struct {
	recs map[string]*dbmodels.Employee
	seq  int
}

func (f *fakeStore) Create(rec dbmodels.Employee) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("emp-%d", f.seq)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	for k, v := range updMap {
		switch k {
		case "department":
			rec.Department = v.(models.Department)
		case "salary":
			rec.Salary = v.(decimal.Decimal)
		case "status":
			rec.Status = v.(models.EmployeeStatus)
		}
	}
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeStore) GetByUserID(userID string) (*dbmodels.Employee, error) {
	for _, rec := range f.recs {
		if rec.UserID == userID {
			result := *rec
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetList() (list []dbmodels.Employee, err error) {
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

type fakeUsersStore struct {
	usersstore.Provider
	recs map[string]*dbmodels.User
}

func (f fakeUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	return f.recs[userID], nil
}

func (f fakeUsersStore) GetWithoutEmployeeProfile() (list []dbmodels.User, err error) {
	for _, rec := range f.recs {
		if rec.Role == models.EmployeeRole {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeEmitter struct {
	sent []string
}

func (f *fakeEmitter) Emit(target notification.Target, message string) error {
	f.sent = append(f.sent, target.String()+": "+message)
	return nil
}

var joined = time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC)

func newTestHandler() (impl, *fakeStore, *fakeEmitter) {
	store := &fakeStore{recs: map[string]*dbmodels.Employee{}}
	users := fakeUsersStore{recs: map[string]*dbmodels.User{
		"u1": {BaseModel: dbmodels.BaseModel{ID: "u1", CreatedAt: joined}, Username: "ravi123", Role: models.EmployeeRole, IsActive: true},
		"u2": {BaseModel: dbmodels.BaseModel{ID: "u2"}, Role: models.HRManagerRole, IsActive: true},
		"u3": {BaseModel: dbmodels.BaseModel{ID: "u3"}, Role: models.EmployeeRole, IsActive: false},
	}}
	emitter := &fakeEmitter{}
	return impl{store: store, usersStore: users, notifier: emitter}, store, emitter
}

func createRequest(userID string) employeeapimodels.CreateEmployee {
	return employeeapimodels.CreateEmployee{
		UserID: userID,
		EmployeeData: employeeapimodels.EmployeeData{
			Department: models.DepartmentFinance,
			Salary:     decimal.NewFromInt(30000),
		},
	}
}

func TestCreate(t *testing.T) {
	t.Run("profile with defaults", func(t *testing.T) {
		h, store, emitter := newTestHandler()
		view, err := h.Create(createRequest("u1"))
		require.NoError(t, err)
		require.Equal(t, models.EmployeeActive, view.Status)
		require.Equal(t, "2024-03-04", view.HireDate)
		require.True(t, decimal.NewFromInt(30000).Equal(view.Salary))
		require.Len(t, store.recs, 1)
		require.Equal(t, []string{"user:u1: Your department has been assigned to Finance department."}, emitter.sent)
	})
	t.Run("explicit hire date", func(t *testing.T) {
		h, _, _ := newTestHandler()
		req := createRequest("u1")
		req.HireDate = "2024-04-01"
		view, err := h.Create(req)
		require.NoError(t, err)
		require.Equal(t, "2024-04-01", view.HireDate)
	})
	t.Run("second profile", func(t *testing.T) {
		h, _, _ := newTestHandler()
		_, err := h.Create(createRequest("u1"))
		require.NoError(t, err)
		_, err = h.Create(createRequest("u1"))
		require.True(t, errors.Is(err, models.ErrPrecondition))
	})
	t.Run("wrong role or blocked", func(t *testing.T) {
		h, store, emitter := newTestHandler()
		_, err := h.Create(createRequest("u2"))
		require.True(t, errors.Is(err, models.ErrValidation))
		_, err = h.Create(createRequest("u3"))
		require.True(t, errors.Is(err, models.ErrValidation))
		require.Empty(t, store.recs)
		require.Empty(t, emitter.sent)
	})
	t.Run("unknown user", func(t *testing.T) {
		h, _, _ := newTestHandler()
		_, err := h.Create(createRequest("ghost"))
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}

func TestUpdate(t *testing.T) {
	h, _, emitter := newTestHandler()
	created, err := h.Create(createRequest("u1"))
	require.NoError(t, err)
	emitter.sent = nil

	view, err := h.Update(created.ID, employeeapimodels.UpdateEmployee{EmployeeData: employeeapimodels.EmployeeData{
		Department: models.DepartmentIT,
		Salary:     decimal.RequireFromString("45000.456"),
		Status:     models.EmployeeOnLeave,
	}})
	require.NoError(t, err)
	require.Equal(t, models.DepartmentIT, view.Department)
	require.Equal(t, "45000.46", view.Salary.StringFixed(2))
	require.Equal(t, models.EmployeeOnLeave, view.Status)
	require.Equal(t, []string{"user:u1: Your details were edited by the HR."}, emitter.sent)

	_, err = h.Update("missing", employeeapimodels.UpdateEmployee{})
	require.True(t, errors.Is(err, models.ErrNotFound))
}
