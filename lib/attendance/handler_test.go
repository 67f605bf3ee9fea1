package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	attendanceapimodels "quickpay-backend/models/api/attendance"
	dbmodels "quickpay-backend/models/db"
)

type fakeStore struct {
	recs []dbmodels.Attendance
}

func (f *fakeStore) Create(rec dbmodels.Attendance) (string, error) {
	rec.ID = fmt.Sprintf("att-%d", len(f.recs)+1)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		f.recs[idx].Status = updMap["status"].(models.AttendanceStatus)
		if leaveID, ok := updMap["leave_id"].(string); ok {
			f.recs[idx].LeaveID = &leaveID
		}
	}
	return nil
}

func (f *fakeStore) GetByEmployeeDate(employeeID string, date time.Time) (*dbmodels.Attendance, error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			result := rec
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetList(employeeID string, from, to time.Time) (list []dbmodels.Attendance, err error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && rec.Date.Before(to) {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeEmployeeStore struct{}

func (fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return "", nil }

func (fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	if id != "emp-1" {
		return nil, nil
	}
	return &dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: id}}, nil
}

func (fakeEmployeeStore) GetByUserID(userID string) (*dbmodels.Employee, error) {
	return &dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "emp-1"}, UserID: userID}, nil
}

func (fakeEmployeeStore) GetList() ([]dbmodels.Employee, error) { return nil, nil }

func TestMark(t *testing.T) {
	store := &fakeStore{}
	handler := NewInstance(store, fakeEmployeeStore{})

	t.Run("creates then updates the day", func(t *testing.T) {
		view, err := handler.Mark("emp-1", attendanceapimodels.MarkAttendance{Date: "2024-05-02", Status: models.AttendancePresent})
		require.NoError(t, err)
		require.Equal(t, models.AttendancePresent, view.Status)

		view, err = handler.Mark("emp-1", attendanceapimodels.MarkAttendance{Date: "2024-05-02", Status: models.AttendanceAbsent})
		require.NoError(t, err)
		require.Equal(t, models.AttendanceAbsent, view.Status)
		require.Len(t, store.recs, 1)
	})

	t.Run("leave day is protected", func(t *testing.T) {
		days, err := handler.UpsertLeaveDays(dbmodels.LeaveRequest{
			BaseModel:  dbmodels.BaseModel{ID: "leave-1"},
			EmployeeID: "emp-1",
			StartDate:  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Equal(t, 2, days)
		require.Len(t, store.recs, 2)

		_, err = handler.Mark("emp-1", attendanceapimodels.MarkAttendance{Date: "2024-05-03", Status: models.AttendancePresent})
		require.ErrorIs(t, err, models.ErrPrecondition)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := handler.Mark("emp-2", attendanceapimodels.MarkAttendance{Date: "2024-05-02", Status: models.AttendancePresent})
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("month listing", func(t *testing.T) {
		list, err := handler.List("emp-1", apimodels.MonthFilter{Month: 5, Year: 2024})
		require.NoError(t, err)
		require.Len(t, list, 2)
		list, err = handler.List("emp-1", apimodels.MonthFilter{Month: 6, Year: 2024})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
