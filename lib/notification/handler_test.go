package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"quickpay-backend/models"
	notificationapimodels "quickpay-backend/models/api/notification"
	dbmodels "quickpay-backend/models/db"
	wsmodels "quickpay-backend/models/ws"
)

type fakeStore struct {
	events        []dbmodels.NotificationEvent
	notifications []dbmodels.Notification
}

func (f *fakeStore) CreateEvent(rec dbmodels.NotificationEvent) (string, error) {
	rec.ID = fmt.Sprintf("event-%d", len(f.events)+1)
	f.events = append(f.events, rec)
	return rec.ID, nil
}

func (f *fakeStore) GetPendingEvents(limit int) (list []dbmodels.NotificationEvent, err error) {
	for _, event := range f.events {
		if !event.Dispatched {
			list = append(list, event)
		}
	}
	return list, nil
}

func (f *fakeStore) CompleteEvent(eventID string, recs []dbmodels.Notification, at time.Time) error {
	f.notifications = append(f.notifications, recs...)
	for idx := range f.events {
		if f.events[idx].ID == eventID {
			f.events[idx].Dispatched = true
			f.events[idx].DispatchedAt = &at
		}
	}
	return nil
}

func (f *fakeStore) GetList(userID string, filter notificationapimodels.ListFilter) (list []dbmodels.Notification, err error) {
	for _, rec := range f.notifications {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeStore) MarkRead(userID, id string) (bool, error) {
	for idx := range f.notifications {
		if f.notifications[idx].ID == id && f.notifications[idx].UserID == userID {
			f.notifications[idx].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

type fakeResolver map[models.UserRole][]string

func (f fakeResolver) GetActiveByRole(role models.UserRole) (list []dbmodels.User, err error) {
	for _, id := range f[role] {
		list = append(list, dbmodels.User{BaseModel: dbmodels.BaseModel{ID: id}, Role: role, IsActive: true})
	}
	return list, nil
}

type fakePusher struct {
	sent []wsmodels.ServerMessage
}

func (f *fakePusher) SendMessage(msg wsmodels.ServerMessage) {
	f.sent = append(f.sent, msg)
}

func newTestHandler() (*impl, *fakeStore, *fakePusher) {
	store := &fakeStore{}
	pusher := &fakePusher{}
	resolver := fakeResolver{
		models.AdminRole:          {"admin-1"},
		models.PayrollManagerRole: {"pm-1", "pm-2"},
		models.HRManagerRole:      {"hr-1"},
	}
	h := NewInstance(store, resolver, pusher).(*impl)
	return h, store, pusher
}

func TestEmit(t *testing.T) {
	t.Run("blank message is a no-op", func(t *testing.T) {
		h, store, _ := newTestHandler()
		require.NoError(t, h.Emit(ToUser("u-1"), "   \t\n"))
		require.NoError(t, h.Emit(Target{}, ""))
		require.Empty(t, store.events)
	})
	t.Run("target must be exactly one kind", func(t *testing.T) {
		h, store, _ := newTestHandler()
		err := h.Emit(Target{}, "hello")
		require.True(t, errors.Is(err, models.ErrValidation))
		err = h.Emit(Target{UserID: "u-1", Role: models.AdminRole}, "hello")
		require.True(t, errors.Is(err, models.ErrValidation))
		err = h.Emit(Target{Role: models.AdminRole, Roles: []models.UserRole{models.HRManagerRole}}, "hello")
		require.True(t, errors.Is(err, models.ErrValidation))
		err = h.Emit(ToRole("boss"), "hello")
		require.True(t, errors.Is(err, models.ErrValidation))
		require.Empty(t, store.events)
	})
	t.Run("stores event per target kind", func(t *testing.T) {
		h, store, _ := newTestHandler()
		require.NoError(t, h.Emit(ToUser("u-1"), "to user"))
		require.NoError(t, h.Emit(ToRole(models.AdminRole), "to role"))
		require.NoError(t, h.Emit(ToRoles(models.AdminRole, models.PayrollManagerRole), "to roles"))
		require.Len(t, store.events, 3)
		require.Equal(t, "u-1", *store.events[0].UserID)
		require.Equal(t, models.AdminRole, *store.events[1].Role)
		require.Equal(t, []string{"admin", "payroll_manager"}, []string(store.events[2].Roles))
	})
}

func TestDispatchPending(t *testing.T) {
	t.Run("fans out one notification per recipient", func(t *testing.T) {
		h, store, pusher := newTestHandler()
		require.NoError(t, h.Emit(ToUser("u-1"), "payslip ready"))
		require.NoError(t, h.Emit(ToRoles(models.AdminRole, models.PayrollManagerRole), "policy changed"))
		require.NoError(t, h.DispatchPending(context.Background()))

		require.Len(t, store.notifications, 4)
		recipients := []string{}
		for _, rec := range store.notifications {
			recipients = append(recipients, rec.UserID)
		}
		require.Equal(t, []string{"u-1", "admin-1", "pm-1", "pm-2"}, recipients)
		for _, event := range store.events {
			require.True(t, event.Dispatched)
		}
		require.Len(t, pusher.sent, 4)
		require.Equal(t, wsmodels.CodeNotification, pusher.sent[0].Code)
	})
	t.Run("overlapping roles are not de-duplicated", func(t *testing.T) {
		h, store, _ := newTestHandler()
		require.NoError(t, h.Emit(ToRoles(models.HRManagerRole, models.HRManagerRole), "twice"))
		require.NoError(t, h.DispatchPending(context.Background()))
		require.Len(t, store.notifications, 2)
	})
	t.Run("dispatched events are not sent again", func(t *testing.T) {
		h, store, _ := newTestHandler()
		require.NoError(t, h.Emit(ToRole(models.HRManagerRole), "once"))
		require.NoError(t, h.DispatchPending(context.Background()))
		require.NoError(t, h.DispatchPending(context.Background()))
		require.Len(t, store.notifications, 1)
	})
}

func TestMarkRead(t *testing.T) {
	h, store, _ := newTestHandler()
	store.notifications = []dbmodels.Notification{
		{BaseModel: dbmodels.BaseModel{ID: "n-1"}, UserID: "u-1", Message: "hi"},
	}
	t.Run("own notification", func(t *testing.T) {
		require.NoError(t, h.MarkRead("u-1", "n-1"))
		require.True(t, store.notifications[0].IsRead)
	})
	t.Run("foreign notification", func(t *testing.T) {
		err := h.MarkRead("u-2", "n-1")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}
