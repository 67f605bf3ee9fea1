package feedback

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"quickpay-backend/lib/notification"
	usersstore "quickpay-backend/lib/users/store"
	"quickpay-backend/models"
	feedbackapimodels "quickpay-backend/models/api/feedback"
	dbmodels "quickpay-backend/models/db"
)

type fakeStore struct {
	recs map[string]*dbmodels.Feedback
	seq  int
}

func (f *fakeStore) Create(rec dbmodels.Feedback) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("fb-%d", f.seq)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	if status, ok := updMap["status"]; ok {
		f.recs[id].Status = status.(models.FeedbackStatus)
	}
	return nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Feedback, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeStore) GetList(userID string) (list []dbmodels.Feedback, err error) {
	for _, rec := range f.recs {
		if userID == "" || rec.UserID == userID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeStore) CountByStatus(status models.FeedbackStatus) (int64, error) {
	return 0, nil
}

func (f *fakeStore) CountExceptStatus(status models.FeedbackStatus) (int64, error) {
	return 0, nil
}

type fakeUsersStore struct {
	usersstore.Provider
}

func (fakeUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	if userID == "ghost" {
		return nil, nil
	}
	return &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: userID}, Username: userID + "_name"}, nil
}

type fakeEmitter struct {
	sent []string
}

func (f *fakeEmitter) Emit(target notification.Target, message string) error {
	f.sent = append(f.sent, target.String()+": "+message)
	return nil
}

func newTestHandler() (impl, *fakeStore, *fakeEmitter) {
	store := &fakeStore{recs: map[string]*dbmodels.Feedback{}}
	emitter := &fakeEmitter{}
	return impl{store: store, usersStore: fakeUsersStore{}, notifier: emitter}, store, emitter
}

func TestSubmit(t *testing.T) {
	h, store, emitter := newTestHandler()

	view, err := h.Submit("u1", feedbackapimodels.SubmitFeedback{Subject: " Payslip ", Message: "Wrong HRA"})
	require.NoError(t, err)
	require.Equal(t, models.FeedbackPending, view.Status)
	require.Equal(t, "Payslip", view.Subject)
	require.Equal(t, "u1_name", view.Username)
	require.Len(t, store.recs, 1)
	require.Len(t, emitter.sent, 2)
	require.Contains(t, emitter.sent[0], "A feedback has been submitted by u1_name.")
	require.Equal(t, "user:u1: Your feedback has been submitted successfully.", emitter.sent[1])

	_, err = h.Submit("ghost", feedbackapimodels.SubmitFeedback{Message: "hi"})
	require.True(t, errors.Is(err, models.ErrNotFound))
}

func TestList(t *testing.T) {
	h, _, _ := newTestHandler()
	_, err := h.Submit("u1", feedbackapimodels.SubmitFeedback{Message: "one"})
	require.NoError(t, err)
	_, err = h.Submit("u2", feedbackapimodels.SubmitFeedback{Message: "two"})
	require.NoError(t, err)

	own, err := h.List("u1", models.EmployeeRole)
	require.NoError(t, err)
	require.Len(t, own, 1)

	all, err := h.List("hr", models.HRManagerRole)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestStatusFlow(t *testing.T) {
	t.Run("forward only", func(t *testing.T) {
		h, _, emitter := newTestHandler()
		view, err := h.Submit("u1", feedbackapimodels.SubmitFeedback{Subject: "Leave", Message: "msg"})
		require.NoError(t, err)
		emitter.sent = nil

		resolved, err := h.Resolve(view.ID)
		require.NoError(t, err)
		require.Equal(t, models.FeedbackResolved, resolved.Status)
		require.Empty(t, emitter.sent)

		reviewed, err := h.Review(view.ID)
		require.NoError(t, err)
		require.Equal(t, models.FeedbackReviewed, reviewed.Status)
		require.Equal(t, []string{"user:u1: Your feedback titled 'Leave' has been reviewed."}, emitter.sent)

		_, err = h.Resolve(view.ID)
		require.True(t, errors.Is(err, models.ErrPrecondition))
		_, err = h.Review(view.ID)
		require.True(t, errors.Is(err, models.ErrPrecondition))
	})

	t.Run("review straight from pending", func(t *testing.T) {
		h, _, _ := newTestHandler()
		view, err := h.Submit("u1", feedbackapimodels.SubmitFeedback{Message: "msg"})
		require.NoError(t, err)
		_, err = h.Review(view.ID)
		require.NoError(t, err)
	})

	t.Run("unknown feedback", func(t *testing.T) {
		h, _, _ := newTestHandler()
		_, err := h.Resolve("missing")
		require.True(t, errors.Is(err, models.ErrNotFound))
	})
}
