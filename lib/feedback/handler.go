package feedback

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	feedbackstore "quickpay-backend/lib/feedback/store"
	"quickpay-backend/lib/notification"
	usersstore "quickpay-backend/lib/users/store"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	feedbackapimodels "quickpay-backend/models/api/feedback"
	dbmodels "quickpay-backend/models/db"
)

type Provider interface {
	Submit(userID string, request feedbackapimodels.SubmitFeedback) (feedbackapimodels.FeedbackView, error)
	List(userID string, role models.UserRole) ([]feedbackapimodels.FeedbackView, error)
	Resolve(id string) (feedbackapimodels.FeedbackView, error)
	Review(id string) (feedbackapimodels.FeedbackView, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("notification", notification.Instance)
	Instance = NewInstance(feedbackstore.NewInstance(db.DB), usersstore.NewInstance(db.DB), notification.Instance)
}

func NewInstance(store feedbackstore.Provider, usersStore usersstore.Provider, notifier notification.Emitter) Provider {
	return impl{
		store:      store,
		usersStore: usersStore,
		notifier:   notifier,
	}
}

type impl struct {
	store      feedbackstore.Provider
	usersStore usersstore.Provider
	notifier   notification.Emitter
}

func (i impl) Submit(userID string, request feedbackapimodels.SubmitFeedback) (feedbackapimodels.FeedbackView, error) {
	logger := log.WithField("user_id", userID)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("user loading failed")
		return feedbackapimodels.FeedbackView{}, err
	}
	if user == nil {
		return feedbackapimodels.FeedbackView{}, models.NewNotFoundError("user not found")
	}
	rec := dbmodels.Feedback{
		UserID:  userID,
		Subject: strings.TrimSpace(request.Subject),
		Message: request.Message,
		Status:  models.FeedbackPending,
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("feedback creation failed")
		return feedbackapimodels.FeedbackView{}, err
	}
	logger.WithField("rec_id", rec.ID).Info("feedback submitted")

	notification.EmitLogged(i.notifier, notification.ToRoles(models.AdminRole, models.HRManagerRole),
		fmt.Sprintf("A feedback has been submitted by %s.", user.Username))
	notification.EmitLogged(i.notifier, notification.ToUser(userID), "Your feedback has been submitted successfully.")

	rec.User = user
	return rec.ToModel(), nil
}

func (i impl) List(userID string, role models.UserRole) ([]feedbackapimodels.FeedbackView, error) {
	owner := userID
	if role == models.AdminRole || role == models.HRManagerRole {
		owner = ""
	}
	list, err := i.store.GetList(owner)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("feedback list loading failed")
		return nil, err
	}
	result := make([]feedbackapimodels.FeedbackView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Resolve(id string) (feedbackapimodels.FeedbackView, error) {
	rec, err := i.changeStatus(id, models.FeedbackResolved)
	if err != nil {
		return feedbackapimodels.FeedbackView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) Review(id string) (feedbackapimodels.FeedbackView, error) {
	rec, err := i.changeStatus(id, models.FeedbackReviewed)
	if err != nil {
		return feedbackapimodels.FeedbackView{}, err
	}
	notification.EmitLogged(i.notifier, notification.ToUser(rec.UserID),
		fmt.Sprintf("Your feedback titled '%s' has been reviewed.", rec.Subject))
	return rec.ToModel(), nil
}

func (i impl) changeStatus(id string, status models.FeedbackStatus) (*dbmodels.Feedback, error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("feedback loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("feedback not found")
	}
	if !rec.Status.IsAllowChange(status) {
		return nil, models.NewPreconditionError(fmt.Sprintf("feedback is already %s", strings.ToLower(string(rec.Status))))
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		logger.WithError(err).Error("feedback status update failed")
		return nil, err
	}
	logger.WithField("status", status).Info("feedback status changed")
	rec.Status = status
	return rec, nil
}
