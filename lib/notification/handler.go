package notification

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	notificationstore "quickpay-backend/lib/notification/store"
	usersstore "quickpay-backend/lib/users/store"
	"quickpay-backend/lib/utils/helpers"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	notificationapimodels "quickpay-backend/models/api/notification"
	dbmodels "quickpay-backend/models/db"
	wsmodels "quickpay-backend/models/ws"
)

const dispatchBatchSize = 100

// Emitter records a notification event for later fan-out.
type Emitter interface {
	Emit(target Target, message string) error
}

type Provider interface {
	Emitter
	List(userID string, filter notificationapimodels.ListFilter) ([]notificationapimodels.NotificationView, error)
	MarkRead(userID, id string) error
	DispatchPending(ctx context.Context) error
}

// Pusher delivers a message to a connected client, if any.
type Pusher interface {
	SendMessage(msg wsmodels.ServerMessage)
}

// RecipientResolver lists the active users holding a role.
type RecipientResolver interface {
	GetActiveByRole(role models.UserRole) (list []dbmodels.User, err error)
}

var Instance Provider

func NewHandler(pusher Pusher) {
	Instance = NewInstance(notificationstore.NewInstance(db.DB), usersstore.NewInstance(db.DB), pusher)
}

func NewInstance(store notificationstore.Provider, resolver RecipientResolver, pusher Pusher) Provider {
	initchecker.CheckInit(
		"store", store,
		"resolver", resolver,
	)
	return &impl{
		store:    store,
		resolver: resolver,
		pusher:   pusher,
		now:      time.Now,
	}
}

type impl struct {
	store    notificationstore.Provider
	resolver RecipientResolver
	pusher   Pusher
	now      func() time.Time
}

func (i impl) Emit(target Target, message string) error {
	if helpers.IsBlank(message) {
		return nil
	}
	if err := target.Validate(); err != nil {
		return errors.Wrap(models.ErrValidation, err.Error())
	}
	rec := dbmodels.NotificationEvent{
		Message: strings.TrimSpace(message),
	}
	switch {
	case target.UserID != "":
		userID := target.UserID
		rec.UserID = &userID
	case target.Role != "":
		role := target.Role
		rec.Role = &role
	default:
		for _, role := range target.Roles {
			rec.Roles = append(rec.Roles, string(role))
		}
	}
	_, err := i.store.CreateEvent(rec)
	if err != nil {
		return errors.Wrap(err, "notification event saving failed")
	}
	return nil
}

func (i impl) List(userID string, filter notificationapimodels.ListFilter) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.GetList(userID, filter)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("notification list loading failed")
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) MarkRead(userID, id string) error {
	found, err := i.store.MarkRead(userID, id)
	if err != nil {
		return err
	}
	if !found {
		return models.NewNotFoundError("notification not found")
	}
	return nil
}

func (i impl) DispatchPending(ctx context.Context) error {
	events, err := i.store.GetPendingEvents(dispatchBatchSize)
	if err != nil {
		return errors.Wrap(err, "pending events loading failed")
	}
	for _, event := range events {
		if helpers.IsContextDone(ctx) {
			return nil
		}
		logger := log.WithField("event_id", event.ID)
		recipients, err := i.resolve(event)
		if err != nil {
			logger.WithError(err).Error("notification recipients resolving failed")
			continue
		}
		now := i.now()
		recs := make([]dbmodels.Notification, 0, len(recipients))
		for _, userID := range recipients {
			recs = append(recs, dbmodels.Notification{
				UserID:  userID,
				EventID: event.ID,
				Message: event.Message,
			})
		}
		err = i.store.CompleteEvent(event.ID, recs, now)
		if err != nil {
			logger.WithError(err).Error("notification event dispatching failed")
			continue
		}
		logger.WithField("recipients", len(recs)).Debug("notification event dispatched")
		i.push(recs, now)
	}
	return nil
}

// resolve returns one entry per recipient, a user holding several of the
// requested roles is listed once per role.
func (i impl) resolve(event dbmodels.NotificationEvent) ([]string, error) {
	if event.UserID != nil {
		return []string{*event.UserID}, nil
	}
	roles := []models.UserRole{}
	if event.Role != nil {
		roles = append(roles, *event.Role)
	}
	for _, role := range event.Roles {
		roles = append(roles, models.UserRole(role))
	}
	result := []string{}
	for _, role := range roles {
		users, err := i.resolver.GetActiveByRole(role)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			result = append(result, user.ID)
		}
	}
	return result, nil
}

func (i impl) push(recs []dbmodels.Notification, at time.Time) {
	if i.pusher == nil {
		return
	}
	for _, rec := range recs {
		i.pusher.SendMessage(wsmodels.ServerMessage{
			ToUserID: rec.UserID,
			Time:     at.Format(time.RFC3339),
			Code:     wsmodels.CodeNotification,
			Msg:      rec.Message,
		})
	}
}

// EmitLogged emits and only logs a failure, the caller's operation is already done.
func EmitLogged(emitter Emitter, target Target, message string) {
	if emitter == nil {
		return
	}
	if err := emitter.Emit(target, message); err != nil {
		log.
			WithField("target", target.String()).
			WithError(err).
			Error("notification emitting failed")
	}
}
