package paypolicy

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/config"
	"quickpay-backend/db"
	"quickpay-backend/lib/notification"
	paypolicystore "quickpay-backend/lib/pay-policy/store"
	initchecker "quickpay-backend/lib/utils/init-checker"
	"quickpay-backend/models"
	apimodels "quickpay-backend/models/api"
	paypolicyapimodels "quickpay-backend/models/api/pay-policy"
	dbmodels "quickpay-backend/models/db"
	redisclient "quickpay-backend/redis"
)

type Provider interface {
	Create(adminID string, request paypolicyapimodels.PolicyData) (paypolicyapimodels.PolicyView, error)
	Update(id string, request paypolicyapimodels.PolicyData) (paypolicyapimodels.PolicyView, error)
	Approve(approverID, id string) (paypolicyapimodels.PolicyView, error)
	RequestChange(id string, request paypolicyapimodels.ChangeRequest) (paypolicyapimodels.PolicyView, error)
	Latest() (paypolicyapimodels.PolicyView, error)
	Current(ctx context.Context, query paypolicyapimodels.CurrentQuery) (paypolicyapimodels.PolicyView, error)
	CurrentAsOf(ctx context.Context, date time.Time) (*dbmodels.CommonPay, error)
}

// CurrentResolver is the only view of pay policies the payroll engine needs.
type CurrentResolver interface {
	CurrentAsOf(ctx context.Context, date time.Time) (*dbmodels.CommonPay, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("notification", notification.Instance)
	cache := NewRedisCache(redisclient.Client, time.Duration(config.Conf.Redis.PolicyCacheTTLSec)*time.Second)
	Instance = NewInstance(paypolicystore.NewInstance(db.DB), cache, notification.Instance)
}

func NewInstance(store paypolicystore.Provider, cache Cache, notifier notification.Emitter) Provider {
	if cache == nil {
		cache = noCache{}
	}
	return impl{
		store:    store,
		cache:    cache,
		notifier: notifier,
		now:      time.Now,
	}
}

type impl struct {
	store    paypolicystore.Provider
	cache    Cache
	notifier notification.Emitter
	now      func() time.Time
}

func (i impl) Create(adminID string, request paypolicyapimodels.PolicyData) (paypolicyapimodels.PolicyView, error) {
	effectiveFrom, _ := apimodels.ParseDate(request.EffectiveFrom)
	rec := dbmodels.CommonPay{
		DA:            request.DA,
		HRA:           request.HRA,
		PF:            request.PF,
		ESI:           request.ESI,
		EffectiveFrom: effectiveFrom,
		Status:        models.PayPolicyPending,
		CreatedByID:   adminID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("pay policy creation failed")
		return paypolicyapimodels.PolicyView{}, err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("pay policy created")
	notification.EmitLogged(i.notifier, notification.ToRoles(models.HRManagerRole, models.PayrollManagerRole),
		"Common allowances, taxes and deductions according to government have been added.")
	return i.get(id)
}

// Update overwrites the values, the policy has to be approved again.
func (i impl) Update(id string, request paypolicyapimodels.PolicyData) (paypolicyapimodels.PolicyView, error) {
	if _, err := i.getRec(id); err != nil {
		return paypolicyapimodels.PolicyView{}, err
	}
	effectiveFrom, _ := apimodels.ParseDate(request.EffectiveFrom)
	err := i.store.Update(id, map[string]interface{}{
		"da":             request.DA,
		"hra":            request.HRA,
		"pf":             request.PF,
		"esi":            request.ESI,
		"effective_from": effectiveFrom,
		"status":         models.PayPolicyPending,
		"change_reason":  "",
		"approved_by_id": nil,
	})
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("pay policy updating failed")
		return paypolicyapimodels.PolicyView{}, err
	}
	i.invalidate()
	notification.EmitLogged(i.notifier, notification.ToRoles(models.HRManagerRole, models.PayrollManagerRole),
		"Admin has edited common allowances, taxes and deductions.")
	return i.get(id)
}

func (i impl) Approve(approverID, id string) (paypolicyapimodels.PolicyView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return paypolicyapimodels.PolicyView{}, err
	}
	if !rec.Status.AllowApprove() {
		return paypolicyapimodels.PolicyView{}, models.NewPreconditionError(fmt.Sprintf("pay policy in status %q can not be approved", rec.Status))
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":         models.PayPolicyApproved,
		"approved_by_id": approverID,
	})
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("pay policy approving failed")
		return paypolicyapimodels.PolicyView{}, err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("pay policy approved")
	notification.EmitLogged(i.notifier, notification.ToRole(models.AdminRole),
		"Common allowances, taxes and deductions are approved by the HR Manager.")
	return i.get(id)
}

func (i impl) RequestChange(id string, request paypolicyapimodels.ChangeRequest) (paypolicyapimodels.PolicyView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return paypolicyapimodels.PolicyView{}, err
	}
	if !rec.Status.AllowRequestChange() {
		return paypolicyapimodels.PolicyView{}, models.NewPreconditionError("change is already requested for this pay policy")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":         models.PayPolicyEditRequested,
		"change_reason":  request.Reason,
		"approved_by_id": nil,
	})
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("pay policy change request failed")
		return paypolicyapimodels.PolicyView{}, err
	}
	i.invalidate()
	notification.EmitLogged(i.notifier, notification.ToRoles(models.AdminRole, models.PayrollManagerRole),
		fmt.Sprintf("HR has requested a change for Common Pay (Effective from %s). Reason: %s",
			apimodels.FormatDate(rec.EffectiveFrom), request.Reason))
	return i.get(id)
}

func (i impl) Latest() (paypolicyapimodels.PolicyView, error) {
	rec, err := i.store.GetLatest()
	if err != nil {
		log.WithError(err).Error("latest pay policy loading failed")
		return paypolicyapimodels.PolicyView{}, err
	}
	if rec == nil {
		return paypolicyapimodels.PolicyView{}, models.NewNotFoundError("pay policy not found")
	}
	return rec.ToModel(), nil
}

func (i impl) Current(ctx context.Context, query paypolicyapimodels.CurrentQuery) (paypolicyapimodels.PolicyView, error) {
	date := apimodels.DateOf(i.now())
	if query.Date != "" {
		date, _ = apimodels.ParseDate(query.Date)
	}
	rec, err := i.CurrentAsOf(ctx, date)
	if err != nil {
		return paypolicyapimodels.PolicyView{}, err
	}
	if rec == nil {
		return paypolicyapimodels.PolicyView{}, models.NewNotFoundError("no approved pay policy is effective on this date")
	}
	return rec.ToModel(), nil
}

// CurrentAsOf returns the latest approved policy effective on date, nil if none.
func (i impl) CurrentAsOf(ctx context.Context, date time.Time) (*dbmodels.CommonPay, error) {
	date = apimodels.DateOf(date)
	logger := log.WithField("date", apimodels.FormatDate(date))
	cached, err := i.cache.Get(ctx, date)
	if err != nil {
		logger.WithError(err).Warn("pay policy cache read failed")
	}
	if cached != nil {
		return cached, nil
	}
	rec, err := i.store.GetApprovedAsOf(date)
	if err != nil {
		logger.WithError(err).Error("current pay policy loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if err := i.cache.Set(ctx, date, *rec); err != nil {
		logger.WithError(err).Warn("pay policy cache write failed")
	}
	return rec, nil
}

func (i impl) invalidate() {
	if err := i.cache.Invalidate(context.Background()); err != nil {
		log.WithError(err).Warn("pay policy cache invalidation failed")
	}
}

func (i impl) get(id string) (paypolicyapimodels.PolicyView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return paypolicyapimodels.PolicyView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) getRec(id string) (*dbmodels.CommonPay, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("pay policy loading failed")
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("pay policy not found")
	}
	return rec, nil
}
