package dispatchworker

import (
	"context"
	"time"

	"quickpay-backend/config"
	"quickpay-backend/lib/notification"
	baseworker "quickpay-backend/lib/utils/base-worker"
)

// StartWorker fans out pending notification events to their recipients.
func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Notification.DispatchIntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	i := &impl{
		BaseImpl:   *baseworker.NewInstance("NotificationDispatchWorker", time.Second, interval),
		dispatcher: notification.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	dispatcher notification.Provider
}

func (i impl) handle(ctx context.Context) error {
	return i.dispatcher.DispatchPending(ctx)
}
