package paypolicy

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	apimodels "quickpay-backend/models/api"
	dbmodels "quickpay-backend/models/db"
)

const currentKeyPrefix = "pay_policy:current:"

// Cache keeps the approved policy resolved for a date.
type Cache interface {
	Get(ctx context.Context, date time.Time) (*dbmodels.CommonPay, error)
	Set(ctx context.Context, date time.Time, rec dbmodels.CommonPay) error
	Invalidate(ctx context.Context) error
}

func NewRedisCache(client *redis.Client, ttl time.Duration) Cache {
	if client == nil {
		return noCache{}
	}
	return redisCache{
		client: client,
		ttl:    ttl,
	}
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c redisCache) Get(ctx context.Context, date time.Time) (*dbmodels.CommonPay, error) {
	data, err := c.client.Get(ctx, currentKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec dbmodels.CommonPay
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c redisCache) Set(ctx context.Context, date time.Time, rec dbmodels.CommonPay) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, currentKey(date), data, c.ttl).Err()
}

func (c redisCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, currentKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func currentKey(date time.Time) string {
	return currentKeyPrefix + apimodels.FormatDate(date)
}

type noCache struct{}

func (noCache) Get(ctx context.Context, date time.Time) (*dbmodels.CommonPay, error) {
	return nil, nil
}

func (noCache) Set(ctx context.Context, date time.Time, rec dbmodels.CommonPay) error {
	return nil
}

func (noCache) Invalidate(ctx context.Context) error {
	return nil
}
