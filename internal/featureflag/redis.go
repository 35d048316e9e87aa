package featureflag

import (
	"context"
	"fmt"
	"time"

	"github.com/open-feature/go-sdk/openfeature"
)

// Store хранилище ключей, в котором лежат флаги. Реализуется cache.Cache.
type Store interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// RedisProvider провайдер OpenFeature, который хранит флаги в redis под ключами <prefix><name>.
type RedisProvider struct {
	boolOnly
	store  Store
	prefix string
}

// NewRedisProvider создаёт провайдер и проверяет доступность хранилища.
// Недоступный источник флагов считается ошибкой запуска.
func NewRedisProvider(ctx context.Context, store Store, prefix string) (*RedisProvider, error) {
	const op = "featureflag.NewRedisProvider"
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisProvider{store: store, prefix: prefix}, nil
}

func (p *RedisProvider) key(name string) string {
	return p.prefix + name
}

func (p *RedisProvider) Metadata() openfeature.Metadata {
	return openfeature.Metadata{Name: "redis"}
}

func (p *RedisProvider) BooleanEvaluation(ctx context.Context, flag string, def bool, _ openfeature.FlattenedContext) openfeature.BoolResolutionDetail {
	const op = "featureflag.RedisProvider.BooleanEvaluation"

	raw, found, err := p.store.GetString(ctx, p.key(flag))
	if err != nil {
		return failed(def, openfeature.NewGeneralResolutionError(fmt.Sprintf("%s: %v", op, err)))
	}
	if !found {
		return missing(def)
	}
	v, err := ParseBool(raw)
	if err != nil {
		return failed(def, openfeature.NewParseErrorResolutionError(fmt.Sprintf("%s: %v", op, err)))
	}
	return resolved(v, openfeature.StaticReason)
}

func (p *RedisProvider) SetBool(ctx context.Context, name string, value bool) error {
	const op = "featureflag.RedisProvider.SetBool"
	if err := p.store.Set(ctx, p.key(name), value, 0); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p *RedisProvider) Delete(ctx context.Context, name string) error {
	const op = "featureflag.RedisProvider.Delete"
	if err := p.store.Invalidate(ctx, p.key(name)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

var _ openfeature.FeatureProvider = (*RedisProvider)(nil)
var _ Writer = (*RedisProvider)(nil)
