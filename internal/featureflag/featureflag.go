// Package featureflag читает булевы фич-флаги через OpenFeature.
//
// Клиент работает по принципу fail open: если источник недоступен или вернул
// некорректное значение, используется значение по умолчанию, а ошибка только логируется.
package featureflag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/open-feature/go-sdk/openfeature"

	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
)

var ErrInvalidValue = errors.New("invalid flag value")

// Writer источник, который позволяет менять флаги во время работы.
type Writer interface {
	SetBool(ctx context.Context, name string, value bool) error
	Delete(ctx context.Context, name string) error
}

// ErrorCounter считает ошибки чтения флагов.
type ErrorCounter interface {
	IncFlagError(flag string)
}

// ErrorHook логирует ошибки вычисления флагов и считает их в метрике.
type ErrorHook struct {
	openfeature.UnimplementedHook
	counter ErrorCounter
	log     *slog.Logger
}

func NewErrorHook(counter ErrorCounter, log *slog.Logger) *ErrorHook {
	return &ErrorHook{counter: counter, log: log}
}

func (h *ErrorHook) Error(_ context.Context, hookContext openfeature.HookContext, err error, _ openfeature.HookHints) {
	const op = "featureflag.ErrorHook"

	h.log.Warn("flag provider failed, using default",
		sl.Op(op),
		slog.String("flag", hookContext.FlagKey()),
		sl.Err(err),
	)
	if h.counter != nil {
		h.counter.IncFlagError(hookContext.FlagKey())
	}
}

type Client struct {
	of *openfeature.Client
}

// NewClient регистрирует провайдер в домене OpenFeature и возвращает клиент этого домена.
// Регистрация ждёт инициализации провайдера.
func NewClient(domain string, provider openfeature.FeatureProvider, counter ErrorCounter, log *slog.Logger) (*Client, error) {
	const op = "featureflag.NewClient"

	if err := openfeature.SetNamedProviderAndWait(domain, provider); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	of := openfeature.NewClient(domain)
	of.AddHooks(NewErrorHook(counter, log))
	return &Client{of: of}, nil
}

// Bool возвращает значение флага или def, если флаг не задан или источник вернул ошибку.
func (c *Client) Bool(ctx context.Context, name string, def bool) bool {
	v, err := c.of.BooleanValue(ctx, name, def, openfeature.EvaluationContext{})
	if err != nil {
		return def
	}
	return v
}

// Lookup возвращает значение флага и признак того, что флаг задан в источнике.
func (c *Client) Lookup(ctx context.Context, name string) (bool, bool, error) {
	const op = "featureflag.Client.Lookup"

	details, err := c.of.BooleanValueDetails(ctx, name, false, openfeature.EvaluationContext{})
	if err != nil {
		return false, false, fmt.Errorf("%s: %w", op, err)
	}
	return details.Value, details.Reason != openfeature.DefaultReason, nil
}

// ParseBool разбирает значение флага, записанное вручную или через API.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(raw), `"`)) {
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
}
