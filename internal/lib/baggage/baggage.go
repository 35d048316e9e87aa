// Package baggage читает и дополняет W3C baggage, распространяемый вместе с запросом.
package baggage

import (
	"context"
	"fmt"

	otelbaggage "go.opentelemetry.io/otel/baggage"
)

// Reader читает элементы baggage из контекста запроса.
type Reader struct{}

// Entry возвращает значение элемента baggage по ключу.
func (Reader) Entry(ctx context.Context, key string) (string, bool) {
	m := otelbaggage.FromContext(ctx).Member(key)
	if m.Key() == "" {
		return "", false
	}
	return m.Value(), true
}

// WithEntry возвращает контекст с добавленным элементом baggage.
func WithEntry(ctx context.Context, key, value string) (context.Context, error) {
	const op = "baggage.WithEntry"

	m, err := otelbaggage.NewMemberRaw(key, value)
	if err != nil {
		return ctx, fmt.Errorf("%s: %w", op, err)
	}
	b, err := otelbaggage.FromContext(ctx).SetMember(m)
	if err != nil {
		return ctx, fmt.Errorf("%s: %w", op, err)
	}
	return otelbaggage.ContextWithBaggage(ctx, b), nil
}
