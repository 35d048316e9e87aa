// Package quote считает стоимость доставки заказа.
package quote

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PricePerItem стоимость доставки одной позиции.
const PricePerItem = 8.90

const tracerName = "quoteservice"

type Service struct {
	tracer trace.Tracer
}

// New создаёт сервис. Если tracer не передан, используется глобальный провайдер.
func New(tracer trace.Tracer) *Service {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Service{tracer: tracer}
}

// Quote возвращает стоимость доставки itemCount позиций, округлённую до центов.
func (s *Service) Quote(ctx context.Context, itemCount int) float64 {
	_, span := s.tracer.Start(ctx, "calculate-quote")
	defer span.End()

	total := Calculate(itemCount)
	span.SetAttributes(
		attribute.Int("app.quote.items.count", itemCount),
		attribute.Float64("app.quote.cost.total", total),
	)
	return total
}

func Calculate(itemCount int) float64 {
	return math.Round(PricePerItem*float64(itemCount)*100) / 100
}
