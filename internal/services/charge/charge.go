// Package charge авторизует списание с кредитной карты.
//
// Каждый вызов Charge проходит этапы строго по порядку:
//  1. проверка фич-флага paymentServiceFailure (аварийное отключение списаний);
//  2. определение платёжной системы и проверка номера (префикс, длина, Luhn);
//  3. политика: принимаемые платёжные системы и срок действия карты;
//  4. классификация запроса (синтетический или нет), выдача идентификатора
//     транзакции и запись итога в лог и метрики.
//
// Любой этап может прервать вызов типизированной ошибкой. Сервис не хранит
// состояния между вызовами и безопасен для конкурентного использования.
package charge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/magabrotheeeer/payment-service/internal/lib/baggage"
	"github.com/magabrotheeeer/payment-service/internal/lib/card"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
	"github.com/magabrotheeeer/payment-service/internal/metrics"
	"github.com/magabrotheeeer/payment-service/internal/models"
)

const (
	// FlagPaymentServiceFailure имитирует отказ платёжного сервиса.
	FlagPaymentServiceFailure = "paymentServiceFailure"
	// BaggageSyntheticRequest помечает тестовый трафик.
	BaggageSyntheticRequest = "synthetic_request"

	tracerName = "paymentservice"
)

// FlagEvaluator возвращает значение булева флага, при ошибке источника def.
type FlagEvaluator interface {
	Bool(ctx context.Context, name string, def bool) bool
}

// Clock источник текущего времени.
type Clock interface {
	Now() time.Time
}

// BaggageReader читает элементы baggage из контекста запроса.
type BaggageReader interface {
	Entry(ctx context.Context, key string) (string, bool)
}

// Recorder принимает итог транзакции. Не должен возвращать ошибок вызывающему.
type Recorder interface {
	RecordTransaction(ctx context.Context, outcome models.ChargeOutcome)
}

// Metrics счётчики транзакций и отказов.
type Metrics interface {
	IncTransactions(amount models.Money)
	IncFailure(reason string)
}

// Deps внешние зависимости сервиса. Clock, Baggage, Tracer и NewID необязательны.
type Deps struct {
	Flags    FlagEvaluator
	Recorder Recorder
	Metrics  Metrics
	Policy   Policy
	Clock    Clock
	Baggage  BaggageReader
	Tracer   trace.Tracer
	NewID    func() string
}

type Service struct {
	flags    FlagEvaluator
	recorder Recorder
	metrics  Metrics
	policy   Policy
	clock    Clock
	baggage  BaggageReader
	tracer   trace.Tracer
	newID    func() string
	log      *slog.Logger
}

func New(deps Deps, log *slog.Logger) *Service {
	s := &Service{
		flags:    deps.Flags,
		recorder: deps.Recorder,
		metrics:  deps.Metrics,
		policy:   deps.Policy,
		clock:    deps.Clock,
		baggage:  deps.Baggage,
		tracer:   deps.Tracer,
		newID:    deps.NewID,
		log:      log,
	}
	if s.clock == nil {
		s.clock = clockz.RealClock
	}
	if s.baggage == nil {
		s.baggage = baggage.Reader{}
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// Charge проверяет карту и фиксирует транзакцию. При ошибке итог не возвращается.
func (s *Service) Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeOutcome, error) {
	const op = "charge.Service.Charge"

	ctx, span := s.tracer.Start(ctx, "charge")
	defer span.End()

	if s.flags.Bool(ctx, FlagPaymentServiceFailure, false) {
		err := &ServiceDisabledError{Flag: FlagPaymentServiceFailure}
		s.fail(ctx, span, op, "", err)
		return nil, err
	}

	assessment := card.Assess(req.Card.Number)
	span.SetAttributes(
		attribute.String("app.payment.card_type", assessment.Network.String()),
		attribute.Bool("app.payment.card_valid", assessment.StructurallyValid),
	)
	if !assessment.StructurallyValid {
		err := &InvalidCardError{Network: assessment.Network}
		s.fail(ctx, span, op, metrics.ReasonInvalidCard, err)
		return nil, err
	}

	lastFour := card.LastFour(req.Card.Number)
	if err := s.policy.Check(assessment.Network, req.Card, lastFour, s.clock.Now()); err != nil {
		s.fail(ctx, span, op, failureReason(err), err)
		return nil, err
	}

	charged := !s.isSynthetic(ctx)
	span.SetAttributes(attribute.Bool("app.payment.charged", charged))

	outcome := models.ChargeOutcome{
		TransactionID:  s.newID(),
		LastFourDigits: lastFour,
		Charged:        charged,
		Network:        assessment.Network,
		Amount:         req.Amount,
	}
	span.SetAttributes(attribute.String("app.payment.transaction_id", outcome.TransactionID))

	s.bestEffort(ctx, "recorder", func() { s.recorder.RecordTransaction(ctx, outcome) })
	s.bestEffort(ctx, "metrics", func() { s.metrics.IncTransactions(outcome.Amount) })

	return &outcome, nil
}

func (s *Service) isSynthetic(ctx context.Context) bool {
	v, ok := s.baggage.Entry(ctx, BaggageSyntheticRequest)
	return ok && v == "true"
}

// fail помечает span ошибкой и считает отказ. Для отключённого сервиса метрики не пишутся.
func (s *Service) fail(ctx context.Context, span trace.Span, op, reason string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	s.log.WarnContext(ctx, "charge rejected", sl.Op(op), sl.Err(err))

	if reason != "" {
		s.bestEffort(ctx, "metrics", func() { s.metrics.IncFailure(reason) })
	}
}

// bestEffort изолирует сбои наблюдаемости: паника в записи итога или метрик не прерывает списание.
func (s *Service) bestEffort(ctx context.Context, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "observability sink panicked",
				slog.String("sink", name),
				sl.Err(fmt.Errorf("%v", r)),
			)
		}
	}()
	fn()
}

func failureReason(err error) string {
	switch err.(type) {
	case *UnsupportedNetworkError:
		return metrics.ReasonUnsupportedNetwork
	case *CardExpiredError:
		return metrics.ReasonCardExpired
	case *InvalidCardError:
		return metrics.ReasonInvalidCard
	}
	return metrics.ReasonInternal
}
