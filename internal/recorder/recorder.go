// Package recorder фиксирует итог успешного списания: пишет структурированную
// запись в лог и асинхронно рассылает итог подписчикам (например, в RabbitMQ).
//
// Запись best-effort: ни ошибка подписчика, ни переполнение очереди не возвращаются
// вызывающему и не влияют на результат авторизации.
package recorder

import (
	"context"
	"log/slog"

	"github.com/zoobzio/hookz"

	"github.com/magabrotheeeer/payment-service/internal/config"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
	"github.com/magabrotheeeer/payment-service/internal/models"
)

// EventTransactionCompleted событие о завершённой транзакции.
const EventTransactionCompleted hookz.Key = "payment.transaction.completed"

// Sink получатель итогов транзакций.
type Sink func(ctx context.Context, outcome models.ChargeOutcome) error

type Recorder struct {
	hooks *hookz.Hooks[models.ChargeOutcome]
	log   *slog.Logger
}

func New(log *slog.Logger, cfg config.Recorder) *Recorder {
	opts := []hookz.Option{
		hookz.WithWorkers(cfg.Workers),
		hookz.WithTimeout(cfg.Timeout),
	}
	if cfg.QueueSize > 0 {
		opts = append(opts, hookz.WithQueueSize(cfg.QueueSize))
	}
	return &Recorder{
		hooks: hookz.New[models.ChargeOutcome](opts...),
		log:   log,
	}
}

// AddSink подписывает получателя на итоги транзакций. Ошибки получателя только логируются.
func (r *Recorder) AddSink(name string, sink Sink) error {
	_, err := r.hooks.Hook(EventTransactionCompleted, func(ctx context.Context, outcome models.ChargeOutcome) error {
		if err := sink(ctx, outcome); err != nil {
			r.log.Error("transaction sink failed",
				slog.String("sink", name),
				slog.String("transaction_id", outcome.TransactionID),
				sl.Err(err),
			)
		}
		return nil
	})
	return err
}

// RecordTransaction пишет "Transaction complete." и отправляет итог подписчикам.
// Полный номер карты в итоге отсутствует, в лог попадают только последние 4 цифры.
func (r *Recorder) RecordTransaction(ctx context.Context, outcome models.ChargeOutcome) {
	r.log.InfoContext(ctx, "Transaction complete.",
		slog.String("transaction_id", outcome.TransactionID),
		slog.String("card_type", outcome.Network.String()),
		slog.String("last_four_digits", outcome.LastFourDigits),
		slog.Bool("charged", outcome.Charged),
		sl.Amount(outcome.Amount),
	)

	// подписчики не должны отменяться вместе с HTTP-запросом
	if err := r.hooks.Emit(context.WithoutCancel(ctx), EventTransactionCompleted, outcome); err != nil {
		r.log.Warn("failed to emit transaction event",
			slog.String("transaction_id", outcome.TransactionID),
			sl.Err(err),
		)
	}
}

// Close дожидается обработки поставленных событий и останавливает воркеры.
func (r *Recorder) Close() error {
	return r.hooks.Close()
}
