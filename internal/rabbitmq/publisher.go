package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"github.com/zoobzio/clockz"

	"github.com/magabrotheeeer/payment-service/internal/models"
)

// Channel часть *amqp.Channel, нужная для публикации.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// TransactionEvent сообщение о завершённой транзакции. Номер карты не передаётся.
type TransactionEvent struct {
	TransactionID  string       `json:"transaction_id"`
	Network        string       `json:"network"`
	LastFourDigits string       `json:"last_four_digits"`
	Charged        bool         `json:"charged"`
	Amount         models.Money `json:"amount"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

// PublishMessage публикует сообщение в RabbitMQ.
func PublishMessage(ch Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// TransactionPublisher публикует итоги транзакций. Канал AMQP не потокобезопасен,
// поэтому публикации сериализуются.
type TransactionPublisher struct {
	mu         sync.Mutex
	ch         Channel
	exchange   string
	routingKey string
	clock      clockz.Clock
}

func NewTransactionPublisher(ch Channel, exchange, routingKey string, clock clockz.Clock) *TransactionPublisher {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &TransactionPublisher{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		clock:      clock,
	}
}

// Publish отправляет событие о транзакции. Сигнатура совпадает с recorder.Sink.
func (p *TransactionPublisher) Publish(ctx context.Context, outcome models.ChargeOutcome) error {
	const op = "rabbitmq.TransactionPublisher.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	event := TransactionEvent{
		TransactionID:  outcome.TransactionID,
		Network:        outcome.Network.String(),
		LastFourDigits: outcome.LastFourDigits,
		Charged:        outcome.Charged,
		Amount:         outcome.Amount,
		OccurredAt:     p.clock.Now().UTC(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := PublishMessage(p.ch, p.exchange, p.routingKey, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
