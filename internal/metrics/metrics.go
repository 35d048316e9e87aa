// Package metrics содержит prometheus-метрики платёжного сервиса.
// Все счётчики общие для процесса, монотонные и потокобезопасные.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/magabrotheeeer/payment-service/internal/models"
)

// Причины отказа в списании, используются как значение метки reason.
// Отключение списаний флагом отказом не считается.
const (
	ReasonInvalidCard        = "invalid_card"
	ReasonUnsupportedNetwork = "unsupported_network"
	ReasonCardExpired        = "card_expired"
	ReasonInternal           = "internal"
)

type Metrics struct {
	transactions *prometheus.CounterVec
	failures     *prometheus.CounterVec
	amount       *prometheus.HistogramVec
	flagErrors   *prometheus.CounterVec
}

// New создаёт метрики и регистрирует их в reg. Вызывается один раз при старте процесса.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "app_payment_transactions_total",
			Help: "Number of completed payment transactions.",
		}, []string{"currency"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "app_payment_charge_failures_total",
			Help: "Number of rejected charge requests by reason.",
		}, []string{"reason"}),
		amount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "app_payment_amount",
			Help:    "Amount of completed transactions in major currency units.",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}, []string{"currency"}),
		flagErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "app_payment_flag_errors_total",
			Help: "Number of feature flag lookups that failed and fell back to the default.",
		}, []string{"flag"}),
	}

	reg.MustRegister(m.transactions, m.failures, m.amount, m.flagErrors)
	return m
}

// IncTransactions увеличивает счётчик транзакций с меткой валюты и учитывает сумму.
func (m *Metrics) IncTransactions(amount models.Money) {
	m.transactions.WithLabelValues(amount.CurrencyCode).Inc()
	m.amount.WithLabelValues(amount.CurrencyCode).Observe(amount.Float())
}

func (m *Metrics) IncFailure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncFlagError(flag string) {
	m.flagErrors.WithLabelValues(flag).Inc()
}
