// Package models содержит доменные структуры платёжного сервиса:
// запрос на списание, данные карты, денежную сумму и итог транзакции.
package models

// CreditCard описывает данные карты из запроса на списание.
type CreditCard struct {
	Number          string // Номер карты, только цифры
	ExpirationMonth int    // Месяц окончания действия, 1..12
	ExpirationYear  int    // Год окончания действия, четыре цифры
}

// Money представляет сумму в формате units + nanos.
// Nanos всегда нормализованы в диапазон 0..999999999, сервис их не корректирует.
type Money struct {
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
	CurrencyCode string `json:"currency_code"`
}

// Float возвращает сумму как число с плавающей точкой, используется только для метрик.
func (m Money) Float() float64 {
	return float64(m.Units) + float64(m.Nanos)/1e9
}

// ChargeRequest входные данные операции списания.
type ChargeRequest struct {
	Card   CreditCard
	Amount Money
}

// ChargeOutcome итог успешного списания. Создаётся один раз на вызов и не изменяется.
type ChargeOutcome struct {
	TransactionID  string      `json:"transaction_id"`
	LastFourDigits string      `json:"last_four_digits"`
	Charged        bool        `json:"charged"`
	Network        CardNetwork `json:"network"`
	Amount         Money       `json:"amount"`
}

// CardAssessment результат проверки номера карты.
type CardAssessment struct {
	Network           CardNetwork
	StructurallyValid bool
}
