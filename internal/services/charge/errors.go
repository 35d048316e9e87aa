package charge

import (
	"errors"
	"fmt"

	"github.com/magabrotheeeer/payment-service/internal/models"
)

// Сентинелы для errors.Is, каждая типизированная ошибка сопоставляется со своим.
var (
	ErrServiceDisabled    = errors.New("payment service disabled")
	ErrInvalidCard        = errors.New("invalid credit card")
	ErrUnsupportedNetwork = errors.New("unsupported card network")
	ErrCardExpired        = errors.New("credit card expired")
)

// ServiceDisabledError списания отключены фич-флагом.
type ServiceDisabledError struct {
	Flag string
}

func (e *ServiceDisabledError) Error() string {
	return fmt.Sprintf("payment service is disabled by feature flag %s", e.Flag)
}

func (e *ServiceDisabledError) Is(target error) bool { return target == ErrServiceDisabled }

// InvalidCardError номер карты не прошёл проверку формата или контрольной суммы.
type InvalidCardError struct {
	Network models.CardNetwork
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("credit card info is invalid (network: %s)", e.Network)
}

func (e *InvalidCardError) Is(target error) bool { return target == ErrInvalidCard }

// UnsupportedNetworkError карта валидна, но её платёжная система не принимается.
type UnsupportedNetworkError struct {
	Network models.CardNetwork
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("sorry, we cannot process %s credit cards", e.Network)
}

func (e *UnsupportedNetworkError) Is(target error) bool { return target == ErrUnsupportedNetwork }

// CardExpiredError срок действия карты истёк.
type CardExpiredError struct {
	Month    int
	Year     int
	LastFour string
}

func (e *CardExpiredError) Error() string {
	return fmt.Sprintf("the credit card (ending %s) expired on %d/%d", e.LastFour, e.Month, e.Year)
}

func (e *CardExpiredError) Is(target error) bool { return target == ErrCardExpired }
