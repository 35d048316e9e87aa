package charge

import (
	"slices"
	"strings"
	"time"

	"github.com/magabrotheeeer/payment-service/internal/lib/month"
	"github.com/magabrotheeeer/payment-service/internal/models"
)

// Policy проверяет, принимается ли платёжная система карты и не истёк ли её срок действия.
type Policy struct {
	accepted map[models.CardNetwork]struct{}
}

// NewPolicy создаёт политику с перечнем принимаемых платёжных систем.
// Пустой перечень означает политику по умолчанию: visa и mastercard.
func NewPolicy(accepted []string) Policy {
	if len(accepted) == 0 {
		accepted = []string{models.NetworkVisa.String(), models.NetworkMastercard.String()}
	}
	p := Policy{accepted: make(map[models.CardNetwork]struct{}, len(accepted))}
	for _, n := range accepted {
		p.accepted[models.CardNetwork(strings.ToLower(strings.TrimSpace(n)))] = struct{}{}
	}
	return p
}

// Accepts сообщает, принимается ли платёжная система.
func (p Policy) Accepts(network models.CardNetwork) bool {
	if p.accepted == nil {
		return network == models.NetworkVisa || network == models.NetworkMastercard
	}
	_, ok := p.accepted[network]
	return ok
}

// IsDefault сообщает, что принимаются ровно visa и mastercard.
func (p Policy) IsDefault() bool {
	if p.accepted == nil {
		return true
	}
	return len(p.accepted) == 2 && p.Accepts(models.NetworkVisa) && p.Accepts(models.NetworkMastercard)
}

// Networks возвращает принимаемые платёжные системы в алфавитном порядке.
func (p Policy) Networks() []string {
	if p.accepted == nil {
		return []string{models.NetworkMastercard.String(), models.NetworkVisa.String()}
	}
	out := make([]string, 0, len(p.accepted))
	for n := range p.accepted {
		out = append(out, n.String())
	}
	slices.Sort(out)
	return out
}

// Check применяет правила по порядку: сначала платёжная система, затем срок действия.
// Карта, срок которой заканчивается в текущем месяце, ещё действительна.
func (p Policy) Check(network models.CardNetwork, card models.CreditCard, lastFour string, now time.Time) error {
	if !p.Accepts(network) {
		return &UnsupportedNetworkError{Network: network}
	}

	if month.Expired(card.ExpirationYear, card.ExpirationMonth, now) {
		return &CardExpiredError{
			Month:    card.ExpirationMonth,
			Year:     card.ExpirationYear,
			LastFour: lastFour,
		}
	}
	return nil
}
