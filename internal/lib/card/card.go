// Package card определяет платёжную систему по номеру карты и проверяет его структуру:
// префикс, допустимую длину и контрольную сумму Luhn.
//
// Платёжная система определяется только по префиксу, поэтому для номера с неверной
// контрольной суммой по-прежнему возвращается распознанная сеть (например, visa).
// Номер с неизвестным префиксом всегда невалиден.
package card

import (
	"strconv"
	"strings"

	"github.com/magabrotheeeer/payment-service/internal/models"
)

type prefixRange struct {
	digits   int
	from, to int
}

type rule struct {
	network  models.CardNetwork
	prefixes []prefixRange
	lengths  []int
}

func lengths(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for l := from; l <= to; l++ {
		out = append(out, l)
	}
	return out
}

var rules = []rule{
	{
		network:  models.NetworkVisa,
		prefixes: []prefixRange{{1, 4, 4}},
		lengths:  []int{13, 16, 19},
	},
	{
		network:  models.NetworkMastercard,
		prefixes: []prefixRange{{2, 51, 55}, {4, 2221, 2720}},
		lengths:  []int{16},
	},
	{
		network:  models.NetworkAmex,
		prefixes: []prefixRange{{2, 34, 34}, {2, 37, 37}},
		lengths:  []int{15},
	},
	{
		network:  models.NetworkDiscover,
		prefixes: []prefixRange{{4, 6011, 6011}, {3, 644, 649}, {2, 65, 65}, {6, 622126, 622925}},
		lengths:  lengths(16, 19),
	},
	{
		network:  models.NetworkDiners,
		prefixes: []prefixRange{{3, 300, 305}, {2, 36, 36}, {2, 38, 39}},
		lengths:  lengths(14, 19),
	},
	{
		network:  models.NetworkJCB,
		prefixes: []prefixRange{{4, 3528, 3589}},
		lengths:  lengths(16, 19),
	},
}

// Assess определяет сеть карты и её структурную валидность.
func Assess(number string) models.CardAssessment {
	r, ok := classify(number)
	if !ok {
		return models.CardAssessment{Network: models.NetworkUnknown}
	}

	valid := IsDigits(number) && hasLength(r.lengths, len(number)) && Luhn(number)

	return models.CardAssessment{
		Network:           r.network,
		StructurallyValid: valid,
	}
}

// Network возвращает платёжную систему по префиксу номера.
func Network(number string) models.CardNetwork {
	if r, ok := classify(number); ok {
		return r.network
	}
	return models.NetworkUnknown
}

func classify(number string) (rule, bool) {
	for _, r := range rules {
		for _, p := range r.prefixes {
			if p.match(number) {
				return r, true
			}
		}
	}
	return rule{}, false
}

func (p prefixRange) match(number string) bool {
	if len(number) < p.digits {
		return false
	}
	head := number[:p.digits]
	if !IsDigits(head) {
		return false
	}
	v, err := strconv.Atoi(head)
	if err != nil {
		return false
	}
	return v >= p.from && v <= p.to
}

func hasLength(allowed []int, l int) bool {
	for _, a := range allowed {
		if a == l {
			return true
		}
	}
	return false
}

// Luhn проверяет контрольную сумму номера. Пустая строка и нецифровые символы невалидны.
func Luhn(number string) bool {
	if number == "" || !IsDigits(number) {
		return false
	}
	sum, dbl := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return sum%10 == 0
}

// IsDigits сообщает, состоит ли строка только из цифр ASCII.
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LastFour возвращает последние четыре символа номера.
// Строки короче четырёх символов возвращаются как есть: до этого шага доходят только
// номера, прошедшие Assess, а они не короче 13 цифр.
func LastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

// Mask скрывает номер, оставляя BIN (первые 6 цифр) и последние 4 цифры.
func Mask(number string) string {
	n := len(number)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return strings.Repeat("*", n)
	case n < 10:
		return strings.Repeat("*", n-4) + number[n-4:]
	}
	return number[:6] + strings.Repeat("*", n-10) + number[n-4:]
}
