package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/payment-service/internal/lib/card"
	"github.com/magabrotheeeer/payment-service/internal/models"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		network models.CardNetwork
		valid   bool
	}{
		{name: "visa 16", number: "4111111111111111", network: models.NetworkVisa, valid: true},
		{name: "visa 13", number: "4222222222222", network: models.NetworkVisa, valid: true},
		{name: "visa 19", number: "4111111111111111110", network: models.NetworkVisa, valid: true},
		{name: "visa bad luhn", number: "4111111111111112", network: models.NetworkVisa, valid: false},
		{name: "visa bad length", number: "41111111111111111", network: models.NetworkVisa, valid: false},
		{name: "mastercard 5 series", number: "5555555555554444", network: models.NetworkMastercard, valid: true},
		{name: "mastercard 2 series low", number: "2221000000000009", network: models.NetworkMastercard, valid: true},
		{name: "mastercard 2 series high", number: "2720990000000007", network: models.NetworkMastercard, valid: true},
		{name: "mastercard bad length", number: "520000000000001", network: models.NetworkMastercard, valid: false},
		{name: "amex", number: "341111111111111", network: models.NetworkAmex, valid: true},
		{name: "amex 37", number: "378282246310005", network: models.NetworkAmex, valid: true},
		{name: "discover", number: "6011111111111117", network: models.NetworkDiscover, valid: true},
		{name: "discover 622126", number: "6221260000000000", network: models.NetworkDiscover, valid: true},
		{name: "diners", number: "30569309025904", network: models.NetworkDiners, valid: true},
		{name: "jcb", number: "3530111333300000", network: models.NetworkJCB, valid: true},
		{name: "unknown prefix with valid luhn", number: "1234567812345670", network: models.NetworkUnknown, valid: false},
		{name: "unknown 50 prefix", number: "5000000000000009", network: models.NetworkUnknown, valid: false},
		{name: "non digits", number: "4111-1111-1111-1111", network: models.NetworkVisa, valid: false},
		{name: "spaces", number: " 4111111111111111", network: models.NetworkUnknown, valid: false},
		{name: "empty", number: "", network: models.NetworkUnknown, valid: false},
		{name: "too short", number: "411", network: models.NetworkVisa, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := card.Assess(tt.number)
			assert.Equal(t, tt.network, got.Network)
			assert.Equal(t, tt.valid, got.StructurallyValid)
		})
	}
}

func TestLuhn(t *testing.T) {
	assert.True(t, card.Luhn("79927398713"))
	assert.True(t, card.Luhn("0"))
	assert.False(t, card.Luhn("79927398710"))
	assert.False(t, card.Luhn(""))
	assert.False(t, card.Luhn("7992739871x"))
}

func TestNetwork(t *testing.T) {
	assert.Equal(t, models.NetworkVisa, card.Network("4"))
	assert.Equal(t, models.NetworkMastercard, card.Network("2500"))
	assert.Equal(t, models.NetworkUnknown, card.Network("2220"))
	assert.Equal(t, models.NetworkUnknown, card.Network("2721"))
	assert.Equal(t, models.NetworkDiscover, card.Network("649"))
	assert.Equal(t, models.NetworkUnknown, card.Network("643"))
}

func TestLastFour(t *testing.T) {
	assert.Equal(t, "1111", card.LastFour("4111111111111111"))
	assert.Equal(t, "0005", card.LastFour("378282246310005"))
	assert.Equal(t, "123", card.LastFour("123"))
	assert.Equal(t, "", card.LastFour(""))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "411111******1111", card.Mask("4111111111111111"))
	assert.Equal(t, "****", card.Mask("1234"))
	assert.Equal(t, "***5678", card.Mask("1235678"))
	assert.Equal(t, "", card.Mask(""))
}
