package models

// CardNetwork платёжная система карты.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
	NetworkDiscover   CardNetwork = "discover"
	NetworkDiners     CardNetwork = "diners"
	NetworkJCB        CardNetwork = "jcb"
	NetworkUnknown    CardNetwork = "unknown"
)

func (n CardNetwork) String() string {
	return string(n)
}
