package enum

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentQR   PaymentMethod = "qr"
)

// IsValid reports whether the payment method is one of the known values.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentQR:
		return true
	}
	return false
}

// String returns the string representation of the payment method
func (p PaymentMethod) String() string {
	return string(p)
}
