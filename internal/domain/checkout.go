package domain

// ShippingForm carries the checkout contact and address fields. All fields
// are required; validation is non-empty after trim.
type ShippingForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// CardForm is sent only for the card-gateway method. Format-checked client
// side, not Luhn-checked.
type CardForm struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// PaymentMethod is the tagged variant over the supported providers.
type PaymentMethod string

const (
	PaymentCOD          PaymentMethod = "cod"
	PaymentCardGateway  PaymentMethod = "authnet"
	PaymentHostedWidget PaymentMethod = "razorpay"
	PaymentElement      PaymentMethod = "stripe"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCOD, PaymentCardGateway, PaymentHostedWidget, PaymentElement:
		return PaymentMethod(s), true
	}
	return "", false
}
