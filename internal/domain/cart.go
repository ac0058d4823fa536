package domain

// TaxRatePercent matches the order summary shown at checkout.
const TaxRatePercent = 8

type CartItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Image      string `json:"image,omitempty"`
	Quantity   int    `json:"quantity"`
}

// Cart holds a session's line items. Totals are derived on every call,
// never stored.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
}

func (c Cart) SubtotalCents() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.PriceCents * int64(item.Quantity)
	}
	return sum
}

type CartTotals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

func (c Cart) Totals() CartTotals {
	subtotal := c.SubtotalCents()
	tax := subtotal * TaxRatePercent / 100
	return CartTotals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}
