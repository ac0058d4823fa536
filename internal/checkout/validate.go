package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
)

// ValidationError keeps the user on the checkout form; no network call is
// made when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// ValidateShipping requires every field to be non-empty after trimming.
func ValidateShipping(form domain.ShippingForm) error {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"street", form.Street},
		{"city", form.City},
		{"state", form.State},
		{"zip", form.Zip},
		{"country", form.Country},
		{"phone", form.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Message: "required"}
		}
	}
	return nil
}

// ValidateCard format-checks the card fields. No Luhn check; the gateway
// is the authority on card validity.
func ValidateCard(card domain.CardForm) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) != 16 || !digitsOnly.MatchString(number) {
		return &ValidationError{Field: "cardNumber", Message: "must be 16 digits"}
	}
	if !expiryPattern.MatchString(strings.TrimSpace(card.Expiry)) {
		return &ValidationError{Field: "expiry", Message: "must be MM/YY"}
	}
	if !cvvPattern.MatchString(strings.TrimSpace(card.CVV)) {
		return &ValidationError{Field: "cvv", Message: "must be 3 or 4 digits"}
	}
	return nil
}
