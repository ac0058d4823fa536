package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

var (
	// ErrSignatureMismatch means the provider callback failed the local
	// HMAC check; the backend is never asked to verify it.
	ErrSignatureMismatch = errors.New("razorpay signature mismatch")
	// ErrPaymentIncomplete means the provider reported an unfinished or
	// failed payment; the cart is left as it was.
	ErrPaymentIncomplete = errors.New("payment was not completed")
)

// driver is the uniform provider contract. Single-shot providers finish at
// initiation; the others hand a reference back to the client and are
// completed through the service's verify operations.
type driver interface {
	Initiate(ctx context.Context, req upstream.OrderRequest, card *domain.CardForm) (*initiation, error)
}

type initiation struct {
	completed bool
	razorpay  *upstream.RazorpayOrder
	stripe    *upstream.StripeIntent
}

// codDriver: single POST, paid on delivery.
type codDriver struct {
	backend Backend
}

func (d *codDriver) Initiate(ctx context.Context, req upstream.OrderRequest, _ *domain.CardForm) (*initiation, error) {
	if err := d.backend.PlaceOrder(ctx, req); err != nil {
		return nil, err
	}
	return &initiation{completed: true}, nil
}

// authNetDriver: single POST carrying the card fields alongside shipping.
type authNetDriver struct {
	backend Backend
}

func (d *authNetDriver) Initiate(ctx context.Context, req upstream.OrderRequest, card *domain.CardForm) (*initiation, error) {
	if card == nil {
		return nil, &ValidationError{Field: "card", Message: "required"}
	}
	if err := d.backend.PlaceAuthNetOrder(ctx, upstream.AuthNetRequest{OrderRequest: req, Card: *card}); err != nil {
		return nil, err
	}
	return &initiation{completed: true}, nil
}

// razorpayDriver: two-phase. Initiation creates the provider order the
// hosted widget opens with; the payment completes only through signature
// verification.
type razorpayDriver struct {
	backend   Backend
	keySecret string
}

func (d *razorpayDriver) Initiate(ctx context.Context, req upstream.OrderRequest, _ *domain.CardForm) (*initiation, error) {
	order, err := d.backend.CreateRazorpayOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	return &initiation{razorpay: order}, nil
}

// VerifySignature checks the provider callback triple against the key
// secret before the backend is asked to verify. Skipped when no secret is
// configured (the backend check still runs).
func (d *razorpayDriver) VerifySignature(v upstream.RazorpayVerification) error {
	if d.keySecret == "" {
		return nil
	}
	mac := hmac.New(sha256.New, []byte(d.keySecret))
	mac.Write([]byte(v.OrderID + "|" + v.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(v.Signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

// stripeDriver: payment-element strategy. Initiation obtains the
// server-issued client secret; confirmation happens in the provider SDK and
// is reported back through ConfirmStripe.
type stripeDriver struct {
	backend Backend
}

func (d *stripeDriver) Initiate(ctx context.Context, req upstream.OrderRequest, _ *domain.CardForm) (*initiation, error) {
	intent, err := d.backend.CreateStripeIntent(ctx, req)
	if err != nil {
		return nil, err
	}
	return &initiation{stripe: intent}, nil
}
