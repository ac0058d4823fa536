package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ravi-kumar178/ccjewllery/internal/cart"
	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

const backendID = "64f1a2b3c4d5e6f708192a3b"

type addItemCall struct {
	cartID    string
	productID string
	quantity  int
}

type stubBackend struct {
	calls int

	products []domain.Product
	listErr  error

	cartID        string
	createCartErr error

	addItemErr error
	added      []addItemCall

	placeErr error
	placed   []upstream.OrderRequest

	authNetErr error
	authNet    []upstream.AuthNetRequest

	razorpayOrder *upstream.RazorpayOrder
	razorpayErr   error

	verifyErr error
	verified  []upstream.RazorpayVerification

	stripeIntent *upstream.StripeIntent
	stripeErr    error

	confirmErr error
	confirmed  []bool
}

func (b *stubBackend) ListProducts(_ context.Context) ([]domain.Product, error) {
	b.calls++
	return b.products, b.listErr
}

func (b *stubBackend) CreateCart(_ context.Context) (string, error) {
	b.calls++
	return b.cartID, b.createCartErr
}

func (b *stubBackend) AddCartItem(_ context.Context, cartID, productID string, quantity int) error {
	b.calls++
	b.added = append(b.added, addItemCall{cartID, productID, quantity})
	return b.addItemErr
}

func (b *stubBackend) PlaceOrder(_ context.Context, req upstream.OrderRequest) error {
	b.calls++
	b.placed = append(b.placed, req)
	return b.placeErr
}

func (b *stubBackend) PlaceAuthNetOrder(_ context.Context, req upstream.AuthNetRequest) error {
	b.calls++
	b.authNet = append(b.authNet, req)
	return b.authNetErr
}

func (b *stubBackend) CreateRazorpayOrder(_ context.Context, _ upstream.OrderRequest) (*upstream.RazorpayOrder, error) {
	b.calls++
	return b.razorpayOrder, b.razorpayErr
}

func (b *stubBackend) VerifyRazorpayPayment(_ context.Context, v upstream.RazorpayVerification) error {
	b.calls++
	b.verified = append(b.verified, v)
	return b.verifyErr
}

func (b *stubBackend) CreateStripeIntent(_ context.Context, _ upstream.OrderRequest) (*upstream.StripeIntent, error) {
	b.calls++
	return b.stripeIntent, b.stripeErr
}

func (b *stubBackend) ConfirmStripeOrder(_ context.Context, _ string, succeeded bool) error {
	b.calls++
	b.confirmed = append(b.confirmed, succeeded)
	return b.confirmErr
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newService(backend *stubBackend, secret string) (*Service, *cart.Store) {
	carts := cart.NewStore()
	return New(carts, backend, secret, testLogger()), carts
}

func TestPlaceOrderValidationMakesNoNetworkCall(t *testing.T) {
	backend := &stubBackend{cartID: "rc1"}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	form := validShipping()
	form.Email = "   "
	_, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentCOD,
		Shipping: form,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
	assert.Zero(t, backend.calls, "validation failure must not reach the network")
}

func TestPlaceOrderCashOnDelivery(t *testing.T) {
	backend := &stubBackend{cartID: "rc1"}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000, Quantity: 2})

	result, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentCOD,
		Shipping: validShipping(),
	})
	require.NoError(t, err)
	assert.True(t, result.Completed)

	require.Len(t, backend.placed, 1)
	assert.Equal(t, "rc1", backend.placed[0].CartID)
	assert.Equal(t, int64(21600), backend.placed[0].AmountCents, "100 x 2 x 1.08 in cents")

	require.Len(t, backend.added, 1)
	assert.Equal(t, addItemCall{"rc1", backendID, 2}, backend.added[0])

	assert.Empty(t, carts.Get("sess").Items, "cart cleared after confirmed order")
}

func TestPlaceOrderBackendFailureKeepsCart(t *testing.T) {
	backend := &stubBackend{cartID: "rc1", placeErr: errors.New("backend down")}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	_, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentCOD,
		Shipping: validShipping(),
	})
	require.Error(t, err)
	assert.Len(t, carts.Get("sess").Items, 1, "cart must survive a failed order")
}

func TestPlaceOrderAuthNetRequiresValidCard(t *testing.T) {
	backend := &stubBackend{cartID: "rc1"}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	_, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentCardGateway,
		Shipping: validShipping(),
		Card:     &domain.CardForm{Number: "4111", Expiry: "12/27", CVV: "123"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, backend.calls)

	_, err = svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentCardGateway,
		Shipping: validShipping(),
	})
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, backend.calls)
}

func TestPlaceOrderAuthNet(t *testing.T) {
	backend := &stubBackend{cartID: "rc1"}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 250000})

	result, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentCardGateway,
		Shipping: validShipping(),
		Card:     &domain.CardForm{Number: "4111 1111 1111 1111", Expiry: "12/27", CVV: "123"},
	})
	require.NoError(t, err)
	assert.True(t, result.Completed)
	require.Len(t, backend.authNet, 1)
	assert.Equal(t, "4111 1111 1111 1111", backend.authNet[0].Card.Number)
	assert.Empty(t, carts.Get("sess").Items)
}

func TestResolveByNameCaseInsensitive(t *testing.T) {
	backend := &stubBackend{
		cartID:   "rc1",
		products: []domain.Product{{ID: backendID, Name: "Jade Prosperity & Harmony Bracelet"}},
	}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: "4", Name: "JADE prosperity & harmony BRACELET", PriceCents: 265000})

	draft, err := svc.Begin(context.Background(), "sess")
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, backendID, draft.Items[0].ProductID)
	assert.Empty(t, draft.Dropped)
}

func TestResolveDropsUnknownItems(t *testing.T) {
	backend := &stubBackend{
		cartID:   "rc1",
		products: []domain.Product{{ID: backendID, Name: "Known Bracelet"}},
	}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: "1", Name: "Known Bracelet", PriceCents: 10000})
	carts.AddItem("sess", domain.CartItem{ID: "2", Name: "Phantom Pendant", PriceCents: 5000})

	draft, err := svc.Begin(context.Background(), "sess")
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, []string{"Phantom Pendant"}, draft.Dropped)
	// The charge covers only what was attached to the remote cart.
	assert.Equal(t, int64(10800), draft.Totals.TotalCents)
}

func TestResolveAllDroppedAborts(t *testing.T) {
	backend := &stubBackend{cartID: "rc1"}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: "1", Name: "Phantom Pendant", PriceCents: 5000})

	_, err := svc.Begin(context.Background(), "sess")
	require.ErrorIs(t, err, domain.ErrNoResolvableItems)
	assert.Empty(t, backend.added, "no remote cart population on abort")
	assert.Len(t, carts.Get("sess").Items, 1, "local cart retained")
}

func TestBeginEmptyCart(t *testing.T) {
	svc, _ := newService(&stubBackend{}, "")
	_, err := svc.Begin(context.Background(), "sess")
	require.ErrorIs(t, err, domain.ErrEmptyCart)
}

func razorpaySignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayFlow(t *testing.T) {
	backend := &stubBackend{
		cartID:        "rc1",
		razorpayOrder: &upstream.RazorpayOrder{OrderID: "order_123", AmountCents: 10800, Currency: "INR", KeyID: "rzp_test"},
	}
	svc, carts := newService(backend, "secret")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	result, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentHostedWidget,
		Shipping: validShipping(),
	})
	require.NoError(t, err)
	assert.False(t, result.Completed, "hosted widget flow is not complete at initiation")
	require.NotNil(t, result.Razorpay)
	assert.Equal(t, "order_123", result.Razorpay.OrderID)

	// Widget still open or dismissed: cart stays populated.
	assert.Len(t, carts.Get("sess").Items, 1)

	v := upstream.RazorpayVerification{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: razorpaySignature("secret", "order_123", "pay_456"),
	}
	require.NoError(t, svc.VerifyRazorpay(context.Background(), "sess", v))
	require.Len(t, backend.verified, 1)
	assert.Empty(t, carts.Get("sess").Items, "cart cleared only after verification")
}

func TestRazorpayDismissalKeepsCart(t *testing.T) {
	backend := &stubBackend{
		cartID:        "rc1",
		razorpayOrder: &upstream.RazorpayOrder{OrderID: "order_123"},
	}
	svc, carts := newService(backend, "secret")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	_, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentHostedWidget,
		Shipping: validShipping(),
	})
	require.NoError(t, err)

	// The user closes the widget without paying: verify is never called.
	assert.Len(t, carts.Get("sess").Items, 1)
	assert.Empty(t, backend.verified)
}

func TestRazorpayBadSignature(t *testing.T) {
	backend := &stubBackend{cartID: "rc1", razorpayOrder: &upstream.RazorpayOrder{OrderID: "order_123"}}
	svc, carts := newService(backend, "secret")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	err := svc.VerifyRazorpay(context.Background(), "sess", upstream.RazorpayVerification{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: "forged",
	})
	require.Error(t, err)
	assert.Empty(t, backend.verified, "backend not asked to verify a forged signature")
	assert.Len(t, carts.Get("sess").Items, 1)
}

func TestStripeFlow(t *testing.T) {
	backend := &stubBackend{
		cartID:       "rc1",
		stripeIntent: &upstream.StripeIntent{OrderID: "ord_1", ClientSecret: "pi_secret"},
	}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	result, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentElement,
		Shipping: validShipping(),
	})
	require.NoError(t, err)
	assert.False(t, result.Completed)
	require.NotNil(t, result.Stripe)
	assert.Equal(t, "pi_secret", result.Stripe.ClientSecret)
	assert.Len(t, carts.Get("sess").Items, 1)

	require.NoError(t, svc.ConfirmStripe(context.Background(), "sess", "ord_1", true))
	assert.Empty(t, carts.Get("sess").Items)
}

func TestStripeFailedConfirmationKeepsCart(t *testing.T) {
	backend := &stubBackend{cartID: "rc1"}
	svc, carts := newService(backend, "")
	carts.AddItem("sess", domain.CartItem{ID: backendID, Name: "Bracelet", PriceCents: 10000})

	err := svc.ConfirmStripe(context.Background(), "sess", "ord_1", false)
	require.Error(t, err)
	assert.Len(t, carts.Get("sess").Items, 1)
	require.Len(t, backend.confirmed, 1)
	assert.False(t, backend.confirmed[0], "failure still reported to the backend")
}

func TestPlaceOrderUnknownMethod(t *testing.T) {
	backend := &stubBackend{}
	svc, _ := newService(backend, "")
	_, err := svc.PlaceOrder(context.Background(), "sess", PlaceOrderInput{
		Method:   domain.PaymentMethod("paypal"),
		Shipping: validShipping(),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, backend.calls)
}
