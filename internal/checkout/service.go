package checkout

import (
	"context"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/cart"
	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

// Backend is the slice of the upstream client checkout needs.
type Backend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateCart(ctx context.Context) (string, error)
	AddCartItem(ctx context.Context, cartID, productID string, quantity int) error
	PlaceOrder(ctx context.Context, req upstream.OrderRequest) error
	PlaceAuthNetOrder(ctx context.Context, req upstream.AuthNetRequest) error
	CreateRazorpayOrder(ctx context.Context, req upstream.OrderRequest) (*upstream.RazorpayOrder, error)
	VerifyRazorpayPayment(ctx context.Context, v upstream.RazorpayVerification) error
	CreateStripeIntent(ctx context.Context, req upstream.OrderRequest) (*upstream.StripeIntent, error)
	ConfirmStripeOrder(ctx context.Context, orderID string, succeeded bool) error
}

// Service drives the cart -> checkout -> processing -> result flow. The
// local cart is cleared only once the backend confirms the order.
type Service struct {
	carts   *cart.Store
	backend Backend
	drivers map[domain.PaymentMethod]driver
	log     *logrus.Logger
}

func New(carts *cart.Store, backend Backend, razorpaySecret string, log *logrus.Logger) *Service {
	return &Service{
		carts:   carts,
		backend: backend,
		drivers: map[domain.PaymentMethod]driver{
			domain.PaymentCOD:          &codDriver{backend: backend},
			domain.PaymentCardGateway:  &authNetDriver{backend: backend},
			domain.PaymentHostedWidget: &razorpayDriver{backend: backend, keySecret: razorpaySecret},
			domain.PaymentElement:      &stripeDriver{backend: backend},
		},
		log: log,
	}
}

// ResolvedItem is a cart item matched to a backend product id.
type ResolvedItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// Draft is the remote order draft built when the user proceeds to checkout.
type Draft struct {
	RemoteCartID string            `json:"remoteCartId"`
	Items        []ResolvedItem    `json:"items"`
	Dropped      []string          `json:"dropped,omitempty"`
	Totals       domain.CartTotals `json:"totals"`
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Begin resolves every local cart item to a backend product and builds a
// fresh remote cart around the resolved set. Items that cannot be resolved
// are dropped rather than blocking the whole order; if nothing resolves the
// transition aborts and the local cart is untouched. A draft abandoned
// mid-way is simply recreated on the next attempt.
func (s *Service) Begin(ctx context.Context, sessionID string) (*Draft, error) {
	local := s.carts.Get(sessionID)
	if len(local.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	resolved, dropped, err := s.resolve(ctx, local.Items)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, domain.ErrNoResolvableItems
	}

	remoteCartID, err := s.backend.CreateCart(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range resolved {
		if err := s.backend.AddCartItem(ctx, remoteCartID, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	draft := &Draft{
		RemoteCartID: remoteCartID,
		Items:        resolved,
		Dropped:      dropped,
		Totals:       draftTotals(resolved),
	}
	if len(dropped) > 0 {
		s.log.WithFields(logrus.Fields{"session": sessionID, "dropped": dropped}).
			Warn("cart items dropped during checkout resolution")
	}
	return draft, nil
}

// resolve matches items by exact backend id when the local id already looks
// like one, else by case-insensitive name against the live catalog. The
// catalog is fetched lazily, once.
func (s *Service) resolve(ctx context.Context, items []domain.CartItem) ([]ResolvedItem, []string, error) {
	var catalog []domain.Product
	catalogLoaded := false

	var resolved []ResolvedItem
	var dropped []string
	for _, item := range items {
		if objectIDPattern.MatchString(item.ID) {
			resolved = append(resolved, ResolvedItem{
				ProductID:  item.ID,
				Name:       item.Name,
				PriceCents: item.PriceCents,
				Quantity:   item.Quantity,
			})
			continue
		}
		if !catalogLoaded {
			var err error
			catalog, err = s.backend.ListProducts(ctx)
			if err != nil {
				return nil, nil, err
			}
			catalogLoaded = true
		}
		match := findByName(catalog, item.Name)
		if match == nil {
			dropped = append(dropped, item.Name)
			continue
		}
		resolved = append(resolved, ResolvedItem{
			ProductID:  match.ID,
			Name:       match.Name,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		})
	}
	return resolved, dropped, nil
}

func findByName(catalog []domain.Product, name string) *domain.Product {
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, name) {
			return &catalog[i]
		}
	}
	return nil
}

func draftTotals(items []ResolvedItem) domain.CartTotals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.PriceCents * int64(item.Quantity)
	}
	tax := subtotal * domain.TaxRatePercent / 100
	return domain.CartTotals{SubtotalCents: subtotal, TaxCents: tax, TotalCents: subtotal + tax}
}

// PlaceOrderInput is the "Place Order" submission.
type PlaceOrderInput struct {
	Method   domain.PaymentMethod
	Shipping domain.ShippingForm
	Card     *domain.CardForm
}

// Result reports how far the provider flow got. Completed means the backend
// confirmed the order and the local cart has been cleared; otherwise the
// client must finish the provider flow and call the matching verify
// operation.
type Result struct {
	Completed bool                    `json:"completed"`
	Draft     *Draft                  `json:"draft,omitempty"`
	Razorpay  *upstream.RazorpayOrder `json:"razorpay,omitempty"`
	Stripe    *upstream.StripeIntent  `json:"stripe,omitempty"`
}

// PlaceOrder validates, builds the remote draft and dispatches the selected
// provider. Validation failures short-circuit before any network call.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (*Result, error) {
	drv, ok := s.drivers[in.Method]
	if !ok {
		return nil, &ValidationError{Field: "method", Message: "unsupported payment method"}
	}
	if err := ValidateShipping(in.Shipping); err != nil {
		return nil, err
	}
	if in.Method == domain.PaymentCardGateway {
		if in.Card == nil {
			return nil, &ValidationError{Field: "card", Message: "required"}
		}
		if err := ValidateCard(*in.Card); err != nil {
			return nil, err
		}
	}

	draft, err := s.Begin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	req := upstream.OrderRequest{
		CartID:      draft.RemoteCartID,
		Shipping:    in.Shipping,
		AmountCents: draft.Totals.TotalCents,
	}
	initiation, err := drv.Initiate(ctx, req, in.Card)
	if err != nil {
		return nil, err
	}

	result := &Result{Draft: draft, Razorpay: initiation.razorpay, Stripe: initiation.stripe}
	if initiation.completed {
		s.carts.Clear(sessionID)
		result.Completed = true
	}
	return result, nil
}

// VerifyRazorpay finishes the hosted-widget flow. The cart survives until
// the backend accepts the provider signature; a dismissed widget simply
// never calls this.
func (s *Service) VerifyRazorpay(ctx context.Context, sessionID string, v upstream.RazorpayVerification) error {
	drv := s.drivers[domain.PaymentHostedWidget].(*razorpayDriver)
	if err := drv.VerifySignature(v); err != nil {
		return err
	}
	if err := s.backend.VerifyRazorpayPayment(ctx, v); err != nil {
		return err
	}
	s.carts.Clear(sessionID)
	return nil
}

// ConfirmStripe finishes the payment-element flow. Only a backend-confirmed
// success clears the cart.
func (s *Service) ConfirmStripe(ctx context.Context, sessionID, orderID string, succeeded bool) error {
	if err := s.backend.ConfirmStripeOrder(ctx, orderID, succeeded); err != nil {
		return err
	}
	if !succeeded {
		return ErrPaymentIncomplete
	}
	s.carts.Clear(sessionID)
	return nil
}
