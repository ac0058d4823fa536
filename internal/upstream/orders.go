package upstream

import (
	"context"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
)

// OrderRequest is the shipping + cart reference payload shared by every
// order placement endpoint.
type OrderRequest struct {
	CartID      string              `json:"cartId"`
	Shipping    domain.ShippingForm `json:"address"`
	AmountCents int64               `json:"amountCents"`
}

// PlaceOrder places a cash-on-delivery order.
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) error {
	return c.postJSON(ctx, "/order/place", req, nil)
}

// AuthNetRequest adds raw card fields for the Authorize.Net flow.
type AuthNetRequest struct {
	OrderRequest
	Card domain.CardForm `json:"card"`
}

func (c *Client) PlaceAuthNetOrder(ctx context.Context, req AuthNetRequest) error {
	return c.postJSON(ctx, "/order/authnet", req, nil)
}

// RazorpayOrder is the provider order the backend creates for the hosted
// widget flow.
type RazorpayOrder struct {
	OrderID     string `json:"orderId"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
}

func (c *Client) CreateRazorpayOrder(ctx context.Context, req OrderRequest) (*RazorpayOrder, error) {
	var resp struct {
		envelope
		Order RazorpayOrder `json:"order"`
	}
	if err := c.postJSON(ctx, "/order/razorpay", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// RazorpayVerification carries the provider-issued callback triple.
type RazorpayVerification struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

func (c *Client) VerifyRazorpayPayment(ctx context.Context, v RazorpayVerification) error {
	return c.postJSON(ctx, "/order/verifyrazorpay", v, nil)
}

// StripeIntent is the server-issued secret the payment element mounts with.
type StripeIntent struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
}

func (c *Client) CreateStripeIntent(ctx context.Context, req OrderRequest) (*StripeIntent, error) {
	var resp struct {
		envelope
		OrderID      string `json:"orderId"`
		ClientSecret string `json:"clientSecret"`
	}
	if err := c.postJSON(ctx, "/order/stripe", req, &resp); err != nil {
		return nil, err
	}
	return &StripeIntent{OrderID: resp.OrderID, ClientSecret: resp.ClientSecret}, nil
}

// ConfirmStripeOrder reports the provider confirmation outcome; only a
// backend-confirmed success completes the order.
func (c *Client) ConfirmStripeOrder(ctx context.Context, orderID string, succeeded bool) error {
	body := map[string]interface{}{"orderId": orderID, "success": succeeded}
	return c.postJSON(ctx, "/order/confirmstripe", body, nil)
}

type wireOrder struct {
	ID        string          `json:"_id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Items     []wireOrderItem `json:"items"`
	Total     dollars         `json:"total"`
	Status    string          `json:"status"`
	Date      flexTime        `json:"date"`
}

type wireOrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     dollars `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (w wireOrder) toDomain() domain.Order {
	status, err := domain.ParseOrderStatus(w.Status)
	if err != nil {
		// Out-of-enum statuses from older backend revisions map to the
		// initial state rather than dropping the order.
		status = domain.StatusOrderPlaced
	}
	items := make([]domain.OrderItem, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, domain.OrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			PriceCents: item.Price.Cents(),
			Quantity:   item.Quantity,
		})
	}
	return domain.Order{
		ID:         w.ID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		Items:      items,
		TotalCents: w.Total.Cents(),
		Status:     status,
		Date:       w.Date.Time(),
	}
}

// ListOrders fetches all orders. The endpoint is a POST with an empty body
// on the consumed backend.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var resp struct {
		envelope
		Orders []wireOrder `json:"orders"`
	}
	if err := c.postJSON(ctx, "/order/list", map[string]string{}, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(resp.Orders))
	for _, w := range resp.Orders {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// UpdateOrderStatus makes the backend authoritative for status changes.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	body := map[string]string{"orderId": orderID, "status": string(status)}
	return c.postJSON(ctx, "/order/status", body, nil)
}
