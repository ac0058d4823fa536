package upstream

import "context"

// CreateCart opens a remote cart record and returns its id.
func (c *Client) CreateCart(ctx context.Context) (string, error) {
	var resp struct {
		envelope
		CartID string `json:"cartId"`
	}
	if err := c.postJSON(ctx, "/cart/create", map[string]string{}, &resp); err != nil {
		return "", err
	}
	return resp.CartID, nil
}

// AddCartItem attaches one resolved product to a remote cart. There is no
// atomicity across calls: the orchestrator treats a partially filled remote
// cart as disposable and recreates it on retry.
func (c *Client) AddCartItem(ctx context.Context, cartID, productID string, quantity int) error {
	body := map[string]interface{}{
		"cartId":    cartID,
		"productId": productID,
		"quantity":  quantity,
	}
	return c.postJSON(ctx, "/cart/add", body, nil)
}
