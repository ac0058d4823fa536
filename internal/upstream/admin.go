package upstream

import "context"

// AdminStats is the dashboard headline block.
type AdminStats struct {
	RevenueCents int64 `json:"revenueCents"`
	Orders       int   `json:"orders"`
	Products     int   `json:"products"`
	Users        int   `json:"users"`
}

func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	var resp struct {
		envelope
		Stats struct {
			Revenue  dollars `json:"revenue"`
			Orders   int     `json:"orders"`
			Products int     `json:"products"`
			Users    int     `json:"users"`
		} `json:"stats"`
	}
	if err := c.get(ctx, "/admin/stats", &resp); err != nil {
		return nil, err
	}
	return &AdminStats{
		RevenueCents: resp.Stats.Revenue.Cents(),
		Orders:       resp.Stats.Orders,
		Products:     resp.Stats.Products,
		Users:        resp.Stats.Users,
	}, nil
}

// AdminUser is a backend user row with the activity tier the console shows.
type AdminUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"` // VIP, Regular, New
	Orders       int    `json:"orders"`
	SpentCents   int64  `json:"spentCents"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// AdminUserStats aggregates the tier counts.
type AdminUserStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	VIPUsers    int `json:"vipUsers"`
}

func (c *Client) AdminUsers(ctx context.Context) ([]AdminUser, AdminUserStats, error) {
	var resp struct {
		envelope
		Users []struct {
			ID           string  `json:"_id"`
			Name         string  `json:"name"`
			Email        string  `json:"email"`
			Status       string  `json:"status"`
			Orders       int     `json:"orders"`
			Spent        dollars `json:"spent"`
			ProfileImage string  `json:"profileImage"`
		} `json:"users"`
		Stats AdminUserStats `json:"stats"`
	}
	if err := c.get(ctx, "/admin/users", &resp); err != nil {
		return nil, AdminUserStats{}, err
	}
	users := make([]AdminUser, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, AdminUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Status:       u.Status,
			Orders:       u.Orders,
			SpentCents:   u.Spent.Cents(),
			ProfileImage: u.ProfileImage,
		})
	}
	return users, resp.Stats, nil
}

// Ping reports whether the backend answers at all; used by readiness.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListProducts(ctx)
	return err
}
