package admin

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

// Backend is the admin-scoped slice of the upstream client.
type Backend interface {
	AdminStats(ctx context.Context) (*upstream.AdminStats, error)
	AdminUsers(ctx context.Context) ([]upstream.AdminUser, upstream.AdminUserStats, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	AddProduct(ctx context.Context, in upstream.AddProductInput) error
	RemoveProduct(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

// Service backs the admin console tabs. Every mutation waits for backend
// confirmation; there are no optimistic local updates to roll back.
type Service struct {
	backend Backend
	log     *logrus.Logger
}

func New(backend Backend, log *logrus.Logger) *Service {
	return &Service{backend: backend, log: log}
}

func (s *Service) Stats(ctx context.Context) (*upstream.AdminStats, error) {
	return s.backend.AdminStats(ctx)
}

func (s *Service) Users(ctx context.Context) ([]upstream.AdminUser, upstream.AdminUserStats, error) {
	return s.backend.AdminUsers(ctx)
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.backend.ListProducts(ctx)
}

func (s *Service) AddProduct(ctx context.Context, in upstream.AddProductInput) error {
	if in.Name == "" || in.Category == "" || in.Description == "" || in.PriceCents <= 0 {
		return &ValidationError{Message: "name, category, description and price are required"}
	}
	if len(in.Images) == 0 {
		return &ValidationError{Message: "at least one product image is required"}
	}
	return s.backend.AddProduct(ctx, in)
}

// DeleteProduct removes the product on the backend. The caller refreshes
// its list afterwards; nothing is removed locally on a failed call.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Message: "product id is required"}
	}
	if err := s.backend.RemoveProduct(ctx, id); err != nil {
		s.log.WithError(err).WithField("product", id).Error("product delete rejected")
		return err
	}
	return nil
}

func (s *Service) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.backend.ListOrders(ctx)
}

// UpdateOrderStatus pushes the change to the backend first; the local view
// only ever shows the last confirmed value.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, status string) (domain.OrderStatus, error) {
	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return "", &ValidationError{Message: err.Error()}
	}
	if err := s.backend.UpdateOrderStatus(ctx, orderID, parsed); err != nil {
		return "", err
	}
	return parsed, nil
}

// Analytics aggregates the order book for the analytics tab.
type Analytics struct {
	TotalOrders    int                        `json:"totalOrders"`
	RevenueCents   int64                      `json:"revenueCents"`
	OrdersByStatus map[domain.OrderStatus]int `json:"ordersByStatus"`
	AverageCents   int64                      `json:"averageOrderCents"`
	DeliveredCents int64                      `json:"deliveredRevenueCents"`
}

func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	orders, err := s.backend.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := &Analytics{OrdersByStatus: make(map[domain.OrderStatus]int)}
	for _, order := range orders {
		out.TotalOrders++
		out.RevenueCents += order.TotalCents
		out.OrdersByStatus[order.Status]++
		if order.Status == domain.StatusDelivered {
			out.DeliveredCents += order.TotalCents
		}
	}
	if out.TotalOrders > 0 {
		out.AverageCents = out.RevenueCents / int64(out.TotalOrders)
	}
	return out, nil
}

// ValidationError rejects malformed admin input before any backend call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
