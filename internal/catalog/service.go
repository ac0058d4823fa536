package catalog

import (
	"context"
	"strings"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
)

type productLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Service fetches the full catalog per request and filters it in process.
// There is no shared cache and no pagination; the catalog is assumed small.
type Service struct {
	client productLister
}

func New(client productLister) *Service {
	return &Service{client: client}
}

// Filters are applied over the full fetched set. Search is a
// case-insensitive substring match on the name, Category an exact
// case-sensitive match, PriceRange one of the fixed dollar bands.
type Filters struct {
	Search     string
	Category   string
	PriceRange string
}

// Price bands accepted in Filters.PriceRange.
const (
	PriceAll      = "all"
	PriceUnder100 = "under100"
	Price100To500 = "100-500"
	Price500To1K  = "500-1000"
	Price1KTo2K   = "1000-2000"
	PriceOver2K   = "over2000"
)

func (s *Service) List(ctx context.Context, f Filters) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(products, f), nil
}

// Get returns a single product by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Categories is the fixed storefront category list.
func (s *Service) Categories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Luxury Healing", Description: "Premium healing crystals and gemstones"},
		{ID: "2", Name: "Fashion", Description: "Affordable AAA quality fashion bracelets"},
	}
}

// Apply filters a product list without touching the backend.
func Apply(products []domain.Product, f Filters) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p domain.Product, f Filters) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return inPriceBand(p.PriceCents, f.PriceRange)
}

func inPriceBand(cents int64, band string) bool {
	switch band {
	case "", PriceAll:
		return true
	case PriceUnder100:
		return cents < 100_00
	case Price100To500:
		return cents >= 100_00 && cents < 500_00
	case Price500To1K:
		return cents >= 500_00 && cents < 1000_00
	case Price1KTo2K:
		return cents >= 1000_00 && cents < 2000_00
	case PriceOver2K:
		return cents >= 2000_00
	default:
		return true
	}
}
