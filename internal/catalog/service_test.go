package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
)

type stubLister struct {
	products []domain.Product
	err      error
}

func (s *stubLister) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Celestial Amethyst Healing Bracelet", Category: "Luxury Healing", PriceCents: 2870_00},
		{ID: "2", Name: "Rose Quartz Divine Love Bracelet", Category: "Luxury Healing", PriceCents: 2450_00},
		{ID: "3", Name: "Sunset Citrine Charm", Category: "Fashion", PriceCents: 89_00},
		{ID: "4", Name: "Ocean Pearl Strand", Category: "Fashion", PriceCents: 450_00},
		{ID: "5", Name: "Jade Prosperity & Harmony Bracelet", Category: "Luxury Healing", PriceCents: 1895_00},
	}
}

func TestListPassesThroughFetchError(t *testing.T) {
	svc := New(&stubLister{err: errors.New("boom")})
	if _, err := svc.List(context.Background(), Filters{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := Apply(fixtureProducts(), Filters{Category: "Fashion"})
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "Fashion" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
	// Category matching is case sensitive.
	if got := Apply(fixtureProducts(), Filters{Category: "fashion"}); len(got) != 0 {
		t.Fatalf("expected no products for lowercase category, got %d", len(got))
	}
}

func TestFilterSearchSubstring(t *testing.T) {
	got := Apply(fixtureProducts(), Filters{Search: "bracelet"})
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	got = Apply(fixtureProducts(), Filters{Search: "QUARTZ"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected rose quartz only, got %+v", got)
	}
}

func TestFilterPriceBands(t *testing.T) {
	products := fixtureProducts()
	cases := []struct {
		band string
		ids  []string
	}{
		{PriceUnder100, []string{"3"}},
		{Price100To500, []string{"4"}},
		{Price500To1K, nil},
		{Price1KTo2K, []string{"5"}},
		{PriceOver2K, []string{"1", "2"}},
		{PriceAll, []string{"1", "2", "3", "4", "5"}},
	}
	for _, tc := range cases {
		got := Apply(products, Filters{PriceRange: tc.band})
		if len(got) != len(tc.ids) {
			t.Fatalf("band %s: expected %d products, got %d", tc.band, len(tc.ids), len(got))
		}
		for i, p := range got {
			if p.ID != tc.ids[i] {
				t.Fatalf("band %s: expected id %s at %d, got %s", tc.band, tc.ids[i], i, p.ID)
			}
		}
	}
}

func TestFiltersCombine(t *testing.T) {
	got := Apply(fixtureProducts(), Filters{Search: "bracelet", Category: "Luxury Healing", PriceRange: PriceOver2K})
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
}

func TestGet(t *testing.T) {
	svc := New(&stubLister{products: fixtureProducts()})
	p, err := svc.Get(context.Background(), "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Sunset Citrine Charm" {
		t.Fatalf("unexpected product %+v", p)
	}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
