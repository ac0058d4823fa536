package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(srv.URL, 5*time.Second, log)
}

func TestListProductsNormalizesShapes(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/product/list" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"product":[
			{"_id":"64f1a2b3c4d5e6f708192a3b","name":"Jade Bracelet","price":2650,"category":"Luxury Healing","image_url":"https://img/jade.jpeg","stock_count":10,"in_stock":true},
			{"id":"2","name":"Tennis Bracelet","price":"89.50","category":"Fashion","image":["https://img/a.jpeg","https://img/b.jpeg"],"stock_count":0}
		]}`))
	})

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	jade := products[0]
	if jade.ID != "64f1a2b3c4d5e6f708192a3b" {
		t.Fatalf("expected mongo id preferred, got %q", jade.ID)
	}
	if jade.PriceCents != 265000 {
		t.Fatalf("expected 265000 cents, got %d", jade.PriceCents)
	}
	if len(jade.Images) != 1 || jade.Images[0] != "https://img/jade.jpeg" {
		t.Fatalf("expected single image from string field, got %v", jade.Images)
	}
	if !jade.InStock {
		t.Fatalf("expected in stock")
	}
	if jade.Currency != "USD" {
		t.Fatalf("expected default currency, got %q", jade.Currency)
	}

	tennis := products[1]
	if tennis.ID != "2" {
		t.Fatalf("expected plain id fallback, got %q", tennis.ID)
	}
	if tennis.PriceCents != 8950 {
		t.Fatalf("expected string price parsed to 8950, got %d", tennis.PriceCents)
	}
	if len(tennis.Images) != 2 {
		t.Fatalf("expected admin image array, got %v", tennis.Images)
	}
	if tennis.InStock {
		t.Fatalf("expected out of stock from zero count")
	}
}

func TestListProductsAcceptsPluralKey(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":true,"products":[{"_id":"1","name":"Cuff","price":93}]}`))
	})
	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Cuff" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestEnvelopeFailureBecomesBackendError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"success":false,"message":"product not found"}`))
	})
	err := client.RemoveProduct(context.Background(), "missing")
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if backendErr.Message != "product not found" {
		t.Fatalf("unexpected message %q", backendErr.Message)
	}
}

func TestNon2xxBecomesBackendError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	_, err := client.CreateCart(context.Background())
	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if backendErr.Status != http.StatusInternalServerError || backendErr.Message != "boom" {
		t.Fatalf("unexpected error: %+v", backendErr)
	}
}

func TestAddProductSendsMultipartForm(t *testing.T) {
	var gotPrice, gotName string
	var gotImage []byte
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPrice = r.FormValue("price")
		gotName = r.FormValue("name")
		if file, _, err := r.FormFile("image1"); err == nil {
			gotImage, _ = io.ReadAll(file)
			file.Close()
		}
		w.Write([]byte(`{"success":true}`))
	})

	err := client.AddProduct(context.Background(), AddProductInput{
		Name:        "Pearl Strand Bracelet",
		Category:    "Fashion",
		Description: "Freshwater pearls",
		PriceCents:  9550,
		Images:      []MultipartFile{{Field: "image1", Filename: "pearl.jpeg", Content: []byte("jpeg")}},
	})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}
	if gotName != "Pearl Strand Bracelet" {
		t.Fatalf("unexpected name %q", gotName)
	}
	if gotPrice != "95.50" {
		t.Fatalf("expected decimal dollars, got %q", gotPrice)
	}
	if string(gotImage) != "jpeg" {
		t.Fatalf("image upload missing")
	}
}

func TestListOrdersMapsWireShapes(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/order/list" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"orders":[
			{"_id":"o1","firstName":"Sarah","total":216,"status":"Delivered","date":1724976000000},
			{"_id":"o2","firstName":"Priya","total":"89.50","status":"Awaiting Pickup","date":"2026-08-30"}
		]}`))
	})

	orders, err := client.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].TotalCents != 21600 || string(orders[0].Status) != "Delivered" {
		t.Fatalf("unexpected first order: %+v", orders[0])
	}
	// Out-of-enum status maps to the initial state.
	if string(orders[1].Status) != "Order Placed" {
		t.Fatalf("expected fallback status, got %q", orders[1].Status)
	}
	if orders[1].TotalCents != 8950 {
		t.Fatalf("expected string total parsed, got %d", orders[1].TotalCents)
	}
	if orders[1].Date.Year() != 2026 {
		t.Fatalf("expected date-only parse, got %v", orders[1].Date)
	}
}

func TestFormatDollars(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{cents: 9500, want: "95"},
		{cents: 9550, want: "95.50"},
		{cents: 9505, want: "95.05"},
		{cents: 49, want: "0.49"},
	}
	for _, tc := range cases {
		if got := formatDollars(tc.cents); got != tc.want {
			t.Errorf("formatDollars(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
