package upstream

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Ravi-kumar178/ccjewllery/internal/domain"
)

// wireProduct covers every product shape the backend has served: _id vs id,
// image_url as string or array, admin-side image array, price as float or
// string.
type wireProduct struct {
	MongoID     string     `json:"_id"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	SubCategory string     `json:"subCategory"`
	Price       dollars    `json:"price"`
	Currency    string     `json:"currency"`
	ImageURL    stringList `json:"image_url"`
	Image       stringList `json:"image"`
	StockCount  int        `json:"stock_count"`
	InStock     *bool      `json:"in_stock"`
	StoneType   string     `json:"stone_type"`
	Style       string     `json:"style"`
	Occasion    string     `json:"occasion"`
	Sizes       stringList `json:"sizes"`
	Bestseller  bool       `json:"bestseller"`
}

func (w wireProduct) toDomain() domain.Product {
	id := w.MongoID
	if id == "" {
		id = w.ID
	}
	images := []string(w.ImageURL)
	if len(images) == 0 {
		images = []string(w.Image)
	}
	currency := w.Currency
	if currency == "" {
		currency = "USD"
	}
	inStock := w.StockCount > 0
	if w.InStock != nil {
		inStock = *w.InStock
	}
	return domain.Product{
		ID:          id,
		Name:        w.Name,
		Description: w.Description,
		Category:    w.Category,
		SubCategory: w.SubCategory,
		PriceCents:  w.Price.Cents(),
		Currency:    currency,
		Images:      images,
		StockCount:  w.StockCount,
		InStock:     inStock,
		StoneType:   w.StoneType,
		Style:       w.Style,
		Occasion:    w.Occasion,
		Sizes:       []string(w.Sizes),
		Bestseller:  w.Bestseller,
	}
}

// ListProducts fetches the full catalog. The list endpoint has answered
// with both "product" and "products" keys across backend revisions.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp struct {
		envelope
		Product  []wireProduct `json:"product"`
		Products []wireProduct `json:"products"`
	}
	if err := c.get(ctx, "/product/list", &resp); err != nil {
		return nil, err
	}
	wire := resp.Product
	if len(wire) == 0 {
		wire = resp.Products
	}
	out := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// AddProductInput is the multipart payload for /product/add.
type AddProductInput struct {
	Name        string
	Category    string
	SubCategory string
	Description string
	PriceCents  int64
	Sizes       []string
	Bestseller  bool
	Images      []MultipartFile // at most 4, fields image1..image4
}

func (c *Client) AddProduct(ctx context.Context, in AddProductInput) error {
	fields := map[string]string{
		"name":        in.Name,
		"category":    in.Category,
		"description": in.Description,
		"price":       formatDollars(in.PriceCents),
		"bestseller":  boolString(in.Bestseller),
	}
	if in.SubCategory != "" {
		fields["subCategory"] = in.SubCategory
	}
	if len(in.Sizes) > 0 {
		fields["sizes"] = strings.Join(in.Sizes, ",")
	}
	files := in.Images
	if len(files) > 4 {
		files = files[:4]
	}
	return c.postMultipart(ctx, "/product/add", fields, files, nil)
}

func (c *Client) RemoveProduct(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/product/remove", map[string]string{"id": id}, nil)
}

// formatDollars renders cents as the decimal dollar string the backend's
// form parser expects.
func formatDollars(cents int64) string {
	whole := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	return fmt.Sprintf("%d.%02d", whole, frac)
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
