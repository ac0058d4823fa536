package domain

// Product is the canonical catalog item. The backend has shipped several
// incompatible shapes over time (image_url as string or array, admin-side
// "image"); the upstream adapter normalizes all of them into this one.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory,omitempty"`
	PriceCents  int64    `json:"priceCents"`
	Currency    string   `json:"currency"`
	Images      []string `json:"images,omitempty"`
	StockCount  int      `json:"stockCount"`
	InStock     bool     `json:"inStock"`
	StoneType   string   `json:"stoneType,omitempty"`
	Style       string   `json:"style,omitempty"`
	Occasion    string   `json:"occasion,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Bestseller  bool     `json:"bestseller,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
