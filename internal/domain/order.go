package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the closed set of states the backend reports.
type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "Order Placed"
	StatusProcessing  OrderStatus = "Processing"
	StatusShipped     OrderStatus = "Shipped"
	StatusDelivered   OrderStatus = "Delivered"
)

// ParseOrderStatus rejects anything outside the closed enumeration.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusOrderPlaced, StatusProcessing, StatusShipped, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// Order mirrors the backend's order record. The backend owns it; this side
// only caches the last confirmed value.
type Order struct {
	ID         string      `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Status     OrderStatus `json:"status"`
	Date       time.Time   `json:"date"`
}
