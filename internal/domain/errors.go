package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart indicates an operation that needs cart items found none.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoResolvableItems indicates no cart item could be matched to a
	// backend product, so checkout cannot proceed.
	ErrNoResolvableItems = errors.New("no cart items could be resolved to catalog products")
)
