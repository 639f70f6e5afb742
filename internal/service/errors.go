package service

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrCollectionNotFound is returned when a collection slug is unknown
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrOrderNotFound is returned when an order number cannot be found
	ErrOrderNotFound = errors.New("order not found")

	// ErrItemNotFound is returned when a cart operation targets a line that is not in the cart
	ErrItemNotFound = errors.New("item not in cart")

	// ErrEmptyCart is returned when checkout is attempted with an empty cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrWheelLocked is returned when a spin is requested after a
	// non-retry outcome; the wheel stays inert until it is reset
	ErrWheelLocked = errors.New("wheel is locked")

	// ErrInvalidRequest is returned when request data is invalid or incomplete
	ErrInvalidRequest = errors.New("invalid request")
)
