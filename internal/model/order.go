package model

import "time"

// Order is a placed (simulated) order. No payment is charged; the
// record exists so the confirmation page can look the order up again.
type Order struct {
	Number          string     `json:"number"`
	Items           []CartItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	DiscountPercent int        `json:"discount_percent"`
	DiscountAmount  float64    `json:"discount_amount"`
	Shipping        float64    `json:"shipping"`
	Total           float64    `json:"total"`
	CustomerName    string     `json:"customer_name"`
	Email           string     `json:"email"`
	City            string     `json:"city"`
	Address         string     `json:"address"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CheckoutRequest is the DTO for POST /api/checkout. Card fields are
// accepted for form parity but never stored or charged.
type CheckoutRequest struct {
	FirstName  string `json:"first_name" validate:"required,notblank,max=64"`
	LastName   string `json:"last_name" validate:"required,notblank,max=64"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"required,notblank,max=32"`
	Address    string `json:"address" validate:"required,notblank,max=255"`
	City       string `json:"city" validate:"required,notblank,max=64"`
	Country    string `json:"country" validate:"required,notblank,max=64"`
	PostalCode string `json:"postal_code" validate:"max=16"`
}
