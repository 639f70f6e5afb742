package model

// Product is a read-only catalog record. Prices are whole units of a
// zero-decimal display currency.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	UnitPrice     int      `json:"unit_price"`
	OriginalPrice int      `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Sizes         []string `json:"sizes,omitempty"`
	Collection    string   `json:"collection"`
}

// Collection groups catalog products.
type Collection struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ProductResponse decorates a product with the price effective under
// the current offer.
type ProductResponse struct {
	Product
	FinalPrice int `json:"final_price"`
	Savings    int `json:"savings"`
}
