package model

// Customization is the personalisation printed on a jersey. The known
// call sites only ever populate this fixed field set, so it is an
// explicit record rather than an open key-value bag.
type Customization struct {
	Name        string `json:"name,omitempty" validate:"max=12"`
	Number      string `json:"number,omitempty" validate:"omitempty,numeric,max=2"`
	Font        string `json:"font,omitempty" validate:"max=32"`
	NameColor   string `json:"name_color,omitempty" validate:"omitempty,hexcolor"`
	NumberColor string `json:"number_color,omitempty" validate:"omitempty,hexcolor"`
	Size        string `json:"size,omitempty" validate:"max=8"`
}

// IsZero reports whether no customization was requested.
func (c Customization) IsZero() bool {
	return c == Customization{}
}

// CartItem is one line of the cart. Two lines are the same position
// only when both the product and the customization match.
type CartItem struct {
	ProductID     string        `json:"product_id"`
	Name          string        `json:"name"`
	UnitPrice     int           `json:"unit_price"`
	Quantity      int           `json:"quantity"`
	Customization Customization `json:"customization"`
}

// AddCartItemRequest is the DTO for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID     string        `json:"product_id" validate:"required,notblank,max=64"`
	Customization Customization `json:"customization"`
}

// UpdateCartItemRequest is the DTO for changing a line's quantity.
// Quantity zero removes the line.
type UpdateCartItemRequest struct {
	ProductID     string        `json:"product_id" validate:"required,notblank,max=64"`
	Quantity      *int          `json:"quantity" validate:"required,gte=0,lte=99"`
	Customization Customization `json:"customization"`
}

// CartResponse is the API response DTO for GET /api/cart.
type CartResponse struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal int        `json:"subtotal"`
}
