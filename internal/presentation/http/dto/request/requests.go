package request

// LoginRequest is the PIN gate input.
type LoginRequest struct {
	PIN       string `json:"pin" binding:"required"`
	StoreName string `json:"store_name"`
}

// CreateProductRequest carries a new product. Amounts are decimal currency
// values; missing numeric fields coerce to zero rather than being rejected.
type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	Barcode   string  `json:"barcode" binding:"required"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	CostPrice float64 `json:"cost_price"`
	Stock     int     `json:"stock"`
}

// UpdateProductRequest carries a partial product update; nil fields are left
// untouched.
type UpdateProductRequest struct {
	Name      *string  `json:"name"`
	Barcode   *string  `json:"barcode"`
	Category  *string  `json:"category"`
	Price     *float64 `json:"price"`
	CostPrice *float64 `json:"cost_price"`
	Stock     *int     `json:"stock"`
}

// AddCartItemRequest adds one unit of a product to the cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ChangeQuantityRequest adjusts a cart line by a signed delta.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CheckoutRequest commits the cart. Discount is a decimal currency amount,
// not a percentage.
type CheckoutRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required"`
	Discount      float64 `json:"discount"`
}

// CustomerRequest carries customer fields for create and update.
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

// SaveSettingsRequest replaces the whole settings blob.
type SaveSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
