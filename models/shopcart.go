package models

// Shopcart is the cart resource as served by the shopcart API.
type Shopcart struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Items      []Item `json:"items"`
}

// Item is a line entry scoped to exactly one shopcart. Color is optional
// and decodes to "" when the server sends null.
type Item struct {
	ID         int64   `json:"id"`
	ShopcartID int64   `json:"shopcart_id"`
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	Color      string  `json:"color"`
}

type CreateShopcartRequest struct {
	CustomerID any    `json:"customer_id"`
	Items      []Item `json:"items"`
}

type AddItemRequest struct {
	ID         any    `json:"id"`
	ShopcartID any    `json:"shopcart_id"`
	Name       string `json:"name"`
	Quantity   any    `json:"quantity"`
	Price      any    `json:"price"`
	Color      string `json:"color"`
}

// UpdateShopcartRequest replaces the cart's customer. Items are left
// untouched when omitted.
type UpdateShopcartRequest struct {
	ID         any    `json:"id"`
	CustomerID any    `json:"customer_id"`
	Items      []Item `json:"items,omitempty"`
}

// CheckoutRequest names the items to take out of a cart.
type CheckoutRequest struct {
	Items []AddItemRequest `json:"items"`
}

// ItemPatch is the sparse body of an item update. Absent keys are left
// untouched by the server.
type ItemPatch map[string]any

type ShopcartList struct {
	Shopcarts []Shopcart `json:"shopcarts"`
}

type ItemList struct {
	Items []Item `json:"items"`
}

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
