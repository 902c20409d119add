package models

import "strconv"

// FormState holds the console fields exactly as typed. Nothing is
// validated before dispatch; the server rejects what it cannot parse.
type FormState struct {
	CustomerID string `form:"customer_id" json:"customer_id"`
	ShopcartID string `form:"shopcart_id" json:"shopcart_id"`
	ItemID     string `form:"item_id" json:"item_id"`
	ItemName   string `form:"item_name" json:"item_name"`
	Quantity   string `form:"quantity" json:"quantity"`
	Price      string `form:"price" json:"price"`
	Color      string `form:"color" json:"color"`
}

// FormFromItem fills every item field of the form from a retrieved item.
// The customer id is not part of an item and is carried over.
func FormFromItem(customerID string, item Item) FormState {
	return FormState{
		CustomerID: customerID,
		ShopcartID: strconv.FormatInt(item.ShopcartID, 10),
		ItemID:     strconv.FormatInt(item.ID, 10),
		ItemName:   item.Name,
		Quantity:   strconv.FormatInt(item.Quantity, 10),
		Price:      strconv.FormatFloat(item.Price, 'f', -1, 64),
		Color:      item.Color,
	}
}

func (f FormState) IsZero() bool {
	return f == FormState{}
}
