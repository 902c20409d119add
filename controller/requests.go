package controller

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"
)

// CreateShopcartBody builds {customer_id, items: []}.
func CreateShopcartBody(form models.FormState) models.CreateShopcartRequest {
	return models.CreateShopcartRequest{
		CustomerID: numberOrRaw(form.CustomerID),
		Items:      []models.Item{},
	}
}

// AddItemBody builds {id, shopcart_id, name, quantity, price, color}.
func AddItemBody(form models.FormState) models.AddItemRequest {
	return models.AddItemRequest{
		ID:         numberOrRaw(form.ItemID),
		ShopcartID: numberOrRaw(form.ShopcartID),
		Name:       form.ItemName,
		Quantity:   numberOrRaw(form.Quantity),
		Price:      numberOrRaw(form.Price),
		Color:      form.Color,
	}
}

// UpdateShopcartBody builds {id, customer_id} for the shopcart in the
// form. Items are not sent, so the server keeps them.
func UpdateShopcartBody(form models.FormState) models.UpdateShopcartRequest {
	return models.UpdateShopcartRequest{
		ID:         numberOrRaw(form.ShopcartID),
		CustomerID: numberOrRaw(form.CustomerID),
	}
}

// CheckoutBody builds {items: [item]} from the item fields of the form.
func CheckoutBody(form models.FormState) models.CheckoutRequest {
	return models.CheckoutRequest{Items: []models.AddItemRequest{AddItemBody(form)}}
}

// BuildItemPatch builds the sparse update body. For each of quantity,
// price and color: the literal "0" is numeric zero, text with a numeric
// prefix is sent as that number, other non-empty text is sent verbatim,
// and an empty field leaves the key out. Quantity takes the leading
// integer ("2.5" sends 2); price and color take the leading decimal
// ("9.99usd" sends 9.99).
func BuildItemPatch(form models.FormState) models.ItemPatch {
	patch := models.ItemPatch{}
	for key, field := range map[string]struct {
		raw   string
		parse func(string) (any, bool)
	}{
		"quantity": {form.Quantity, leadingInt},
		"price":    {form.Price, leadingFloat},
		"color":    {form.Color, leadingFloat},
	} {
		if v, ok := patchValue(field.raw, field.parse); ok {
			patch[key] = v
		}
	}
	return patch
}

func patchValue(raw string, parse func(string) (any, bool)) (any, bool) {
	if raw == "0" {
		return 0, true
	}
	if n, ok := parse(raw); ok {
		return n, true
	}
	if raw != "" {
		return raw, true
	}
	return nil, false
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

// leadingInt reads the integer at the start of raw, after leading space.
func leadingInt(raw string) (any, bool) {
	m := intPrefix.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if m == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(m, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

// leadingFloat reads the decimal number at the start of raw, after
// leading space.
func leadingFloat(raw string) (any, bool) {
	m := floatPrefix.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if m == "" {
		return nil, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

// BuildSearchQuery appends "{idKey}=" when the shopcart field is set and
// "customer_id=" when the customer field is set, joined by a single "&".
func BuildSearchQuery(form models.FormState, idKey string) string {
	var b strings.Builder
	if form.ShopcartID != "" {
		b.WriteString(idKey + "=" + url.QueryEscape(form.ShopcartID))
	}
	if form.CustomerID != "" {
		if b.Len() > 0 {
			b.WriteString("&")
		}
		b.WriteString("customer_id=" + url.QueryEscape(form.CustomerID))
	}
	return b.String()
}

// numberOrRaw is the body coercion for create and add: numbers go out as
// JSON numbers, an empty field as null, anything else unchanged so the
// server can reject it.
func numberOrRaw(raw string) any {
	if n, ok := parseNumber(raw); ok {
		return n
	}
	if raw == "" {
		return nil
	}
	return raw
}

func parseNumber(raw string) (any, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}
