package controller

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchJSON(t *testing.T, form models.FormState) string {
	t.Helper()
	b, err := json.Marshal(BuildItemPatch(form))
	require.NoError(t, err)
	return string(b)
}

func TestBuildItemPatch(t *testing.T) {
	tests := []struct {
		name string
		form models.FormState
		want string
	}{
		{"zero_quantity_and_color", models.FormState{Quantity: "0", Color: "red"}, `{"quantity":0,"color":"red"}`},
		{"all_empty", models.FormState{}, `{}`},
		{"numbers", models.FormState{Quantity: "3", Price: "12.5"}, `{"quantity":3,"price":12.5}`},
		{"zero_price", models.FormState{Price: "0"}, `{"price":0}`},
		{"opaque_strings", models.FormState{Quantity: "lots", Price: "cheap"}, `{"quantity":"lots","price":"cheap"}`},
		{"numeric_color", models.FormState{Color: "5"}, `{"color":5}`},
		{"padded_number", models.FormState{Quantity: " 7 "}, `{"quantity":7}`},
		{"not_a_number_text", models.FormState{Price: "NaN"}, `{"price":"NaN"}`},
		{"fractional_quantity_truncates", models.FormState{Quantity: "2.5"}, `{"quantity":2}`},
		{"quantity_numeric_prefix", models.FormState{Quantity: "5abc"}, `{"quantity":5}`},
		{"quantity_ignores_exponent", models.FormState{Quantity: "1e3"}, `{"quantity":1}`},
		{"price_numeric_prefix", models.FormState{Price: "9.99usd"}, `{"price":9.99}`},
		{"price_exponent", models.FormState{Price: "1e3"}, `{"price":1000}`},
		{"price_leading_dot", models.FormState{Price: ".5"}, `{"price":0.5}`},
		{"negative_quantity", models.FormState{Quantity: "-3 units"}, `{"quantity":-3}`},
		{"color_numeric_prefix", models.FormState{Color: "2red"}, `{"color":2}`},
		{"sign_only_stays_text", models.FormState{Quantity: "-"}, `{"quantity":"-"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, patchJSON(t, tt.form))
		})
	}
}

func TestBuildItemPatch_ValueTypes(t *testing.T) {
	patch := BuildItemPatch(models.FormState{Quantity: "2.5", Price: "3", Color: "blue"})

	assert.Equal(t, int64(2), patch["quantity"])
	assert.Equal(t, 3.0, patch["price"])
	assert.Equal(t, "blue", patch["color"])
}

func TestBuildItemPatch_KeyPresence(t *testing.T) {
	inputs := []string{"", "0", "1", "-2", "3.25", "abc", " ", "0.0"}
	for _, q := range inputs {
		for _, p := range inputs {
			for _, c := range inputs {
				patch := BuildItemPatch(models.FormState{Quantity: q, Price: p, Color: c})

				_, hasQ := patch["quantity"]
				_, hasP := patch["price"]
				_, hasC := patch["color"]
				assert.Equal(t, q != "", hasQ, "quantity=%q", q)
				assert.Equal(t, p != "", hasP, "price=%q", p)
				assert.Equal(t, c != "", hasC, "color=%q", c)
			}
		}
	}
}

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		form  models.FormState
		idKey string
		want  string
	}{
		{"both", models.FormState{ShopcartID: "7", CustomerID: "42"}, "shopcart_id", "shopcart_id=7&customer_id=42"},
		{"both_root_key", models.FormState{ShopcartID: "7", CustomerID: "42"}, "id", "id=7&customer_id=42"},
		{"only_cart", models.FormState{ShopcartID: "7"}, "id", "id=7"},
		{"only_customer", models.FormState{CustomerID: "42"}, "shopcart_id", "customer_id=42"},
		{"neither", models.FormState{ItemID: "3"}, "shopcart_id", ""},
		{"escaped", models.FormState{CustomerID: "a&b"}, "id", "customer_id=a%26b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearchQuery(tt.form, tt.idKey)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSearchQuery_Properties(t *testing.T) {
	values := []string{"", "1", "42", "x"}
	for _, cart := range values {
		for _, customer := range values {
			q := BuildSearchQuery(models.FormState{ShopcartID: cart, CustomerID: customer}, "shopcart_id")

			assert.Equal(t, customer != "", strings.Contains(q, "customer_id="))
			assert.Equal(t, cart != "", strings.HasPrefix(q, "shopcart_id="))
			if cart != "" && customer != "" {
				assert.Equal(t, 1, strings.Count(q, "&"))
			} else {
				assert.Equal(t, 0, strings.Count(q, "&"))
			}
		}
	}
}

func TestCreateShopcartBody(t *testing.T) {
	b, err := json.Marshal(CreateShopcartBody(models.FormState{CustomerID: "42"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer_id":42,"items":[]}`, string(b))

	b, err = json.Marshal(CreateShopcartBody(models.FormState{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer_id":null,"items":[]}`, string(b))

	b, err = json.Marshal(CreateShopcartBody(models.FormState{CustomerID: "bob"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer_id":"bob","items":[]}`, string(b))
}

func TestAddItemBody(t *testing.T) {
	form := models.FormState{
		ShopcartID: "7",
		ItemID:     "3",
		ItemName:   "pen",
		Quantity:   "2",
		Price:      "1.5",
		Color:      "",
	}

	b, err := json.Marshal(AddItemBody(form))

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"shopcart_id":7,"name":"pen","quantity":2,"price":1.5,"color":""}`, string(b))
}
