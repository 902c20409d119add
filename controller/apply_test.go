package controller

import (
	"errors"
	"testing"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/clients"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filledForm = models.FormState{
	CustomerID: "42",
	ShopcartID: "7",
	ItemID:     "3",
	ItemName:   "pen",
	Quantity:   "2",
	Price:      "1.5",
	Color:      "blue",
}

func TestApply_CreateShopcartPopulatesID(t *testing.T) {
	form := models.FormState{CustomerID: "42"}
	result := ActionResult{Shopcart: &models.Shopcart{ID: 7, CustomerID: 42, Items: []models.Item{}}}

	next, view := Apply(ActionCreateShopcart, form, result)

	assert.Equal(t, "7", next.ShopcartID)
	assert.Equal(t, "42", next.CustomerID)
	assert.Equal(t, MsgShopcartCreated, view.Flash)
	assert.False(t, view.Failed)
	assert.Nil(t, view.Results)
}

func TestApply_FailureClearsEverything(t *testing.T) {
	err := &clients.RequestFailedError{StatusCode: 404, Message: "Item not found"}

	for _, action := range Actions {
		if action == ActionClearForm {
			continue
		}
		t.Run(action.String(), func(t *testing.T) {
			next, view := Apply(action, filledForm, ActionResult{Err: err})

			assert.True(t, next.IsZero())
			assert.Nil(t, view.Results)
			assert.True(t, view.Failed)
			assert.Equal(t, "Item not found", view.Flash)
		})
	}
}

func TestApply_DeleteItemFailureShowsServerMessage(t *testing.T) {
	err := &clients.RequestFailedError{StatusCode: 404, Message: "Item with id '3' could not be found."}

	_, view := Apply(ActionDeleteItem, filledForm, ActionResult{Err: err})

	assert.NotEqual(t, MsgItemDeleted, view.Flash)
	assert.Equal(t, "Item with id '3' could not be found.", view.Flash)
}

func TestApply_FailureWithoutServerMessage(t *testing.T) {
	err := &clients.RequestFailedError{Err: errors.New("failed to call shopcart service: connection refused")}

	_, view := Apply(ActionGetShopcart, filledForm, ActionResult{Err: err})

	assert.Equal(t, "failed to call shopcart service: connection refused", view.Flash)
}

func TestApply_GetItemPopulatesForm(t *testing.T) {
	item := models.Item{ID: 3, ShopcartID: 7, Name: "pen", Quantity: 2, Price: 1.5, Color: "blue"}

	next, view := Apply(ActionGetItem, models.FormState{CustomerID: "42", ShopcartID: "7", ItemID: "3"}, ActionResult{Item: &item})

	assert.Equal(t, filledForm, next)
	require.NotNil(t, view.Results)
	assert.Equal(t, models.RegionSearch, view.Results.Region)
	assert.Equal(t, []models.Item{item}, view.Results.Items)
	assert.Equal(t, MsgItemRetrieved, view.Flash)
}

func TestApply_MutationsClearForm(t *testing.T) {
	for _, action := range []Action{ActionAddItem, ActionDeleteItem, ActionDeleteShopcart} {
		t.Run(action.String(), func(t *testing.T) {
			next, view := Apply(action, filledForm, ActionResult{})

			assert.True(t, next.IsZero())
			assert.Nil(t, view.Results)
			assert.False(t, view.Failed)
			assert.NotEmpty(t, view.Flash)
		})
	}
}

func TestApply_UpdateItemRendersReturnedItem(t *testing.T) {
	item := models.Item{ID: 3, ShopcartID: 7, Name: "pen", Quantity: 0, Price: 1.5, Color: "red"}

	next, view := Apply(ActionUpdateItem, filledForm, ActionResult{Item: &item})

	assert.True(t, next.IsZero())
	require.NotNil(t, view.Results)
	assert.Equal(t, models.RegionSearch, view.Results.Region)
	assert.Equal(t, MsgItemUpdated, view.Flash)

	_, view = Apply(ActionUpdateItem, filledForm, ActionResult{})
	assert.Nil(t, view.Results)
}

func TestApply_UpdateItemWithoutBodyRendersSentValues(t *testing.T) {
	form := models.FormState{ShopcartID: "7", ItemID: "3", Quantity: "0", Color: "red"}
	patch := BuildItemPatch(form)

	next, view := Apply(ActionUpdateItem, form, ActionResult{Patch: patch})

	assert.True(t, next.IsZero())
	require.NotNil(t, view.Results)
	assert.Equal(t, models.RegionSearch, view.Results.Region)
	assert.Equal(t, []models.Item{{ID: 3, ShopcartID: 7, Quantity: 0, Color: "red"}}, view.Results.Items)

	_, view = Apply(ActionUpdateItem, form, ActionResult{Patch: models.ItemPatch{"quantity": int64(4), "price": 2.5}})
	assert.Equal(t, int64(4), view.Results.Items[0].Quantity)
	assert.Equal(t, 2.5, view.Results.Items[0].Price)
	assert.Empty(t, view.Results.Items[0].Color)
}

func TestApply_ShopcartResults(t *testing.T) {
	carts := []models.Shopcart{
		{ID: 7, CustomerID: 42, Items: []models.Item{}},
		{ID: 9, CustomerID: 42, Items: []models.Item{}},
	}

	next, view := Apply(ActionListShopcarts, filledForm, ActionResult{Shopcarts: carts})
	assert.True(t, next.IsZero())
	require.NotNil(t, view.Results)
	assert.Equal(t, models.RegionShopcarts, view.Results.Region)
	assert.Len(t, view.Results.Shopcarts, 2)

	next, view = Apply(ActionGetShopcart, filledForm, ActionResult{Shopcart: &carts[1]})
	assert.True(t, next.IsZero())
	assert.Equal(t, []models.Shopcart{carts[1]}, view.Results.Shopcarts)

	_, view = Apply(ActionListShopcarts, filledForm, ActionResult{Shopcarts: []models.Shopcart{}})
	require.NotNil(t, view.Results)
	assert.Empty(t, view.Results.Shopcarts)
}

func TestApply_SearchKeepsFormAndTakesFirstID(t *testing.T) {
	form := models.FormState{CustomerID: "42"}
	carts := []models.Shopcart{{ID: 9, CustomerID: 42}, {ID: 11, CustomerID: 42}}

	next, view := Apply(ActionSearchShopcarts, form, ActionResult{Shopcarts: carts})

	assert.Equal(t, models.FormState{CustomerID: "42", ShopcartID: "9"}, next)
	assert.Equal(t, MsgShopcartsSearched, view.Flash)
	assert.Equal(t, models.RegionShopcarts, view.Results.Region)

	next, view = Apply(ActionSearchShopcarts, form, ActionResult{Shopcarts: []models.Shopcart{}})
	assert.Equal(t, form, next)
	assert.Empty(t, view.Results.Shopcarts)
}

func TestApply_ListItemsAndResetKeepShopcartID(t *testing.T) {
	items := []models.Item{{ID: 3, ShopcartID: 7, Name: "pen"}}

	next, view := Apply(ActionListItems, filledForm, ActionResult{Items: items})
	assert.Equal(t, models.FormState{ShopcartID: "7"}, next)
	assert.Equal(t, models.RegionSearch, view.Results.Region)

	next, view = Apply(ActionResetShopcart, filledForm, ActionResult{Shopcart: &models.Shopcart{ID: 7, CustomerID: 42, Items: []models.Item{}}})
	assert.Equal(t, models.FormState{ShopcartID: "7"}, next)
	assert.Equal(t, models.RegionShopcarts, view.Results.Region)
	assert.Equal(t, MsgShopcartReset, view.Flash)
}

func TestApply_ClearFormIsIdempotent(t *testing.T) {
	once, onceView := Apply(ActionClearForm, filledForm, ActionResult{})
	twice, twiceView := Apply(ActionClearForm, once, ActionResult{})

	assert.True(t, once.IsZero())
	assert.Equal(t, once, twice)
	assert.Equal(t, onceView, twiceView)
	assert.Nil(t, twiceView.Results)
	assert.Empty(t, twiceView.Flash)
}
