package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/clients"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"
)

// ActionResult is the outcome of one request: Err is set on failure,
// otherwise whichever payload the action returns. Patch is the body sent
// by update-item.
type ActionResult struct {
	Err       error
	Shopcart  *models.Shopcart
	Shopcarts []models.Shopcart
	Item      *models.Item
	Items     []models.Item
	Patch     models.ItemPatch
}

const (
	MsgShopcartCreated   = "Successfully added an empty shopcart"
	MsgItemAdded         = "Successfully added an Item"
	MsgItemRetrieved     = "Successfully retrieved the item"
	MsgItemUpdated       = "Successfully updated the item"
	MsgShopcartRetrieved = "Successfully retrieved the shopcart"
	MsgShopcartsListed   = "Successfully listed all the shopcarts"
	MsgItemDeleted       = "Successfully deleted an item"
	MsgShopcartDeleted   = "Successfully cleared the shopcart"
	MsgShopcartsSearched = "Successfully searched the shopcarts"
	MsgItemsListed       = "Successfully listed the items"
	MsgShopcartReset     = "Successfully reset the shopcart"
	MsgShopcartUpdated   = "Successfully updated the shopcart"
	MsgItemCheckedOut    = "Successfully checked out the item"
)

// Apply maps the form at dispatch time and the request outcome to the next
// form and view. It performs no I/O.
func Apply(action Action, form models.FormState, result ActionResult) (models.FormState, models.RenderedView) {
	if action == ActionClearForm {
		return models.FormState{}, models.RenderedView{}
	}
	if result.Err != nil {
		return models.FormState{}, models.RenderedView{
			Flash:  clients.FailureMessage(result.Err),
			Failed: true,
		}
	}

	switch action {
	case ActionCreateShopcart:
		next := form
		if result.Shopcart != nil {
			next.ShopcartID = strconv.FormatInt(result.Shopcart.ID, 10)
		}
		return next, models.RenderedView{Flash: MsgShopcartCreated}

	case ActionAddItem:
		return models.FormState{}, models.RenderedView{Flash: MsgItemAdded}

	case ActionGetItem:
		if result.Item == nil {
			return form, models.RenderedView{Flash: MsgItemRetrieved}
		}
		return models.FormFromItem(form.CustomerID, *result.Item), models.RenderedView{
			Flash:   MsgItemRetrieved,
			Results: models.ItemResults(*result.Item),
		}

	case ActionUpdateItem:
		view := models.RenderedView{Flash: MsgItemUpdated}
		switch {
		case result.Item != nil:
			view.Results = models.ItemResults(*result.Item)
		case result.Patch != nil:
			view.Results = models.ItemResults(itemFromPatch(form, result.Patch))
		}
		return models.FormState{}, view

	case ActionGetShopcart:
		view := models.RenderedView{Flash: MsgShopcartRetrieved}
		if result.Shopcart != nil {
			view.Results = models.ShopcartResults(*result.Shopcart)
		}
		return models.FormState{}, view

	case ActionListShopcarts:
		return models.FormState{}, models.RenderedView{
			Flash:   MsgShopcartsListed,
			Results: models.ShopcartResults(result.Shopcarts...),
		}

	case ActionDeleteItem:
		return models.FormState{}, models.RenderedView{Flash: MsgItemDeleted}

	case ActionDeleteShopcart:
		return models.FormState{}, models.RenderedView{Flash: MsgShopcartDeleted}

	case ActionSearchShopcarts:
		next := form
		if len(result.Shopcarts) > 0 {
			next.ShopcartID = strconv.FormatInt(result.Shopcarts[0].ID, 10)
		}
		return next, models.RenderedView{
			Flash:   MsgShopcartsSearched,
			Results: models.ShopcartResults(result.Shopcarts...),
		}

	case ActionListItems:
		return models.FormState{ShopcartID: form.ShopcartID}, models.RenderedView{
			Flash:   MsgItemsListed,
			Results: models.ItemResults(result.Items...),
		}

	case ActionResetShopcart:
		view := models.RenderedView{Flash: MsgShopcartReset}
		if result.Shopcart != nil {
			view.Results = models.ShopcartResults(*result.Shopcart)
		}
		return models.FormState{ShopcartID: form.ShopcartID}, view

	case ActionUpdateShopcart:
		next := models.FormState{ShopcartID: form.ShopcartID, CustomerID: form.CustomerID}
		view := models.RenderedView{Flash: MsgShopcartUpdated}
		if result.Shopcart != nil {
			next.ShopcartID = strconv.FormatInt(result.Shopcart.ID, 10)
			next.CustomerID = strconv.FormatInt(result.Shopcart.CustomerID, 10)
			view.Results = models.ShopcartResults(*result.Shopcart)
		}
		return next, view

	case ActionCheckoutItem:
		return models.FormState{ShopcartID: form.ShopcartID}, models.RenderedView{
			Flash:   MsgItemCheckedOut,
			Results: models.ItemResults(result.Items...),
		}
	}

	return form, models.RenderedView{}
}

// itemFromPatch rebuilds the updated row from the ids in the form and the
// values that were sent, for servers that answer an update without a body.
func itemFromPatch(form models.FormState, patch models.ItemPatch) models.Item {
	item := models.Item{Name: form.ItemName}
	item.ID, _ = strconv.ParseInt(strings.TrimSpace(form.ItemID), 10, 64)
	item.ShopcartID, _ = strconv.ParseInt(strings.TrimSpace(form.ShopcartID), 10, 64)
	switch q := patch["quantity"].(type) {
	case int:
		item.Quantity = int64(q)
	case int64:
		item.Quantity = q
	case float64:
		item.Quantity = int64(q)
	}
	switch p := patch["price"].(type) {
	case int:
		item.Price = float64(p)
	case int64:
		item.Price = float64(p)
	case float64:
		item.Price = p
	}
	if c, ok := patch["color"]; ok {
		item.Color = fmt.Sprint(c)
	}
	return item
}
