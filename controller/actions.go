package controller

import "fmt"

// Action names one console button. Each dispatched action issues exactly
// one request, except ActionClearForm which issues none.
type Action string

const (
	ActionCreateShopcart  Action = "create-shopcart"
	ActionAddItem         Action = "add-item"
	ActionGetItem         Action = "get-item"
	ActionUpdateItem      Action = "update-item"
	ActionGetShopcart     Action = "get-shopcart"
	ActionListShopcarts   Action = "list-shopcarts"
	ActionDeleteItem      Action = "delete-item"
	ActionDeleteShopcart  Action = "delete-shopcart"
	ActionSearchShopcarts Action = "search-shopcarts"
	ActionClearForm       Action = "clear-form"
	ActionListItems       Action = "list-items"
	ActionResetShopcart   Action = "reset-shopcart"
	ActionUpdateShopcart  Action = "update-shopcart"
	ActionCheckoutItem    Action = "checkout-item"
)

// Actions lists every action in the order the console shows its buttons.
var Actions = []Action{
	ActionCreateShopcart,
	ActionAddItem,
	ActionGetItem,
	ActionUpdateItem,
	ActionDeleteItem,
	ActionListItems,
	ActionCheckoutItem,
	ActionGetShopcart,
	ActionUpdateShopcart,
	ActionListShopcarts,
	ActionSearchShopcarts,
	ActionResetShopcart,
	ActionDeleteShopcart,
	ActionClearForm,
}

var actionLabels = map[Action]string{
	ActionCreateShopcart:  "Create Shopcart",
	ActionAddItem:         "Add Item",
	ActionGetItem:         "Retrieve Item",
	ActionUpdateItem:      "Update Item",
	ActionDeleteItem:      "Delete Item",
	ActionListItems:       "List Items",
	ActionCheckoutItem:    "Checkout Item",
	ActionGetShopcart:     "Retrieve Shopcart",
	ActionUpdateShopcart:  "Update Shopcart",
	ActionListShopcarts:   "List All Shopcarts",
	ActionSearchShopcarts: "Search",
	ActionResetShopcart:   "Reset Shopcart",
	ActionDeleteShopcart:  "Delete Shopcart",
	ActionClearForm:       "Clear",
}

// ParseAction resolves an action name as used in routes and CLI args.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actionLabels[a]; !ok {
		return "", fmt.Errorf("unknown action %q", s)
	}
	return a, nil
}

// Label is the button text for the action.
func (a Action) Label() string {
	return actionLabels[a]
}

func (a Action) String() string {
	return string(a)
}
