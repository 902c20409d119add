package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/controller"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/views"

	"github.com/spf13/cobra"
)

// errActionFailed marks a dispatched action whose flash reported failure.
var errActionFailed = errors.New("action failed")

func newDoCmd(app *App) *cobra.Command {
	var (
		form   models.FormState
		asJSON bool
	)

	names := make([]string, 0, len(controller.Actions))
	for _, a := range controller.Actions {
		names = append(names, a.String())
	}

	cmd := &cobra.Command{
		Use:       "do <action>",
		Short:     "Run one console action and print the result",
		Long:      "Runs one console action against the shopcart API.\n\nActions: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := controller.ParseAction(args[0])
			if err != nil {
				return err
			}
			client, variant, err := app.newClient()
			if err != nil {
				return err
			}

			ctrl := controller.NewController(client, variant, nil, app.logger)
			next, view := ctrl.Dispatch(cmd.Context(), action, form)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(map[string]any{"form": next, "view": view}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, views.RenderText(view))
				if !next.IsZero() {
					fmt.Fprintln(out, formLine(next))
				}
			}

			if view.Failed {
				return fmt.Errorf("%s: %w", action, errActionFailed)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.CustomerID, "customer-id", "", "Customer ID")
	f.StringVar(&form.ShopcartID, "shopcart-id", "", "Shopcart ID")
	f.StringVar(&form.ItemID, "item-id", "", "Item ID")
	f.StringVar(&form.ItemName, "item-name", "", "Item name")
	f.StringVar(&form.Quantity, "quantity", "", "Item quantity")
	f.StringVar(&form.Price, "price", "", "Item price")
	f.StringVar(&form.Color, "color", "", "Item color")
	f.BoolVar(&asJSON, "json", false, "Print the resulting form and view as JSON")

	return cmd
}

// formLine renders the non-empty form fields as key=value pairs.
func formLine(form models.FormState) string {
	pairs := []struct{ k, v string }{
		{"customer_id", form.CustomerID},
		{"shopcart_id", form.ShopcartID},
		{"item_id", form.ItemID},
		{"item_name", form.ItemName},
		{"quantity", form.Quantity},
		{"price", form.Price},
		{"color", form.Color},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.v != "" {
			parts = append(parts, p.k+"="+p.v)
		}
	}
	return "form: " + strings.Join(parts, " ")
}
