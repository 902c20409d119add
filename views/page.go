package views

import (
	"io"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/controller"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"
)

type ActionButton struct {
	Name  string
	Label string
}

// Page is the data behind one render of the console.
type Page struct {
	Form    models.FormState
	View    models.RenderedView
	Actions []ActionButton
	Variant string
}

func NewPage(form models.FormState, view models.RenderedView, variant string) Page {
	buttons := make([]ActionButton, 0, len(controller.Actions))
	for _, a := range controller.Actions {
		buttons = append(buttons, ActionButton{Name: a.String(), Label: a.Label()})
	}
	return Page{Form: form, View: view, Actions: buttons, Variant: variant}
}

func RenderPage(w io.Writer, page Page) error {
	return Templates().ExecuteTemplate(w, "index", page)
}
