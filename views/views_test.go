package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, form models.FormState, view models.RenderedView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, NewPage(form, view, "api")))
	return buf.String()
}

func regionBody(html, id string) string {
	start := strings.Index(html, `id="`+id+`"`)
	if start < 0 {
		return ""
	}
	rest := html[start:]
	end := strings.Index(rest, "</div>")
	return rest[:end]
}

func TestRenderPage_EmptyConsole(t *testing.T) {
	html := render(t, models.FormState{}, models.RenderedView{})

	assert.Contains(t, html, `id="create-shopcart-btn"`)
	assert.Contains(t, html, `id="checkout-item-btn"`)
	assert.Contains(t, html, `id="update-shopcart-btn"`)
	assert.Contains(t, html, `formaction="/actions/search-shopcarts"`)
	assert.NotContains(t, regionBody(html, "search_results"), "<table")
	assert.NotContains(t, regionBody(html, "shopcarts_results"), "<table")
}

func TestRenderPage_FormValuesAndFlash(t *testing.T) {
	form := models.FormState{CustomerID: "42", ShopcartID: "7"}
	html := render(t, form, models.RenderedView{Flash: "Successfully added an empty shopcart"})

	assert.Contains(t, html, `name="shopcart_id" value="7"`)
	assert.Contains(t, html, `name="customer_id" value="42"`)
	assert.Contains(t, html, "Successfully added an empty shopcart")
	assert.NotContains(t, html, `class="failed"`)
}

func TestRenderPage_ItemRegion(t *testing.T) {
	item := models.Item{ID: 3, ShopcartID: 7, Name: "pen", Quantity: 2, Price: 1.5, Color: "blue"}
	html := render(t, models.FormState{}, models.RenderedView{Results: models.ItemResults(item)})

	search := regionBody(html, "search_results")
	assert.Contains(t, search, "<td>3</td><td>pen</td><td>2</td><td>1.5</td><td>blue</td><td>7</td>")
	assert.NotContains(t, regionBody(html, "shopcarts_results"), "<table")
}

func TestRenderPage_ShopcartRegion(t *testing.T) {
	carts := []models.Shopcart{
		{ID: 7, CustomerID: 42, Items: []models.Item{{ID: 3, ShopcartID: 7, Name: "pen", Quantity: 2, Price: 1.5}}},
		{ID: 9, CustomerID: 42, Items: []models.Item{}},
	}
	html := render(t, models.FormState{}, models.RenderedView{Results: models.ShopcartResults(carts...)})

	region := regionBody(html, "shopcarts_results")
	assert.Contains(t, region, "Shopcart ID = 7")
	assert.Contains(t, region, "Item #1")
	assert.Contains(t, region, "name: pen")
	assert.Contains(t, region, "It has an EMPTY Item")
	assert.NotContains(t, regionBody(html, "search_results"), "<table")
}

func TestRenderPage_NoShopcarts(t *testing.T) {
	html := render(t, models.FormState{}, models.RenderedView{Results: models.ShopcartResults()})

	assert.Contains(t, regionBody(html, "shopcarts_results"), "No shopcarts in database")
}

func TestRenderPage_EscapesServerText(t *testing.T) {
	view := models.RenderedView{Flash: "<script>alert(1)</script>", Failed: true}
	html := render(t, models.FormState{ItemName: `"><b>`}, view)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, `class="failed"`)
}

func TestRenderText(t *testing.T) {
	out := RenderText(models.RenderedView{
		Flash:   "Successfully retrieved the item",
		Results: models.ItemResults(models.Item{ID: 3, ShopcartID: 7, Name: "pen", Quantity: 2, Price: 1.5}),
	})

	assert.Contains(t, out, "Successfully retrieved the item")
	assert.Contains(t, out, "Item Name")
	assert.Contains(t, out, "pen")
	assert.Contains(t, out, "1.5")
}

func TestResultRows_Shopcarts(t *testing.T) {
	headers, rows := ResultRows(*models.ShopcartResults(
		models.Shopcart{ID: 7, CustomerID: 42, Items: []models.Item{{ID: 3, Name: "pen", Quantity: 2, Price: 1.5, Color: "red"}}},
		models.Shopcart{ID: 9, CustomerID: 42},
	))

	assert.Equal(t, []string{"Customer ID", "Shopcart ID", "Item #", "Item"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"42", "7", "1", "3 pen x2 @ 1.5 red"}, rows[0])
	assert.Equal(t, []string{"42", "9", "", "EMPTY"}, rows[1])
}
