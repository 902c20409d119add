package views

import "html/template"

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// results is the single row-template renderer for both regions.
const resultsTpl = `
{{define "item_rows"}}
<table class="table table-striped" cellpadding="10">
  <thead><tr>
    <th>Item ID</th><th>Item Name</th><th>Quantity</th><th>Price</th><th>Color</th><th>Shopcart_ID</th>
  </tr></thead>
  <tbody>
  {{- range .}}
    <tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.Color}}</td><td>{{.ShopcartID}}</td></tr>
  {{- else}}
    <tr><td colspan="6">No items in shopcart</td></tr>
  {{- end}}
  </tbody>
</table>
{{end}}

{{define "shopcart_rows"}}
<table class="table table-striped" cellpadding="10">
  <thead><tr><th colspan="2">Result in form of CustomerID, Shopcart_ID, Items[]</th></tr></thead>
  <tbody class="scrollTbody">
  {{- range $i, $cart := .}}
    <tr id="row_{{$i}}"><td>Customer ID = {{$cart.CustomerID}}</td><td>Shopcart ID = {{$cart.ID}}</td></tr>
    {{- range $j, $item := $cart.Items}}
    <tr><td>Item #{{inc $j}}</td><td>
      color: {{$item.Color}}<br>
      id: {{$item.ID}}<br>
      name: {{$item.Name}}<br>
      price: {{$item.Price}}<br>
      quantity: {{$item.Quantity}}<br>
      shopcart_id: {{$item.ShopcartID}}<br>
    </td></tr>
    {{- else}}
    <tr><td colspan="2">It has an EMPTY Item</td></tr>
    {{- end}}
  {{- else}}
    <tr><td colspan="2">No shopcarts in database</td></tr>
  {{- end}}
  </tbody>
</table>
{{end}}
`

const indexTpl = `
{{define "index"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Shopcart Admin</title>
<style>
body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
.container { padding: 16px; max-width: 1024px; margin: 0 auto; }
.card { background: #fff; border: 1px solid #e2e8f0; border-radius: 8px; padding: 12px; margin-bottom: 16px; }
label { display: block; font-size: 13px; color: #475569; margin-top: 8px; }
input[type="text"] { width: 100%; border: 1px solid #cbd5e1; border-radius: 6px; padding: 6px; box-sizing: border-box; }
.grid { display: grid; grid-template-columns: 1fr 1fr; gap: 0 16px; }
.buttons button { margin: 8px 4px 0 0; background: #2563eb; color: #fff; border: 0; padding: 8px 12px; border-radius: 6px; cursor: pointer; }
#flash_message { min-height: 1.5em; font-weight: 600; }
#flash_message.failed { color: #b91c1c; }
table { width: 100%; border-collapse: collapse; font-size: 14px; }
th, td { border-bottom: 1px solid #e2e8f0; padding: 8px; text-align: left; vertical-align: top; }
</style>
</head>
<body>
<main class="container">
  <h1>Shopcart Admin</h1>
  <div class="card">
    <div id="flash_message"{{if .View.Failed}} class="failed"{{end}}>{{.View.Flash}}</div>
  </div>
  <form class="card" method="post" action="/actions/clear-form">
    <div class="grid">
      <div>
        <label for="customer_id">Customer ID</label>
        <input type="text" id="customer_id" name="customer_id" value="{{.Form.CustomerID}}">
        <label for="shopcart_id">Shopcart ID</label>
        <input type="text" id="shopcart_id" name="shopcart_id" value="{{.Form.ShopcartID}}">
        <label for="item_id">Item ID</label>
        <input type="text" id="item_id" name="item_id" value="{{.Form.ItemID}}">
        <label for="item_name">Item Name</label>
        <input type="text" id="item_name" name="item_name" value="{{.Form.ItemName}}">
      </div>
      <div>
        <label for="quantity">Quantity</label>
        <input type="text" id="quantity" name="quantity" value="{{.Form.Quantity}}">
        <label for="price">Price</label>
        <input type="text" id="price" name="price" value="{{.Form.Price}}">
        <label for="color">Color</label>
        <input type="text" id="color" name="color" value="{{.Form.Color}}">
      </div>
    </div>
    <div class="buttons">
    {{- range .Actions}}
      <button type="submit" id="{{.Name}}-btn" formaction="/actions/{{.Name}}">{{.Label}}</button>
    {{- end}}
    </div>
  </form>
  <div class="card" id="search_results">
    {{- with .View.Results}}{{if eq .Region "search_results"}}{{template "item_rows" .Items}}{{end}}{{end}}
  </div>
  <div class="card" id="shopcarts_results">
    {{- with .View.Results}}{{if eq .Region "shopcarts_results"}}{{template "shopcart_rows" .Shopcarts}}{{end}}{{end}}
  </div>
  <footer>API variant: {{.Variant}}</footer>
</main>
</body>
</html>
{{end}}
`

// Templates parses the console page and its row templates.
func Templates() *template.Template {
	return template.Must(template.New("views").Funcs(funcs).Parse(resultsTpl + indexTpl))
}
