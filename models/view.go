package models

// Region names one of the two mutually exclusive result areas.
type Region string

const (
	RegionSearch    Region = "search_results"
	RegionShopcarts Region = "shopcarts_results"
)

// ResultSet is the tabular output of one action. Item records go to the
// search region, cart records to the shopcarts region.
type ResultSet struct {
	Region    Region     `json:"region"`
	Items     []Item     `json:"items,omitempty"`
	Shopcarts []Shopcart `json:"shopcarts,omitempty"`
}

// RenderedView is what the console shows after an action. A nil Results
// means both regions are empty.
type RenderedView struct {
	Flash   string     `json:"flash"`
	Failed  bool       `json:"failed"`
	Results *ResultSet `json:"results,omitempty"`
}

func ItemResults(items ...Item) *ResultSet {
	return &ResultSet{Region: RegionSearch, Items: items}
}

func ShopcartResults(carts ...Shopcart) *ResultSet {
	if carts == nil {
		carts = []Shopcart{}
	}
	return &ResultSet{Region: RegionShopcarts, Shopcarts: carts}
}
