package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	flashStyle  = lipgloss.NewStyle().Bold(true)
	failedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderText renders a view for the terminal: the flash line followed by
// the populated result region, if any.
func RenderText(view models.RenderedView) string {
	var b strings.Builder
	if view.Flash != "" {
		style := flashStyle
		if view.Failed {
			style = failedStyle
		}
		b.WriteString(style.Render(view.Flash))
		b.WriteString("\n")
	}
	if view.Results == nil {
		return b.String()
	}

	headers, rows := ResultRows(*view.Results)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// ResultRows flattens a result set into table headers and rows. Cart
// results produce one row per item, or one row for an empty cart.
func ResultRows(rs models.ResultSet) ([]string, [][]string) {
	if rs.Region == models.RegionSearch {
		headers := []string{"Item ID", "Item Name", "Quantity", "Price", "Color", "Shopcart_ID"}
		rows := make([][]string, 0, len(rs.Items))
		for _, item := range rs.Items {
			rows = append(rows, []string{
				strconv.FormatInt(item.ID, 10),
				item.Name,
				strconv.FormatInt(item.Quantity, 10),
				formatPrice(item.Price),
				item.Color,
				strconv.FormatInt(item.ShopcartID, 10),
			})
		}
		return headers, rows
	}

	headers := []string{"Customer ID", "Shopcart ID", "Item #", "Item"}
	rows := make([][]string, 0, len(rs.Shopcarts))
	for _, cart := range rs.Shopcarts {
		customer := strconv.FormatInt(cart.CustomerID, 10)
		id := strconv.FormatInt(cart.ID, 10)
		if len(cart.Items) == 0 {
			rows = append(rows, []string{customer, id, "", "EMPTY"})
			continue
		}
		for j, item := range cart.Items {
			rows = append(rows, []string{
				customer,
				id,
				strconv.Itoa(j + 1),
				strings.TrimSpace(fmt.Sprintf("%d %s x%d @ %s %s", item.ID, item.Name, item.Quantity, formatPrice(item.Price), item.Color)),
			})
		}
	}
	return headers, rows
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
