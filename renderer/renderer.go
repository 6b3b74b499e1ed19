// Package renderer turns bkper domain values into markdown suitable for
// terminal rendering, plus CSV and JSON for machine consumption.
package renderer

import (
	"fmt"
	"strings"

	bkper "github.com/bkper/bkper-cli-sub000"
)

// table builds a markdown table with aligned pipes.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) Row(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) String() string {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&b, " %-*s |", w, cell)
		}
		b.WriteString("\n")
	}
	writeRow(t.header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range t.rows {
		writeRow(row)
	}
	return b.String()
}

// Books renders the list of books as a markdown table.
func Books(books []bkper.Book) string {
	t := newTable("Id", "Name", "Currency", "Permission")
	for _, b := range books {
		t.Row(b.ID, b.Name, b.Currency, b.Permission)
	}
	return "# Books\n\n" + t.String()
}

// Book renders one book with its formatting configuration.
func Book(b *bkper.Book) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", b.Name)
	fmt.Fprintf(&sb, "- Id: %s\n", b.ID)
	fmt.Fprintf(&sb, "- Currency: %s\n", b.Currency)
	fmt.Fprintf(&sb, "- Fraction digits: %d\n", b.Fraction())
	fmt.Fprintf(&sb, "- Decimal separator: %s\n", b.DecimalSeparator)
	fmt.Fprintf(&sb, "- Date pattern: %s\n", b.DatePattern)
	if b.Permission != "" {
		fmt.Fprintf(&sb, "- Permission: %s\n", b.Permission)
	}
	return sb.String()
}

// Accounts renders the accounts of a book as a markdown table.
func Accounts(book *bkper.Book, accounts []bkper.Account) string {
	t := newTable("Name", "Type", "Balance")
	for _, a := range accounts {
		balance := ""
		if a.Balance != nil {
			balance = book.FormatValue(*a.Balance)
		}
		t.Row(a.Name, string(a.Type), balance)
	}
	return "# Accounts\n\n" + t.String()
}

// Groups renders the groups of a book as a markdown table.
func Groups(groups []bkper.Group) string {
	t := newTable("Name", "Parent")
	for _, g := range groups {
		if g.Hidden {
			continue
		}
		t.Row(g.Name, g.Parent)
	}
	return "# Groups\n\n" + t.String()
}

// Balances renders a balances query result as a markdown table.
func Balances(book *bkper.Book, balances []bkper.Balance) string {
	t := newTable("Name", "Total")
	for _, b := range balances {
		t.Row(b.Name, book.FormatValue(b.Total))
	}
	return "# Balances\n\n" + t.String()
}
