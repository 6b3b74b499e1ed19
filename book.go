package bkper

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DecimalSeparator is the character a book uses between the integer and
// the fractional part of an amount.
type DecimalSeparator string

const (
	// Dot renders amounts as 1234.56.
	Dot DecimalSeparator = "DOT"
	// Comma renders amounts as 1234,56.
	Comma DecimalSeparator = "COMMA"
)

// Book is a ledger book on the Bkper platform.
//
// Besides identity, a book carries the formatting rules that every
// human-facing rendering of its amounts and dates must follow.
type Book struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Currency         string           `json:"currency,omitempty"`
	DecimalSeparator DecimalSeparator `json:"decimalSeparator,omitempty"`
	FractionDigits   *int             `json:"fractionDigits,omitempty"`
	DatePattern      string           `json:"datePattern,omitempty"`
	Permission       string           `json:"permission,omitempty"`
	TimeZone         string           `json:"timeZone,omitempty"`
}

// Fraction returns the number of fraction digits configured on the book.
// When the book does not configure it, the fraction of the book's
// currency decides (2 for an unknown currency).
func (b *Book) Fraction() int32 {
	if b.FractionDigits != nil {
		return int32(*b.FractionDigits)
	}
	if c := money.GetCurrency(b.Currency); c != nil {
		return int32(c.Fraction)
	}
	return 2
}

// FormatValue renders an amount following the book's fraction digits and
// decimal separator.
func (b *Book) FormatValue(v decimal.Decimal) string {
	s := v.StringFixed(b.Fraction())
	if b.DecimalSeparator == Comma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// FormatDate renders a date following the book's date pattern.
func (b *Book) FormatDate(d Date) string {
	return d.Format(b.dateLayout())
}

// dateLayout translates the book's date pattern (dd/MM/yyyy style) into
// a Go time layout.
func (b *Book) dateLayout() string {
	pattern := b.DatePattern
	if pattern == "" {
		pattern = "dd/MM/yyyy"
	}
	r := strings.NewReplacer(
		"yyyy", "2006",
		"yy", "06",
		"MM", "01",
		"M", "1",
		"dd", "02",
		"d", "2",
	)
	return r.Replace(pattern)
}
