package bkper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBookFormatValue(t *testing.T) {
	two, zero := 2, 0
	testCases := []struct {
		name  string
		book  Book
		value string
		want  string
	}{
		{"dot separator", Book{DecimalSeparator: Dot, FractionDigits: &two}, "1234.5", "1234.50"},
		{"comma separator", Book{DecimalSeparator: Comma, FractionDigits: &two}, "1234.5", "1234,50"},
		{"rounding", Book{DecimalSeparator: Dot, FractionDigits: &two}, "0.005", "0.01"},
		{"zero fraction digits", Book{DecimalSeparator: Dot, FractionDigits: &zero}, "19.99", "20"},
		{"fraction from currency", Book{Currency: "JPY", DecimalSeparator: Dot}, "1200", "1200"},
		{"fraction defaults to 2", Book{DecimalSeparator: Dot}, "7", "7.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := decimal.RequireFromString(tc.value)
			if got := tc.book.FormatValue(v); got != tc.want {
				t.Errorf("FormatValue(%s) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestBookFormatDate(t *testing.T) {
	d := NewDate(2018, time.January, 25)
	testCases := []struct {
		pattern string
		want    string
	}{
		{"", "25/01/2018"}, // default pattern
		{"dd/MM/yyyy", "25/01/2018"},
		{"MM/dd/yyyy", "01/25/2018"},
		{"yyyy-MM-dd", "2018-01-25"},
		{"d/M/yy", "25/1/18"},
	}
	for _, tc := range testCases {
		book := Book{DatePattern: tc.pattern}
		if got := book.FormatDate(d); got != tc.want {
			t.Errorf("pattern %q: FormatDate = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}
