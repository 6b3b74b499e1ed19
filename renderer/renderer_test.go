package renderer

import (
	"strings"
	"testing"
	"time"

	bkper "github.com/bkper/bkper-cli-sub000"
	"github.com/shopspring/decimal"
)

func testBook() *bkper.Book {
	two := 2
	return &bkper.Book{
		ID:               "book-1",
		Name:             "Company",
		Currency:         "USD",
		DecimalSeparator: bkper.Dot,
		FractionDigits:   &two,
		DatePattern:      "dd/MM/yyyy",
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTransactionsTable(t *testing.T) {
	book := testBook()
	transactions := []bkper.Transaction{
		{
			ID:           "t1",
			Posted:       true,
			Date:         bkper.NewDate(2018, time.January, 25),
			Description:  "DAS Simples",
			Amount:       dec("100"),
			DebitAccount: &bkper.AccountRef{ID: "acc-1", Name: "Taxes"},
		},
		{ID: "t2", Description: "draft entry"},
	}

	got := Transactions(book, transactions)

	for _, want := range []string{"25/01/2018", "DAS Simples", "100.00", "Taxes", "posted", "draft"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered table missing %q:\n%s", want, got)
		}
	}
}

func TestMergeOutcome(t *testing.T) {
	book := testBook()
	outcome := &bkper.MergeOutcome{
		Merged: &bkper.Transaction{
			ID:          "t2",
			Posted:      true,
			Date:        bkper.NewDate(2018, time.January, 26),
			Description: "INT DAS-SIMPLES NACIONA",
			Amount:      dec("80"),
		},
		RetiredID: "t1",
		AuditNote: "25/01/2018 20.00 DAS Simples",
	}

	got := MergeOutcome(book, outcome)

	for _, want := range []string{"t2", "t1", "80.00", "Audit note: 25/01/2018 20.00 DAS Simples"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered outcome missing %q:\n%s", want, got)
		}
	}
}

func TestTransactionsCSV(t *testing.T) {
	book := testBook()
	transactions := []bkper.Transaction{
		{
			ID:          "t1",
			Date:        bkper.NewDate(2018, time.January, 25),
			Description: "coffee, with comma",
			Amount:      dec("4.5"),
		},
	}

	got, err := TransactionsCSV(book, transactions)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv = %q", got)
	}
	if !strings.HasPrefix(lines[0], "id,date,description") {
		t.Errorf("header = %q", lines[0])
	}
	// The comma in the description must be quoted away.
	if !strings.Contains(lines[1], `"coffee, with comma"`) || !strings.Contains(lines[1], "4.50") {
		t.Errorf("record = %q", lines[1])
	}
}
