package renderer

import (
	"fmt"
	"strings"

	bkper "github.com/bkper/bkper-cli-sub000"
	"github.com/shopspring/decimal"
)

// Transactions renders transactions as a markdown table, amounts and
// dates formatted by the book.
func Transactions(book *bkper.Book, transactions []bkper.Transaction) string {
	t := newTable("Date", "Description", "Amount", "Debit", "Credit", "Status")
	for _, tx := range transactions {
		t.Row(
			book.FormatDate(tx.Date),
			tx.Description,
			amount(book, tx.Amount),
			accountName(tx.DebitAccount),
			accountName(tx.CreditAccount),
			status(tx),
		)
	}
	return "# Transactions\n\n" + t.String()
}

// MergeOutcome renders the result of a merge: the surviving record, the
// retired id and, when present, the audit note recorded for the amount
// discrepancy.
func MergeOutcome(book *bkper.Book, outcome *bkper.MergeOutcome) string {
	var b strings.Builder
	b.WriteString("# Merge\n\n")
	fmt.Fprintf(&b, "Survivor `%s`, retired `%s`.\n\n", outcome.Merged.ID, outcome.RetiredID)

	t := newTable("Field", "Value")
	t.Row("Date", book.FormatDate(outcome.Merged.Date))
	t.Row("Description", outcome.Merged.Description)
	t.Row("Amount", amount(book, outcome.Merged.Amount))
	t.Row("Debit", accountName(outcome.Merged.DebitAccount))
	t.Row("Credit", accountName(outcome.Merged.CreditAccount))
	if len(outcome.Merged.RemoteIDs) > 0 {
		t.Row("Remote ids", strings.Join(outcome.Merged.RemoteIDs, ", "))
	}
	if len(outcome.Merged.Attachments) > 0 {
		t.Row("Attachments", fmt.Sprintf("%d", len(outcome.Merged.Attachments)))
	}
	b.WriteString(t.String())

	if outcome.AuditNote != "" {
		fmt.Fprintf(&b, "\nAudit note: %s\n", outcome.AuditNote)
	}
	return b.String()
}

func amount(book *bkper.Book, a *decimal.Decimal) string {
	if a == nil {
		return ""
	}
	return book.FormatValue(*a)
}

func accountName(ref *bkper.AccountRef) string {
	if ref == nil {
		return ""
	}
	if ref.Name != "" {
		return ref.Name
	}
	return ref.ID
}

func status(tx bkper.Transaction) string {
	switch {
	case tx.Trashed:
		return "trashed"
	case tx.Posted:
		return "posted"
	default:
		return "draft"
	}
}
