package renderer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"

	bkper "github.com/bkper/bkper-cli-sub000"
)

// TransactionsCSV renders transactions as CSV, one record per line,
// amounts and dates formatted by the book.
func TransactionsCSV(book *bkper.Book, transactions []bkper.Transaction) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "date", "description", "amount", "debit", "credit", "status"}); err != nil {
		return "", err
	}
	for _, tx := range transactions {
		record := []string{
			tx.ID,
			book.FormatDate(tx.Date),
			tx.Description,
			amount(book, tx.Amount),
			accountName(tx.DebitAccount),
			accountName(tx.CreditAccount),
			status(tx),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// TransactionsJSON renders transactions as indented JSON.
func TransactionsJSON(transactions []bkper.Transaction) (string, error) {
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
