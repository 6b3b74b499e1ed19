package bkper

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Attachment is an opaque file reference carried by a transaction.
//
// Attachments are append-only evidence: two attachments are never
// considered the same even when their content matches.
type Attachment struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	URL         string `json:"url"`
}

// Transaction is a record of a book, either a draft or a posted entry.
//
// A nil Amount, CreditAccount or DebitAccount means the field is absent,
// which is distinct from a zero value.
type Transaction struct {
	ID            string
	Posted        bool
	CreatedAt     int64 // creation marker in epoch milliseconds
	Date          Date
	Description   string
	Amount        *decimal.Decimal
	CreditAccount *AccountRef
	DebitAccount  *AccountRef
	Attachments   []Attachment
	RemoteIDs     []string
	URLs          []string
	Properties    map[string]string
	Trashed       bool
}

// transactionJSON is the wire shape of a transaction.
type transactionJSON struct {
	ID            string            `json:"id"`
	Posted        bool              `json:"posted"`
	CreatedAt     int64             `json:"createdAt"`
	Date          Date              `json:"date"`
	Description   string            `json:"description"`
	Amount        *decimal.Decimal  `json:"amount"`
	CreditAccount *AccountRef       `json:"creditAccount"`
	DebitAccount  *AccountRef       `json:"debitAccount"`
	Attachments   []Attachment      `json:"attachments"`
	RemoteIDs     []string          `json:"remoteIds"`
	URLs          []string          `json:"urls"`
	Properties    map[string]string `json:"properties"`
	Trashed       bool              `json:"trashed"`
}

// MarshalJSON writes the transaction in a stable field order.
//
// The rich creditAccount/debitAccount references are the canonical
// representation; the bare creditAccountId/debitAccountId fields some
// consumers expect are projected from them here, at the serialization
// boundary only.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.ID)
	w.Append("posted", t.Posted)
	w.Optional("createdAt", t.CreatedAt)
	if !t.Date.IsZero() {
		w.Append("date", t.Date)
	}
	w.Optional("description", t.Description)
	if t.Amount != nil {
		w.Append("amount", t.Amount)
	}
	if t.CreditAccount != nil {
		w.Append("creditAccount", t.CreditAccount)
		w.Append("creditAccountId", t.CreditAccount.ID)
	}
	if t.DebitAccount != nil {
		w.Append("debitAccount", t.DebitAccount)
		w.Append("debitAccountId", t.DebitAccount.ID)
	}
	if len(t.Attachments) > 0 {
		w.Append("attachments", t.Attachments)
	}
	if len(t.RemoteIDs) > 0 {
		w.Append("remoteIds", t.RemoteIDs)
	}
	if len(t.URLs) > 0 {
		w.Append("urls", t.URLs)
	}
	if len(t.Properties) > 0 {
		w.Append("properties", t.Properties)
	}
	w.Optional("trashed", t.Trashed)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the wire shape of a transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var j transactionJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*t = Transaction{
		ID:            j.ID,
		Posted:        j.Posted,
		CreatedAt:     j.CreatedAt,
		Date:          j.Date,
		Description:   j.Description,
		Amount:        j.Amount,
		CreditAccount: j.CreditAccount,
		DebitAccount:  j.DebitAccount,
		Attachments:   j.Attachments,
		RemoteIDs:     j.RemoteIDs,
		URLs:          j.URLs,
		Properties:    j.Properties,
		Trashed:       j.Trashed,
	}
	return nil
}
