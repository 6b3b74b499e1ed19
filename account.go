package bkper

import "github.com/shopspring/decimal"

// AccountType classifies an account in the double-entry model.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Incoming  AccountType = "INCOMING"
	Outgoing  AccountType = "OUTGOING"
)

// Account is a ledger account of a book.
type Account struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     AccountType      `json:"type,omitempty"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	Archived bool             `json:"archived,omitempty"`
	Groups   []string         `json:"groups,omitempty"`
}

// AccountRef is the reference a transaction holds to one of its legs.
//
// It is the single canonical representation of an account inside a
// transaction; the id-only view some API surfaces expose is derived
// from it at the serialization boundary, never stored alongside it.
type AccountRef struct {
	ID   string      `json:"id"`
	Name string      `json:"name,omitempty"`
	Type AccountType `json:"type,omitempty"`
}
