package bkper

import "fmt"

// NotFoundError reports that a book or transaction id did not resolve.
type NotFoundError struct {
	Kind string // "book" or "transaction"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// AmountConflictError reports that both transactions of a merge carry an
// amount and the two values disagree, under the strict amount policy.
//
// The message names both book-formatted amounts so the user can
// reconcile them by hand before retrying.
type AmountConflictError struct {
	Survivor string // book-formatted survivor amount
	Retired  string // book-formatted retired amount
}

func (e *AmountConflictError) Error() string {
	return fmt.Sprintf("amounts differ: %s vs %s: reconcile them manually before merging", e.Survivor, e.Retired)
}
