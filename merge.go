package bkper

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPolicy selects how Merge resolves the amount field when both
// transactions carry one and the two values disagree.
type AmountPolicy int

const (
	// AuditNote keeps the survivor's amount and reports the discrepancy
	// as a human-readable note, meant to be persisted by the caller as a
	// separate transaction forming a visible reconciliation trail.
	AuditNote AmountPolicy = iota
	// StrictReject refuses the merge with an AmountConflictError.
	StrictReject
)

// MergeOutcome is the result of merging two transactions.
//
// It is consumed once by the caller to perform the writes it implies:
// trash the retired transaction, update the merged one, and, when
// AuditNote is non-empty, record the note as a new transaction.
type MergeOutcome struct {
	// Merged carries the survivor's id and the fully resolved merged
	// field set. It is a new value: neither input is ever mutated.
	Merged *Transaction
	// RetiredID is the id of the transaction to be trashed.
	RetiredID string
	// AuditNote is non-empty only when both amounts were defined and
	// unequal under the AuditNote policy.
	AuditNote string
}

// Merge combines two transactions of the same book into one.
//
// The survivor is chosen by SelectRoles, its fields are fused with the
// retired side's, and the amount is resolved under the given policy.
// Under StrictReject a disagreement on amounts fails the merge before
// any merged field set is produced.
func Merge(book *Book, a, b *Transaction, policy AmountPolicy) (*MergeOutcome, error) {
	if book == nil {
		return nil, errors.New("merge: book is required")
	}
	if a == nil {
		return nil, fmt.Errorf("merge: first transaction: %w", &NotFoundError{Kind: "transaction"})
	}
	if b == nil {
		return nil, fmt.Errorf("merge: second transaction: %w", &NotFoundError{Kind: "transaction"})
	}

	survivor, retired := SelectRoles(a, b)

	amount, note, err := reconcileAmounts(book, survivor, retired, policy)
	if err != nil {
		return nil, err
	}

	merged := &Transaction{
		ID:            survivor.ID,
		Posted:        survivor.Posted,
		CreatedAt:     survivor.CreatedAt,
		Date:          survivor.Date,
		Description:   MergeDescriptions(survivor.Description, retired.Description),
		Amount:        amount,
		CreditAccount: backfillAccount(survivor.CreditAccount, retired.CreditAccount),
		DebitAccount:  backfillAccount(survivor.DebitAccount, retired.DebitAccount),
		Attachments:   concatAttachments(survivor.Attachments, retired.Attachments),
		RemoteIDs:     unionStrings(survivor.RemoteIDs, retired.RemoteIDs),
		URLs:          unionStrings(survivor.URLs, retired.URLs),
		Properties:    overlayProperties(survivor.Properties, retired.Properties),
	}

	return &MergeOutcome{Merged: merged, RetiredID: retired.ID, AuditNote: note}, nil
}

// SelectRoles designates one transaction as survivor and the other as
// retired. A posted transaction always survives over a draft; among
// equals the most recently created one survives, the second argument
// winning ties. Pure and total: the result is always a strict
// partition of the two inputs.
func SelectRoles(a, b *Transaction) (survivor, retired *Transaction) {
	if a.Posted != b.Posted {
		if a.Posted {
			return a, b
		}
		return b, a
	}
	if a.CreatedAt > b.CreatedAt {
		return a, b
	}
	return b, a
}

// MergeDescriptions combines two free-text descriptions without
// duplicating information.
//
// The survivor's text is preserved verbatim; the retired text is
// tokenized on runs of space, hyphen or underscore and only tokens not
// already present (case-insensitively, as substrings) in the survivor
// are appended. The fusion is intentionally not symmetric.
func MergeDescriptions(survivor, retired string) string {
	if survivor == "" {
		return retired
	}
	if retired == "" {
		return survivor
	}

	haystack := strings.ToLower(survivor)
	var kept []string
	for _, word := range strings.FieldsFunc(retired, isDescriptionSeparator) {
		if !strings.Contains(haystack, strings.ToLower(word)) {
			kept = append(kept, word)
		}
	}

	merged := survivor
	if len(kept) > 0 {
		merged += " " + strings.Join(kept, " ")
	}
	return strings.Join(strings.Fields(merged), " ")
}

func isDescriptionSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}

// reconcileAmounts resolves the amount field under the given policy.
//
// An unequal pair of defined amounts is never resolved silently: it
// either produces a note (AuditNote) or fails (StrictReject). The note
// is "<retired date> <absolute difference> <retired description>", both
// values formatted by the book.
func reconcileAmounts(book *Book, survivor, retired *Transaction, policy AmountPolicy) (*decimal.Decimal, string, error) {
	switch {
	case survivor.Amount == nil:
		return copyAmount(retired.Amount), "", nil
	case retired.Amount == nil, survivor.Amount.Equal(*retired.Amount):
		return copyAmount(survivor.Amount), "", nil
	}

	if policy == StrictReject {
		return nil, "", &AmountConflictError{
			Survivor: book.FormatValue(*survivor.Amount),
			Retired:  book.FormatValue(*retired.Amount),
		}
	}

	diff := survivor.Amount.Sub(*retired.Amount).Abs()
	note := strings.TrimSpace(strings.Join([]string{
		book.FormatDate(retired.Date),
		book.FormatValue(diff),
		retired.Description,
	}, " "))
	return copyAmount(survivor.Amount), note, nil
}

func copyAmount(a *decimal.Decimal) *decimal.Decimal {
	if a == nil {
		return nil
	}
	v := *a
	return &v
}

// backfillAccount fills an absent account reference from the retired
// side. A reference the survivor already has is never overwritten.
func backfillAccount(survivor, retired *AccountRef) *AccountRef {
	src := survivor
	if src == nil {
		src = retired
	}
	if src == nil {
		return nil
	}
	ref := *src
	return &ref
}

// concatAttachments appends the retired side's attachments after the
// survivor's, preserving order on each side. Attachments are never
// deduplicated: they are append-only evidence.
func concatAttachments(survivor, retired []Attachment) []Attachment {
	if len(survivor)+len(retired) == 0 {
		return nil
	}
	merged := make([]Attachment, 0, len(survivor)+len(retired))
	merged = append(merged, survivor...)
	merged = append(merged, retired...)
	return merged
}

// unionStrings merges two sets kept as slices, survivor's order first,
// dropping duplicates.
func unionStrings(survivor, retired []string) []string {
	if len(survivor)+len(retired) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(survivor)+len(retired))
	merged := make([]string, 0, len(survivor)+len(retired))
	for _, s := range survivor {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range retired {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}

// overlayProperties starts from the survivor's properties and overlays
// the retired side's. On a key collision the retired value wins: unlike
// every other field, an explicit property edit on the retiring record is
// treated as the most recent intent for that key.
func overlayProperties(survivor, retired map[string]string) map[string]string {
	if len(survivor)+len(retired) == 0 {
		return nil
	}
	merged := make(map[string]string, len(survivor)+len(retired))
	maps.Copy(merged, survivor)
	maps.Copy(merged, retired)
	return merged
}
