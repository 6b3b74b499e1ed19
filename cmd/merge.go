package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bkper "github.com/bkper/bkper-cli-sub000"
	"github.com/bkper/bkper-cli-sub000/renderer"
	"github.com/google/subcommands"
)

type mergeCmd struct {
	strict bool
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "merge two duplicate transactions into one" }
func (*mergeCmd) Usage() string {
	return `bkper merge [-strict] <transaction-id> <transaction-id>

  Merges two duplicate transactions. The posted one survives over a
  draft; among equals the most recently created one survives. The
  survivor keeps its own fields and absorbs the retired side's
  attachments, remote ids, urls, properties and missing accounts; the
  retired transaction is trashed.

  When both amounts are set and differ, the survivor's amount is kept
  and the discrepancy is recorded as a new transaction (the audit
  note), so the difference stays visible in the ledger. With -strict
  the merge is refused instead and nothing is written.
`
}

func (p *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.strict, "strict", false, "Refuse to merge when both amounts are set and differ.")
}

func (p *mergeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: merge requires exactly two transaction ids.")
		return subcommands.ExitUsageError
	}

	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Both records are fetched fresh right before deciding: the merge
	// works on live snapshots, never on cached ones.
	tx1, err := client.GetTransaction(ctx, book.ID, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx2, err := client.GetTransaction(ctx, book.ID, f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	policy := bkper.AuditNote
	if p.strict {
		policy = bkper.StrictReject
	}

	outcome, err := bkper.Merge(book, tx1, tx2, policy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Persist in a fixed order: trash the retired record, update the
	// survivor, then record the audit note. There is no transaction
	// spanning these calls; each one is idempotent, so rerunning the
	// merge after a crash converges to the same state.
	if err := client.TrashTransaction(ctx, book.ID, outcome.RetiredID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := client.UpdateTransaction(ctx, book.ID, outcome.Merged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if outcome.AuditNote != "" {
		audit := &bkper.Transaction{Date: bkper.Today(), Description: outcome.AuditNote}
		if _, err := client.CreateTransaction(ctx, book.ID, audit); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.MergeOutcome(book, outcome))
	return subcommands.ExitSuccess
}
