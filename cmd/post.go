package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type postCmd struct{}

func (*postCmd) Name() string     { return "post" }
func (*postCmd) Synopsis() string { return "finalize draft transactions into the ledger" }
func (*postCmd) Usage() string {
	return `bkper post <transaction-id>...

  Posts the given draft transactions. A posted transaction is final and
  authoritative: it survives over drafts when merging duplicates.
`
}

func (*postCmd) SetFlags(f *flag.FlagSet) {}

func (p *postCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return transactionAction(ctx, f, "post", func(ctx context.Context, client clientAction, bookID, id string) error {
		return client.PostTransaction(ctx, bookID, id)
	})
}

// clientAction is the slice of the API client lifecycle commands need.
type clientAction interface {
	PostTransaction(ctx context.Context, bookID, transactionID string) error
	TrashTransaction(ctx context.Context, bookID, transactionID string) error
	RestoreTransaction(ctx context.Context, bookID, transactionID string) error
}

func transactionAction(ctx context.Context, f *flag.FlagSet, verb string, action func(context.Context, clientAction, string, string) error) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s requires at least one transaction id.\n", verb)
		return subcommands.ExitUsageError
	}
	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		if err := action(ctx, client, book.ID, id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %s\n", verb, id)
	}
	return subcommands.ExitSuccess
}
