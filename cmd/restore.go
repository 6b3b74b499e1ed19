package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "restore trashed transactions" }
func (*restoreCmd) Usage() string {
	return `bkper restore <transaction-id>...

  Restores the given transactions from the trash.
`
}

func (*restoreCmd) SetFlags(f *flag.FlagSet) {}

func (p *restoreCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return transactionAction(ctx, f, "restore", func(ctx context.Context, client clientAction, bookID, id string) error {
		return client.RestoreTransaction(ctx, bookID, id)
	})
}
