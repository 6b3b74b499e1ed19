package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type trashCmd struct{}

func (*trashCmd) Name() string     { return "trash" }
func (*trashCmd) Synopsis() string { return "move transactions to the trash" }
func (*trashCmd) Usage() string {
	return `bkper trash <transaction-id>...

  Trashes the given transactions. Trashing is reversible (see restore)
  and idempotent: trashing an already trashed transaction is a no-op.
`
}

func (*trashCmd) SetFlags(f *flag.FlagSet) {}

func (p *trashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return transactionAction(ctx, f, "trash", func(ctx context.Context, client clientAction, bookID, id string) error {
		return client.TrashTransaction(ctx, bookID, id)
	})
}
