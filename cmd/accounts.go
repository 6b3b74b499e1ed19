package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bkper/bkper-cli-sub000/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts of the selected book" }
func (*accountsCmd) Usage() string {
	return `bkper accounts [-book <id>]

  Lists all accounts of the book with their type and current balance.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (p *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	accounts, err := client.ListAccounts(ctx, book.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(book, accounts))
	return subcommands.ExitSuccess
}
