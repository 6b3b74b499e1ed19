package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bkper/bkper-cli-sub000/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "query balances of the selected book" }
func (*balanceCmd) Usage() string {
	return `bkper balance <query>

  Runs a balances query and renders the totals, formatted by the book.

Usage Examples:
$ bkper balance "group:'Expenses' after:2018-01-01"
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (p *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: balance requires a query.")
		return subcommands.ExitUsageError
	}

	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	balances, err := client.QueryBalances(ctx, book.ID, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Balances(book, balances))
	return subcommands.ExitSuccess
}
