package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bkper/bkper-cli-sub000/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	query  string
	format string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions of the selected book" }
func (*txCmd) Usage() string {
	return `bkper tx [-q <query>] [-format <markdown|json|csv>] [-head <n>] [-tail <n>]

  Lists transactions matching the query, most recent ones when the
  query is empty.

Usage Examples:
# List everything on the 'Taxes' account as CSV.
$ bkper tx -q "account:'Taxes'" -format csv
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Bkper transaction query.")
	f.StringVar(&p.format, "format", "markdown", "Output format (markdown, json, csv).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	transactions, err := client.ListTransactions(ctx, book.ID, p.query)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	switch p.format {
	case "json":
		out, err := renderer.TransactionsJSON(transactions)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Print(out)
	case "csv":
		out, err := renderer.TransactionsCSV(book, transactions)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Print(out)
	default:
		printMarkdown(renderer.Transactions(book, transactions))
	}
	return subcommands.ExitSuccess
}
