package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	bkper "github.com/bkper/bkper-cli-sub000"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	date   string
	amount string
	from   string
	to     string
	post   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create a draft transaction in the selected book" }
func (*addCmd) Usage() string {
	return `bkper add [-d <date>] [-a <amount>] [-from <account>] [-to <account>] [-post] <description>

  Creates a transaction. Without -post the transaction stays a draft
  that can be reviewed, edited or merged before being finalized.

Usage Examples:
# Record a tax payment as a draft.
$ bkper add -d 2018-01-25 -a 100.00 -from Checking -to Taxes DAS Simples
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date (ISO format). Defaults to today.")
	f.StringVar(&p.amount, "a", "", "Transaction amount.")
	f.StringVar(&p.from, "from", "", "Credit account id.")
	f.StringVar(&p.to, "to", "", "Debit account id.")
	f.BoolVar(&p.post, "post", false, "Post the transaction right away instead of keeping it a draft.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx := &bkper.Transaction{
		Description: strings.Join(f.Args(), " "),
		Date:        bkper.Today(),
	}
	if p.date != "" {
		date, err := bkper.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.Date = date
	}
	if p.amount != "" {
		amount, err := decimal.NewFromString(p.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", p.amount, err)
			return subcommands.ExitUsageError
		}
		tx.Amount = &amount
	}
	if p.from != "" {
		tx.CreditAccount = &bkper.AccountRef{ID: p.from}
	}
	if p.to != "" {
		tx.DebitAccount = &bkper.AccountRef{ID: p.to}
	}

	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created, err := client.CreateTransaction(ctx, book.ID, tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.post {
		if err := client.PostTransaction(ctx, book.ID, created.ID); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Created transaction %s\n", created.ID)
	return subcommands.ExitSuccess
}
