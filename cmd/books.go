package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bkper/bkper-cli-sub000/renderer"
	"github.com/google/subcommands"
)

type booksCmd struct{}

func (*booksCmd) Name() string     { return "books" }
func (*booksCmd) Synopsis() string { return "list the books you have access to" }
func (*booksCmd) Usage() string {
	return `bkper books

  Lists all books, with their id, currency and your permission on them.
`
}

func (*booksCmd) SetFlags(f *flag.FlagSet) {}

func (p *booksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	books, err := client.ListBooks(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Books(books))
	return subcommands.ExitSuccess
}

type bookCmd struct{}

func (*bookCmd) Name() string     { return "book" }
func (*bookCmd) Synopsis() string { return "show the selected book and its formatting rules" }
func (*bookCmd) Usage() string {
	return `bkper book [-book <id>]

  Shows the selected book: currency, fraction digits, decimal separator
  and date pattern. These rules govern every human-facing rendering of
  the book's amounts and dates.
`
}

func (*bookCmd) SetFlags(f *flag.FlagSet) {}

func (p *bookCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Book(book))
	return subcommands.ExitSuccess
}
