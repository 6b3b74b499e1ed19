package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bkper/bkper-cli-sub000/renderer"
	"github.com/google/subcommands"
)

type groupsCmd struct{}

func (*groupsCmd) Name() string     { return "groups" }
func (*groupsCmd) Synopsis() string { return "list the groups of the selected book" }
func (*groupsCmd) Usage() string {
	return `bkper groups [-book <id>]

  Lists the visible account groups of the book.
`
}

func (*groupsCmd) SetFlags(f *flag.FlagSet) {}

func (p *groupsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	book, err := openBook(ctx, client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	groups, err := client.ListGroups(ctx, book.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Groups(groups))
	return subcommands.ExitSuccess
}
