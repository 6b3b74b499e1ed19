package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type appsCmd struct{}

func (*appsCmd) Name() string     { return "apps" }
func (*appsCmd) Synopsis() string { return "list your apps" }
func (*appsCmd) Usage() string {
	return `bkper apps

  Lists the apps registered under your account.
`
}

func (*appsCmd) SetFlags(f *flag.FlagSet) {}

func (p *appsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	apps, err := client.ListApps(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, app := range apps {
		status := "draft"
		if app.Published {
			status = "published"
		}
		fmt.Printf("%s\t%s\t%s\n", app.ID, app.Name, status)
	}
	return subcommands.ExitSuccess
}
