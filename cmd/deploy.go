package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	bkper "github.com/bkper/bkper-cli-sub000"
	"github.com/google/subcommands"
)

type deployCmd struct {
	manifest string
}

func (*deployCmd) Name() string     { return "deploy" }
func (*deployCmd) Synopsis() string { return "deploy an app from its manifest" }
func (*deployCmd) Usage() string {
	return `bkper deploy [-m <manifest>]

  Reads the bkperapp.yaml manifest and creates the app, or updates it
  when an app with the manifest's id already exists.
`
}

func (p *deployCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.manifest, "m", "bkperapp.yaml", "Path to the app manifest.")
}

func (p *deployCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	manifest, err := bkper.ReadAppManifest(p.manifest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client := NewClient()
	app := manifest.App()

	updated, err := client.UpdateApp(ctx, app)
	var notFound *bkper.NotFoundError
	if errors.As(err, &notFound) {
		updated, err = client.CreateApp(ctx, app)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deployed app %s (%s)\n", updated.Name, updated.ID)
	return subcommands.ExitSuccess
}
