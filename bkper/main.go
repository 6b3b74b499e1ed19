package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/bkper/bkper-cli-sub000/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// A local .env can carry BKPER_API_KEY and friends.
	godotenv.Load()

	commands := cmd.Commands()

	// Shell completion, when invoked by the completion hook.
	sub := make(map[string]*complete.Command, len(commands))
	for _, c := range commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("bkper")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// An unknown subcommand falls through to a bkper-<name> extension
	// binary on PATH before failing.
	if args := flag.Args(); len(args) > 0 {
		known := map[string]bool{"help": true, "flags": true, "commands": true}
		for _, c := range commands {
			known[c.Name()] = true
		}
		if !known[args[0]] {
			if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
				os.Exit(code)
			}
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
