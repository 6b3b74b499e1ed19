// Package cmd implements the CLI application to work with Bkper books.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	bkper "github.com/bkper/bkper-cli-sub000"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Environment variables mirrored by the global flags, also exported to
// extension binaries.
const (
	EnvAPIKey  = "BKPER_API_KEY"
	EnvBookID  = "BKPER_BOOK_ID"
	EnvBaseURL = "BKPER_API_URL"
	EnvVerbose = "BKPER_VERBOSE"
)

var (
	apiKeyFlag  = flag.String("api-key", "", "Bkper API key.\n If missing it is read from the environment variable "+EnvAPIKey+". You can get one at https://bkper.com")
	bookFlag    = flag.String("book", "", "Id of the book to work on.\n If missing it is read from the environment variable "+EnvBookID+".")
	baseURLFlag = flag.String("base-url", "", "Bkper API endpoint.\n If missing it is read from the environment variable "+EnvBaseURL+", defaulting to the production API.")
	Verbose     = flag.Bool("v", false, "Log every API call to stderr.")
)

func apiKey() string {
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(EnvAPIKey)
	}
	return *apiKeyFlag
}

func bookID() string {
	if *bookFlag == "" {
		*bookFlag = os.Getenv(EnvBookID)
	}
	return *bookFlag
}

func baseURL() string {
	if *baseURLFlag == "" {
		*baseURLFlag = os.Getenv(EnvBaseURL)
	}
	return *baseURLFlag
}

// NewClient builds the API client from the global flags. The client is
// handed explicitly to the code that needs it.
func NewClient() *bkper.Client {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return bkper.NewClient(baseURL(), apiKey(), log)
}

// openBook resolves the selected book, the single source of truth for
// amount and date formatting.
func openBook(ctx context.Context, client *bkper.Client) (*bkper.Book, error) {
	id := bookID()
	if id == "" {
		return nil, errors.New("no book selected: use -book or set " + EnvBookID)
	}
	return client.GetBook(ctx, id)
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// Commands returns all the subcommands of the bkper tool.
// A main package registers them on a commander and executes the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&booksCmd{},
		&bookCmd{},
		&accountsCmd{},
		&groupsCmd{},
		&txCmd{},
		&addCmd{},
		&postCmd{},
		&trashCmd{},
		&restoreCmd{},
		&mergeCmd{},
		&balanceCmd{},
		&appsCmd{},
		&deployCmd{},
		&assistCmd{},
		&topicCmd{},
	}
}
