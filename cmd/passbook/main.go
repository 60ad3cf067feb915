package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"passbook/cli"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was
	// built against. It's set via ldflags when building.
	CommitSHA = ""
)

var root struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	cli.Version = Version
	cli.CommitSHA = CommitSHA

	ctx := kong.Parse(&root,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("passbook"),
		kong.Description("A wallet statement analyzer: extracts, categorizes and summarizes transactions."),
		kong.UsageOnError(),
		kong.Bind(&root.Globals),
	)

	err := ctx.Run()

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		return "dev"
	}
	if CommitSHA != "" {
		return fmt.Sprintf("%s (%s)", Version, CommitSHA)
	}
	return Version
}
