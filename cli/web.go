package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"passbook/output"
	"passbook/telemetry"
	"passbook/web"
)

type WebCmd struct {
	File  string `help:"Statement text file to serve." arg:""`
	Port  int    `help:"Port to listen on." default:"8080"`
	Watch bool   `help:"Re-analyze and notify clients when the statement file changes." short:"w"`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	statementFile, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	server := web.New(cmd.Port, statementFile)
	server.WatchEnabled = cmd.Watch
	if Version != "" {
		server.Version = Version
	}

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving statement: %s", pathStyle.Render(statementFile))

	if cmd.Watch {
		printInfof(ctx.Stdout, "Watching for statement changes")
	}

	return server.Start(runCtx)
}
