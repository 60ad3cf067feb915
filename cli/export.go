package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"passbook/export"
	"passbook/pipeline"
)

type ExportCmd struct {
	File   FileOrStdin `help:"Statement text filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Output string      `help:"CSV output path." short:"o" default:"processed_data.csv"`
	Force  bool        `help:"Overwrite the output file without a confirmation prompt." short:"f"`
}

func (cmd *ExportCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	doc, err := cmd.File.Document()
	if err != nil {
		return fmt.Errorf("failed to read statement: %w", err)
	}

	pages := pipeline.Pages(string(doc))
	l, err := pipeline.Run(context.Background(), pages)
	if err != nil {
		renderer := NewErrorRenderer(pages)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "analysis failed")

		return NewCommandError(1)
	}

	// The default snapshot path is staging state and overwritten silently;
	// anything else the user named gets a confirmation first.
	if cmd.Output != export.DefaultFilename && !cmd.Force {
		if _, err := os.Stat(cmd.Output); err == nil {
			confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q exists. Overwrite it?", cmd.Output))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !confirmed {
				return fmt.Errorf("refusing to overwrite %s", cmd.Output)
			}
		}
	}

	if err := export.WriteFile(cmd.Output, l); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d transaction(s) exported to %s",
		len(l.Transactions), pathStyle.Render(cmd.Output)))

	return nil
}
