package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"passbook/pipeline"
)

// DumpCmd prints the analyzed ledger as a Go value, useful when debugging
// extraction against a new statement layout.
type DumpCmd struct {
	File FileOrStdin `help:"Statement text filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	doc, err := cmd.File.Document()
	if err != nil {
		return fmt.Errorf("failed to read statement: %w", err)
	}

	l, err := pipeline.Run(context.Background(), pipeline.Pages(string(doc)))
	if err != nil {
		return err
	}

	repr.Println(l)

	return nil
}
