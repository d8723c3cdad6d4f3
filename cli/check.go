package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/zaster/errors"
	"github.com/robinvdvleuten/zaster/loader"
)

type CheckCmd struct {
	File   FileOrStdin `help:"Ledger XML file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Output string      `help:"Error output format (text, json)." enum:"text,json" default:"text"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, finish := runContext(globals, ctx.Stderr, fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
	defer finish()

	if cmd.Output == "text" {
		_, err := loadOrReport(runCtx, &cmd.File, ctx.Stderr)
		if err != nil {
			return err
		}

		printSuccess(ctx.Stdout, "Check passed")
		return nil
	}

	formatter := errors.NewJSONFormatter()

	if _, err := cmd.File.Load(runCtx, loader.New()); err != nil {
		_, _ = fmt.Fprintln(ctx.Stdout, formatter.FormatAll([]error{err}))
		return NewCommandError(1)
	}

	_, _ = fmt.Fprintln(ctx.Stdout, formatter.FormatAll(nil))
	return nil
}
