package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/zaster/output"
	"github.com/robinvdvleuten/zaster/report"
)

type BalanceCmd struct {
	File   FileOrStdin `help:"Ledger XML file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Format string      `help:"Output format (csv, table)." enum:"csv,table" default:"csv" env:"ZASTER_FORMAT"`
	Watch  bool        `help:"Print the summary again whenever the file changes." short:"w"`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	if !cmd.Watch {
		return cmd.render(globals, ctx.Stdout, ctx.Stderr)
	}

	if cmd.File.IsStdin() {
		return errors.New("--watch requires a file, not stdin")
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(ctx.Stderr, globals)
	runCtx = logger.WithContext(runCtx)

	filename := cmd.File.GetAbsoluteFilename()
	printInfof(ctx.Stderr, "Watching %s", pathStyle.Render(filename))

	return watchFile(runCtx, filename, func() {
		// Load failures are already reported; keep watching until the file is fixed.
		_ = cmd.render(globals, ctx.Stdout, ctx.Stderr)
		printInfof(ctx.Stderr, "Waiting for changes to %s", filepath.Base(filename))
	})
}

func (cmd *BalanceCmd) render(globals *Globals, stdout, stderr io.Writer) error {
	runCtx, finish := runContext(globals, stderr, fmt.Sprintf("balance %s", filepath.Base(cmd.File.Filename)))
	defer finish()

	result, err := loadOrReport(runCtx, &cmd.File, stderr)
	if err != nil {
		return err
	}

	writer, err := newReportWriter(stdout, cmd.Format)
	if err != nil {
		return err
	}

	return writer.WriteBalances(report.Balances(result.Ledger))
}

// newReportWriter creates a report writer. Tables written to a terminal are colored.
func newReportWriter(w io.Writer, name string) (*report.Writer, error) {
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	opts := []report.Option{report.WithFormat(format)}
	if format == report.FormatTable && isTerminalWriter(w) {
		opts = append(opts, report.WithStyles(output.NewStyles(w)))
	}

	return report.NewWriter(w, opts...), nil
}
