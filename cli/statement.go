package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/robinvdvleuten/zaster/report"
)

type StatementCmd struct {
	File    FileOrStdin `help:"Ledger XML file (use '-' for stdin)." arg:""`
	Account string      `help:"Account to print the statement of. Prompts when omitted on a terminal." arg:"" optional:""`
	Format  string      `help:"Output format (csv, table)." enum:"csv,table" default:"csv" env:"ZASTER_FORMAT"`
}

func (cmd *StatementCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, finish := runContext(globals, ctx.Stderr, fmt.Sprintf("statement %s", filepath.Base(cmd.File.Filename)))
	defer finish()

	result, err := loadOrReport(runCtx, &cmd.File, ctx.Stderr)
	if err != nil {
		return err
	}

	account := cmd.Account
	if account == "" {
		names := result.Ledger.Accounts().SortedNames()
		if len(names) == 0 {
			return fmt.Errorf("%s defines no accounts", cmd.File.Filename)
		}

		// stdin already carries the document when reading from "-".
		if cmd.File.IsStdin() || !stdinIsTerminal() {
			return fmt.Errorf("no account given, expected one of: %s", strings.Join(names, ", "))
		}

		account, err = promptAccount(names)
		if err != nil {
			return err
		}
	}

	stmt, err := report.Statement(result.Ledger, account)
	if err != nil {
		return err
	}

	writer, err := newReportWriter(ctx.Stdout, cmd.Format)
	if err != nil {
		return err
	}

	return writer.WriteStatement(stmt)
}

// promptAccount asks the user to pick one of the account names.
var promptAccount = func(names []string) (string, error) {
	var account string

	form := huh.NewSelect[string]().
		Title("Account").
		Options(huh.NewOptions(names...)...).
		Height(min(len(names)+2, 15)).
		Value(&account)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to read account: %w", err)
	}

	return account, nil
}
