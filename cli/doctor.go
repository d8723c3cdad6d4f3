package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/zaster/ast"
	"github.com/robinvdvleuten/zaster/ledger"
	"github.com/robinvdvleuten/zaster/parser"
)

// DoctorCmd provides doctor utilities for debugging ledger files.
type DoctorCmd struct {
	Events   EventsCmd   `cmd:"" help:"Show the element events read from a ledger file."`
	Accounts AccountsCmd `cmd:"" help:"Show the account hierarchy of a ledger file."`
}

// EventsCmd shows the element events the parser delivers, in document order.
type EventsCmd struct {
	File FileOrStdin `help:"Ledger XML file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Repr bool        `help:"Dump events as Go values."`
}

// Run executes the events command.
func (cmd *EventsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	runCtx, finish := runContext(globals, ctx.Stderr, "doctor events")
	defer finish()

	elements, err := parser.Collect(runCtx, cmd.File.Filename, content)
	if err != nil {
		return err
	}

	if cmd.Repr {
		printer := repr.New(ctx.Stdout, repr.Indent("  "), repr.OmitEmpty(true))
		for _, el := range elements {
			printer.Println(el)
		}
		return nil
	}

	// Format: KIND line:col name="value" ...
	for _, el := range elements {
		writeEvent(ctx.Stdout, el)
	}

	return nil
}

func writeEvent(w io.Writer, el ast.Element) {
	attrs := make([]string, 0, len(el.Attrs))
	for _, name := range el.Attrs.Names() {
		attrs = append(attrs, fmt.Sprintf("%s=%q", name, el.Attrs.Get(name)))
	}

	_, _ = fmt.Fprintf(w, "%-12s %d:%d    %s\n",
		el.Kind,
		el.Pos.Line,
		el.Pos.Column,
		strings.Join(attrs, " "))
}

// AccountsCmd prints the account forest of a valid ledger.
type AccountsCmd struct {
	File FileOrStdin `help:"Ledger XML file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the accounts command.
func (cmd *AccountsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, finish := runContext(globals, ctx.Stderr, "doctor accounts")
	defer finish()

	result, err := loadOrReport(runCtx, &cmd.File, ctx.Stderr)
	if err != nil {
		return err
	}

	writeAccountTree(ctx.Stdout, result.Ledger.Accounts())
	return nil
}

func writeAccountTree(w io.Writer, registry *ledger.Registry) {
	var walk func(acc *ledger.Account, prefix string, isLast bool, isRoot bool)
	walk = func(acc *ledger.Account, prefix string, isLast bool, isRoot bool) {
		connector, childPrefix := "", ""
		if !isRoot {
			connector = "├── "
			childPrefix = prefix + "│   "
			if isLast {
				connector = "└── "
				childPrefix = prefix + "    "
			}
		}

		_, _ = fmt.Fprintf(w, "%s%s%s  %s\n", prefix, connector, acc.Name, acc.Balance.StringFixed(2))

		children := registry.Children(acc.Name)
		for i, child := range children {
			walk(child, childPrefix, i == len(children)-1, false)
		}
	}

	for _, root := range registry.Roots() {
		walk(root, "", true, true)
	}
}
