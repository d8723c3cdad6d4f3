package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/zaster/output"
)

// Format selects how reports are rendered.
type Format string

const (
	// FormatCSV renders semicolon separated values with a header line.
	FormatCSV Format = "csv"

	// FormatTable renders aligned columns with account names indented by depth.
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatCSV, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q, expected csv or table", name)
	}
}

// Writer renders reports to an io.Writer.
type Writer struct {
	w         io.Writer
	format    Format
	precision int32
	indent    int
	styles    *output.Styles
}

// Option configures a Writer.
type Option func(*Writer)

// WithFormat sets the output format. Default: FormatCSV.
func WithFormat(format Format) Option {
	return func(wr *Writer) {
		wr.format = format
	}
}

// WithPrecision sets the number of decimal places for amounts. Default: 2.
func WithPrecision(places int32) Option {
	return func(wr *Writer) {
		wr.precision = places
	}
}

// WithIndentation sets the per-depth indentation of account names in tables. Default: 2.
func WithIndentation(spaces int) Option {
	return func(wr *Writer) {
		wr.indent = spaces
	}
}

// WithStyles colors table amounts by sign.
func WithStyles(styles *output.Styles) Option {
	return func(wr *Writer) {
		wr.styles = styles
	}
}

// NewWriter creates a report writer.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	wr := &Writer{
		w:         w,
		format:    FormatCSV,
		precision: 2,
		indent:    2,
	}
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

// WriteBalances renders a balance summary.
func (wr *Writer) WriteBalances(rows []BalanceRow) error {
	header := []string{"ACCOUNT", "TOTAL OUT", "TOTAL IN", "BALANCE"}

	records := make([][]cell, 0, len(rows))
	for _, row := range rows {
		records = append(records, []cell{
			{text: wr.accountName(row.Account, row.Depth), account: true},
			wr.amount(row.TotalOut, false),
			wr.amount(row.TotalIn, false),
			wr.amount(row.Balance, true),
		})
	}

	return wr.write(header, records)
}

// noComment marks a CSV statement line whose transaction has no comment attribute.
const noComment = "None"

// WriteStatement renders the statement of one account.
func (wr *Writer) WriteStatement(stmt *AccountStatement) error {
	if _, err := fmt.Fprintf(wr.w, "Statement for account: %s\n", stmt.Account); err != nil {
		return err
	}

	header := []string{"TRANSACTION", "DATE", "OUT", "IN", "BALANCE", "COMMENT"}

	records := make([][]cell, 0, len(stmt.Lines))
	for _, line := range stmt.Lines {
		id, comment := line.ID, line.Comment
		if wr.format == FormatCSV {
			id = "(" + id + ")"
			if !line.HasComment {
				comment = noComment
			}
		}
		records = append(records, []cell{
			{text: id},
			{text: line.Date},
			wr.amount(line.Out, false),
			wr.amount(line.In, false),
			wr.amount(line.Balance, true),
			{text: comment},
		})
	}

	return wr.write(header, records)
}

// cell is a rendered value. Numeric cells are right aligned in tables.
type cell struct {
	text    string
	numeric bool
	account bool
	sign    int
}

func (wr *Writer) amount(d decimal.Decimal, signed bool) cell {
	c := cell{text: d.StringFixed(wr.precision), numeric: true}
	if signed {
		c.sign = d.Sign()
	}
	return c
}

func (wr *Writer) accountName(name string, depth int) string {
	if wr.format != FormatTable {
		return name
	}
	return strings.Repeat(" ", depth*wr.indent) + name
}

func (wr *Writer) write(header []string, records [][]cell) error {
	if wr.format == FormatTable {
		return wr.writeTable(header, records)
	}
	return wr.writeCSV(header, records)
}

func (wr *Writer) writeCSV(header []string, records [][]cell) error {
	if _, err := fmt.Fprintln(wr.w, strings.Join(header, ";")); err != nil {
		return err
	}

	fields := make([]string, len(header))
	for _, record := range records {
		for i, c := range record {
			fields[i] = c.text
		}
		if _, err := fmt.Fprintln(wr.w, strings.Join(fields, ";")); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeTable(header []string, records [][]cell) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, record := range records {
		for i, c := range record {
			widths[i] = max(widths[i], runewidth.StringWidth(c.text))
		}
	}

	headerCells := make([]cell, len(header))
	for i, h := range header {
		headerCells[i] = cell{text: h, numeric: len(records) > 0 && records[0][i].numeric}
	}
	if err := wr.writeRow(headerCells, widths, true); err != nil {
		return err
	}

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(wr.w, strings.Join(rule, "  ")); err != nil {
		return err
	}

	for _, record := range records {
		if err := wr.writeRow(record, widths, false); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeRow(cells []cell, widths []int, isHeader bool) error {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteString("  ")
		}

		var padded string
		if c.numeric {
			padded = runewidth.FillLeft(c.text, widths[i])
		} else if i == len(cells)-1 {
			padded = c.text // no trailing padding on the last column
		} else {
			padded = runewidth.FillRight(c.text, widths[i])
		}

		if wr.styles != nil {
			switch {
			case isHeader:
				padded = wr.styles.Keyword(padded)
			case c.account:
				padded = wr.styles.Account(padded)
			case c.numeric && c.sign != 0:
				padded = wr.styles.Amount(padded, c.sign)
			}
		}
		b.WriteString(padded)
	}

	_, err := fmt.Fprintln(wr.w, strings.TrimRight(b.String(), " "))
	return err
}
