// Large Ledger File Generator
//
// This tool generates a large zaster ledger for performance testing and profiling.
// It creates a nested account hierarchy and random transfers between its accounts.
//
// Usage:
//
//	go run main.go > large.xml
//	go run main.go --size 20000000 > large.xml  # Specify target size in bytes
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
)

var (
	accountTree = map[string][]string{
		"Assets":      {"Bank", "Brokerage", "Cash"},
		"Liabilities": {"CreditCard", "Mortgage"},
		"Income":      {"Salary", "Investments"},
		"Expenses":    {"Food", "Housing", "Transport", "Shopping", "Healthcare", "Taxes"},
		"Equity":      {"Opening"},
	}

	leaves = []string{"Main", "Savings", "Joint", "Other"}

	comments = []string{
		"",
		"Groceries",
		"Monthly rent",
		"Coffee & cake",
		"Salary payment",
		"Dividend",
		"Refund",
		"Train ticket",
	}

	// Top-level order keeps output stable for a given seed.
	roots = []string{"Assets", "Liabilities", "Income", "Expenses", "Equity"}
)

var cli struct {
	Size  int64  `help:"Target size of the generated file in bytes." default:"10485760"`
	Seed  int64  `help:"Random seed; 0 uses the current time." default:"0"`
	Start string `help:"Date of the first transaction." default:"2015-01-01"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("generate_large_file"),
		kong.Description("Generate a large zaster ledger for benchmarking."),
	)

	start, err := time.Parse("2006-01-02", cli.Start)
	ctx.FatalIfErrorf(err)

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := bufio.NewWriter(os.Stdout)
	written, count, err := generate(w, rand.New(rand.NewSource(seed)), start, cli.Size)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(w.Flush())

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d transactions\n", written, count)
}

// countingWriter tracks how many bytes were written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func generate(w io.Writer, rng *rand.Rand, date time.Time, targetSize int64) (int64, int, error) {
	cw := &countingWriter{w: w}

	fmt.Fprintln(cw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintln(cw, "<zaster>")
	fmt.Fprintln(cw, "  <accounts>")

	var accounts []string
	for _, root := range roots {
		fmt.Fprintf(cw, "    <account name=%s/>\n", attr(root))
		accounts = append(accounts, root)

		for _, group := range accountTree[root] {
			groupName := root + ":" + group
			fmt.Fprintf(cw, "    <account name=%s parent=%s/>\n", attr(groupName), attr(root))
			accounts = append(accounts, groupName)

			for _, leaf := range leaves {
				leafName := groupName + ":" + leaf
				fmt.Fprintf(cw, "    <account name=%s parent=%s/>\n", attr(leafName), attr(groupName))
				accounts = append(accounts, leafName)
			}
		}
	}

	fmt.Fprintln(cw, "  </accounts>")
	fmt.Fprintln(cw, "  <transactions>")

	count := 0
	for cw.n < targetSize {
		count++

		from := accounts[rng.Intn(len(accounts))]
		to := accounts[rng.Intn(len(accounts))]
		amount := decimal.New(rng.Int63n(500000)+1, -2)

		fmt.Fprintf(cw, "    <transaction id=\"%d\" date=\"%s\" amount=\"%s\" from=%s to=%s",
			count, date.Format("2006-01-02"), amount.StringFixed(2), attr(from), attr(to))
		if comment := comments[rng.Intn(len(comments))]; comment != "" {
			fmt.Fprintf(cw, " comment=%s", attr(comment))
		}
		fmt.Fprintln(cw, "/>")

		if rng.Intn(4) == 0 {
			date = date.AddDate(0, 0, 1)
		}
	}

	fmt.Fprintln(cw, "  </transactions>")
	_, err := fmt.Fprintln(cw, "</zaster>")

	return cw.n, count, err
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// attr quotes s as an XML attribute value.
func attr(s string) string {
	return `"` + attrEscaper.Replace(s) + `"`
}
