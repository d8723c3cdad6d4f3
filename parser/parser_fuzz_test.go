package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/robinvdvleuten/zaster/ast"
)

func FuzzParser(f *testing.F) {
	// Seed corpus with representative valid and broken inputs
	seeds := []string{
		flatDocument,
		`<zaster><account name="A"/><account name="B" parent="A"/></zaster>`,
		`<transaction id="1" date="2016-02-16" amount="10.00" from="A" to="B" comment="x"/>`,
		`<?xml version="1.0" encoding="ISO-8859-1"?><zaster><account name="Caf` + "\xe9" + `"/></zaster>`,

		// Edge cases
		"",
		"  \n\n  \n",
		"<zaster>",
		"</zaster>",
		`<account name="A`,
		`<account name='A' name='B'/>`,
		"<!-- comment --><zaster/>",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		var last ast.Position
		err := ParseString(context.Background(), "fuzz.xml", input, HandlerFunc(func(_ context.Context, el ast.Element) error {
			if el.Pos.Line < last.Line {
				t.Fatalf("positions went backwards: %s after %s", el.Pos, last)
			}
			last = el.Pos
			return nil
		}))

		if err != nil {
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		}
	})
}
