// Package parser reads zaster XML documents and emits their elements, in document order,
// to a Handler. It performs no validation beyond XML well-formedness: interpreting account
// and transaction elements is the job of the handler (usually a *ledger.Ledger).
//
// A document looks like:
//
//	<?xml version="1.0"?>
//	<zaster>
//	  <accounts>
//	    <account name="Household" />
//	    <account name="Cash" parent="Household" />
//	  </accounts>
//	  <transactions>
//	    <transaction id="1" date="2016-02-16" amount="10.00" from="Cash" to="Groceries" comment="market" />
//	  </transactions>
//	</zaster>
//
// Every start element is delivered, including container elements such as <zaster> and
// <accounts>; handlers ignore kinds they do not know.
package parser

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/robinvdvleuten/zaster/ast"
)

// Handler receives elements in document order. Returning an error stops parsing and the
// error is returned from Parse unchanged.
type Handler interface {
	HandleElement(ctx context.Context, el ast.Element) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, el ast.Element) error

// HandleElement calls f(ctx, el).
func (f HandlerFunc) HandleElement(ctx context.Context, el ast.Element) error {
	return f(ctx, el)
}

// uniqueAttrs are attributes whose values rarely repeat and are not worth interning.
var uniqueAttrs = map[string]bool{"id": true, "comment": true}

// Parse streams the XML document from r and delivers each start element to h.
//
// Names are matched literally, prefix included: <x:account> has kind "x:account" and is
// not an account. A default namespace declaration does not change element kinds.
func Parse(ctx context.Context, r io.Reader, filename string, h Handler) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	interner := NewInterner(256)

	// Tokens are read raw, so element nesting is checked here.
	var open []string

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// The decoder position before reading a token is where that token starts.
		line, column := dec.InputPos()
		offset := int(dec.InputOffset())

		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			if len(open) > 0 {
				return syntaxError(filename, dec, "unexpected EOF")
			}
			return nil
		}
		if err != nil {
			return NewParseError(filename, err)
		}

		var start xml.StartElement
		switch t := tok.(type) {
		case xml.StartElement:
			start = t
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(open) == 0 {
				return syntaxError(filename, dec, "unexpected end element </"+name+">")
			}
			if top := open[len(open)-1]; top != name {
				return syntaxError(filename, dec, "element <"+top+"> closed by </"+name+">")
			}
			open = open[:len(open)-1]
			continue
		default:
			continue
		}

		el := ast.Element{
			Kind:  interner.Intern(qualifiedName(start.Name)),
			Attrs: make(ast.Attributes, len(start.Attr)),
			Pos: ast.Position{
				Filename: filename,
				Offset:   offset,
				Line:     line,
				Column:   column,
			},
		}
		open = append(open, el.Kind)

		for _, attr := range start.Attr {
			name, value := interner.Intern(qualifiedName(attr.Name)), attr.Value
			if _, dup := el.Attrs[name]; dup {
				return &ParseError{
					Pos:     el.Pos,
					Message: fmt.Sprintf("duplicate attribute %s on <%s>", name, el.Kind),
				}
			}
			if !uniqueAttrs[name] {
				value = interner.Intern(value)
			}
			el.Attrs[name] = value
		}

		if err := h.HandleElement(ctx, el); err != nil {
			return err
		}
	}
}

// qualifiedName joins a raw name with its prefix, if any.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// syntaxError reports a nesting failure at the current decoder line.
func syntaxError(filename string, dec *xml.Decoder, msg string) *ParseError {
	line, _ := dec.InputPos()
	return NewParseError(filename, &xml.SyntaxError{Msg: msg, Line: line})
}

// ParseBytes parses an in-memory document.
func ParseBytes(ctx context.Context, filename string, data []byte, h Handler) error {
	return Parse(ctx, bytes.NewReader(data), filename, h)
}

// ParseString parses a document held in a string.
func ParseString(ctx context.Context, filename, data string, h Handler) error {
	return Parse(ctx, strings.NewReader(data), filename, h)
}

// Collect parses a document and returns all of its elements.
func Collect(ctx context.Context, filename string, data []byte) ([]ast.Element, error) {
	var elements []ast.Element
	err := ParseBytes(ctx, filename, data, HandlerFunc(func(_ context.Context, el ast.Element) error {
		elements = append(elements, el)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return elements, nil
}

// MustCollect is like Collect but panics on error.
func MustCollect(ctx context.Context, data string) []ast.Element {
	elements, err := Collect(ctx, "", []byte(data))
	if err != nil {
		panic(err)
	}
	return elements
}

// charsetReader decodes documents that declare a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported document encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported document encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
