// Package loader reads zaster documents from disk or memory and ingests them into a fresh
// ledger. Every load produces an independent ledger; nothing is shared between loads.
//
// Example usage:
//
//	ldr := loader.New()
//	result, err := ldr.Load(ctx, "books.xml")
//	if err != nil {
//	    return err
//	}
//	acc, _ := result.Ledger.GetAccount("Household")
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/robinvdvleuten/zaster/ast"
	"github.com/robinvdvleuten/zaster/ledger"
	"github.com/robinvdvleuten/zaster/parser"
	"github.com/robinvdvleuten/zaster/telemetry"
)

// StdinFilename is the display name used for documents read from standard input.
const StdinFilename = "<stdin>"

// Loader reads and ingests zaster documents.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithTraceElements())
type Loader struct {
	// TraceElements logs every ingested element at trace level.
	TraceElements bool
}

// Option configures how documents are loaded.
type Option func(*Loader)

// WithTraceElements logs each element, with its position, before it is ingested.
func WithTraceElements() Option {
	return func(l *Loader) {
		l.TraceElements = true
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Result is a fully ingested document.
type Result struct {
	Ledger *ledger.Ledger

	// Root is the absolute path of the document, or StdinFilename.
	Root string

	// Source holds the raw document, kept for rendering errors with context.
	Source []byte
}

// Load reads and ingests the named file.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	timer := telemetry.StartTimer(ctx, "loader.read")
	data, err := os.ReadFile(filename)
	timer.End()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	root, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", filename, err)
	}

	return l.LoadBytes(ctx, root, data)
}

// LoadBytes ingests an in-memory document. The filename is used for positions in errors.
// Ledger and parse errors are returned unwrapped.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("loader.ingest %s", filepath.Base(filename)))
	defer timer.End()

	led := ledger.New()

	var handler parser.Handler = led
	if l.TraceElements {
		handler = parser.HandlerFunc(func(ctx context.Context, el ast.Element) error {
			logger.Trace().
				Str("kind", el.Kind).
				Str("pos", el.Pos.String()).
				Strs("attrs", el.Attrs.Names()).
				Msg("element")
			return led.HandleElement(ctx, el)
		})
	}

	if err := parser.ParseBytes(ctx, filename, data, handler); err != nil {
		logger.Debug().Err(err).Str("file", filename).Msg("ingestion failed")
		return nil, err
	}

	logger.Debug().
		Str("file", filename).
		Int("accounts", led.Accounts().Len()).
		Int("transactions", led.Transactions().Len()).
		Msg("ledger loaded")

	return &Result{
		Ledger: led,
		Root:   filename,
		Source: data,
	}, nil
}
