package voxpdf

import (
	"io"
	"log/slog"
	"sync"

	"github.com/tsawler/voxpdf/engine"
)

// sharedPDF is the engine behind Open. Its handle registry is safe for
// concurrent use.
var sharedPDF = sync.OnceValue(func() *engine.PDF {
	return engine.NewPDF()
})

// Option configures how a Document is opened
type Option func(*options)

// options holds configuration for opening a document.
type options struct {
	logger *slog.Logger

	// engine is used by the path-based helpers (ExtractPages, Stream)
	engine engine.Engine

	// newEngine creates a fresh engine when engine is nil
	newEngine func() engine.Engine

	// reassemble joins hyphenated words in ExtractPages and Stream results
	reassemble bool
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		newEngine:  func() engine.Engine { return sharedPDF() },
		reassemble: true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// engineFor returns the configured engine, creating one when none was given
func (o options) engineFor() engine.Engine {
	if o.engine != nil {
		return o.engine
	}
	return o.newEngine()
}

// WithLogger sets the logger used for lifecycle and failure events.
// Library code logs at debug level only.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEngine makes ExtractPages and Stream use e instead of the default PDF
// engine. Ignored by OpenWithEngine, which takes its engine explicitly.
func WithEngine(e engine.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithHyphenation controls whether ExtractPages and Stream join words
// hyphenated across line breaks. Enabled by default.
func WithHyphenation(enabled bool) Option {
	return func(o *options) {
		o.reassemble = enabled
	}
}
