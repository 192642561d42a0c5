package voxpdf

import (
	"context"

	"github.com/tsawler/voxpdf/layout"
	"github.com/tsawler/voxpdf/model"
)

// Event is one step of a Stream. Exactly one of Paragraphs, Err or Done is
// meaningful.
type Event struct {
	Page       int
	Paragraphs []model.Paragraph
	Err        error
	Done       bool
}

// Stream extracts paragraphs from pages first through last (inclusive,
// zero-indexed) of the document at path, one event per page in order,
// followed by a final Done event. A page that fails produces an event with
// Err set and streaming continues with the next page. If the document cannot
// be opened, a single error event is sent before Done.
//
// The channel is closed after the Done event, or as soon as ctx is
// cancelled.
func Stream(ctx context.Context, path string, first, last int, opts ...Option) <-chan Event {
	o := buildOptions(opts)
	events := make(chan Event)

	go func() {
		defer close(events)

		send := func(ev Event) bool {
			select {
			case events <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		doc, err := open(o.engineFor(), path, o)
		if err != nil {
			if send(Event{Page: first, Err: err}) {
				send(Event{Done: true})
			}
			return
		}
		defer doc.Close()

		for page := first; page <= last; page++ {
			if ctx.Err() != nil {
				return
			}

			paragraphs, err := doc.Paragraphs(page)
			if err == nil && o.reassemble {
				paragraphs = layout.Reassemble(paragraphs)
			}
			if !send(Event{Page: page, Paragraphs: paragraphs, Err: err}) {
				return
			}
		}

		send(Event{Page: last, Done: true})
	}()

	return events
}
