package voxpdf

import (
	"errors"
	"fmt"

	"github.com/tsawler/voxpdf/engine"
)

// Kind classifies an Error
type Kind int

// Error kinds
const (
	KindInvalidPDF Kind = iota + 1
	KindPageNotFound
	KindIO
	KindOutOfMemory
	KindInvalidText
	KindUnknown
	KindClosed
)

// Sentinel errors for use with errors.Is
var (
	ErrInvalidPDF   = errors.New("invalid PDF")
	ErrPageNotFound = errors.New("page not found")
	ErrIO           = errors.New("I/O error")
	ErrOutOfMemory  = errors.New("out of memory")
	ErrInvalidText  = errors.New("invalid text")
	ErrUnknown      = errors.New("unknown error")
	ErrClosed       = errors.New("document closed")
)

// Error is returned by every Document operation. Context says where the
// failure happened, e.g. "page 3, word 17".
type Error struct {
	Kind    Kind
	Context string

	// Page and TotalPages are set for KindPageNotFound
	Page       int
	TotalPages int

	// Code is the engine status for KindUnknown
	Code engine.Code

	// Err is an underlying cause, if any
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindPageNotFound:
		return fmt.Sprintf("page %d not found (document has %d pages)", e.Page, e.TotalPages)
	case KindOutOfMemory:
		return "out of memory"
	case KindClosed:
		msg = "document closed"
	case KindInvalidPDF:
		msg = "invalid PDF"
	case KindIO:
		msg = "I/O error"
	case KindInvalidText:
		msg = "invalid text"
	default:
		msg = fmt.Sprintf("unknown error (code %d)", int(e.Code))
	}

	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the sentinel for the error's kind
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidPDF:
		return ErrInvalidPDF
	case KindPageNotFound:
		return ErrPageNotFound
	case KindIO:
		return ErrIO
	case KindOutOfMemory:
		return ErrOutOfMemory
	case KindInvalidText:
		return ErrInvalidText
	case KindClosed:
		return ErrClosed
	default:
		return ErrUnknown
	}
}

// translate converts an engine status into an error. It returns nil for
// engine.OK. page and totalPages are only used for engine.PageNotFound.
func translate(code engine.Code, context string, page, totalPages int) error {
	switch code {
	case engine.OK:
		return nil
	case engine.InvalidPDF:
		return &Error{Kind: KindInvalidPDF, Context: context, Code: code}
	case engine.PageNotFound:
		return &Error{Kind: KindPageNotFound, Context: context, Page: page, TotalPages: totalPages, Code: code}
	case engine.IOError:
		return &Error{Kind: KindIO, Context: context, Code: code}
	case engine.OutOfMemory:
		return &Error{Kind: KindOutOfMemory, Context: context, Code: code}
	case engine.InvalidText:
		return &Error{Kind: KindInvalidText, Context: context, Code: code}
	default:
		return &Error{Kind: KindUnknown, Context: context, Code: code}
	}
}
