package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable category for application errors. The CLI maps kinds to
// exit codes.
type Kind string

const (
	InvalidInput Kind = "invalid_input" // bad arguments or flags
	External     Kind = "external"      // the outside world failed us, e.g. stdout closed
	Internal     Kind = "internal"      // programmer bug, invariant broken
)

// E is a chainable error carrying where it happened and what kind it is.
type E struct {
	Op   string // e.g. "pipeline.Print"
	Kind Kind
	Err  error  // wrapped cause
	Msg  string // optional short context
}

func (e *E) Error() string {
	base := e.Msg
	if base == "" && e.Err != nil {
		base = e.Err.Error()
	} else if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	switch {
	case e.Op != "" && base != "":
		return e.Op + ": " + base
	case e.Op != "":
		return e.Op
	default:
		return base
	}
}

func (e *E) Unwrap() error { return e.Err }

// Wrap annotates err with op, kind and a formatted message. Wrap(nil) is nil.
func Wrap(op string, kind Kind, err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	return &E{Op: op, Kind: kind, Err: err, Msg: fmt.Sprintf(msg, args...)}
}

// New creates an E with no wrapped cause.
func New(op string, kind Kind, msg string, args ...any) error {
	return &E{Op: op, Kind: kind, Msg: fmt.Sprintf(msg, args...)}
}

// IsKind reports whether the outermost *E in err's chain has kind k.
func IsKind(err error, k Kind) bool {
	var e *E
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// Message returns the short message of the outermost *E, or err.Error()
// when the chain carries none.
func Message(err error) string {
	var e *E
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
