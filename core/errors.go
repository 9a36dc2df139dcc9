// Package core holds error types shared across the gridsat module.
package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a gridsat error the way the solver's error-handling
// design distinguishes structural misuse from an internal invariant
// violation.
type Kind int

const (
	// KindStructural marks a programmer error in puzzle or rule
	// construction: a bad coordinate, a state claimed by two exclusivity
	// groups, an at-most-k with k too large, emitting clauses before
	// registration.
	KindStructural Kind = iota
	// KindInvariant marks a bug in the solver itself. The solver raises
	// it when a substitution step is left with no literals to apply; it
	// does not compare the formula before and after a backtrack.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error is the error type raised by rule compilation and by the
// solver's internal consistency check in Engine.substitute.
type Error struct {
	Kind    Kind
	System  string
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gridsat: %s error in %s.%s: %s", e.Kind, e.System, e.Op, e.Message)
}

// NewStructuralError reports a misuse of the rule/board API.
func NewStructuralError(system, op, message string) error {
	return errors.WithStack(&Error{Kind: KindStructural, System: system, Op: op, Message: message})
}

// NewInvariantError reports a bug inside the solver core.
func NewInvariantError(system, op, message string) error {
	return errors.WithStack(&Error{Kind: KindInvariant, System: system, Op: op, Message: message})
}

// IsStructural reports whether err (or a wrapped cause) is a structural error.
func IsStructural(err error) bool {
	return hasKind(err, KindStructural)
}

// IsInvariant reports whether err (or a wrapped cause) is an invariant violation.
func IsInvariant(err error) bool {
	return hasKind(err, KindInvariant)
}

func hasKind(err error, k Kind) bool {
	var e *Error
	for err != nil {
		if ce, ok := err.(*Error); ok {
			e = ce
			break
		}
		causer, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = causer.Cause()
	}
	return e != nil && e.Kind == k
}
