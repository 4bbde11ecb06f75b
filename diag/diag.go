// Package diag implements the front-end's diagnostic reporting.
//
// Every user-visible error is fatal: the first call to Errorf unwinds the
// current Resolve (or Eval) invocation via panic/recover, mirroring
// core/text/parse's Error/ErrorList/AbortParse pattern but specialized to a
// single-error cap rather than gapid's accumulate-many-errors discipline,
// per the front-end's "stop at first error" policy.
package diag

import (
	"fmt"
)

// Location is a source position: file path, line, column. Immutable.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.File == "" {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Kind names one of the front-end's fixed error categories.
type Kind string

const (
	SyntaxError             = Kind("SyntaxError")
	UndeclaredIdentifier    = Kind("UndeclaredIdentifierError")
	Redeclaration           = Kind("RedeclarationError")
	TypeMismatch            = Kind("TypeMismatchError")
	Range                   = Kind("RangeError")
	DivideByZero            = Kind("DivideByZeroError")
	Cast                    = Kind("CastError")
	Unsized                 = Kind("UnsizedError")
	Lvalue                  = Kind("LvalueError")
	NotConstant             = Kind("NotConstantError")
	Template                = Kind("TemplateError")
	CircularImport          = Kind("CircularImportError")
	Internal                = Kind("InternalError")
)

// Error is a single fatal diagnostic.
type Error struct {
	Kind    Kind
	At      Location
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.At, e.Kind, e.Message)
}

// abort is the sentinel panicked with to unwind a Resolve/Eval call once its
// one permitted diagnostic has been recorded. Recovered at the package's
// entry point (resolver.Resolve, eval.Eval).
type abort struct{ err *Error }

// List accumulates at most one Error, per the front-end's fatal-on-first
// policy (see §7 of the front-end's error-handling design).
type List struct {
	first *Error
}

// Add records err as the list's first diagnostic if none has been recorded
// yet, then panics with the abort sentinel so that the caller's Resolve or
// Eval invocation unwinds to its recover point. A second diagnostic raised
// after the first is never reachable in practice, since everything that can
// call Add does so by way of a helper that panics immediately after; the
// guard exists so List itself stays safe to reuse.
func (l *List) Add(err *Error) {
	if l.first == nil {
		l.first = err
	}
	panic(abort{err: l.first})
}

// First returns the recorded diagnostic, or nil if none was raised.
func (l *List) First() *Error {
	return l.first
}

// Recover must be deferred at the top of any function that calls Add
// (directly, or transitively through Errorf/Fatalf helpers below). On a
// normal return it does nothing; if the abort sentinel is in flight it
// recovers it and reports the carried error through *outErr, leaving any
// other panic to propagate unchanged.
func Recover(outErr **Error) {
	if r := recover(); r != nil {
		if a, ok := r.(abort); ok {
			*outErr = a.err
			return
		}
		panic(r)
	}
}

// Errorf raises a fatal diagnostic of the given kind at loc, formatting msg
// with args as fmt.Sprintf would. It never returns: it always panics with
// the abort sentinel, to be caught by a deferred Recover.
func Errorf(l *List, kind Kind, loc Location, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.Add(&Error{Kind: kind, At: loc, Message: msg})
}

// ICEf raises an InternalError: an invariant the resolver itself is
// responsible for maintaining was violated. Reachable only from a bug in
// this front-end, never from malformed user input.
func ICEf(l *List, loc Location, msg string, args ...interface{}) {
	Errorf(l, Internal, loc, msg, args...)
}
