// Package fault defines the error taxonomy shared by the accounting packages.
//
// Every business failure is a *Error carrying a Kind and a stable Code. Packages
// declare their sentinels with New and attach details with fmt.Errorf("%w: ...").
// Callers match either the sentinel itself or the whole kind:
//
//	errors.Is(err, journal.ErrUnbalancedEntry) // exact failure
//	errors.Is(err, fault.Balance)              // any balance failure
package fault

import "errors"

// Kind classifies a failure by how the caller should react to it.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindStateConflict Kind = "state_conflict"
	KindReferential   Kind = "referential"
	KindBalance       Kind = "balance"
	KindInUse         Kind = "in_use"
	KindNotFound      Kind = "not_found"
)

// Error is a rejected operation. It is never a process-level failure.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches another *Error by code, or by kind when the target has no code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Code == "" {
		return t.Kind == e.Kind
	}

	return t.Code == e.Code
}

// New declares a sentinel error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Kind sentinels, for matching a whole class of failures.
var (
	Validation    = &Error{Kind: KindValidation, Message: "validation error"}
	StateConflict = &Error{Kind: KindStateConflict, Message: "state conflict"}
	Referential   = &Error{Kind: KindReferential, Message: "referential error"}
	Balance       = &Error{Kind: KindBalance, Message: "balance error"}
	InUse         = &Error{Kind: KindInUse, Message: "conflict: in use"}
	NotFound      = &Error{Kind: KindNotFound, Message: "not found"}
)

// As returns the first *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}

	return nil, false
}
