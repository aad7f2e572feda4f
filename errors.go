package prefixarg

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failures. Every failure aborts the parse; use errors.Is to test
// for a kind and errors.As with *ArgumentError for the details.
var (
	ErrUnrecognizedArgument    = errors.New("unrecognised argument")
	ErrAmbiguousArgument       = errors.New("ambiguous argument")
	ErrMissingPositionalSlot   = errors.New("no field for positional argument")
	ErrRequiredArgumentMissing = errors.New("required argument missing")
	ErrTypeConversion          = errors.New("type conversion failed")
)

// Programmer errors, returned before any token is looked at.
var (
	ErrInvalidTarget = errors.New("arg must be ptr to struct")
	ErrInvalidSchema = errors.New("invalid schema")
)

// ArgumentError describes why a parse failed.
type ArgumentError struct {
	Kind error // one of the Err* parse failures above

	Key        string   // key as typed, without the leading "-"
	Field      string   // field name, if one was involved
	Value      string   // raw value, if one was involved
	Candidates []string // matching fields, ErrAmbiguousArgument only

	Err error // underlying cause, ErrTypeConversion only
}

func (e *ArgumentError) Error() string {
	switch e.Kind {
	case ErrUnrecognizedArgument:
		return fmt.Sprintf("unrecognised argument: -%s", e.Key)

	case ErrAmbiguousArgument:
		return fmt.Sprintf("multiple arguments matched with -%s (%s); "+
			"add more of the argument name so that it matches just one argument",
			e.Key, strings.Join(e.Candidates, ", "))

	case ErrMissingPositionalSlot:
		return fmt.Sprintf("no field left for positional argument %q", e.Value)

	case ErrRequiredArgumentMissing:
		return fmt.Sprintf("value for required argument %s has not been supplied", e.Field)

	case ErrTypeConversion:
		return fmt.Sprintf("invalid value %q for argument %s: %v", e.Value, e.Field, e.Err)

	default:
		return fmt.Sprintf("argument error: %v", e.Kind)
	}
}

// Is reports whether target is the failure kind of e.
func (e *ArgumentError) Is(target error) bool { return target == e.Kind }

func (e *ArgumentError) Unwrap() error { return e.Err }

// ExitCode returns 2, the conventional exit status for usage errors.
func (e *ArgumentError) ExitCode() int { return 2 }
