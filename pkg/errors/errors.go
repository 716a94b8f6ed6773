package errors

import (
	"fmt"
)

// ForgeError is the interface implemented by all typeforge errors.
type ForgeError interface {
	error // Embed the standard error interface
	// Kind names the error class, e.g. "State", "Argument", "Unsupported".
	Kind() string
	// Op names the operation that failed, e.g. "DefineField".
	Op() string
	// Message returns the specific error message without operation info.
	// This might be useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// StateError reports an operation attempted against a type or body in the
// wrong lifecycle state: mutation after finalization, or definition calls made
// out of the required order.
type StateError struct {
	Operation string
	TypeName  string // Name of the type involved, if any
	Msg       string
	Cause     error // Underlying cause, if any
}

func (e *StateError) Error() string {
	return fmt.Sprintf("State Error in %s on %s: %s", e.Operation, e.TypeName, e.Msg)
}
func (e *StateError) Kind() string    { return "State" }
func (e *StateError) Op() string      { return e.Operation }
func (e *StateError) Message() string { return e.Msg }
func (e *StateError) Unwrap() error   { return e.Cause }
func (e *StateError) CausedBy(cause error) *StateError {
	e.Cause = cause
	return e
}

// ArgumentError reports caller-supplied inputs that are structurally
// impossible: conflicting attribute combinations, malformed names, or
// mismatched resolution requests.
type ArgumentError struct {
	Operation string
	TypeName  string
	Msg       string
	Cause     error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Argument Error in %s on %s: %s", e.Operation, e.TypeName, e.Msg)
}
func (e *ArgumentError) Kind() string    { return "Argument" }
func (e *ArgumentError) Op() string      { return e.Operation }
func (e *ArgumentError) Message() string { return e.Msg }
func (e *ArgumentError) Unwrap() error   { return e.Cause }
func (e *ArgumentError) CausedBy(cause error) *ArgumentError {
	e.Cause = cause
	return e
}

// UnsupportedError reports a request that is syntactically well-formed but
// impossible against the current type graph, such as synthesizing a
// constructor on an interface or against an unfinalized parent.
type UnsupportedError struct {
	Operation string
	TypeName  string
	Msg       string
	Cause     error
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("Unsupported Error in %s on %s: %s", e.Operation, e.TypeName, e.Msg)
}
func (e *UnsupportedError) Kind() string    { return "Unsupported" }
func (e *UnsupportedError) Op() string      { return e.Operation }
func (e *UnsupportedError) Message() string { return e.Msg }
func (e *UnsupportedError) Unwrap() error   { return e.Cause }
func (e *UnsupportedError) CausedBy(cause error) *UnsupportedError {
	e.Cause = cause
	return e
}

// --- Helpers for creating errors ---

func NewState(op, typeName, msg string) *StateError {
	return &StateError{Operation: op, TypeName: typeName, Msg: msg}
}

func NewArgument(op, typeName, msg string) *ArgumentError {
	return &ArgumentError{Operation: op, TypeName: typeName, Msg: msg}
}

func NewUnsupported(op, typeName, msg string) *UnsupportedError {
	return &UnsupportedError{Operation: op, TypeName: typeName, Msg: msg}
}
