package models

import "fmt"

// SchemaErrorKind distinguishes structural invariant violations from
// unsupported per-column configurations detected at generation time.
type SchemaErrorKind string

const (
	SchemaErrorStructural  SchemaErrorKind = "structural"
	SchemaErrorUnsupported SchemaErrorKind = "unsupported"
)

// SchemaError reports an invalid or unsupported schema.
type SchemaError struct {
	Kind   SchemaErrorKind
	Column string
	Msg    string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema error (%s): column %q: %s", e.Kind, e.Column, e.Msg)
	}
	return fmt.Sprintf("schema error (%s): %s", e.Kind, e.Msg)
}

// InvalidArgumentError reports a caller-supplied argument outside the
// operation's domain, such as a non-positive row count.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Msg
}

// StorageError wraps a storage-engine failure. No retry is attempted by
// this package; retry policy is a caller concern.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
