package models

import "errors"

// Stable error codes reported inside an Err result.
const (
	// CodeMissingIP is reported when the client ip is empty.
	CodeMissingIP = "1"
	// CodeMissingName is reported when the client name is empty.
	CodeMissingName = "2"
	// CodeIPNotAllowed is reported when the client ip is not in the allowlist.
	CodeIPNotAllowed = "3"
	// CodeNodeNotFound is reported when a requested node is unknown to the source.
	CodeNodeNotFound = "4"
	// CodeSourceUnavailable is reported when the source failed to resolve a configuration.
	CodeSourceUnavailable = "5"
)

// ErrUnknownRunningMode is returned when a mode name or ordinal is outside
// the declared set.
var ErrUnknownRunningMode = errors.New("unknown running mode")

// Error is a single structured failure. Code is a stable identifier, Message
// is human readable.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is a closed sum type: every value is either an [Ok] or an [Err].
// The unexported marker method keeps other packages from adding variants.
type Result[T any] interface {
	isResult(T)
}

// Ok carries a successfully resolved value.
type Ok[T any] struct {
	Value T
}

func (Ok[T]) isResult(T) {}

// Err carries a non-empty ordered list of errors.
type Err[T any] struct {
	Errors []Error
}

func (Err[T]) isResult(T) {}

// ConfigResult is the outcome of resolving one node configuration.
type ConfigResult = Result[NodeConfig]

// Succeed wraps v into an [Ok] result.
func Succeed[T any](v T) Result[T] {
	return Ok[T]{Value: v}
}

// Fail wraps errs into an [Err] result. It panics when errs is empty because
// an Err without errors is not a valid state.
func Fail[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic("models: Fail requires at least one error")
	}
	return Err[T]{Errors: errs}
}
