package args

import (
	"fmt"
)

// ConfigError wraps errors caused by incorrect declaration or configuration
// of an ArgSet. These are bugs in the code using the library, not user input
// errors, and they abort the operation that raised them.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func newConfigError(format string, a ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, a...)}
}

// DiagnosticKind discriminates the concrete Diagnostic types.
type DiagnosticKind int

const (
	UnrecognizedArgKind DiagnosticKind = iota
	NoValueForKeyKind
	RedefinitionOfKeyKind
	RedefinitionOfUnaryKind
)

// Diagnostic describes one malformed aspect of an invocation. Diagnostics
// are collected during a classification pass and reported in first-occurrence
// order; they are never raised as errors.
type Diagnostic interface {
	Kind() DiagnosticKind
	// Description renders the stable human-readable message for this
	// diagnostic. Wording is part of the contract: identical passes
	// produce identical descriptions.
	Description() string
}

// UnrecognizedArg reports a token that matched no declared argument.
type UnrecognizedArg struct {
	arg string
}

func (d *UnrecognizedArg) Kind() DiagnosticKind { return UnrecognizedArgKind }

// Arg returns the full original token, including any separator and value
// portion it carried.
func (d *UnrecognizedArg) Arg() string { return d.arg }

func (d *UnrecognizedArg) Description() string {
	return fmt.Sprintf("Unrecognized argument: \"%s\".", d.arg)
}

// NoValueForKey reports a keyword argument supplied as the final token, with
// no following token to consume as its value.
type NoValueForKey struct {
	key string
}

func (d *NoValueForKey) Kind() DiagnosticKind { return NoValueForKeyKind }

// Key returns the keyword token as it was typed, which may be an
// abbreviation.
func (d *NoValueForKey) Key() string { return d.key }

func (d *NoValueForKey) Description() string {
	return fmt.Sprintf("No corresponding value for keyword argument \"%s\".", d.key)
}

// RedefinitionOfKey reports a keyword argument that was given a value more
// than once. One diagnostic exists per keyword name per pass; its count
// tracks the total number of definitions.
type RedefinitionOfKey struct {
	key   string
	count int
}

func (d *RedefinitionOfKey) Kind() DiagnosticKind { return RedefinitionOfKeyKind }

// Key returns the canonical (full) keyword name.
func (d *RedefinitionOfKey) Key() string { return d.key }

// Count returns how many times the keyword was defined, starting at 2.
func (d *RedefinitionOfKey) Count() int { return d.count }

func (d *RedefinitionOfKey) Description() string {
	return fmt.Sprintf("Keyword argument \"%s\" has been defined %d times.", d.key, d.count)
}

// RedefinitionOfUnary reports a unary argument supplied more than once.
// Same singleton-per-name semantics as RedefinitionOfKey.
type RedefinitionOfUnary struct {
	unary string
	count int
}

func (d *RedefinitionOfUnary) Kind() DiagnosticKind { return RedefinitionOfUnaryKind }

// Unary returns the canonical (full) unary argument name.
func (d *RedefinitionOfUnary) Unary() string { return d.unary }

// Count returns how many times the unary argument was supplied, starting at 2.
func (d *RedefinitionOfUnary) Count() int { return d.count }

func (d *RedefinitionOfUnary) Description() string {
	return fmt.Sprintf("Unary argument \"%s\" has been defined %d times.", d.unary, d.count)
}
