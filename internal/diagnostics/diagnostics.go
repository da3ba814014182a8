// Package diagnostics defines the code-tagged error/warning record shared by
// every design engine. Domain conditions are reported as data, never thrown.
package diagnostics

import (
	"fmt"
	"strings"
)

// Severity classifies a DesignError.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DesignError is a single diagnostic produced by a design stage.
type DesignError struct {
	Code     string   `json:"code" yaml:"code"`
	Severity Severity `json:"severity" yaml:"severity"`
	Field    string   `json:"field,omitempty" yaml:"field,omitempty"`
	Message  string   `json:"message" yaml:"message"`
	Hint     string   `json:"hint,omitempty" yaml:"hint,omitempty"`
	Clause   string   `json:"clause,omitempty" yaml:"clause,omitempty"`
}

// Error implements the error interface so a DesignError can travel through
// ordinary Go error plumbing when a caller needs it to.
func (e DesignError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Code, e.Message)
	if e.Field != "" {
		fmt.Fprintf(&sb, " (field: %s)", e.Field)
	}
	if e.Clause != "" {
		fmt.Fprintf(&sb, " [IS 456 %s]", e.Clause)
	}
	return sb.String()
}

// Option decorates a DesignError at construction time.
type Option func(*DesignError)

// WithField names the input field the diagnostic refers to.
func WithField(field string) Option {
	return func(e *DesignError) { e.Field = field }
}

// WithHint attaches a remedial hint.
func WithHint(hint string) Option {
	return func(e *DesignError) { e.Hint = hint }
}

// WithClause attaches the code clause reference.
func WithClause(clause string) Option {
	return func(e *DesignError) { e.Clause = clause }
}

func build(code string, sev Severity, msg string, opts []Option) DesignError {
	e := DesignError{Code: code, Severity: sev, Message: msg}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewError builds an error-severity diagnostic.
func NewError(code, msg string, opts ...Option) DesignError {
	return build(code, SeverityError, msg, opts)
}

// NewWarning builds a warning-severity diagnostic.
func NewWarning(code, msg string, opts ...Option) DesignError {
	return build(code, SeverityWarning, msg, opts)
}

// NewInfo builds an info-severity diagnostic.
func NewInfo(code, msg string, opts ...Option) DesignError {
	return build(code, SeverityInfo, msg, opts)
}

// List is an ordered collection of diagnostics.
type List []DesignError

// IsSafe reports whether the list contains no error-severity entry.
// Safety flags on result records are always derived through this.
func IsSafe(list []DesignError) bool {
	for _, e := range list {
		if e.Severity == SeverityError {
			return false
		}
	}
	return true
}

// IsSafe is the method form of the package-level IsSafe.
func (l List) IsSafe() bool { return IsSafe(l) }

// HasCode reports whether any entry carries code.
func (l List) HasCode(code string) bool {
	for _, e := range l {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Errors returns the error-severity entries.
func (l List) Errors() List { return l.filter(SeverityError) }

// Warnings returns the warning-severity entries.
func (l List) Warnings() List { return l.filter(SeverityWarning) }

func (l List) filter(sev Severity) List {
	var out List
	for _, e := range l {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}

// Merge concatenates lists into a fresh slice, preserving order.
func Merge(lists ...List) List {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make(List, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
