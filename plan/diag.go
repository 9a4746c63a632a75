package plan

import "fmt"

// Diagnostic records a degraded-path decision taken by an adapter, resolver
// or serializer: a heuristic fallback, a vocabulary miss, a value a reviewer
// should double-check. Diagnostics are collected rather than printed so test
// suites and batch summaries can assert on them.
type Diagnostic struct {
	Component string
	Field     string
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Component, d.Field, d.Message)
}

// DiagSink accumulates diagnostics. A nil sink is valid and drops everything,
// so callers that do not care can pass nil.
type DiagSink struct {
	diags []Diagnostic
}

// Add records a diagnostic.
func (s *DiagSink) Add(component, field, format string, args ...any) {
	if s == nil {
		return
	}
	s.diags = append(s.diags, Diagnostic{
		Component: component,
		Field:     field,
		Message:   fmt.Sprintf(format, args...),
	})
}

// All returns the collected diagnostics.
func (s *DiagSink) All() []Diagnostic {
	if s == nil {
		return nil
	}
	return s.diags
}

// Len returns the number of collected diagnostics.
func (s *DiagSink) Len() int {
	if s == nil {
		return 0
	}
	return len(s.diags)
}
