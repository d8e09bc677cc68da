package lang

import (
	"errors"
	"fmt"
	"strings"
)

// Phase identifies the pipeline stage a diagnostic was produced in.
type Phase int

const (
	PhaseScan Phase = iota
	PhaseParse
	PhaseRuntime
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseParse:
		return "parse"
	case PhaseRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Error is a single diagnostic tied to a source line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("[%d]: %s", e.Line, e.Message)
}

// State collects the diagnostics of one pipeline stage. Scan and parse
// states accumulate; a runtime state holds exactly one error and ignores
// further additions.
type State struct {
	Phase Phase
	errs  []*Error
}

// NewState creates an empty state for the given phase.
func NewState(phase Phase) *State {
	return &State{Phase: phase}
}

// RuntimeError creates a terminal single-error runtime state.
func RuntimeError(line int, format string, args ...interface{}) *State {
	return &State{
		Phase: PhaseRuntime,
		errs:  []*Error{{Line: line, Message: fmt.Sprintf(format, args...)}},
	}
}

// Add records a diagnostic. A runtime state already holding its error
// ignores the addition.
func (s *State) Add(line int, format string, args ...interface{}) {
	if s.Phase == PhaseRuntime && len(s.errs) > 0 {
		return
	}
	s.errs = append(s.errs, &Error{Line: line, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether no diagnostics were recorded.
func (s *State) Empty() bool {
	return s == nil || len(s.errs) == 0
}

// Errs returns the recorded diagnostics in production order.
func (s *State) Errs() []*Error {
	if s == nil {
		return nil
	}
	return s.errs
}

// OrNil collapses an empty state to nil so callers can use a plain
// nil check.
func (s *State) OrNil() *State {
	if s.Empty() {
		return nil
	}
	return s
}

// Error renders one "[line]: message" line per diagnostic, in production
// order, newline separated.
func (s *State) Error() string {
	if s == nil {
		return ""
	}
	lines := make([]string, len(s.errs))
	for i, e := range s.errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// AsState recovers a *State from an error chain.
func AsState(err error) (*State, bool) {
	var s *State
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}
