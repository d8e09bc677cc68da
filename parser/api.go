package parser

import "github.com/sergev/lox/lang"

// ParseString scans and parses source text in one call. Scan errors
// suppress the parse phase, so the caller sees diagnostics from at most
// one phase per invocation.
func ParseString(src string, startLine int) (*Program, *lang.State) {
	tokens, state := Scan(src, startLine)
	if state != nil {
		return nil, state
	}
	return Parse(tokens)
}
