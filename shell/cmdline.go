package shell

import (
	"regexp"
	"strings"

	"github.com/presstools/core/errors"
)

// disallowed matches every character outside the sanitization allow-list:
// letters, digits, whitespace, and / _ - | = " ' . : @
var disallowed = regexp.MustCompile(`[^a-zA-Z0-9\s/_\-|="'.:@]`)

// CommandLine is the parsed form of a textual command: one or more stages,
// each an argv-style token list. More than one stage denotes a pipeline whose
// stages are chained stdout-to-stdin by the OS.
type CommandLine struct {
	stages [][]string
}

// Sanitize strips every character outside the allow-list. It protects the
// handful of places where interpolated values (repo URLs, file paths) come
// from configuration; it is not a defense against untrusted input, and it
// never invokes a system shell. Sanitizing twice yields the same string.
func Sanitize(raw string) string {
	return disallowed.ReplaceAllString(raw, "")
}

// ParseCommandLine splits raw on the pipe character, sanitizes and tokenizes
// each segment, and returns the resulting stages. Tokenization is
// whitespace-based, not shell-grammar-aware: quoted strings containing spaces
// are split anyway, though leading and trailing quote characters are stripped
// from each token. A line that sanitizes away to nothing, or any stage with
// zero tokens, is rejected so it can never be executed.
func ParseCommandLine(raw string) (*CommandLine, error) {
	segments := strings.Split(raw, "|")
	stages := make([][]string, 0, len(segments))
	for _, segment := range segments {
		tokens := tokenize(Sanitize(segment))
		if len(tokens) == 0 {
			return nil, errors.EmptyCommandLine(raw)
		}
		stages = append(stages, tokens)
	}
	return &CommandLine{stages: stages}, nil
}

// NewCommandLine builds a command line programmatically from argv slices,
// bypassing sanitization. Callers use it when arguments are already vetted
// and must not be reinterpreted.
func NewCommandLine(stages ...[]string) (*CommandLine, error) {
	if len(stages) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyCommandLine, "command line needs at least one stage")
	}
	copied := make([][]string, len(stages))
	for i, stage := range stages {
		if len(stage) == 0 {
			return nil, errors.New(errors.ErrCodeEmptyCommandLine, "command line stage has no tokens")
		}
		copied[i] = append([]string(nil), stage...)
	}
	return &CommandLine{stages: copied}, nil
}

// tokenize splits a sanitized segment on whitespace and strips surrounding
// quote characters from each token.
func tokenize(segment string) []string {
	fields := strings.Fields(segment)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, `'"`)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Stages returns a copy of the argv list for each stage.
func (c *CommandLine) Stages() [][]string {
	stages := make([][]string, len(c.stages))
	for i, stage := range c.stages {
		stages[i] = append([]string(nil), stage...)
	}
	return stages
}

// Pipeline reports whether the command line has more than one stage.
func (c *CommandLine) Pipeline() bool {
	return len(c.stages) > 1
}

// String renders the command line in canonical form: tokens joined by single
// spaces, stages joined by " | ".
func (c *CommandLine) String() string {
	parts := make([]string, len(c.stages))
	for i, stage := range c.stages {
		parts[i] = strings.Join(stage, " ")
	}
	return strings.Join(parts, " | ")
}
