// Package herrors defines the error taxonomy shared by every reader and
// writer in the core: lexical failures, structural failures, and the two
// ways a Value can fail to leave the process as bytes.
package herrors

import (
	"fmt"
	"strings"
)

// Position locates a failure in its source text. Offset is a byte offset
// into the original input; Line and Column are 1-indexed and counted in
// Unicode code points, not bytes, matching the rune-counting lexer. The
// byte-level canonical tokenizer reports everything on Line 1 with Column
// counted in bytes.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenError reports a lexical failure of the simple-expression reader: an
// unmatched or mismatched bracket, EOF inside a string, an unrecognized
// constant name, an unexpected character after '#' or anywhere else, or a
// malformed numeric literal. A line comment that runs to end of input is
// not an error, and a backslash before anything other than '"' or '\' is
// kept literally rather than rejected as a bad escape.
type TokenError struct {
	Message string
	Pos     Position
	Source  string
}

func (e *TokenError) Error() string {
	return formatWithSource("token error", e.Message, e.Pos, e.Source)
}

// SyntaxError reports a structural failure: a detached ':', non-contiguous
// indices inside a sequence, or an extraneous or unclosed bracket. The
// canonical codec also reports its lexical failures (a malformed or
// truncated atom, an unexpected byte, an unmatched or mismatched bracket)
// as SyntaxError.
type SyntaxError struct {
	Message string
	Pos     Position
	Source  string
}

func (e *SyntaxError) Error() string {
	return formatWithSource("syntax error", e.Message, e.Pos, e.Source)
}

// Unserializable reports that a Value variant (Relation, Matrix, Procedure)
// has no defined wire encoding.
type Unserializable struct {
	Kind string
}

func (e *Unserializable) Error() string {
	return fmt.Sprintf("cannot serialize value of kind %s: no defined encoding", e.Kind)
}

// ValueError reports that something offered to a serializer is not a
// recognized Value variant at all (an invalid or zero-value tag).
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value error: %s", e.Message)
}

// formatWithSource renders a message with an optional caret pointing at the
// offending column, the same layout the teacher's compiler diagnostics use.
func formatWithSource(kind, message string, pos Position, source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s: %s", kind, pos, message)

	line := sourceLine(source, pos.Line)
	if line == "" {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(line)
	sb.WriteString("\n")
	if pos.Column > 0 {
		sb.WriteString(strings.Repeat(" ", pos.Column-1))
	}
	sb.WriteString("^")
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
