// Package token defines the token alphabet the simple-expression tokenizer
// emits: syntax markers (brackets, association, quote family) and literal
// values (integers, rationals, bytes/identifiers, unicode strings, and the
// three named constants).
package token

import "github.com/haiku-lang/go-haiku/internal/herrors"

// Category distinguishes structural tokens from value-bearing ones, per
// spec TokenKind ∈ {SYNTAX, LITERAL}.
type Category int

const (
	Syntax Category = iota
	Literal
)

// Kind enumerates every concrete token the simple-expression DFA produces.
type Kind int

const (
	Illegal Kind = iota
	EOF

	// Syntax markers.
	TupleOpen
	TupleClose
	EvalDataOpen
	EvalDataClose
	SequenceOpen
	SequenceClose
	Association
	Quote
	Unquote
	UnquoteSplice

	// Literal kinds.
	LiteralOmega
	LiteralBoolean
	LiteralInteger
	LiteralRational
	LiteralBytes
	LiteralUnicode
)

func (k Kind) String() string {
	switch k {
	case Illegal:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case TupleOpen:
		return "["
	case TupleClose:
		return "]"
	case EvalDataOpen:
		return "{"
	case EvalDataClose:
		return "}"
	case SequenceOpen:
		return "("
	case SequenceClose:
		return ")"
	case Association:
		return ":"
	case Quote:
		return "'"
	case Unquote:
		return ","
	case UnquoteSplice:
		return "`"
	case LiteralOmega:
		return "OMEGA"
	case LiteralBoolean:
		return "BOOLEAN"
	case LiteralInteger:
		return "INTEGER"
	case LiteralRational:
		return "RATIONAL"
	case LiteralBytes:
		return "BYTES"
	case LiteralUnicode:
		return "UNICODE"
	default:
		return "UNKNOWN"
	}
}

// Category reports whether k is a structural marker or a literal value.
func (k Kind) Category() Category {
	if k >= LiteralOmega {
		return Literal
	}
	return Syntax
}

// Token is one lexeme produced by the simple-expression tokenizer.
//
// Text carries the raw lexeme for syntax tokens and the already-unescaped
// payload for literal tokens (the decoded string contents, the identifier
// bytes, the decimal digits). BoolValue is only meaningful when Kind is
// LiteralBoolean.
type Token struct {
	Kind      Kind
	Text      string
	BoolValue bool
	Pos       herrors.Position
}

func New(kind Kind, text string, pos herrors.Position) Token {
	return Token{Kind: kind, Text: text, Pos: pos}
}
