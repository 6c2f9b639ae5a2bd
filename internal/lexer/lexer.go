// Package lexer implements the simple-expression tokenizer: a
// deterministic finite automaton over Unicode code points that turns
// source text into the token.Token stream the parser folds into a tree
// (spec §4.1). It is built on internal/iterutil's one-element-lookahead
// adapter, the same way the teacher's Lexer pairs readChar/peekChar, but
// pulling from that generic adapter instead of indexing a string by hand.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/haiku-lang/go-haiku/internal/herrors"
	"github.com/haiku-lang/go-haiku/internal/iterutil"
	"github.com/haiku-lang/go-haiku/internal/token"
)

// bracketFamily identifies which of the three paired delimiters a bracket
// token belongs to, so the lexer can reject a mismatched or unmatched
// close on the spot (spec §4.1, §7 — the tokenizer itself raises these).
type bracketFamily int

const (
	familyTuple bracketFamily = iota
	familyEvalData
	familySequence
)

// quoteClose maps every recognized opening quotation mark to its closing
// counterpart (spec §4.1: straight, German, curly, guillemets, corner
// brackets).
var quoteClose = map[rune]rune{
	'"':      '"',
	'„':      '“',
	'‘': '’',
	'«':      '»',
	'‹':      '›',
	'「':      '」',
	'『':      '』',
}

const identSymbols = "!?*+-/%\\&|^~<=>"

// Lexer is a stateful DFA over a string's Unicode code points.
type Lexer struct {
	la *iterutil.Lookahead[rune]

	ch     rune
	chOK   bool
	peekCh rune
	peekOK bool

	line, column, offset int
	source                string

	brackets []bracketFamily
}

// New creates a Lexer over input, priming the first lookahead pair.
func New(input string) *Lexer {
	runes := []rune(input)
	idx := 0
	src := func() (rune, bool) {
		if idx >= len(runes) {
			return 0, false
		}
		r := runes[idx]
		idx++
		return r, true
	}
	l := &Lexer{
		la:     iterutil.New[rune](src),
		line:   1,
		column: 0,
		source: input,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.chOK {
		l.offset += utf8.RuneLen(l.ch)
	}
	pair, ok := l.la.Next()
	if !ok {
		l.chOK = false
		l.peekOK = false
		return
	}
	if l.chOK && l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.ch = pair.Current
	l.chOK = true
	l.column++
	if pair.Next != nil {
		l.peekCh = *pair.Next
		l.peekOK = true
	} else {
		l.peekOK = false
	}
}

func (l *Lexer) pos() herrors.Position {
	return herrors.Position{Line: l.line, Column: l.column, Offset: l.offset}
}

// Pos exposes the lexer's current position, for callers (the parser, on a
// premature-EOF check) that need to report an error at "wherever scanning
// stopped" rather than at a specific token.
func (l *Lexer) Pos() herrors.Position { return l.pos() }

func (l *Lexer) tokenError(msg string) error {
	return &herrors.TokenError{Message: msg, Pos: l.pos(), Source: l.source}
}

// NextToken scans and returns the next token, or an error if the DFA hits
// an invalid state. Returns a token.EOF token (with nil error) at the end
// of input.
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		if !l.chOK {
			return token.New(token.EOF, "", l.pos()), nil
		}

		switch {
		case isSpace(l.ch):
			l.readChar()
			continue
		case l.ch == ';':
			l.skipLineComment()
			continue
		case l.ch == '[':
			return l.syntaxToken(token.TupleOpen, familyTuple)
		case l.ch == ']':
			return l.closeToken(token.TupleClose, familyTuple)
		case l.ch == '{':
			return l.syntaxToken(token.EvalDataOpen, familyEvalData)
		case l.ch == '}':
			return l.closeToken(token.EvalDataClose, familyEvalData)
		case l.ch == '(':
			return l.syntaxToken(token.SequenceOpen, familySequence)
		case l.ch == ')':
			return l.closeToken(token.SequenceClose, familySequence)
		case l.ch == ':':
			return l.simpleToken(token.Association)
		case l.ch == '\'':
			return l.simpleToken(token.Quote)
		case l.ch == ',':
			return l.simpleToken(token.Unquote)
		case l.ch == '`':
			return l.simpleToken(token.UnquoteSplice)
		case l.ch == '#':
			return l.scanConstant()
		case isQuoteOpen(l.ch):
			return l.scanString()
		case isDigit(l.ch) || isSignedNumberStart(l.ch, l.peekCh, l.peekOK):
			return l.scanNumber()
		case isIdentInitial(l.ch):
			return l.scanSymbol()
		default:
			bad := l.ch
			pos := l.pos()
			l.readChar()
			return token.Token{}, &herrors.TokenError{
				Message: "unexpected character " + string(bad),
				Pos:     pos,
				Source:  l.source,
			}
		}
	}
}

func (l *Lexer) simpleToken(kind token.Kind) (token.Token, error) {
	pos := l.pos()
	text := string(l.ch)
	l.readChar()
	return token.New(kind, text, pos), nil
}

func (l *Lexer) syntaxToken(kind token.Kind, fam bracketFamily) (token.Token, error) {
	tok, err := l.simpleToken(kind)
	if err == nil {
		l.brackets = append(l.brackets, fam)
	}
	return tok, err
}

func (l *Lexer) closeToken(kind token.Kind, fam bracketFamily) (token.Token, error) {
	pos := l.pos()
	if len(l.brackets) == 0 {
		l.readChar()
		return token.Token{}, &herrors.TokenError{
			Message: "unmatched closing bracket " + kind.String(),
			Pos:     pos,
			Source:  l.source,
		}
	}
	top := l.brackets[len(l.brackets)-1]
	if top != fam {
		l.readChar()
		return token.Token{}, &herrors.TokenError{
			Message: "mismatched bracket family: expected close for " + familyName(top) + ", got " + kind.String(),
			Pos:     pos,
			Source:  l.source,
		}
	}
	l.brackets = l.brackets[:len(l.brackets)-1]
	return l.simpleToken(kind)
}

func familyName(f bracketFamily) string {
	switch f {
	case familyTuple:
		return "]"
	case familyEvalData:
		return "}"
	case familySequence:
		return ")"
	default:
		return "?"
	}
}

func (l *Lexer) skipLineComment() {
	for l.chOK && l.ch != '\n' {
		l.readChar()
	}
}

func (l *Lexer) scanConstant() (token.Token, error) {
	pos := l.pos()
	l.readChar() // consume '#'
	for l.chOK && isSpace(l.ch) {
		l.readChar()
	}
	if !l.chOK || !isASCIILetter(l.ch) {
		return token.Token{}, &herrors.TokenError{
			Message: "unexpected character after '#'",
			Pos:     pos,
			Source:  l.source,
		}
	}
	var sb strings.Builder
	for l.chOK && isASCIILetter(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	name := sb.String()
	switch name {
	case "nil":
		return token.New(token.LiteralOmega, name, pos), nil
	case "t":
		return token.Token{Kind: token.LiteralBoolean, Text: name, BoolValue: true, Pos: pos}, nil
	case "f":
		return token.Token{Kind: token.LiteralBoolean, Text: name, BoolValue: false, Pos: pos}, nil
	default:
		return token.Token{}, &herrors.TokenError{
			Message: "unrecognized constant name #" + name,
			Pos:     pos,
			Source:  l.source,
		}
	}
}

func (l *Lexer) scanString() (token.Token, error) {
	pos := l.pos()
	open := l.ch
	closeRune := quoteClose[open]
	l.readChar() // consume opening quote

	var sb strings.Builder
	for {
		if !l.chOK {
			return token.Token{}, &herrors.TokenError{
				Message: "EOF inside string literal",
				Pos:     pos,
				Source:  l.source,
			}
		}
		if l.ch == closeRune {
			l.readChar()
			return token.New(token.LiteralUnicode, sb.String(), pos), nil
		}
		if l.ch == '\\' {
			if l.peekOK && l.peekCh == '"' {
				l.readChar()
				l.readChar()
				sb.WriteRune(closeRune)
				continue
			}
			if l.peekOK && l.peekCh == '\\' {
				l.readChar()
				l.readChar()
				sb.WriteRune('\\')
				continue
			}
			// Any other backslash is literal.
			sb.WriteRune(l.ch)
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) scanNumber() (token.Token, error) {
	pos := l.pos()
	var sb strings.Builder
	if l.ch == '+' || l.ch == '-' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	for l.chOK && isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	if l.chOK && l.ch == '/' && l.peekOK && isDigit(l.peekCh) {
		l.readChar() // consume '/'
		var db strings.Builder
		for l.chOK && isDigit(l.ch) {
			db.WriteRune(l.ch)
			l.readChar()
		}
		return token.New(token.LiteralRational, sb.String()+"/"+db.String(), pos), nil
	}

	return token.New(token.LiteralInteger, sb.String(), pos), nil
}

func (l *Lexer) scanSymbol() (token.Token, error) {
	pos := l.pos()
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar()
	for l.chOK && isIdentSubsequent(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.New(token.LiteralBytes, sb.String(), pos), nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isQuoteOpen(r rune) bool {
	_, ok := quoteClose[r]
	return ok
}

// isSignedNumberStart implements the spec's sign-disambiguation rule: a
// '+' or '-' starts a number only when the very next code point is a
// digit; otherwise it is an ordinary identifier character.
func isSignedNumberStart(c, n rune, hasNext bool) bool {
	return (c == '+' || c == '-') && hasNext && isDigit(n)
}

// ID_INITIAL / ID_SUBSEQUENT per spec §4.1. The source the spec is ported
// from also names a SYMBOL_INITIAL/SYMBOL_SUBSEQUENT pair without
// defining them separately (spec §9 open question 1); this core treats
// them as aliases of the same two sets.
func isIdentInitial(r rune) bool {
	return isASCIILetter(r) || strings.ContainsRune(identSymbols, r)
}

func isIdentSubsequent(r rune) bool {
	return isIdentInitial(r) || isDigit(r)
}

// IsIdentifier reports whether s would tokenize, in its entirety, as a
// single LiteralBytes identifier rather than a number or anything else —
// the test the simple serializer uses to decide whether a Bytes value can
// be emitted verbatim (spec §4.3).
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	first := runes[0]
	if !isIdentInitial(first) {
		return false
	}
	if len(runes) > 1 && (first == '+' || first == '-') && isDigit(runes[1]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentSubsequent(r) {
			return false
		}
	}
	return true
}
