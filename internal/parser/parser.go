// Package parser folds the simple-expression token stream into a Value
// tree (spec §4.2). It keeps an explicit stack of in-construction
// container frames rather than recursing with the call stack, so deeply
// nested input never risks a Go stack overflow (spec §9's re-architecture
// note on the source's "implicit recursion").
package parser

import (
	"math/big"
	"strings"

	"github.com/haiku-lang/go-haiku/internal/herrors"
	"github.com/haiku-lang/go-haiku/internal/lexer"
	"github.com/haiku-lang/go-haiku/internal/token"
	"github.com/haiku-lang/go-haiku/pkg/value"
)

type frameKind int

const (
	frameRoot frameKind = iota
	frameTuple
	frameEvalData
	frameSequence
)

type frame struct {
	kind       frameKind
	builder    *value.TupleBuilder
	counter    int64
	pendingKey *value.Value
	quoteWraps []token.Kind
}

func newFrame(kind frameKind, wraps []token.Kind) *frame {
	return &frame{kind: kind, builder: value.NewTupleBuilder(), quoteWraps: wraps}
}

// Parser folds one simple-expression token stream into a single top-level
// Tuple, as the `loads`/`load` entry points require (spec §6).
type Parser struct {
	lex *lexer.Lexer

	frames       []*frame
	pendingValue *value.Value
	pendingQuote []token.Kind
}

// Parse reads input to EOF and returns the top-level Tuple whose
// positional entries are the expressions found there, in order. Empty or
// all-whitespace input yields the empty Tuple (spec §8 law 5).
func Parse(input string) (value.Value, error) {
	p := &Parser{
		lex:    lexer.New(input),
		frames: []*frame{newFrame(frameRoot, nil)},
	}

	for {
		tok, err := p.lex.NextToken()
		if err != nil {
			return value.Value{}, err
		}
		if tok.Kind == token.EOF {
			break
		}
		if err := p.handle(tok); err != nil {
			return value.Value{}, err
		}
	}

	if len(p.frames) != 1 {
		return value.Value{}, &herrors.SyntaxError{
			Message: "unexpected end of input: unclosed bracket",
			Pos:     p.lex.Pos(),
			Source:  input,
		}
	}

	p.commitPending()
	return p.frames[0].builder.Build(), nil
}

func (p *Parser) top() *frame { return p.frames[len(p.frames)-1] }

func (p *Parser) handle(tok token.Token) error {
	switch tok.Kind {
	case token.LiteralOmega:
		return p.setValue(value.Omega)
	case token.LiteralBoolean:
		return p.setValue(value.Boolean(tok.BoolValue))
	case token.LiteralInteger:
		n := new(big.Int)
		if _, ok := n.SetString(tok.Text, 10); !ok {
			return &herrors.TokenError{Message: "malformed integer literal " + tok.Text, Pos: tok.Pos, Source: p.lex.Pos().String()}
		}
		return p.setValue(value.Integer(n))
	case token.LiteralRational:
		numText, denText, found := strings.Cut(tok.Text, "/")
		if !found {
			return &herrors.TokenError{Message: "malformed rational literal " + tok.Text, Pos: tok.Pos}
		}
		num, ok1 := new(big.Int).SetString(numText, 10)
		den, ok2 := new(big.Int).SetString(denText, 10)
		if !ok1 || !ok2 {
			return &herrors.TokenError{Message: "malformed rational literal " + tok.Text, Pos: tok.Pos}
		}
		// The lexer accepts any digit string after '/', including an
		// all-zero one (internal/lexer's scanNumber), so a denominator of
		// zero or less must be rejected here rather than left for
		// value.Rational to panic on (spec §3's Denominator > 0 invariant).
		if den.Sign() <= 0 {
			return &herrors.TokenError{Message: "rational denominator must be positive: " + tok.Text, Pos: tok.Pos}
		}
		return p.setValue(value.Rational(num, den))
	case token.LiteralBytes:
		return p.setValue(value.BytesFromString(tok.Text))
	case token.LiteralUnicode:
		return p.setValue(value.Unicode(tok.Text))

	case token.TupleOpen:
		return p.pushFrame(frameTuple)
	case token.EvalDataOpen:
		return p.pushFrame(frameEvalData)
	case token.SequenceOpen:
		return p.pushFrame(frameSequence)

	case token.TupleClose:
		return p.closeFrame(frameTuple, tok.Pos)
	case token.EvalDataClose:
		return p.closeFrame(frameEvalData, tok.Pos)
	case token.SequenceClose:
		return p.closeFrame(frameSequence, tok.Pos)

	case token.Association:
		return p.promoteKey(tok.Pos)

	case token.Quote, token.Unquote, token.UnquoteSplice:
		p.commitPending()
		p.pendingQuote = append(p.pendingQuote, tok.Kind)
		return nil

	default:
		return &herrors.SyntaxError{Message: "unexpected token " + tok.Kind.String(), Pos: tok.Pos}
	}
}

func (p *Parser) setValue(v value.Value) error {
	p.commitPending()
	v = applyQuoteWraps(v, &p.pendingQuote)
	p.pendingValue = &v
	return nil
}

func (p *Parser) pushFrame(kind frameKind) error {
	p.commitPending()
	wraps := p.pendingQuote
	p.pendingQuote = nil
	p.frames = append(p.frames, newFrame(kind, wraps))
	return nil
}

func (p *Parser) closeFrame(kind frameKind, pos herrors.Position) error {
	p.commitPending()

	top := p.top()
	if top.kind != kind || len(p.frames) == 1 {
		return &herrors.SyntaxError{Message: "extraneous close bracket", Pos: pos}
	}
	p.frames = p.frames[:len(p.frames)-1]

	built := top.builder.Build()
	var result value.Value
	switch kind {
	case frameTuple:
		result = built
	case frameSequence:
		positional, named := built.TuplePositionalAndNamed()
		if len(named) != 0 || len(positional) != built.TupleLen() {
			return &herrors.SyntaxError{Message: "sequence has non-contiguous or keyed entries", Pos: pos}
		}
		result = value.Sequence(positional)
	case frameEvalData:
		result = quoteEvalData(built)
	}

	result = applyQuoteWraps(result, &top.quoteWraps)
	p.pendingValue = &result
	return nil
}

func (p *Parser) promoteKey(pos herrors.Position) error {
	if p.pendingValue == nil {
		return &herrors.SyntaxError{Message: "detached ':' with no preceding value", Pos: pos}
	}
	top := p.top()
	top.pendingKey = p.pendingValue
	p.pendingValue = nil
	return nil
}

func (p *Parser) commitPending() {
	if p.pendingValue == nil {
		return
	}
	v := *p.pendingValue
	p.pendingValue = nil

	top := p.top()
	if top.pendingKey != nil {
		top.builder.Set(*top.pendingKey, v)
		top.pendingKey = nil
		return
	}
	top.builder.SetPositional(top.counter, v)
	top.counter++
}

func quoteName(kind token.Kind) string {
	switch kind {
	case token.Quote:
		return "quote"
	case token.Unquote:
		return "unquote"
	case token.UnquoteSplice:
		return "unquote-splice"
	default:
		return "quote"
	}
}

func wrapQuote(kind token.Kind, v value.Value) value.Value {
	return value.NewTupleBuilder().
		SetPositional(0, value.BytesFromString(quoteName(kind))).
		SetPositional(1, v).
		Build()
}

func applyQuoteWraps(v value.Value, wraps *[]token.Kind) value.Value {
	ws := *wraps
	*wraps = nil
	for i := len(ws) - 1; i >= 0; i-- {
		v = wrapQuote(ws[i], v)
	}
	return v
}

// quoteEvalData implements the '{' … '}' production: a quoted tuple whose
// every value is individually unquoted (spec §4.2): `[quote [k0:
// [unquote v0], k1: [unquote v1], …]]`.
func quoteEvalData(t value.Value) value.Value {
	entries := t.TupleEntries()
	b := value.NewTupleBuilder()
	for _, e := range entries {
		b.Set(e.Key, wrapQuote(token.Unquote, e.Value))
	}
	return wrapQuote(token.Quote, b.Build())
}
