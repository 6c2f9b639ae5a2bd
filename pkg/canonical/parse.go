package canonical

import (
	"github.com/haiku-lang/go-haiku/internal/canontoken"
	"github.com/haiku-lang/go-haiku/internal/herrors"
	"github.com/haiku-lang/go-haiku/pkg/value"
)

type decoder struct {
	lex *canontoken.Lexer
	tok canontoken.Token
}

func newDecoder(data []byte) (*decoder, error) {
	d := &decoder{lex: canontoken.New(data)}
	return d, d.advance()
}

func (d *decoder) advance() error {
	tok, err := d.lex.Next()
	if err != nil {
		return err
	}
	d.tok = tok
	return nil
}

func (d *decoder) expect(kind canontoken.Kind, what string) error {
	if d.tok.Kind != kind {
		return &herrors.SyntaxError{Message: "expected " + what, Pos: d.tok.Pos}
	}
	return d.advance()
}

// decodeAll reads every top-level c-expr to EOF and returns a Tuple
// collecting them under integer keys 0, 1, 2, … (spec §6).
func decodeAll(data []byte) (value.Value, error) {
	d, err := newDecoder(data)
	if err != nil {
		return value.Value{}, err
	}

	b := value.NewTupleBuilder()
	i := int64(0)
	for d.tok.Kind != canontoken.EOF {
		v, err := d.decodeExpr()
		if err != nil {
			return value.Value{}, err
		}
		b.SetPositional(i, v)
		i++
	}
	return b.Build(), nil
}

// decodeExpr decodes exactly one <c-expr>: an atom, a bracketed tuple, a
// parenthesized sequence, or one of the quote-family prefix shorthands.
func (d *decoder) decodeExpr() (value.Value, error) {
	switch d.tok.Kind {
	case canontoken.Quote:
		return d.decodeQuoteWrap("quote")
	case canontoken.Unquote:
		return d.decodeQuoteWrap("unquote")
	case canontoken.UnquoteSplice:
		return d.decodeQuoteWrap("unquote-splice")
	case canontoken.Atom:
		v := value.BytesFromString(string(d.tok.Bytes))
		if err := d.advance(); err != nil {
			return value.Value{}, err
		}
		return v, nil
	case canontoken.TupleOpen:
		return d.decodeTuple()
	case canontoken.SequenceOpen:
		return d.decodeSequence()
	default:
		return value.Value{}, &herrors.SyntaxError{Message: "expected an expression", Pos: d.tok.Pos}
	}
}

func (d *decoder) decodeQuoteWrap(name string) (value.Value, error) {
	if err := d.advance(); err != nil {
		return value.Value{}, err
	}
	inner, err := d.decodeExpr()
	if err != nil {
		return value.Value{}, err
	}
	return value.NewTupleBuilder().
		SetPositional(0, value.BytesFromString(name)).
		SetPositional(1, inner).
		Build(), nil
}

func (d *decoder) decodeSequence() (value.Value, error) {
	if err := d.advance(); err != nil { // consume '('
		return value.Value{}, err
	}
	var elems []value.Value
	for d.tok.Kind != canontoken.SequenceClose {
		if d.tok.Kind == canontoken.EOF {
			return value.Value{}, &herrors.SyntaxError{Message: "unexpected end of input inside a sequence", Pos: d.tok.Pos}
		}
		v, err := d.decodeExpr()
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, v)
	}
	if err := d.advance(); err != nil { // consume ')'
		return value.Value{}, err
	}
	return value.Sequence(elems), nil
}

// taggedHeads names the bracketed forms with a reserved leading atom
// (spec §4.4's per-variant table). A Tuple whose first positional part is
// a Bytes atom with one of these exact names commits to that variant's
// grammar — this core treats the collision with a literal same-named
// Bytes value as reserved, the same trade-off pkg/simple's `loads`
// documents for `[rational …]`/`[byte-array …]`/`[set …]`.
var taggedHeads = map[string]bool{
	"true": true, "false": true, "integer": true,
	"rational": true, "string": true, "set": true,
	"quote": true, "unquote": true, "unquote-splice": true,
}

// decodeTuple reads the contents of a '[' … ']' pair and dispatches on
// the first part: a recognized type-tag atom reifies directly to that
// variant; anything else is a generic Tuple, whose parts are positional
// values up to the first '=' ASSOCIATION byte and key/value pairs after.
func (d *decoder) decodeTuple() (value.Value, error) {
	if err := d.advance(); err != nil { // consume '['
		return value.Value{}, err
	}

	if d.tok.Kind == canontoken.Atom && taggedHeads[string(d.tok.Bytes)] {
		tag := string(d.tok.Bytes)
		if err := d.advance(); err != nil {
			return value.Value{}, err
		}
		return d.decodeTaggedBody(tag)
	}

	return d.decodeGenericTuple(nil)
}

func (d *decoder) decodeTaggedBody(tag string) (value.Value, error) {
	switch tag {
	case "true", "false":
		if err := d.expect(canontoken.TupleClose, "']'"); err != nil {
			return value.Value{}, err
		}
		return value.Boolean(tag == "true"), nil

	case "integer":
		payload, err := d.expectAtom()
		if err != nil {
			return value.Value{}, err
		}
		if err := d.expect(canontoken.TupleClose, "']'"); err != nil {
			return value.Value{}, err
		}
		return value.Integer(decodeTwosComplement(payload)), nil

	case "string":
		payload, err := d.expectAtom()
		if err != nil {
			return value.Value{}, err
		}
		if err := d.expect(canontoken.TupleClose, "']'"); err != nil {
			return value.Value{}, err
		}
		return value.Unicode(string(payload)), nil

	case "rational":
		num, err := d.decodeExpr()
		if err != nil {
			return value.Value{}, err
		}
		den, err := d.decodeExpr()
		if err != nil {
			return value.Value{}, err
		}
		if !num.IsInteger() || !den.IsInteger() {
			return value.Value{}, &herrors.SyntaxError{Message: "rational payload must be two integers", Pos: d.tok.Pos}
		}
		if den.IntValue().Sign() <= 0 {
			return value.Value{}, &herrors.SyntaxError{Message: "rational denominator must be positive", Pos: d.tok.Pos}
		}
		if err := d.expect(canontoken.TupleClose, "']'"); err != nil {
			return value.Value{}, err
		}
		return value.Rational(num.IntValue(), den.IntValue()), nil

	case "set":
		var elems []value.Value
		for d.tok.Kind != canontoken.TupleClose {
			if d.tok.Kind == canontoken.EOF {
				return value.Value{}, &herrors.SyntaxError{Message: "unexpected end of input inside a set", Pos: d.tok.Pos}
			}
			v, err := d.decodeExpr()
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}
		if err := d.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Set(elems), nil

	case "quote", "unquote", "unquote-splice":
		inner, err := d.decodeExpr()
		if err != nil {
			return value.Value{}, err
		}
		if err := d.expect(canontoken.TupleClose, "']'"); err != nil {
			return value.Value{}, err
		}
		return value.NewTupleBuilder().
			SetPositional(0, value.BytesFromString(tag)).
			SetPositional(1, inner).
			Build(), nil

	default:
		return value.Value{}, &herrors.SyntaxError{Message: "unrecognized tagged form " + tag, Pos: d.tok.Pos}
	}
}

func (d *decoder) expectAtom() ([]byte, error) {
	if d.tok.Kind != canontoken.Atom {
		return nil, &herrors.SyntaxError{Message: "expected an atom", Pos: d.tok.Pos}
	}
	payload := d.tok.Bytes
	if err := d.advance(); err != nil {
		return nil, err
	}
	return payload, nil
}

// decodeGenericTuple decodes a plain Tuple's remaining parts, given any
// positional values already decoded by the caller (none, for a Tuple
// whose first part wasn't a tagged head).
func (d *decoder) decodeGenericTuple(leading []value.Value) (value.Value, error) {
	b := value.NewTupleBuilder()
	i := int64(0)
	for _, v := range leading {
		b.SetPositional(i, v)
		i++
	}
	for d.tok.Kind != canontoken.TupleClose {
		switch d.tok.Kind {
		case canontoken.EOF:
			return value.Value{}, &herrors.SyntaxError{Message: "unexpected end of input inside a tuple", Pos: d.tok.Pos}
		case canontoken.Association:
			if err := d.advance(); err != nil {
				return value.Value{}, err
			}
			key, err := d.decodeExpr()
			if err != nil {
				return value.Value{}, err
			}
			val, err := d.decodeExpr()
			if err != nil {
				return value.Value{}, err
			}
			b.Set(key, val)
		default:
			v, err := d.decodeExpr()
			if err != nil {
				return value.Value{}, err
			}
			b.SetPositional(i, v)
			i++
		}
	}
	if err := d.advance(); err != nil {
		return value.Value{}, err
	}
	return b.Build(), nil
}
