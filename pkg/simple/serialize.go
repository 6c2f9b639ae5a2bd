package simple

import (
	"encoding/base64"
	"math/big"
	"strings"

	"github.com/haiku-lang/go-haiku/internal/herrors"
	"github.com/haiku-lang/go-haiku/internal/lexer"
	"github.com/haiku-lang/go-haiku/pkg/value"
)

// serialize writes v's simple-expression text onto sb (spec §4.3).
func serialize(sb *strings.Builder, v value.Value) error {
	switch v.Kind() {
	case value.KindOmega:
		sb.WriteString("#nil")
	case value.KindBoolean:
		if v.BoolValue() {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case value.KindInteger:
		sb.WriteString(v.IntValue().String())
	case value.KindRational:
		return serializeRational(sb, v)
	case value.KindUnicode:
		serializeUnicode(sb, v.UnicodeValue())
	case value.KindBytes:
		serializeBytes(sb, v.BytesValue())
	case value.KindSet:
		return serializeSet(sb, v)
	case value.KindTuple:
		return serializeTuple(sb, v)
	case value.KindSequence:
		return serializeSequence(sb, v)
	case value.KindRelation, value.KindMatrix, value.KindProcedure:
		return &herrors.Unserializable{Kind: v.Kind().String()}
	default:
		return &herrors.ValueError{Message: "unrecognized value kind"}
	}
	return nil
}

// serializeRational reduces num/den to lowest terms before emitting;
// reduction is exclusively the serializer's job (spec §9 note 5).
func serializeRational(sb *strings.Builder, v value.Value) error {
	num, den := v.RationalParts()
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	rn, rd := num, den
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		rn = new(big.Int).Quo(num, g)
		rd = new(big.Int).Quo(den, g)
	}
	sb.WriteString("[rational ")
	sb.WriteString(rn.String())
	sb.WriteByte(' ')
	sb.WriteString(rd.String())
	sb.WriteByte(']')
	return nil
}

func serializeUnicode(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}

func serializeBytes(sb *strings.Builder, b []byte) {
	s := string(b)
	if len(b) > 0 && lexer.IsIdentifier(s) {
		sb.WriteString(s)
		return
	}
	sb.WriteString("[byte-array ")
	sb.WriteString(base64.StdEncoding.EncodeToString(b))
	sb.WriteByte(']')
}

func serializeSet(sb *strings.Builder, v value.Value) error {
	elems := v.SetElements()
	value.SortValues(elems)
	sb.WriteString("[set")
	for _, e := range elems {
		sb.WriteByte(' ')
		if err := serialize(sb, e); err != nil {
			return err
		}
	}
	sb.WriteByte(']')
	return nil
}

func serializeSequence(sb *strings.Builder, v value.Value) error {
	sb.WriteByte('(')
	for i, e := range v.SequenceElements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if err := serialize(sb, e); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

func serializeTuple(sb *strings.Builder, v value.Value) error {
	positional, named := v.TuplePositionalAndNamed()
	value.SortEntries(named)

	sb.WriteByte('[')
	wrote := false
	for _, e := range positional {
		if wrote {
			sb.WriteByte(' ')
		}
		if err := serialize(sb, e); err != nil {
			return err
		}
		wrote = true
	}
	for _, e := range named {
		if wrote {
			sb.WriteByte(' ')
		}
		if err := serializeTupleKey(sb, e.Key); err != nil {
			return err
		}
		sb.WriteByte(':')
		if err := serialize(sb, e.Value); err != nil {
			return err
		}
		wrote = true
	}
	sb.WriteByte(']')
	return nil
}

// serializeTupleKey renders a named key's "key:" head. Bytes keys render
// as the bare identifier (or byte-array form); any other variant renders
// through the ordinary value serializer.
func serializeTupleKey(sb *strings.Builder, key value.Value) error {
	return serialize(sb, key)
}
