// Package value defines Value, the tagged union at the center of the
// core: every expression tree the tokenizer/parser produces, and every
// tree a serializer walks back to bytes, is built from this one type.
//
// Value intentionally avoids interface{} payloads, the same choice the
// teacher's jsonvalue.Value makes: a single Kind tag selects which of the
// struct's private fields is meaningful, and the capability predicates
// below (IsInteger, IsTuple, …) are trivial tag comparisons the codecs
// dispatch on instead of type-switching over concrete Go types.
package value

import (
	"fmt"
	"math/big"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindOmega Kind = iota
	KindBoolean
	KindInteger
	KindRational
	KindBytes
	KindUnicode
	KindSet
	KindTuple
	KindSequence
	KindRelation
	KindMatrix
	KindProcedure
)

func (k Kind) String() string {
	switch k {
	case KindOmega:
		return "Omega"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindRational:
		return "Rational"
	case KindBytes:
		return "Bytes"
	case KindUnicode:
		return "Unicode"
	case KindSet:
		return "Set"
	case KindTuple:
		return "Tuple"
	case KindSequence:
		return "Sequence"
	case KindRelation:
		return "Relation"
	case KindMatrix:
		return "Matrix"
	case KindProcedure:
		return "Procedure"
	default:
		return "Unknown"
	}
}

// Value is the expression tree node. The zero Value is Omega.
type Value struct {
	kind Kind

	boolVal bool
	intVal  *big.Int
	ratNum  *big.Int
	ratDen  *big.Int

	bytesVal   []byte
	unicodeVal string

	setElems []Value
	seqElems []Value
	tuple    *tuple
}

// Kind reports the receiver's variant.
func (v Value) Kind() Kind { return v.kind }

// Capability predicates. The serializers dispatch on these, never on Go
// type assertions, so a new internal representation detail never leaks
// into codec code.
func (v Value) IsOmega() bool     { return v.kind == KindOmega }
func (v Value) IsBoolean() bool   { return v.kind == KindBoolean }
func (v Value) IsInteger() bool   { return v.kind == KindInteger }
func (v Value) IsFraction() bool  { return v.kind == KindRational }
func (v Value) IsBytes() bool     { return v.kind == KindBytes }
func (v Value) IsUnicode() bool   { return v.kind == KindUnicode }
func (v Value) IsSet() bool       { return v.kind == KindSet }
func (v Value) IsTuple() bool     { return v.kind == KindTuple }
func (v Value) IsSequence() bool  { return v.kind == KindSequence }
func (v Value) IsRelation() bool  { return v.kind == KindRelation }
func (v Value) IsMatrix() bool    { return v.kind == KindMatrix }
func (v Value) IsProcedure() bool { return v.kind == KindProcedure }

// Omega is the absence-of-value singleton.
var Omega = Value{kind: KindOmega}

// Boolean constructs a Boolean Value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, boolVal: b} }

// BoolValue returns the payload of a Boolean Value; false for anything else.
func (v Value) BoolValue() bool { return v.kind == KindBoolean && v.boolVal }

// Integer constructs an Integer Value from a big.Int. The argument is
// copied; the caller's *big.Int remains theirs to mutate.
func Integer(n *big.Int) Value {
	return Value{kind: KindInteger, intVal: new(big.Int).Set(n)}
}

// IntegerFromInt64 is a convenience constructor for small integers.
func IntegerFromInt64(n int64) Value {
	return Value{kind: KindInteger, intVal: big.NewInt(n)}
}

// IntValue returns the Integer payload, or nil if the receiver is not an
// Integer.
func (v Value) IntValue() *big.Int {
	if v.kind != KindInteger {
		return nil
	}
	return v.intVal
}

// Rational constructs a Rational Value from a numerator and a positive
// denominator. Per the core's design, reduction to lowest terms is the
// serializer's job, not the constructor's: num and den are stored exactly
// as given (spec §9 note 5 — this asymmetry between parse/construct and
// serialize is deliberate).
func Rational(num, den *big.Int) Value {
	if den.Sign() <= 0 {
		panic("value: Rational denominator must be positive")
	}
	return Value{
		kind:   KindRational,
		ratNum: new(big.Int).Set(num),
		ratDen: new(big.Int).Set(den),
	}
}

// RationalParts returns the numerator and denominator of a Rational Value,
// or (nil, nil) for anything else.
func (v Value) RationalParts() (num, den *big.Int) {
	if v.kind != KindRational {
		return nil, nil
	}
	return v.ratNum, v.ratDen
}

// Bytes constructs the Bytes ("symbol") variant. The slice is copied.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, bytesVal: cp}
}

// BytesFromString is a convenience constructor for identifier-like Bytes
// values built from a Go string.
func BytesFromString(s string) Value {
	return Bytes([]byte(s))
}

// BytesValue returns the Bytes payload, or nil for anything else.
func (v Value) BytesValue() []byte {
	if v.kind != KindBytes {
		return nil
	}
	return v.bytesVal
}

// Unicode constructs the Unicode (UTF-8 text) variant.
func Unicode(s string) Value {
	return Value{kind: KindUnicode, unicodeVal: s}
}

// UnicodeValue returns the Unicode payload, or "" for anything else.
func (v Value) UnicodeValue() string {
	if v.kind != KindUnicode {
		return ""
	}
	return v.unicodeVal
}

// Set constructs a Set from a slice of elements. The slice is copied;
// duplicate elements (by Equal) are collapsed, matching set semantics.
func Set(elems []Value) Value {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		dup := false
		for _, o := range out {
			if e.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return Value{kind: KindSet, setElems: out}
}

// SetElements returns a shallow copy of the Set's elements, or nil for
// anything else.
func (v Value) SetElements() []Value {
	if v.kind != KindSet {
		return nil
	}
	out := make([]Value, len(v.setElems))
	copy(out, v.setElems)
	return out
}

// Sequence constructs a positional Sequence from a slice of elements.
func Sequence(elems []Value) Value {
	out := make([]Value, len(elems))
	copy(out, elems)
	return Value{kind: KindSequence, seqElems: out}
}

// SequenceElements returns a shallow copy of the Sequence's elements, or
// nil for anything else.
func (v Value) SequenceElements() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.seqElems))
	copy(out, v.seqElems)
	return out
}

// SequenceLen returns the number of elements, or 0 for anything else.
func (v Value) SequenceLen() int {
	if v.kind != KindSequence {
		return 0
	}
	return len(v.seqElems)
}

// Relation, Matrix, and Procedure are present in the type lattice so that
// callers outside this core (an evaluator, say) have a Value to hold them
// in, but neither serializer can encode them — both fail with
// herrors.Unserializable on contact.
func Relation() Value  { return Value{kind: KindRelation} }
func Matrix() Value    { return Value{kind: KindMatrix} }
func Procedure() Value { return Value{kind: KindProcedure} }

// String renders a debug form of the Value; it is not the wire format —
// see pkg/simple and pkg/canonical for that.
func (v Value) String() string {
	switch v.kind {
	case KindOmega:
		return "#nil"
	case KindBoolean:
		if v.boolVal {
			return "#t"
		}
		return "#f"
	case KindInteger:
		return v.intVal.String()
	case KindRational:
		return fmt.Sprintf("%s/%s", v.ratNum, v.ratDen)
	case KindBytes:
		return string(v.bytesVal)
	case KindUnicode:
		return fmt.Sprintf("%q", v.unicodeVal)
	case KindSet:
		return fmt.Sprintf("Set(%d elems)", len(v.setElems))
	case KindTuple:
		return fmt.Sprintf("Tuple(%d entries)", v.tuple.Len())
	case KindSequence:
		return fmt.Sprintf("Sequence(%d elems)", len(v.seqElems))
	default:
		return v.kind.String()
	}
}
