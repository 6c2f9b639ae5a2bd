package simple

import (
	"encoding/base64"

	"github.com/haiku-lang/go-haiku/pkg/value"
)

// reify recognizes the bracketed "special forms" the serializer emits for
// variants that have no literal syntax of their own — `[rational N D]`,
// `[byte-array B64]`, `[set v0 v1 …]` — and folds them back into the
// Rational/Bytes/Set values they came from, recursing into every
// container. Without this step, `loads(dumps(v))` for those three
// variants would come back as an ordinary Tuple instead of v, which
// would violate the round-trip law (spec §8 law 1): the bare §4.2
// grammar has no literal notation for any of them except Rational's
// `N/D`, and dumps chooses the bracketed form for all three so that one
// rule governs "does this Bytes value need escaping" independent of
// whether a Rational or Set happens to be nearby.
//
// This applies only inside brackets a reader actually wrote — never to
// the synthetic top-level Tuple `loads` builds from the input's
// top-level expressions, since a bare top-level `set a b` is three
// separate expressions, not one Set literal.
func reify(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindSequence:
		elems := v.SequenceElements()
		for i := range elems {
			elems[i] = reify(elems[i])
		}
		return value.Sequence(elems)
	case value.KindTuple:
		entries := v.TupleEntries()
		b := value.NewTupleBuilder()
		for _, e := range entries {
			b.Set(e.Key, reify(e.Value))
		}
		return reifySpecialForm(b.Build())
	default:
		return v
	}
}

func reifyChildren(top value.Value) value.Value {
	entries := top.TupleEntries()
	b := value.NewTupleBuilder()
	for _, e := range entries {
		b.Set(e.Key, reify(e.Value))
	}
	return b.Build()
}

func reifySpecialForm(t value.Value) value.Value {
	positional, named := t.TuplePositionalAndNamed()
	if len(named) != 0 || len(positional) == 0 || !positional[0].IsBytes() {
		return t
	}

	switch string(positional[0].BytesValue()) {
	case "rational":
		if len(positional) == 3 && positional[1].IsInteger() && positional[2].IsInteger() {
			den := positional[2].IntValue()
			if den.Sign() > 0 {
				return value.Rational(positional[1].IntValue(), den)
			}
		}
	case "byte-array":
		if len(positional) == 2 && positional[1].IsBytes() {
			if decoded, err := base64.StdEncoding.DecodeString(string(positional[1].BytesValue())); err == nil {
				return value.Bytes(decoded)
			}
		}
	case "set":
		return value.Set(positional[1:])
	}
	return t
}
