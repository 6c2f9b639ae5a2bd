package value

import (
	"math/big"
	"sort"
)

// tuple is a Tuple's backing store: an insertion-ordered slice of
// key/value pairs plus an index for O(1) lookup by key. Equality between
// two Tuples ignores insertion order (spec §3), but iteration order is
// preserved because it drives positional-argument detection during
// serialization.
type tuple struct {
	keys  []Value
	vals  []Value
	index map[string]int // indexKey(key) -> position in keys/vals
}

func newTuple() *tuple {
	return &tuple{index: make(map[string]int)}
}

func (t *tuple) Len() int { return len(t.keys) }

func (t *tuple) get(key Value) (Value, bool) {
	i, ok := t.index[indexKey(key)]
	if !ok {
		return Value{}, false
	}
	return t.vals[i], true
}

func (t *tuple) set(key, val Value) {
	ik := indexKey(key)
	if i, ok := t.index[ik]; ok {
		t.vals[i] = val
		return
	}
	t.index[ik] = len(t.keys)
	t.keys = append(t.keys, key)
	t.vals = append(t.vals, val)
}

// TupleBuilder assembles a Tuple incrementally; the zero value is ready
// to use.
type TupleBuilder struct {
	t *tuple
}

func NewTupleBuilder() *TupleBuilder {
	return &TupleBuilder{t: newTuple()}
}

// Set inserts or overwrites key -> val, preserving first-insertion order.
func (b *TupleBuilder) Set(key, val Value) *TupleBuilder {
	if b.t == nil {
		b.t = newTuple()
	}
	b.t.set(key, val)
	return b
}

// SetPositional is shorthand for Set(IntegerFromInt64(i), val).
func (b *TupleBuilder) SetPositional(i int64, val Value) *TupleBuilder {
	return b.Set(IntegerFromInt64(i), val)
}

// SetNamed is shorthand for Set(BytesFromString(key), val).
func (b *TupleBuilder) SetNamed(key string, val Value) *TupleBuilder {
	return b.Set(BytesFromString(key), val)
}

// Build finalizes the Tuple Value.
func (b *TupleBuilder) Build() Value {
	if b.t == nil {
		b.t = newTuple()
	}
	return Value{kind: KindTuple, tuple: b.t}
}

// TupleFromPositional builds a Tuple with contiguous integer keys
// 0, 1, 2, … from elems, in order.
func TupleFromPositional(elems []Value) Value {
	b := NewTupleBuilder()
	for i, e := range elems {
		b.SetPositional(int64(i), e)
	}
	return b.Build()
}

// TupleGet looks up key in a Tuple, returning (value, true) if present.
func (v Value) TupleGet(key Value) (Value, bool) {
	if v.kind != KindTuple {
		return Value{}, false
	}
	return v.tuple.get(key)
}

// TupleGetNamed is shorthand for TupleGet(BytesFromString(key)).
func (v Value) TupleGetNamed(key string) (Value, bool) {
	return v.TupleGet(BytesFromString(key))
}

// TupleLen returns the number of key/value pairs, or 0 for anything else.
func (v Value) TupleLen() int {
	if v.kind != KindTuple {
		return 0
	}
	return v.tuple.Len()
}

// TupleEntry is one key/value pair, returned by TupleEntries in
// insertion order.
type TupleEntry struct {
	Key   Value
	Value Value
}

// TupleEntries returns every entry of a Tuple in insertion order, or nil
// for anything else.
func (v Value) TupleEntries() []TupleEntry {
	if v.kind != KindTuple {
		return nil
	}
	out := make([]TupleEntry, v.tuple.Len())
	for i := range v.tuple.keys {
		out[i] = TupleEntry{Key: v.tuple.keys[i], Value: v.tuple.vals[i]}
	}
	return out
}

// TuplePositionalAndNamed splits a Tuple's entries into its positional run
// (contiguous integer keys starting at zero, in index order) and its
// remaining named entries (in insertion order, unsorted — callers sort
// them per their own codec's comparator). This is the "positional
// argument" detection spec §3 describes.
func (v Value) TuplePositionalAndNamed() (positional []Value, named []TupleEntry) {
	if v.kind != KindTuple {
		return nil, nil
	}

	// Find how many contiguous integers 0..n-1 are present as keys.
	n := 0
	for {
		key := IntegerFromInt64(int64(n))
		val, ok := v.tuple.get(key)
		if !ok {
			break
		}
		positional = append(positional, val)
		n++
	}

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		seen[indexKey(IntegerFromInt64(int64(i)))] = true
	}
	for i := range v.tuple.keys {
		ik := indexKey(v.tuple.keys[i])
		if seen[ik] {
			continue
		}
		named = append(named, TupleEntry{Key: v.tuple.keys[i], Value: v.tuple.vals[i]})
	}
	return positional, named
}

// indexKey produces a deterministic, collision-free string for using a
// Value as a map key internally. It is not a wire format; it only needs
// to satisfy: indexKey(a) == indexKey(b) iff a.Equal(b).
func indexKey(v Value) string {
	var sb []byte
	sb = appendIndexKey(sb, v)
	return string(sb)
}

func appendIndexKey(buf []byte, v Value) []byte {
	buf = append(buf, byte(v.kind), ':')
	switch v.kind {
	case KindOmega, KindRelation, KindMatrix, KindProcedure:
		// no payload
	case KindBoolean:
		if v.boolVal {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	case KindInteger:
		buf = appendLenPrefixed(buf, v.intVal.Bytes())
		if v.intVal.Sign() < 0 {
			buf = append(buf, '-')
		} else {
			buf = append(buf, '+')
		}
	case KindRational:
		buf = appendLenPrefixed(buf, numBytes(v.ratNum))
		buf = appendLenPrefixed(buf, numBytes(v.ratDen))
	case KindBytes:
		buf = appendLenPrefixed(buf, v.bytesVal)
	case KindUnicode:
		buf = appendLenPrefixed(buf, []byte(v.unicodeVal))
	case KindSet:
		// Order-independent: sort each element's own key before combining.
		keys := make([]string, len(v.setElems))
		for i, e := range v.setElems {
			keys[i] = indexKey(e)
		}
		sort.Strings(keys)
		for _, k := range keys {
			buf = appendLenPrefixed(buf, []byte(k))
		}
	case KindSequence:
		for _, e := range v.seqElems {
			buf = appendLenPrefixed(buf, []byte(indexKey(e)))
		}
	case KindTuple:
		keys := make([]string, v.tuple.Len())
		pairs := make(map[string]string, v.tuple.Len())
		for i := range v.tuple.keys {
			k := indexKey(v.tuple.keys[i])
			keys[i] = k
			pairs[k] = indexKey(v.tuple.vals[i])
		}
		sort.Strings(keys)
		for _, k := range keys {
			buf = appendLenPrefixed(buf, []byte(k))
			buf = appendLenPrefixed(buf, []byte(pairs[k]))
		}
	}
	return buf
}

func numBytes(n *big.Int) []byte {
	sign := byte('+')
	if n.Sign() < 0 {
		sign = '-'
	}
	return append([]byte{sign}, n.Bytes()...)
}

func appendLenPrefixed(buf, data []byte) []byte {
	n := len(data)
	for n >= 0x80 {
		buf = append(buf, byte(n)|0x80)
		n >>= 7
	}
	buf = append(buf, byte(n))
	return append(buf, data...)
}
