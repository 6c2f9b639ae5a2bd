package value

import (
	"bytes"
	"math/big"
)

// Compare defines the simple codec's sort order: it is used to order a
// Tuple's named keys and a Set's elements when the simple serializer walks
// them (spec §3, §4.3). It is a total order across every Kind; values of
// different kinds are ordered by Kind first.
//
// This is distinct from the canonical codec's ordering, which sorts by
// each element's canonical byte encoding (spec §9 note 4) — that
// comparator lives in pkg/canonical, next to the encoder it depends on.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}

	switch a.kind {
	case KindOmega, KindRelation, KindMatrix, KindProcedure:
		return 0
	case KindBoolean:
		return boolCompare(a.boolVal, b.boolVal)
	case KindInteger:
		return a.intVal.Cmp(b.intVal)
	case KindRational:
		// Cross-multiply: a.num/a.den vs b.num/b.den, both dens positive.
		lhs := new(big.Int).Mul(a.ratNum, b.ratDen)
		rhs := new(big.Int).Mul(b.ratNum, a.ratDen)
		return lhs.Cmp(rhs)
	case KindBytes:
		return bytes.Compare(a.bytesVal, b.bytesVal)
	case KindUnicode:
		return stringCompare(a.unicodeVal, b.unicodeVal)
	case KindSequence:
		return compareSlices(a.seqElems, b.seqElems)
	case KindSet:
		as, bs := sortedElems(a.setElems), sortedElems(b.setElems)
		return compareSlices(as, bs)
	case KindTuple:
		ae, be := sortedTupleEntries(a), sortedTupleEntries(b)
		if len(ae) != len(be) {
			return intCompare(len(ae), len(be))
		}
		for i := range ae {
			if c := Compare(ae[i].Key, be[i].Key); c != 0 {
				return c
			}
			if c := Compare(ae[i].Value, be[i].Value); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

// SortValues sorts elems in place by Compare — the order the simple
// serializer emits a Set's elements in (spec §4.3).
func SortValues(elems []Value) { insertionSortValues(elems) }

// SortEntries sorts entries in place by Compare on each entry's Key — the
// order the simple serializer emits a Tuple's named keys in (spec §4.3,
// §3).
func SortEntries(entries []TupleEntry) { insertionSortEntries(entries) }

func sortedElems(elems []Value) []Value {
	out := make([]Value, len(elems))
	copy(out, elems)
	insertionSortValues(out)
	return out
}

func sortedTupleEntries(v Value) []TupleEntry {
	entries := v.TupleEntries()
	insertionSortEntries(entries)
	return entries
}

func insertionSortValues(vs []Value) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && Compare(vs[j-1], vs[j]) > 0; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}

func insertionSortEntries(es []TupleEntry) {
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && Compare(es[j-1].Key, es[j].Key) > 0; j-- {
			es[j-1], es[j] = es[j], es[j-1]
		}
	}
}

func compareSlices(a, b []Value) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return intCompare(len(a), len(b))
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
