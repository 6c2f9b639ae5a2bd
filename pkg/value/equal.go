package value

// Equal reports whether v and o denote the same Value. Tuple comparison
// is order-independent (spec §3); Set comparison treats elements as an
// unordered multiset; Rational comparison is structural — numerator and
// denominator must match exactly, since reduction to lowest terms is not
// required for equality at this layer (spec §9 note 5).
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindOmega, KindRelation, KindMatrix, KindProcedure:
		return true
	case KindBoolean:
		return v.boolVal == o.boolVal
	case KindInteger:
		return v.intVal.Cmp(o.intVal) == 0
	case KindRational:
		return v.ratNum.Cmp(o.ratNum) == 0 && v.ratDen.Cmp(o.ratDen) == 0
	case KindBytes:
		return string(v.bytesVal) == string(o.bytesVal)
	case KindUnicode:
		return v.unicodeVal == o.unicodeVal
	case KindSequence:
		if len(v.seqElems) != len(o.seqElems) {
			return false
		}
		for i := range v.seqElems {
			if !v.seqElems[i].Equal(o.seqElems[i]) {
				return false
			}
		}
		return true
	case KindSet:
		return setEqual(v.setElems, o.setElems)
	case KindTuple:
		if v.tuple.Len() != o.tuple.Len() {
			return false
		}
		for i := range v.tuple.keys {
			ov, ok := o.tuple.get(v.tuple.keys[i])
			if !ok || !v.tuple.vals[i].Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func setEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		matched := false
		for j, bv := range b {
			if used[j] {
				continue
			}
			if av.Equal(bv) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
