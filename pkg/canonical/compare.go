package canonical

import (
	"bytes"

	"github.com/haiku-lang/go-haiku/pkg/value"
)

// Compare orders two Values by the lexicographic order of their own
// canonical byte encodings (spec §9 note 4), the comparator the
// canonical codec uses for a Set's elements and a Tuple's named keys. It
// necessarily lives here rather than in pkg/value, since computing it
// requires the canonical serializer itself.
//
// Unserializable values (Relation, Matrix, Procedure) compare as equal to
// each other and less than everything else, so a Set or Tuple containing
// one still sorts deterministically even though it can never itself be
// dumped.
func Compare(a, b value.Value) int {
	ab, aErr := Dumps(a)
	bb, bErr := Dumps(b)
	switch {
	case aErr != nil && bErr != nil:
		return 0
	case aErr != nil:
		return -1
	case bErr != nil:
		return 1
	default:
		return bytes.Compare(ab, bb)
	}
}

// Sort orders elems in place by Compare.
func Sort(elems []value.Value) {
	for i := 1; i < len(elems); i++ {
		for j := i; j > 0 && Compare(elems[j-1], elems[j]) > 0; j-- {
			elems[j-1], elems[j] = elems[j], elems[j-1]
		}
	}
}
