package canonical

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/haiku-lang/go-haiku/pkg/value"
)

// TestDumpsSnapshots pins the exact byte-string the canonical serializer
// produces for one representative value per variant.
func TestDumpsSnapshots(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
	}{
		{"omega", value.Omega},
		{"boolean_true", value.Boolean(true)},
		{"integer_three", value.IntegerFromInt64(3)},
		{"integer_negative_one", value.IntegerFromInt64(-1)},
		{"rational_unreduced", value.Rational(big.NewInt(6), big.NewInt(8))},
		{"unicode", value.Unicode("tschüss!")},
		{"bytes", value.BytesFromString("cat")},
		{"set_sorted", value.Set([]value.Value{value.IntegerFromInt64(3), value.IntegerFromInt64(1), value.IntegerFromInt64(2)})},
		{"sequence", value.Sequence([]value.Value{value.BytesFromString("a"), value.BytesFromString("b")})},
		{"tuple_mixed", value.NewTupleBuilder().
			SetPositional(0, value.BytesFromString("if")).
			SetNamed("else", value.Unicode("whew")).
			SetNamed("then", value.Omega).
			Build()},
	}

	for _, tc := range cases {
		data, err := Dumps(tc.v)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		snaps.MatchSnapshot(t, tc.name, fmt.Sprintf("%q", data))
	}
}
