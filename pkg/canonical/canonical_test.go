package canonical

import (
	"math/big"
	"testing"

	"github.com/haiku-lang/go-haiku/pkg/value"
)

func TestDumpsConcreteScenarios(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.IntegerFromInt64(3), "[7:integer1:\x03]"},
		{value.Omega, "0:"},
		{value.BytesFromString("cat"), "3:cat"},
	}

	for _, tt := range tests {
		got, err := Dumps(tt.v)
		if err != nil {
			t.Fatalf("dumps(%v): unexpected error: %v", tt.v, err)
		}
		if string(got) != tt.want {
			t.Errorf("dumps(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []value.Value{
		value.Omega,
		value.Boolean(true),
		value.Boolean(false),
		value.IntegerFromInt64(0),
		value.IntegerFromInt64(3),
		value.IntegerFromInt64(-1),
		value.IntegerFromInt64(-128),
		value.IntegerFromInt64(127),
		value.IntegerFromInt64(128),
		value.Rational(big.NewInt(1), big.NewInt(2)),
		value.Unicode("tschüss!"),
		value.BytesFromString("cat"),
		value.Bytes([]byte{0x00, 0xFF}),
		value.Set([]value.Value{value.IntegerFromInt64(3), value.IntegerFromInt64(1), value.IntegerFromInt64(2)}),
		value.Sequence([]value.Value{value.BytesFromString("a"), value.BytesFromString("b")}),
	}

	for _, v := range values {
		data, err := Dumps(v)
		if err != nil {
			t.Fatalf("dumps(%v): unexpected error: %v", v, err)
		}
		got, err := Loads(data)
		if err != nil {
			t.Fatalf("loads(%q): unexpected error: %v", data, err)
		}
		entry, ok := got.TupleGet(value.IntegerFromInt64(0))
		if !ok {
			t.Fatalf("loads(%q): expected a positional entry", data)
		}
		if !entry.Equal(v) {
			t.Errorf("round-trip mismatch for %v: got %v", v, entry)
		}
	}
}

func TestDumpsTupleNamedKeysAndPositional(t *testing.T) {
	tup := value.NewTupleBuilder().
		SetPositional(0, value.BytesFromString("if")).
		SetNamed("else", value.Unicode("whew")).
		SetNamed("then", value.Omega).
		Build()

	data, err := Dumps(tup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Loads(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, _ := got.TupleGet(value.IntegerFromInt64(0))
	if !entry.Equal(tup) {
		t.Errorf("round-trip mismatch: got %v, want %v", entry, tup)
	}
}

func TestDumpsUnserializableKinds(t *testing.T) {
	for _, v := range []value.Value{value.Relation(), value.Matrix(), value.Procedure()} {
		if _, err := Dumps(v); err == nil {
			t.Errorf("expected an Unserializable error for %v", v.Kind())
		}
	}
}

func TestCanonicalUniquenessAcrossEqualSets(t *testing.T) {
	s1 := value.Set([]value.Value{value.IntegerFromInt64(1), value.IntegerFromInt64(2)})
	s2 := value.Set([]value.Value{value.IntegerFromInt64(2), value.IntegerFromInt64(1)})
	if !s1.Equal(s2) {
		t.Fatal("expected the two Sets to be Equal regardless of construction order")
	}
	d1, err := Dumps(s1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d2, err := Dumps(s2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(d1) != string(d2) {
		t.Errorf("canonical encodings differ for equal Sets: %q vs %q", d1, d2)
	}
}

func TestLoadsRationalWithNonPositiveDenominatorIsSyntaxError(t *testing.T) {
	// Hand-built canonical blobs encoding [rational 3 0] and
	// [rational 3 -1]: the two's-complement integer payloads below are
	// empty (zero) and 0xFF (-1) respectively (internal/canontoken +
	// integer.go's decodeTwosComplement), so this never goes through
	// Dumps — it targets a decoder reading an untrusted, crafted blob.
	zeroDen := "[8:rational[7:integer1:\x03][7:integer0:]]"
	negDen := "[8:rational[7:integer1:\x03][7:integer1:\xff]]"

	for _, blob := range []string{zeroDen, negDen} {
		if _, err := Loads([]byte(blob)); err == nil {
			t.Errorf("Loads(%q): expected a SyntaxError for a non-positive denominator, got none", blob)
		}
	}
}

func TestQuoteShorthandRoundTrip(t *testing.T) {
	quoted := value.NewTupleBuilder().
		SetPositional(0, value.BytesFromString("quote")).
		SetPositional(1, value.BytesFromString("x")).
		Build()

	data, err := Dumps(quoted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data[0] != '\'' {
		t.Errorf("expected shorthand quote prefix, got %q", data)
	}
	got, err := Loads(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, _ := got.TupleGet(value.IntegerFromInt64(0))
	if !entry.Equal(quoted) {
		t.Errorf("round-trip mismatch: got %v, want %v", entry, quoted)
	}
}
