package canonical

import (
	"bytes"
	"math/big"

	"github.com/haiku-lang/go-haiku/internal/herrors"
	"github.com/haiku-lang/go-haiku/pkg/value"
)

// encodedEntry pairs a named Tuple entry's already-serialized key and
// value, so they can be sorted by key bytes before being written out
// (spec §4.4: "named keys sorted by their canonical-encoded byte
// string").
type encodedEntry struct {
	keyBytes []byte
	valBytes []byte
}

// serialize appends v's canonical byte encoding to buf (spec §4.4's
// per-variant encoding table). Every variant except Omega (the empty
// atom), Bytes and Sequence rides on the bracketed-tuple atom syntax that also represents a plain
// Tuple: a leading atom names the type, the remaining parts are its
// payload.
func serialize(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindOmega:
		writeAtom(buf, nil)
	case value.KindBoolean:
		buf.WriteByte('[')
		if v.BoolValue() {
			writeAtom(buf, []byte("true"))
		} else {
			writeAtom(buf, []byte("false"))
		}
		buf.WriteByte(']')
	case value.KindInteger:
		serializeInteger(buf, v.IntValue())
	case value.KindRational:
		return serializeRational(buf, v)
	case value.KindUnicode:
		buf.WriteByte('[')
		writeAtom(buf, []byte("string"))
		writeAtom(buf, []byte(v.UnicodeValue()))
		buf.WriteByte(']')
	case value.KindBytes:
		writeAtom(buf, v.BytesValue())
	case value.KindSet:
		return serializeSet(buf, v)
	case value.KindTuple:
		return serializeTuple(buf, v)
	case value.KindSequence:
		return serializeSequence(buf, v)
	case value.KindRelation, value.KindMatrix, value.KindProcedure:
		return &herrors.Unserializable{Kind: v.Kind().String()}
	default:
		return &herrors.ValueError{Message: "unrecognized value kind"}
	}
	return nil
}

func writeAtom(buf *bytes.Buffer, data []byte) {
	writeDecimal(buf, len(data))
	buf.WriteByte(':')
	buf.Write(data)
}

func writeDecimal(buf *bytes.Buffer, n int) {
	if n == 0 {
		buf.WriteByte('0')
		return
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		buf.WriteByte(digits[i])
	}
}

func serializeInteger(buf *bytes.Buffer, n *big.Int) {
	buf.WriteByte('[')
	writeAtom(buf, []byte("integer"))
	writeAtom(buf, encodeTwosComplement(n))
	buf.WriteByte(']')
}

func serializeRational(buf *bytes.Buffer, v value.Value) error {
	num, den := v.RationalParts()
	buf.WriteByte('[')
	writeAtom(buf, []byte("rational"))
	serializeInteger(buf, num)
	serializeInteger(buf, den)
	buf.WriteByte(']')
	return nil
}

// quoteHeads recognizes the three parser-produced wrapper Tuples that
// get the shorthand prefix-byte encoding instead of the general bracketed
// form (spec §4.4's "Special forms" row).
var quoteHeads = map[string]byte{
	"quote":          '\'',
	"unquote":        ',',
	"unquote-splice": '`',
}

func serializeSet(buf *bytes.Buffer, v value.Value) error {
	elems := v.SetElements()
	Sort(elems)
	buf.WriteByte('[')
	writeAtom(buf, []byte("set"))
	for _, e := range elems {
		if err := serialize(buf, e); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func serializeSequence(buf *bytes.Buffer, v value.Value) error {
	buf.WriteByte('(')
	for _, e := range v.SequenceElements() {
		if err := serialize(buf, e); err != nil {
			return err
		}
	}
	buf.WriteByte(')')
	return nil
}

func serializeTuple(buf *bytes.Buffer, v value.Value) error {
	if prefix, inner, ok := asQuoteWrap(v); ok {
		buf.WriteByte(prefix)
		return serialize(buf, inner)
	}

	positional, named := v.TuplePositionalAndNamed()

	entries := make([]encodedEntry, len(named))
	for i, e := range named {
		var kb, vb bytes.Buffer
		if err := serialize(&kb, e.Key); err != nil {
			return err
		}
		if err := serialize(&vb, e.Value); err != nil {
			return err
		}
		entries[i] = encodedEntry{keyBytes: kb.Bytes(), valBytes: vb.Bytes()}
	}
	sortEncodedEntries(entries)

	buf.WriteByte('[')
	for _, p := range positional {
		if err := serialize(buf, p); err != nil {
			return err
		}
	}
	for _, e := range entries {
		buf.WriteByte('=')
		buf.Write(e.keyBytes)
		buf.Write(e.valBytes)
	}
	buf.WriteByte(']')
	return nil
}

func asQuoteWrap(v value.Value) (prefix byte, inner value.Value, ok bool) {
	positional, named := v.TuplePositionalAndNamed()
	if len(named) != 0 || len(positional) != 2 || !positional[0].IsBytes() {
		return 0, value.Value{}, false
	}
	p, found := quoteHeads[string(positional[0].BytesValue())]
	if !found {
		return 0, value.Value{}, false
	}
	return p, positional[1], true
}

func sortEncodedEntries(es []encodedEntry) {
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && bytes.Compare(es[j-1].keyBytes, es[j].keyBytes) > 0; j-- {
			es[j-1], es[j] = es[j], es[j-1]
		}
	}
}
