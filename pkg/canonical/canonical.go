// Package canonical implements the strict, length-prefixed, bijective
// "Canonical Expression" binary codec (spec §4.4, §6). Unlike the simple
// codec, it has no encoding option: dump/dumps always produce raw bytes.
package canonical

import (
	"bytes"
	"io"

	"github.com/haiku-lang/go-haiku/pkg/value"
)

// Loads parses data into a single top-level Tuple whose positional
// entries are the top-level expressions found in it, in order (spec §6).
func Loads(data []byte) (value.Value, error) {
	return decodeAll(data)
}

// Load reads r to EOF and parses the result. The canonical codec has no
// text encoding to apply; bytes are the wire format.
func Load(r io.Reader) (value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return value.Value{}, err
	}
	return Loads(data)
}

// Dumps serializes zero or more values independently, concatenated with
// no separator — canonical atoms and brackets are self-delimiting, so
// none is needed (spec §4.4).
func Dumps(vs ...value.Value) ([]byte, error) {
	var buf bytes.Buffer
	for _, v := range vs {
		if err := serialize(&buf, v); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Dump serializes vs and writes the encoded bytes to w.
func Dump(w io.Writer, vs ...value.Value) error {
	data, err := Dumps(vs...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
