// Package encutil adapts the simple codec's "encoding" option (spec §6,
// "Recognized configuration options") to concrete byte transcoding. It is
// grounded on the teacher's BOM-aware file-decoding helper in
// internal/interp/encoding.go, generalized from a single "detect from a
// file" entry point into a named-encoding Decode/Encode pair so both
// `load` and `dump` can use it.
package encutil

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Name identifies one of the text encodings the simple codec accepts.
type Name string

const (
	UTF8  Name = "utf-8"
	UTF16 Name = "utf-16"
)

// Decode turns raw bytes read from a `load` source into UTF-8 text. For
// utf-16, a leading BOM selects endianness; absent a BOM, big-endian is
// assumed per the golang.org/x/text default.
func Decode(data []byte, enc Name) (string, error) {
	switch enc {
	case "", UTF8:
		return string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})), nil
	case UTF16:
		return decodeUTF16(data)
	default:
		return "", fmt.Errorf("encutil: unrecognized encoding %q", enc)
	}
}

// Encode turns UTF-8 text into the byte form `dump` writes to its sink.
func Encode(text string, enc Name) ([]byte, error) {
	switch enc {
	case "", UTF8:
		return []byte(text), nil
	case UTF16:
		return encodeUTF16(text)
	default:
		return nil, fmt.Errorf("encutil: unrecognized encoding %q", enc)
	}
}

func decodeUTF16(data []byte) (string, error) {
	endianness := unicode.BigEndian
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		endianness = unicode.LittleEndian
	}

	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("encutil: decode UTF-16: %w", err)
	}

	utf8Data = bytes.TrimPrefix(utf8Data, []byte{0xEF, 0xBB, 0xBF})
	result := bytes.TrimPrefix(utf8Data, []byte("﻿"))
	return string(result), nil
}

func encodeUTF16(text string) ([]byte, error) {
	encoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(encoder, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encutil: encode UTF-16: %w", err)
	}
	return out, nil
}
