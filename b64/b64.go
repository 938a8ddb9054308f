// Package b64 is a strict standard-alphabet base64 codec. Decode refuses
// anything Encode could not have produced.
package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput is returned (wrapped) for undecodable input.
var ErrMalformedInput = errors.New("b64: malformed input")

var enc = base64.StdEncoding.Strict()

// Encode returns the padded base64 encoding of src.
func Encode(src []byte) string {
	return enc.EncodeToString(src)
}

// EncodeString encodes s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// Decode decodes s. The length must be a multiple of 4, '=' may only
// appear as the last one or two characters, and no whitespace is allowed.
func Decode(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrMalformedInput, len(s))
	}
	if i := strings.IndexByte(s, '='); i >= 0 && i < len(s)-2 {
		return nil, fmt.Errorf("%w: padding at offset %d", ErrMalformedInput, i)
	}
	if n := len(s); n > 0 && s[n-2] == '=' && s[n-1] != '=' {
		return nil, fmt.Errorf("%w: padding at offset %d", ErrMalformedInput, len(s)-2)
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: line break at offset %d", ErrMalformedInput, i)
	}

	out, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return out, nil
}

// DecodeString decodes s into a string.
func DecodeString(s string) (string, error) {
	b, err := Decode(s)
	return string(b), err
}
