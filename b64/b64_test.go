package b64

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeKnown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"hello world", "aGVsbG8gd29ybGQ="},
	}
	for _, tt := range tests {
		if got := EncodeString(tt.in); got != tt.want {
			t.Errorf("EncodeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 300; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*31 + n)
		}
		got, err := Decode(Encode(src))
		if err != nil {
			t.Fatalf("Decode(Encode(%d bytes)): %v", n, err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip of %d bytes changed the data", n)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"abc",
		"====a",
		"====",
		"ab=c",
		"a===",
		"Zg=a",
		"Zm9v\nZm9v",
		"Zm9vZm9v\r\n\r\n",
		"Zm9v!m9v",
		"Zh==", // non-zero trailing bits
	} {
		if _, err := Decode(in); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformedInput", in, err)
		}
	}
}

func TestDecodeRejectsLineBreaks(t *testing.T) {
	// A multiple of 4 long, and accepted by encoding/base64, which skips
	// CR and LF.
	const in = "Zm9vZm9v\r\n\r\n"
	_, err := Decode(in)
	if !errors.Is(err, ErrMalformedInput) || !strings.Contains(err.Error(), "line break at offset 8") {
		t.Errorf("Decode(%q) error = %v, want a line break at offset 8", in, err)
	}
}

func TestDecodeString(t *testing.T) {
	got, err := DecodeString("aGVsbG8gd29ybGQ=")
	if err != nil || got != "hello world" {
		t.Errorf("DecodeString = %q, %v", got, err)
	}
}
