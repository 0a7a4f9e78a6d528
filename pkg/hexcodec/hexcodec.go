// Package hexcodec converts between hexadecimal text and raw bytes.
// Encoding always produces uppercase digits, decoding accepts either case.
package hexcodec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidFormat = errors.New("invalid hex format")
)

// Decode parses a hex string with the most significant nibble of each byte first.
// Odd length strings and strings with characters outside of 0-9, a-f, and A-F are rejected with ErrInvalidFormat.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidFormat, len(s))
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w: invalid character %q", ErrInvalidFormat, rune(invalid))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return data, nil
}

// DecodeReader reads all hex text from r and decodes it.
// ASCII whitespace is dropped first, so line wrapped dumps may be read as-is.
func DecodeReader(r io.Reader) ([]byte, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(string(bytes.Join(bytes.Fields(text), nil)))
}

// Encode emits two uppercase hex digits for every byte in data.
func Encode(data []byte) string {
	out := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(out, data)
	return string(bytes.ToUpper(out))
}
