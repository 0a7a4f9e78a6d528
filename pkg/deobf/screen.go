package deobf

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type screenOpts struct {
	entropy io.Reader
}

// ScreenOpt configures Screen.
// If any ScreenOpt returns an error, then screening stops and the error is returned.
type ScreenOpt = func(opts *screenOpts) error

// WithEntropy overrides crypto/rand as the source of filler words.
// This is mostly useful for producing repeatable fixtures in tests.
func WithEntropy(r io.Reader) ScreenOpt {
	return func(opts *screenOpts) error {
		if r == nil {
			return errors.New("nil entropy source")
		}
		opts.entropy = r
		return nil
	}
}

// Screen builds a blob that Deobfuscate will turn back into the given key.
// The key must be exactly KeyLen bytes.
// Every unused word in the blob is random, so repeated calls are expected to return different blobs.
func Screen(key []byte, opts ...ScreenOpt) (Blob, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidLength, KeyLen, len(key))
	}
	o := &screenOpts{entropy: rand.Reader}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	filler := make([]byte, BlobLen+2*keyWords)
	n, err := io.ReadFull(o.entropy, filler)
	if err != nil {
		return nil, fmt.Errorf("failed to read requested bytes (%d of %d): %w", n, len(filler), err)
	}
	w, err := readWords(filler[:BlobLen])
	if err != nil {
		return nil, err
	}
	spare := filler[BlobLen:]

	// Words 2i and 2i+1 are the only ones rewritten, and neither is ever read as v16 or the mask.
	for i := 0; i < keyWords; i++ {
		v16 := w[63-2*i]
		mask := w[63-i]
		want := uint16(key[2*i]) | uint16(key[2*i+1])<<8
		mixed := rotate(want^mask, -shiftFor(i))
		r := binary.LittleEndian.Uint16(spare[2*i:])
		w[2*i] = v16 ^ mixed
		w[2*i+1] = v16 ^ (mixed & r)
	}

	var buf bytes.Buffer
	buf.Grow(BlobLen)
	if err := w.mapper().Write(&buf, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to write blob words: %w", err)
	}
	return buf.Bytes(), nil
}
