package deobf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	// BlobLen is the length in bytes of an obfuscated key blob.
	BlobLen = 256
	// WordCount is the number of 16-bit words in a blob.
	WordCount = BlobLen / 2
	// ActiveLen is the number of leading blob bytes that are read by Deobfuscate.
	ActiveLen = 128
	// KeyLen is the length in bytes of a recovered key.
	KeyLen = 32

	keyWords = KeyLen / 2
)

var (
	ErrInvalidLength = errors.New("invalid length")
)

// Blob is the obfuscated form of a Key.
type Blob []byte

// Key is a recovered public key.
type Key []byte

type words [WordCount]uint16

func (w *words) mapper() bin.Mapper {
	mappers := make([]bin.Mapper, WordCount)
	for i := range w {
		mappers[i] = bin.Int(&w[i])
	}
	return bin.MapSequence(mappers...)
}

func readWords(blob []byte) (*words, error) {
	w := new(words)
	if err := w.mapper().Read(bytes.NewReader(blob), binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to read blob words: %w", err)
	}
	return w, nil
}

// Deobfuscate recovers the Key embedded in the given blob.
// The blob must be exactly BlobLen bytes, and is not modified.
func Deobfuscate(blob []byte) (Key, error) {
	if len(blob) != BlobLen {
		return nil, fmt.Errorf("%w: blob must be %d bytes, got %d", ErrInvalidLength, BlobLen, len(blob))
	}
	w, err := readWords(blob)
	if err != nil {
		return nil, err
	}

	key := make(Key, KeyLen)
	for i := 0; i < keyWords; i++ {
		v16 := w[63-2*i]
		v17 := (w[2*i+1] ^ v16) | (v16 ^ w[2*i])
		result := rotate(v17, shiftFor(i)) ^ w[63-i]
		key[2*i] = byte(result)
		key[2*i+1] = byte(result >> 8)
	}
	return key, nil
}

// Extend zero-fills a blob carrying at least the ActiveLen leading bytes out to BlobLen.
// A copy is always returned.
func Extend(blob []byte) (Blob, error) {
	if len(blob) < ActiveLen || len(blob) > BlobLen {
		return nil, fmt.Errorf("%w: blob must be between %d and %d bytes, got %d", ErrInvalidLength, ActiveLen, BlobLen, len(blob))
	}
	out := make(Blob, BlobLen)
	copy(out, blob)
	return out, nil
}

func shiftFor(i int) int {
	return 11 - (i & 7)
}

// rotate rotates v within 16 bits, to the left for a positive shift and to the right otherwise.
func rotate(v uint16, shift int) uint16 {
	if shift > 0 {
		s := uint(shift) & 15
		return v<<s | v>>(16-s)
	}
	s := uint(-shift) & 15
	return v>>s | v<<(16-s)
}
