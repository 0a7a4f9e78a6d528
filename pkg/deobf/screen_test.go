package deobf

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen(t *testing.T) {
	for i := 0; i < 16; i++ {
		key := make([]byte, KeyLen)
		_, err := rand.Read(key)
		require.NoError(t, err)

		blob, err := Screen(key)
		require.NoError(t, err)
		assert.Len(t, blob, BlobLen)

		recovered, err := Deobfuscate(blob)
		require.NoError(t, err)
		assert.Equal(t, key, []byte(recovered))
	}
}

func TestScreen_Reference(t *testing.T) {
	key := mustHex(t, referenceKey)
	a, err := Screen(key)
	require.NoError(t, err)
	b, err := Screen(key)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "Screening should use fresh filler words each time")

	for _, blob := range []Blob{a, b} {
		recovered, err := Deobfuscate(blob)
		require.NoError(t, err)
		assert.Equal(t, key, []byte(recovered))
	}
}

func TestScreen_WithEntropy(t *testing.T) {
	var (
		key     = mustHex(t, referenceKey)
		entropy = bytes.Repeat([]byte{0x5A, 0xC3, 0x11}, 200)
	)
	a, err := Screen(key, WithEntropy(bytes.NewReader(entropy)))
	require.NoError(t, err)
	b, err := Screen(key, WithEntropy(bytes.NewReader(entropy)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	recovered, err := Deobfuscate(a)
	require.NoError(t, err)
	assert.Equal(t, key, []byte(recovered))
}

func TestScreen_ZeroEntropy(t *testing.T) {
	blob, err := Screen(make([]byte, KeyLen), WithEntropy(bytes.NewReader(make([]byte, 1024))))
	require.NoError(t, err)
	assert.Equal(t, make([]byte, BlobLen), []byte(blob))
}

func TestScreen_Neg(t *testing.T) {
	_, err := Screen(make([]byte, KeyLen-1))
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = Screen(nil)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Screen(make([]byte, KeyLen), WithEntropy(nil))
	assert.Error(t, err)

	_, err = Screen(make([]byte, KeyLen), WithEntropy(bytes.NewReader(make([]byte, BlobLen))))
	assert.Error(t, err, "Short entropy reads should fail")
}
