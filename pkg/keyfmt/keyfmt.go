// Package keyfmt renders a recovered key for display or for hand-off to other tools.
package keyfmt

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"strings"

	"github.com/saylorsolutions/keyscreen/pkg/deobf"
	"github.com/saylorsolutions/keyscreen/pkg/hexcodec"
	"golang.org/x/crypto/ed25519"
)

const (
	PEMType = "PUBLIC KEY"
)

// NotSupported is an error indicating that the operation is not supported.
type NotSupported string

func (n NotSupported) Error() string {
	return string(n)
}

// Format selects how a key is written by Write.
type Format int

const (
	// Hex writes "Result: " followed by the uppercase hex key.
	Hex Format = iota
	// Base64 writes the key in standard base64 encoding.
	Base64
	// PEM writes the key as a PKIX encoded Ed25519 public key in a PEM block.
	PEM
)

var formatNames = map[Format]string{
	Hex:    "hex",
	Base64: "base64",
	PEM:    "pem",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to a Format, ignoring case and surrounding space.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, NotSupported(fmt.Sprintf("unsupported key format '%s'", name))
}

// PublicKey reinterprets the recovered key as an Ed25519 public key.
// Only the length is checked, since the bytes aren't validated as a curve point.
func PublicKey(key []byte) (ed25519.PublicKey, error) {
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: Ed25519 public key must be %d bytes, got %d", deobf.ErrInvalidLength, ed25519.PublicKeySize, len(key))
	}
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, key)
	return pub, nil
}

// PublicKeyAsBytes encodes the key as a PKIX Ed25519 public key.
func PublicKeyAsBytes(key []byte) ([]byte, error) {
	pub, err := PublicKey(key)
	if err != nil {
		return nil, err
	}
	data, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ED25519 public key to bytes: %w", err)
	}
	return data, nil
}

// WritePEMBlock writes the PKIX encoded key in a PEM block of type PEMType.
func WritePEMBlock(w io.Writer, key []byte) error {
	data, err := PublicKeyAsBytes(key)
	if err != nil {
		return err
	}
	err = pem.Encode(w, &pem.Block{
		Type:  PEMType,
		Bytes: data,
	})
	if err != nil {
		return fmt.Errorf("failed to encode PEM block: %w", err)
	}
	return nil
}

// Write emits the key to w in the given Format, followed by a newline.
func Write(w io.Writer, key []byte, f Format) error {
	switch f {
	case Hex:
		_, err := fmt.Fprintf(w, "Result: %s\n", hexcodec.Encode(key))
		return err
	case Base64:
		_, err := fmt.Fprintln(w, base64.StdEncoding.EncodeToString(key))
		return err
	case PEM:
		return WritePEMBlock(w, key)
	default:
		return NotSupported(fmt.Sprintf("unsupported key format %s", f))
	}
}
