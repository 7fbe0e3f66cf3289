package key

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Size is the only supported key length, in bytes.
const Size = 16

var ErrInvalidKeySize = errors.New("key: key must be exactly 16 bytes")

type Key interface {
	GetBytes() []byte
	Len() int
}

type key128 struct {
	material [Size]byte
}

// GetBytes returns a copy of the key material.
func (k *key128) GetBytes() []byte {
	b := make([]byte, Size)
	copy(b, k.material[:])
	return b
}

func (k *key128) Len() int {
	return len(k.material)
}

// Bit128 generates a random 128 bit key from crypto/rand.
func Bit128() Key {
	k, err := Random(rand.Reader)
	if err != nil {
		panic("Could not generate random bytes")
	}
	return k
}

// Random reads a 128 bit key from r.
func Random(r io.Reader) (Key, error) {
	b, err := generateRandomBytes(r, Size)
	if err != nil {
		return nil, err
	}
	return &key128{material: [Size]byte(b)}, nil
}

func NewKey(material [Size]byte) Key {
	return &key128{material: material}
}

// FromBytes copies b into a new key. b must be 16 bytes long.
func FromBytes(b []byte) (Key, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(b))
	}
	return &key128{material: [Size]byte(b)}, nil
}

// FromHex decodes a 32 character hex string into a key.
func FromHex(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("key: decoding hex: %w", err)
	}
	return FromBytes(b)
}

// Argon2id parameters used by FromPassphrase.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// FromPassphrase derives a 128 bit key from a passphrase with Argon2id.
// The same passphrase and salt always produce the same key.
func FromPassphrase(passphrase, salt []byte) Key {
	b := argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, Size)
	return &key128{material: [Size]byte(b)}
}

// IV reads a fresh 16 byte initialization vector from r.
// An IV must never be used twice with the same key.
func IV(r io.Reader) ([]byte, error) {
	return generateRandomBytes(r, Size)
}

func generateRandomBytes(r io.Reader, n int) ([]byte, error) {
	randBytes := make([]byte, n)

	if _, err := io.ReadFull(r, randBytes); err != nil {
		return nil, fmt.Errorf("key: reading random bytes: %w", err)
	}

	return randBytes, nil
}
