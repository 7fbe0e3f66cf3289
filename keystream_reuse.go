package main

import (
	aesgo "github.com/mario-areias/aes-ofb/aes-go"
)

// An Oracle encrypts whatever it is given under a fixed key and a fixed IV.
// Think of a service that generated its IV once and kept it. OFB makes the
// keystream a function of key and IV only, so every message it returns
// shares the same keystream.
type Oracle struct {
	aes *aesgo.AES
	iv  []byte
}

func (o *Oracle) Encrypt(plaintext []byte) ([]byte, error) {
	return o.aes.EncryptOFB(plaintext, o.iv)
}

// KeystreamReuse recovers a ciphertext produced by the oracle without the key.
// Encrypting zeros of the same length hands back the keystream itself.
func KeystreamReuse(oracle Oracle, target []byte) ([]byte, error) {
	keystream, err := oracle.Encrypt(make([]byte, len(target)))
	if err != nil {
		return nil, err
	}
	return xor(target, keystream), nil
}

// RecoverPlaintext recovers targetCipher when it was encrypted with the same
// key and IV as a known plaintext/ciphertext pair. Only the first
// min(len(knownPlain), len(targetCipher)) bytes can be recovered.
func RecoverPlaintext(knownPlain, knownCipher, targetCipher []byte) []byte {
	return xor(targetCipher, xor(knownPlain, knownCipher))
}

func xor(a, b []byte) []byte {
	n := min(len(a), len(b))
	x := make([]byte, n)
	for i := 0; i < n; i++ {
		x[i] = a[i] ^ b[i]
	}
	return x
}
