package aesgo

import "crypto/cipher"

// ofb is an output feedback stream. The feedback register always holds the
// last keystream block; used counts how many of its bytes are consumed.
type ofb struct {
	a        *AES
	feedback [BlockSize]byte
	used     int
}

// NewOFB returns a stream that encrypts or decrypts in output feedback mode.
// The IV must be 16 bytes and must not be reused with the same key.
func (a *AES) NewOFB(iv []byte) (cipher.Stream, error) {
	return a.newOFB(iv)
}

func (a *AES) newOFB(iv []byte) (*ofb, error) {
	if len(iv) != BlockSize {
		return nil, ErrInvalidIVSize
	}
	return &ofb{a: a, feedback: [BlockSize]byte(iv), used: BlockSize}, nil
}

// XORKeyStream xors src with the keystream into dst. Successive calls
// continue where the previous one stopped.
func (x *ofb) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("aesgo: output smaller than input")
	}
	for len(src) > 0 {
		if x.used == BlockSize {
			x.feedback = x.a.encryptBlock(x.feedback)
			x.used = 0
		}
		n := xorBytes(dst, src, x.feedback[x.used:])
		dst = dst[n:]
		src = src[n:]
		x.used += n
	}
}

// ProcessOFB encrypts or decrypts input in OFB mode. Both directions are the
// same operation. A trailing partial block uses only the head of its
// keystream block.
func (a *AES) ProcessOFB(input, iv []byte) ([]byte, error) {
	x, err := a.newOFB(iv)
	if err != nil {
		return nil, err
	}

	output := make([]byte, len(input))
	x.XORKeyStream(output, input)

	return output, nil
}

// EncryptOFB is ProcessOFB.
func (a *AES) EncryptOFB(plaintext, iv []byte) ([]byte, error) {
	return a.ProcessOFB(plaintext, iv)
}

// DecryptOFB is ProcessOFB.
func (a *AES) DecryptOFB(ciphertext, iv []byte) ([]byte, error) {
	return a.ProcessOFB(ciphertext, iv)
}

func xorBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
