package aesgo

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mario-areias/aes-ofb/key"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	rounds = 10
)

var (
	ErrInvalidIVSize      = errors.New("aesgo: IV must be exactly 16 bytes")
	ErrCiphertextTooShort = errors.New("aesgo: ciphertext shorter than the IV")
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aesgo: unsupported key size " + strconv.Itoa(int(k))
}

type Option func(*AES)

// WithTracer sends every intermediate state to t.
func WithTracer(t Tracer) Option {
	return func(a *AES) { a.tracer = t }
}

// WithRandom sets the source Encrypt draws IVs from. Defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(a *AES) { a.random = r }
}

// AES is AES-128 with an expanded key. It only runs the cipher forward;
// OFB never needs the inverse cipher. An AES is safe for concurrent use
// as long as its Tracer is.
type AES struct {
	schedule Schedule
	tracer   Tracer
	random   io.Reader
}

func New(k key.Key, opts ...Option) (*AES, error) {
	if s := k.Len(); s != 128/8 {
		return nil, KeySizeError(s)
	}

	a := &AES{random: rand.Reader}
	for _, opt := range opts {
		opt(a)
	}

	a.schedule = ExpandKey([BlockSize]byte(k.GetBytes()))
	for r := 0; r <= rounds; r++ {
		a.trace(StageRoundKey, r, NewState(a.schedule.RoundKey(r)))
	}

	return a, nil
}

// Schedule returns a copy of the expanded key.
func (a *AES) Schedule() Schedule {
	return a.schedule
}

func (a *AES) BlockSize() int { return BlockSize }

// EncryptBlock encrypts the first block of src into dst.
func (a *AES) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aesgo: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aesgo: output not full block")
	}
	out := a.encryptBlock([BlockSize]byte(src[:BlockSize]))
	copy(dst, out[:])
}

func (a *AES) encryptBlock(in [BlockSize]byte) [BlockSize]byte {
	s := addRoundKey(NewState(in), a.schedule.RoundKey(0))
	a.trace(StageInitial, 0, s)

	for r := 1; r < rounds; r++ {
		s = subBytes(s)
		a.trace(StageSubBytes, r, s)

		s = shiftRows(s)
		a.trace(StageShiftRows, r, s)

		s = mixColumns(s)
		a.trace(StageMixColumns, r, s)

		s = addRoundKey(s, a.schedule.RoundKey(r))
		a.trace(StageAddRoundKey, r, s)
	}

	// no MixColumns in the last round
	s = subBytes(s)
	a.trace(StageSubBytes, rounds, s)

	s = shiftRows(s)
	a.trace(StageShiftRows, rounds, s)

	s = addRoundKey(s, a.schedule.RoundKey(rounds))
	a.trace(StageFinal, rounds, s)

	return s.Bytes()
}

func (a *AES) trace(stage Stage, round int, s State) {
	if a.tracer == nil {
		return
	}
	a.tracer.Trace(Event{Stage: stage, Round: round, State: s})
}

// Encrypt encrypts plaintext in OFB mode under a fresh random IV and
// returns the IV followed by the ciphertext.
func (a *AES) Encrypt(plaintext []byte) ([]byte, error) {
	iv, err := key.IV(a.random)
	if err != nil {
		return nil, fmt.Errorf("aesgo: generating IV: %w", err)
	}

	c, err := a.ProcessOFB(plaintext, iv)
	if err != nil {
		return nil, err
	}

	return append(iv, c...), nil
}

// Decrypt reverses Encrypt.
func (a *AES) Decrypt(data []byte) ([]byte, error) {
	if len(data) < BlockSize {
		return nil, ErrCiphertextTooShort
	}
	return a.ProcessOFB(data[BlockSize:], data[:BlockSize])
}
