package aesgo

import (
	"crypto/aes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/mario-areias/aes-ofb/key"
)

type key192 struct{}

func (key192) GetBytes() []byte { return make([]byte, 24) }
func (key192) Len() int         { return 24 }

func newAES(t *testing.T, k string, opts ...Option) *AES {
	t.Helper()
	a, err := New(key.NewKey(block(t, k)), opts...)
	if err != nil {
		t.Fatalf("Error creating cipher: %s", err)
	}
	return a
}

func TestNewUnsupportedKeySize(t *testing.T) {
	_, err := New(key192{})

	var kse KeySizeError
	if !errors.As(err, &kse) || int(kse) != 24 {
		t.Errorf("Expected KeySizeError(24), got: %v", err)
	}
}

func TestEncryptBlockKnownAnswer(t *testing.T) {
	tests := []struct {
		name                 string
		key, plaintext, want string
	}{
		{
			name:      "FIPS-197 appendix C.1",
			key:       "000102030405060708090a0b0c0d0e0f",
			plaintext: "00112233445566778899aabbccddeeff",
			want:      "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:      "FIPS-197 appendix B",
			key:       "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext: "3243f6a8885a308d313198a2e0370734",
			want:      "3925841d02dc09fbdc118597196a0b32",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := newAES(t, test.key)

			dst := make([]byte, BlockSize)
			a.EncryptBlock(dst, mustHex(t, test.plaintext))

			if want := mustHex(t, test.want); string(dst) != string(want) {
				t.Errorf("Got: %x, Expected: %x", dst, want)
			}
		})
	}
}

func TestEncryptBlockStd(t *testing.T) {
	for i := 0; i < 32; i++ {
		k := key.Bit128()
		a, err := New(k)
		if err != nil {
			t.Fatalf("Error creating cipher: %s", err)
		}
		std, err := aes.NewCipher(k.GetBytes())
		if err != nil {
			t.Fatalf("Error creating std cipher: %s", err)
		}

		src := make([]byte, BlockSize)
		if _, err := rand.Read(src); err != nil {
			t.Fatal(err)
		}

		got := make([]byte, BlockSize)
		want := make([]byte, BlockSize)
		a.EncryptBlock(got, src)
		std.Encrypt(want, src)

		if string(got) != string(want) {
			t.Errorf("key %x block %x Got: %x, Expected: %x", k.GetBytes(), src, got, want)
		}
	}
}

func TestEncryptBlockShortInput(t *testing.T) {
	a := newAES(t, "000102030405060708090a0b0c0d0e0f")

	defer func() {
		if recover() == nil {
			t.Error("EncryptBlock did not panic on a short block")
		}
	}()
	a.EncryptBlock(make([]byte, BlockSize), make([]byte, 15))
}

func TestTraceIntermediateStates(t *testing.T) {
	rec := &Recorder{}
	a := newAES(t, "2b7e151628aed2a6abf7158809cf4f3c", WithTracer(rec))

	if n := rec.Count(StageRoundKey); n != rounds+1 {
		t.Fatalf("Expected %d round key events, got %d", rounds+1, n)
	}
	for r, e := range rec.Events {
		if e.Round != r || e.State.Bytes() != a.schedule.RoundKey(r) {
			t.Errorf("round key event %d does not match the schedule", r)
		}
	}
	rec.Reset()

	a.EncryptBlock(make([]byte, BlockSize), mustHex(t, "3243f6a8885a308d313198a2e0370734"))

	// FIPS-197 appendix B, start of round 1 through round 1's MixColumns
	want := []struct {
		stage Stage
		round int
		state string
	}{
		{StageInitial, 0, "193de3bea0f4e22b9ac68d2ae9f84808"},
		{StageSubBytes, 1, "d42711aee0bf98f1b8b45de51e415230"},
		{StageShiftRows, 1, "d4bf5d30e0b452aeb84111f11e2798e5"},
		{StageMixColumns, 1, "046681e5e0cb199a48f8d37a2806264c"},
		{StageAddRoundKey, 1, "a49c7ff2689f352b6b5bea43026a5049"},
	}
	for i, w := range want {
		e := rec.Events[i]
		if e.Stage != w.stage || e.Round != w.round {
			t.Fatalf("event %d Got: %s/%d, Expected: %s/%d", i, e.Stage, e.Round, w.stage, w.round)
		}
		if got := e.State.Bytes(); got != block(t, w.state) {
			t.Errorf("%s round %d Got: %x, Expected: %s", w.stage, w.round, got, w.state)
		}
	}

	last := rec.Events[len(rec.Events)-1]
	if last.Stage != StageFinal || last.Round != rounds {
		t.Errorf("last event Got: %s/%d", last.Stage, last.Round)
	}
	if got := last.State.Bytes(); got != block(t, "3925841d02dc09fbdc118597196a0b32") {
		t.Errorf("final state Got: %x", got)
	}
}

func TestTraceStageCounts(t *testing.T) {
	rec := &Recorder{}
	a := newAES(t, "000102030405060708090a0b0c0d0e0f", WithTracer(rec))
	rec.Reset()

	a.EncryptBlock(make([]byte, BlockSize), make([]byte, BlockSize))

	tests := []struct {
		stage Stage
		want  int
	}{
		{StageRoundKey, 0},
		{StageInitial, 1},
		{StageSubBytes, 10},
		{StageShiftRows, 10},
		{StageMixColumns, 9},
		{StageAddRoundKey, 9},
		{StageFinal, 1},
	}
	for _, test := range tests {
		if got := rec.Count(test.stage); got != test.want {
			t.Errorf("%s Got: %d, Expected: %d", test.stage, got, test.want)
		}
	}

	for _, e := range rec.Events {
		if e.Stage == StageMixColumns && e.Round == rounds {
			t.Error("MixColumns ran in the final round")
		}
	}
}

func TestTracerFunc(t *testing.T) {
	n := 0
	_ = newAES(t, "000102030405060708090a0b0c0d0e0f", WithTracer(TracerFunc(func(Event) { n++ })))
	if n != rounds+1 {
		t.Errorf("Got: %d events, Expected: %d", n, rounds+1)
	}
}

func TestStageString(t *testing.T) {
	if StageMixColumns.String() != "MixColumns" {
		t.Errorf("Got: %s", StageMixColumns)
	}
	if Stage(99).String() != "Unknown" {
		t.Errorf("Got: %s", Stage(99))
	}
}
