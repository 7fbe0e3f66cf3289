package aesgo

import "fmt"

const (
	keyWords     = 4 // 4 words of 4 bytes make up a 128 bit key
	scheduleSize = BlockSize * (rounds + 1)
)

// Schedule holds the 11 round keys of AES-128 back to back.
type Schedule [scheduleSize]byte

// ExpandKey runs the AES-128 key expansion.
func ExpandKey(k [BlockSize]byte) Schedule {
	var s Schedule
	copy(s[:BlockSize], k[:])

	for w := keyWords; w < scheduleSize/4; w++ {
		t := [4]byte(s[(w-1)*4 : w*4])

		if w%keyWords == 0 {
			t = subWord(rotWord(t))
			t[0] ^= rconTable[w/keyWords]
		}

		prev := [4]byte(s[(w-keyWords)*4 : (w-keyWords+1)*4])
		next := xor(prev, t)
		copy(s[w*4:], next[:])
	}

	return s
}

// RoundKey returns round key r. It panics if r is not in [0, 10].
func (s *Schedule) RoundKey(r int) [BlockSize]byte {
	if r < 0 || r > rounds {
		panic(fmt.Sprintf("aesgo: round key %d out of range", r))
	}
	return [BlockSize]byte(s[r*BlockSize : (r+1)*BlockSize])
}

func rotWord(word [4]byte) [4]byte {
	return [4]byte{word[1], word[2], word[3], word[0]}
}

func subWord(word [4]byte) [4]byte {
	var s [4]byte
	for i := 0; i < 4; i++ {
		s[i] = sBox[word[i]]
	}
	return s
}

func xor(a, b [4]byte) [4]byte {
	var x [4]byte
	for i := 0; i < 4; i++ {
		x[i] = a[i] ^ b[i]
	}
	return x
}
