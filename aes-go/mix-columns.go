package aesgo

// xtime multiplies b by x (0x02) in GF(2^8).
func xtime(b byte) byte {
	hiBitSet := (b & 0x80) != 0
	b <<= 1
	if hiBitSet {
		b ^= 0x1B // x^8 + x^4 + x^3 + x + 1
	}
	return b
}

// mixColumns multiplies every column of the state by the fixed matrix
//
//	2 3 1 1
//	1 2 3 1
//	1 1 2 3
//	3 1 1 2
//
// where 3·a is computed as xtime(a) ^ a.
func mixColumns(s State) State {
	var ss State

	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[0][c], s[1][c], s[2][c], s[3][c]

		ss[0][c] = xtime(s0) ^ (xtime(s1) ^ s1) ^ s2 ^ s3
		ss[1][c] = s0 ^ xtime(s1) ^ (xtime(s2) ^ s2) ^ s3
		ss[2][c] = s0 ^ s1 ^ xtime(s2) ^ (xtime(s3) ^ s3)
		ss[3][c] = (xtime(s0) ^ s0) ^ s1 ^ s2 ^ xtime(s3)
	}

	return ss
}
