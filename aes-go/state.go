package aesgo

// State is one block laid out column-major: byte i of the block is at
// row i%4, column i/4.
type State [4][4]byte

// NewState converts a 16 byte block into a state matrix.
func NewState(b [BlockSize]byte) State {
	var s State
	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = b[i]
	}
	return s
}

// Bytes converts the state back into a 16 byte block.
func (s State) Bytes() [BlockSize]byte {
	var b [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		b[i] = s[i%4][i/4]
	}
	return b
}

func subBytes(state State) State {
	var s State
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = sBox[state[i][j]]
		}
	}
	return s
}

// shiftRows rotates row r left by r bytes.
func shiftRows(state State) State {
	var s State
	s[0] = state[0]

	s[1] = [4]byte{state[1][1], state[1][2], state[1][3], state[1][0]}
	s[2] = [4]byte{state[2][2], state[2][3], state[2][0], state[2][1]}
	s[3] = [4]byte{state[3][3], state[3][0], state[3][1], state[3][2]}

	return s
}

// addRoundKey xors the state with a round key, using the same column-major
// mapping as NewState.
func addRoundKey(state State, roundKey [BlockSize]byte) State {
	var s State
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = state[row][col] ^ roundKey[row+4*col]
		}
	}
	return s
}
