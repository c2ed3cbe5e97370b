package cipher

const byteSpace = 256

// shiftBytes adds k to every code unit, wrapping at 256. k must be in [0, 256).
func shiftBytes(text []byte, k int) []byte {
	shifted := make([]byte, len(text))
	offset := byte(k)

	for i, c := range text {
		shifted[i] = c + offset
	}

	return shifted
}
