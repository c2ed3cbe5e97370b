package cipher

const (
	alphabetLength = 26
	upperBase      = 'A'
	lowerBase      = 'a'
)

// shiftLetters rotates A-Z and a-z within their own case by k, k must be in [0, 26).
// Every other byte is copied through.
func shiftLetters(text []byte, k int) []byte {
	shifted := make([]byte, len(text))

	for i, c := range text {
		switch {
		case isUpper(c):
			shifted[i] = rotate(c, upperBase, k)
		case isLower(c):
			shifted[i] = rotate(c, lowerBase, k)
		default:
			shifted[i] = c
		}
	}

	return shifted
}

func rotate(c byte, base byte, k int) byte {
	return base + byte((int(c-base)+k)%alphabetLength)
}

func isUpper(c byte) bool {
	return c >= upperBase && c < upperBase+alphabetLength
}

func isLower(c byte) bool {
	return c >= lowerBase && c < lowerBase+alphabetLength
}
