// Package cipher implements the two substitution ciphers: a letter-only
// alphabetic shift and a shift over every 8-bit code unit.
package cipher

// UnsupportedOperation is the result text for a direction other than enc/dec.
const UnsupportedOperation = "Unsupported operation"

type Variant int

const (
	AlphabetShift Variant = iota
	ByteShift
)

// ParseVariant maps an -alg value to a Variant, anything but "unicode" is AlphabetShift
func ParseVariant(name string) Variant {
	if name == "unicode" {
		return ByteShift
	}
	return AlphabetShift
}

func (v Variant) String() string {
	switch v {
	case ByteShift:
		return "unicode"
	default:
		return "shift"
	}
}

func (v Variant) Encrypt(text []byte, key int) []byte {
	switch v {
	case ByteShift:
		return shiftBytes(text, mod(key, byteSpace))
	default:
		return shiftLetters(text, mod(key, alphabetLength))
	}
}

func (v Variant) Decrypt(text []byte, key int) []byte {
	switch v {
	case ByteShift:
		return shiftBytes(text, inverse(key, byteSpace))
	default:
		return shiftLetters(text, inverse(key, alphabetLength))
	}
}

type Direction int

const (
	Encrypt Direction = iota
	Decrypt
	Unsupported
)

func ParseDirection(mode string) Direction {
	switch mode {
	case "enc":
		return Encrypt
	case "dec":
		return Decrypt
	default:
		return Unsupported
	}
}

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "enc"
	case Decrypt:
		return "dec"
	default:
		return "unsupported"
	}
}

// Request is a single transformation, built once and applied once.
type Request struct {
	Text      []byte
	Key       int
	Direction Direction
	Variant   Variant
}

// Apply runs the request. An unsupported direction is a valid result, not an error.
func (r Request) Apply() []byte {
	switch r.Direction {
	case Encrypt:
		return r.Variant.Encrypt(r.Text, r.Key)
	case Decrypt:
		return r.Variant.Decrypt(r.Text, r.Key)
	default:
		return []byte(UnsupportedOperation)
	}
}

// mod is the mathematical modulo, always in [0, m)
func mod(a int, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// inverse returns the forward shift that undoes a shift by key
func inverse(key int, m int) int {
	return (m - mod(key, m)) % m
}
