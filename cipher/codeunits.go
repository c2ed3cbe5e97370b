package cipher

import (
	"errors"
	"fmt"
	"golang.org/x/text/encoding/charmap"
)

var ErrOutOfRange = errors.New("character outside the 0-255 range")

// CodeUnits turns UTF-8 text into one 8-bit code unit per character.
// Invalid UTF-8 and characters above U+00FF are rejected.
func CodeUnits(text []byte) ([]byte, error) {
	units, err := charmap.ISO8859_1.NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	if units == nil {
		units = []byte{}
	}
	return units, nil
}

// Text is the inverse of CodeUnits, every code unit becomes one UTF-8 encoded character.
func Text(units []byte) []byte {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(units)
	if err != nil {
		// every byte has a mapping, decoding can't fail
		panic(err)
	}
	return text
}
