package cli

import (
	"github.com/stretchr/testify/assert"
	"github.com/tednaleid/encdec/cipher"
	"github.com/tednaleid/encdec/config"
	"math"
	"strconv"
	"testing"
)

func TestHelp(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-h"})
	assert.Nil(t, results.context)      // context isn't set up when help is called
	assert.Equal(t, "", results.stderr) // help is not written to stderr when explicitly called
	assert.Contains(t, results.stdout, "NAME:\n   encdec - encrypt or decrypt text with a shift cipher")
	assert.NoError(t, results.err)
}

func TestVersion(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-v"})
	assert.Nil(t, results.context) // context isn't set up when version is called
	assert.Equal(t, "", results.stderr)
	assert.Equal(t, "encdec version "+testBuildInfo.ToString()+"\n", results.stdout)
}

func TestDefaults(t *testing.T) {
	results := ParseArgs([]string{"encdec"})
	assert.NoError(t, results.err)
	assert.Equal(t, cipher.Request{
		Text:      []byte{},
		Key:       0,
		Direction: cipher.Encrypt,
		Variant:   cipher.AlphabetShift,
	}, results.context.Request)
	assert.False(t, results.context.WriteFile)
}

func TestAllFlags(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-mode", "dec", "-key", "5", "-data", "Bjqhtrj", "-alg", "unicode", "-out", "protected.txt"})
	assert.NoError(t, results.err)
	assert.Equal(t, cipher.Request{
		Text:      []byte("Bjqhtrj"),
		Key:       5,
		Direction: cipher.Decrypt,
		Variant:   cipher.ByteShift,
	}, results.context.Request)
	assert.True(t, results.context.WriteFile)
	assert.Equal(t, "protected.txt", results.context.OutFilename)
}

func TestFlagOrderDoesNotMatter(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-alg", "shift", "-data", "abc", "-key", "3", "-mode", "enc"})
	assert.NoError(t, results.err)
	assert.Equal(t, 3, results.context.Request.Key)
	assert.Equal(t, "abc", string(results.context.Request.Text))
}

func TestDoubleDashFlags(t *testing.T) {
	results := ParseArgs([]string{"encdec", "--key", "7", "--data", "abc"})
	assert.NoError(t, results.err)
	assert.Equal(t, 7, results.context.Request.Key)
}

func TestKeys(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"0", 0},
		{"3", 3},
		{"-3", -3},
		{"+4", 4},
		{"1000", 1000},
		{strconv.Itoa(math.MaxInt), math.MaxInt},
		{strconv.Itoa(math.MinInt), math.MinInt},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			results := ParseArgs([]string{"encdec", "-key", tc.input})
			assert.NoError(t, results.err)
			assert.Equal(t, tc.expected, results.context.Request.Key)
		})
	}
}

func TestInvalidKeys(t *testing.T) {
	for _, input := range []string{"three", "3.5", "", "99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			results := ParseArgs([]string{"encdec", "-key", input})
			assert.Nil(t, results.context)
			assert.Equal(t, "Error\n", results.stdout)
			assert.Equal(t, "", results.stderr)
			assert.Equal(t, config.Parse, config.Classify(results.err))
		})
	}
}

func TestMissingFlagValue(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-data", "abc", "-key"})
	assert.Nil(t, results.context)
	assert.Equal(t, "Error\n", results.stdout)
	assert.Equal(t, config.Parse, config.Classify(results.err))
}

func TestUnknownFlag(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-shift", "3"})
	assert.Nil(t, results.context)
	assert.Equal(t, "Error\n", results.stdout)
}

func TestDataAndInConflict(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-data", "abc", "-in", "road_to_treasure.txt"})
	assert.Nil(t, results.context)
	assert.Equal(t, "Error\n", results.stdout)
	assert.Equal(t, "", results.stderr)
	assert.ErrorIs(t, results.err, config.ErrConflictingInput)
}

func TestEmptyDataStillConflictsWithIn(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-in", "road_to_treasure.txt", "-data", ""})
	assert.Equal(t, "Error\n", results.stdout)
	assert.ErrorIs(t, results.err, config.ErrConflictingInput)
}

func TestUnknownAlgorithmFallsBackToShift(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-alg", "rot13"})
	assert.NoError(t, results.err)
	assert.Equal(t, cipher.AlphabetShift, results.context.Request.Variant)
}

func TestVerboseErrorIsLogged(t *testing.T) {
	results := ParseArgs([]string{"encdec", "-verbose", "-data", "abc", "-in", "road_to_treasure.txt"})
	results.assert(t,
		"Error\n",
		"encdec Error: configuration conflict: -data and -in are mutually exclusive\n")
}

func TestPositionalArgumentIsRejected(t *testing.T) {
	results := RunApp([]string{"encdec", "stray", "-key", "1", "-data", "abc"})
	assert.Nil(t, results.context)
	assert.Equal(t, "Error\n", results.stdout)
	assert.Equal(t, config.Parse, config.Classify(results.err))
}

func TestTrailingPositionalArgumentIsRejected(t *testing.T) {
	results := RunApp([]string{"encdec", "-key", "1", "-data", "abc", "stray"})
	assert.Equal(t, "Error\n", results.stdout)
	assert.Equal(t, config.Parse, config.Classify(results.err))
}
