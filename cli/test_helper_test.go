package cli

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/tednaleid/encdec/execcontext"
	"strings"
	"testing"
)

var testBuildInfo = BuildInfo{Version: "testing", Commit: "123abc", Date: "2023-12-20"}

type RunResults struct {
	stderr  string
	stdout  string
	context *execcontext.Context
	err     error
}

func (results RunResults) assert(t *testing.T, expectedStandardOut string, expectedLog string) {
	assert.Equal(t, expectedStandardOut, results.stdout, "expected stdout")
	assert.Equal(t, expectedLog, results.stderr, "expected logger stderr")
}

// we want to test parsing of arguments, we don't actually want to transform anything
func ParseArgs(args []string) RunResults {
	return runApp(args, nil)
}

// runs the full command, writing the result to stdout or the -out file
func RunApp(args []string) RunResults {
	return runApp(args, ProcessRequest)
}

func runApp(args []string, runBlock func(context *execcontext.Context) error) RunResults {
	var resultContext *execcontext.Context
	stderr := new(bytes.Buffer)
	stdout := new(bytes.Buffer)

	processRequest := func(context *execcontext.Context) error {
		resultContext = context
		if runBlock != nil {
			return runBlock(context)
		}
		return nil
	}

	err := RunCommand(testBuildInfo, args, strings.NewReader(""), stderr, stdout, processRequest)
	return RunResults{stderr.String(), stdout.String(), resultContext, err}
}
