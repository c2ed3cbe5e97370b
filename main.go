package main

import (
	"github.com/tednaleid/encdec/cli"
	"os"
)

// overridden at build time with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildInfo := cli.BuildInfo{Version: version, Commit: commit, Date: date}

	// failures are already reported as "Error" on stdout, the exit status stays 0
	_ = cli.RunCommand(buildInfo, os.Args, os.Stdin, os.Stderr, os.Stdout, cli.ProcessRequest)
}
