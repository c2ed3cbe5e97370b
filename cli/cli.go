package cli

import (
	ctx "context"
	"fmt"
	"github.com/tednaleid/encdec/cipher"
	"github.com/tednaleid/encdec/cipherserver"
	"github.com/tednaleid/encdec/config"
	"github.com/tednaleid/encdec/execcontext"
	"github.com/tednaleid/encdec/logger"
	"github.com/tednaleid/encdec/output"
	"github.com/urfave/cli/v3"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ErrorOutput is the only thing written to stdout when a run fails.
const ErrorOutput = "Error"

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (buildInfo BuildInfo) ToString() string {
	return buildInfo.Version + " " + buildInfo.Commit + " " + buildInfo.Date
}

// RunCommand parses args and runs the command. Any failure is collapsed into a single
// "Error" line on stdout, the details are only logged to stderr with -verbose.
func RunCommand(
	buildInfo BuildInfo,
	args []string,
	in io.Reader,
	stderr io.Writer,
	stdout io.Writer,
	runBlock func(context *execcontext.Context) error,
) error {
	options := config.NewOptions()
	command := SetupCommand(buildInfo, options, in, stderr, stdout, runBlock)

	err := command.Run(ctx.Background(), args)

	if err != nil {
		logger.New(stderr, options.Verbose, options.NoColor).LogError(err, command.Name)
		fmt.Fprintln(stdout, ErrorOutput)
	}

	return err
}

func SetupCommand(
	buildInfo BuildInfo,
	options *config.Options,
	in io.Reader,
	stderr io.Writer,
	stdout io.Writer,
	runBlock func(context *execcontext.Context) error,
) cli.Command {
	var conf config.Config

	return cli.Command{
		Name:        "encdec",
		Usage:       "encrypt or decrypt text with a shift cipher",
		UsageText:   "encdec [-mode enc|dec] [-key N] [-alg shift|unicode] [-data TEXT | -in FILE] [-out FILE]",
		Description: "Encrypts or decrypts text with a shift cipher. Without -data or -in the input is empty, without -out the result goes to stdout.",
		Version:     buildInfo.ToString(),
		Reader:      in,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "mode",
				Value:       options.Mode,
				Usage:       "enc to encrypt, dec to decrypt",
				Destination: &options.Mode,
			},
			&KeyFlag{
				Name:        "key",
				Value:       options.Key,
				Usage:       "number of positions to shift, may be negative",
				Destination: &options.Key,
			},
			&cli.StringFlag{
				Name:        "alg",
				Value:       options.Algorithm,
				Usage:       "shift rotates letters within their case, unicode shifts every byte modulo 256",
				Destination: &options.Algorithm,
			},
			&cli.StringFlag{
				Name:        "data",
				Usage:       "literal input text, cannot be combined with -in",
				Destination: &options.Data,
			},
			&cli.StringFlag{
				Name:        "in",
				Usage:       "file to read the input text from, cannot be combined with -data",
				Destination: &options.InFilename,
			},
			&cli.StringFlag{
				Name:        "out",
				Usage:       "file to write the result to (overwritten), if omitted the result is printed to stdout",
				Destination: &options.OutFilename,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "if flag is present, log what happened and why a run failed to stderr",
				Destination: &options.Verbose,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "if flag is present, don't add color to verbose messages",
				Destination: &options.NoColor,
			},
		},
		OnUsageError: func(_ ctx.Context, _ *cli.Command, err error, _ bool) error {
			return config.NewParseError(err)
		},
		Before: func(_ ctx.Context, cmd *cli.Command) error {
			var err error

			options.DataSet = cmd.IsSet("data")
			options.InSet = cmd.IsSet("in")

			conf, err = config.New(*options)

			return err
		},
		Action: func(_ ctx.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return config.NewParseError(fmt.Errorf("unexpected argument %q", cmd.Args().First()))
			}

			context, err := execcontext.New(conf, stderr, stdout)

			if err != nil {
				return err
			}

			return runBlock(context)
		},
		Commands: []*cli.Command{
			serveCommand(options, stderr),
		},
	}
}

func serveCommand(options *config.Options, stderr io.Writer) *cli.Command {
	var port int64

	return &cli.Command{
		Name:  "serve",
		Usage: "serve the ciphers over HTTP: POST /enc or /dec with ?key=N&alg=shift|unicode and the text as the body",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Value:       8080,
				Usage:       "port to listen on",
				Destination: &port,
			},
		},
		Action: func(c ctx.Context, _ *cli.Command) error {
			log := logger.New(stderr, options.Verbose, options.NoColor)

			accessLog := io.Discard
			if options.Verbose {
				accessLog = stderr
			}

			shutdown, err := cipherserver.Serve(port, accessLog)
			if err != nil {
				return err
			}
			log.Success("Listening on port %d", port)

			signalContext, stop := signal.NotifyContext(c, os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-signalContext.Done()

			log.Info("Shutting down")
			return shutdown()
		},
	}
}

// ProcessRequest applies the cipher and routes the UTF-8 encoded result to -out or stdout.
func ProcessRequest(context *execcontext.Context) error {
	result := cipher.Text(context.Request.Apply())

	if context.WriteFile {
		if err := output.WriteFileAtomic(context.OutFilename, result, true); err != nil {
			return err
		}
		context.Logger.LogResult(len(result), "-> "+context.OutFilename)
		return nil
	}

	if _, err := context.Out.Write(append(result, '\n')); err != nil {
		return config.NewIOError("stdout", err)
	}
	context.Logger.LogResult(len(result), "-> stdout")

	return nil
}
