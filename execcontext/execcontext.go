package execcontext

import (
	"github.com/tednaleid/encdec/cipher"
	"github.com/tednaleid/encdec/config"
	"github.com/tednaleid/encdec/logger"
	"io"
	"os"
)

type Context struct {
	Request     cipher.Request
	WriteFile   bool
	OutFilename string
	Logger      *logger.LeveledLogger
	Out         io.Writer
}

func New(conf config.Config, stderr io.Writer, stdout io.Writer) (*Context, error) {
	context := Context{
		WriteFile:   conf.WritesFile(),
		OutFilename: conf.OutFilename,
		Logger:      logger.New(stderr, conf.Verbose, conf.NoColor),
		Out:         stdout,
	}

	text, err := readInput(conf, context.Logger)
	if err != nil {
		return nil, err
	}

	units, err := cipher.CodeUnits(text)
	if err != nil {
		return nil, config.NewDomainError(inputName(conf), err)
	}

	context.Request = cipher.Request{
		Text:      units,
		Key:       conf.Key,
		Direction: cipher.ParseDirection(conf.Mode),
		Variant:   cipher.ParseVariant(conf.Algorithm),
	}

	return &context, nil
}

func readInput(conf config.Config, logger *logger.LeveledLogger) ([]byte, error) {
	switch conf.Input {
	case config.LiteralInput:
		return []byte(conf.Data), nil
	case config.FileInput:
		logger.Info("Reading input from: %s", conf.InFilename)
		return readInputFile(conf.InFilename)
	default:
		return []byte{}, nil
	}
}

func readInputFile(filename string) ([]byte, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, config.NewIOError(filename, err)
	}
	return contents, nil
}

func inputName(conf config.Config) string {
	if conf.Input == config.FileInput {
		return conf.InFilename
	}
	return "-data"
}
