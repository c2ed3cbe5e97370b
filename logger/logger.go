package logger

import (
	"golang.org/x/term"
	"io"
	"log"
	"os"
)

type LeveledLogger struct {
	showColor bool
	silent    bool
	logger    *log.Logger
}

func NewSilentLogger() *LeveledLogger {
	return &LeveledLogger{
		silent:    true,
		showColor: false,
	}
}

func NewPlainLeveledLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    false,
		showColor: false,
		logger:    logger,
	}
}

func NewLeveledLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    false,
		showColor: true,
		logger:    logger,
	}
}

// New picks a logger for out: silent unless verbose, colored only when out is a terminal
func New(out io.Writer, verbose bool, noColor bool) *LeveledLogger {
	if !verbose {
		return NewSilentLogger()
	}

	stdErrLogger := log.New(out, "", 0)

	if noColor || !IsTerminal(out) {
		return NewPlainLeveledLogger(stdErrLogger)
	}

	return NewLeveledLogger(stdErrLogger)
}

func IsTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func (l *LeveledLogger) Info(format string, args ...interface{}) {
	if !l.silent {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) Warn(format string, args ...interface{}) {
	if l.silent {
		return
	}
	if l.showColor {
		l.logger.Printf("\033[31m"+format+"\033[0m", args...)
	} else {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) Success(format string, args ...interface{}) {
	if l.silent {
		return
	}
	if l.showColor {
		l.logger.Printf("\033[32m"+format+"\033[0m", args...)
	} else {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) LogResult(length int, message string) {
	l.Success("Transformed %d bytes %s", length, message)
}

func (l *LeveledLogger) LogError(err error, message string) {
	l.Warn("%s Error: %s", message, err)
}
