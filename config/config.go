package config

// Defaults is the table of recognized options and the values used when a flag is omitted.
var Defaults = Options{
	Mode:      "enc",
	Key:       0,
	Algorithm: "shift",
}

// Options are the raw flag destinations, filled in while arguments are parsed.
type Options struct {
	Mode        string
	Key         int
	Algorithm   string
	Data        string
	DataSet     bool
	InFilename  string
	InSet       bool
	OutFilename string
	Verbose     bool
	NoColor     bool
}

func NewOptions() *Options {
	options := Defaults
	return &options
}

type InputSource int

const (
	NoInput InputSource = iota
	LiteralInput
	FileInput
)

// Config is resolved once from Options and never changed afterwards.
type Config struct {
	Mode        string
	Key         int
	Algorithm   string
	Input       InputSource
	Data        string
	InFilename  string
	OutFilename string
	Verbose     bool
	NoColor     bool
}

func New(options Options) (Config, error) {
	if options.DataSet && options.InSet {
		return Config{}, ErrConflictingInput
	}

	conf := Config{
		Mode:        options.Mode,
		Key:         options.Key,
		Algorithm:   options.Algorithm,
		Data:        options.Data,
		InFilename:  options.InFilename,
		OutFilename: options.OutFilename,
		Verbose:     options.Verbose,
		NoColor:     options.NoColor,
	}

	switch {
	case options.DataSet:
		conf.Input = LiteralInput
	case options.InSet:
		conf.Input = FileInput
	default:
		conf.Input = NoInput
	}

	return conf, nil
}

func (c Config) WritesFile() bool {
	return len(c.OutFilename) > 0
}
