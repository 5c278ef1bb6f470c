package main

import (
	"encoding/hex"
	"fmt"

	flags "github.com/jessevdk/go-flags"
	balloon "github.com/opd-ai/go-balloon"
)

// options is the command line, optionally preloaded from an INI file.
type options struct {
	Salt          string `short:"s" long:"salt" description:"Salt as text"`
	SaltHex       string `long:"salt-hex" description:"Salt as hex; overrides --salt"`
	SpaceCost     uint64 `long:"space-cost" default:"24" description:"Buffer size in blocks"`
	TimeCost      uint64 `long:"time-cost" default:"18" description:"Number of mixing passes"`
	Delta         uint64 `long:"delta" default:"5" description:"Random neighbors mixed per block"`
	Primitive     string `long:"primitive" default:"sha256" description:"Hash primitive (sha256, sha512, blake2b-256, sha3-256)"`
	LegacyCounter bool   `long:"legacy-counter" description:"Restart the counter for mixing, as older Balloon ports do"`
	Expect        string `long:"expect" description:"Expected hex digest; exit with status 1 on mismatch"`
	Vectors       string `long:"vectors" description:"Check every digest in a JSON vector file and exit"`
	Verbose       bool   `short:"v" long:"verbose" description:"Log parameters and timing to stderr"`
	ConfigFile    string `long:"config" description:"INI file with default options"`

	Args struct {
		Password string `positional-arg-name:"password" description:"Password; prompted for when omitted"`
	} `positional-args:"yes"`
}

// newParser returns a new command line flags parser.
func newParser(opts *options, fo flags.Options) *flags.Parser {
	parser := flags.NewParser(opts, fo)
	parser.Name = "balloon"
	parser.Usage = "[OPTIONS] [password]"
	return parser
}

// loadOptions parses args. If --config names a file, it is read first
// and the command line is parsed again so flags take precedence.
func loadOptions(args []string) (*options, error) {
	// Pre-parse to find the config file; errors resurface in the final parse.
	var pre options
	if _, err := newParser(&pre, flags.HelpFlag|flags.PassDoubleDash).ParseArgs(args); err != nil {
		return nil, err
	}

	opts := &options{}
	parser := newParser(opts, flags.HelpFlag|flags.PassDoubleDash)

	if pre.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(pre.ConfigFile); err != nil {
			return nil, fmt.Errorf("config file %s: %w", pre.ConfigFile, err)
		}
	}

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// hasherConfig converts the options into a validated balloon.Config.
func (o *options) hasherConfig() (balloon.Config, error) {
	p, ok := balloon.PrimitiveByName(o.Primitive)
	if !ok {
		return balloon.Config{}, fmt.Errorf("unknown primitive %q (have %v)", o.Primitive, balloon.PrimitiveNames())
	}

	config := balloon.Config{
		SpaceCost: o.SpaceCost,
		TimeCost:  o.TimeCost,
		Delta:     o.Delta,
		Primitive: p,
	}
	if o.LegacyCounter {
		config.CounterMode = balloon.CounterPerStage
	}

	if err := config.Validate(); err != nil {
		return balloon.Config{}, err
	}
	return config, nil
}

// salt returns the salt bytes, preferring --salt-hex.
func (o *options) salt() ([]byte, error) {
	if o.SaltHex != "" {
		salt, err := hex.DecodeString(o.SaltHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --salt-hex: %w", err)
		}
		return salt, nil
	}
	return []byte(o.Salt), nil
}

// isHelp reports whether err is go-flags' help request.
func isHelp(err error) bool {
	ferr, ok := err.(*flags.Error)
	return ok && ferr.Type == flags.ErrHelp
}
