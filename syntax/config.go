package syntax

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Pass selects which format pass, if any, cmd/rcst runs over a parsed
// file before printing it back out.
type Pass string

const (
	PassNone   Pass = "none"
	PassMinify Pass = "minify"
	PassFormat Pass = "format"
)

// Config is cmd/rcst's on-disk configuration, unmarshaled from YAML.
// It only ever governs driver behavior — which pass to run, where to
// write, what filename to blame a parse error on — never the grammar or
// the roundtrip invariant itself, which hold unconditionally regardless
// of Config.
type Config struct {
	Pass Pass `yaml:"pass"`

	// Output is the destination path for the printed result; "-" (the
	// default) means stdout.
	Output string `yaml:"output"`

	// AssumeFilename is attributed to parse errors when the source came
	// from stdin and has no real path of its own.
	AssumeFilename string `yaml:"assume_filename"`
}

// DefaultConfig is the Config cmd/rcst runs with when no config file is
// given: no reshaping pass, print to stdout.
func DefaultConfig() Config {
	return Config{Pass: PassNone, Output: "-", AssumeFilename: "<stdin>"}
}

// LoadConfig reads and unmarshals a Config from r, starting from
// DefaultConfig so a partial file only overrides the fields it sets.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg.Pass names one of the three passes
// cmd/rcst knows how to run.
func (cfg Config) Validate() error {
	switch cfg.Pass {
	case PassNone, PassMinify, PassFormat:
		return nil
	default:
		return fmt.Errorf("config: unknown pass %q", cfg.Pass)
	}
}
