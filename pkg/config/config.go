// Package config loads the answers file and environment variables that pre-fill the
// dockerize-me prompts.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"
	"github.com/thedevopser/dockerize-me/pkg/logger"
)

const (
	// DefaultPath is where the answers file is looked for when no path is given
	DefaultPath = "./.dockerize.toml"
	envPrefix   = "DOCKERIZE_ME_"
)

var c Answers

// def sets empty options to their defaults
func (o *Opts) def() {
	if o.Path == "" {
		o.Path = DefaultPath
	}
}

// Get returns the loaded answers
func Get() Answers {
	return c
}

// Load loads answers from the answers file and then the environment, with precedence towards env variables.
// A missing answers file isn't an error.
func Load(ctx context.Context, o Opts) error {
	o.def()
	lgr := logger.FromContext(ctx).With("path", o.Path)

	var loaded Answers
	md, err := toml.DecodeFile(o.Path, &loaded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		lgr.Debug("no answers file found")
	case err != nil:
		return fmt.Errorf("decoding answers toml file %s: %w", o.Path, err)
	default:
		lgr.Debug("loaded answers file")
		for _, key := range md.Undecoded() {
			lgr.Warn("ignoring unknown key in answers file", "key", key.String())
		}
	}

	var fromEnv Answers
	if err := env.ParseWithOptions(&fromEnv, env.Options{
		Prefix: envPrefix,
	}); err != nil {
		return fmt.Errorf("parsing answers from env variables: %w", err)
	}

	c = loaded.Merge(fromEnv)
	return nil
}
