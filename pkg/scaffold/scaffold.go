// Package scaffold collects the answers needed to generate the Docker setup. Answers come
// from flags, the answers file and, for anything still missing, interactive prompts.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thedevopser/dockerize-me/pkg/config"
	"github.com/thedevopser/dockerize-me/pkg/generate"
	"github.com/thedevopser/dockerize-me/pkg/logger"
	"github.com/thedevopser/dockerize-me/pkg/prompt"
	"github.com/thedevopser/dockerize-me/pkg/usererror"
)

// Prompter asks the user for answers
type Prompter interface {
	Select(label string, items []string, def string) (string, error)
	Input(label, def string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// Cmd holds the answers of a generation. Nil answers haven't been given yet.
type Cmd struct {
	DB           *string
	Extensions   *string
	PHPVersion   *string
	HTTPPort     *string
	AddDBService *bool

	// Defaults uses the default for every missing answer instead of prompting
	Defaults bool
	// Dir is the project directory the files are written to, the working directory when empty
	Dir string
	// Prompter defaults to terminal prompts
	Prompter Prompter
}

// Fill sets the answers that are still missing from a
func (sc *Cmd) Fill(a config.Answers) {
	if sc.DB == nil && a.DB != "" {
		sc.DB = &a.DB
	}

	if sc.Extensions == nil && a.Extensions != nil {
		exts := strings.Join(a.Extensions, " ")
		sc.Extensions = &exts
	}

	if sc.PHPVersion == nil && a.PHPVersion != "" {
		sc.PHPVersion = &a.PHPVersion
	}

	if sc.HTTPPort == nil && a.HTTPPort != "" {
		port := string(a.HTTPPort)
		sc.HTTPPort = &port
	}

	if sc.AddDBService == nil && a.AddDBService != nil {
		add := *a.AddDBService
		sc.AddDBService = &add
	}
}

// InitConfig makes sure every answer is set, prompting for missing ones unless Defaults is set
func (sc *Cmd) InitConfig(ctx context.Context) error {
	lgr := logger.FromContext(ctx)

	if sc.Defaults {
		lgr.Debug("using defaults for missing answers")
		sc.setDefaults()
		return nil
	}

	p := sc.Prompter
	if p == nil {
		p = terminal{}
	}

	if sc.DB == nil {
		lgr.Debug("prompting for database")
		names := make([]string, len(generate.Databases()))
		for i, db := range generate.Databases() {
			names[i] = string(db)
		}

		db, err := p.Select("Database", names, string(generate.None))
		if err != nil {
			return fmt.Errorf("selecting database: %w", err)
		}
		sc.DB = &db
	}

	if sc.Extensions == nil {
		lgr.Debug("prompting for extensions")
		exts, err := p.Input("Additional PHP extensions (space separated)", "")
		if err != nil {
			return fmt.Errorf("inputting extensions: %w", err)
		}
		sc.Extensions = &exts
	}

	if sc.PHPVersion == nil {
		lgr.Debug("prompting for php version")
		version, err := p.Input("PHP version", generate.DefaultPHPVersion)
		if err != nil {
			return fmt.Errorf("inputting php version: %w", err)
		}
		sc.PHPVersion = &version
	}

	if sc.HTTPPort == nil {
		lgr.Debug("prompting for http port")
		port, err := p.Input("HTTP port", generate.DefaultHTTPPort)
		if err != nil {
			return fmt.Errorf("inputting http port: %w", err)
		}
		sc.HTTPPort = &port
	}

	if sc.AddDBService == nil {
		lgr.Debug("prompting for database service")
		add, err := p.Confirm("Add database service to docker compose for dev", true)
		if err != nil {
			return fmt.Errorf("confirming database service: %w", err)
		}
		sc.AddDBService = &add
	}

	return nil
}

func (sc *Cmd) setDefaults() {
	if sc.DB == nil {
		db := string(generate.None)
		sc.DB = &db
	}

	if sc.Extensions == nil {
		exts := ""
		sc.Extensions = &exts
	}

	if sc.PHPVersion == nil {
		version := generate.DefaultPHPVersion
		sc.PHPVersion = &version
	}

	if sc.HTTPPort == nil {
		port := generate.DefaultHTTPPort
		sc.HTTPPort = &port
	}

	if sc.AddDBService == nil {
		add := true
		sc.AddDBService = &add
	}
}

// Options converts the answers into generator options. Extensions are split on whitespace.
func (sc *Cmd) Options() generate.Options {
	var exts []any
	if sc.Extensions != nil {
		for _, ext := range strings.Fields(*sc.Extensions) {
			exts = append(exts, ext)
		}
	}

	o := generate.Options{
		Extensions:   exts,
		AddDBService: sc.AddDBService,
	}
	if sc.DB != nil {
		o.DB = *sc.DB
	}
	if sc.PHPVersion != nil {
		o.PHPVersion = *sc.PHPVersion
	}
	if sc.HTTPPort != nil {
		o.HTTPPort = *sc.HTTPPort
	}

	return o
}

// TargetDir returns the directory files are written to. It must be a directory if it exists.
func (sc *Cmd) TargetDir() (string, error) {
	if sc.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", usererror.New(fmt.Errorf("getting working directory: %w", err), "The current working directory is not available. Run dockerize-me from your project directory or pass --dir.")
		}

		return wd, nil
	}

	fi, err := os.Stat(sc.Dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("checking target directory %s: %w", sc.Dir, err)
	}
	if err == nil && !fi.IsDir() {
		return "", usererror.New(fmt.Errorf("target %s is not a directory", sc.Dir), "--dir must point to your project directory.")
	}

	return filepath.Clean(sc.Dir), nil
}

// terminal prompts through pkg/prompt
type terminal struct{}

func (terminal) Select(label string, items []string, def string) (string, error) {
	return prompt.Select(label, items, &prompt.SelectOpt[string]{Default: def})
}

func (terminal) Input(label, def string) (string, error) {
	return prompt.Input(label, &prompt.InputOpt{Default: def})
}

func (terminal) Confirm(label string, def bool) (bool, error) {
	return prompt.Confirm(label, def)
}
