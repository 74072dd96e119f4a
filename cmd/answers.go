package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thedevopser/dockerize-me/pkg/config"
	"github.com/thedevopser/dockerize-me/pkg/logger"
	"github.com/thedevopser/dockerize-me/pkg/scaffold"
)

// answerFlags are the flags shared by every command that collects answers
type answerFlags struct {
	db           string
	extensions   string
	phpVersion   string
	httpPort     string
	addDBService bool
	defaults     bool
	configPath   string
	dir          string
}

func (f *answerFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.db, "db", "", "database: mysql, mariadb, postgres, sqlite or none")
	flags.StringVar(&f.extensions, "extensions", "", "additional PHP extensions, space separated")
	flags.StringVar(&f.phpVersion, "php-version", "", "PHP version of the FrankenPHP image (default 8.4)")
	flags.StringVar(&f.httpPort, "http-port", "", "host port mapped to the app (default 8080)")
	flags.BoolVar(&f.addDBService, "db-service", true, "add the database service to the compose file")
	flags.BoolVar(&f.defaults, "defaults", false, "don't prompt, use defaults for anything not given")
	flags.StringVar(&f.configPath, "config", config.DefaultPath, "answers file pre-filling the prompts")
	flags.StringVar(&f.dir, "dir", "", "project directory, defaults to the working directory")
}

// collect gathers answers from flags, the answers file and the environment, then prompts for the rest.
// Flags win over the answers file.
func (f *answerFlags) collect(cmd *cobra.Command) (*scaffold.Cmd, error) {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)

	if err := config.Load(ctx, config.Opts{Path: f.configPath}); err != nil {
		return nil, fmt.Errorf("loading answers: %w", err)
	}

	sc := &scaffold.Cmd{
		Defaults: f.defaults,
		Dir:      f.dir,
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		sc.DB = &f.db
	}
	if flags.Changed("extensions") {
		sc.Extensions = &f.extensions
	}
	if flags.Changed("php-version") {
		sc.PHPVersion = &f.phpVersion
	}
	if flags.Changed("http-port") {
		sc.HTTPPort = &f.httpPort
	}
	if flags.Changed("db-service") {
		sc.AddDBService = &f.addDBService
	}

	sc.Fill(config.Get())

	lgr.Debug("collecting answers")
	if err := sc.InitConfig(ctx); err != nil {
		return nil, fmt.Errorf("collecting answers: %w", err)
	}

	return sc, nil
}
