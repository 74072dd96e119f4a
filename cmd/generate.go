package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/thedevopser/dockerize-me/pkg/generate"
	"github.com/thedevopser/dockerize-me/pkg/logger"
	"github.com/thedevopser/dockerize-me/pkg/usererror"
)

var generateFlags = &answerFlags{}

func init() {
	generateFlags.register(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"me"},
	Short:   "Generate a FrankenPHP Docker setup for your Symfony app",
	Long: `Generates a multi-stage Dockerfile, a compose file for development, dev and prod php.ini files
and a Caddyfile under the docker/ directory of your project. Existing files are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lgr := logger.FromContext(ctx)
		out := cmd.OutOrStdout()

		if !generateFlags.defaults {
			color.New(color.Bold).Fprintln(out, "Dockerize your Symfony app")
		}

		sc, err := generateFlags.collect(cmd)
		if err != nil {
			return err
		}

		dir, err := sc.TargetDir()
		if err != nil {
			return err
		}

		files := generate.Generate(sc.Options())

		lgr.Debug("writing docker files", "dir", dir)
		if err := generate.Write(dir, files); err != nil {
			return usererror.New(fmt.Errorf("writing docker files: %w", err), "Could not write the docker files. Check that the project directory is writable, files written before the failure are left in place.")
		}
		for _, path := range files.Paths() {
			lgr.Debug("wrote file", "path", path)
		}

		color.New(color.FgGreen).Fprintln(out, "[OK] Docker files generated in docker/")
		fmt.Fprintln(out, "Run: docker compose -f docker/compose.yml up --build")
		return nil
	},
}
