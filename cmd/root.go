package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thedevopser/dockerize-me/pkg/logger"
	"github.com/thedevopser/dockerize-me/pkg/usererror"
)

var rootCmd = &cobra.Command{
	Use:   "dockerize-me",
	Short: "Generate a FrankenPHP Docker setup for your Symfony app",
	Long: `Dockerize Me guides you through generating the Docker files needed to run a Symfony application with FrankenPHP.

To answer a few questions and write the files into the current project, run

	$ dockerize-me generate

Answers can also be given through flags, a .dockerize.toml answers file or DOCKERIZE_ME_* environment variables.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print additional information typically useful for debugging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	}
}

func Execute(c Config) {
	rootCmd.Version = c.Version // if version is empty the only consequence should be the version command not working
	rootCmd.SetVersionTemplate(`{{printf "dockerize-me %s" .Version}}
`)

	ctx := logger.WithContext(context.Background(), logger.FromContext(context.Background()))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, usererror.Message(err))
		os.Exit(1)
	}
}
