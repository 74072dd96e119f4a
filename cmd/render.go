package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thedevopser/dockerize-me/pkg/generate"
	"sigs.k8s.io/yaml"
)

const (
	outputText = "text"
	outputYaml = "yaml"
)

var (
	renderFlags  = &answerFlags{}
	renderOutput string
)

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", outputText, "output format: text or yaml")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Prints the generated Docker files without writing them",
	Long:  "Collects the same answers as generate and prints the files to stdout instead of writing them.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderOutput != outputText && renderOutput != outputYaml {
			return fmt.Errorf("unknown output format %q, must be %s or %s", renderOutput, outputText, outputYaml)
		}

		sc, err := renderFlags.collect(cmd)
		if err != nil {
			return err
		}

		files := generate.Generate(sc.Options())
		if err := printFiles(cmd.OutOrStdout(), files, renderOutput); err != nil {
			return fmt.Errorf("printing files: %w", err)
		}

		return nil
	},
}

func printFiles(w io.Writer, files generate.FileSet, format string) error {
	if format == outputYaml {
		out, err := yaml.Marshal(map[string]string(files))
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}

		_, err = w.Write(out)
		return err
	}

	for i, path := range files.Paths() {
		if i != 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "==> %s <==\n%s", path, files[path]); err != nil {
			return err
		}
	}

	return nil
}
