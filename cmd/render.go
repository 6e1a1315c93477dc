package cmd

import (
	"fmt"
	"os"

	"github.com/nikogura/docx-tailor/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render <text-file>",
	Short: "Render already tailored text into a .docx",
	Long: `Render a plain-text resume (for example one saved with 'tailor --keep-text'
and edited by hand) into a formatted .docx without calling the model.

Example:
  docx-tailor render "Tailored Resume.txt"
  docx-tailor render edited.txt --output final.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOutput, "output", "", "Output .docx path (default from config)")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	textPath := args[0]
	var data []byte
	data, err = os.ReadFile(textPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to read text file: %s", textPath)
		return err
	}

	output := override(renderOutput, cfg.Paths.Output)

	err = newRenderer(cfg).Render(string(data), output)
	if err != nil {
		err = errors.Wrap(err, "failed to render resume")
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resume saved as '%s'\n", output)

	return err
}
