package cmd

import (
	"fmt"
	"log/slog"

	"github.com/nikogura/docx-tailor/pkg/config"
	"github.com/nikogura/docx-tailor/pkg/extractor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var extractCmd = &cobra.Command{
	Use:   "extract [resume]",
	Short: "Print the resume text that would be sent to the model",
	Long: `Print the plain text extracted from a resume, one paragraph per line.
Blank paragraphs print as empty lines.

Example:
  docx-tailor extract
  docx-tailor extract "Resume.docx" -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	path := cfg.Paths.Resume
	if len(args) == 1 {
		path = args[0]
	}

	var lines []extractor.SourceLine
	lines, err = extractor.Extract(path)
	if err != nil {
		err = errors.Wrap(err, "failed to extract resume")
		return err
	}

	for i, line := range lines {
		attrs := []any{"index", i, "style", line.StyleName, "alignment", line.Alignment.String(), "blank", line.Blank}
		if line.FontSizePt != nil {
			attrs = append(attrs, "size_pt", *line.FontSizePt)
		}
		slog.Debug("paragraph", attrs...)
	}

	fmt.Fprintln(cmd.OutOrStdout(), extractor.Flatten(lines))

	return err
}
