package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nikogura/docx-tailor/pkg/config"
	"github.com/nikogura/docx-tailor/pkg/extractor"
	"github.com/nikogura/docx-tailor/pkg/jd"
	"github.com/nikogura/docx-tailor/pkg/llm"
	"github.com/nikogura/docx-tailor/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var resumePath string

//nolint:gochecknoglobals // Cobra boilerplate
var jobPath string

//nolint:gochecknoglobals // Cobra boilerplate
var outputPath string

//nolint:gochecknoglobals // Cobra boilerplate
var modelName string

//nolint:gochecknoglobals // Cobra boilerplate
var endpoint string

//nolint:gochecknoglobals // Cobra boilerplate
var keepText bool

//nolint:gochecknoglobals // Cobra boilerplate
var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job description",
	Long: `Tailor a resume to a job description.

Reads the resume (.docx, .pdf or .txt), sends it with the job description to
the language model, and writes the rewritten resume as a new .docx. An existing
output file is overwritten.

The job description can be provided as:
- A file path (e.g., job_description.txt)
- A URL (e.g., https://example.com/jobs/123)

Example:
  docx-tailor tailor
  docx-tailor tailor --resume "Resume.docx" --job jd.txt --output "Tailored Resume.docx"
  docx-tailor tailor --job https://example.com/jobs/123 --model llama3 --keep-text`,
	Args: cobra.NoArgs,
	RunE: runTailor,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tailorCmd)
	tailorCmd.Flags().StringVar(&resumePath, "resume", "", "Resume document (default from config)")
	tailorCmd.Flags().StringVar(&jobPath, "job", "", "Job description file or URL (default from config)")
	tailorCmd.Flags().StringVar(&outputPath, "output", "", "Output .docx path (default from config)")
	tailorCmd.Flags().StringVar(&modelName, "model", "", "Model name (default from config)")
	tailorCmd.Flags().StringVar(&endpoint, "endpoint", "", "Generate endpoint URL (default from config)")
	tailorCmd.Flags().BoolVar(&keepText, "keep-text", false, "Also save the generated text next to the output document")
}

func runTailor(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	// Extract
	if getVerbose() {
		fmt.Fprintf(out, "Reading resume from: %s\n", cfg.Paths.Resume)
	}

	var lines []extractor.SourceLine
	lines, err = extractor.Extract(cfg.Paths.Resume)
	if err != nil {
		err = errors.Wrap(err, "failed to extract resume")
		return err
	}
	resumeText := extractor.Flatten(lines)

	slog.Debug("extracted resume", "path", cfg.Paths.Resume, "lines", len(lines))

	// Job description
	var jobDescription string
	jobDescription, err = jd.FetchWithContext(ctx, cfg.Paths.JobDescription)
	if err != nil {
		err = errors.Wrap(err, "failed to load job description")
		return err
	}

	slog.Debug("loaded job description", "source", cfg.Paths.JobDescription, "bytes", len(jobDescription))

	// Generate
	var tailored string
	tailored, err = runCompletion(ctx, cmd, cfg, llm.TailoringRequest{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
	if err != nil {
		return err
	}

	if keepText {
		textPath := textOutputPath(cfg.Paths.Output)
		err = renderer.WriteText(tailored, textPath)
		if err != nil {
			err = errors.Wrap(err, "failed to write tailored text")
			return err
		}
		if getVerbose() {
			fmt.Fprintf(out, "Tailored text saved at: %s\n", textPath)
		}
	}

	// Render
	err = newRenderer(cfg).Render(tailored, cfg.Paths.Output)
	if err != nil {
		err = errors.Wrap(err, "failed to render tailored resume")
		return err
	}

	fmt.Fprintf(out, "Tailored resume saved as '%s'\n", cfg.Paths.Output)

	return err
}

// runCompletion makes the single model call. A failed call is logged and
// returned as an error so nothing is rendered from a missing result.
func runCompletion(ctx context.Context, cmd *cobra.Command, cfg config.Config, req llm.TailoringRequest) (text string, err error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return text, err
	}

	client := llm.NewClient(cfg.Model.Endpoint, cfg.Model.Name, timeout)

	message := fmt.Sprintf("Tailoring resume with %s...", cfg.Model.Name)
	if getVerbose() {
		fmt.Fprintln(cmd.OutOrStdout(), message)
	} else {
		stop := startSpinner(cmd.OutOrStdout(), message)
		defer stop()
	}

	result := client.Tailor(ctx, req)
	if !result.OK() {
		logFailure(cfg.Model.Endpoint, result.Failure())
		err = errors.Wrap(result.Err(), "language model request failed")
		return text, err
	}

	text = result.Text()
	slog.Debug("received tailored resume", "bytes", len(text))

	return text, err
}

func logFailure(endpoint string, failure *llm.Failure) {
	attrs := []any{"endpoint", endpoint, "reason", failure.Reason.String()}
	if failure.Reason == llm.HTTPError {
		attrs = append(attrs, "status", failure.StatusCode)
	}
	if failure.Body != "" {
		attrs = append(attrs, "body", failure.Body)
	}
	if failure.Cause != nil {
		attrs = append(attrs, "error", failure.Cause)
	}
	slog.Error("completion request failed", attrs...)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	cfg.Paths.Resume = override(resumePath, cfg.Paths.Resume)
	cfg.Paths.JobDescription = override(jobPath, cfg.Paths.JobDescription)
	cfg.Paths.Output = override(outputPath, cfg.Paths.Output)
	cfg.Model.Name = override(modelName, cfg.Model.Name)
	cfg.Model.Endpoint = override(endpoint, cfg.Model.Endpoint)

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid flags")
		return cfg, err
	}

	return cfg, err
}

func override(flagValue, configValue string) (value string) {
	value = flagValue
	if value == "" {
		value = configValue
	}
	return value
}

func newRenderer(cfg config.Config) (r *renderer.Renderer) {
	r = &renderer.Renderer{
		Classifier: renderer.Classifier{
			SectionHeaders:    cfg.Layout.SectionHeaders,
			SubHeaderPrefixes: cfg.Layout.SubHeaderPrefixes,
		},
		Header: renderer.Header{
			Name:    cfg.Profile.Name,
			Address: cfg.Profile.Address,
			Contact: cfg.Profile.Contact,
		},
		Font: cfg.Layout.Font,
	}
	return r
}

// textOutputPath puts the .txt next to the output document.
func textOutputPath(docPath string) (path string) {
	path = strings.TrimSuffix(docPath, ".docx") + ".txt"
	return path
}
