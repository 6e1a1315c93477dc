package cmd

import (
	"fmt"

	"github.com/nikogura/docx-tailor/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file with the default paths, model, header and layout.
Edit the profile section to set the name and contact lines printed at the top
of every tailored resume.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to create config")
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n", path)

	return err
}
