package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/logging"
	"github.com/skillpack/skillpack/internal/skill"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a skill's metadata and instructions",
	Example: `  # Show a skill from the source directory
  skillpack show python-clean-code`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithWriter(args[0], cmd.OutOrStdout())
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(name string, w io.Writer) error {
	src, err := sourceRoot()
	if err != nil {
		return err
	}

	dir := filepath.Join(src, name)
	if !skill.HasManifest(dir) {
		return errors.NewUserError(
			errors.Newf("skill %q not found in %s", name, src),
			"Run 'skillpack list' to see available skills")
	}

	s, err := skill.ParseFile(dir)
	if err != nil {
		return errors.Wrapf(err, "parsing skill %q", name)
	}

	bold := color.New(color.Bold)
	bold.DisableColor()
	if logging.SupportsColor(os.Stdout) {
		bold.EnableColor()
	}

	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Name:"), s.Name)
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Description:"), s.Description)
	if s.License != "" {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("License:"), s.License)
	}
	for k, v := range s.Metadata {
		fmt.Fprintf(w, "%s %s\n", bold.Sprintf("%s:", k), v)
	}
	if s.Instructions != "" {
		fmt.Fprintf(w, "\n%s\n", s.Instructions)
	}
	return nil
}
