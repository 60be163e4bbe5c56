package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/installer"
)

var uninstallAll bool

func init() {
	uninstallCmd.Flags().BoolVarP(&uninstallAll, "all", "a", false,
		"uninstall every skill named by the source directory")
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [name...]",
	Short: "Remove installed skills from the installation root",
	Long: `Remove one or more installed skills by recursively deleting their
directory from the installation root. The source directory is never
touched.

With --all, every skill named by the source directory is removed; a
failure on one skill does not stop the others.`,
	Example: `  # Remove one skill
  skillpack uninstall python-clean-code

  # Remove everything from the current project
  skillpack uninstall --all --local`,
	Args: cobra.ArbitraryArgs,
	RunE: runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	return runUninstallWithWriter(args, cmd.OutOrStdout())
}

// runUninstallWithWriter allows injecting a writer for testing.
func runUninstallWithWriter(args []string, w io.Writer) error {
	if uninstallAll == (len(args) > 0) {
		return errors.NewUserError(
			errors.New("specify skill names or --all, not both"),
			"Run 'skillpack list' to see available skills")
	}

	inst, err := newInstaller(false, nil, w)
	if err != nil {
		return err
	}

	var report *installer.Report
	if uninstallAll {
		report, err = inst.UninstallAll()
		if err != nil {
			return errors.NewSystemError(err, "Check that the source directory exists")
		}
	} else {
		report = &installer.Report{}
		for _, name := range args {
			if _, err := inst.Uninstall(name); err != nil {
				report.Failures = append(report.Failures, installer.Failure{Name: name, Err: err})
				continue
			}
			fmt.Fprintf(w, "Uninstalled %q\n", name)
			report.Succeeded++
		}
	}

	return printReport(w, "Uninstalled", report)
}
