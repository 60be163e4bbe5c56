package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/installer"
)

var (
	installAll bool
	installYes bool
)

func init() {
	installCmd.Flags().BoolVarP(&installAll, "all", "a", false,
		"install every skill in the source directory")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false,
		"overwrite existing skills without confirmation")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [name...]",
	Short: "Install skills into the installation root",
	Long: `Install one or more skills by copying their directory from the source
directory into the installation root.

If a skill is already installed, a confirmation prompt is shown before the
existing copy is replaced. Declining leaves it untouched and is not an
error. Use --yes to overwrite without prompting.

With --all, every skill in the source directory is processed; a failure on
one skill does not stop the others.`,
	Example: `  # Install selected skills globally
  skillpack install python-clean-code code-review

  # Install everything into the current project
  skillpack install --all --local

  # Reinstall without prompting
  skillpack install python-clean-code --yes`,
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	return runInstallWithIO(args, cmd.OutOrStdout(), os.Stdin)
}

// runInstallWithIO allows injecting IO for testing.
func runInstallWithIO(args []string, w io.Writer, r io.Reader) error {
	if installAll == (len(args) > 0) {
		return errors.NewUserError(
			errors.New("specify skill names or --all, not both"),
			"Run 'skillpack list' to see available skills")
	}

	inst, err := newInstaller(installYes, r, w)
	if err != nil {
		return err
	}

	var report *installer.Report
	if installAll {
		report, err = inst.InstallAll()
		if err != nil {
			return errors.NewSystemError(err, "Check that the source directory exists")
		}
	} else {
		report = &installer.Report{}
		for _, name := range args {
			result, err := inst.Install(name)
			switch {
			case err != nil:
				report.Failures = append(report.Failures, installer.Failure{Name: name, Err: err})
			case result == installer.ResultSkipped:
				fmt.Fprintf(w, "Skipped %q (kept existing copy)\n", name)
				report.Skipped++
			default:
				fmt.Fprintf(w, "Installed %q\n", name)
				report.Succeeded++
			}
		}
	}

	return printReport(w, "Installed", report)
}
