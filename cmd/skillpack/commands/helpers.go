package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/skillpack/skillpack/internal/cli/prompt"
	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/installer"
	"github.com/skillpack/skillpack/internal/logging"
	"github.com/skillpack/skillpack/internal/paths"
)

// sourceRoot resolves the directory skills are read from, in order of
// precedence: --source flag, then config, then the default skills/ directory.
func sourceRoot() (string, error) {
	dir := sourceFlag
	if dir == "" {
		dir = cfg.SourceDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving source directory %q", dir)
	}
	return abs, nil
}

// destRoot resolves the installation root: project-local when --local (or
// the config default) says so, global otherwise.
func destRoot() (string, error) {
	if localFlag || cfg.Local {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolving working directory")
		}
		return paths.LocalRoot(cwd), nil
	}
	return paths.GlobalRoot()
}

// confirmFunc builds the overwrite decision for an install run.
// --yes (or assume_yes in config) always confirms; with no input source or
// without a terminal on stdin the answer is always no, so automation never
// hangs on a prompt.
func confirmFunc(assumeYes bool, in io.Reader, out io.Writer) installer.ConfirmFunc {
	if assumeYes || cfg.AssumeYes {
		return func(string) bool { return true }
	}
	if in == nil || (in == os.Stdin && !logging.IsTTY(os.Stdin)) {
		return func(name string) bool {
			slog.Warn("skill already installed; refusing to overwrite without --yes", "skill", name)
			return false
		}
	}

	p := prompt.NewWithIO(in, out)
	return func(name string) bool {
		return p.Confirm("Skill %q is already installed. Overwrite?", name)
	}
}

// newInstaller wires an Installer from the resolved roots and flags.
func newInstaller(assumeYes bool, in io.Reader, out io.Writer) (*installer.Installer, error) {
	src, err := sourceRoot()
	if err != nil {
		return nil, err
	}
	dst, err := destRoot()
	if err != nil {
		return nil, err
	}

	return installer.New(src, dst,
		installer.WithConfirm(confirmFunc(assumeYes, in, out)),
		installer.WithLogger(slog.Default()),
	), nil
}

// printReport summarizes a batch operation and converts failures into a
// non-zero exit.
func printReport(w io.Writer, verb string, report *installer.Report) error {
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  %s: %v\n", f.Name, f.Err)
	}

	fmt.Fprintf(w, "%s %d skill(s)", verb, report.Succeeded)
	if report.Skipped > 0 {
		fmt.Fprintf(w, ", skipped %d", report.Skipped)
	}
	if report.Failed() > 0 {
		fmt.Fprintf(w, ", %d failed", report.Failed())
	}
	fmt.Fprintln(w)

	if report.Failed() > 0 {
		return errors.NewUserError(
			errors.Newf("%d skill(s) failed", report.Failed()),
			"Run 'skillpack list' to see valid skills")
	}
	return nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
