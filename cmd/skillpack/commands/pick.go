package commands

import (
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/installer"
)

var pickYes bool

func init() {
	pickCmd.Flags().BoolVarP(&pickYes, "yes", "y", false,
		"overwrite an existing skill without confirmation")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a skill and install it",
	Long: `Open a fuzzy finder over the skills in the source directory, with the
skill's description as the preview, and install the selected one.`,
	Example: `  # Pick a skill and install it globally
  skillpack pick

  # Pick one for the current project
  skillpack pick --local`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, _ []string) error {
	inst, err := newInstaller(pickYes, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	summaries, err := inst.ListAvailable()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No skills found in %s\n", inst.SourceRoot())
		return nil
	}

	idx, err := fuzzyfinder.Find(
		summaries,
		func(i int) string {
			return summaries[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			s := summaries[i]
			return fmt.Sprintf("Name: %s\n\nDescription:\n%s", s.Name, s.Description)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	name := summaries[idx].Name
	result, err := inst.Install(name)
	if err != nil {
		return errors.Wrapf(err, "installing %q", name)
	}
	if result == installer.ResultSkipped {
		fmt.Fprintf(cmd.OutOrStdout(), "Skipped %q (kept existing copy)\n", name)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %q\n", name)
	return nil
}
