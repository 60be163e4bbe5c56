package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/skill"
	"github.com/skillpack/skillpack/internal/skill/validator"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill directory",
	Long: `Validate that a directory is a well-formed skill: it must contain a
SKILL.md manifest with a frontmatter block whose name matches the directory
and whose description is non-empty.`,
	Example: `  # Validate a skill in the source tree
  skillpack validate skills/python-clean-code

  # Validate a skill being authored elsewhere
  skillpack validate ../my-new-skill`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	return runValidateWithWriter(args[0], cmd.OutOrStdout())
}

// runValidateWithWriter allows injecting a writer for testing.
func runValidateWithWriter(dir string, w io.Writer) error {
	if !skill.HasManifest(dir) {
		return errors.NewUserError(
			errors.Newf("no %s found in %s", skill.ManifestName, dir),
			"A skill directory must contain a SKILL.md manifest at its root")
	}

	s, err := skill.ParseFile(dir)
	if err != nil {
		return errors.NewUserError(err, "Check the manifest's frontmatter block")
	}

	if errs := validator.New().ValidateDir(s, dir); errs != nil {
		fmt.Fprintf(w, "Skill validation failed for %s:\n", dir)
		for _, e := range errs {
			fmt.Fprintf(w, "  - %v\n", e)
		}
		return errors.NewUserError(errors.Newf("%d validation error(s)", len(errs)), "")
	}

	fmt.Fprintf(w, "Skill %q is valid\n", s.Name)
	return nil
}
