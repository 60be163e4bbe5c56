package commands

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/errors"
	"github.com/skillpack/skillpack/internal/paths"
	"github.com/skillpack/skillpack/internal/skill"
	"github.com/skillpack/skillpack/internal/skill/validator"
	"github.com/skillpack/skillpack/pkg/fileutil"
)

var (
	initName        string
	initDescription string
	initLicense     string
	initForce       bool
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "skill name")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "skill description")
	initCmd.Flags().StringVar(&initLicense, "license", "", "license (e.g. MIT)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Scaffold a new skill directory",
	Long: `Create a new skill directory with a scaffolded SKILL.md manifest.

If [path] is provided, the skill is created there; otherwise a directory
named after the skill is created under the source directory. Missing
details are prompted for interactively unless given via flags.`,
	Example: `  # Interactive scaffold into skills/
  skillpack init

  # Non-interactive
  skillpack init --name my-skill -d "Guides refactoring sessions" --license MIT`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// nameSanitizer matches characters that are not allowed in a skill name.
var nameSanitizer = regexp.MustCompile(`[^a-z0-9-]+`)

func sanitizeDefaultName(name string) string {
	sanitized := strings.ToLower(name)
	sanitized = nameSanitizer.ReplaceAllString(sanitized, "-")
	sanitized = strings.Trim(sanitized, "-")
	if sanitized == "" {
		return "new-skill"
	}
	return sanitized
}

func runInit(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	w := cmd.OutOrStdout()

	defaultName := "my-skill"
	if len(args) > 0 {
		defaultName = sanitizeDefaultName(filepath.Base(args[0]))
	}

	name := initName
	if name == "" {
		name = promptLine(scanner, w, "Skill name", defaultName)
	}

	description := initDescription
	if description == "" {
		description = promptLine(scanner, w, "Description", "A helpful skill")
	}

	s := &skill.Skill{
		Name:        name,
		Description: description,
		License:     initLicense,
		Instructions: "# " + name + "\n\n" +
			"Describe when this skill applies and the steps to follow.\n",
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	} else {
		src, err := sourceRoot()
		if err != nil {
			return err
		}
		dir = filepath.Join(src, name)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "resolving path")
	}

	if errs := validator.New().ValidateDir(s, absDir); errs != nil {
		fmt.Fprintln(w, "Cannot scaffold skill:")
		for _, e := range errs {
			fmt.Fprintf(w, "  - %v\n", e)
		}
		return errors.NewUserError(errors.New("invalid skill details"), "")
	}

	manifestPath := skill.ManifestPath(absDir)
	if _, err := os.Stat(manifestPath); err == nil && !initForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", manifestPath),
			"Use --force to overwrite")
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "checking manifest path")
	}

	if err := paths.EnsureDir(absDir, 0); err != nil {
		return errors.Wrapf(err, "creating %s", absDir)
	}

	content, err := s.Format()
	if err != nil {
		return errors.Wrap(err, "formatting manifest")
	}
	if err := fileutil.AtomicWriteFile(manifestPath, content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", manifestPath)
	}

	fmt.Fprintf(w, "Created skill %q at %s\n", name, absDir)
	return nil
}

// promptLine asks for a single line of input, returning def on empty input
// or EOF.
func promptLine(scanner *bufio.Scanner, w io.Writer, label, def string) string {
	fmt.Fprintf(w, "%s [%s]: ", label, def)
	if !scanner.Scan() {
		return def
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return def
	}
	return line
}
