package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skillpack/skillpack/internal/installer"
	"github.com/skillpack/skillpack/internal/logging"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills available in the source directory",
	Long: `List every valid skill under the source directory.

A directory qualifies as a skill only if it directly contains a SKILL.md
manifest; anything else is ignored.`,
	Example: `  # List available skills
  skillpack list

  # Machine-readable output
  skillpack list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd.OutOrStdout())
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	src, err := sourceRoot()
	if err != nil {
		return err
	}

	inst := installer.New(src, "")
	summaries, err := inst.ListAvailable()
	if err != nil {
		return err
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Fprintf(w, "No skills found in %s\n", src)
		return nil
	}

	useColor := logging.SupportsColor(os.Stdout)
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	bold.DisableColor()
	green.DisableColor()
	if useColor {
		bold.EnableColor()
		green.EnableColor()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("NAME"), bold.Sprint("DESCRIPTION"))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\n", green.Sprint(s.Name), truncate(s.Description, 80))
	}
	return tw.Flush()
}
