package cli

import (
	"encoding/json"
	"fmt"

	"github.com/quizgen-labs/quizgen/internal/linker"
	"github.com/spf13/cobra"
)

var linkListJSON bool

func init() {
	linkListCmd.Flags().BoolVar(&linkListJSON, "json", false, "Print links as JSON")

	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkRemoveCmd)
	linkCmd.AddCommand(linkListCmd)
	rootCmd.AddCommand(linkCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage the navigation map of the host page",
	Long: `Add, remove, and list entries of the navigation map embedded in the host
page. The map is rewritten sorted by chapter label; everything outside it is
left untouched.`,
}

var linkAddCmd = &cobra.Command{
	Use:   "add <label> <path>",
	Short: "Add or replace a link",
	Long: `Point a chapter label at a quiz page. An existing entry for the label is
replaced. Bare relative paths are prefixed with "./".

Example:
  quizgen link add "11. Sound" science/physics/sound_quiz.html --host science.html`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := currentTarget()
		if err != nil {
			return err
		}

		res, err := linker.AddLink(t, args[0], args[1], logger)
		if err != nil {
			return err
		}

		reportSync(cmd, t.Host, res)
		return nil
	},
}

var linkRemoveCmd = &cobra.Command{
	Use:   "remove <label>...",
	Short: "Remove links by chapter label",
	Long: `Remove the entries for the given chapter labels. Labels that are not in the
map are ignored.

Example:
  quizgen link remove "9. Gravitation" --host science.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := currentTarget()
		if err != nil {
			return err
		}

		res, err := linker.RemoveLinks(t, args, logger)
		if err != nil {
			return err
		}

		reportSync(cmd, t.Host, res)
		return nil
	},
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the links in the navigation map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := currentTarget()
		if err != nil {
			return err
		}

		entries, err := linker.List(t)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if linkListJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling links: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintf(out, "No links in %s.\n", t.Host)
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "  %-40s %s\n", e.Label, e.Path)
		}
		return nil
	},
}
