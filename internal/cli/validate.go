package cli

import (
	"fmt"

	"github.com/quizgen-labs/quizgen/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest.yaml>",
	Short: "Check a batch manifest without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManifestCheck(cmd, args[0])
	},
}

func runManifestCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
	}

	b, err := manifest.ParseFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] Valid manifest v%s: %d chapter(s) into %s\n", b.Version, len(b.Chapters), b.Host)
	return nil
}
