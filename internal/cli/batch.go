package cli

import (
	"fmt"

	"github.com/quizgen-labs/quizgen/internal/linker"
	"github.com/quizgen-labs/quizgen/internal/manifest"
	"github.com/spf13/cobra"
)

var batchForce bool

func init() {
	batchCmd.Flags().BoolVar(&batchForce, "force", false, "Overwrite existing pages")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Create and link every chapter listed in a manifest",
	Long: `Generate one quiz page per chapter in the manifest, then rewrite the host
page's navigation map once. Existing links whose path contains the manifest's
exclude substring are dropped before the new links are merged in.

A chapter that fails is reported and the rest still run. When the host page
has no navigation map the pages stay written, the links that could not be
applied are listed, and the command exits with status 2.

Paths in the manifest are relative to the manifest file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := manifest.ParseFile(args[0])
		if err != nil {
			return err
		}
		if batchForce {
			b.Force = true
		}

		report, runErr := linker.RunBatch(b, logger)
		if report != nil {
			printBatchReport(cmd, b, report)
		}
		return runErr
	},
}

func printBatchReport(cmd *cobra.Command, b *manifest.Batch, r *linker.BatchReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Generated %d of %d pages.\n", len(r.Generated), len(b.Chapters))
	for _, g := range r.Generated {
		fmt.Fprintf(out, "  %s\n", g.OutputPath)
	}

	if len(r.Failed) > 0 {
		fmt.Fprintf(out, "\nFailed:\n")
		for _, f := range r.Failed {
			fmt.Fprintf(out, "  - %s\n", f.Error())
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	if len(r.Linked) > 0 {
		fmt.Fprintf(out, "\nLinked %d pages in %s.\n", len(r.Linked), linker.TargetFor(b).Host)
	}

	if len(r.Unlinked) > 0 {
		fmt.Fprintf(out, "\nNot linked:\n")
		for _, e := range r.Unlinked {
			fmt.Fprintf(out, "  %-40s %s\n", e.Label, e.Path)
		}
	}
}
