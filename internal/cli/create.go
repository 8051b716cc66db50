package cli

import (
	"fmt"
	"path/filepath"

	"github.com/quizgen-labs/quizgen/internal/config"
	"github.com/quizgen-labs/quizgen/internal/linker"
	"github.com/quizgen-labs/quizgen/internal/quiz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	quizTable        string
	quizFile         string
	quizForce        bool
	quizScoreLogging bool
	quizNoLink       bool
)

func init() {
	f := createQuizCmd.Flags()
	f.String("template", "", "Template quiz page to copy")
	f.String("output-dir", "", "Directory for the new page (default .)")
	f.StringVar(&quizTable, "table", "", "Backend table name (default: snake_case of the chapter name)")
	f.StringVar(&quizFile, "file", "", "Output file name (default: <chapter>_quiz.html)")
	f.BoolVar(&quizForce, "force", false, "Overwrite an existing page")
	f.BoolVar(&quizScoreLogging, "inject-score-logging", false, "Add score logging to the page")
	f.BoolVar(&quizNoLink, "no-link", false, "Do not add the page to the navigation map")
	if err := config.BindFlags(f, config.KeyTemplate, config.KeyOutputDir); err != nil {
		panic(err)
	}

	createCmd.AddCommand(createQuizCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create pages from a template",
}

var createQuizCmd = &cobra.Command{
	Use:   "quiz <label>",
	Short: "Create a quiz page for a chapter",
	Long: `Copy the template quiz page, replacing its title, headings, and backend table
with values for the chapter, then link the new page from the host page.

The chapter number is stripped from the label to derive the defaults:
"1. Matter in Our Surroundings" becomes matter_in_our_surroundings_quiz.html
reading from table matter_in_our_surroundings.

Example:
  quizgen create quiz "1. Matter in Our Surroundings" \
    --template science/physics/sound_quiz.html \
    --output-dir science/chemistry --table matter_surroundings \
    --host science.html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Current()
		if s.Template == "" {
			return fmt.Errorf("no template: pass --template or set it with 'config set %s <path>'", config.KeyTemplate)
		}

		tables := map[string]string{}
		if quizTable != "" {
			tables[quiz.StripOrdinal(args[0])] = quizTable
		}
		page, warnings := quiz.NewPage(args[0], tables)
		for _, w := range warnings {
			logger.Warn(w, zap.String("chapter", page.Label))
		}
		if quizFile != "" {
			page.FileName = quiz.EnsureHTMLExt(quizFile)
		}

		linkBase := "."
		if s.Host != "" {
			linkBase = filepath.Dir(s.Host)
		}

		in, err := quiz.NewInstantiator(s.Template, quiz.Options{
			OutputDir:          s.OutputDir,
			LinkBase:           linkBase,
			InjectScoreLogging: quizScoreLogging,
			Force:              quizForce,
		})
		if err != nil {
			return err
		}

		res, err := in.Generate(page)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			logger.Warn(w, zap.String("chapter", page.Label))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created %s (table %s)\n", res.OutputPath, page.Table)

		if quizNoLink {
			return nil
		}
		if s.Host == "" {
			fmt.Fprintf(out, "\nNo host page configured; link it with:\n  link add %q %s --host <page>\n",
				res.Link.Label, res.Link.Path)
			return nil
		}

		t, err := currentTarget()
		if err != nil {
			return err
		}
		sync, err := linker.AddLink(t, res.Link.Label, res.Link.Path, logger)
		if err != nil {
			return err
		}
		reportSync(cmd, t.Host, sync)
		return nil
	},
}
