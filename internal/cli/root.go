package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/quizgen-labs/quizgen/internal/branding"
	"github.com/quizgen-labs/quizgen/internal/config"
	"github.com/quizgen-labs/quizgen/internal/diag"
	"github.com/quizgen-labs/quizgen/internal/linker"
	"github.com/quizgen-labs/quizgen/internal/linkmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// logger is replaced with a configured logger before any command runs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates chapter quiz pages from an HTML template and keeps the
navigation map of a host page (const ` + branding.MapName() + ` = { ... };) in sync
with the pages that exist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		logger = diag.NewLogger(os.Stderr, config.Current().Verbose)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("host", "", "Host page holding the navigation map")
	pf.String("map-name", "", "JavaScript identifier of the navigation map (default "+branding.MapName()+")")
	pf.String("start-marker", "", "Line marking the start of the map region")
	pf.String("end-marker", "", "Line marking the end of the map region")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	if err := config.BindFlags(pf,
		config.KeyHost,
		config.KeyMapName,
		config.KeyStartMarker,
		config.KeyEndMarker,
		config.KeyVerbose,
	); err != nil {
		panic(err)
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// ExitCode maps a command error to the process exit status: 0 on success,
// 2 when the navigation map region was absent and nothing was linked, and 1
// for every other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, linkmap.ErrRegionNotFound):
		return 2
	default:
		return 1
	}
}

// currentTarget builds the host target from flags, environment, and config.
func currentTarget() (linker.Target, error) {
	s := config.Current()
	if s.Host == "" {
		return linker.Target{}, fmt.Errorf("no host page: pass --host or set %s", branding.EnvVar(config.KeyHost))
	}
	return linker.Target{
		Host:        s.Host,
		MapName:     s.MapName,
		StartMarker: s.StartMarker,
		EndMarker:   s.EndMarker,
	}, nil
}

// reportSync prints the outcome of a map update and logs dropped segments.
func reportSync(cmd *cobra.Command, host string, res *linkmap.Result) {
	for _, seg := range res.Malformed {
		logger.Warn("dropped malformed map entry", zap.String("segment", seg))
	}
	if !res.Changed {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already up to date (%d links).\n", host, res.Map.Len())
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%d links).\n", host, res.Map.Len())
}
