package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tainzy/fluttergen/internal/branding"
	"github.com/tainzy/fluttergen/internal/config"
	"github.com/tainzy/fluttergen/internal/manifest"
	"github.com/tainzy/fluttergen/internal/platform"
	"github.com/tainzy/fluttergen/internal/report"
	"github.com/tainzy/fluttergen/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the standard Flutter source layout (config, models, services,
and feature folders) as empty files under ` + manifest.RootMarker + `/. Run it from the project root.
Existing files are never overwritten, so running it again is safe.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, err := scaffold.Generate(platform.NewOSProbe(), newPrinter(cmd))
	return err
}

// newPrinter builds a report printer on the command's stdout honoring the
// configured color mode. An invalid mode falls back to auto.
func newPrinter(cmd *cobra.Command) *report.Printer {
	mode, err := report.ParseColorMode(config.Get(config.KeyColor))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using auto\n", err)
		mode = report.ColorAuto
	}
	return report.NewWithColor(cmd.OutOrStdout(), mode)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command tree with explicit arguments and writers.
// Errors are printed to stderr, except a failed preflight, which the
// command has already reported on stdout. Flags are restored to their
// defaults afterwards, so each call starts from the same state.
func Run(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}
	defer resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil && !scaffold.IsMissingRoot(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

// resetFlags restores every flag in the tree under cmd to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
