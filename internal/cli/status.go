package cli

import (
	"github.com/spf13/cobra"

	"github.com/tainzy/fluttergen/internal/platform"
	"github.com/tainzy/fluttergen/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what a run would create, without changing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := scaffold.Plan(platform.NewOSProbe(), newPrinter(cmd))
		return err
	},
}
