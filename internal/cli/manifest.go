package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tainzy/fluttergen/internal/manifest"
)

var manifestJSON bool

func init() {
	manifestCmd.Flags().BoolVar(&manifestJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "List the paths a run creates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		result, err := manifest.ValidateEntries()
		if err != nil {
			return fmt.Errorf("validating layout: %w", err)
		}
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s %q: %s\n", issue.Path, issue.Entry, issue.Message)
		}

		layout := manifest.Current()

		if manifestJSON {
			data, err := json.MarshalIndent(layout, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling manifest: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, e := range layout.Entries {
			fmt.Fprintln(out, e)
		}
		fmt.Fprintf(out, "%s (reserved)\n", layout.Reserved)
		return nil
	},
}
