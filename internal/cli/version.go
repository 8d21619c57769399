package cli

import (
	"encoding/json"
	"fmt"

	"github.com/bernardogv/treasure-hunter/internal/branding"
	"github.com/bernardogv/treasure-hunter/internal/layout"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		l, err := layout.Load()
		if err != nil {
			return fmt.Errorf("loading layout: %w", err)
		}

		if versionJSON {
			info := map[string]string{
				"version":        buildVersion,
				"commit":         buildCommit,
				"date":           buildDate,
				"layout":         l.Name,
				"layout_version": l.Version.String(),
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		fmt.Fprintf(out, "layout %s %s\n", l.Name, l.Version)
		return nil
	},
}
