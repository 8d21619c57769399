package cli

import (
	"fmt"
	"path/filepath"

	"github.com/bernardogv/treasure-hunter/internal/branding"
	"github.com/bernardogv/treasure-hunter/internal/config"
	"github.com/bernardogv/treasure-hunter/internal/layout"
	"github.com/bernardogv/treasure-hunter/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir     string
	rootDryRun  bool
	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the Treasure Hunter app skeleton: the source, backend, docs and
tests folders plus the starter configuration, style, navigation and component files.

Existing directories and files are left untouched, so running it again is safe.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		flags := cmd.Root().Flags()
		if err := config.BindFlag(config.KeyBaseDir, flags.Lookup("dir")); err != nil {
			return err
		}
		return config.BindFlag(config.KeyVerbose, flags.Lookup("verbose"))
	},
	RunE: runScaffold,
}

func init() {
	rootCmd.Flags().StringVar(&rootDir, "dir", "", "Base directory to scaffold into (default: current directory)")
	rootCmd.Flags().BoolVar(&rootDryRun, "dry-run", false, "Print the paths that would be created without writing anything")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Also print paths that already exist")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	base, err := config.BaseDir()
	if err != nil {
		return err
	}

	l, err := layout.Load()
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	s := scaffold.New(afero.NewOsFs(), cmd.OutOrStdout())
	s.Verbose = config.Verbose()

	if rootDryRun {
		abs, err := filepath.Abs(base)
		if err != nil {
			return fmt.Errorf("resolving base path %s: %w", base, err)
		}
		scaffold.PrintPlan(cmd.OutOrStdout(), s.Plan(abs, l))
		return nil
	}

	if _, err := s.Run(base, l); err != nil {
		return err
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
