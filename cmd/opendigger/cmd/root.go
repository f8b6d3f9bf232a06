package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/X-lab2017/opendigger-cli/internal/cli"
	odconfig "github.com/X-lab2017/opendigger-cli/internal/core/config"
	odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
	"github.com/X-lab2017/opendigger-cli/internal/display"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
)

var (
	cfgFile string
	verbose bool

	cfg *odconfig.Config
)

// The catalogue and converter carry no configuration, so they are built once
// at package load; flag values parse through them before PersistentPreRunE
// runs.
var (
	registry  = indicator.DefaultRegistry()
	converter = cli.NewConverter(registry, nil)
)

var rootCmd = &cobra.Command{
	Use:   "opendigger",
	Short: "Query OpenDigger open-source metrics",
	Long: `opendigger queries OpenDigger metrics for GitHub repositories and users.

Indicators are selected with --indicator, either bare (openrank) or with a
filtering query (openrank:type=developer,start=2020-01,end=2020-12).

Examples:
  opendigger repo X-lab2017/open-digger --indicator openrank --indicator activity
  opendigger repo X-lab2017/open-digger --indicator project_openrank_network:start=2020-01,end=2020-12
  opendigger user frank-zsy --indicator developer_openrank
  opendigger catalog --introducer CHAOSS`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, display.ConversionError(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.opendigger/config.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and wires the shared logger, catalogue, and
// converter for all subcommands
func setup() error {
	var err error
	cfg, err = odconfig.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := odlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = odlog.LevelDebug
	}
	format, err := odlog.ParseFormat(cfg.Log.Format)
	if err != nil {
		return err
	}

	logger := odlog.New().WithLevel(level).WithFormat(format)
	if cfg.Log.File != "" {
		logger = logger.WithFile(odlog.FileRotation{
			Path:       cfg.Log.File,
			MaxSizeMB:  32,
			MaxBackups: 3,
			MaxAgeDays: 14,
		})
	}
	odlog.SetDefault(logger)
	return nil
}

// indicatorCompletion completes --indicator values, preserving any query
// fragment the user has already typed
func indicatorCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return cli.Complete(toComplete, registry), cobra.ShellCompDirectiveNoFileComp
}

// bareIndicatorCompletion completes name-only indicator values
func bareIndicatorCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return cli.CompleteBare(toComplete, registry), cobra.ShellCompDirectiveNoFileComp
}
