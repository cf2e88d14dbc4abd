// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dbzix/pip-purger/pkg/core"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	python  string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pip-purger",
	Short: "Remove pip packages with their unused dependencies",
	Long: `pip-purger - pip package purger

Uninstalls a package together with every dependency that was pulled in for
it, while keeping anything that another installed package still needs.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pip-purger/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&python, "python", "", "python interpreter whose environment to operate on")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if python != "" {
		config.Python = python
	}
	if debug {
		config.Debug = true
	}
}
