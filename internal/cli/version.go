// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pip-purger version 0.1.0")
		fmt.Println("Removes pip packages with all unused dependencies")
		fmt.Println("https://github.com/dbzix/pip-purger")
	},
}
