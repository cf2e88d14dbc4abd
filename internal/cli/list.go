// internal/cli/list.go
package cli

import (
	"fmt"

	purger "github.com/dbzix/pip-purger"
	"github.com/spf13/cobra"
)

var listNotRequired bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long:  `List installed packages in the selected Python environment.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listNotRequired, "not-required", false, "only packages no other installed package depends on")
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := purger.New(config)
	if err != nil {
		return err
	}

	idx, err := p.Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	for _, name := range idx.Names() {
		if listNotRequired && len(idx.Dependents(name)) > 0 {
			continue
		}
		fmt.Printf("%s %s\n", name, idx[name].Version)
	}

	return nil
}
