// internal/cli/purge.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	purger "github.com/dbzix/pip-purger"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	purgeYes    bool
	purgeDryRun bool
)

var hintColor = color.New(color.FgHiBlack)

var purgeCmd = &cobra.Command{
	Use:     "purge [package]",
	Aliases: []string{"remove", "rm"},
	Short:   "Uninstall a package and its unused dependencies",
	Long: `Uninstall a package together with every dependency that only it needed.
Dependencies still required by other installed packages are kept.

Examples:
  pip-purger purge flask
  pip-purger purge requests --dry-run
  pip-purger purge httpx -y`,
	Args: cobra.ExactArgs(1),
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "uninstall without asking for confirmation")
	purgeCmd.Flags().BoolVar(&purgeDryRun, "dry-run", false, "show what would be removed without uninstalling")
}

func runPurge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target := args[0]

	p, err := purger.New(config)
	if err != nil {
		return err
	}

	fmt.Printf("Gathering '%s' dependencies...\n", target)

	plan, err := p.Resolve(ctx, target)
	if err != nil {
		if errors.Is(err, purger.ErrPackageProtected) {
			fmt.Printf("Use native 'pip' command to remove the following packages: %s\n",
				strings.Join(p.Protected(), ", "))
			return nil
		}

		var reqErr *purger.RequiredByError
		if errors.As(err, &reqErr) {
			hintColor.Fprintln(os.Stderr,
				"You may run 'pip list --not-required' to list packages that are not dependencies of installed packages.")
			return fmt.Errorf("package '%s' is required by: %s",
				reqErr.Package, strings.Join(reqErr.Dependents, ", "))
		}

		return err
	}

	fmt.Println(plan.Summary())

	if purgeDryRun {
		return nil
	}

	if !purgeYes && !config.AssumeYes {
		prompt := promptui.Prompt{Label: "Proceed", IsConfirm: true}
		if _, err := prompt.Run(); err != nil {
			// Declined or interrupted; nothing has been removed.
			return nil
		}
	}

	return p.Execute(ctx, plan)
}
