// internal/cli/updates.go
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "List available updates for installed packages",
	Long: `Check the installed packages manifest against the sources the packages
were installed from and list newer versions.`,
	Args: cobra.NoArgs,
	RunE: runUpdates,
}

func runUpdates(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := newManager(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	defer mgr.Close()

	updates := mgr.Updates(ctx)
	if len(updates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All packages are up to date.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tINSTALLED\tAVAILABLE\tSOURCE")
	for _, p := range updates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.ID, p.InstalledVersion, p.Version, p.Source.Name)
	}
	return w.Flush()
}
