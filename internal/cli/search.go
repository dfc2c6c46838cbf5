// internal/cli/search.go
package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term...]",
	Short: "Search every configured source for packages",
	Long: `Search all sources of the selected backend. Sources that fail are
reported and skipped, so results may be partial.

Examples:
  nupkg search git
  nupkg search "visual studio" --backend=choco
  nupkg search pester --backend=psgallery`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := newManager(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	defer mgr.Close()

	packages, err := mgr.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No packages found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tVERSION\tSOURCE")
	for _, p := range packages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.ID, p.Version, p.Source.Name)
	}
	return w.Flush()
}
