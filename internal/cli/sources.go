// internal/cli/sources.go
package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/arc-language/nupkg/pkg/core"
	"github.com/arc-language/nupkg/pkg/nuget"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the feeds of the selected backend",
	Args:  cobra.NoArgs,
	RunE:  runSources,
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add [name] [url]",
	Short: "Add a feed to the selected backend",
	Args:  cobra.ExactArgs(2),
	RunE:  runSourcesAdd,
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a feed from the selected backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourcesRemove,
}

func init() {
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	bt, props, err := currentBackend()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Backend: %s (%s)\n\n", props.DisplayName, bt)
	fmt.Fprintln(w, "NAME\tURL")
	for _, s := range config.SourceProvider(string(bt), props.DefaultSource).GetSources() {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.URL)
	}
	return w.Flush()
}

func runSourcesAdd(cmd *cobra.Command, args []string) error {
	bt, props, err := currentBackend()
	if err != nil {
		return err
	}

	name, url := args[0], args[1]
	if !strings.Contains(url, "://") {
		return fmt.Errorf("invalid source url: %s", url)
	}

	stored, err := core.LoadStoredConfig(configPath)
	if err != nil {
		return err
	}

	sources := stored.Sources(string(bt))
	if len(sources) == 0 {
		sources = []nuget.Source{props.DefaultSource}
	}
	for _, s := range sources {
		if strings.EqualFold(s.Name, name) {
			return fmt.Errorf("source %s already exists", name)
		}
	}

	stored.SetSources(string(bt), append(sources, nuget.Source{Name: name, URL: url}))
	if err := core.SaveConfig(stored, configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added source %s to %s\n", name, bt)
	return nil
}

func runSourcesRemove(cmd *cobra.Command, args []string) error {
	bt, _, err := currentBackend()
	if err != nil {
		return err
	}

	stored, err := core.LoadStoredConfig(configPath)
	if err != nil {
		return err
	}

	name := args[0]
	var kept []nuget.Source
	removed := false
	for _, s := range stored.Sources(string(bt)) {
		if strings.EqualFold(s.Name, name) {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		return fmt.Errorf("source %s not found", name)
	}

	stored.SetSources(string(bt), kept)
	if err := core.SaveConfig(stored, configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed source %s from %s\n", name, bt)
	return nil
}
