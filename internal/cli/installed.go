// internal/cli/installed.go
package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/arc-language/nupkg/pkg/installed"
	"github.com/spf13/cobra"
)

var installedSource string

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "List packages in the installed manifest",
	Long: `List the packages recorded in the installed manifest. These are the
packages the updates command checks.`,
	Args: cobra.NoArgs,
	RunE: runInstalled,
}

var installedAddCmd = &cobra.Command{
	Use:   "add [id] [version]",
	Short: "Record an installed package",
	Args:  cobra.ExactArgs(2),
	RunE:  runInstalledAdd,
}

var installedRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a package from the manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runInstalledRemove,
}

func init() {
	installedAddCmd.Flags().StringVar(&installedSource, "source", "", "source name or feed url (default source if empty)")
	installedCmd.AddCommand(installedAddCmd)
	installedCmd.AddCommand(installedRemoveCmd)
}

func manifest() (*installed.Manifest, error) {
	bt, props, err := currentBackend()
	if err != nil {
		return nil, err
	}
	sources := config.SourceProvider(string(bt), props.DefaultSource).GetSources()
	return installed.New(config.InstalledPath, sources), nil
}

func runInstalled(cmd *cobra.Command, args []string) error {
	m, err := manifest()
	if err != nil {
		return err
	}

	packages, err := m.GetInstalledPackages(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(packages) == 0 {
		fmt.Fprintf(out, "No packages recorded in %s\n", m.Path())
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Manifest: %s\n\n", m.Path())
	fmt.Fprintln(w, "ID\tVERSION\tSOURCE")
	for _, p := range packages {
		source := p.Source.Name
		if source == "" {
			source = "(default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Version, source)
	}
	return w.Flush()
}

func runInstalledAdd(cmd *cobra.Command, args []string) error {
	m, err := manifest()
	if err != nil {
		return err
	}

	entries, err := m.Load()
	if err != nil {
		return err
	}

	entry := installed.Entry{ID: args[0], Version: args[1], Source: installedSource}
	replaced := false
	for i, e := range entries {
		if strings.EqualFold(e.ID, entry.ID) && strings.EqualFold(e.Source, entry.Source) {
			entries[i] = entry
			replaced = true
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	if err := m.Save(entries); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %s %s in %s\n", entry.ID, entry.Version, m.Path())
	return nil
}

func runInstalledRemove(cmd *cobra.Command, args []string) error {
	m, err := manifest()
	if err != nil {
		return err
	}

	entries, err := m.Load()
	if err != nil {
		return err
	}

	var kept []installed.Entry
	for _, e := range entries {
		if !strings.EqualFold(e.ID, args[0]) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("package %s not found in %s", args[0], m.Path())
	}

	if err := m.Save(kept); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s from %s\n", args[0], m.Path())
	return nil
}
