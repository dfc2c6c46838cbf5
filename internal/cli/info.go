// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/arc-language/nupkg/pkg/nuget"
	"github.com/spf13/cobra"
)

var (
	infoVersion string
	infoSource  string
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show information about a package",
	Long:  `Display package metadata from a feed of the selected backend.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoVersion, "version", "", "package version (latest if empty)")
	infoCmd.Flags().StringVar(&infoSource, "source", "", "source name (default source if empty)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := newManager(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	defer mgr.Close()

	var source nuget.Source
	if infoSource != "" {
		for _, s := range mgr.Sources() {
			if strings.EqualFold(s.Name, infoSource) {
				source = s
			}
		}
		if source.URL == "" {
			return fmt.Errorf("unknown source: %s", infoSource)
		}
	}

	info, err := mgr.Info(ctx, args[0], infoVersion, source)
	if err != nil {
		return err
	}

	// Display info
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Package: %s\n", info.ID)
	fmt.Fprintf(out, "Version: %s\n", info.Version)
	if info.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", info.Title)
	}
	if info.Authors != "" {
		fmt.Fprintf(out, "Authors: %s\n", info.Authors)
	}
	if info.Summary != "" {
		fmt.Fprintf(out, "Summary: %s\n", info.Summary)
	}
	if info.ProjectURL != "" {
		fmt.Fprintf(out, "Homepage: %s\n", info.ProjectURL)
	}
	if info.IconURL != "" {
		fmt.Fprintf(out, "Icon: %s\n", info.IconURL)
	}
	if len(info.Dependencies) > 0 {
		fmt.Fprintf(out, "Dependencies: %s\n", strings.Join(info.Dependencies, ", "))
	}

	return nil
}
