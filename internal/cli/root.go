// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arc-language/nupkg"
	"github.com/arc-language/nupkg/pkg/backend"
	"github.com/arc-language/nupkg/pkg/core"
	"github.com/arc-language/nupkg/pkg/installed"
	"github.com/arc-language/nupkg/pkg/nuget"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile       string
	backendName   string
	installedPath string
	concurrency   int
	debug         bool
	config        *core.Config
	configPath    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nupkg",
	Short: "Search NuGet feeds and list package updates",
	Long: `nupkg - NuGet feed client

Searches Chocolatey, the PowerShell Gallery, nuget.org and any other
NuGet v2 feed, and checks installed packages for newer versions.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute executes the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext executes the root command. Cancelling ctx stops queries
// that have not started yet.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nupkg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "package manager backend to use (choco, psgallery, nuget)")
	rootCmd.PersistentFlags().StringVar(&installedPath, "installed", "", "installed packages manifest (TOML)")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "number of sources queried in parallel")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(updatesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(installedCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig resolves settings: flags, then NUPKG_* environment (a .env
// file in the working directory is honored), then the config file.
func initConfig(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	configPath = cfgFile
	if configPath == "" {
		configPath = os.Getenv("NUPKG_CONFIG")
	}
	if configPath == "" {
		if p, err := core.DefaultConfigPath(); err == nil {
			configPath = p
		}
	}

	var err error
	config, err = core.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with environment and flags
	if env := os.Getenv("NUPKG_BACKEND"); env != "" {
		config.DefaultBackend = env
	}
	if env := os.Getenv("NUPKG_INSTALLED"); env != "" {
		config.InstalledPath = env
	}
	if backendName != "" {
		config.DefaultBackend = backendName
	}
	if installedPath != "" {
		config.InstalledPath = installedPath
	}
	if concurrency > 0 {
		config.Concurrency = concurrency
	}
	if debug {
		config.Debug = true
	}

	return nil
}

// currentBackend returns the selected backend type and its properties
func currentBackend() (backend.BackendType, nuget.Properties, error) {
	bt := backend.BackendType(config.DefaultBackend)
	props, ok := backend.PropertiesFor(bt)
	if !ok {
		return "", nuget.Properties{}, fmt.Errorf("%w: %s (choose one of %v)", nupkg.ErrUnsupportedBackend, bt, backend.Types())
	}
	return bt, props, nil
}

// newManager wires the configured backend with its sources, the installed
// manifest and a task logger writing to errOut
func newManager(errOut io.Writer) (*nupkg.Manager, error) {
	bt, props, err := currentBackend()
	if err != nil {
		return nil, err
	}

	sources := config.SourceProvider(string(bt), props.DefaultSource)

	bcfg := &backend.Config{
		Timeout:           config.Timeout,
		Concurrency:       config.Concurrency,
		RequestsPerSecond: config.RequestsPerSecond,
		UserAgent:         config.UserAgent,
		Sources:           sources,
		Installed:         installed.New(config.InstalledPath, sources.GetSources()),
		Debug:             config.Debug,
		NewTaskLogger: func(manager string, task nuget.TaskType) nuget.TaskLogger {
			return newCLITask(errOut, config.Debug, manager, task)
		},
	}
	if config.Debug {
		bcfg.Logger = log.New(errOut, "[NUGET] ", log.LstdFlags)
	}

	return nupkg.NewManager(bt, bcfg)
}
