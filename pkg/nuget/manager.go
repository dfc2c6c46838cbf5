// pkg/nuget/manager.go
package nuget

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// NewPackageManager validates cfg and creates a NuGet-based package manager.
// Configuration contract violations are returned immediately.
func NewPackageManager(cfg *Config) (*PackageManager, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Details != nil {
		if fd, ok := cfg.Details.(*FeedDetails); !ok || fd == nil {
			return nil, fmt.Errorf("initializing %s: %w", cfg.Properties.Name, ErrDetailsProvider)
		}
	}
	if !cfg.Capabilities.SupportsCustomVersions {
		return nil, fmt.Errorf("initializing %s: %w", cfg.Properties.Name, ErrCustomVersions)
	}
	if !cfg.Capabilities.SupportsCustomPackageIcons {
		return nil, fmt.Errorf("initializing %s: %w", cfg.Properties.Name, ErrCustomIcons)
	}
	if cfg.Properties.DefaultSource.URL == "" {
		return nil, fmt.Errorf("initializing %s: %w", cfg.Properties.Name, ErrNoDefaultSource)
	}

	// Set defaults
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultConcurrency
	}

	var client *Client
	if cfg.HTTPClient != nil {
		client = NewClientWithHTTP(cfg.HTTPClient, cfg.UserAgent)
	} else {
		client = NewClientWithTimeout(cfg.Timeout)
		client.userAgent = cfg.UserAgent
	}
	client.SetRateLimit(cfg.RequestsPerSecond)

	details := cfg.Details
	if details == nil {
		details = NewFeedDetails(client)
	}

	pm := &PackageManager{
		config:  cfg,
		querier: NewQuerier(client),
		details: details,
		logger:  newLogger(cfg),
	}

	if cfg.Debug {
		pm.logger.Printf("Initialized NuGet PackageManager %s", cfg.Properties.Name)
		pm.logger.Printf("  Default source: %s (%s)", cfg.Properties.DefaultSource.Name, cfg.Properties.DefaultSource.URL)
		pm.logger.Printf("  Custom sources: %v", cfg.Capabilities.SupportsCustomSources)
		pm.logger.Printf("  Concurrency: %d", cfg.Concurrency)
	}

	return pm, nil
}

// Name returns the manager name
func (pm *PackageManager) Name() string {
	return pm.config.Properties.Name
}

// Properties returns the manager properties
func (pm *PackageManager) Properties() Properties {
	return pm.config.Properties
}

// Capabilities returns the manager capabilities
func (pm *PackageManager) Capabilities() Capabilities {
	return pm.config.Capabilities
}

// Sources returns the sources a search is run against
func (pm *PackageManager) Sources() []Source {
	if !pm.config.Capabilities.SupportsCustomSources || pm.config.Sources == nil {
		return []Source{pm.config.Properties.DefaultSource}
	}
	return pm.config.Sources.GetSources()
}

func (pm *PackageManager) newTask(task TaskType) TaskLogger {
	if pm.config.NewTaskLogger != nil {
		return pm.config.NewTaskLogger(task)
	}
	return NewTaskLogger(pm.logger, pm.Name(), task)
}

// FindPackages searches every source for term. A failing source is logged
// and skipped. Results are grouped by source in source order, then by the
// order package ids first appear in that source's feed.
func (pm *PackageManager) FindPackages(ctx context.Context, term string) []Package {
	logger := pm.newTask(TaskFindPackages)
	defer logger.Close(0)

	sources := pm.Sources()

	return pm.fanOut(ctx, logger, len(sources), func(ctx context.Context, i int) []Package {
		source := sources[i]
		logger.Log(fmt.Sprintf("Begin package search with url=%s on manager %s", SearchURL(source, term), pm.Name()))

		body, err := pm.querier.Search(ctx, source, term)
		if err != nil {
			logger.Error(fmt.Sprintf("Search on source %s failed: %v", source.Name, err))
			return nil
		}

		survivors := Deduplicate(ParseEntries(body, SearchShape))

		packages := make([]Package, 0, len(survivors))
		for _, c := range survivors {
			logger.Log(fmt.Sprintf("Found package %s version %s on source %s", c.ID, c.Version, source.Name))
			packages = append(packages, Package{
				Name:    FormatAsName(c.ID),
				ID:      c.ID,
				Version: c.Version,
				Source:  source,
				Manager: pm.Name(),
			})
		}
		return packages
	})
}

// updateGroup batches the installed packages of one source into a single
// GetUpdates() request
type updateGroup struct {
	source    Source
	ids       []string
	versions  []string
	installed map[string]string // lowercased id -> installed version
}

// GetAvailableUpdates asks every source the installed packages came from
// for newer versions. A failing source contributes no updates.
func (pm *PackageManager) GetAvailableUpdates(ctx context.Context) []Package {
	logger := pm.newTask(TaskListUpdates)
	defer logger.Close(0)

	if pm.config.Installed == nil {
		logger.Error("No installed package lister configured")
		return nil
	}

	installed, err := pm.config.Installed.GetInstalledPackages(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("Listing installed packages failed: %v", err))
		return nil
	}

	groups := pm.groupBySource(logger, installed)

	return pm.fanOut(ctx, logger, len(groups), func(ctx context.Context, i int) []Package {
		group := groups[i]
		logger.Log(fmt.Sprintf("Checking %d packages for updates on source %s", len(group.ids), group.source.Name))

		body, err := pm.querier.CheckUpdates(ctx, group.source, group.ids, group.versions)
		if err != nil {
			logger.Error(fmt.Sprintf("Update check on source %s failed: %v", group.source.Name, err))
			return nil
		}

		survivors := Deduplicate(ParseEntries(body, UpdateShape))

		packages := make([]Package, 0, len(survivors))
		for _, c := range survivors {
			installedVersion, ok := group.installed[strings.ToLower(c.ID)]
			if !ok {
				logger.Log(fmt.Sprintf("Ignoring update for %s: not installed from source %s", c.ID, group.source.Name))
				continue
			}

			logger.Log(fmt.Sprintf("Found package %s version %s on source %s", c.ID, c.Version, group.source.Name))
			packages = append(packages, Package{
				Name:             FormatAsName(c.ID),
				ID:               c.ID,
				Version:          c.Version,
				InstalledVersion: installedVersion,
				Source:           group.source,
				Manager:          pm.Name(),
			})
		}
		return packages
	})
}

// groupBySource groups installed packages by source URL in first-seen order.
// Packages with no source belong to the default source.
func (pm *PackageManager) groupBySource(logger TaskLogger, installed []InstalledPackage) []*updateGroup {
	var groups []*updateGroup
	byURL := make(map[string]*updateGroup)

	for _, pkg := range installed {
		if pkg.ID == "" {
			continue
		}

		source := pkg.Source
		if source.URL == "" {
			source = pm.config.Properties.DefaultSource
		}

		key := source.BaseURL()
		group, ok := byURL[key]
		if !ok {
			group = &updateGroup{source: source, installed: make(map[string]string)}
			byURL[key] = group
			groups = append(groups, group)
		}

		lower := strings.ToLower(pkg.ID)
		if _, dup := group.installed[lower]; dup {
			logger.Log(fmt.Sprintf("Package %s is listed twice for source %s, keeping the first", pkg.ID, source.Name))
			continue
		}
		group.installed[lower] = pkg.Version
		group.ids = append(group.ids, pkg.ID)
		group.versions = append(group.versions, pkg.Version)
	}

	return groups
}

// fanOut runs fn for every index with at most Concurrency calls in flight.
// Each call owns its result slot; slots are concatenated in index order.
// Once ctx is done no further calls are started.
func (pm *PackageManager) fanOut(ctx context.Context, logger TaskLogger, n int, fn func(ctx context.Context, i int) []Package) []Package {
	results := make([][]Package, n)

	workers := pm.config.Concurrency
	if workers > n {
		workers = n
	}

	started := 0
	if workers <= 1 {
		for ; started < n && ctx.Err() == nil; started++ {
			results[started] = fn(ctx, started)
		}
	} else {
		semaphore := make(chan struct{}, workers)
		var wg sync.WaitGroup

	loop:
		for ; started < n; started++ {
			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				break loop
			}
			if ctx.Err() != nil {
				<-semaphore
				break
			}

			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer func() { <-semaphore }()
				results[i] = fn(ctx, i)
			}(started)
		}

		wg.Wait()
	}

	if started < n {
		logger.Error(fmt.Sprintf("Skipped %d of %d sources: %v", n-started, n, ctx.Err()))
	}

	var packages []Package
	for _, r := range results {
		packages = append(packages, r...)
	}
	return packages
}

// Details fetches the metadata of pkg from its source
func (pm *PackageManager) Details(ctx context.Context, pkg Package) (*PackageDetails, error) {
	logger := pm.newTask(TaskDetails)

	if pkg.Source.URL == "" {
		pkg.Source = pm.config.Properties.DefaultSource
	}

	details, err := pm.details.Details(ctx, pkg)
	if err != nil {
		logger.Error(fmt.Sprintf("Loading details of %s failed: %v", pkg.ID, err))
		logger.Close(1)
		return nil, err
	}

	logger.Log(fmt.Sprintf("Loaded details of %s version %s from source %s", details.ID, details.Version, pkg.Source.Name))
	logger.Close(0)
	return details, nil
}
