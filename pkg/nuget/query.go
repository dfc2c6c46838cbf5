// pkg/nuget/query.go
package nuget

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Querier builds feed URLs and fetches raw feed text for one source at a time
type Querier struct {
	client *Client
}

// NewQuerier creates a querier on top of client
func NewQuerier(client *Client) *Querier {
	if client == nil {
		client = NewClient()
	}
	return &Querier{client: client}
}

// SearchURL returns the Search() request URL for term on source
func SearchURL(source Source, term string) string {
	return fmt.Sprintf("%s/Search()?searchTerm=%%27%s%%27&targetFramework=%%27%%27&includePrerelease=false",
		source.BaseURL(), url.QueryEscape(term))
}

// UpdatesURL returns the GetUpdates() request URL for the given installed
// ids and versions. Both lists are terminated by a trailing separator.
func UpdatesURL(source Source, ids, versions []string) string {
	return fmt.Sprintf("%s/GetUpdates()?packageIds=%%27%s%%27&versions=%%27%s%%27&includePrerelease=0&includeAllVersions=0",
		source.BaseURL(), url.QueryEscape(joinTerminated(ids)), url.QueryEscape(joinTerminated(versions)))
}

// DetailsURL returns the Packages() request URL of a single package version
func DetailsURL(source Source, id, ver string) string {
	return fmt.Sprintf("%s/Packages(Id='%s',Version='%s')",
		source.BaseURL(), url.PathEscape(id), url.PathEscape(ver))
}

func joinTerminated(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item)
		b.WriteString(idSeparator)
	}
	return b.String()
}

// Search fetches the raw search feed for term on source
func (q *Querier) Search(ctx context.Context, source Source, term string) (string, error) {
	return q.client.GetString(ctx, SearchURL(source, term))
}

// CheckUpdates fetches the raw update feed for the installed ids and versions
func (q *Querier) CheckUpdates(ctx context.Context, source Source, ids, versions []string) (string, error) {
	if len(ids) != len(versions) {
		return "", fmt.Errorf("checking updates on %s: %d ids but %d versions", source.Name, len(ids), len(versions))
	}
	return q.client.GetString(ctx, UpdatesURL(source, ids, versions))
}
