// pkg/nuget/details.go
package nuget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// FeedDetails fetches package metadata from the feed a package was found on
type FeedDetails struct {
	client *Client
}

// NewFeedDetails creates a details provider on top of client
func NewFeedDetails(client *Client) *FeedDetails {
	if client == nil {
		client = NewClient()
	}
	return &FeedDetails{client: client}
}

// Details returns the metadata of pkg.ID at pkg.Version, or of the latest
// version when pkg.Version is empty
func (d *FeedDetails) Details(ctx context.Context, pkg Package) (*PackageDetails, error) {
	if pkg.ID == "" {
		return nil, fmt.Errorf("package id is required")
	}

	var detailsURL string
	if pkg.Version != "" {
		detailsURL = DetailsURL(pkg.Source, pkg.ID, pkg.Version)
	} else {
		filter := fmt.Sprintf("(tolower(Id) eq '%s') and IsLatestVersion", strings.ToLower(pkg.ID))
		detailsURL = fmt.Sprintf("%s/Packages()?$filter=%s&$top=1", pkg.Source.BaseURL(), url.QueryEscape(filter))
	}

	resp, err := d.client.Get(ctx, detailsURL)
	if err != nil {
		var feedErr *FeedError
		if errors.As(err, &feedErr) && feedErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, pkg.ID)
		}
		return nil, fmt.Errorf("fetching package details: %w", err)
	}
	defer resp.Body.Close()

	details, err := ParseDetails(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing package details: %w", err)
	}

	for _, entry := range details {
		if entry.ID != "" {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, pkg.ID)
}
