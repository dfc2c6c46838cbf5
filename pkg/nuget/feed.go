// pkg/nuget/feed.go
package nuget

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// atomFeed is the NuGet v2 response to a Packages() or Search() query
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

// atomEntry is a package entry in the feed. Packages(Id,Version) may
// answer with a bare <entry> document instead of a <feed>.
type atomEntry struct {
	Title   string       `xml:"title"`
	Summary string       `xml:"summary"`
	Author  atomAuthor   `xml:"author"`
	Props   packageProps `xml:"properties"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

// packageProps are the m:properties of an entry
type packageProps struct {
	ID              string `xml:"Id"`
	Version         string `xml:"Version"`
	Title           string `xml:"Title"`
	Description     string `xml:"Description"`
	Summary         string `xml:"Summary"`
	Authors         string `xml:"Authors"`
	Owners          string `xml:"Owners"`
	ProjectURL      string `xml:"ProjectUrl"`
	LicenseURL      string `xml:"LicenseUrl"`
	IconURL         string `xml:"IconUrl"`
	Tags            string `xml:"Tags"`
	Dependencies    string `xml:"Dependencies"`
	PackageHash     string `xml:"PackageHash"`
	PackageHashAlgo string `xml:"PackageHashAlgorithm"`
	PackageSize     string `xml:"PackageSize"`
	Published       string `xml:"Published"`
	DownloadCount   string `xml:"DownloadCount"`
}

// ParseDetails decodes a Packages() response into package details. Both
// <feed> and single <entry> documents are accepted.
func ParseDetails(r io.Reader) ([]*PackageDetails, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	var entries []atomEntry

	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err == nil {
		entries = feed.Entries
	} else {
		var entry atomEntry
		if entryErr := xml.Unmarshal(data, &entry); entryErr != nil {
			return nil, fmt.Errorf("decoding feed: %w", err)
		}
		entries = []atomEntry{entry}
	}

	details := make([]*PackageDetails, 0, len(entries))
	for _, entry := range entries {
		details = append(details, entry.details())
	}
	return details, nil
}

func (e atomEntry) details() *PackageDetails {
	d := &PackageDetails{
		ID:              e.Props.ID,
		Version:         e.Props.Version,
		Title:           e.Props.Title,
		Description:     strings.TrimSpace(e.Props.Description),
		Summary:         strings.TrimSpace(e.Props.Summary),
		Authors:         e.Props.Authors,
		Owners:          e.Props.Owners,
		ProjectURL:      e.Props.ProjectURL,
		LicenseURL:      e.Props.LicenseURL,
		IconURL:         e.Props.IconURL,
		Tags:            strings.TrimSpace(e.Props.Tags),
		Dependencies:    parseDependencies(e.Props.Dependencies),
		PackageHash:     e.Props.PackageHash,
		PackageHashAlgo: e.Props.PackageHashAlgo,
		Published:       e.Props.Published,
	}

	// The Atom title is the ID on most servers, the property is the display title
	if d.Title == "" {
		d.Title = strings.TrimSpace(e.Title)
	}
	if d.Summary == "" {
		d.Summary = strings.TrimSpace(e.Summary)
	}
	if d.Authors == "" {
		d.Authors = e.Author.Name
	}

	if size, err := strconv.ParseInt(e.Props.PackageSize, 10, 64); err == nil {
		d.PackageSize = size
	}
	if count, err := strconv.ParseInt(e.Props.DownloadCount, 10, 64); err == nil {
		d.DownloadCount = count
	}

	return d
}

// parseDependencies parses "id:version:framework|id:version:framework"
// into the list of dependency IDs
func parseDependencies(deps string) []string {
	if deps == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(deps, idSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, ":"); idx > 0 {
			part = part[:idx]
		} else if idx == 0 {
			continue
		}
		result = append(result, part)
	}
	return result
}
