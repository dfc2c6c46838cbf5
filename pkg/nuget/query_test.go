package nuget

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	src := Source{Name: "community", URL: "https://community.chocolatey.org/api/v2/"}

	assert.Equal(t,
		"https://community.chocolatey.org/api/v2/Search()?searchTerm=%27visual+studio%27&targetFramework=%27%27&includePrerelease=false",
		SearchURL(src, "visual studio"))
	assert.Equal(t,
		"https://community.chocolatey.org/api/v2/Search()?searchTerm=%27a%26b%3Dc%27&targetFramework=%27%27&includePrerelease=false",
		SearchURL(src, "a&b=c"))
}

func TestUpdatesURL(t *testing.T) {
	src := Source{Name: "gallery", URL: "https://www.powershellgallery.com/api/v2"}

	got := UpdatesURL(src, []string{"PSReadLine", "Pester"}, []string{"2.0.0", "5.5.0"})

	assert.Equal(t,
		"https://www.powershellgallery.com/api/v2/GetUpdates()?packageIds=%27PSReadLine%7CPester%7C%27&versions=%272.0.0%7C5.5.0%7C%27&includePrerelease=0&includeAllVersions=0",
		got)
}

func TestUpdatesURLEmptyLists(t *testing.T) {
	got := UpdatesURL(Source{URL: "http://feed"}, nil, nil)

	assert.Equal(t, "http://feed/GetUpdates()?packageIds=%27%27&versions=%27%27&includePrerelease=0&includeAllVersions=0", got)
}

func TestDetailsURL(t *testing.T) {
	got := DetailsURL(Source{URL: "http://feed/"}, "git", "2.40.0")

	assert.Equal(t, "http://feed/Packages(Id='git',Version='2.40.0')", got)
}

func TestQuerierSearch(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte("<feed/>"))
	}))
	defer server.Close()

	q := NewQuerier(NewClient())
	body, err := q.Search(context.Background(), Source{URL: server.URL}, "git")

	require.NoError(t, err)
	assert.Equal(t, "<feed/>", body)
	assert.Equal(t, "/Search()", gotPath)
	assert.Equal(t, "searchTerm=%27git%27&targetFramework=%27%27&includePrerelease=false", gotQuery)
}

func TestQuerierCheckUpdates(t *testing.T) {
	var gotIDs, gotVersions string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/GetUpdates()", r.URL.Path)
		gotIDs = r.URL.Query().Get("packageIds")
		gotVersions = r.URL.Query().Get("versions")
		w.Write([]byte("<feed/>"))
	}))
	defer server.Close()

	q := NewQuerier(NewClient())
	_, err := q.CheckUpdates(context.Background(), Source{URL: server.URL}, []string{"a", "b"}, []string{"1.0", "2.0"})

	require.NoError(t, err)
	assert.Equal(t, "'a|b|'", gotIDs)
	assert.Equal(t, "'1.0|2.0|'", gotVersions)
}

func TestQuerierCheckUpdatesMismatchedLists(t *testing.T) {
	q := NewQuerier(NewClient())

	_, err := q.CheckUpdates(context.Background(), Source{URL: "http://unused"}, []string{"a"}, nil)

	assert.Error(t, err)
}

func TestClientSendsHeaders(t *testing.T) {
	var userAgent, accept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		accept = r.Header.Get("Accept")
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), "test-agent/1.0")
	_, err := client.GetString(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "test-agent/1.0", userAgent)
	assert.Equal(t, "application/atom+xml,application/xml", accept)
	assert.Equal(t, "test-agent/1.0", client.UserAgent())
}

func TestClientNon2xxIsFeedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient().GetString(context.Background(), server.URL)

	var feedErr *FeedError
	require.True(t, errors.As(err, &feedErr))
	assert.Equal(t, http.StatusInternalServerError, feedErr.StatusCode)
	assert.Contains(t, feedErr.Error(), "unexpected status 500")
}

func TestClientAccepts2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := NewClient().GetString(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "ok", body)
}

func TestClientTransportErrorIsFeedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClientWithTimeout(time.Second).GetString(context.Background(), url)

	var feedErr *FeedError
	require.True(t, errors.As(err, &feedErr))
	assert.Zero(t, feedErr.StatusCode)
	assert.Error(t, feedErr.Unwrap())
}

func TestClientRateLimitHonorsContext(t *testing.T) {
	client := NewClient()
	client.SetRateLimit(0.001)

	// The first request consumes the only token
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()
	_, err := client.GetString(context.Background(), server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.GetString(ctx, server.URL)

	var feedErr *FeedError
	assert.True(t, errors.As(err, &feedErr))

	client.SetRateLimit(0)
	_, err = client.GetString(context.Background(), server.URL)
	assert.NoError(t, err)
}
