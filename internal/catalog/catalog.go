// Package catalog fetches the remote release catalog for the Sui toolchain.
//
// The catalog is the GitHub releases list of MystenLabs/sui. Each fetch is a
// single request with no caching or retries; commands that need fresh data
// call FetchReleases once per invocation.
package catalog

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/suivm/suivm/internal/log"
)

const (
	// DefaultOwner and DefaultRepo locate the Sui release catalog.
	DefaultOwner = "MystenLabs"
	DefaultRepo  = "sui"

	// UserAgent is the client-identifying header sent with every catalog
	// request. GitHub rejects requests without one.
	UserAgent = "sui-version-manager"

	// releasesPerPage bounds the single catalog request. The catalog is
	// fetched in one request; older releases beyond this window are not
	// listed.
	releasesPerPage = 100
)

// Release is a published toolchain version with its downloadable assets.
type Release struct {
	Tag    string
	Assets []Asset
}

// Asset is a single downloadable file attached to a release.
type Asset struct {
	Name        string
	DownloadURL string
}

// Client reads the remote release catalog.
type Client struct {
	gh     *github.Client
	owner  string
	repo   string
	logger log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRepo points the client at a different owner/repo pair.
func WithRepo(owner, repo string) Option {
	return func(c *Client) {
		c.owner = owner
		c.repo = repo
	}
}

// WithBaseURL overrides the GitHub API base URL. Used by tests to point the
// client at an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		gh, err := c.gh.WithEnterpriseURLs(baseURL, baseURL)
		if err == nil {
			gh.UserAgent = UserAgent
			c.gh = gh
		}
	}
}

// New creates a catalog client. If GITHUB_TOKEN is set in the environment
// the requests are authenticated, which raises the API rate limit; the
// unauthenticated path is the default.
func New(opts ...Option) *Client {
	var httpClient *http.Client
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	gh.UserAgent = UserAgent

	c := &Client{
		gh:     gh,
		owner:  DefaultOwner,
		repo:   DefaultRepo,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchReleases returns the remote releases in catalog order, newest first
// as the API serves them. A transport failure yields a Network error and a
// malformed response body a Decode error.
func (c *Client) FetchReleases(ctx context.Context) ([]Release, error) {
	c.logger.Debug("fetching release catalog", "owner", c.owner, "repo", c.repo)

	ghReleases, _, err := c.gh.Repositories.ListReleases(ctx, c.owner, c.repo,
		&github.ListOptions{PerPage: releasesPerPage})
	if err != nil {
		return nil, classifyFetchError(err, c.owner, c.repo)
	}

	releases := make([]Release, 0, len(ghReleases))
	for _, gr := range ghReleases {
		if gr.TagName == nil {
			continue
		}
		rel := Release{Tag: *gr.TagName}
		for _, ga := range gr.Assets {
			if ga.Name == nil || ga.BrowserDownloadURL == nil {
				continue
			}
			rel.Assets = append(rel.Assets, Asset{
				Name:        *ga.Name,
				DownloadURL: *ga.BrowserDownloadURL,
			})
		}
		releases = append(releases, rel)
	}

	c.logger.Debug("fetched release catalog", "releases", len(releases))
	return releases, nil
}
