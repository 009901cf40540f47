// Package install owns the on-disk version store and the operations that
// mutate it: install, uninstall and activation.
//
// State is encoded entirely in the filesystem. A version is installed if
// and only if versions/<version> exists as a directory, and the active
// version is whatever the `current` symlink points at. There is no
// manifest and no transaction log: a failed install leaves partial state
// behind, and the next install of the same version overwrites it.
package install

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/suivm/suivm/internal/catalog"
	"github.com/suivm/suivm/internal/config"
	"github.com/suivm/suivm/internal/httputil"
	"github.com/suivm/suivm/internal/log"
	"github.com/suivm/suivm/internal/platform"
)

// Catalog is the slice of the release catalog client the Manager needs.
// Satisfied by *catalog.Client; tests substitute a local fake.
type Catalog interface {
	FetchReleases(ctx context.Context) ([]catalog.Release, error)
}

// Manager performs all operations against the local version store.
type Manager struct {
	cfg        *config.Config
	catalog    Catalog
	target     platform.Target
	httpClient *http.Client
	logger     log.Logger
	out        io.Writer
}

// Option configures a Manager.
type Option func(*Manager)

// WithCatalog substitutes the release catalog client.
func WithCatalog(c Catalog) Option {
	return func(m *Manager) { m.catalog = c }
}

// WithTarget overrides the platform used for asset selection.
func WithTarget(t platform.Target) Option {
	return func(m *Manager) { m.target = t }
}

// WithHTTPClient substitutes the client used for asset downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) { m.httpClient = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithOutput redirects user-facing output (progress, guidance).
func WithOutput(w io.Writer) Option {
	return func(m *Manager) { m.out = w }
}

// New creates a Manager rooted at the given config.
func New(cfg *config.Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:        cfg,
		catalog:    catalog.New(),
		target:     platform.Host(),
		httpClient: httputil.NewClient(httputil.ClientOptions{}),
		logger:     log.Default(),
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
