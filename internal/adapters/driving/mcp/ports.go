package mcp

import (
	"context"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

// SearchConsoleService is the ten-operation Search Console surface the
// server exposes as tools. *searchconsole.Client satisfies it; tests
// substitute a mock.
type SearchConsoleService interface {
	ListSites(ctx context.Context) ([]searchconsole.SiteEntry, error)
	GetSite(ctx context.Context, siteURL string) (*searchconsole.SiteEntry, error)
	AddSite(ctx context.Context, siteURL string) (*searchconsole.SiteEntry, error)
	DeleteSite(ctx context.Context, siteURL string) error

	ListSitemaps(ctx context.Context, siteURL string, opts *searchconsole.ListSitemapsOptions) ([]searchconsole.Sitemap, error)
	GetSitemap(ctx context.Context, siteURL, feedpath string) (*searchconsole.Sitemap, error)
	SubmitSitemap(ctx context.Context, siteURL, feedpath string) error
	DeleteSitemap(ctx context.Context, siteURL, feedpath string) error

	QuerySearchAnalytics(ctx context.Context, siteURL string, query *searchconsole.SearchAnalyticsQuery) (*searchconsole.SearchAnalyticsResponse, error)
	InspectURL(ctx context.Context, req *searchconsole.InspectURLRequest) (*searchconsole.URLInspectionResult, error)
}

// Ensure the client satisfies the service interface.
var _ SearchConsoleService = (*searchconsole.Client)(nil)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// SearchConsole performs the remote API calls.
	SearchConsole SearchConsoleService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.SearchConsole == nil {
		return ErrMissingSearchConsoleService
	}
	return nil
}
