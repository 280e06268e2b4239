package mcp

import (
	"context"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

// mockSearchConsoleService is a mock implementation of SearchConsoleService.
// It records the arguments of the last call so tests can assert on them.
type mockSearchConsoleService struct {
	sites    []searchconsole.SiteEntry
	site     *searchconsole.SiteEntry
	sitemaps []searchconsole.Sitemap
	sitemap  *searchconsole.Sitemap
	analytic *searchconsole.SearchAnalyticsResponse
	inspect  *searchconsole.URLInspectionResult
	err      error

	gotSiteURL      string
	gotFeedpath     string
	gotListOpts     *searchconsole.ListSitemapsOptions
	gotQuery        *searchconsole.SearchAnalyticsQuery
	gotInspectReq   *searchconsole.InspectURLRequest
	deletedSites    []string
	deletedSitemaps []string
}

func (m *mockSearchConsoleService) ListSites(_ context.Context) ([]searchconsole.SiteEntry, error) {
	return m.sites, m.err
}

func (m *mockSearchConsoleService) GetSite(_ context.Context, siteURL string) (*searchconsole.SiteEntry, error) {
	m.gotSiteURL = siteURL
	return m.site, m.err
}

func (m *mockSearchConsoleService) AddSite(_ context.Context, siteURL string) (*searchconsole.SiteEntry, error) {
	m.gotSiteURL = siteURL
	return m.site, m.err
}

func (m *mockSearchConsoleService) DeleteSite(_ context.Context, siteURL string) error {
	m.deletedSites = append(m.deletedSites, siteURL)
	return m.err
}

func (m *mockSearchConsoleService) ListSitemaps(
	_ context.Context,
	siteURL string,
	opts *searchconsole.ListSitemapsOptions,
) ([]searchconsole.Sitemap, error) {
	m.gotSiteURL = siteURL
	m.gotListOpts = opts
	return m.sitemaps, m.err
}

func (m *mockSearchConsoleService) GetSitemap(_ context.Context, siteURL, feedpath string) (*searchconsole.Sitemap, error) {
	m.gotSiteURL = siteURL
	m.gotFeedpath = feedpath
	return m.sitemap, m.err
}

func (m *mockSearchConsoleService) SubmitSitemap(_ context.Context, siteURL, feedpath string) error {
	m.gotSiteURL = siteURL
	m.gotFeedpath = feedpath
	return m.err
}

func (m *mockSearchConsoleService) DeleteSitemap(_ context.Context, siteURL, feedpath string) error {
	m.deletedSitemaps = append(m.deletedSitemaps, feedpath)
	m.gotSiteURL = siteURL
	return m.err
}

func (m *mockSearchConsoleService) QuerySearchAnalytics(
	_ context.Context,
	siteURL string,
	query *searchconsole.SearchAnalyticsQuery,
) (*searchconsole.SearchAnalyticsResponse, error) {
	m.gotSiteURL = siteURL
	m.gotQuery = query
	return m.analytic, m.err
}

func (m *mockSearchConsoleService) InspectURL(
	_ context.Context,
	req *searchconsole.InspectURLRequest,
) (*searchconsole.URLInspectionResult, error) {
	m.gotInspectReq = req
	return m.inspect, m.err
}
