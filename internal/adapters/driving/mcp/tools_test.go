package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

func newTestServer(t *testing.T, svc SearchConsoleService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{SearchConsole: svc})
	require.NoError(t, err)
	return server
}

func TestServer_handleListSites(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all properties", func(t *testing.T) {
		mock := &mockSearchConsoleService{
			sites: []searchconsole.SiteEntry{
				{SiteURL: "https://www.example.com/", PermissionLevel: "siteOwner"},
				{SiteURL: "sc-domain:example.org", PermissionLevel: "siteFullUser"},
			},
		}
		server := newTestServer(t, mock)

		_, output, err := server.handleListSites(ctx, nil, ListSitesInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "https://www.example.com/", output.Sites[0].SiteURL)
		assert.Equal(t, "siteOwner", output.Sites[0].PermissionLevel)
		assert.Equal(t, "sc-domain:example.org", output.Sites[1].SiteURL)
	})

	t.Run("propagates API errors", func(t *testing.T) {
		mock := &mockSearchConsoleService{err: errors.New("googleapi: Error 401")}
		server := newTestServer(t, mock)

		_, _, err := server.handleListSites(ctx, nil, ListSitesInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestServer_handleGetSite(t *testing.T) {
	ctx := context.Background()

	mock := &mockSearchConsoleService{
		site: &searchconsole.SiteEntry{SiteURL: "https://www.example.com/", PermissionLevel: "siteOwner"},
	}
	server := newTestServer(t, mock)

	_, output, err := server.handleGetSite(ctx, nil, SiteInput{SiteURL: "https://www.example.com/"})

	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/", mock.gotSiteURL)
	assert.Equal(t, "siteOwner", output.PermissionLevel)
}

func TestServer_handleAddSite(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms no-content success", func(t *testing.T) {
		mock := &mockSearchConsoleService{}
		server := newTestServer(t, mock)

		_, output, err := server.handleAddSite(ctx, nil, SiteInput{SiteURL: "sc-domain:example.com"})

		require.NoError(t, err)
		assert.Equal(t, "success", output.Status)
		assert.Contains(t, output.Message, "sc-domain:example.com")
		assert.Equal(t, "sc-domain:example.com", mock.gotSiteURL)
	})

	t.Run("propagates errors", func(t *testing.T) {
		mock := &mockSearchConsoleService{err: errors.New("googleapi: Error 403")}
		server := newTestServer(t, mock)

		_, _, err := server.handleAddSite(ctx, nil, SiteInput{SiteURL: "sc-domain:example.com"})

		require.Error(t, err)
	})
}

func TestServer_handleDeleteSite(t *testing.T) {
	ctx := context.Background()

	mock := &mockSearchConsoleService{}
	server := newTestServer(t, mock)

	_, output, err := server.handleDeleteSite(ctx, nil, SiteInput{SiteURL: "https://www.example.com/"})

	require.NoError(t, err)
	assert.Equal(t, "success", output.Status)
	assert.Equal(t, []string{"https://www.example.com/"}, mock.deletedSites)
}

func TestServer_handleListSitemaps(t *testing.T) {
	ctx := context.Background()

	t.Run("without index passes nil options", func(t *testing.T) {
		mock := &mockSearchConsoleService{
			sitemaps: []searchconsole.Sitemap{{Path: "https://www.example.com/sitemap.xml", Type: "sitemap"}},
		}
		server := newTestServer(t, mock)

		_, output, err := server.handleListSitemaps(ctx, nil, ListSitemapsInput{SiteURL: "https://www.example.com/"})

		require.NoError(t, err)
		assert.Nil(t, mock.gotListOpts)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "https://www.example.com/sitemap.xml", output.Sitemaps[0].Path)
	})

	t.Run("with index passes it through", func(t *testing.T) {
		mock := &mockSearchConsoleService{}
		server := newTestServer(t, mock)

		_, _, err := server.handleListSitemaps(ctx, nil, ListSitemapsInput{
			SiteURL:      "https://www.example.com/",
			SitemapIndex: "https://www.example.com/sitemap_index.xml",
		})

		require.NoError(t, err)
		require.NotNil(t, mock.gotListOpts)
		assert.Equal(t, "https://www.example.com/sitemap_index.xml", mock.gotListOpts.SitemapIndex)
	})
}

func TestServer_handleGetSitemap(t *testing.T) {
	ctx := context.Background()

	mock := &mockSearchConsoleService{
		sitemap: &searchconsole.Sitemap{
			Path:     "https://www.example.com/sitemap.xml",
			Warnings: 3,
			Errors:   1,
		},
	}
	server := newTestServer(t, mock)

	_, output, err := server.handleGetSitemap(ctx, nil, SitemapInput{
		SiteURL:  "https://www.example.com/",
		Feedpath: "https://www.example.com/sitemap.xml",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/sitemap.xml", mock.gotFeedpath)
	assert.Equal(t, int64(3), output.Warnings)
	assert.Equal(t, int64(1), output.Errors)
}

func TestServer_handleSubmitSitemap(t *testing.T) {
	ctx := context.Background()

	mock := &mockSearchConsoleService{}
	server := newTestServer(t, mock)

	_, output, err := server.handleSubmitSitemap(ctx, nil, SitemapInput{
		SiteURL:  "https://www.example.com/",
		Feedpath: "https://www.example.com/sitemap.xml",
	})

	require.NoError(t, err)
	assert.Equal(t, "success", output.Status)
	assert.Equal(t, "https://www.example.com/sitemap.xml", mock.gotFeedpath)
}

func TestServer_handleDeleteSitemap(t *testing.T) {
	ctx := context.Background()

	mock := &mockSearchConsoleService{}
	server := newTestServer(t, mock)

	_, output, err := server.handleDeleteSitemap(ctx, nil, SitemapInput{
		SiteURL:  "https://www.example.com/",
		Feedpath: "https://www.example.com/sitemap.xml",
	})

	require.NoError(t, err)
	assert.Equal(t, "success", output.Status)
	assert.Equal(t, []string{"https://www.example.com/sitemap.xml"}, mock.deletedSitemaps)
}

func TestServer_handleQuerySearchAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("maps input onto the query", func(t *testing.T) {
		mock := &mockSearchConsoleService{
			analytic: &searchconsole.SearchAnalyticsResponse{
				Rows: []searchconsole.AnalyticsRow{
					{Keys: []string{"2026-08-01"}, Clicks: 12, Impressions: 340, CTR: 0.035, Position: 4.2},
				},
				ResponseAggregationType: "byProperty",
			},
		}
		server := newTestServer(t, mock)

		input := QuerySearchAnalyticsInput{
			SiteURL:    "sc-domain:example.com",
			StartDate:  "2026-08-01",
			EndDate:    "2026-08-31",
			Dimensions: []string{"date"},
			SearchType: "web",
			RowLimit:   500,
		}
		_, output, err := server.handleQuerySearchAnalytics(ctx, nil, input)

		require.NoError(t, err)
		require.NotNil(t, mock.gotQuery)
		assert.Equal(t, "sc-domain:example.com", mock.gotSiteURL)
		assert.Equal(t, "2026-08-01", mock.gotQuery.StartDate)
		assert.Equal(t, "web", mock.gotQuery.SearchType)
		assert.Equal(t, int64(500), mock.gotQuery.RowLimit)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, 12.0, output.Rows[0].Clicks)
		assert.Equal(t, "byProperty", output.ResponseAggregationType)
	})

	t.Run("propagates errors", func(t *testing.T) {
		mock := &mockSearchConsoleService{err: errors.New("googleapi: Error 400: startDate")}
		server := newTestServer(t, mock)

		_, _, err := server.handleQuerySearchAnalytics(ctx, nil, QuerySearchAnalyticsInput{
			SiteURL: "sc-domain:example.com",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})
}

func TestServer_handleInspectURL(t *testing.T) {
	ctx := context.Background()

	t.Run("flattens the index status result", func(t *testing.T) {
		mock := &mockSearchConsoleService{
			inspect: &searchconsole.URLInspectionResult{
				InspectionResultLink: "https://search.google.com/search-console/inspect?resource_id=x",
				IndexStatusResult: &searchconsole.IndexStatusResult{
					Verdict:       "PASS",
					CoverageState: "Submitted and indexed",
					LastCrawlTime: "2026-08-30T01:23:45Z",
				},
			},
		}
		server := newTestServer(t, mock)

		input := InspectURLInput{
			InspectionURL: "https://www.example.com/page",
			SiteURL:       "https://www.example.com/",
			LanguageCode:  "en-US",
		}
		_, output, err := server.handleInspectURL(ctx, nil, input)

		require.NoError(t, err)
		require.NotNil(t, mock.gotInspectReq)
		assert.Equal(t, "https://www.example.com/page", mock.gotInspectReq.InspectionURL)
		assert.Equal(t, "en-US", mock.gotInspectReq.LanguageCode)
		assert.Equal(t, "PASS", output.Verdict)
		assert.Equal(t, "Submitted and indexed", output.CoverageState)
	})

	t.Run("tolerates empty result", func(t *testing.T) {
		mock := &mockSearchConsoleService{}
		server := newTestServer(t, mock)

		_, output, err := server.handleInspectURL(ctx, nil, InspectURLInput{
			InspectionURL: "https://www.example.com/page",
			SiteURL:       "https://www.example.com/",
		})

		require.NoError(t, err)
		assert.Empty(t, output.Verdict)
	})
}
