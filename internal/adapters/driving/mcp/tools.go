package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

// SiteOutput represents a Search Console property.
type SiteOutput struct {
	SiteURL         string `json:"site_url"`
	PermissionLevel string `json:"permission_level,omitempty"`
}

// ListSitesInput is the input schema for the list_sites tool.
type ListSitesInput struct{}

// ListSitesOutput is the output schema for the list_sites tool.
type ListSitesOutput struct {
	Sites []SiteOutput `json:"sites"`
	Count int          `json:"count"`
}

// SiteInput identifies a property for site-scoped tools.
type SiteInput struct {
	SiteURL string `json:"site_url" jsonschema:"the property URL, e.g. https://www.example.com/ or sc-domain:example.com"`
}

// StatusOutput confirms a no-content operation.
type StatusOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SitemapOutput represents a submitted sitemap feed.
type SitemapOutput struct {
	Path            string `json:"path"`
	Type            string `json:"type,omitempty"`
	LastSubmitted   string `json:"last_submitted,omitempty"`
	LastDownloaded  string `json:"last_downloaded,omitempty"`
	IsPending       bool   `json:"is_pending"`
	IsSitemapsIndex bool   `json:"is_sitemaps_index"`
	Warnings        int64  `json:"warnings"`
	Errors          int64  `json:"errors"`
}

// ListSitemapsInput is the input schema for the list_sitemaps tool.
type ListSitemapsInput struct {
	SiteURL      string `json:"site_url" jsonschema:"the property URL, e.g. https://www.example.com/ or sc-domain:example.com"`
	SitemapIndex string `json:"sitemap_index,omitempty" jsonschema:"optional sitemap index URL to list children of"`
}

// ListSitemapsOutput is the output schema for the list_sitemaps tool.
type ListSitemapsOutput struct {
	Sitemaps []SitemapOutput `json:"sitemaps"`
	Count    int             `json:"count"`
}

// SitemapInput identifies one sitemap feed of a property.
type SitemapInput struct {
	SiteURL  string `json:"site_url" jsonschema:"the property URL, e.g. https://www.example.com/ or sc-domain:example.com"`
	Feedpath string `json:"feedpath" jsonschema:"the sitemap URL, e.g. https://www.example.com/sitemap.xml"`
}

// QuerySearchAnalyticsInput is the input schema for the
// query_search_analytics tool. Optional fields left empty are not sent.
type QuerySearchAnalyticsInput struct {
	SiteURL               string                               `json:"site_url" jsonschema:"the property URL, e.g. https://www.example.com/ or sc-domain:example.com"`
	StartDate             string                               `json:"start_date" jsonschema:"start of the period, YYYY-MM-DD"`
	EndDate               string                               `json:"end_date" jsonschema:"end of the period, YYYY-MM-DD"`
	Dimensions            []string                             `json:"dimensions,omitempty" jsonschema:"dimensions to group by: date, query, page, country, device, searchAppearance"`
	SearchType            string                               `json:"search_type,omitempty" jsonschema:"result type filter: web, image, video, news, discover or googleNews"`
	RowLimit              int64                                `json:"row_limit,omitempty" jsonschema:"maximum rows to return (API maximum 25000)"`
	StartRow              int64                                `json:"start_row,omitempty" jsonschema:"zero-based index of the first row"`
	DataState             string                               `json:"data_state,omitempty" jsonschema:"all to include fresh data, final for settled data"`
	AggregationType       string                               `json:"aggregation_type,omitempty" jsonschema:"auto, byPage or byProperty"`
	DimensionFilterGroups []searchconsole.DimensionFilterGroup `json:"dimension_filter_groups,omitempty" jsonschema:"filters applied to dimensions before aggregation"`
}

// AnalyticsRowOutput is one aggregated metrics record.
type AnalyticsRowOutput struct {
	Keys        []string `json:"keys,omitempty"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// QuerySearchAnalyticsOutput is the output schema for the
// query_search_analytics tool.
type QuerySearchAnalyticsOutput struct {
	Rows                    []AnalyticsRowOutput `json:"rows"`
	Count                   int                  `json:"count"`
	ResponseAggregationType string               `json:"response_aggregation_type,omitempty"`
}

// InspectURLInput is the input schema for the inspect_url tool.
type InspectURLInput struct {
	InspectionURL string `json:"inspection_url" jsonschema:"the fully-qualified URL to inspect"`
	SiteURL       string `json:"site_url" jsonschema:"the property the URL belongs to"`
	LanguageCode  string `json:"language_code,omitempty" jsonschema:"optional BCP-47 language code for result messages, e.g. en-US"`
}

// InspectURLOutput is the output schema for the inspect_url tool.
type InspectURLOutput struct {
	InspectionResultLink string   `json:"inspection_result_link,omitempty"`
	Verdict              string   `json:"verdict,omitempty"`
	CoverageState        string   `json:"coverage_state,omitempty"`
	RobotsTxtState       string   `json:"robots_txt_state,omitempty"`
	IndexingState        string   `json:"indexing_state,omitempty"`
	LastCrawlTime        string   `json:"last_crawl_time,omitempty"`
	PageFetchState       string   `json:"page_fetch_state,omitempty"`
	GoogleCanonical      string   `json:"google_canonical,omitempty"`
	UserCanonical        string   `json:"user_canonical,omitempty"`
	Sitemap              []string `json:"sitemap,omitempty"`
	ReferringURLs        []string `json:"referring_urls,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sites",
		Description: "List all Search Console properties accessible to the authenticated user",
	}, s.handleListSites)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_site",
		Description: "Get a Search Console property, including the user's permission level",
	}, s.handleGetSite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_site",
		Description: "Add a property to the user's Search Console account, initiating verification",
	}, s.handleAddSite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_site",
		Description: "Remove a property from the user's Search Console account",
	}, s.handleDeleteSite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sitemaps",
		Description: "List the sitemaps submitted for a property",
	}, s.handleListSitemaps)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sitemap",
		Description: "Get details of a submitted sitemap, including processing state and errors",
	}, s.handleGetSitemap)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "submit_sitemap",
		Description: "Submit a sitemap feed for a property",
	}, s.handleSubmitSitemap)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_sitemap",
		Description: "Delete a sitemap submission from a property (the feed itself stays on the web)",
	}, s.handleDeleteSitemap)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_search_analytics",
		Description: "Query search analytics data (clicks, impressions, CTR, position) for a property",
	}, s.handleQuerySearchAnalytics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect_url",
		Description: "Run a URL inspection to get Google's indexing status report for a URL",
	}, s.handleInspectURL)
}

func (s *Server) handleListSites(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListSitesInput,
) (*mcp.CallToolResult, ListSitesOutput, error) {
	sites, err := s.ports.SearchConsole.ListSites(ctx)
	if err != nil {
		return nil, ListSitesOutput{}, err
	}

	output := ListSitesOutput{
		Sites: make([]SiteOutput, len(sites)),
		Count: len(sites),
	}
	for i := range sites {
		output.Sites[i] = siteOutput(&sites[i])
	}

	return nil, output, nil
}

func (s *Server) handleGetSite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SiteInput,
) (*mcp.CallToolResult, SiteOutput, error) {
	site, err := s.ports.SearchConsole.GetSite(ctx, input.SiteURL)
	if err != nil {
		return nil, SiteOutput{}, err
	}
	return nil, siteOutput(site), nil
}

func (s *Server) handleAddSite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SiteInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if _, err := s.ports.SearchConsole.AddSite(ctx, input.SiteURL); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, StatusOutput{
		Status:  "success",
		Message: fmt.Sprintf("Site %q added. Proceed with verification if needed.", input.SiteURL),
	}, nil
}

func (s *Server) handleDeleteSite(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SiteInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.ports.SearchConsole.DeleteSite(ctx, input.SiteURL); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, StatusOutput{
		Status:  "success",
		Message: fmt.Sprintf("Site %q deleted.", input.SiteURL),
	}, nil
}

func (s *Server) handleListSitemaps(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSitemapsInput,
) (*mcp.CallToolResult, ListSitemapsOutput, error) {
	var opts *searchconsole.ListSitemapsOptions
	if input.SitemapIndex != "" {
		opts = &searchconsole.ListSitemapsOptions{SitemapIndex: input.SitemapIndex}
	}

	sitemaps, err := s.ports.SearchConsole.ListSitemaps(ctx, input.SiteURL, opts)
	if err != nil {
		return nil, ListSitemapsOutput{}, err
	}

	output := ListSitemapsOutput{
		Sitemaps: make([]SitemapOutput, len(sitemaps)),
		Count:    len(sitemaps),
	}
	for i := range sitemaps {
		output.Sitemaps[i] = sitemapOutput(&sitemaps[i])
	}

	return nil, output, nil
}

func (s *Server) handleGetSitemap(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SitemapInput,
) (*mcp.CallToolResult, SitemapOutput, error) {
	sitemap, err := s.ports.SearchConsole.GetSitemap(ctx, input.SiteURL, input.Feedpath)
	if err != nil {
		return nil, SitemapOutput{}, err
	}
	return nil, sitemapOutput(sitemap), nil
}

func (s *Server) handleSubmitSitemap(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SitemapInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.ports.SearchConsole.SubmitSitemap(ctx, input.SiteURL, input.Feedpath); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, StatusOutput{
		Status:  "success",
		Message: fmt.Sprintf("Sitemap %q submitted for site %q.", input.Feedpath, input.SiteURL),
	}, nil
}

func (s *Server) handleDeleteSitemap(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SitemapInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if err := s.ports.SearchConsole.DeleteSitemap(ctx, input.SiteURL, input.Feedpath); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, StatusOutput{
		Status:  "success",
		Message: fmt.Sprintf("Sitemap %q deleted from site %q.", input.Feedpath, input.SiteURL),
	}, nil
}

func (s *Server) handleQuerySearchAnalytics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QuerySearchAnalyticsInput,
) (*mcp.CallToolResult, QuerySearchAnalyticsOutput, error) {
	query := &searchconsole.SearchAnalyticsQuery{
		StartDate:             input.StartDate,
		EndDate:               input.EndDate,
		Dimensions:            input.Dimensions,
		DimensionFilterGroups: input.DimensionFilterGroups,
		AggregationType:       input.AggregationType,
		RowLimit:              input.RowLimit,
		StartRow:              input.StartRow,
		DataState:             input.DataState,
		SearchType:            input.SearchType,
	}

	res, err := s.ports.SearchConsole.QuerySearchAnalytics(ctx, input.SiteURL, query)
	if err != nil {
		return nil, QuerySearchAnalyticsOutput{}, err
	}

	output := QuerySearchAnalyticsOutput{
		Rows:                    make([]AnalyticsRowOutput, len(res.Rows)),
		Count:                   len(res.Rows),
		ResponseAggregationType: res.ResponseAggregationType,
	}
	for i := range res.Rows {
		output.Rows[i] = AnalyticsRowOutput{
			Keys:        res.Rows[i].Keys,
			Clicks:      res.Rows[i].Clicks,
			Impressions: res.Rows[i].Impressions,
			CTR:         res.Rows[i].CTR,
			Position:    res.Rows[i].Position,
		}
	}

	return nil, output, nil
}

func (s *Server) handleInspectURL(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InspectURLInput,
) (*mcp.CallToolResult, InspectURLOutput, error) {
	req := &searchconsole.InspectURLRequest{
		InspectionURL: input.InspectionURL,
		SiteURL:       input.SiteURL,
		LanguageCode:  input.LanguageCode,
	}

	result, err := s.ports.SearchConsole.InspectURL(ctx, req)
	if err != nil {
		return nil, InspectURLOutput{}, err
	}
	if result == nil {
		return nil, InspectURLOutput{}, nil
	}

	output := InspectURLOutput{InspectionResultLink: result.InspectionResultLink}
	if idx := result.IndexStatusResult; idx != nil {
		output.Verdict = idx.Verdict
		output.CoverageState = idx.CoverageState
		output.RobotsTxtState = idx.RobotsTxtState
		output.IndexingState = idx.IndexingState
		output.LastCrawlTime = idx.LastCrawlTime
		output.PageFetchState = idx.PageFetchState
		output.GoogleCanonical = idx.GoogleCanonical
		output.UserCanonical = idx.UserCanonical
		output.Sitemap = idx.Sitemap
		output.ReferringURLs = idx.ReferringUrls
	}

	return nil, output, nil
}

func siteOutput(site *searchconsole.SiteEntry) SiteOutput {
	if site == nil {
		return SiteOutput{}
	}
	return SiteOutput{
		SiteURL:         site.SiteURL,
		PermissionLevel: site.PermissionLevel,
	}
}

func sitemapOutput(sitemap *searchconsole.Sitemap) SitemapOutput {
	if sitemap == nil {
		return SitemapOutput{}
	}
	return SitemapOutput{
		Path:            sitemap.Path,
		Type:            sitemap.Type,
		LastSubmitted:   sitemap.LastSubmitted,
		LastDownloaded:  sitemap.LastDownloaded,
		IsPending:       sitemap.IsPending,
		IsSitemapsIndex: sitemap.IsSitemapsIndex,
		Warnings:        sitemap.Warnings,
		Errors:          sitemap.Errors,
	}
}
