package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Search Console resources.
	uriScheme = "searchconsole://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing properties.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sites",
		Name:        "sites",
		Description: "List of all accessible Search Console properties",
		MIMEType:    "application/json",
	}, s.handleSitesResource)

	// Template for a property's sitemaps. The property URL is
	// percent-encoded inside the URI.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sites/{siteUrl}/sitemaps",
		Name:        "site-sitemaps",
		Description: "Sitemaps submitted for a specific property",
		MIMEType:    "application/json",
	}, s.handleSitemapsResource)
}

// handleSitesResource returns the list of accessible properties.
func (s *Server) handleSitesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sites, err := s.ports.SearchConsole.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}

	infos := make([]SiteOutput, len(sites))
	for i := range sites {
		infos[i] = siteOutput(&sites[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sites: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSitemapsResource returns the sitemaps of a specific property.
func (s *Server) handleSitemapsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the property from a URI like
	// searchconsole://sites/{siteUrl}/sitemaps
	siteURL := extractResourceSite(req.Params.URI)
	if siteURL == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sitemaps, err := s.ports.SearchConsole.ListSitemaps(ctx, siteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("listing sitemaps: %w", err)
	}

	infos := make([]SitemapOutput, len(sitemaps))
	for i := range sitemaps {
		infos[i] = sitemapOutput(&sitemaps[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sitemaps: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractResourceSite extracts the percent-encoded property URL from a URI
// like searchconsole://sites/{siteUrl}/sitemaps and decodes it.
func extractResourceSite(uri string) string {
	const prefix = uriScheme + "sites/"
	const suffix = "/sitemaps"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	site, err := url.QueryUnescape(strings.TrimSuffix(uri, suffix))
	if err != nil {
		return ""
	}
	return site
}
