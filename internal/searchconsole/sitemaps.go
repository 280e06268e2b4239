package searchconsole

import (
	"context"
	"net/url"
)

// Sitemap describes a submitted sitemap feed and its processing state.
type Sitemap struct {
	// Path is the URL of the sitemap, e.g. "https://www.example.com/sitemap.xml".
	Path string `json:"path"`

	// LastSubmitted is the RFC 3339 time the sitemap was last submitted.
	LastSubmitted string `json:"lastSubmitted"`

	// IsPending reports whether the sitemap has not yet been processed.
	IsPending bool `json:"isPending"`

	// IsSitemapsIndex reports whether the feed is a sitemap index file.
	IsSitemapsIndex bool `json:"isSitemapsIndex"`

	// Type is the feed type: sitemap, rssFeed, atomFeed or urlList.
	Type string `json:"type"`

	// LastDownloaded is the RFC 3339 time Google last fetched the feed.
	LastDownloaded string `json:"lastDownloaded"`

	// Warnings and Errors are counts from the last processing run. The
	// API serialises them as decimal strings.
	Warnings int64 `json:"warnings,string"`
	Errors   int64 `json:"errors,string"`

	// Contents breaks down the feed by content type.
	Contents []SitemapContent `json:"contents"`
}

// SitemapContent is a per-content-type breakdown within a sitemap.
type SitemapContent struct {
	// Type is the content type, e.g. "web" or "image".
	Type string `json:"type"`

	// Submitted and Indexed are URL counts, serialised as decimal strings.
	Submitted int64 `json:"submitted,string"`
	Indexed   int64 `json:"indexed,string"`
}

// ListSitemapsOptions holds the optional parameters of ListSitemaps.
type ListSitemapsOptions struct {
	// SitemapIndex restricts the listing to children of the given sitemap
	// index URL. Empty means all sitemaps of the site.
	SitemapIndex string
}

type sitemapsListResponse struct {
	Sitemap []Sitemap `json:"sitemap"`
}

// ListSitemaps returns the sitemaps submitted for a site. opts may be nil;
// absent options are omitted from the request entirely.
func (c *Client) ListSitemaps(ctx context.Context, siteURL string, opts *ListSitemapsOptions) ([]Sitemap, error) {
	var params url.Values
	if opts != nil && opts.SitemapIndex != "" {
		params = url.Values{"sitemapIndex": {opts.SitemapIndex}}
	}

	var res sitemapsListResponse
	if err := c.get(ctx, c.webmastersBase, "/sites/"+escapePath(siteURL)+"/sitemaps", params, &res); err != nil {
		return nil, err
	}
	return res.Sitemap, nil
}

// GetSitemap retrieves information about a specific sitemap feed.
func (c *Client) GetSitemap(ctx context.Context, siteURL, feedpath string) (*Sitemap, error) {
	var sitemap Sitemap
	path := "/sites/" + escapePath(siteURL) + "/sitemaps/" + escapePath(feedpath)
	if err := c.get(ctx, c.webmastersBase, path, nil, &sitemap); err != nil {
		return nil, err
	}
	return &sitemap, nil
}

// SubmitSitemap submits a sitemap feed for a site. Success is a
// no-content response.
func (c *Client) SubmitSitemap(ctx context.Context, siteURL, feedpath string) error {
	path := "/sites/" + escapePath(siteURL) + "/sitemaps/" + escapePath(feedpath)
	return c.put(ctx, c.webmastersBase, path, nil, nil)
}

// DeleteSitemap removes a sitemap from a site. The feed itself stays on
// the web; only the Search Console submission is deleted.
func (c *Client) DeleteSitemap(ctx context.Context, siteURL, feedpath string) error {
	path := "/sites/" + escapePath(siteURL) + "/sitemaps/" + escapePath(feedpath)
	return c.delete(ctx, c.webmastersBase, path, nil)
}
