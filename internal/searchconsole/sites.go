package searchconsole

import (
	"context"
)

// SiteEntry is a verified property in the user's Search Console account.
type SiteEntry struct {
	// SiteURL identifies the property: a URL-prefix property such as
	// "https://www.example.com/" or a domain property "sc-domain:example.com".
	SiteURL string `json:"siteUrl"`

	// PermissionLevel is the user's permission on the property:
	// siteFullUser, siteOwner, siteRestrictedUser or siteUnverifiedUser.
	PermissionLevel string `json:"permissionLevel"`
}

type sitesListResponse struct {
	SiteEntry []SiteEntry `json:"siteEntry"`
}

// ListSites returns all properties accessible to the authenticated user.
func (c *Client) ListSites(ctx context.Context) ([]SiteEntry, error) {
	var res sitesListResponse
	if err := c.get(ctx, c.webmastersBase, "/sites", nil, &res); err != nil {
		return nil, err
	}
	return res.SiteEntry, nil
}

// GetSite retrieves a property, including the user's permission level.
func (c *Client) GetSite(ctx context.Context, siteURL string) (*SiteEntry, error) {
	var site SiteEntry
	if err := c.get(ctx, c.webmastersBase, "/sites/"+escapePath(siteURL), nil, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// AddSite adds a property to the user's account, initiating verification.
// The API responds with no content, so the returned entry is nil unless
// the service includes a site resource in the body.
func (c *Client) AddSite(ctx context.Context, siteURL string) (*SiteEntry, error) {
	var site SiteEntry
	if err := c.put(ctx, c.webmastersBase, "/sites/"+escapePath(siteURL), nil, &site); err != nil {
		return nil, err
	}
	if site.SiteURL == "" {
		return nil, nil
	}
	return &site, nil
}

// DeleteSite removes a property from the user's account. The property
// itself is untouched; only the Search Console registration is removed.
func (c *Client) DeleteSite(ctx context.Context, siteURL string) error {
	return c.delete(ctx, c.webmastersBase, "/sites/"+escapePath(siteURL), nil)
}
