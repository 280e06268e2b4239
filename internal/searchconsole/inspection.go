package searchconsole

import (
	"context"
)

// InspectURLRequest asks for the index status of one URL under a property.
type InspectURLRequest struct {
	// InspectionURL is the fully-qualified URL to inspect. It must be
	// under the property identified by SiteURL.
	InspectionURL string `json:"inspectionUrl"`

	// SiteURL is the property the URL belongs to, either a URL-prefix
	// property or "sc-domain:" form.
	SiteURL string `json:"siteUrl"`

	// LanguageCode is an optional BCP-47 code for translated result
	// messages, e.g. "en-US". Omitted when empty.
	LanguageCode string `json:"languageCode,omitempty"`
}

type inspectURLResponse struct {
	InspectionResult *URLInspectionResult `json:"inspectionResult"`
}

// URLInspectionResult is Google's per-URL indexing diagnostic report.
type URLInspectionResult struct {
	// InspectionResultLink opens the same report in the Search Console UI.
	InspectionResultLink string `json:"inspectionResultLink"`

	IndexStatusResult     *IndexStatusResult     `json:"indexStatusResult"`
	AMPResult             *AMPResult             `json:"ampResult"`
	MobileUsabilityResult *MobileUsabilityResult `json:"mobileUsabilityResult"`
	RichResultsResult     *RichResultsResult     `json:"richResultsResult"`
}

// IndexStatusResult is the indexing portion of an inspection report.
type IndexStatusResult struct {
	// Verdict is the overall outcome: PASS, PARTIAL, FAIL or NEUTRAL.
	Verdict string `json:"verdict"`

	// CoverageState explains whether and why the URL is in the index.
	CoverageState string `json:"coverageState"`

	RobotsTxtState string `json:"robotsTxtState"`
	IndexingState  string `json:"indexingState"`

	// LastCrawlTime is the RFC 3339 time of the last crawl, if any.
	LastCrawlTime string `json:"lastCrawlTime"`

	PageFetchState  string   `json:"pageFetchState"`
	GoogleCanonical string   `json:"googleCanonical"`
	UserCanonical   string   `json:"userCanonical"`
	Sitemap         []string `json:"sitemap"`
	ReferringUrls   []string `json:"referringUrls"`
	CrawledAs       string   `json:"crawledAs"`
}

// AMPResult is the AMP portion of an inspection report.
type AMPResult struct {
	Verdict       string `json:"verdict"`
	AMPURL        string `json:"ampUrl"`
	IndexingState string `json:"ampIndexStatusVerdict"`
}

// MobileUsabilityResult is the mobile-usability portion of an inspection
// report.
type MobileUsabilityResult struct {
	Verdict string `json:"verdict"`
}

// RichResultsResult is the rich-results portion of an inspection report.
type RichResultsResult struct {
	Verdict string `json:"verdict"`
}

// InspectURL runs a URL inspection through the Search Console v1 API.
func (c *Client) InspectURL(ctx context.Context, req *InspectURLRequest) (*URLInspectionResult, error) {
	var res inspectURLResponse
	if err := c.post(ctx, c.searchConsoleBase, "/urlInspection/index:inspect", nil, req, &res); err != nil {
		return nil, err
	}
	return res.InspectionResult, nil
}
