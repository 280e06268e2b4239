package searchconsole

import (
	"context"
)

// SearchAnalyticsQuery describes a search-analytics query. StartDate and
// EndDate are required by the API; every other field is optional and is
// omitted from the request body when left at its zero value. The client
// performs no local validation, so a missing date surfaces as a remote
// 400 error.
type SearchAnalyticsQuery struct {
	// StartDate and EndDate bound the period, inclusive, in YYYY-MM-DD.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Dimensions groups results, e.g. date, query, page, country, device.
	Dimensions []string `json:"dimensions,omitempty"`

	// DimensionFilterGroups filters the rows before aggregation.
	DimensionFilterGroups []DimensionFilterGroup `json:"dimensionFilterGroups,omitempty"`

	// AggregationType is auto, byPage or byProperty.
	AggregationType string `json:"aggregationType,omitempty"`

	// RowLimit caps the number of rows returned (API maximum 25000).
	RowLimit int64 `json:"rowLimit,omitempty"`

	// StartRow is the zero-based index of the first row to return.
	StartRow int64 `json:"startRow,omitempty"`

	// DataState is "all" to include fresh data or "final" for settled data.
	DataState string `json:"dataState,omitempty"`

	// SearchType filters by result type (web, image, video, news,
	// discover, googleNews). The wire key is `type`.
	SearchType string `json:"type,omitempty"`
}

// DimensionFilterGroup combines filters that are applied together.
type DimensionFilterGroup struct {
	// GroupType is how the filters combine; the API only supports "and".
	GroupType string `json:"groupType,omitempty"`

	Filters []DimensionFilter `json:"filters,omitempty"`
}

// DimensionFilter matches one dimension against an expression.
type DimensionFilter struct {
	// Dimension is the dimension to filter on, e.g. query, page, country.
	Dimension string `json:"dimension,omitempty"`

	// Operator is equals, notEquals, contains, notContains,
	// includingRegex or excludingRegex.
	Operator string `json:"operator,omitempty"`

	Expression string `json:"expression,omitempty"`
}

// AnalyticsRow is one aggregated metrics record, keyed by the requested
// dimensions in order.
type AnalyticsRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// SearchAnalyticsResponse is the result of a search-analytics query.
type SearchAnalyticsResponse struct {
	Rows []AnalyticsRow `json:"rows"`

	// ResponseAggregationType is how the data was actually aggregated.
	ResponseAggregationType string `json:"responseAggregationType"`
}

// QuerySearchAnalytics runs a search-analytics query against a property.
// Pagination beyond RowLimit/StartRow is the caller's concern.
func (c *Client) QuerySearchAnalytics(ctx context.Context, siteURL string, query *SearchAnalyticsQuery) (*SearchAnalyticsResponse, error) {
	var res SearchAnalyticsResponse
	path := "/sites/" + escapePath(siteURL) + "/searchAnalytics/query"
	if err := c.post(ctx, c.webmastersBase, path, nil, query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
