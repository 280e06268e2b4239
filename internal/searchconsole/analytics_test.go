package searchconsole

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_QuerySearchAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("posts to the query endpoint and decodes rows", func(t *testing.T) {
		var gotMethod, gotPath string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.EscapedPath()
			//nolint:errcheck
			w.Write([]byte(`{
				"rows": [
					{"keys": ["coffee grinder"], "clicks": 120, "impressions": 3400, "ctr": 0.0353, "position": 4.7},
					{"keys": ["espresso"], "clicks": 80, "impressions": 2100, "ctr": 0.0381, "position": 6.1}
				],
				"responseAggregationType": "byProperty"
			}`))
		})

		res, err := c.QuerySearchAnalytics(ctx, "sc-domain:example.com", &SearchAnalyticsQuery{
			StartDate:  "2026-08-01",
			EndDate:    "2026-08-31",
			Dimensions: []string{"query"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/sites/sc-domain%3Aexample.com/searchAnalytics/query", gotPath)
		require.Len(t, res.Rows, 2)
		assert.Equal(t, []string{"coffee grinder"}, res.Rows[0].Keys)
		assert.Equal(t, 120.0, res.Rows[0].Clicks)
		assert.Equal(t, "byProperty", res.ResponseAggregationType)
	})

	t.Run("search type serialises under the wire key type", func(t *testing.T) {
		var body []byte
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{}`)) //nolint:errcheck
		})

		_, err := c.QuerySearchAnalytics(ctx, "sc-domain:example.com", &SearchAnalyticsQuery{
			StartDate:  "2026-08-01",
			EndDate:    "2026-08-31",
			SearchType: "web",
		})

		require.NoError(t, err)
		assert.Contains(t, string(body), `"type":"web"`)
		assert.NotContains(t, string(body), "search_type")
		assert.NotContains(t, string(body), "searchType")
	})

	t.Run("absent optional fields are omitted entirely", func(t *testing.T) {
		var body map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(data, &body))
			w.Write([]byte(`{}`)) //nolint:errcheck
		})

		_, err := c.QuerySearchAnalytics(ctx, "sc-domain:example.com", &SearchAnalyticsQuery{
			StartDate: "2026-08-01",
			EndDate:   "2026-08-31",
		})

		require.NoError(t, err)
		assert.Equal(t, "2026-08-01", body["startDate"])
		assert.Equal(t, "2026-08-31", body["endDate"])
		for _, key := range []string{"dimensions", "dimensionFilterGroups", "aggregationType", "rowLimit", "startRow", "dataState", "type"} {
			assert.NotContains(t, body, key)
		}
	})

	t.Run("present optional fields are all included", func(t *testing.T) {
		var body map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(data, &body))
			w.Write([]byte(`{}`)) //nolint:errcheck
		})

		_, err := c.QuerySearchAnalytics(ctx, "sc-domain:example.com", &SearchAnalyticsQuery{
			StartDate:       "2026-08-01",
			EndDate:         "2026-08-31",
			Dimensions:      []string{"date", "query"},
			AggregationType: "byPage",
			RowLimit:        500,
			StartRow:        100,
			DataState:       "final",
			SearchType:      "image",
			DimensionFilterGroups: []DimensionFilterGroup{
				{
					GroupType: "and",
					Filters: []DimensionFilter{
						{Dimension: "country", Operator: "equals", Expression: "GBR"},
					},
				},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "byPage", body["aggregationType"])
		assert.Equal(t, 500.0, body["rowLimit"])
		assert.Equal(t, 100.0, body["startRow"])
		assert.Equal(t, "final", body["dataState"])
		assert.Equal(t, "image", body["type"])
		assert.Contains(t, body, "dimensionFilterGroups")
	})

	t.Run("missing dates surface as a remote 400", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"startDate must be set"}}`)) //nolint:errcheck
		})

		_, err := c.QuerySearchAnalytics(ctx, "sc-domain:example.com", &SearchAnalyticsQuery{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	})
}
