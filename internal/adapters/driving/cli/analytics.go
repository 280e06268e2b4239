package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchconsole-cli/internal/logger"
	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

var (
	analyticsStartDate   string
	analyticsEndDate     string
	analyticsDimensions  []string
	analyticsSearchType  string
	analyticsRowLimit    int64
	analyticsStartRow    int64
	analyticsDataState   string
	analyticsAggregation string
	analyticsJSON        bool
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Search analytics queries",
}

var analyticsQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query search analytics for a property",
	Long: `Queries aggregated search metrics (clicks, impressions, CTR, position)
for the selected property. Results are grouped by the requested dimensions.

Example:
  searchconsole analytics query --site sc-domain:example.com \
    --start 2026-08-01 --end 2026-08-31 --dimensions query,page --type web`,
	RunE: runAnalyticsQuery,
}

func init() {
	analyticsQueryCmd.Flags().StringVar(&analyticsStartDate, "start", "", "start date, YYYY-MM-DD (required by the API)")
	analyticsQueryCmd.Flags().StringVar(&analyticsEndDate, "end", "", "end date, YYYY-MM-DD (required by the API)")
	analyticsQueryCmd.Flags().StringSliceVar(&analyticsDimensions, "dimensions", nil, "dimensions to group by: date, query, page, country, device, searchAppearance")
	analyticsQueryCmd.Flags().StringVar(&analyticsSearchType, "type", "", "result type: web, image, video, news, discover, googleNews")
	analyticsQueryCmd.Flags().Int64Var(&analyticsRowLimit, "row-limit", 0, "maximum rows to return (API maximum 25000)")
	analyticsQueryCmd.Flags().Int64Var(&analyticsStartRow, "start-row", 0, "zero-based index of the first row")
	analyticsQueryCmd.Flags().StringVar(&analyticsDataState, "data-state", "", "all to include fresh data, final for settled data")
	analyticsQueryCmd.Flags().StringVar(&analyticsAggregation, "aggregation", "", "auto, byPage or byProperty")
	analyticsQueryCmd.Flags().BoolVar(&analyticsJSON, "json", false, "output as JSON")
	analyticsCmd.AddCommand(analyticsQueryCmd)
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalyticsQuery(cmd *cobra.Command, _ []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	logger.Section("Search Analytics Query")
	logger.Info("Property: %s, period %s to %s", siteURL, analyticsStartDate, analyticsEndDate)

	// Dates are not validated locally; the API reports missing or
	// malformed dates as a 400 error.
	query := &searchconsole.SearchAnalyticsQuery{
		StartDate:       analyticsStartDate,
		EndDate:         analyticsEndDate,
		Dimensions:      analyticsDimensions,
		SearchType:      analyticsSearchType,
		RowLimit:        analyticsRowLimit,
		StartRow:        analyticsStartRow,
		DataState:       analyticsDataState,
		AggregationType: analyticsAggregation,
	}

	res, err := client.QuerySearchAnalytics(cmd.Context(), siteURL, query)
	if err != nil {
		return fmt.Errorf("analytics query failed: %w", err)
	}

	logger.Info("Query returned %d rows (aggregation: %s)", len(res.Rows), res.ResponseAggregationType)

	if analyticsJSON {
		return printJSON(cmd, res)
	}

	if len(res.Rows) == 0 {
		cmd.Println("No data for the requested period.")
		return nil
	}

	cmd.Printf("%-60s %8s %12s %7s %9s\n", "KEYS", "CLICKS", "IMPRESSIONS", "CTR", "POSITION")
	for i := range res.Rows {
		keys := ""
		for j, k := range res.Rows[i].Keys {
			if j > 0 {
				keys += " | "
			}
			keys += k
		}
		cmd.Printf("%-60s %8.0f %12.0f %6.2f%% %9.1f\n",
			keys, res.Rows[i].Clicks, res.Rows[i].Impressions, res.Rows[i].CTR*100, res.Rows[i].Position)
	}
	return nil
}
