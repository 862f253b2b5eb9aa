package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/msanjuan/folio"
)

// SummaryMarkdown renders the dashboard summary: one table of instruments
// with their trailing returns and classification, and the totals of the
// held positions.
func SummaryMarkdown(s *folio.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", s.Date)

	tableRow(&b, "Instrument", "Price", "Position", "1M", "3M", "6M", "1Y", "YTD", "Total", "Class", "Region")
	tableRule(&b, 11)
	for _, row := range s.Rows {
		position := "-"
		if row.Held() {
			position = row.MarketValue.String()
		}
		price := "-"
		if !row.LatestOn.IsZero() {
			price = row.LatestPrice.String()
		}
		tableRow(&b,
			row.Ticker,
			price,
			position,
			row.Metrics.M1.String(),
			row.Metrics.M3.String(),
			row.Metrics.M6.String(),
			row.Metrics.Y1.String(),
			row.Metrics.YTD.String(),
			row.Metrics.Total.String(),
			row.Class.AssetClass.String(),
			row.Class.Region.String(),
		)
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(s.Totals) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## Holdings\n\n")
		for _, total := range s.Totals {
			fmt.Fprintf(w, "- Total market value: %s\n", total)
		}
		return true
	})

	return b.String()
}

// MetricsMarkdown renders the trailing returns of a single instrument.
func MetricsMarkdown(ticker string, m folio.PerformanceMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Performance of %s\n\n", ticker)
	tableRow(&b, "Window", "Return")
	tableRule(&b, 2)
	tableRow(&b, "1 month", m.M1.String())
	tableRow(&b, "3 months", m.M3.String())
	tableRow(&b, "6 months", m.M6.String())
	tableRow(&b, "1 year", m.Y1.String())
	tableRow(&b, "Year to date", m.YTD.String())
	tableRow(&b, "Since inception", m.Total.String())
	return b.String()
}

// ClassificationMarkdown renders a fund's classification with the
// composition it was derived from.
func ClassificationMarkdown(ticker string, c *folio.FundComposition, result folio.Classification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Classification of %s\n\n", ticker)
	fmt.Fprintf(&b, "- Asset class: %s\n", result.AssetClass)
	fmt.Fprintf(&b, "- Region: %s\n", result.Region)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if c == nil || len(c.Allocation) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## Allocation\n\n")
		tableRow(w, "Bucket", "Weight")
		tableRule(w, 2)
		for _, entry := range c.Allocation {
			tableRow(w, entry.Label, fmt.Sprintf("%.2f%%", entry.Weight))
		}
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if c == nil || len(c.Regions) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## Regions\n\n")
		tableRow(w, "Region", "Weight")
		tableRule(w, 2)
		for _, entry := range c.Regions {
			tableRow(w, entry.Label, entry.Weight)
		}
		return true
	})

	return b.String()
}
