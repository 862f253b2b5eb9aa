package folio

import "sort"

// NewSummary assembles the dashboard summary from in-memory data: one row
// per tracked security, priced positions for the given holdings, and market
// value totals per currency.
//
// It is a pure assembly over Market and the core computations; securities
// with no data still get a row, with every metric unavailable.
func NewSummary(m *Market, holdings []Holding) *Summary {
	byTicker := make(map[string]Holding, len(holdings))
	for _, h := range holdings {
		byTicker[h.Ticker] = h
	}

	summary := &Summary{}
	totals := make(map[string]Money)

	for sec := range m.Securities() {
		row := SummaryRow{
			Ticker:      sec.Ticker(),
			Description: sec.Description(),
			Metrics:     sec.Performance(),
			Class:       sec.Classification(),
		}

		if on, price := sec.Prices().Latest(); !on.IsZero() {
			row.LatestOn = on
			row.LatestPrice = M(price, sec.Currency())
			if summary.Date.Before(on) {
				summary.Date = on
			}
		}

		if h, ok := byTicker[sec.Ticker()]; ok {
			if _, value, priced := h.Value(m); priced {
				row.Quantity = h.Quantity
				row.MarketValue = value
				totals[value.Currency()] = totals[value.Currency()].Add(value)
			}
		}

		summary.Rows = append(summary.Rows, row)
	}

	// Stable currency order for rendering.
	currencies := make([]string, 0, len(totals))
	for cur := range totals {
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)
	for _, cur := range currencies {
		summary.Totals = append(summary.Totals, totals[cur])
	}
	return summary
}
