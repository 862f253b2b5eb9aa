package folio

import (
	"github.com/shopspring/decimal"

	"github.com/msanjuan/folio/date"
)

// SummaryRow is the dashboard line for one instrument: identity, latest
// quotation, the value of the user's position if any, trailing returns and
// classification.
type SummaryRow struct {
	Ticker      string
	Description string
	LatestOn    date.Date
	LatestPrice Money
	Quantity    decimal.Decimal // zero when the instrument is only watched
	MarketValue Money           // zero when the instrument is only watched
	Metrics     PerformanceMetrics
	Class       Classification
}

// Held reports whether the user has recorded a position in this instrument.
func (r SummaryRow) Held() bool { return !r.Quantity.IsZero() }

// Summary is the at-a-glance overview of all tracked instruments on the
// date of the freshest observation.
type Summary struct {
	Date   date.Date
	Rows   []SummaryRow
	Totals []Money // market value of the held positions, one total per currency
}
