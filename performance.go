package folio

import (
	"github.com/msanjuan/folio/date"
)

// PricePoint is a single price observation for an instrument.
type PricePoint struct {
	On    date.Date `json:"date"`
	Price float64   `json:"price"`
}

// PerformanceMetrics holds the trailing returns of one instrument over the
// dashboard's fixed set of lookback windows. Each metric is independent:
// a window that cannot be resolved is unavailable without affecting the rest.
type PerformanceMetrics struct {
	M1    Metric // 30 calendar days
	M3    Metric // 90 calendar days
	M6    Metric // 180 calendar days
	Y1    Metric // 365 calendar days
	YTD   Metric // since the last close of the previous year
	Total Metric // since inception of the series
}

// Lookback windows in calendar days.
const (
	days1M = 30
	days3M = 90
	days6M = 180
	days1Y = 365
)

// ComputeMetrics computes trailing returns from a price series.
//
// The input may be unsorted and may contain several points for the same
// date; the engine owns normalization. Later points in the slice overwrite
// earlier ones on the same date. The "current" price is the one at the
// latest date, and the current date is taken from the series itself, never
// from the clock, so identical input always yields identical output.
//
// Fewer than two distinct dates cannot anchor a return: every metric is
// unavailable.
func ComputeMetrics(points []PricePoint) PerformanceMetrics {
	h := new(date.History[float64])
	for _, p := range points {
		h.Append(p.On, p.Price)
	}
	return computeMetrics(h)
}

// computeMetrics is the engine proper, over an already normalized series.
func computeMetrics(h *date.History[float64]) PerformanceMetrics {
	if h.Len() < 2 {
		return PerformanceMetrics{}
	}

	current, price := h.Latest()

	// For each window the reference is the most recent observation at or
	// before the lookback date (last observation carried forward). A series
	// that does not reach that far back yields no figure: the engine never
	// clamps to the earliest point.
	window := func(days int) Metric {
		ref, ok := h.ValueAsOf(current.Add(-days))
		if !ok {
			return Unavailable
		}
		return ratio(price, ref)
	}

	m := PerformanceMetrics{
		M1: window(days1M),
		M3: window(days3M),
		M6: window(days6M),
		Y1: window(days1Y),
	}

	// YTD anchors on the last close before the current year began. A series
	// that starts within the current year has no such anchor and the metric
	// stays unavailable; substituting the first data point would silently
	// change the meaning of the figure.
	if ref, ok := h.ValueAsOf(current.PrevYearEnd()); ok {
		m.YTD = ratio(price, ref)
	}

	// Since inception: the earliest point always exists here.
	_, first := h.Earliest()
	m.Total = ratio(price, first)

	return m
}

// ratio turns a current/reference price pair into a percentage return,
// guarding the division so a free or bogus zero reference yields
// unavailable rather than an infinity.
func ratio(current, reference float64) Metric {
	if reference == 0 {
		return Unavailable
	}
	return Available(Percent((current/reference - 1) * 100))
}
