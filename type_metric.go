package folio

// Metric is a performance figure that may be unavailable. A return cannot
// always be computed (short history, zero reference price), and in that case
// the metric must say so explicitly instead of degrading to a numeric
// placeholder that a dashboard would render as a real 0%.
type Metric struct {
	value Percent
	ok    bool
}

// Available returns a metric carrying the given percentage.
func Available(p Percent) Metric { return Metric{value: p, ok: true} }

// Unavailable is the "no data" metric.
var Unavailable = Metric{}

// Value returns the percentage and whether it is available.
func (m Metric) Value() (Percent, bool) { return m.value, m.ok }

// IsAvailable reports whether the metric carries a value.
func (m Metric) IsAvailable() bool { return m.ok }

// Equal reports whether both metrics have the same availability and,
// when available, the same value within tolerance.
func (m Metric) Equal(n Metric) bool {
	if m.ok != n.ok {
		return false
	}
	return !m.ok || m.value.Equal(n.value)
}

// String renders the metric for display, "n/a" when unavailable.
func (m Metric) String() string {
	if !m.ok {
		return "n/a"
	}
	return m.value.SignedString()
}
