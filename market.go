package folio

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Market holds the in-memory data for the set of tracked securities,
// indexed by ticker. It is the "data already in memory" collaborator of the
// analytics: fetching and refreshing it is somebody else's job.
type Market struct {
	securities []*Security
	index      map[string]*Security
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

// Add inserts a security. The ticker must be unique within the market.
func (m *Market) Add(s *Security) error {
	if s.Ticker() == "" {
		return fmt.Errorf("security %q has no ticker", s.ID())
	}
	if _, ok := m.index[s.Ticker()]; ok {
		return fmt.Errorf("duplicate ticker %q", s.Ticker())
	}
	m.securities = append(m.securities, s)
	m.index[s.Ticker()] = s
	return nil
}

// Has reports whether a ticker is known.
func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the security for a ticker, or nil.
func (m *Market) Get(ticker string) *Security { return m.index[ticker] }

// Len returns the number of securities.
func (m *Market) Len() int { return len(m.securities) }

// Securities iterates over all securities sorted by ticker.
func (m *Market) Securities() iter.Seq[*Security] {
	sorted := slices.Clone(m.securities)
	slices.SortFunc(sorted, func(a, b *Security) int {
		return strings.Compare(a.Ticker(), b.Ticker())
	})
	return slices.Values(sorted)
}
