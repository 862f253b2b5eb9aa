package folio

import (
	"github.com/shopspring/decimal"

	"github.com/msanjuan/folio/date"
)

// Holding is a user-recorded position in one instrument.
type Holding struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Value prices the holding against a market: quantity times the latest
// known price, in the security's own currency. It returns false when the
// ticker is unknown or the security has no price yet.
func (h Holding) Value(m *Market) (on date.Date, value Money, ok bool) {
	sec := m.Get(h.Ticker)
	if sec == nil {
		return date.Date{}, Money{}, false
	}
	day, price := sec.Prices().Latest()
	if day.IsZero() {
		return date.Date{}, Money{}, false
	}
	return day, M(price, sec.Currency()).Mul(h.Quantity), true
}
