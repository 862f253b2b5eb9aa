package renderer

import (
	"fmt"
	"strings"

	"github.com/msanjuan/folio"
)

// HistoryMarkdown renders the price history of one instrument as a table,
// in chronological order.
func HistoryMarkdown(sec *folio.Security) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Price history of %s\n\n", sec.Ticker())

	if sec.Prices().Len() == 0 {
		fmt.Fprintln(&b, "No price recorded.")
		return b.String()
	}

	tableRow(&b, "Date", "Price")
	tableRule(&b, 2)
	for on, price := range sec.Prices().Values() {
		tableRow(&b, on.String(), folio.M(price, sec.Currency()).String())
	}
	return b.String()
}
