package folio

import (
	"time"

	"github.com/msanjuan/folio/date"
)

// Shared fixtures for the package tests.

var (
	appleISIN, _ = NewISIN("US0378331005")
	vwceISIN, _  = NewISIN("IE00BK5BQT80")
)

// day is a shorthand to build dates in tests.
func day(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }

// series builds a price series from (date, price) pairs.
func series(points ...PricePoint) []PricePoint { return points }

// pt builds a single price point.
func pt(on date.Date, price float64) PricePoint { return PricePoint{On: on, Price: price} }
