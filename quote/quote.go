// Package quote decodes data-provider payloads into the shapes the
// analytics core consumes. It handles documents only: fetching, caching and
// authentication against the provider belong to whatever obtained the
// bytes.
//
// The formats follow the EODHD API: end-of-day prices come as a JSON array
// of daily bars, fund fundamentals come as a nested document whose
// ETF_Data section carries the asset allocation and world regions tables
// with weights reported as strings.
package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/msanjuan/folio"
	"github.com/msanjuan/folio/date"
)

// DecodePrices reads an end-of-day price document:
//
//	[{"date":"2024-02-13","open":675.06,"close":668.44,"volume":0}, ...]
//
// Only the date and close are kept. Bars are returned in document order;
// the performance engine owns sorting and de-duplication.
func DecodePrices(r io.Reader) ([]folio.PricePoint, error) {
	type bar struct {
		Date  date.Date       `json:"date"`
		Close decimal.Decimal `json:"close"`
	}

	var bars []bar
	if err := json.NewDecoder(r).Decode(&bars); err != nil {
		return nil, fmt.Errorf("decoding price document: %w", err)
	}

	points := make([]folio.PricePoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, folio.PricePoint{On: b.Date, Price: b.Close.InexactFloat64()})
	}
	return points, nil
}

// paths into the fundamentals document.
const (
	allocationPath = "$.ETF_Data.Asset_Allocation"
	regionsPath    = "$.ETF_Data.World_Regions"
)

// DecodeBreakdown reads a fund fundamentals document and extracts the
// composition breakdown. Funds without an ETF_Data section (stocks, for
// instance) yield nil with no error: no breakdown is a normal answer, the
// classifier falls back to defaults on it.
func DecodeBreakdown(r io.Reader) (*folio.FundComposition, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding fundamentals document: %w", err)
	}

	allocation := table(doc, allocationPath)
	regions := table(doc, regionsPath)
	if allocation == nil && regions == nil {
		return nil, nil
	}

	c := &folio.FundComposition{}
	for label, fields := range allocation {
		c.Allocation = append(c.Allocation, folio.AllocationEntry{
			Label:  label,
			Weight: weightOf(fields, "Net_Assets_%"),
		})
	}
	for label, fields := range regions {
		c.Regions = append(c.Regions, folio.RegionEntry{
			Label:  label,
			Weight: textOf(fields, "Equity_%"),
		})
	}
	sortEntries(c)
	return c, nil
}

// sortEntries orders both tables by label: the document stores them as
// objects, and Go map iteration would otherwise make the output flap.
func sortEntries(c *folio.FundComposition) {
	sort.Slice(c.Allocation, func(i, j int) bool { return c.Allocation[i].Label < c.Allocation[j].Label })
	sort.Slice(c.Regions, func(i, j int) bool { return c.Regions[i].Label < c.Regions[j].Label })
}

// table extracts a label-to-fields object from the document, nil when the
// path does not resolve to one.
func table(doc any, path string) map[string]any {
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	m, ok := val.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// weightOf parses a numeric field the provider reports as a string, like
// {"Net_Assets_%": "55.63"}. Anything unparseable counts as zero.
func weightOf(fields any, key string) float64 {
	d, err := decimal.NewFromString(textOf(fields, key))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// textOf returns a field as its raw text, "" when absent.
func textOf(fields any, key string) string {
	m, ok := fields.(map[string]any)
	if !ok {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}
