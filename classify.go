package folio

import (
	"strconv"
	"strings"
)

// AssetClass is the bucket describing what a fund predominantly holds.
type AssetClass int

const (
	Equity AssetClass = iota
	FixedIncome
	Commodity
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "Equity"
	case FixedIncome:
		return "Fixed Income"
	case Commodity:
		return "Commodity"
	default:
		return "Unknown"
	}
}

// Region is the bucket describing a fund's predominant geographic exposure.
type Region int

const (
	Global Region = iota
	NorthAmerica
	Europe
	Japan
	EmergingMarkets
	AsiaPacific
)

func (r Region) String() string {
	switch r {
	case Global:
		return "Global"
	case NorthAmerica:
		return "North America"
	case Europe:
		return "Europe"
	case Japan:
		return "Japan"
	case EmergingMarkets:
		return "Emerging Markets"
	case AsiaPacific:
		return "Asia Pacific"
	default:
		return "Unknown"
	}
}

// AllocationEntry is one asset bucket of a fund's composition, as reported
// by a fund-data provider. Labels are free text.
type AllocationEntry struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// RegionEntry is one regional weight of a fund's composition. Providers
// report the weight as text, numeric-parseable at best.
type RegionEntry struct {
	Label  string `json:"label"`
	Weight string `json:"weight"`
}

// FundComposition is the (possibly partial) breakdown of a fund's holdings.
// Weights are not guaranteed to sum to 100 and labels come in mixed
// languages, English and Spanish in the data observed so far.
type FundComposition struct {
	Allocation []AllocationEntry `json:"allocation,omitempty"`
	Regions    []RegionEntry     `json:"regions,omitempty"`
}

// Classification labels a fund. It is always fully populated:
// classification never fails, it falls back to defaults.
type Classification struct {
	AssetClass AssetClass
	Region     Region
}

// assetWeights accumulates allocation percentages into coarse buckets.
type assetWeights struct {
	stocks, bonds, cash, other float64
}

// regionWeights accumulates regional percentages into coarse buckets.
type regionWeights struct {
	us, europe, emerging, japan, asia float64
}

// The decision rules are ordered lists evaluated top to bottom, first match
// wins. Keeping them as data rather than cascading conditionals makes the
// rule set testable and extensible on its own.
var assetRules = []struct {
	match func(w assetWeights) bool
	class AssetClass
}{
	{func(w assetWeights) bool { return w.stocks > 70 }, Equity},
	{func(w assetWeights) bool { return w.bonds > 70 }, FixedIncome},
	// Commodity and alternative heavy funds report most of their weight
	// outside the stock and bond buckets.
	{func(w assetWeights) bool { return w.stocks+w.bonds < 20 && w.other > 50 }, Commodity},
}

var regionRules = []struct {
	match  func(w regionWeights) bool
	region Region
}{
	{func(w regionWeights) bool { return w.us > 60 }, NorthAmerica},
	{func(w regionWeights) bool { return w.europe > 60 }, Europe},
	{func(w regionWeights) bool { return w.japan > 40 && w.japan > w.us && w.japan > w.europe }, Japan},
	{func(w regionWeights) bool { return w.emerging > 50 }, EmergingMarkets},
	{func(w regionWeights) bool { return w.asia > 60 }, AsiaPacific},
}

// Classify buckets a fund by its composition breakdown.
//
// It is a total function over noisy provider data: a nil composition, empty
// tables, unparseable weights or unrecognized labels all resolve to the
// conservative default, Equity in class and Global in region.
func Classify(c *FundComposition) Classification {
	if c == nil {
		return Classification{AssetClass: Equity, Region: Global}
	}
	return Classification{
		AssetClass: classifyAsset(c.Allocation),
		Region:     classifyRegion(c.Regions),
	}
}

func classifyAsset(allocation []AllocationEntry) AssetClass {
	var w assetWeights
	for _, entry := range allocation {
		label := strings.ToLower(entry.Label)
		switch {
		case containsAny(label, "stock", "equity"):
			w.stocks += entry.Weight
		case containsAny(label, "bond", "fixed"):
			w.bonds += entry.Weight
		case strings.Contains(label, "cash"):
			w.cash += entry.Weight
		default:
			w.other += entry.Weight
		}
	}
	for _, rule := range assetRules {
		if rule.match(w) {
			return rule.class
		}
	}
	// Dominant of the two main buckets; with no allocation data at all both
	// are zero and this lands on Equity.
	if w.stocks >= w.bonds {
		return Equity
	}
	return FixedIncome
}

func classifyRegion(regions []RegionEntry) Region {
	var w regionWeights
	for _, entry := range regions {
		weight := parseWeight(entry.Weight)
		label := strings.ToLower(entry.Label)
		// Buckets are deliberately not mutually exclusive: a label that
		// literally contains tokens of two buckets counts in both.
		if containsAny(label, "united states", "usa", "estados unidos") {
			w.us += weight
		}
		if containsAny(label, "europe", "europa", "euro") {
			w.europe += weight
		}
		if containsAny(label, "emerging", "emergente") {
			w.emerging += weight
		}
		if containsAny(label, "japan", "japón") {
			w.japan += weight
		}
		if strings.Contains(label, "asia") {
			w.asia += weight
		}
	}
	for _, rule := range regionRules {
		if rule.match(w) {
			return rule.region
		}
	}
	return Global
}

// parseWeight reads a provider-reported weight like "45", "45.3" or
// "45,3%". Anything unparseable contributes nothing.
func parseWeight(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func containsAny(s string, tokens ...string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
