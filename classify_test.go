package folio

import "testing"

func TestClassifyNilComposition(t *testing.T) {
	got := Classify(nil)
	want := Classification{AssetClass: Equity, Region: Global}
	if got != want {
		t.Errorf("Classify(nil) = %v, want %v", got, want)
	}
}

func TestClassifyAssetClass(t *testing.T) {
	tests := []struct {
		name       string
		allocation []AllocationEntry
		want       AssetClass
	}{
		{
			name: "mostly stocks",
			allocation: []AllocationEntry{
				{Label: "Stocks", Weight: 85}, {Label: "Bonds", Weight: 10}, {Label: "Cash", Weight: 5},
			},
			want: Equity,
		},
		{
			name: "mostly bonds",
			allocation: []AllocationEntry{
				{Label: "Bonds", Weight: 80}, {Label: "Stocks", Weight: 20},
			},
			want: FixedIncome,
		},
		{
			name: "fixed income label counts as bonds",
			allocation: []AllocationEntry{
				{Label: "Fixed Income", Weight: 75}, {Label: "Equity", Weight: 15},
			},
			want: FixedIncome,
		},
		{
			name: "commodity proxy",
			allocation: []AllocationEntry{
				{Label: "Gold bullion", Weight: 90}, {Label: "Stocks", Weight: 5}, {Label: "Bonds", Weight: 5},
			},
			want: Commodity,
		},
		{
			name: "balanced leans equity",
			allocation: []AllocationEntry{
				{Label: "Stocks", Weight: 50}, {Label: "Bonds", Weight: 40},
			},
			want: Equity,
		},
		{
			name: "balanced leans bonds",
			allocation: []AllocationEntry{
				{Label: "Bonds", Weight: 50}, {Label: "Stocks", Weight: 30},
			},
			want: FixedIncome,
		},
		{
			name: "labels are case insensitive",
			allocation: []AllocationEntry{
				{Label: "STOCKS (US)", Weight: 85},
			},
			want: Equity,
		},
		{name: "no allocation at all", allocation: nil, want: Equity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(&FundComposition{Allocation: tc.allocation})
			if got.AssetClass != tc.want {
				t.Errorf("Classify(%v).AssetClass = %v, want %v", tc.allocation, got.AssetClass, tc.want)
			}
		})
	}
}

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		name    string
		regions []RegionEntry
		want    Region
	}{
		{
			name: "japan beats larger blocks",
			regions: []RegionEntry{
				{Label: "Japón", Weight: "45"},
				{Label: "United States", Weight: "30"},
				{Label: "Europe", Weight: "25"},
			},
			want: Japan,
		},
		{
			name:    "spanish us label",
			regions: []RegionEntry{{Label: "Estados Unidos", Weight: "70"}},
			want:    NorthAmerica,
		},
		{
			name:    "spanish europe label",
			regions: []RegionEntry{{Label: "Europa", Weight: "65"}},
			want:    Europe,
		},
		{
			name:    "emerging markets",
			regions: []RegionEntry{{Label: "Mercados Emergentes", Weight: "55"}},
			want:    EmergingMarkets,
		},
		{
			name:    "asia pacific",
			regions: []RegionEntry{{Label: "Asia", Weight: "70"}},
			want:    AsiaPacific,
		},
		{
			// A label containing tokens of two buckets counts in both;
			// the Japan rule then fires first. Pinned on purpose.
			name:    "multi token label accumulates twice",
			regions: []RegionEntry{{Label: "Asia ex-Japan", Weight: "70"}},
			want:    Japan,
		},
		{
			// Provider vocabularies differ from the token set: "North
			// America" carries no us token and accumulates nowhere.
			name:    "north america label is not a us token",
			regions: []RegionEntry{{Label: "North America", Weight: "61.24"}},
			want:    Global,
		},
		{
			name: "no dominant region",
			regions: []RegionEntry{
				{Label: "United States", Weight: "40"},
				{Label: "Europe", Weight: "35"},
				{Label: "Asia", Weight: "25"},
			},
			want: Global,
		},
		{
			name:    "comma decimal weight",
			regions: []RegionEntry{{Label: "Europa", Weight: "65,4%"}},
			want:    Europe,
		},
		{
			name:    "unparseable weight contributes nothing",
			regions: []RegionEntry{{Label: "United States", Weight: "lots"}},
			want:    Global,
		},
		{name: "no regions at all", regions: nil, want: Global},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(&FundComposition{Regions: tc.regions})
			if got.Region != tc.want {
				t.Errorf("Classify(%v).Region = %v, want %v", tc.regions, got.Region, tc.want)
			}
		})
	}
}

func TestClassifyDeterminism(t *testing.T) {
	c := &FundComposition{
		Allocation: []AllocationEntry{{Label: "Stocks", Weight: 60}, {Label: "Bonds", Weight: 30}},
		Regions:    []RegionEntry{{Label: "Europe", Weight: "61"}},
	}
	first := Classify(c)
	for i := 0; i < 5; i++ {
		if got := Classify(c); got != first {
			t.Fatalf("Classify returned %v then %v for identical input", first, got)
		}
	}
}
