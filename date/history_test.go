package date

import (
	"testing"
	"time"
)

func TestHistoryAppendKeepsOrder(t *testing.T) {
	h := new(History[float64])
	d1 := New(2025, time.July, 1)
	d2 := New(2024, time.July, 1)

	// Append out of order and check the series re-sorts itself.
	h.Append(d1, 110)
	h.Append(d2, 100)

	if h.Len() != 2 {
		t.Fatalf("Len() = %v, want 2", h.Len())
	}
	if on, v := h.Earliest(); on != d2 || v != 100 {
		t.Errorf("Earliest() = %v, %v, want %v, 100", on, v, d2)
	}
	if on, v := h.Latest(); on != d1 || v != 110 {
		t.Errorf("Latest() = %v, %v, want %v, 110", on, v, d1)
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2025, time.July, 1)
	h.Append(d, 1)
	h.Append(d, 2)

	if h.Len() != 1 {
		t.Fatalf("Len() = %v, want 1", h.Len())
	}
	if v, ok := h.Get(d); !ok || v != 2 {
		t.Errorf("Get(%v) = %v, %v, want 2, true", d, v, ok)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2023, time.January, 2), 100)
	h.Append(New(2023, time.January, 9), 105)
	h.Append(New(2023, time.January, 16), 103)

	tests := []struct {
		day    Date
		want   float64
		wantOK bool
	}{
		{New(2023, time.January, 2), 100, true},   // exact hit
		{New(2023, time.January, 10), 105, true},  // carried forward
		{New(2023, time.January, 31), 103, true},  // after the last point
		{New(2023, time.January, 1), 0, false},    // before the first point
		{New(2022, time.December, 31), 0, false},  // well before
	}
	for _, tc := range tests {
		got, ok := h.ValueAsOf(tc.day)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ValueAsOf(%v) = %v, %v, want %v, %v", tc.day, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestValueAsOfEmpty(t *testing.T) {
	h := new(History[float64])
	if v, ok := h.ValueAsOf(New(2023, time.January, 1)); ok || v != 0 {
		t.Errorf("ValueAsOf on empty history = %v, %v, want 0, false", v, ok)
	}
}
