package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a series of values keyed by date. Dates are unique and the
// series is kept sorted at all times, so predecessor queries are cheap.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Clear removes every point from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// Latest returns the most recent date and value.
// On an empty history it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// Earliest returns the oldest date and value.
// On an empty history it returns zero values.
func (h *History[T]) Earliest() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// chronological sorts a history by day.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (c chronological[T]) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }

func (c chronological[T]) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history, keeping it sorted.
//
// An existing value at the same date is overwritten: the point appended last
// wins, which gives priority to the freshest data.
func (h *History[T]) Append(on Date, v T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	h.sort()
	return h
}

// Get returns the value exactly at 'day', or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it: the nearest-predecessor query, a.k.a. last observation carried
// forward. It returns false when no point exists on or before 'day'.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, func(d, target Date) int {
		if d.After(target) {
			return 1
		}
		if d.Before(target) {
			return -1
		}
		return 0
	})
	if found {
		return h.values[i], true
	}
	// i is the insertion index for 'day'; the predecessor sits at i-1.
	if i == 0 {
		var zero T
		return zero, false
	}
	return h.values[i-1], true
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
