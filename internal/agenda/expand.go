// Package agenda implements the derivation core of the application:
// recurrence expansion, category filtering, and balance aggregation.
// Everything in this package is a pure function over in-memory stores;
// persistence and transport live elsewhere.
package agenda

import (
	"time"

	"tally/internal/models"
)

// DefaultHorizonWeeks is how far ahead recurrence expansion reaches when the
// caller does not override it. The calendar shows 26 weeks ahead.
const DefaultHorizonWeeks = 26

// DefaultHorizon returns now + DefaultHorizonWeeks.
func DefaultHorizon(now time.Time) time.Time {
	return now.AddDate(0, 0, DefaultHorizonWeeks*7)
}

// IDAllocator hands out ids for synthetic occurrences. It is seeded at
// max(existing ids)+1 so generated ids never collide with canonical ones,
// and it is explicit rather than a hidden counter so repeated expansions of
// the same store produce the same ids.
type IDAllocator struct {
	next int
}

// NewIDAllocator seeds an allocator from every id currently in the store.
func NewIDAllocator(store models.ItemStore) *IDAllocator {
	return &IDAllocator{next: store.NextID()}
}

// Next returns the next unused id.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// occurrenceAfter returns the n-th occurrence after an anchor date, n >= 1.
// Positive intervals advance by interval*n days. A MonthlyInterval keeps the
// anchor's day-of-month, clamped to the last day of shorter months per
// month: a Jan 31 anchor yields Feb 28 and then Mar 31 again, rather than
// sticking to the 28th once clamped.
func occurrenceAfter(anchor time.Time, interval, n int) time.Time {
	if interval != models.MonthlyInterval {
		return anchor.AddDate(0, 0, interval*n)
	}
	day := anchor.Day()
	first := time.Date(anchor.Year(), anchor.Month()+time.Month(n), 1, 0, 0, 0, 0, anchor.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, anchor.Location())
}

// hasOccurrenceOf reports whether a bucket already holds an occurrence of
// the given parent.
func hasOccurrenceOf(bucket []models.Item, parentID int) bool {
	for _, item := range bucket {
		if item.RecurParentID == parentID {
			return true
		}
	}
	return false
}

// expandable reports whether an item defines a recurrence series the
// expander should materialize. Occurrences are terminal regardless of their
// recurring flag, so feeding an expanded view back through the expander can
// never generate occurrences of occurrences. Intervals that are zero or
// negative (other than the monthly sentinel) would never advance the
// candidate date and are rejected.
func expandable(item models.Item) bool {
	if !item.Recurring || item.IsOccurrence() {
		return false
	}
	return item.RecurInterval > 0 || item.RecurInterval == models.MonthlyInterval
}

// Expand materializes every recurring item in the canonical store into
// synthetic occurrences with dates in [first occurrence, horizonEnd),
// returning a derived view containing the canonical items plus the
// occurrences. The input store is never mutated and the view is safe to
// discard and regenerate. A bucket that already holds an occurrence of a
// parent is left alone, so expanding an already-expanded view changes
// nothing.
//
// Traversal is ascending bucket date, then insertion order within a bucket,
// which fixes the id assignment order for a given store and horizon. The
// second return value counts items skipped because their day failed to
// parse; the view is still produced without them.
func Expand(store models.ItemStore, horizonEnd time.Time) (models.ItemStore, int) {
	view := store.Clone()
	alloc := NewIDAllocator(store)
	skipped := 0

	for _, day := range store.SortedDays() {
		for _, item := range store[day] {
			if !expandable(item) {
				continue
			}
			start, err := item.DayDate()
			if err != nil {
				skipped++
				continue
			}
			for n := 1; ; n++ {
				next := occurrenceAfter(start, item.RecurInterval, n)
				if !next.Before(horizonEnd) {
					break
				}
				key := next.Format(models.DayLayout)
				if hasOccurrenceOf(view[key], item.ID) {
					continue
				}
				copy := item
				copy.ID = alloc.Next()
				copy.Day = key
				copy.RecurParentID = item.ID
				copy.Recurring = false
				view[key] = append(view[key], copy)
			}
		}
	}
	return view, skipped
}
