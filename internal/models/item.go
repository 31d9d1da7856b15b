package models

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the date format used for storage bucket keys and Item.Day.
const DayLayout = "2006-01-02"

// ClockLayout is the format of Item.Time and notification offsets.
const ClockLayout = "15:04"

// MonthlyInterval is the sentinel RecurInterval meaning "same day, next
// calendar month" rather than a fixed day count.
const MonthlyInterval = -1

// ItemColor discriminates the sign of an item's amount.
type ItemColor string

const (
	ColorExpense ItemColor = "red"
	ColorIncome  ItemColor = "green"
)

// Amount is a non-negative monetary magnitude. Older clients persisted
// amounts as JSON strings, so decoding accepts both encodings; values that
// parse as neither are treated as zero rather than failing the whole load.
type Amount float64

// UnmarshalJSON accepts a JSON number or a string-encoded number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON always emits a bare JSON number so stored data stays
// readable by clients that predate the string encoding.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Item is a dated financial entry. The JSON field names are the persisted
// schema shared with existing client data and must not change.
type Item struct {
	ID                     int       `json:"id"`
	Name                   string    `json:"name"`
	Day                    string    `json:"day"`
	Time                   string    `json:"time,omitempty"`
	Color                  ItemColor `json:"color"`
	Amount                 Amount    `json:"amount"`
	Recurring              bool      `json:"recurring"`
	RecurInterval          int       `json:"recurInterval"`
	RecurSetDays           bool      `json:"recurSetDays"`
	RecurParentID          int       `json:"recurParentId"`
	NotificationEnabled    bool      `json:"notificationEnabled,omitempty"`
	NotificationTimeOffset string    `json:"notificationTimeOffset,omitempty"`
}

// Signed returns the amount with its sign applied: expenses are negative,
// income positive.
func (i Item) Signed() float64 {
	if i.Color == ColorExpense {
		return -float64(i.Amount)
	}
	return float64(i.Amount)
}

// IsOccurrence reports whether the item is a synthesized recurrence
// occurrence rather than a canonical entry.
func (i Item) IsOccurrence() bool {
	return i.RecurParentID > 0
}

// DayDate parses the item's bucket date.
func (i Item) DayDate() (time.Time, error) {
	return time.Parse(DayLayout, i.Day)
}

// ItemStore maps a yyyy-MM-dd bucket key to the items whose Day equals that
// key. Days with no items have no key. IDs are unique across the whole
// store, not per bucket.
type ItemStore map[string][]Item

// SortedDays returns the bucket keys in ascending order. Keys are formatted
// yyyy-MM-dd so lexical order is chronological order.
func (s ItemStore) SortedDays() []string {
	days := make([]string, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// AllItems flattens every bucket in ascending day order, preserving
// insertion order within a bucket.
func (s ItemStore) AllItems() []Item {
	var items []Item
	for _, day := range s.SortedDays() {
		items = append(items, s[day]...)
	}
	return items
}

// NextID returns max(existing ids)+1, or 1 for an empty store. It must be
// recomputed against the latest store on every allocation; a cached value
// can collide after rapid sequential adds.
func (s ItemStore) NextID() int {
	max := 0
	for _, items := range s {
		for _, item := range items {
			if item.ID > max {
				max = item.ID
			}
		}
	}
	return max + 1
}

// FindByID scans every bucket for the item with the given id.
func (s ItemStore) FindByID(id int) (Item, bool) {
	for _, day := range s.SortedDays() {
		for _, item := range s[day] {
			if item.ID == id {
				return item, true
			}
		}
	}
	return Item{}, false
}

// DayOf returns the bucket key currently holding the item with the given id.
func (s ItemStore) DayOf(id int) (string, bool) {
	for _, day := range s.SortedDays() {
		for _, item := range s[day] {
			if item.ID == id {
				return day, true
			}
		}
	}
	return "", false
}

// Insert places the item into the bucket for item.Day, replacing an existing
// entry with the same id in place or appending otherwise.
func (s ItemStore) Insert(item Item) {
	bucket := s[item.Day]
	for i, existing := range bucket {
		if existing.ID == item.ID {
			bucket[i] = item
			s[item.Day] = bucket
			return
		}
	}
	s[item.Day] = append(bucket, item)
}

// Remove deletes the item with the given id from the bucket for day,
// pruning the bucket when it becomes empty. It reports whether an item was
// removed.
func (s ItemStore) Remove(day string, id int) bool {
	bucket, ok := s[day]
	if !ok {
		return false
	}
	filtered := bucket[:0:0]
	removed := false
	for _, item := range bucket {
		if item.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, item)
	}
	if !removed {
		return false
	}
	if len(filtered) == 0 {
		delete(s, day)
	} else {
		s[day] = filtered
	}
	return true
}

// Clone returns a deep copy of the store. Items are value types, so copying
// the bucket slices is sufficient.
func (s ItemStore) Clone() ItemStore {
	out := make(ItemStore, len(s))
	for day, items := range s {
		bucket := make([]Item, len(items))
		copy(bucket, items)
		out[day] = bucket
	}
	return out
}
