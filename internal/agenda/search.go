package agenda

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"tally/internal/models"
)

// flattenSorted returns every item in the store ordered by day, then id.
// This is the canonical listing order for search and notification views.
func flattenSorted(store models.ItemStore) []models.Item {
	items := store.AllItems()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Day != items[j].Day {
			return items[i].Day < items[j].Day
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// SearchItems returns the canonical items whose name contains the query,
// case-insensitively, ordered by day then id. An empty query matches
// everything.
func SearchItems(store models.ItemStore, query string) []models.Item {
	query = strings.ToLower(query)
	var matched []models.Item
	for _, item := range flattenSorted(store) {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// NotificationItems returns the canonical items with reminders enabled,
// ordered by day then id.
func NotificationItems(store models.ItemStore) []models.Item {
	var enabled []models.Item
	for _, item := range flattenSorted(store) {
		if item.NotificationEnabled {
			enabled = append(enabled, item)
		}
	}
	return enabled
}

// NotificationTime computes when an item's reminder should fire: the item's
// day and time minus its HH:mm offset. A missing offset means fire at the
// item's own time.
func NotificationTime(item models.Item) (time.Time, error) {
	clock := item.Time
	if clock == "" {
		clock = "00:00"
	}
	base, err := time.Parse(models.DayLayout+" "+models.ClockLayout, item.Day+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse item schedule: %w", err)
	}
	offset, err := parseClockOffset(item.NotificationTimeOffset)
	if err != nil {
		return time.Time{}, err
	}
	return base.Add(-offset), nil
}

// parseClockOffset converts an "HH:mm" lead time into a duration. Empty
// input is a zero offset.
func parseClockOffset(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed offset %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed offset %q: %w", s, err)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}
