package agenda

import (
	"testing"
	"time"

	"tally/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.DayLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpand(t *testing.T) {
	t.Run("weekly_interval_bounded_by_horizon", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-01": {{ID: 1, Name: "Rent", Day: "2025-05-01", Color: models.ColorExpense, Amount: 500, Recurring: true, RecurInterval: 7}},
		}
		view, skipped := Expand(store, day("2025-05-22"))
		if skipped != 0 {
			t.Fatalf("expected no skipped items, got %d", skipped)
		}

		// Occurrences on the 8th and 15th; the 22nd is at the horizon and excluded.
		for _, expected := range []string{"2025-05-08", "2025-05-15"} {
			bucket := view[expected]
			if len(bucket) != 1 {
				t.Fatalf("expected one occurrence on %s, got %d", expected, len(bucket))
			}
			occ := bucket[0]
			if occ.RecurParentID != 1 {
				t.Errorf("expected recurParentId 1, got %d", occ.RecurParentID)
			}
			if occ.Day != expected {
				t.Errorf("expected day %s, got %s", expected, occ.Day)
			}
			if occ.Recurring {
				t.Error("expected occurrence to be terminal (recurring=false)")
			}
		}
		if _, ok := view["2025-05-22"]; ok {
			t.Error("occurrence generated at the horizon boundary")
		}
	})

	t.Run("monthly_sentinel", func(t *testing.T) {
		store := models.ItemStore{
			"2025-01-01": {{ID: 5, Name: "Salary", Day: "2025-01-01", Color: models.ColorIncome, Amount: 10, Recurring: true, RecurInterval: models.MonthlyInterval}},
		}
		view, _ := Expand(store, day("2025-04-01"))

		for _, expected := range []string{"2025-02-01", "2025-03-01"} {
			if len(view[expected]) != 1 {
				t.Fatalf("expected occurrence on %s", expected)
			}
			if view[expected][0].RecurParentID != 5 {
				t.Errorf("expected recurParentId 5, got %d", view[expected][0].RecurParentID)
			}
		}
		if _, ok := view["2025-04-01"]; ok {
			t.Error("occurrence generated on the excluded horizon date")
		}
	})

	t.Run("monthly_clamps_to_short_months", func(t *testing.T) {
		store := models.ItemStore{
			"2025-01-31": {{ID: 1, Name: "Payday", Day: "2025-01-31", Color: models.ColorIncome, Amount: 100, Recurring: true, RecurInterval: models.MonthlyInterval}},
		}
		view, _ := Expand(store, day("2025-04-15"))

		if len(view["2025-02-28"]) != 1 {
			t.Error("expected February occurrence clamped to the 28th")
		}
		if len(view["2025-03-31"]) != 1 {
			t.Error("expected March occurrence back on the 31st")
		}
	})

	t.Run("unique_ids_above_existing", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-01": {
				{ID: 3, Name: "A", Day: "2025-05-01", Recurring: true, RecurInterval: 7},
				{ID: 9, Name: "B", Day: "2025-05-01", Recurring: true, RecurInterval: 14},
			},
		}
		view, _ := Expand(store, day("2025-07-01"))

		seen := make(map[int]bool)
		for _, item := range view.AllItems() {
			if seen[item.ID] {
				t.Fatalf("duplicate id %d in expanded view", item.ID)
			}
			seen[item.ID] = true
			if item.IsOccurrence() && item.ID <= 9 {
				t.Errorf("synthetic id %d not above existing ids", item.ID)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-03": {{ID: 2, Name: "B", Day: "2025-05-03", Recurring: true, RecurInterval: 7}},
			"2025-05-01": {{ID: 1, Name: "A", Day: "2025-05-01", Recurring: true, RecurInterval: 7}},
		}
		horizon := day("2025-06-01")
		first, _ := Expand(store, horizon)
		second, _ := Expand(store, horizon)

		firstItems := first.AllItems()
		secondItems := second.AllItems()
		if len(firstItems) != len(secondItems) {
			t.Fatalf("expansion not stable: %d vs %d items", len(firstItems), len(secondItems))
		}
		for i := range firstItems {
			if firstItems[i] != secondItems[i] {
				t.Errorf("item %d differs between expansions: %+v vs %+v", i, firstItems[i], secondItems[i])
			}
		}
	})

	t.Run("never_recurses_on_occurrences", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-01": {{ID: 1, Name: "Rent", Day: "2025-05-01", Recurring: true, RecurInterval: 7}},
		}
		horizon := day("2025-05-20")
		once, _ := Expand(store, horizon)
		twice, _ := Expand(once, horizon)

		if len(twice.AllItems()) != len(once.AllItems()) {
			t.Errorf("re-expanding an expanded view grew it: %d vs %d", len(twice.AllItems()), len(once.AllItems()))
		}
	})

	t.Run("zero_interval_skipped", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-01": {{ID: 1, Name: "Broken", Day: "2025-05-01", Recurring: true, RecurInterval: 0}},
		}
		view, _ := Expand(store, day("2025-06-01"))
		if len(view.AllItems()) != 1 {
			t.Errorf("zero interval must not expand, got %d items", len(view.AllItems()))
		}
	})

	t.Run("malformed_day_skipped_and_counted", func(t *testing.T) {
		store := models.ItemStore{
			"not-a-date": {{ID: 1, Name: "Bad", Day: "not-a-date", Recurring: true, RecurInterval: 7}},
			"2025-05-01": {{ID: 2, Name: "Good", Day: "2025-05-01", Recurring: true, RecurInterval: 7}},
		}
		view, skipped := Expand(store, day("2025-05-10"))
		if skipped != 1 {
			t.Errorf("expected 1 skipped item, got %d", skipped)
		}
		if len(view["2025-05-08"]) != 1 {
			t.Error("healthy item should still have expanded")
		}
	})

	t.Run("non_recurring_pass_through", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-01": {{ID: 1, Name: "One-off", Day: "2025-05-01", Amount: 5}},
		}
		view, _ := Expand(store, day("2025-12-01"))
		if len(view.AllItems()) != 1 {
			t.Fatalf("expected one item, got %d", len(view.AllItems()))
		}
		if view["2025-05-01"][0] != store["2025-05-01"][0] {
			t.Error("non-recurring item changed during expansion")
		}
	})

	t.Run("input_store_not_mutated", func(t *testing.T) {
		store := models.ItemStore{
			"2025-05-01": {{ID: 1, Name: "Rent", Day: "2025-05-01", Recurring: true, RecurInterval: 7}},
		}
		Expand(store, day("2025-08-01"))
		if len(store) != 1 || len(store["2025-05-01"]) != 1 {
			t.Error("expansion mutated the canonical store")
		}
	})
}
