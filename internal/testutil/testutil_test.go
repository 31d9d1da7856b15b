package testutil_test

import (
	"testing"

	"tally/internal/errors"
	"tally/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("documents").Count(&count).Error; err != nil {
		t.Errorf("documents table should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	store := testutil.StoreOf(
		testutil.Expense(1, "2025-05-07", 50),
		testutil.Income(2, "2025-05-07", 40),
		testutil.RecurringExpense(3, "2025-05-08", 10, 7),
	)
	if len(store["2025-05-07"]) != 2 || len(store["2025-05-08"]) != 1 {
		t.Fatalf("unexpected fixture store shape: %+v", store)
	}

	s := testutil.SeedItems(t, db, store)
	loaded, err := s.LoadItems()
	testutil.AssertNoError(t, err)
	if len(loaded.AllItems()) != 3 {
		t.Errorf("expected 3 seeded items, got %d", len(loaded.AllItems()))
	}

	category := testutil.SeedCategory(t, s, "Groceries")
	testutil.SeedRelationship(t, s, 1, category.ID)
	rels, err := s.LoadRelationships()
	testutil.AssertNoError(t, err)
	if len(rels) != 1 || rels[0].CategoryID != category.ID {
		t.Errorf("unexpected relationships: %+v", rels)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrItemNotFound, "custom message")
	testutil.AssertAppError(t, err, "ITEM_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
