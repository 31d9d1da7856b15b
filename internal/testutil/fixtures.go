package testutil

import (
	"sync/atomic"
	"testing"

	"tally/internal/models"
	"tally/internal/storage"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

// NextID returns a process-unique positive integer.
func NextID() int {
	return int(counter.Add(1))
}

// Expense builds a non-recurring expense item on the given day.
func Expense(id int, day string, amount float64) models.Item {
	return models.Item{
		ID:     id,
		Name:   "Test expense",
		Day:    day,
		Color:  models.ColorExpense,
		Amount: models.Amount(amount),
	}
}

// Income builds a non-recurring income item on the given day.
func Income(id int, day string, amount float64) models.Item {
	return models.Item{
		ID:     id,
		Name:   "Test income",
		Day:    day,
		Color:  models.ColorIncome,
		Amount: models.Amount(amount),
	}
}

// RecurringExpense builds a recurring expense anchored at day with the
// given interval in days (or models.MonthlyInterval).
func RecurringExpense(id int, day string, amount float64, interval int) models.Item {
	item := Expense(id, day, amount)
	item.Name = "Test recurring expense"
	item.Recurring = true
	item.RecurInterval = interval
	return item
}

// StoreOf buckets the given items by their Day field.
func StoreOf(items ...models.Item) models.ItemStore {
	store := models.ItemStore{}
	for _, item := range items {
		store[item.Day] = append(store[item.Day], item)
	}
	return store
}

// SeedItems persists an item store through the storage layer.
func SeedItems(t *testing.T, db *gorm.DB, store models.ItemStore) storage.Storer {
	t.Helper()

	s := storage.NewStore(db)
	if err := s.SaveItems(store); err != nil {
		t.Fatalf("failed to seed item store: %v", err)
	}
	return s
}

// SeedCategory persists a category and returns it.
func SeedCategory(t *testing.T, s storage.Storer, name string) models.Category {
	t.Helper()

	categories, err := s.LoadCategories()
	if err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}
	category := models.Category{ID: NextID(), Name: name}
	if err := s.SaveCategories(append(categories, category)); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

// SeedRelationship links an item to a category in storage.
func SeedRelationship(t *testing.T, s storage.Storer, itemID, categoryID int) {
	t.Helper()

	rels, err := s.LoadRelationships()
	if err != nil {
		t.Fatalf("failed to load relationships: %v", err)
	}
	rels = append(rels, models.CategoryRelationship{ItemID: itemID, CategoryID: categoryID})
	if err := s.SaveRelationships(rels); err != nil {
		t.Fatalf("failed to seed relationship: %v", err)
	}
}
