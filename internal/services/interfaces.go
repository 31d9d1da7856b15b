package services

import (
	"time"

	"tally/internal/agenda"
	"tally/internal/models"
	"tally/internal/pagination"
)

// AgendaFilter holds the optional narrowing applied to derived agenda views.
type AgendaFilter struct {
	CategoryIDs []int
}

// Notification pairs an item with its computed reminder fire time.
type Notification struct {
	Item   models.Item `json:"item"`
	FireAt time.Time   `json:"fireAt"`
}

// AgendaServicer defines the contract for the derived (read-side) agenda
// views: recurrence-expanded data, balances, summaries, search.
type AgendaServicer interface {
	GetExpandedView(filter AgendaFilter) (models.ItemStore, error)
	GetDailyBalances(filter AgendaFilter) ([]agenda.DayBalance, error)
	GetWeek(date time.Time, filter AgendaFilter) (agenda.Week, error)
	GetMonthlySummary(month string, filter AgendaFilter) (agenda.MonthlySummary, error)
	SearchItems(query string, page pagination.PageRequest) (*pagination.PageResponse[models.Item], error)
	GetNotifications() ([]Notification, error)
}

// ItemServicer defines the contract for mutations of the canonical item
// store. Every mutation works against the latest persisted store and writes
// the result back before returning.
type ItemServicer interface {
	AddItem(item models.Item) (*models.Item, error)
	UpdateItem(item models.Item) (*models.Item, error)
	DeleteItem(day string, id int) error
}

// CategoryServicer defines the contract for category management and item
// tagging.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id int, name string) (*models.Category, error)
	DeleteCategory(id int) error
	TagItem(categoryID, itemID int) error
	UntagItem(categoryID, itemID int) error
	GetRelationships() ([]models.CategoryRelationship, error)
}

// AuthServicer defines the contract for the PIN gate protecting the API.
type AuthServicer interface {
	SetupPin(currentPin, newPin string) error
	VerifyPin(pin string) error
	HasPin() (bool, error)
	StoreRefreshTokenHash(hash string) error
	GetRefreshTokenHash() (string, error)
}
