package services

import (
	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/storage"
)

// itemService reconciles user mutations against the canonical item store.
// Each operation loads the latest persisted store, applies the change in
// memory, and persists the result before returning, so a re-read after a
// mutation always observes it.
type itemService struct {
	store storage.Storer
}

// NewItemService creates a new ItemServicer.
func NewItemService(store storage.Storer) ItemServicer {
	return &itemService{store: store}
}

// AddItem inserts a new canonical item into the bucket for its day. The id
// is allocated as max(existing ids)+1 against the freshly loaded store, so
// rapid sequential adds cannot collide.
func (s *itemService) AddItem(item models.Item) (*models.Item, error) {
	if item.Day == "" {
		return nil, apperrors.ErrMissingDay
	}
	if _, err := item.DayDate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedDay, err)
	}

	items, err := s.store.LoadItems()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	item.ID = items.NextID()
	item.RecurParentID = 0
	items[item.Day] = append(items[item.Day], item)

	if err := s.store.SaveItems(items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// UpdateItem applies an edit to the canonical store. Editing a synthesized
// occurrence (recurParentId > 0) is redirected to the canonical parent
// item, so changing one occurrence changes the series definition. The
// target is then relocated: removed from whichever bucket currently holds
// it and inserted into the bucket for the updated day, which may be the
// same one.
func (s *itemService) UpdateItem(item models.Item) (*models.Item, error) {
	if item.Day == "" {
		return nil, apperrors.ErrMissingDay
	}
	if _, err := item.DayDate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedDay, err)
	}

	items, err := s.store.LoadItems()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	target := item
	if item.RecurParentID > 0 {
		parent, ok := items.FindByID(item.RecurParentID)
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrItemNotFound, "Recurring parent item not found")
		}
		// The edit defines the series: the payload's fields, including its
		// day, are applied to the parent under the parent's identity.
		target.ID = parent.ID
		target.RecurParentID = 0
	}

	oldDay, ok := items.DayOf(target.ID)
	if !ok {
		return nil, apperrors.ErrItemNotFound
	}

	items.Remove(oldDay, target.ID)
	items.Insert(target)

	if err := s.store.SaveItems(items); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &target, nil
}

// DeleteItem removes a canonical item by (day, id), pruning the bucket when
// it empties. Synthetic occurrences are never stored, so their ids miss and
// report not-found; callers redirect occurrence deletion to the parent the
// same way UpdateItem does.
func (s *itemService) DeleteItem(day string, id int) error {
	if day == "" {
		return apperrors.ErrMissingDay
	}

	items, err := s.store.LoadItems()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !items.Remove(day, id) {
		return apperrors.ErrItemNotFound
	}

	if err := s.store.SaveItems(items); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
