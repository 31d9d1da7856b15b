package services

import (
	"strings"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/storage"
)

// categoryService manages categories and the item/category relationships
// the agenda filter resolves against.
type categoryService struct {
	store storage.Storer
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(store storage.Storer) CategoryServicer {
	return &categoryService{store: store}
}

// CreateCategory creates a new category with a unique, case-insensitive name.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	categories, err := s.store.LoadCategories()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, existing := range categories {
		if strings.EqualFold(existing.Name, name) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	category := models.Category{ID: nextCategoryID(categories), Name: name}
	if err := s.store.SaveCategories(append(categories, category)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategories lists all categories.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	categories, err := s.store.LoadCategories()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// UpdateCategory renames a category, keeping names unique.
func (s *categoryService) UpdateCategory(id int, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	categories, err := s.store.LoadCategories()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	index := -1
	for i, existing := range categories {
		if existing.ID == id {
			index = i
			continue
		}
		if strings.EqualFold(existing.Name, name) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}
	if index < 0 {
		return nil, apperrors.ErrCategoryNotFound
	}

	categories[index].Name = name
	if err := s.store.SaveCategories(categories); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &categories[index], nil
}

// DeleteCategory removes a category and prunes its relationships.
func (s *categoryService) DeleteCategory(id int) error {
	categories, err := s.store.LoadCategories()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	kept := categories[:0:0]
	for _, existing := range categories {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(categories) {
		return apperrors.ErrCategoryNotFound
	}
	if err := s.store.SaveCategories(kept); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rels, err := s.store.LoadRelationships()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	keptRels := rels[:0:0]
	for _, rel := range rels {
		if rel.CategoryID != id {
			keptRels = append(keptRels, rel)
		}
	}
	if len(keptRels) != len(rels) {
		if err := s.store.SaveRelationships(keptRels); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// TagItem links an item to a category. Tagging is idempotent.
func (s *categoryService) TagItem(categoryID, itemID int) error {
	if err := s.requireCategory(categoryID); err != nil {
		return err
	}

	rels, err := s.store.LoadRelationships()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, rel := range rels {
		if rel.CategoryID == categoryID && rel.ItemID == itemID {
			return nil
		}
	}
	rels = append(rels, models.CategoryRelationship{ItemID: itemID, CategoryID: categoryID})
	if err := s.store.SaveRelationships(rels); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// UntagItem removes the link between an item and a category.
func (s *categoryService) UntagItem(categoryID, itemID int) error {
	rels, err := s.store.LoadRelationships()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	kept := rels[:0:0]
	for _, rel := range rels {
		if rel.CategoryID == categoryID && rel.ItemID == itemID {
			continue
		}
		kept = append(kept, rel)
	}
	if len(kept) == len(rels) {
		return apperrors.ErrNotFound
	}
	if err := s.store.SaveRelationships(kept); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRelationships lists every item/category link.
func (s *categoryService) GetRelationships() ([]models.CategoryRelationship, error) {
	rels, err := s.store.LoadRelationships()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rels, nil
}

func (s *categoryService) requireCategory(id int) error {
	categories, err := s.store.LoadCategories()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, existing := range categories {
		if existing.ID == id {
			return nil
		}
	}
	return apperrors.ErrCategoryNotFound
}

func nextCategoryID(categories []models.Category) int {
	max := 0
	for _, c := range categories {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
