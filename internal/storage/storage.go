// Package storage is the persistence boundary of the application. Each
// logical dataset is one JSON document in a key-value table, under the same
// keys the original on-device store used, so existing exported data loads
// unchanged. Reads degrade to empty data on missing or corrupt documents
// rather than failing the caller.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tally/internal/logger"
	"tally/internal/models"
)

// Storage keys. These are part of the persisted schema.
const (
	KeyAgenda        = "agendaData"
	KeyCategories    = "categoriesData"
	KeyRelationships = "categoryRelationshipsData"
	KeySecurity      = "securityData"
)

// agendaSchemaVersion is the current envelope version for the agenda
// document. Version 1 is the legacy bare date->items map written by older
// clients; it is detected and upgraded on load.
const agendaSchemaVersion = 2

type agendaEnvelope struct {
	Version int              `json:"version"`
	Items   models.ItemStore `json:"items"`
}

// Storer is the storage collaborator contract consumed by the services.
type Storer interface {
	LoadItems() (models.ItemStore, error)
	SaveItems(store models.ItemStore) error
	LoadCategories() ([]models.Category, error)
	SaveCategories(categories []models.Category) error
	LoadRelationships() ([]models.CategoryRelationship, error)
	SaveRelationships(rels []models.CategoryRelationship) error
	LoadSecurity() (models.SecuritySettings, error)
	SaveSecurity(settings models.SecuritySettings) error
}

type store struct {
	db *gorm.DB
}

// NewStore creates a Storer backed by the documents table.
func NewStore(db *gorm.DB) Storer {
	return &store{db: db}
}

// loadRaw returns the document value for key, or "" when absent.
func (s *store) loadRaw(key string) (string, error) {
	var doc models.Document
	err := s.db.First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load document %q: %w", key, err)
	}
	return doc.Value, nil
}

func (s *store) saveRaw(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", key, err)
	}
	doc := models.Document{Key: key, Value: string(data)}
	if err := s.db.Save(&doc).Error; err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

// LoadItems reads the canonical item store. A legacy document containing
// the bare date->items map is accepted and treated as version 1. Corrupt
// data is logged and loaded as an empty store so the application keeps
// working.
func (s *store) LoadItems() (models.ItemStore, error) {
	raw, err := s.loadRaw(KeyAgenda)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.ItemStore{}, nil
	}

	var envelope agendaEnvelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err == nil && envelope.Version >= agendaSchemaVersion {
		if envelope.Items == nil {
			envelope.Items = models.ItemStore{}
		}
		return envelope.Items, nil
	}

	// Legacy shape: the map itself, no envelope.
	var legacy models.ItemStore
	if err := json.Unmarshal([]byte(trimmed), &legacy); err != nil {
		logger.Get().Warnw("corrupt agenda document, loading empty store", "error", err)
		return models.ItemStore{}, nil
	}
	if legacy == nil {
		legacy = models.ItemStore{}
	}
	return legacy, nil
}

// SaveItems writes the canonical store inside the current envelope.
func (s *store) SaveItems(items models.ItemStore) error {
	if items == nil {
		items = models.ItemStore{}
	}
	return s.saveRaw(KeyAgenda, agendaEnvelope{Version: agendaSchemaVersion, Items: items})
}

func (s *store) LoadCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.loadJSON(KeyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *store) SaveCategories(categories []models.Category) error {
	if categories == nil {
		categories = []models.Category{}
	}
	return s.saveRaw(KeyCategories, categories)
}

func (s *store) LoadRelationships() ([]models.CategoryRelationship, error) {
	var rels []models.CategoryRelationship
	if err := s.loadJSON(KeyRelationships, &rels); err != nil {
		return nil, err
	}
	return rels, nil
}

func (s *store) SaveRelationships(rels []models.CategoryRelationship) error {
	if rels == nil {
		rels = []models.CategoryRelationship{}
	}
	return s.saveRaw(KeyRelationships, rels)
}

func (s *store) LoadSecurity() (models.SecuritySettings, error) {
	var settings models.SecuritySettings
	if err := s.loadJSON(KeySecurity, &settings); err != nil {
		return models.SecuritySettings{}, err
	}
	return settings, nil
}

func (s *store) SaveSecurity(settings models.SecuritySettings) error {
	return s.saveRaw(KeySecurity, settings)
}

// loadJSON decodes a document into v. Missing documents leave v at its
// zero value; corrupt ones are logged and treated the same way.
func (s *store) loadJSON(key string, v any) error {
	raw, err := s.loadRaw(key)
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Get().Warnw("corrupt document, loading empty data", "key", key, "error", err)
	}
	return nil
}
