package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/services"
)

// --- mock item service ---

type mockItemService struct {
	addItemFn    func(item models.Item) (*models.Item, error)
	updateItemFn func(item models.Item) (*models.Item, error)
	deleteItemFn func(day string, id int) error
}

func (m *mockItemService) AddItem(item models.Item) (*models.Item, error) {
	if m.addItemFn != nil {
		return m.addItemFn(item)
	}
	item.ID = 1
	return &item, nil
}

func (m *mockItemService) UpdateItem(item models.Item) (*models.Item, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(item)
	}
	return &item, nil
}

func (m *mockItemService) DeleteItem(day string, id int) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(day, id)
	}
	return nil
}

var _ services.ItemServicer = (*mockItemService)(nil)

func setupItemRouter(handler *ItemHandler) *gin.Engine {
	r := gin.New()
	r.POST("/items", handler.CreateItem)
	r.PUT("/items/:id", handler.UpdateItem)
	r.DELETE("/items/:id", handler.DeleteItem)
	return r
}

func TestItemHandler_CreateItem(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got models.Item
		handler := NewItemHandler(&mockItemService{
			addItemFn: func(item models.Item) (*models.Item, error) {
				got = item
				item.ID = 1
				return &item, nil
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"2025-05-01","color":"red","amount":800}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		item, ok := result["item"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected item object, got: %v", result)
		}
		if item["name"] != "Rent" {
			t.Errorf("expected name Rent, got %v", item["name"])
		}
		if got.Color != models.ColorExpense {
			t.Errorf("expected color %q on the service call, got %q", models.ColorExpense, got.Color)
		}
	})

	t.Run("accepts string-encoded amounts", func(t *testing.T) {
		var got models.Amount
		handler := NewItemHandler(&mockItemService{
			addItemFn: func(item models.Item) (*models.Item, error) {
				got = item.Amount
				item.ID = 1
				return &item, nil
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"2025-05-01","color":"red","amount":"50.25"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got != 50.25 {
			t.Errorf("expected amount 50.25, got %v", got)
		}
	})

	t.Run("returns 400 on malformed day", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"01/05/2025","color":"red","amount":800}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on bad color", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"2025-05-01","color":"blue","amount":800}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("validates recur interval", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"2025-05-01","color":"red","amount":800,"recurring":true,"recurInterval":7}`)
		if rec.Code != http.StatusCreated {
			t.Errorf("expected positive interval to be accepted, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"2025-05-01","color":"red","amount":800,"recurring":true,"recurInterval":-1}`)
		if rec.Code != http.StatusCreated {
			t.Errorf("expected monthly sentinel -1 to be accepted, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = doRequest(r, "POST", "/items",
			`{"name":"Rent","day":"2025-05-01","color":"red","amount":800,"recurring":true,"recurInterval":-3}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected negative non-sentinel interval to be rejected, got %d", rec.Code)
		}
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var got models.Item
		handler := NewItemHandler(&mockItemService{
			updateItemFn: func(item models.Item) (*models.Item, error) {
				got = item
				return &item, nil
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "PUT", "/items/5",
			`{"name":"Renamed","day":"2025-05-02","color":"green","amount":20}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.ID != 5 {
			t.Errorf("expected path id 5 on the service call, got %d", got.ID)
		}
	})

	t.Run("forwards recur parent id", func(t *testing.T) {
		var got models.Item
		handler := NewItemHandler(&mockItemService{
			updateItemFn: func(item models.Item) (*models.Item, error) {
				got = item
				return &item, nil
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "PUT", "/items/101",
			`{"name":"Series","day":"2025-05-15","color":"red","amount":60,"recurParentId":1}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.RecurParentID != 1 {
			t.Errorf("expected recurParentId 1, got %d", got.RecurParentID)
		}
	})

	t.Run("returns 404 when item missing", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{
			updateItemFn: func(models.Item) (*models.Item, error) {
				return nil, apperrors.ErrItemNotFound
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "PUT", "/items/9",
			`{"name":"Ghost","day":"2025-05-02","color":"red","amount":1}`)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ITEM_NOT_FOUND")
	})

	t.Run("returns 400 on bad id", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{})
		r := setupItemRouter(handler)

		rec := doRequest(r, "PUT", "/items/abc",
			`{"name":"Rent","day":"2025-05-01","color":"red","amount":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestItemHandler_DeleteItem(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotDay string
		var gotID int
		handler := NewItemHandler(&mockItemService{
			deleteItemFn: func(day string, id int) error {
				gotDay, gotID = day, id
				return nil
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "DELETE", "/items/3?day=2025-05-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDay != "2025-05-01" || gotID != 3 {
			t.Errorf("expected delete(2025-05-01, 3), got (%s, %d)", gotDay, gotID)
		}
	})

	t.Run("returns 400 when day missing", func(t *testing.T) {
		handler := NewItemHandler(&mockItemService{
			deleteItemFn: func(day string, id int) error {
				if day == "" {
					return apperrors.ErrMissingDay
				}
				return nil
			},
		})
		r := setupItemRouter(handler)

		rec := doRequest(r, "DELETE", "/items/3", "")

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MISSING_DAY")
	})
}
