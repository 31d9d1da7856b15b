package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/services"
)

// ItemHandler handles mutations of the canonical item store.
type ItemHandler struct {
	itemService services.ItemServicer
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService services.ItemServicer) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents the request payload for creating an item
type CreateItemRequest struct {
	Name                   string        `json:"name" binding:"required,max=255"`
	Day                    string        `json:"day" binding:"required,agenda_date"`
	Time                   string        `json:"time" binding:"omitempty,clock_time"`
	Color                  string        `json:"color" binding:"required,item_color"`
	Amount                 models.Amount `json:"amount"`
	Recurring              bool          `json:"recurring"`
	RecurInterval          int           `json:"recurInterval" binding:"omitempty,recur_interval"`
	NotificationEnabled    bool          `json:"notificationEnabled"`
	NotificationTimeOffset string        `json:"notificationTimeOffset" binding:"omitempty,clock_time"`
}

// UpdateItemRequest represents the request payload for updating an item.
// RecurParentID comes back from expanded views when the client edits a
// synthesized occurrence.
type UpdateItemRequest struct {
	Name                   string        `json:"name" binding:"required,max=255"`
	Day                    string        `json:"day" binding:"required,agenda_date"`
	Time                   string        `json:"time" binding:"omitempty,clock_time"`
	Color                  string        `json:"color" binding:"required,item_color"`
	Amount                 models.Amount `json:"amount"`
	Recurring              bool          `json:"recurring"`
	RecurInterval          int           `json:"recurInterval" binding:"omitempty,recur_interval"`
	RecurParentID          int           `json:"recurParentId"`
	NotificationEnabled    bool          `json:"notificationEnabled"`
	NotificationTimeOffset string        `json:"notificationTimeOffset" binding:"omitempty,clock_time"`
}

// CreateItem handles the creation of a new item
// @Summary     Create an item
// @Description Create a new agenda item in the bucket for its day
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateItemRequest true "Item details"
// @Success     201 {object} models.Item "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.AddItem(models.Item{
		Name:                   req.Name,
		Day:                    req.Day,
		Time:                   req.Time,
		Color:                  models.ItemColor(req.Color),
		Amount:                 req.Amount,
		Recurring:              req.Recurring,
		RecurInterval:          req.RecurInterval,
		NotificationEnabled:    req.NotificationEnabled,
		NotificationTimeOffset: req.NotificationTimeOffset,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateItem handles updating an item
// @Summary     Update an item
// @Description Update an item; editing a synthesized occurrence is applied to its recurring parent
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID (occurrence IDs are redirected via recurParentId)"
// @Param       request body UpdateItemRequest true "Updated item details"
// @Success     200 {object} models.Item "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.itemService.UpdateItem(models.Item{
		ID:                     id,
		Name:                   req.Name,
		Day:                    req.Day,
		Time:                   req.Time,
		Color:                  models.ItemColor(req.Color),
		Amount:                 req.Amount,
		Recurring:              req.Recurring,
		RecurInterval:          req.RecurInterval,
		RecurParentID:          req.RecurParentID,
		NotificationEnabled:    req.NotificationEnabled,
		NotificationTimeOffset: req.NotificationTimeOffset,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem handles deleting an item
// @Summary     Delete an item
// @Description Delete an item from the bucket for the given day
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Item ID"
// @Param       day query string true "Day bucket holding the item (yyyy-MM-dd)"
// @Success     200 {object} MessageResponse "Item deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID or day"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.itemService.DeleteItem(c.Query("day"), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
