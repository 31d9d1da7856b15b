package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/services"
)

// AgendaHandler serves the derived agenda views: the expanded item map,
// week panel, balances, monthly summary, search, and notifications.
type AgendaHandler struct {
	agendaService services.AgendaServicer
}

// NewAgendaHandler creates a new AgendaHandler
func NewAgendaHandler(agendaService services.AgendaServicer) *AgendaHandler {
	return &AgendaHandler{agendaService: agendaService}
}

// GetAgenda returns the recurrence-expanded item map
// @Summary     Get the expanded agenda
// @Description Get all items bucketed by day with recurring series expanded up to the horizon
// @Tags        agenda
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       categories query string false "Comma-separated category IDs to filter by"
// @Success     200 {object} map[string][]models.Item "Items keyed by yyyy-MM-dd"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /agenda [get]
func (h *AgendaHandler) GetAgenda(c *gin.Context) {
	filter, err := parseAgendaFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.agendaService.GetExpandedView(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": view})
}

// GetWeek returns the week panel for the week containing a date
// @Summary     Get a week panel
// @Description Get the seven days of the week containing the given date, with items and balances
// @Tags        agenda
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       date query string false "Any day inside the wanted week (yyyy-MM-dd, default today)"
// @Param       categories query string false "Comma-separated category IDs to filter by"
// @Success     200 {object} agenda.Week "Week panel"
// @Failure     400 {object} ErrorResponse "Invalid date or filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /agenda/week [get]
func (h *AgendaHandler) GetWeek(c *gin.Context) {
	filter, err := parseAgendaFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = time.Parse(models.DayLayout, raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be yyyy-MM-dd"))
			return
		}
	}

	week, err := h.agendaService.GetWeek(date, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"week": week})
}

// GetBalances returns the per-day running balances
// @Summary     Get daily balances
// @Description Get the gap-free day totals and running balance across the expanded agenda
// @Tags        agenda
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       categories query string false "Comma-separated category IDs to filter by"
// @Success     200 {array} agenda.DayBalance "Daily balances"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /agenda/balances [get]
func (h *AgendaHandler) GetBalances(c *gin.Context) {
	filter, err := parseAgendaFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balances, err := h.agendaService.GetDailyBalances(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

// GetMonthlySummary returns the income/expense series for a month
// @Summary     Get a monthly summary
// @Description Get income, expenses, and the running-balance series for a yyyy-MM month
// @Tags        agenda
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path string true "Month in yyyy-MM format"
// @Param       categories query string false "Comma-separated category IDs to filter by"
// @Success     200 {object} agenda.MonthlySummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid month or filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /agenda/summary/{month} [get]
func (h *AgendaHandler) GetMonthlySummary(c *gin.Context) {
	filter, err := parseAgendaFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.agendaService.GetMonthlySummary(c.Param("month"), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SearchItems searches items by name
// @Summary     Search items
// @Description Search canonical items by name, case-insensitively, ordered by day then id
// @Tags        items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       q query string false "Substring to match against item names"
// @Param       page query int false "Page number (default 1)"
// @Param       page_size query int false "Page size (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Item] "Matching items"
// @Failure     400 {object} ErrorResponse "Invalid paging"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /items/search [get]
func (h *AgendaHandler) SearchItems(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.agendaService.SearchItems(c.Query("q"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetNotifications lists pending reminders
// @Summary     Get notifications
// @Description Get items with reminders enabled together with their computed fire times
// @Tags        notifications
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.Notification "Pending reminders"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notifications [get]
func (h *AgendaHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.agendaService.GetNotifications()
	if err != nil {
		respondWithError(c, err)
		return
	}

	if notifications == nil {
		notifications = []services.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
