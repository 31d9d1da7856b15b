package services

import (
	"time"

	"tally/internal/agenda"
	apperrors "tally/internal/errors"
	"tally/internal/logger"
	"tally/internal/models"
	"tally/internal/pagination"
	"tally/internal/storage"
)

// agendaService derives read-side views from the canonical store. Every
// call re-reads the store and recomputes; derived views are never cached or
// persisted, so a mutation is always visible on the next read.
type agendaService struct {
	store        storage.Storer
	horizonWeeks int
	now          func() time.Time
}

// NewAgendaService creates a new AgendaServicer. horizonWeeks bounds
// recurrence expansion ahead of the current time.
func NewAgendaService(store storage.Storer, horizonWeeks int) AgendaServicer {
	if horizonWeeks < 1 {
		horizonWeeks = agenda.DefaultHorizonWeeks
	}
	return &agendaService{store: store, horizonWeeks: horizonWeeks, now: time.Now}
}

// expandedView loads the canonical store, expands recurrences up to the
// horizon, and applies the category filter.
func (s *agendaService) expandedView(filter AgendaFilter) (models.ItemStore, error) {
	items, err := s.store.LoadItems()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	horizon := s.now().AddDate(0, 0, s.horizonWeeks*7)
	view, skipped := agenda.Expand(items, horizon)
	if skipped > 0 {
		logger.Named("agenda").Warnw("skipped items with malformed days during expansion", "count", skipped)
	}

	if len(filter.CategoryIDs) == 0 {
		return view, nil
	}
	rels, err := s.store.LoadRelationships()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return agenda.FilterByCategories(view, rels, filter.CategoryIDs), nil
}

// GetExpandedView returns the recurrence-expanded, optionally filtered view.
func (s *agendaService) GetExpandedView(filter AgendaFilter) (models.ItemStore, error) {
	return s.expandedView(filter)
}

// GetDailyBalances returns the gap-free per-day totals and running balance
// across the whole expanded view.
func (s *agendaService) GetDailyBalances(filter AgendaFilter) ([]agenda.DayBalance, error) {
	view, err := s.expandedView(filter)
	if err != nil {
		return nil, err
	}
	balances, skipped := agenda.DailyBalances(view)
	if skipped > 0 {
		logger.Named("agenda").Warnw("skipped malformed day buckets during aggregation", "count", skipped)
	}
	return balances, nil
}

// GetWeek returns the week panel for the week containing date.
func (s *agendaService) GetWeek(date time.Time, filter AgendaFilter) (agenda.Week, error) {
	view, err := s.expandedView(filter)
	if err != nil {
		return agenda.Week{}, err
	}
	return agenda.WeekOf(view, date, s.now()), nil
}

// GetMonthlySummary returns the income/expense series for a yyyy-MM month,
// with the running balance carried over from prior months.
func (s *agendaService) GetMonthlySummary(month string, filter AgendaFilter) (agenda.MonthlySummary, error) {
	view, err := s.expandedView(filter)
	if err != nil {
		return agenda.MonthlySummary{}, err
	}
	summary, err := agenda.MonthlySeries(view, month)
	if err != nil {
		return agenda.MonthlySummary{}, apperrors.Wrap(apperrors.ErrInvalidMonth, err)
	}
	return summary, nil
}

// SearchItems pages through the canonical items matching a name query.
// Search works on canonical data: a recurring series appears once, not once
// per occurrence.
func (s *agendaService) SearchItems(query string, page pagination.PageRequest) (*pagination.PageResponse[models.Item], error) {
	items, err := s.store.LoadItems()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	matched := agenda.SearchItems(items, query)
	response := pagination.Paginate(matched, page)
	return &response, nil
}

// GetNotifications lists canonical items with reminders enabled together
// with their computed fire times. Items whose schedule fails to parse are
// skipped.
func (s *agendaService) GetNotifications() ([]Notification, error) {
	items, err := s.store.LoadItems()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var notifications []Notification
	for _, item := range agenda.NotificationItems(items) {
		fireAt, err := agenda.NotificationTime(item)
		if err != nil {
			logger.Named("agenda").Warnw("skipping notification with malformed schedule", "id", item.ID, "error", err)
			continue
		}
		notifications = append(notifications, Notification{Item: item, FireAt: fireAt})
	}
	return notifications, nil
}
