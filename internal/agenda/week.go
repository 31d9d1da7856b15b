package agenda

import (
	"time"

	"tally/internal/models"
)

// WeekDay is one row of the week panel: a calendar day with its items and
// the balances for that day drawn from the full daily series.
type WeekDay struct {
	Date           string        `json:"date"`
	DayName        string        `json:"dayName"`
	DayNumber      string        `json:"dayNumber"`
	IsToday        bool          `json:"isToday"`
	Items          []models.Item `json:"items"`
	DayTotal       float64       `json:"dayTotal"`
	RunningBalance float64       `json:"runningBalance"`
}

// Week covers the seven days of one calendar week, Sunday first.
type Week struct {
	StartDate string    `json:"startDate"`
	Days      []WeekDay `json:"days"`
}

// startOfWeek returns the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// WeekOf shapes the week containing date out of an expanded view. Day
// totals and running balances come from DailyBalances over the whole view,
// so a day inside the week shows the balance accumulated since the view's
// first bucket, not just since Sunday. Days past the view's last bucket
// carry that final balance forward with a zero day total.
func WeekOf(view models.ItemStore, date, now time.Time) Week {
	balances, _ := DailyBalances(view)
	byDay := make(map[string]DayBalance, len(balances))
	for _, b := range balances {
		byDay[b.Day] = b
	}
	var final DayBalance
	if len(balances) > 0 {
		final = balances[len(balances)-1]
	}

	start := startOfWeek(date)
	week := Week{StartDate: start.Format(models.DayLayout)}
	today := now.Format(models.DayLayout)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(models.DayLayout)
		day := WeekDay{
			Date:      key,
			DayName:   d.Format("Mon"),
			DayNumber: d.Format("02/01"),
			IsToday:   key == today,
			Items:     view[key],
		}
		if b, ok := byDay[key]; ok {
			day.DayTotal = b.DayTotal
			day.RunningBalance = b.RunningBalance
		} else if key > final.Day {
			day.RunningBalance = final.RunningBalance
		}
		week.Days = append(week.Days, day)
	}
	return week
}
