package agenda

import (
	"fmt"
	"time"

	"tally/internal/models"
)

// DayBalance is one row of the daily running-balance series.
type DayBalance struct {
	Day            string  `json:"day"`
	DayTotal       float64 `json:"dayTotal"`
	RunningBalance float64 `json:"runningBalance"`
}

// DailyBalances computes, for every calendar day between the earliest and
// latest bucket in the view inclusive, the day's net total and the running
// balance accumulated from the first day. Days with no items contribute a
// zero total but still appear, so the series has no gaps. The running
// balance starts from 0; it carries nothing in from before the range.
//
// Bucket keys that fail to parse are skipped rather than aborting the whole
// series; the skip count is returned alongside.
func DailyBalances(view models.ItemStore) ([]DayBalance, int) {
	skipped := 0
	var first, last time.Time
	for _, day := range view.SortedDays() {
		t, err := time.Parse(models.DayLayout, day)
		if err != nil {
			skipped++
			continue
		}
		if first.IsZero() || t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	if first.IsZero() {
		return nil, skipped
	}

	var balances []DayBalance
	running := 0.0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(models.DayLayout)
		dayTotal := 0.0
		for _, item := range view[key] {
			dayTotal += item.Signed()
		}
		running += dayTotal
		balances = append(balances, DayBalance{
			Day:            key,
			DayTotal:       dayTotal,
			RunningBalance: running,
		})
	}
	return balances, skipped
}

// MonthlySummary is the per-month income/expense breakdown consumed by the
// summary charts. DailyIncome, DailyExpenses, DailyRunningBalance, and Days
// are parallel arrays: one entry per day of the month that has items, plus
// synthesized boundary points so the series spans the whole month.
type MonthlySummary struct {
	Income              float64   `json:"income"`
	Expenses            float64   `json:"expenses"`
	DailyIncome         []float64 `json:"dailyIncome"`
	DailyExpenses       []float64 `json:"dailyExpenses"`
	DailyRunningBalance []float64 `json:"dailyRunningBalance"`
	Days                []string  `json:"days"`
}

// MonthLayout is the yyyy-MM key selecting a summary month.
const MonthLayout = "2006-01"

// endOfMonthBalances walks every bucket in the view in date order and
// records the running balance as of the end of each month seen.
func endOfMonthBalances(view models.ItemStore) map[string]float64 {
	balances := make(map[string]float64)
	currentMonth := ""
	last := 0.0
	for _, day := range view.SortedDays() {
		if len(day) < 7 {
			continue
		}
		month := day[:7]
		if currentMonth != month {
			if currentMonth != "" {
				balances[currentMonth] = last
			}
			currentMonth = month
		}
		for _, item := range view[day] {
			last += item.Signed()
		}
	}
	if currentMonth != "" {
		balances[currentMonth] = last
	}
	return balances
}

// MonthlySeries computes the summary for one yyyy-MM month. Unlike
// DailyBalances, the running balance here carries over: it is seeded with
// the balance at the end of the previous month across the whole view, or 0
// when the previous month has no data. Only days with items produce
// entries, but a zero-valued point is synthesized at the first calendar day
// and a closing point at the last calendar day when those days are absent,
// so the month is spanned end to end.
func MonthlySeries(view models.ItemStore, month string) (MonthlySummary, error) {
	monthStart, err := time.Parse(MonthLayout, month)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("parse month %q: %w", month, err)
	}

	prevMonth := monthStart.AddDate(0, -1, 0).Format(MonthLayout)
	seed := endOfMonthBalances(view)[prevMonth]

	summary := MonthlySummary{}
	running := seed
	for _, day := range view.SortedDays() {
		if len(day) < 7 || day[:7] != month {
			continue
		}
		dayIncome, dayExpense := 0.0, 0.0
		dayRunning := running
		for _, item := range view[day] {
			amount := float64(item.Amount)
			if item.Color == models.ColorExpense {
				dayExpense += amount
				summary.Expenses += amount
				running -= amount
			} else {
				dayIncome += amount
				summary.Income += amount
				running += amount
			}
			dayRunning = running
		}
		summary.DailyIncome = append(summary.DailyIncome, dayIncome)
		summary.DailyExpenses = append(summary.DailyExpenses, dayExpense)
		summary.DailyRunningBalance = append(summary.DailyRunningBalance, dayRunning)
		summary.Days = append(summary.Days, day[len(day)-2:])
	}

	firstDay := monthStart.Format("02")
	lastDay := monthStart.AddDate(0, 1, -1).Format("02")
	if !containsDay(summary.Days, firstDay) {
		summary.Days = append([]string{firstDay}, summary.Days...)
		summary.DailyIncome = append([]float64{0}, summary.DailyIncome...)
		summary.DailyExpenses = append([]float64{0}, summary.DailyExpenses...)
		summary.DailyRunningBalance = append([]float64{seed}, summary.DailyRunningBalance...)
	}
	if !containsDay(summary.Days, lastDay) {
		summary.Days = append(summary.Days, lastDay)
		summary.DailyIncome = append(summary.DailyIncome, 0)
		summary.DailyExpenses = append(summary.DailyExpenses, 0)
		summary.DailyRunningBalance = append(summary.DailyRunningBalance, running)
	}
	return summary, nil
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
