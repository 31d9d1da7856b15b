// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tally/internal/models"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("agenda_date", validateAgendaDate)
		_ = v.RegisterValidation("agenda_month", validateAgendaMonth)
		_ = v.RegisterValidation("clock_time", validateClockTime)
		_ = v.RegisterValidation("item_color", validateItemColor)
		_ = v.RegisterValidation("recur_interval", validateRecurInterval)
	}
}

// validateAgendaDate accepts yyyy-MM-dd storage bucket keys.
func validateAgendaDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DayLayout, fl.Field().String())
	return err == nil
}

// validateAgendaMonth accepts yyyy-MM summary month keys.
func validateAgendaMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}

// validateClockTime accepts HH:mm item times and notification offsets.
func validateClockTime(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

func validateItemColor(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case string(models.ColorExpense), string(models.ColorIncome):
		return true
	}
	return false
}

// validateRecurInterval accepts a positive day count or the monthly
// sentinel.
func validateRecurInterval(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v > 0 || v == models.MonthlyInterval
}
