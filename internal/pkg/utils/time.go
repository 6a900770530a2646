package utils

import (
	"rips-service/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseRipsDate parses a strict YYYY-MM-DD date.
func ParseRipsDate(value string) (time.Time, error) {
	return time.Parse(constvars.RipsDateLayout, value)
}

func IsRipsDate(value string) bool {
	if len(value) != len(constvars.RipsDateLayout) {
		return false
	}
	_, err := ParseRipsDate(value)
	return err == nil
}

// ParseFlexibleDate accepts a YYYY-MM-DD date or any of the timestamp layouts
// in constvars.RipsParseableDateLayouts. The wall clock of the value is kept,
// no timezone conversion is applied.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := ParseRipsDate(value); err == nil {
		return parsed, true
	}
	for _, layout := range constvars.RipsParseableDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func FormatRipsDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constvars.RipsDateLayout)
}

func FormatRipsClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constvars.RipsClockLayout)
}

// CalculateAgeAt returns the age of someone born on birthDate at the given
// reference date together with its RIPS unit: years once a full year has
// passed, months below that, days for newborns under a month. Birth dates
// after the reference yield zero days.
func CalculateAgeAt(birthDate, reference time.Time) (int, string) {
	birth := truncateToDay(birthDate)
	ref := truncateToDay(reference)
	if birth.IsZero() || ref.Before(birth) {
		return 0, constvars.RipsAgeUnitDays
	}

	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	if years >= 1 {
		return years, constvars.RipsAgeUnitYears
	}

	months := int(ref.Month()) - int(birth.Month()) + 12*(ref.Year()-birth.Year())
	if ref.Day() < birth.Day() {
		months--
	}
	if months >= 1 {
		return months, constvars.RipsAgeUnitMonths
	}

	return int(ref.Sub(birth).Hours() / 24), constvars.RipsAgeUnitDays
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
