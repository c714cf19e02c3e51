package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daygrid/daygrid/internal/planner"
	"github.com/daygrid/daygrid/internal/storage"
	"github.com/daygrid/daygrid/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Planner
	Mode    string
}

// ShortID abbreviates a record id for display. Imported archives may
// carry ids shorter than the abbreviation width.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ResolveDate turns a date argument into a YYYY-MM-DD string. "today",
// "yesterday" and "tomorrow" are accepted as shorthands.
func ResolveDate(arg string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return utils.Today(), nil
	case "yesterday":
		return utils.AddDays(utils.Today(), -1)
	case "tomorrow":
		return utils.AddDays(utils.Today(), 1)
	}
	if !utils.ValidateDateFormat(arg) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow')", arg)
	}
	return arg, nil
}

// ParseWeekdays parses a comma-separated list of weekdays into the
// Monday-indexed form used by rules and habits (Mon=0 .. Sun=6).
func ParseWeekdays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	dayMap := map[string]int{
		"mon": 0, "monday": 0,
		"tue": 1, "tuesday": 1,
		"wed": 2, "wednesday": 2,
		"thu": 3, "thursday": 3,
		"fri": 4, "friday": 4,
		"sat": 5, "saturday": 5,
		"sun": 6, "sunday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}

// FormatWeekdays renders a Monday-indexed day set for display. An empty
// set means every day.
func FormatWeekdays(days []int) string {
	if len(days) == 0 {
		return "every day"
	}
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var out []string
	for _, d := range days {
		if d >= 0 && d < len(names) {
			out = append(out, names[d])
		}
	}
	return strings.Join(out, ",")
}
