package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/mentor"
	"github.com/julianstephens/frame/internal/models"
	"github.com/julianstephens/frame/internal/storage"
)

type Context struct {
	Store storage.Provider

	// NewMentor builds the mentor client lazily so commands that never
	// talk to the mentor work without an API key configured.
	NewMentor func() (mentor.Client, error)
}

// resolveDate validates an explicit YYYY-MM-DD date or defaults to today.
func resolveDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// findHabit resolves a habit by exact id, then by case-insensitive name.
// A name shared across domains is ambiguous and must be disambiguated by id.
func findHabit(state models.UserState, ref string) (models.Habit, error) {
	if h, ok := state.HabitByID(ref); ok {
		return h, nil
	}

	var matches []models.Habit
	for _, h := range state.Habits {
		if strings.EqualFold(h.Name, strings.TrimSpace(ref)) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, h := range matches {
			ids = append(ids, fmt.Sprintf("%s (%s)", h.ID, h.Domain))
		}
		return models.Habit{}, fmt.Errorf("habit name %q is ambiguous, use an id: %s", ref, strings.Join(ids, ", "))
	}
}
