package tracker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/models"
)

// AddHabit creates a habit in the given domain. The trimmed name must be
// at least three characters and unique (case-insensitively) within the
// domain.
func AddHabit(state models.UserState, domain models.Domain, name string) (models.UserState, models.Habit, error) {
	name = strings.TrimSpace(name)
	if len(name) < constants.MinHabitNameLen {
		return state, models.Habit{}, fmt.Errorf("habit name must be at least %d characters", constants.MinHabitNameLen)
	}

	for _, h := range state.Habits {
		if h.Domain == domain && strings.EqualFold(h.Name, name) {
			return state, models.Habit{}, fmt.Errorf("habit %q already exists in domain %s", name, domain)
		}
	}

	habit := models.Habit{
		ID:     uuid.New().String(),
		Domain: domain,
		Name:   name,
	}
	state.Habits = append(state.Habits, habit)
	return state, habit, nil
}

// UpdateHabit rewrites the name and domain of the habit with the given id.
// No duplicate-name check is applied on update.
func UpdateHabit(state models.UserState, id, name string, domain models.Domain) (models.UserState, error) {
	name = strings.TrimSpace(name)
	if len(name) < constants.MinHabitNameLen {
		return state, fmt.Errorf("habit name must be at least %d characters", constants.MinHabitNameLen)
	}

	for i, h := range state.Habits {
		if h.ID == id {
			state.Habits[i].Name = name
			state.Habits[i].Domain = domain
			return state, nil
		}
	}
	return state, fmt.Errorf("habit not found: %s", id)
}

// DeleteHabit removes the habit and purges its id from every habit log,
// so no log ever references a missing habit.
func DeleteHabit(state models.UserState, id string) (models.UserState, error) {
	found := false
	kept := make([]models.Habit, 0, len(state.Habits))
	for _, h := range state.Habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return state, fmt.Errorf("habit not found: %s", id)
	}
	state.Habits = kept

	for i, log := range state.HabitLogs {
		ids := make([]string, 0, len(log.CompletedHabitIDs))
		for _, hid := range log.CompletedHabitIDs {
			if hid != id {
				ids = append(ids, hid)
			}
		}
		state.HabitLogs[i].CompletedHabitIDs = ids
	}

	return state, nil
}

// ToggleCompletion flips the habit's completion for the given date. The
// date's log is created lazily on first toggle; toggling twice restores
// the prior state.
func ToggleCompletion(state models.UserState, habitID, date string) (models.UserState, bool, error) {
	if _, ok := state.HabitByID(habitID); !ok {
		return state, false, fmt.Errorf("habit not found: %s", habitID)
	}

	for i, log := range state.HabitLogs {
		if log.Date != date {
			continue
		}
		if log.Completed(habitID) {
			ids := make([]string, 0, len(log.CompletedHabitIDs))
			for _, id := range log.CompletedHabitIDs {
				if id != habitID {
					ids = append(ids, id)
				}
			}
			state.HabitLogs[i].CompletedHabitIDs = ids
			return state, false, nil
		}
		state.HabitLogs[i].CompletedHabitIDs = append(log.CompletedHabitIDs, habitID)
		return state, true, nil
	}

	state.HabitLogs = append(state.HabitLogs, models.HabitLog{
		Date:              date,
		CompletedHabitIDs: []string{habitID},
	})
	return state, true, nil
}
