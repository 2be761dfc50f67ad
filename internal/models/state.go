package models

import "fmt"

// DietGoal is the direction of a diet plan
type DietGoal string

const (
	DietGain DietGoal = "Gain"
	DietLose DietGoal = "Lose"
)

func ParseDietGoal(s string) (DietGoal, error) {
	switch DietGoal(s) {
	case DietGain:
		return DietGain, nil
	case DietLose:
		return DietLose, nil
	}
	return "", fmt.Errorf("invalid diet goal: %q (expected Gain|Lose)", s)
}

// DietConfig is the current body/goal snapshot used for diet plans.
// A single snapshot is kept; updates overwrite it.
type DietConfig struct {
	Weight float64  `json:"weight"` // kg
	Height float64  `json:"height"` // cm
	Age    int      `json:"age"`
	Goal   DietGoal `json:"goal"`
}

// UserState is the root aggregate: everything frame persists. The whole
// state is the unit of durability (load-all, write-all on every mutation).
type UserState struct {
	CheckIns        []CheckIn   `json:"checkIns"`
	LastCheckInDate *string     `json:"lastCheckInDate"`
	RelapseStreak   int         `json:"relapseStreak"`
	Habits          []Habit     `json:"habits"`
	HabitLogs       []HabitLog  `json:"habitLogs"`
	DietConfig      *DietConfig `json:"dietConfig,omitempty"`
	PersonaName     string      `json:"aiModelName,omitempty"`
}

// DefaultPersonaName is the mentor persona shown when none is configured.
const DefaultPersonaName = "Mentor Fenrir"

// NewUserState returns an empty state with defaults applied.
func NewUserState() UserState {
	return UserState{
		CheckIns:      []CheckIn{},
		RelapseStreak: 0,
		Habits:        []Habit{},
		HabitLogs:     []HabitLog{},
		PersonaName:   DefaultPersonaName,
	}
}

// CheckInFor returns the check-in for the given date, if any.
func (s UserState) CheckInFor(date string) (CheckIn, bool) {
	for _, c := range s.CheckIns {
		if c.Date == date {
			return c, true
		}
	}
	return CheckIn{}, false
}

// HabitByID returns the habit with the given id, if any.
func (s UserState) HabitByID(id string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// HabitLogFor returns the habit log for the given date, if any.
func (s UserState) HabitLogFor(date string) (HabitLog, bool) {
	for _, l := range s.HabitLogs {
		if l.Date == date {
			return l, true
		}
	}
	return HabitLog{}, false
}

// Persona returns the configured persona name or the default.
func (s UserState) Persona() string {
	if s.PersonaName == "" {
		return DefaultPersonaName
	}
	return s.PersonaName
}
