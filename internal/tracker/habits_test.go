package tracker

import (
	"testing"

	"github.com/julianstephens/frame/internal/models"
)

func TestAddHabit(t *testing.T) {
	state := models.NewUserState()

	state, habit, err := AddHabit(state, models.DomainSleep, "Read")
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if habit.ID == "" {
		t.Error("expected a generated habit id")
	}
	if len(state.Habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(state.Habits))
	}
}

func TestAddHabit_RejectsShortName(t *testing.T) {
	state := models.NewUserState()

	state, _, err := AddHabit(state, models.DomainSleep, "ab")
	if err == nil {
		t.Error("expected rejection for a 2-character name")
	}
	if _, _, err := AddHabit(state, models.DomainSleep, "  a  "); err == nil {
		t.Error("expected rejection for a whitespace-padded short name")
	}
	if len(state.Habits) != 0 {
		t.Errorf("rejected add must not mutate state, got %d habits", len(state.Habits))
	}
}

func TestAddHabit_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	state := models.NewUserState()

	state, _, err := AddHabit(state, models.DomainSleep, "Read")
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if _, _, err := AddHabit(state, models.DomainSleep, "read"); err == nil {
		t.Error("expected duplicate rejection within the same domain")
	}

	// Same name in a different domain is fine
	if _, _, err := AddHabit(state, models.DomainOrder, "read"); err != nil {
		t.Errorf("same name in another domain should be accepted: %v", err)
	}
}

func TestUpdateHabit(t *testing.T) {
	state := models.NewUserState()
	state, habit, err := AddHabit(state, models.DomainSleep, "Read")
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	state, err = UpdateHabit(state, habit.ID, "Stretch", models.DomainPhysical)
	if err != nil {
		t.Fatalf("failed to update habit: %v", err)
	}

	got, ok := state.HabitByID(habit.ID)
	if !ok {
		t.Fatal("habit missing after update")
	}
	if got.Name != "Stretch" || got.Domain != models.DomainPhysical {
		t.Errorf("unexpected habit after update: %+v", got)
	}

	if _, err := UpdateHabit(state, "missing-id", "Whatever", models.DomainSleep); err == nil {
		t.Error("expected error for unknown habit id")
	}
}

func TestDeleteHabit_PurgesLogs(t *testing.T) {
	state := models.NewUserState()
	state, keep, _ := AddHabit(state, models.DomainSleep, "Read")
	state, doomed, _ := AddHabit(state, models.DomainSleep, "Lights out")

	state, _, _ = ToggleCompletion(state, keep.ID, "2026-08-01")
	state, _, _ = ToggleCompletion(state, doomed.ID, "2026-08-01")
	state, _, _ = ToggleCompletion(state, doomed.ID, "2026-08-02")

	state, err := DeleteHabit(state, doomed.ID)
	if err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}

	if _, ok := state.HabitByID(doomed.ID); ok {
		t.Error("habit still present after delete")
	}
	for _, log := range state.HabitLogs {
		if log.Completed(doomed.ID) {
			t.Errorf("log for %s still references deleted habit", log.Date)
		}
	}
	if log, ok := state.HabitLogFor("2026-08-01"); !ok || !log.Completed(keep.ID) {
		t.Error("unrelated completion was lost during cascade")
	}
}

func TestToggleCompletion(t *testing.T) {
	state := models.NewUserState()
	state, habit, _ := AddHabit(state, models.DomainAttention, "No reels")

	state, done, err := ToggleCompletion(state, habit.ID, "2026-08-01")
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if !done {
		t.Error("first toggle should mark completed")
	}
	log, ok := state.HabitLogFor("2026-08-01")
	if !ok || !log.Completed(habit.ID) {
		t.Fatal("log not created on first toggle")
	}

	// Double toggle restores the prior state
	state, done, _ = ToggleCompletion(state, habit.ID, "2026-08-01")
	if done {
		t.Error("second toggle should unmark")
	}
	log, _ = state.HabitLogFor("2026-08-01")
	if log.Completed(habit.ID) {
		t.Error("habit still marked after double toggle")
	}

	if _, _, err := ToggleCompletion(state, "missing-id", "2026-08-01"); err == nil {
		t.Error("expected error for unknown habit id")
	}
}
