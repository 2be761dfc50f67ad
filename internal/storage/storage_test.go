package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/frame/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleState() models.UserState {
	date := "2026-08-07"
	feedback := models.AIFeedback{
		Observation:    "Phone away early.",
		Interpretation: "Discipline holding.",
		Command:        "Repeat tomorrow.",
	}
	return models.UserState{
		CheckIns: []models.CheckIn{
			{
				ID:    "c1",
				Date:  "2026-08-06",
				Score: 80,
				NightLog: models.NightLog{
					PhoneTime:         models.PhoneBefore1015,
					ScreenUse:         models.ScreenUnder30,
					ContentType:       models.ContentClean,
					SleepTime:         models.SleepBefore11,
					ResistedUrge:      false,
					DisciplinedAction: "Prepared clothes for tomorrow",
				},
				Pillars: models.DefaultPillars(),
			},
			{
				ID:    "c2",
				Date:  "2026-08-07",
				Score: 100,
				NightLog: models.NightLog{
					PhoneTime:         models.PhoneBefore1015,
					ScreenUse:         models.ScreenNone,
					ContentType:       models.ContentClean,
					SleepTime:         models.SleepBefore11,
					ResistedUrge:      true,
					DisciplinedAction: "Cold shower before bed",
				},
				Pillars:    models.DefaultPillars(),
				AIFeedback: &feedback,
			},
		},
		LastCheckInDate: &date,
		RelapseStreak:   2,
		Habits: []models.Habit{
			{ID: "h1", Domain: models.DomainSleep, Name: "Lights out"},
			{ID: "h2", Domain: models.DomainPhysical, Name: "Pushups"},
		},
		HabitLogs: []models.HabitLog{
			{Date: "2026-08-06", CompletedHabitIDs: []string{"h1"}},
			{Date: "2026-08-07", CompletedHabitIDs: []string{"h1", "h2"}},
		},
		DietConfig:  &models.DietConfig{Weight: 72, Height: 178, Age: 21, Goal: models.DietGain},
		PersonaName: "Mentor Fenrir",
	}
}

func assertStateEqual(t *testing.T, want, got models.UserState) {
	t.Helper()

	if len(got.CheckIns) != len(want.CheckIns) {
		t.Fatalf("expected %d check-ins, got %d", len(want.CheckIns), len(got.CheckIns))
	}
	for i, c := range want.CheckIns {
		g := got.CheckIns[i]
		if g.ID != c.ID || g.Date != c.Date || g.Score != c.Score {
			t.Errorf("check-in %d mismatch: want %+v, got %+v", i, c, g)
		}
		if g.NightLog != c.NightLog {
			t.Errorf("night log %d mismatch: want %+v, got %+v", i, c.NightLog, g.NightLog)
		}
		if (g.AIFeedback == nil) != (c.AIFeedback == nil) {
			t.Errorf("feedback presence mismatch on check-in %d", i)
		} else if c.AIFeedback != nil && *g.AIFeedback != *c.AIFeedback {
			t.Errorf("feedback %d mismatch: want %+v, got %+v", i, *c.AIFeedback, *g.AIFeedback)
		}
	}

	if got.RelapseStreak != want.RelapseStreak {
		t.Errorf("expected streak %d, got %d", want.RelapseStreak, got.RelapseStreak)
	}
	if (got.LastCheckInDate == nil) != (want.LastCheckInDate == nil) {
		t.Error("lastCheckInDate presence mismatch")
	} else if want.LastCheckInDate != nil && *got.LastCheckInDate != *want.LastCheckInDate {
		t.Errorf("expected lastCheckInDate %s, got %s", *want.LastCheckInDate, *got.LastCheckInDate)
	}

	if len(got.Habits) != len(want.Habits) {
		t.Fatalf("expected %d habits, got %d", len(want.Habits), len(got.Habits))
	}
	for i, h := range want.Habits {
		if got.Habits[i] != h {
			t.Errorf("habit %d mismatch: want %+v, got %+v", i, h, got.Habits[i])
		}
	}

	if len(got.HabitLogs) != len(want.HabitLogs) {
		t.Fatalf("expected %d habit logs, got %d", len(want.HabitLogs), len(got.HabitLogs))
	}
	for i, l := range want.HabitLogs {
		g := got.HabitLogs[i]
		if g.Date != l.Date || len(g.CompletedHabitIDs) != len(l.CompletedHabitIDs) {
			t.Errorf("habit log %d mismatch: want %+v, got %+v", i, l, g)
			continue
		}
		for _, id := range l.CompletedHabitIDs {
			if !g.Completed(id) {
				t.Errorf("habit log %s missing completion %s", l.Date, id)
			}
		}
	}

	if (got.DietConfig == nil) != (want.DietConfig == nil) {
		t.Error("diet config presence mismatch")
	} else if want.DietConfig != nil && *got.DietConfig != *want.DietConfig {
		t.Errorf("diet config mismatch: want %+v, got %+v", *want.DietConfig, *got.DietConfig)
	}

	if got.Persona() != want.Persona() {
		t.Errorf("expected persona %s, got %s", want.Persona(), got.Persona())
	}
}

func TestJSONStore_InitRejectsExisting(t *testing.T) {
	store := setupJSONStore(t)
	if err := store.Init(); err == nil {
		t.Error("expected error initializing over existing storage")
	}
}

func TestJSONStore_LoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	store := setupJSONStore(t)
	want := sampleState()

	if err := store.Save(want); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	// Reopen from disk
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	got, err := reopened.State()
	if err != nil {
		t.Fatalf("failed to read state: %v", err)
	}

	assertStateEqual(t, want, got)
}

func TestJSONStore_InitProducesEmptyState(t *testing.T) {
	store := setupJSONStore(t)

	state, err := store.State()
	if err != nil {
		t.Fatalf("failed to read state: %v", err)
	}
	if len(state.CheckIns) != 0 || len(state.Habits) != 0 || state.RelapseStreak != 0 {
		t.Errorf("expected empty default state, got %+v", state)
	}
	if state.Persona() != models.DefaultPersonaName {
		t.Errorf("expected default persona, got %s", state.Persona())
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	want := sampleState()

	if err := store.Save(want); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	got, err := store.State()
	if err != nil {
		t.Fatalf("failed to read state: %v", err)
	}

	assertStateEqual(t, want, got)
}

func TestSQLiteStore_SaveReplacesPriorState(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.Save(sampleState()); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	// A smaller state must fully replace the previous one
	replacement := models.NewUserState()
	replacement.Habits = []models.Habit{{ID: "h9", Domain: models.DomainOrder, Name: "Make bed"}}
	if err := store.Save(replacement); err != nil {
		t.Fatalf("failed to save replacement state: %v", err)
	}

	got, err := store.State()
	if err != nil {
		t.Fatalf("failed to read state: %v", err)
	}
	if len(got.CheckIns) != 0 {
		t.Errorf("expected check-ins cleared, got %d", len(got.CheckIns))
	}
	if len(got.Habits) != 1 || got.Habits[0].ID != "h9" {
		t.Errorf("unexpected habits after replace: %+v", got.Habits)
	}
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}
