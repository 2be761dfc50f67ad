package tracker

import (
	"testing"

	"github.com/julianstephens/frame/internal/models"
)

func cleanCheckIn(id, date string) models.CheckIn {
	return models.CheckIn{
		ID:   id,
		Date: date,
		NightLog: models.NightLog{
			PhoneTime:   models.PhoneBefore1015,
			ScreenUse:   models.ScreenNone,
			ContentType: models.ContentClean,
			SleepTime:   models.SleepBefore11,
		},
		Pillars: models.DefaultPillars(),
	}
}

func relapseCheckIn(id, date string) models.CheckIn {
	c := cleanCheckIn(id, date)
	c.NightLog.ContentType = models.ContentSexual
	return c
}

func TestApplyCheckIn_IncrementsStreakOnCleanNight(t *testing.T) {
	state := models.NewUserState()

	state = ApplyCheckIn(state, cleanCheckIn("c1", "2026-08-01"))
	if state.RelapseStreak != 1 {
		t.Errorf("expected streak 1, got %d", state.RelapseStreak)
	}

	// Non-consecutive dates still increment: the streak counts
	// submissions, not calendar days
	state = ApplyCheckIn(state, cleanCheckIn("c2", "2026-08-05"))
	if state.RelapseStreak != 2 {
		t.Errorf("expected streak 2 after gap submission, got %d", state.RelapseStreak)
	}

	if state.LastCheckInDate == nil || *state.LastCheckInDate != "2026-08-05" {
		t.Errorf("expected lastCheckInDate 2026-08-05, got %v", state.LastCheckInDate)
	}
}

func TestApplyCheckIn_RelapseResetsStreak(t *testing.T) {
	state := models.NewUserState()
	state = ApplyCheckIn(state, cleanCheckIn("c1", "2026-08-01"))
	state = ApplyCheckIn(state, cleanCheckIn("c2", "2026-08-02"))

	state = ApplyCheckIn(state, relapseCheckIn("c3", "2026-08-03"))
	if state.RelapseStreak != 0 {
		t.Errorf("expected streak 0 after relapse, got %d", state.RelapseStreak)
	}

	// Reels also counts as a relapse
	c := cleanCheckIn("c4", "2026-08-04")
	c.NightLog.ContentType = models.ContentReels
	state = ApplyCheckIn(state, cleanCheckIn("c5", "2026-08-05"))
	state = ApplyCheckIn(state, c)
	if state.RelapseStreak != 0 {
		t.Errorf("expected streak 0 after reels relapse, got %d", state.RelapseStreak)
	}
}

func TestApplyCheckIn_SameDateReplaces(t *testing.T) {
	state := models.NewUserState()
	state = ApplyCheckIn(state, cleanCheckIn("c1", "2026-08-01"))
	state = ApplyCheckIn(state, cleanCheckIn("c2", "2026-08-01"))

	if len(state.CheckIns) != 1 {
		t.Fatalf("expected exactly one check-in for the date, got %d", len(state.CheckIns))
	}
	if state.CheckIns[0].ID != "c2" {
		t.Errorf("expected the later check-in to win, got %s", state.CheckIns[0].ID)
	}
}

func TestResetStreak(t *testing.T) {
	state := models.NewUserState()
	state = ApplyCheckIn(state, cleanCheckIn("c1", "2026-08-01"))

	state = ResetStreak(state)
	if state.RelapseStreak != 0 {
		t.Errorf("expected streak 0 after reset, got %d", state.RelapseStreak)
	}
	if state.LastCheckInDate != nil {
		t.Errorf("expected lastCheckInDate cleared, got %v", *state.LastCheckInDate)
	}

	// A fresh submission for the same date must still be accepted
	state = ApplyCheckIn(state, cleanCheckIn("c2", "2026-08-01"))
	if len(state.CheckIns) != 1 {
		t.Fatalf("expected one check-in after re-entry, got %d", len(state.CheckIns))
	}
	if state.RelapseStreak != 1 {
		t.Errorf("expected streak 1 after re-entry, got %d", state.RelapseStreak)
	}
}

func TestAttachFeedback(t *testing.T) {
	state := models.NewUserState()
	state = ApplyCheckIn(state, cleanCheckIn("c1", "2026-08-01"))

	fb := models.AIFeedback{
		Observation:    "Phone away early.",
		Interpretation: "Discipline holding.",
		Command:        "Repeat tomorrow.",
	}
	state = AttachFeedback(state, "2026-08-01", fb)

	got, ok := state.CheckInFor("2026-08-01")
	if !ok {
		t.Fatal("check-in missing")
	}
	if got.AIFeedback == nil || got.AIFeedback.Command != "Repeat tomorrow." {
		t.Errorf("feedback not attached: %+v", got.AIFeedback)
	}

	// Unknown date is a no-op
	state = AttachFeedback(state, "2026-08-02", fb)
	if len(state.CheckIns) != 1 {
		t.Errorf("attach to unknown date must not create entries")
	}
}

func TestRecentHistory(t *testing.T) {
	state := models.NewUserState()
	dates := []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05", "2026-08-06", "2026-08-07"}
	for i, d := range dates {
		state = ApplyCheckIn(state, cleanCheckIn(dates[i], d))
	}

	history := RecentHistory(state, "2026-08-07", 5)
	if len(history) != 5 {
		t.Fatalf("expected 5 history entries, got %d", len(history))
	}
	if history[0].Date != "2026-08-02" || history[4].Date != "2026-08-06" {
		t.Errorf("unexpected history window: %s..%s", history[0].Date, history[4].Date)
	}
}
