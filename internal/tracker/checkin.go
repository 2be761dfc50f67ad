package tracker

import (
	"sort"

	"github.com/julianstephens/frame/internal/models"
)

// IsRelapse reports whether a night log counts as a relapse. Sexual or
// Reels content resets the streak; everything else extends it.
func IsRelapse(log models.NightLog) bool {
	return log.ContentType == models.ContentSexual || log.ContentType == models.ContentReels
}

// ApplyCheckIn merges a new check-in into the state: any prior entry for
// the same date is replaced, lastCheckInDate is advanced, and the relapse
// streak is reset to zero on relapse or incremented by one otherwise.
//
// The streak is a submission counter, not a calendar counter: submitting
// for a date that does not immediately follow the previous entry still
// increments it.
func ApplyCheckIn(state models.UserState, checkIn models.CheckIn) models.UserState {
	kept := make([]models.CheckIn, 0, len(state.CheckIns)+1)
	for _, c := range state.CheckIns {
		if c.Date != checkIn.Date {
			kept = append(kept, c)
		}
	}
	state.CheckIns = append(kept, checkIn)

	date := checkIn.Date
	state.LastCheckInDate = &date

	if IsRelapse(checkIn.NightLog) {
		state.RelapseStreak = 0
	} else {
		state.RelapseStreak++
	}

	return state
}

// AttachFeedback sets the mentor feedback on the check-in for the given
// date. It is a no-op if no check-in exists for that date.
func AttachFeedback(state models.UserState, date string, feedback models.AIFeedback) models.UserState {
	for i, c := range state.CheckIns {
		if c.Date == date {
			fb := feedback
			state.CheckIns[i].AIFeedback = &fb
			break
		}
	}
	return state
}

// ResetStreak zeroes the relapse streak and clears lastCheckInDate so a
// fresh check-in for the current date can start a new day 1.
func ResetStreak(state models.UserState) models.UserState {
	state.RelapseStreak = 0
	state.LastCheckInDate = nil
	return state
}

// RecentHistory returns up to limit check-ins strictly before the given
// date, most recent last. Used as mentor context.
func RecentHistory(state models.UserState, before string, limit int) []models.CheckIn {
	var prior []models.CheckIn
	for _, c := range state.CheckIns {
		if c.Date < before {
			prior = append(prior, c)
		}
	}
	sort.Slice(prior, func(i, j int) bool { return prior[i].Date < prior[j].Date })
	if len(prior) > limit {
		prior = prior[len(prior)-limit:]
	}
	return prior
}
