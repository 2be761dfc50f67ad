package tracker

import "github.com/julianstephens/frame/internal/models"

// BaseScore is the starting point before rubric deltas are applied
const BaseScore = 50

// ResistedUrgeBonus is added when the user resisted an urge
const ResistedUrgeBonus = 10

var phoneScores = map[models.PhoneTime]int{
	models.PhoneBefore1015: 15,
	models.Phone1015To11:   5,
	models.Phone11To12:     -10,
	models.PhoneAfter12:    -20,
}

var screenScores = map[models.ScreenUse]int{
	models.ScreenNone:    15,
	models.ScreenUnder30: 5,
	models.Screen30To60:  -5,
	models.ScreenOver60:  -15,
}

var contentScores = map[models.ContentType]int{
	models.ContentClean:  0,
	models.ContentReels:  -15,
	models.ContentSexual: -25,
	models.ContentMixed:  -10,
}

var sleepScores = map[models.SleepTime]int{
	models.SleepBefore11: 10,
	models.Sleep11To12:   0,
	models.SleepAfter12:  -20,
}

// ComputeScore maps a night log to a control score in [0,100]. The rubric
// is additive over the four categories plus the resisted-urge bonus,
// starting from BaseScore and clamped at the ends.
func ComputeScore(log models.NightLog) int {
	score := BaseScore
	score += phoneScores[log.PhoneTime]
	score += screenScores[log.ScreenUse]
	score += contentScores[log.ContentType]
	score += sleepScores[log.SleepTime]
	if log.ResistedUrge {
		score += ResistedUrgeBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// StatusFor maps a control score to its display band.
func StatusFor(score int) string {
	switch {
	case score >= 85:
		return "GROUNDED"
	case score >= 70:
		return "STABLE"
	case score >= 50:
		return "UNSTABLE"
	default:
		return "CRITICAL"
	}
}
