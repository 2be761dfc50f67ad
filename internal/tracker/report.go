package tracker

import (
	"math"
	"time"

	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/models"
)

// WeeklyDomainScores computes the per-domain completion percentage over
// the trailing 7-day window ending at asOfDate (inclusive). A domain with
// no habits scores 0. Always recomputed from the current habits and logs;
// never cached.
func WeeklyDomainScores(habits []models.Habit, logs []models.HabitLog, asOfDate string) (map[models.Domain]int, error) {
	asOf, err := time.Parse(constants.DateFormat, asOfDate)
	if err != nil {
		return nil, err
	}

	window := make([]string, constants.SummaryWindowDays)
	for i := range window {
		window[i] = asOf.AddDate(0, 0, -i).Format(constants.DateFormat)
	}

	logByDate := make(map[string]models.HabitLog, len(logs))
	for _, l := range logs {
		logByDate[l.Date] = l
	}

	scores := make(map[models.Domain]int, len(models.Domains()))
	for _, domain := range models.Domains() {
		var domainHabits []models.Habit
		for _, h := range habits {
			if h.Domain == domain {
				domainHabits = append(domainHabits, h)
			}
		}
		if len(domainHabits) == 0 {
			scores[domain] = 0
			continue
		}

		totalPossible := len(domainHabits) * constants.SummaryWindowDays
		totalCompletions := 0
		for _, date := range window {
			log, ok := logByDate[date]
			if !ok {
				continue
			}
			for _, h := range domainHabits {
				if log.Completed(h.ID) {
					totalCompletions++
				}
			}
		}

		scores[domain] = int(math.Round(100 * float64(totalCompletions) / float64(totalPossible)))
	}

	return scores, nil
}
