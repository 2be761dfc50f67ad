package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/frame/internal/models"
	"github.com/julianstephens/frame/internal/tracker"
)

type SummaryCmd struct {
	Date string `help:"End of the 7-day window (YYYY-MM-DD), defaults to today."`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if len(state.Habits) == 0 {
		fmt.Println("No habits configured. Add one with 'frame habit add'.")
		return nil
	}

	scores, err := tracker.WeeklyDomainScores(state.Habits, state.HabitLogs, date)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("7-day discipline, ending %s", date)))
	fmt.Println()
	for _, domain := range models.Domains() {
		score := scores[domain]
		fmt.Printf("  %-10s %s %3d%%\n", domain, scoreBar(score), score)
	}
	return nil
}

// scoreBar renders a 20-cell bar colored by the same bands as check-in status.
func scoreBar(score int) string {
	filled := score / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return statusStyle(tracker.StatusFor(score)).Render(bar)
}
