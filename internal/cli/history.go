package cli

import (
	"fmt"
	"sort"

	"github.com/julianstephens/frame/internal/models"
	"github.com/julianstephens/frame/internal/tracker"
)

type HistoryCmd struct {
	Days int `help:"Number of entries to show." default:"14"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", c.Days)
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if len(state.CheckIns) == 0 {
		fmt.Println("No check-ins recorded.")
		return nil
	}

	checkIns := make([]models.CheckIn, len(state.CheckIns))
	copy(checkIns, state.CheckIns)
	sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Date > checkIns[j].Date })

	if len(checkIns) > c.Days {
		checkIns = checkIns[:c.Days]
	}

	fmt.Printf("Last %d check-ins:\n\n", len(checkIns))
	for _, ci := range checkIns {
		status := tracker.StatusFor(ci.Score)
		line := fmt.Sprintf("%s  %3d/100  %s", ci.Date, ci.Score,
			statusStyle(status).Render(fmt.Sprintf("%-8s", status)))
		if tracker.IsRelapse(ci.NightLog) {
			line += "  " + criticalStyle.Render("[RELAPSE]")
		}
		fmt.Println(line)
	}

	fmt.Printf("\nStreak: %d\n", state.RelapseStreak)
	return nil
}
