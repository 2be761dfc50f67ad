package cli

import (
	"fmt"

	"github.com/julianstephens/frame/internal/models"
	"github.com/julianstephens/frame/internal/tracker"
)

type StatusCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *StatusCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	checkIn, ok := state.CheckInFor(date)
	if !ok {
		fmt.Printf("No check-in recorded for %s.\n", date)
		fmt.Printf("Streak: %d\n", state.RelapseStreak)
		return nil
	}

	printScoreCard(checkIn, state.RelapseStreak)
	if checkIn.AIFeedback != nil {
		printFeedback(state.Persona(), *checkIn.AIFeedback)
	}
	return nil
}

func printScoreCard(checkIn models.CheckIn, streak int) {
	status := tracker.StatusFor(checkIn.Score)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Control Index %s", checkIn.Date)))
	fmt.Printf("  Score:  %d/100 %s\n", checkIn.Score, statusStyle(status).Render(status))
	fmt.Printf("  Streak: %d\n", streak)
	if tracker.IsRelapse(checkIn.NightLog) {
		fmt.Println("  " + criticalStyle.Render("RELAPSE: streak reset"))
	}
	fmt.Printf("  Action: %s\n", checkIn.NightLog.DisciplinedAction)
}

func printFeedback(persona string, feedback models.AIFeedback) {
	fmt.Println()
	fmt.Println(titleStyle.Render(persona))
	fmt.Printf("  Observation:    %s\n", feedback.Observation)
	fmt.Printf("  Interpretation: %s\n", feedback.Interpretation)
	fmt.Printf("  Command:        %s\n", feedback.Command)
}
