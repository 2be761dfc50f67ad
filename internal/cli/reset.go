package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/julianstephens/frame/internal/logger"
	"github.com/julianstephens/frame/internal/tracker"
)

type ResetCmd struct {
	Yes bool `help:"Skip confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		err = huh.NewConfirm().
			Title(fmt.Sprintf("Reset relapse streak (currently %d)?", state.RelapseStreak)).
			Description("This zeroes the streak and reopens today for a fresh check-in.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	state = tracker.ResetStreak(state)
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	logger.Info("streak reset")
	fmt.Println("Streak reset to 0. Rebuild from here.")
	return nil
}
