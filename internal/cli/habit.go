package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/logger"
	"github.com/julianstephens/frame/internal/models"
	"github.com/julianstephens/frame/internal/tracker"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a habit to a domain."`
	List   HabitListCmd   `cmd:"" help:"List habits grouped by domain."`
	Edit   HabitEditCmd   `cmd:"" help:"Rename or move a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a date."`
}

type HabitAddCmd struct {
	Domain string `arg:"" help:"Domain: Sleep, Physical, Attention, Control, or Order."`
	Name   string `arg:"" help:"Habit name (at least 3 characters)."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	domain, err := models.ParseDomain(c.Domain)
	if err != nil {
		return err
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	state, habit, err := tracker.AddHabit(state, domain, c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	logger.Info("habit added", "id", habit.ID, "domain", habit.Domain)
	fmt.Printf("Added habit %q to %s (%s)\n", habit.Name, habit.Domain, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if len(state.Habits) == 0 {
		fmt.Println("No habits configured. Add one with 'frame habit add'.")
		return nil
	}

	today := time.Now().Format(constants.DateFormat)
	todayLog, hasLog := state.HabitLogFor(today)

	for _, domain := range models.Domains() {
		var habits []models.Habit
		for _, h := range state.Habits {
			if h.Domain == domain {
				habits = append(habits, h)
			}
		}
		if len(habits) == 0 {
			continue
		}

		fmt.Println(titleStyle.Render(string(domain)))
		for _, h := range habits {
			mark := "[ ]"
			if hasLog && todayLog.Completed(h.ID) {
				mark = "[x]"
			}
			fmt.Printf("  %s %s %s\n", mark, h.Name, mutedStyle.Render(h.ID))
		}
		fmt.Println()
	}
	return nil
}

type HabitEditCmd struct {
	Habit  string `arg:"" help:"Habit id or name."`
	Name   string `help:"New habit name."`
	Domain string `help:"New domain."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if c.Name == "" && c.Domain == "" {
		return fmt.Errorf("nothing to change: pass --name and/or --domain")
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Habit)
	if err != nil {
		return err
	}

	name := habit.Name
	if c.Name != "" {
		name = c.Name
	}
	domain := habit.Domain
	if c.Domain != "" {
		domain, err = models.ParseDomain(c.Domain)
		if err != nil {
			return err
		}
	}

	state, err = tracker.UpdateHabit(state, habit.ID, name, domain)
	if err != nil {
		return err
	}
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	fmt.Printf("Updated habit %s: %q in %s\n", habit.ID, name, domain)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Yes   bool   `help:"Skip confirmation prompt." short:"y"`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		err = huh.NewConfirm().
			Title(fmt.Sprintf("Delete habit %q (%s)?", habit.Name, habit.Domain)).
			Description("Its completion history is removed as well.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	state, err = tracker.DeleteHabit(state, habit.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	logger.Info("habit deleted", "id", habit.ID)
	fmt.Printf("Deleted habit %q\n", habit.Name)
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Date  string `help:"Date to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	habit, err := findHabit(state, c.Habit)
	if err != nil {
		return err
	}

	state, completed, err := tracker.ToggleCompletion(state, habit.ID, date)
	if err != nil {
		return err
	}
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked %q complete for %s\n", habit.Name, date)
	} else {
		fmt.Printf("Marked %q incomplete for %s\n", habit.Name, date)
	}
	return nil
}
