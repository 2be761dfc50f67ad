package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/logger"
	"github.com/julianstephens/frame/internal/mentor"
	"github.com/julianstephens/frame/internal/models"
	"github.com/julianstephens/frame/internal/tracker"
)

const mentorTimeout = 60 * time.Second

type CheckInCmd struct {
	Date     string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Phone    string `help:"Phone away time (Before 10:15 | 10:15-11 | 11-12 | After 12)."`
	Screen   string `help:"Screen use after 10PM (None | <30 min | 30-60 min | 60+ min)."`
	Content  string `help:"Content type (Clean | Reels | Sexual | Mixed)."`
	Sleep    string `help:"Sleep time (Before 11 | 11-12 | After 12)."`
	Resisted bool   `help:"Whether an urge was resisted."`
	Action   string `help:"One disciplined action taken today (min 10 characters)."`
	Force    bool   `help:"Replace an existing check-in for the date."`
	NoMentor bool   `help:"Skip mentor evaluation."`
}

func (c *CheckInCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if _, exists := state.CheckInFor(date); exists && !c.Force {
		// A manual reset clears lastCheckInDate, which re-opens the day
		if state.LastCheckInDate != nil {
			return fmt.Errorf("a check-in for %s already exists (use --force to replace, or 'frame reset' to start over)", date)
		}
	}

	nightLog, err := c.nightLog()
	if err != nil {
		return err
	}

	checkIn := models.CheckIn{
		ID:       uuid.New().String(),
		Date:     date,
		Score:    tracker.ComputeScore(nightLog),
		NightLog: nightLog,
		Pillars:  models.DefaultPillars(),
	}

	// Commit deterministically before any mentor involvement
	state = tracker.ApplyCheckIn(state, checkIn)
	if err := ctx.Store.Save(state); err != nil {
		return err
	}
	logger.Info("Check-in committed", "date", date, "score", checkIn.Score, "streak", state.RelapseStreak)

	printScoreCard(checkIn, state.RelapseStreak)

	if !c.NoMentor {
		feedback := c.evaluate(ctx, state, checkIn)
		state = tracker.AttachFeedback(state, date, feedback)
		if err := ctx.Store.Save(state); err != nil {
			return err
		}
		printFeedback(state.Persona(), feedback)
	}

	return nil
}

// evaluate runs the mentor call with a deadline; failure (including a
// missing API key) degrades to the fixed fallback and never unwinds the
// committed check-in.
func (c *CheckInCmd) evaluate(ctx *Context, state models.UserState, checkIn models.CheckIn) models.AIFeedback {
	client, err := ctx.NewMentor()
	if err != nil {
		logger.Warn("Mentor unavailable, using fallback", "error", err)
		return mentor.FallbackFeedback()
	}

	callCtx, cancel := context.WithTimeout(context.Background(), mentorTimeout)
	defer cancel()

	history := tracker.RecentHistory(state, checkIn.Date, constants.MentorHistoryWindow)
	return mentor.EvaluateWithFallback(callCtx, client, checkIn, history)
}

// nightLog assembles the log from flags, prompting interactively for
// anything not supplied.
func (c *CheckInCmd) nightLog() (models.NightLog, error) {
	var log models.NightLog
	var err error

	interactive := c.Phone == "" || c.Screen == "" || c.Content == "" || c.Sleep == "" || c.Action == ""
	if interactive {
		return c.promptNightLog()
	}

	if log.PhoneTime, err = models.ParsePhoneTime(c.Phone); err != nil {
		return log, err
	}
	if log.ScreenUse, err = models.ParseScreenUse(c.Screen); err != nil {
		return log, err
	}
	if log.ContentType, err = models.ParseContentType(c.Content); err != nil {
		return log, err
	}
	if log.SleepTime, err = models.ParseSleepTime(c.Sleep); err != nil {
		return log, err
	}
	log.ResistedUrge = c.Resisted
	log.DisciplinedAction = strings.TrimSpace(c.Action)

	if len(log.DisciplinedAction) < constants.MinDisciplinedTextLen {
		return log, fmt.Errorf("disciplined action must be at least %d characters", constants.MinDisciplinedTextLen)
	}

	return log, nil
}

func (c *CheckInCmd) promptNightLog() (models.NightLog, error) {
	log := models.NightLog{
		PhoneTime:   models.PhoneBefore1015,
		ScreenUse:   models.ScreenNone,
		ContentType: models.ContentClean,
		SleepTime:   models.SleepBefore11,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.PhoneTime]().
				Title("Phone away by").
				Options(phoneOptions()...).
				Value(&log.PhoneTime),
			huh.NewSelect[models.ScreenUse]().
				Title("Screen use after 10PM").
				Options(screenOptions()...).
				Value(&log.ScreenUse),
			huh.NewSelect[models.ContentType]().
				Title("Content consumed").
				Options(contentOptions()...).
				Value(&log.ContentType),
			huh.NewSelect[models.SleepTime]().
				Title("Sleep time").
				Options(sleepOptions()...).
				Value(&log.SleepTime),
			huh.NewConfirm().
				Title("Resisted an urge?").
				Value(&log.ResistedUrge),
			huh.NewInput().
				Title("One disciplined action taken today").
				Value(&log.DisciplinedAction).
				Validate(func(s string) error {
					if len(strings.TrimSpace(s)) < constants.MinDisciplinedTextLen {
						return fmt.Errorf("must be at least %d characters", constants.MinDisciplinedTextLen)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return log, err
	}
	log.DisciplinedAction = strings.TrimSpace(log.DisciplinedAction)
	return log, nil
}

func phoneOptions() []huh.Option[models.PhoneTime] {
	var opts []huh.Option[models.PhoneTime]
	for _, v := range models.PhoneTimes() {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

func screenOptions() []huh.Option[models.ScreenUse] {
	var opts []huh.Option[models.ScreenUse]
	for _, v := range models.ScreenUses() {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

func contentOptions() []huh.Option[models.ContentType] {
	var opts []huh.Option[models.ContentType]
	for _, v := range models.ContentTypes() {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}

func sleepOptions() []huh.Option[models.SleepTime] {
	var opts []huh.Option[models.SleepTime]
	for _, v := range models.SleepTimes() {
		opts = append(opts, huh.NewOption(string(v), v))
	}
	return opts
}
