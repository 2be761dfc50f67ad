package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/frame/internal/cli"
	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/errors"
	"github.com/julianstephens/frame/internal/logger"
	"github.com/julianstephens/frame/internal/mentor"
	"github.com/julianstephens/frame/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path. Use a .db extension for SQLite storage." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize frame storage."`
	Checkin cli.CheckInCmd `cmd:"" help:"Record tonight's check-in."`
	Status  cli.StatusCmd  `cmd:"" help:"Show a day's score card."`
	History cli.HistoryCmd `cmd:"" help:"List recent check-ins."`
	Reset   cli.ResetCmd   `cmd:"" help:"Reset the relapse streak."`
	Summary cli.SummaryCmd `cmd:"" help:"Show 7-day discipline scores per domain."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Diet    cli.DietCmd    `cmd:"" help:"Manage the diet profile and protocol."`
	Persona cli.PersonaCmd `cmd:"" help:"Manage the mentor persona."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage state file backups."`
	Apikey  cli.APIKeyCmd  `cmd:"" help:"Manage the mentor API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Nightly self-discipline tracker with an AI mentor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Storage backend follows the state file extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		NewMentor: func() (mentor.Client, error) {
			return mentor.NewOpenAIClient()
		},
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	err := ctx.Run(appCtx)
	store.Close()
	errors.Fatal(err)
}
