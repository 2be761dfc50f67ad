package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/julianstephens/frame/internal/models"
)

type DietCmd struct {
	Set  DietSetCmd  `cmd:"" help:"Set diet profile (weight, height, age, goal)."`
	Show DietShowCmd `cmd:"" help:"Show the current diet profile."`
	Plan DietPlanCmd `cmd:"" help:"Generate a diet protocol from the mentor."`
}

type DietSetCmd struct {
	Weight float64 `help:"Body weight in kg."`
	Height float64 `help:"Height in cm."`
	Age    int     `help:"Age in years."`
	Goal   string  `help:"Diet goal: Gain or Lose."`
}

func (c *DietSetCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	var config models.DietConfig
	if c.Weight != 0 || c.Height != 0 || c.Age != 0 || c.Goal != "" {
		config, err = c.fromFlags()
	} else {
		config, err = promptDietConfig(state.DietConfig)
	}
	if err != nil {
		return err
	}

	state.DietConfig = &config
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	fmt.Printf("Diet profile saved: %.0fkg, %.0fcm, age %d, goal %s\n",
		config.Weight, config.Height, config.Age, config.Goal)
	return nil
}

func (c *DietSetCmd) fromFlags() (models.DietConfig, error) {
	if c.Weight <= 0 || c.Height <= 0 || c.Age <= 0 {
		return models.DietConfig{}, fmt.Errorf("weight, height, and age must all be positive")
	}
	goal, err := models.ParseDietGoal(c.Goal)
	if err != nil {
		return models.DietConfig{}, err
	}
	return models.DietConfig{
		Weight: c.Weight,
		Height: c.Height,
		Age:    c.Age,
		Goal:   goal,
	}, nil
}

func promptDietConfig(current *models.DietConfig) (models.DietConfig, error) {
	var weight, height, age string
	goal := models.DietGain
	if current != nil {
		weight = strconv.FormatFloat(current.Weight, 'f', -1, 64)
		height = strconv.FormatFloat(current.Height, 'f', -1, 64)
		age = strconv.Itoa(current.Age)
		goal = current.Goal
	}

	positiveNumber := func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("enter a positive number")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Weight (kg)").
			Value(&weight).
			Validate(positiveNumber),
		huh.NewInput().
			Title("Height (cm)").
			Value(&height).
			Validate(positiveNumber),
		huh.NewInput().
			Title("Age").
			Value(&age).
			Validate(func(s string) error {
				v, err := strconv.Atoi(s)
				if err != nil || v <= 0 {
					return fmt.Errorf("enter a positive whole number")
				}
				return nil
			}),
		huh.NewSelect[models.DietGoal]().
			Title("Goal").
			Options(
				huh.NewOption("Muscle gain", models.DietGain),
				huh.NewOption("Fat loss", models.DietLose),
			).
			Value(&goal),
	))
	if err := form.Run(); err != nil {
		return models.DietConfig{}, err
	}

	w, _ := strconv.ParseFloat(weight, 64)
	h, _ := strconv.ParseFloat(height, 64)
	a, _ := strconv.Atoi(age)
	return models.DietConfig{Weight: w, Height: h, Age: a, Goal: goal}, nil
}

type DietShowCmd struct{}

func (c *DietShowCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if state.DietConfig == nil {
		fmt.Println("No diet profile set. Run 'frame diet set' first.")
		return nil
	}

	config := state.DietConfig
	fmt.Println(titleStyle.Render("Diet profile"))
	fmt.Printf("  Weight: %.0f kg\n", config.Weight)
	fmt.Printf("  Height: %.0f cm\n", config.Height)
	fmt.Printf("  Age:    %d\n", config.Age)
	fmt.Printf("  Goal:   %s\n", config.Goal)
	return nil
}

type DietPlanCmd struct{}

func (c *DietPlanCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if state.DietConfig == nil {
		return fmt.Errorf("no diet profile set, run 'frame diet set' first")
	}

	client, err := ctx.NewMentor()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), mentorTimeout)
	defer cancel()

	fmt.Println("Requesting protocol from " + state.Persona() + "...")
	plan, err := client.GenerateDietPlan(reqCtx, *state.DietConfig)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Diet protocol"))
	fmt.Println(plan.Text)
	if len(plan.Sources) > 0 {
		fmt.Println()
		fmt.Println(mutedStyle.Render("Sources:"))
		for _, s := range plan.Sources {
			fmt.Printf("  %s (%s)\n", s.Title, s.URI)
		}
	}
	return nil
}
