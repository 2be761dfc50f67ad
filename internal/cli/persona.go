package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/frame/internal/models"
)

type PersonaCmd struct {
	Set  PersonaSetCmd  `cmd:"" help:"Set the mentor persona name."`
	Show PersonaShowCmd `cmd:"" help:"Show the current mentor persona."`
}

type PersonaSetCmd struct {
	Name string `arg:"" help:"Persona name shown on mentor output."`
}

func (c *PersonaSetCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("persona name cannot be empty")
	}

	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	state.PersonaName = name
	if err := ctx.Store.Save(state); err != nil {
		return err
	}

	fmt.Printf("Persona set to %q\n", name)
	return nil
}

type PersonaShowCmd struct{}

func (c *PersonaShowCmd) Run(ctx *Context) error {
	state, err := ctx.Store.State()
	if err != nil {
		return err
	}

	if state.PersonaName == "" {
		fmt.Printf("%s (default)\n", models.DefaultPersonaName)
		return nil
	}
	fmt.Println(state.PersonaName)
	return nil
}
