package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/keyring"
)

type APIKeyCmd struct {
	Set    APIKeySetCmd    `cmd:"" help:"Store the mentor API key in the OS keyring."`
	Delete APIKeyDeleteCmd `cmd:"" help:"Remove the mentor API key from the OS keyring."`
	Status APIKeyStatusCmd `cmd:"" help:"Show where the mentor API key comes from."`
}

type APIKeySetCmd struct {
	Key string `help:"API key value. Prompted for if omitted."`
}

func (c *APIKeySetCmd) Run(ctx *Context) error {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		err := huh.NewInput().
			Title("Mentor API key").
			EchoMode(huh.EchoModePassword).
			Value(&key).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("key cannot be empty")
				}
				return nil
			}).
			Run()
		if err != nil {
			return err
		}
		key = strings.TrimSpace(key)
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}

	fmt.Println("API key stored in the OS keyring.")
	return nil
}

type APIKeyDeleteCmd struct{}

func (c *APIKeyDeleteCmd) Run(ctx *Context) error {
	err := keyring.DeleteAPIKey()
	if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("No API key stored.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("API key removed from the OS keyring.")
	return nil
}

type APIKeyStatusCmd struct{}

func (c *APIKeyStatusCmd) Run(ctx *Context) error {
	if os.Getenv(constants.MentorAPIKeyEnv) != "" {
		fmt.Printf("API key set via %s (environment overrides the keyring).\n", constants.MentorAPIKeyEnv)
		return nil
	}

	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available on this system, export %s instead", constants.MentorAPIKeyEnv)
	}

	_, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		fmt.Println("API key stored in the OS keyring.")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Printf("No API key configured. Run 'frame apikey set' or export %s.\n", constants.MentorAPIKeyEnv)
	default:
		return err
	}
	return nil
}
