package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/julianstephens/frame/internal/constants"
	"github.com/julianstephens/frame/internal/keyring"
	"github.com/julianstephens/frame/internal/logger"
	"github.com/julianstephens/frame/internal/models"
)

// OpenAIClient talks to an OpenAI-compatible chat completion endpoint
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a client using the API key from the environment
// or, failing that, the OS keyring. The model can be overridden via the
// environment.
func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv(constants.MentorAPIKeyEnv)
	if apiKey == "" {
		key, err := keyring.GetAPIKey()
		if err != nil {
			return nil, fmt.Errorf("no mentor API key configured: set %s or run 'frame apikey set'", constants.MentorAPIKeyEnv)
		}
		apiKey = key
	}

	model := os.Getenv(constants.MentorModelEnv)
	if model == "" {
		model = constants.DefaultMentorModel
	}

	logger.Debug("Initializing mentor client", "model", model)
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *OpenAIClient) EvaluateCheckIn(ctx context.Context, checkIn models.CheckIn, history []models.CheckIn) (models.AIFeedback, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: evaluatorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: evaluationPrompt(checkIn, history)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return models.AIFeedback{}, fmt.Errorf("mentor API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.AIFeedback{}, fmt.Errorf("mentor returned no choices")
	}

	var feedback models.AIFeedback
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &feedback); err != nil {
		return models.AIFeedback{}, fmt.Errorf("failed to parse mentor response: %w", err)
	}
	if feedback.Observation == "" && feedback.Interpretation == "" && feedback.Command == "" {
		return models.AIFeedback{}, fmt.Errorf("mentor returned an empty evaluation")
	}

	logger.Debug("Received mentor evaluation", "date", checkIn.Date)
	return feedback, nil
}

func (c *OpenAIClient) GenerateDietPlan(ctx context.Context, config models.DietConfig) (DietPlan, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: dietSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: dietPrompt(config)},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return DietPlan{}, fmt.Errorf("diet plan generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return DietPlan{}, fmt.Errorf("mentor returned no choices")
	}

	// The chat API offers no search grounding, so any sources the model
	// cites live inside the plan text itself.
	return DietPlan{Text: resp.Choices[0].Message.Content}, nil
}
