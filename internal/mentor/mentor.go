package mentor

import (
	"context"

	"github.com/julianstephens/frame/internal/logger"
	"github.com/julianstephens/frame/internal/models"
)

// Source is a reference backing a diet plan
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// DietPlan is the generated nutrition plan
type DietPlan struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// Client defines the boundary to the generative-AI mentor backend
type Client interface {
	// EvaluateCheckIn returns structured feedback on a nightly check-in,
	// given up to the five most recent prior check-ins as context.
	EvaluateCheckIn(ctx context.Context, checkIn models.CheckIn, history []models.CheckIn) (models.AIFeedback, error)

	// GenerateDietPlan produces a nutrition plan for the given profile.
	// Unlike check-in evaluation, failures propagate to the caller.
	GenerateDietPlan(ctx context.Context, config models.DietConfig) (DietPlan, error)
}

// FallbackFeedback is substituted whenever check-in evaluation fails.
// The check-in commit always stands regardless of evaluation outcome.
func FallbackFeedback() models.AIFeedback {
	return models.AIFeedback{
		Observation:    "Data recorded.",
		Interpretation: "System offline. Connection or protocol error detected.",
		Command:        "Maintain previous structure. Resolve environmental obstacles.",
	}
}

// EvaluateWithFallback asks the mentor for feedback and masks any failure
// with the fixed fallback payload.
func EvaluateWithFallback(ctx context.Context, client Client, checkIn models.CheckIn, history []models.CheckIn) models.AIFeedback {
	feedback, err := client.EvaluateCheckIn(ctx, checkIn, history)
	if err != nil {
		logger.Warn("Mentor evaluation failed, using fallback", "date", checkIn.Date, "error", err)
		return FallbackFeedback()
	}
	return feedback
}
