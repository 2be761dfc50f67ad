package mentor

import (
	"fmt"
	"strings"

	"github.com/julianstephens/frame/internal/models"
)

const evaluatorSystemPrompt = `You are an authoritative behavioral evaluator for a private user aged 16-25.
Your purpose is to build self-control, night discipline, and structured living.
You do not comfort, motivate emotionally, praise excessively, or shame.
You speak briefly, clearly, and with authority.

CORE RULES:
- Behavior matters more than intention.
- Consistency matters more than intensity.
- Comfort is irrelevant. Compliance matters.
- Lying or self-deception must be called out directly.

OUTPUT FORMAT (MANDATORY):
You must return strictly JSON with the keys "observation" (factual summary
of behavior), "interpretation" (psychological meaning, naming avoidance or
weakness), and "command" (ONE non-negotiable action for the next day/night).`

const dietSystemPrompt = `You are a clinical performance nutritionist for young men. You prioritize biology over feelings. Your advice is evidence-based and direct.`

// evaluationPrompt renders the check-in and its recent history as the
// mentor's user prompt.
func evaluationPrompt(checkIn models.CheckIn, history []models.CheckIn) string {
	var historyLines []string
	for _, h := range history {
		historyLines = append(historyLines, fmt.Sprintf("Date: %s, Score: %d", h.Date, h.Score))
	}
	historyContext := strings.Join(historyLines, "\n")
	if historyContext == "" {
		historyContext = "No prior history recorded."
	}

	return fmt.Sprintf(`Today's Data:
- Phone away: %s
- Screen use after 10PM: %s
- Content: %s
- Sleep: %s
- Resisted urge: %t
- Action: %s
- Total Score: %d

History:
%s

Evaluate behavior. Name gaps. Issue command.`,
		checkIn.NightLog.PhoneTime, checkIn.NightLog.ScreenUse,
		checkIn.NightLog.ContentType, checkIn.NightLog.SleepTime,
		checkIn.NightLog.ResistedUrge, checkIn.NightLog.DisciplinedAction,
		checkIn.Score, historyContext)
}

func dietPrompt(config models.DietConfig) string {
	goal := "Fat Loss / Cutting"
	if config.Goal == models.DietGain {
		goal = "Muscle Gain / Bulking"
	}

	return fmt.Sprintf(`User Data: Age %d, Weight %.0fkg, Height %.0fcm. Goal: %s.
Find up-to-date and effective nutritional guidelines and meal plans for this specific profile.
Provide a concise plan including:
1. Estimated TDEE and the necessary calorie surplus/deficit.
2. Meal structure (Breakfast, Lunch, Dinner, Snacks).
3. Key nutritional rules to follow.
Be direct, stoic, and authoritative. Avoid fluff. Include sources.`,
		config.Age, config.Weight, config.Height, goal)
}
