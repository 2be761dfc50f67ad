package models

import "fmt"

// PhoneTime is the time the phone was put away for the night
type PhoneTime string

// ScreenUse is the amount of screen time after 10PM
type ScreenUse string

// ContentType is the kind of content consumed during evening screen use
type ContentType string

// SleepTime is the time the user went to sleep
type SleepTime string

const (
	PhoneBefore1015 PhoneTime = "Before 10:15"
	Phone1015To11   PhoneTime = "10:15-11"
	Phone11To12     PhoneTime = "11-12"
	PhoneAfter12    PhoneTime = "After 12"

	ScreenNone    ScreenUse = "None"
	ScreenUnder30 ScreenUse = "<30 min"
	Screen30To60  ScreenUse = "30-60 min"
	ScreenOver60  ScreenUse = "60+ min"

	ContentClean  ContentType = "Clean"
	ContentReels  ContentType = "Reels"
	ContentSexual ContentType = "Sexual"
	ContentMixed  ContentType = "Mixed"

	SleepBefore11 SleepTime = "Before 11"
	Sleep11To12   SleepTime = "11-12"
	SleepAfter12  SleepTime = "After 12"
)

// PhoneTimes lists all valid phone-away options in display order.
func PhoneTimes() []PhoneTime {
	return []PhoneTime{PhoneBefore1015, Phone1015To11, Phone11To12, PhoneAfter12}
}

// ScreenUses lists all valid screen-use options in display order.
func ScreenUses() []ScreenUse {
	return []ScreenUse{ScreenNone, ScreenUnder30, Screen30To60, ScreenOver60}
}

// ContentTypes lists all valid content-type options in display order.
func ContentTypes() []ContentType {
	return []ContentType{ContentClean, ContentReels, ContentSexual, ContentMixed}
}

// SleepTimes lists all valid sleep-time options in display order.
func SleepTimes() []SleepTime {
	return []SleepTime{SleepBefore11, Sleep11To12, SleepAfter12}
}

func ParsePhoneTime(s string) (PhoneTime, error) {
	for _, v := range PhoneTimes() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid phone-away time: %q", s)
}

func ParseScreenUse(s string) (ScreenUse, error) {
	for _, v := range ScreenUses() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid screen use: %q", s)
}

func ParseContentType(s string) (ContentType, error) {
	for _, v := range ContentTypes() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid content type: %q", s)
}

func ParseSleepTime(s string) (SleepTime, error) {
	for _, v := range SleepTimes() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid sleep time: %q", s)
}

// NightLog is the raw nightly behavioral report
type NightLog struct {
	PhoneTime         PhoneTime   `json:"phoneTime"`
	ScreenUse         ScreenUse   `json:"screenUse"`
	ContentType       ContentType `json:"contentType"`
	SleepTime         SleepTime   `json:"sleepTime"`
	ResistedUrge      bool        `json:"resistedUrge"`
	DisciplinedAction string      `json:"disciplinedAction"`
}

// Pillars holds per-area sub-scores. These are placeholders fixed at 0.5
// each until per-pillar scoring lands.
type Pillars struct {
	Discipline       float64 `json:"discipline"`
	SexualControl    float64 `json:"sexualControl"`
	PhysicalOutput   float64 `json:"physicalOutput"`
	AttentionControl float64 `json:"attentionControl"`
	SocialConduct    float64 `json:"socialConduct"`
}

// DefaultPillars returns the placeholder pillar values.
func DefaultPillars() Pillars {
	return Pillars{
		Discipline:       0.5,
		SexualControl:    0.5,
		PhysicalOutput:   0.5,
		AttentionControl: 0.5,
		SocialConduct:    0.5,
	}
}

// AIFeedback is the mentor's structured response to a check-in
type AIFeedback struct {
	Observation    string `json:"observation"`
	Interpretation string `json:"interpretation"`
	Command        string `json:"command"`
}

// CheckIn represents one nightly behavioral report. At most one exists per
// calendar date; resubmitting a date replaces the prior entry.
type CheckIn struct {
	ID         string      `json:"id"`
	Date       string      `json:"date"` // YYYY-MM-DD format
	Score      int         `json:"score"`
	NightLog   NightLog    `json:"nightLog"`
	Pillars    Pillars     `json:"pillars"`
	AIFeedback *AIFeedback `json:"aiFeedback,omitempty"`
}
