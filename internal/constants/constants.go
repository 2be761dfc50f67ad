package constants

const (
	AppName           = "frame"
	DefaultConfigPath = "~/.config/frame/frame.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Keyring constants
	KeyringAPIKeyUser = "mentor-api-key"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "frame-"

	// Mentor constants
	DefaultMentorModel = "gpt-4o-mini"
	MentorAPIKeyEnv    = "FRAME_MENTOR_API_KEY"
	MentorModelEnv     = "FRAME_MENTOR_MODEL"

	// Validation constants
	MinHabitNameLen       = 3
	MinDisciplinedTextLen = 10
	MentorHistoryWindow   = 5
	SummaryWindowDays     = 7
)
