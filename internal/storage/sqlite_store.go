package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/frame/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checkins (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	score INTEGER NOT NULL,
	phone_time TEXT NOT NULL,
	screen_use TEXT NOT NULL,
	content_type TEXT NOT NULL,
	sleep_time TEXT NOT NULL,
	resisted_urge INTEGER NOT NULL,
	disciplined_action TEXT NOT NULL,
	pillar_discipline REAL NOT NULL,
	pillar_sexual_control REAL NOT NULL,
	pillar_physical_output REAL NOT NULL,
	pillar_attention_control REAL NOT NULL,
	pillar_social_conduct REAL NOT NULL,
	ai_observation TEXT,
	ai_interpretation TEXT,
	ai_command TEXT
);

CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	domain TEXT NOT NULL,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_completions (
	date TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	PRIMARY KEY (date, habit_id)
);

CREATE TABLE IF NOT EXISTS diet_config (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	weight REAL NOT NULL,
	height REAL NOT NULL,
	age INTEGER NOT NULL,
	goal TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'frame init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) State() (models.UserState, error) {
	if s.db == nil {
		return models.UserState{}, fmt.Errorf("storage not loaded")
	}

	state := models.NewUserState()

	rows, err := s.db.Query(`
		SELECT id, date, score, phone_time, screen_use, content_type, sleep_time,
			resisted_urge, disciplined_action,
			pillar_discipline, pillar_sexual_control, pillar_physical_output,
			pillar_attention_control, pillar_social_conduct,
			ai_observation, ai_interpretation, ai_command
		FROM checkins ORDER BY date`)
	if err != nil {
		return models.UserState{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var c models.CheckIn
		var resisted int
		var obs, interp, cmd sql.NullString

		err := rows.Scan(&c.ID, &c.Date, &c.Score,
			(*string)(&c.NightLog.PhoneTime), (*string)(&c.NightLog.ScreenUse),
			(*string)(&c.NightLog.ContentType), (*string)(&c.NightLog.SleepTime),
			&resisted, &c.NightLog.DisciplinedAction,
			&c.Pillars.Discipline, &c.Pillars.SexualControl, &c.Pillars.PhysicalOutput,
			&c.Pillars.AttentionControl, &c.Pillars.SocialConduct,
			&obs, &interp, &cmd)
		if err != nil {
			return models.UserState{}, err
		}

		c.NightLog.ResistedUrge = resisted != 0
		if obs.Valid || interp.Valid || cmd.Valid {
			c.AIFeedback = &models.AIFeedback{
				Observation:    obs.String,
				Interpretation: interp.String,
				Command:        cmd.String,
			}
		}

		state.CheckIns = append(state.CheckIns, c)
	}
	if err := rows.Err(); err != nil {
		return models.UserState{}, err
	}

	habitRows, err := s.db.Query(`SELECT id, domain, name FROM habits ORDER BY rowid`)
	if err != nil {
		return models.UserState{}, err
	}
	defer habitRows.Close()

	for habitRows.Next() {
		var h models.Habit
		if err := habitRows.Scan(&h.ID, (*string)(&h.Domain), &h.Name); err != nil {
			return models.UserState{}, err
		}
		state.Habits = append(state.Habits, h)
	}
	if err := habitRows.Err(); err != nil {
		return models.UserState{}, err
	}

	logRows, err := s.db.Query(`SELECT date, habit_id FROM habit_completions ORDER BY date, rowid`)
	if err != nil {
		return models.UserState{}, err
	}
	defer logRows.Close()

	logIndex := make(map[string]int)
	for logRows.Next() {
		var date, habitID string
		if err := logRows.Scan(&date, &habitID); err != nil {
			return models.UserState{}, err
		}
		i, ok := logIndex[date]
		if !ok {
			state.HabitLogs = append(state.HabitLogs, models.HabitLog{Date: date})
			i = len(state.HabitLogs) - 1
			logIndex[date] = i
		}
		state.HabitLogs[i].CompletedHabitIDs = append(state.HabitLogs[i].CompletedHabitIDs, habitID)
	}
	if err := logRows.Err(); err != nil {
		return models.UserState{}, err
	}

	row := s.db.QueryRow(`SELECT weight, height, age, goal FROM diet_config WHERE id = 1`)
	var diet models.DietConfig
	err = row.Scan(&diet.Weight, &diet.Height, &diet.Age, (*string)(&diet.Goal))
	if err == nil {
		state.DietConfig = &diet
	} else if err != sql.ErrNoRows {
		return models.UserState{}, err
	}

	meta, err := s.readMeta()
	if err != nil {
		return models.UserState{}, err
	}
	if v, ok := meta["last_check_in_date"]; ok && v != "" {
		date := v
		state.LastCheckInDate = &date
	}
	if v, ok := meta["relapse_streak"]; ok {
		if _, err := fmt.Sscanf(v, "%d", &state.RelapseStreak); err != nil {
			return models.UserState{}, fmt.Errorf("failed to parse relapse_streak: %w", err)
		}
	}
	if v, ok := meta["persona_name"]; ok && v != "" {
		state.PersonaName = v
	}

	return state, nil
}

func (s *SQLiteStore) readMeta() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// Save writes the full state inside a single transaction. Existing rows
// are replaced wholesale, matching the write-all persistence model.
func (s *SQLiteStore) Save(state models.UserState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"checkins", "habits", "habit_completions", "diet_config", "meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range state.CheckIns {
		resisted := 0
		if c.NightLog.ResistedUrge {
			resisted = 1
		}
		var obs, interp, cmd sql.NullString
		if c.AIFeedback != nil {
			obs = sql.NullString{String: c.AIFeedback.Observation, Valid: true}
			interp = sql.NullString{String: c.AIFeedback.Interpretation, Valid: true}
			cmd = sql.NullString{String: c.AIFeedback.Command, Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO checkins (id, date, score, phone_time, screen_use, content_type,
				sleep_time, resisted_urge, disciplined_action,
				pillar_discipline, pillar_sexual_control, pillar_physical_output,
				pillar_attention_control, pillar_social_conduct,
				ai_observation, ai_interpretation, ai_command)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Date, c.Score,
			string(c.NightLog.PhoneTime), string(c.NightLog.ScreenUse),
			string(c.NightLog.ContentType), string(c.NightLog.SleepTime),
			resisted, c.NightLog.DisciplinedAction,
			c.Pillars.Discipline, c.Pillars.SexualControl, c.Pillars.PhysicalOutput,
			c.Pillars.AttentionControl, c.Pillars.SocialConduct,
			obs, interp, cmd)
		if err != nil {
			return fmt.Errorf("failed to write check-in %s: %w", c.Date, err)
		}
	}

	for _, h := range state.Habits {
		if _, err := tx.Exec(
			`INSERT INTO habits (id, domain, name) VALUES (?, ?, ?)`,
			h.ID, string(h.Domain), h.Name); err != nil {
			return fmt.Errorf("failed to write habit %s: %w", h.ID, err)
		}
	}

	for _, log := range state.HabitLogs {
		for _, habitID := range log.CompletedHabitIDs {
			if _, err := tx.Exec(
				`INSERT INTO habit_completions (date, habit_id) VALUES (?, ?)`,
				log.Date, habitID); err != nil {
				return fmt.Errorf("failed to write habit log %s: %w", log.Date, err)
			}
		}
	}

	if state.DietConfig != nil {
		if _, err := tx.Exec(
			`INSERT INTO diet_config (id, weight, height, age, goal) VALUES (1, ?, ?, ?, ?)`,
			state.DietConfig.Weight, state.DietConfig.Height, state.DietConfig.Age,
			string(state.DietConfig.Goal)); err != nil {
			return fmt.Errorf("failed to write diet config: %w", err)
		}
	}

	lastDate := ""
	if state.LastCheckInDate != nil {
		lastDate = *state.LastCheckInDate
	}
	meta := map[string]string{
		"last_check_in_date": lastDate,
		"relapse_streak":     fmt.Sprintf("%d", state.RelapseStreak),
		"persona_name":       state.PersonaName,
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("failed to write meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
