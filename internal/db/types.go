package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Generation statuses for a session record.
const (
	SessionStatusPending   = "pending"
	SessionStatusCompleted = "completed"
	SessionStatusDeployed  = "deployed"
	SessionStatusCancelled = "cancelled"
)

// GenerationSession records one README creation attempt: the raw input,
// the extracted profile, and the generated document.
type GenerationSession struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	GitHubUsername string     `json:"github_username,omitempty"`
	RawInput       string     `json:"raw_input,omitempty"`
	ProfileJSON    []byte     `json:"profile_json,omitempty"`
	Readme         string     `json:"readme,omitempty"`
	Status         string     `json:"status"`
	RepoURL        string     `json:"repo_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// SessionSkill is one resolved skill recorded against a session, kept
// for popularity statistics.
type SessionSkill struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	SkillName string    `json:"skill_name"`
	Category  string    `json:"category"`
	HasIcon   bool      `json:"has_icon"`
}

// SkillCount is a skill name with its usage count.
type SkillCount struct {
	SkillName string `json:"skill_name"`
	Count     int    `json:"count"`
}

// Rating is user feedback on a generated document.
type Rating struct {
	ID        uuid.UUID  `json:"id"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	Stars     int        `json:"stars"`
	Feedback  string     `json:"feedback,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
