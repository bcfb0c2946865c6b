package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SessionCreateInput holds the fields for a new generation session.
type SessionCreateInput struct {
	UserID         *uuid.UUID
	GitHubUsername string
	RawInput       string
}

// CreateSession records the start of a README generation.
func (db *DB) CreateSession(ctx context.Context, input *SessionCreateInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_sessions (user_id, github_username, raw_input, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		input.UserID, nullIfEmpty(input.GitHubUsername), nullIfEmpty(input.RawInput),
		SessionStatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// CompleteSession stores the extracted profile and the generated README
// and marks the session completed.
func (db *DB) CompleteSession(ctx context.Context, id uuid.UUID, profileJSON []byte, readme string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE generation_sessions
		 SET profile_json = $2, readme = $3, status = $4, completed_at = NOW()
		 WHERE id = $1`,
		id, profileJSON, readme, SessionStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// MarkSessionDeployed records the profile repository URL after a deploy.
func (db *DB) MarkSessionDeployed(ctx context.Context, id uuid.UUID, repoURL string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE generation_sessions
		 SET status = $2, repo_url = $3
		 WHERE id = $1`,
		id, SessionStatusDeployed, repoURL,
	)
	if err != nil {
		return fmt.Errorf("failed to mark session deployed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// GetSession retrieves a generation session by ID. Returns nil if not found.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*GenerationSession, error) {
	var s GenerationSession
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(github_username, ''), COALESCE(raw_input, ''),
		        profile_json, COALESCE(readme, ''), status, COALESCE(repo_url, ''),
		        created_at, completed_at
		 FROM generation_sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.GitHubUsername, &s.RawInput, &s.ProfileJSON,
		&s.Readme, &s.Status, &s.RepoURL, &s.CreatedAt, &s.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// ListUserSessions returns a user's sessions, newest first.
func (db *DB) ListUserSessions(ctx context.Context, userID uuid.UUID, limit int) ([]GenerationSession, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, COALESCE(github_username, ''), COALESCE(raw_input, ''),
		        profile_json, COALESCE(readme, ''), status, COALESCE(repo_url, ''),
		        created_at, completed_at
		 FROM generation_sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []GenerationSession
	for rows.Next() {
		var s GenerationSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.GitHubUsername, &s.RawInput,
			&s.ProfileJSON, &s.Readme, &s.Status, &s.RepoURL, &s.CreatedAt,
			&s.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// AddSessionSkills records the resolved skills of a session.
func (db *DB) AddSessionSkills(ctx context.Context, sessionID uuid.UUID, skills []SessionSkill) error {
	for _, sk := range skills {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO session_skills (session_id, skill_name, category, has_icon)
			 VALUES ($1, $2, $3, $4)`,
			sessionID, sk.SkillName, sk.Category, sk.HasIcon,
		)
		if err != nil {
			return fmt.Errorf("failed to add session skill %q: %w", sk.SkillName, err)
		}
	}
	return nil
}

// PopularSkills returns the most frequently recorded skills across all
// sessions, highest count first.
func (db *DB) PopularSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, COUNT(*) AS uses
		 FROM session_skills
		 GROUP BY skill_name
		 ORDER BY uses DESC, skill_name
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular skills: %w", err)
	}
	defer rows.Close()

	var counts []SkillCount
	for rows.Next() {
		var c SkillCount
		if err := rows.Scan(&c.SkillName, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan skill count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// nullIfEmpty converts empty strings to nil for nullable columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
