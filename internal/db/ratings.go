package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MinStars and MaxStars bound a rating value.
const (
	MinStars = 1
	MaxStars = 5
)

// AddRating stores user feedback on a generated README.
func (db *DB) AddRating(ctx context.Context, sessionID *uuid.UUID, stars int, feedback string) (uuid.UUID, error) {
	if stars < MinStars || stars > MaxStars {
		return uuid.Nil, fmt.Errorf("stars must be between %d and %d, got %d", MinStars, MaxStars, stars)
	}
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO ratings (session_id, stars, feedback)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sessionID, stars, nullIfEmpty(feedback),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add rating: %w", err)
	}
	return id, nil
}

// AverageRating returns the mean star rating and the number of ratings.
// Returns 0, 0 when no ratings exist.
func (db *DB) AverageRating(ctx context.Context) (float64, int, error) {
	var avg float64
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(stars), 0), COUNT(*) FROM ratings`,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return avg, count, nil
}

// RecentFeedback returns the latest ratings that include feedback text.
func (db *DB) RecentFeedback(ctx context.Context, limit int) ([]Rating, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, session_id, stars, COALESCE(feedback, ''), created_at
		 FROM ratings
		 WHERE feedback IS NOT NULL AND feedback <> ''
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var ratings []Rating
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Stars, &r.Feedback, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}
