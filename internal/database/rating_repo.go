package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

const ratingColumns = `id, suggestion_id, rater_id, score, comment, created_at`

type ratingRepo struct {
	db dbConn
}

func newRatingRepo(db dbConn) contract.RatingRepo {
	return &ratingRepo{db: db}
}

func scanRating(row scanner) (*entity.Rating, error) {
	rating := &entity.Rating{}
	var comment sql.NullString

	err := row.Scan(
		&rating.ID,
		&rating.SuggestionID,
		&rating.RaterID,
		&rating.Score,
		&comment,
		&rating.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rating.Comment = nullString(comment)
	rating.CreatedAt = rating.CreatedAt.UTC()
	return rating, nil
}

func (r *ratingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO ratings (id, suggestion_id, rater_id, score, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rating.ID,
		rating.SuggestionID,
		rating.RaterID,
		rating.Score,
		rating.Comment,
		rating.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("member already rated this suggestion")
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}

	return nil
}

func (r *ratingRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Rating, error) {
	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return rating, nil
}

func (r *ratingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	return r.getOne(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE id = ?`, id)
}

func (r *ratingRepo) GetBySuggestionAndRater(ctx context.Context, suggestionID, raterID uuid.UUID) (*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE suggestion_id = ? AND rater_id = ?`
	return r.getOne(ctx, query, suggestionID, raterID)
}

func (r *ratingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	_, err := r.db.ExecContext(ctx, `UPDATE ratings SET score = ?, comment = ? WHERE id = ?`,
		rating.Score,
		rating.Comment,
		rating.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}

	return nil
}

func (r *ratingRepo) list(ctx context.Context, query string, args ...interface{}) ([]*entity.Rating, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}

	return ratings, nil
}

func (r *ratingRepo) ListBySuggestion(ctx context.Context, suggestionID uuid.UUID) ([]*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE suggestion_id = ? ORDER BY created_at ASC`
	return r.list(ctx, query, suggestionID)
}

func (r *ratingRepo) ListByRater(ctx context.Context, raterID uuid.UUID) ([]*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE rater_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, raterID)
}

func (r *ratingRepo) ListStats(ctx context.Context) ([]entity.RatingStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT suggestion_id, SUM(score), COUNT(*)
		FROM ratings
		GROUP BY suggestion_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating stats: %w", err)
	}
	defer rows.Close()

	var stats []entity.RatingStats
	for rows.Next() {
		var st entity.RatingStats
		if err := rows.Scan(&st.SuggestionID, &st.Sum, &st.Count); err != nil {
			return nil, fmt.Errorf("failed to scan rating stats: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rating stats: %w", err)
	}

	return stats, nil
}

func (r *ratingRepo) CountByRater(ctx context.Context, raterID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings WHERE rater_id = ?`, raterID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}

	return count, nil
}
