package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

const suggestionColumns = `id, title, sort_order, is_hidden, submitter_id, created_at,
		external_link, active_at, finished_at, cycle_number, status`

type suggestionRepo struct {
	db dbConn
}

func newSuggestionRepo(db dbConn) contract.SuggestionRepo {
	return &suggestionRepo{db: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSuggestion(row scanner) (*entity.Suggestion, error) {
	s := &entity.Suggestion{}
	var (
		link       sql.NullString
		activeAt   sql.NullTime
		finishedAt sql.NullTime
		cycle      sql.NullInt64
	)

	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Order,
		&s.IsHidden,
		&s.SubmitterID,
		&s.CreatedAt,
		&link,
		&activeAt,
		&finishedAt,
		&cycle,
		&s.Status,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = s.CreatedAt.UTC()
	s.ExternalLink = nullString(link)
	s.ActiveAt = nullTime(activeAt)
	s.FinishedAt = nullTime(finishedAt)
	s.CycleNumber = nullInt(cycle)
	return s, nil
}

func (r *suggestionRepo) queryOne(ctx context.Context, query string, args ...interface{}) (*entity.Suggestion, error) {
	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	return s, nil
}

func (r *suggestionRepo) queryMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Suggestion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []*entity.Suggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suggestions: %w", err)
	}

	return suggestions, nil
}

func (r *suggestionRepo) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	if suggestion.ID == uuid.Nil {
		suggestion.ID = uuid.New()
	}
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO suggestions (id, title, sort_order, is_hidden, submitter_id, created_at,
			external_link, active_at, finished_at, cycle_number, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		suggestion.ID,
		suggestion.Title,
		suggestion.Order,
		suggestion.IsHidden,
		suggestion.SubmitterID,
		suggestion.CreatedAt.UTC(),
		suggestion.ExternalLink,
		utcPtr(suggestion.ActiveAt),
		utcPtr(suggestion.FinishedAt),
		suggestion.CycleNumber,
		suggestion.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}

	return nil
}

func (r *suggestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM suggestions WHERE id = ?`
	return r.queryOne(ctx, query, id)
}

func (r *suggestionRepo) Update(ctx context.Context, suggestion *entity.Suggestion) error {
	query := `
		UPDATE suggestions SET
			title = ?,
			sort_order = ?,
			is_hidden = ?,
			external_link = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		suggestion.Title,
		suggestion.Order,
		suggestion.IsHidden,
		suggestion.ExternalLink,
		suggestion.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update suggestion: %w", err)
	}

	return nil
}

func (r *suggestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM suggestions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete suggestion: %w", err)
	}

	return nil
}

func (r *suggestionRepo) SetOrder(ctx context.Context, id uuid.UUID, order int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE suggestions SET sort_order = ? WHERE id = ?`, order, id)
	if err != nil {
		return fmt.Errorf("failed to set suggestion order: %w", err)
	}

	return nil
}

func (r *suggestionRepo) ForceState(ctx context.Context, suggestion *entity.Suggestion) error {
	query := `
		UPDATE suggestions SET
			status = ?,
			active_at = ?,
			finished_at = ?,
			cycle_number = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		suggestion.Status,
		utcPtr(suggestion.ActiveAt),
		utcPtr(suggestion.FinishedAt),
		suggestion.CycleNumber,
		suggestion.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to force suggestion state: %w", err)
	}

	return nil
}

func (r *suggestionRepo) GetActiveSuggestion(ctx context.Context) (*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status = ?
		ORDER BY active_at ASC
		LIMIT 1
	`
	return r.queryOne(ctx, query, entity.StatusActive)
}

func (r *suggestionRepo) ListQueued(ctx context.Context) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status = ?
		ORDER BY active_at ASC, sort_order ASC
	`
	return r.queryMany(ctx, query, entity.StatusQueued)
}

func (r *suggestionRepo) ListPendingForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE submitter_id = ? AND status <> ?
		ORDER BY sort_order ASC, created_at ASC
	`
	return r.queryMany(ctx, query, memberID, entity.StatusFinished)
}

func (r *suggestionRepo) MostRecentFinishedOrActive(ctx context.Context) (*entity.Suggestion, error) {
	// NULL sorts lowest in SQLite, so DESC keeps windowless rows last.
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status IN (?, ?)
		ORDER BY finished_at DESC, active_at DESC
		LIMIT 1
	`
	return r.queryOne(ctx, query, entity.StatusFinished, entity.StatusActive)
}

func (r *suggestionRepo) CommitTransition(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus, activeAt, finishedAt *time.Time) error {
	query := `
		UPDATE suggestions SET
			status = ?,
			active_at = COALESCE(?, active_at),
			finished_at = COALESCE(?, finished_at)
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, status, utcPtr(activeAt), utcPtr(finishedAt), id)
	if err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("failed to commit transition: suggestion %s not found", id)
	}

	return nil
}

func (r *suggestionRepo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE submitter_id = ?
		ORDER BY sort_order ASC, created_at ASC
	`
	return r.queryMany(ctx, query, memberID)
}

func (r *suggestionRepo) ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status entity.SuggestionStatus) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE submitter_id = ? AND status = ?
		ORDER BY sort_order ASC
	`
	return r.queryMany(ctx, query, memberID, status)
}

func (r *suggestionRepo) ListScheduled(ctx context.Context) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status <> ?
		ORDER BY active_at ASC
	`
	return r.queryMany(ctx, query, entity.StatusPending)
}

func (r *suggestionRepo) ListFloating(ctx context.Context) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status = ? AND is_hidden = 0
		ORDER BY sort_order ASC
	`
	return r.queryMany(ctx, query, entity.StatusPending)
}

func (r *suggestionRepo) ListFinished(ctx context.Context) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status = ?
		ORDER BY finished_at IS NULL, finished_at DESC, created_at DESC
	`
	return r.queryMany(ctx, query, entity.StatusFinished)
}

func (r *suggestionRepo) ListFinishedAfter(ctx context.Context, after time.Time) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		WHERE status = ? AND finished_at > ?
		ORDER BY finished_at DESC
	`
	return r.queryMany(ctx, query, entity.StatusFinished, after.UTC())
}

func (r *suggestionRepo) ListAll(ctx context.Context) ([]*entity.Suggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM suggestions
		ORDER BY sort_order ASC, created_at ASC
	`
	return r.queryMany(ctx, query)
}

func (r *suggestionRepo) NextOrder(ctx context.Context, memberID uuid.UUID) (int, error) {
	var maxOrder sql.NullInt64
	query := `SELECT MAX(sort_order) FROM suggestions WHERE submitter_id = ? AND status <> ?`

	err := r.db.QueryRowContext(ctx, query, memberID, entity.StatusFinished).Scan(&maxOrder)
	if err != nil {
		return 0, fmt.Errorf("failed to get next order: %w", err)
	}

	return int(maxOrder.Int64) + 1, nil
}

func (r *suggestionRepo) CountByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suggestions WHERE submitter_id = ?`, memberID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count suggestions: %w", err)
	}

	return count, nil
}
