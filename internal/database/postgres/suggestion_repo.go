package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type suggestionRepo struct {
	db *gorm.DB
}

func newSuggestionRepo(db *gorm.DB) contract.SuggestionRepo {
	return &suggestionRepo{db: db}
}

func (r *suggestionRepo) first(ctx context.Context, query *gorm.DB) (*entity.Suggestion, error) {
	var models []suggestionModel
	if err := query.WithContext(ctx).Limit(1).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return models[0].toEntity(), nil
}

func (r *suggestionRepo) list(ctx context.Context, query *gorm.DB) ([]*entity.Suggestion, error) {
	var models []suggestionModel
	if err := query.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	suggestions := make([]*entity.Suggestion, 0, len(models))
	for i := range models {
		suggestions = append(suggestions, models[i].toEntity())
	}
	return suggestions, nil
}

func (r *suggestionRepo) byID(id uuid.UUID) *gorm.DB {
	return r.db.Model(&suggestionModel{}).Where("id = ?", id)
}

func (r *suggestionRepo) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	if suggestion.ID == uuid.Nil {
		suggestion.ID = uuid.New()
	}
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(toSuggestionModel(suggestion)).Error
	if err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	return nil
}

func (r *suggestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *suggestionRepo) Update(ctx context.Context, suggestion *entity.Suggestion) error {
	err := r.byID(suggestion.ID).WithContext(ctx).Updates(map[string]interface{}{
		"title":         suggestion.Title,
		"sort_order":    suggestion.Order,
		"is_hidden":     suggestion.IsHidden,
		"external_link": suggestion.ExternalLink,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update suggestion: %w", err)
	}
	return nil
}

func (r *suggestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&suggestionModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete suggestion: %w", err)
	}
	return nil
}

func (r *suggestionRepo) SetOrder(ctx context.Context, id uuid.UUID, order int) error {
	if err := r.byID(id).WithContext(ctx).Update("sort_order", order).Error; err != nil {
		return fmt.Errorf("failed to set suggestion order: %w", err)
	}
	return nil
}

func (r *suggestionRepo) ForceState(ctx context.Context, suggestion *entity.Suggestion) error {
	err := r.byID(suggestion.ID).WithContext(ctx).Updates(map[string]interface{}{
		"status":       int(suggestion.Status),
		"active_at":    utcPtr(suggestion.ActiveAt),
		"finished_at":  utcPtr(suggestion.FinishedAt),
		"cycle_number": suggestion.CycleNumber,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to force suggestion state: %w", err)
	}
	return nil
}

func (r *suggestionRepo) GetActiveSuggestion(ctx context.Context) (*entity.Suggestion, error) {
	query := r.db.Where("status = ?", int(entity.StatusActive)).Order("active_at ASC")
	return r.first(ctx, query)
}

func (r *suggestionRepo) ListQueued(ctx context.Context) ([]*entity.Suggestion, error) {
	query := r.db.Where("status = ?", int(entity.StatusQueued)).Order("active_at ASC NULLS FIRST, sort_order ASC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListPendingForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Suggestion, error) {
	query := r.db.
		Where("submitter_id = ? AND status <> ?", memberID, int(entity.StatusFinished)).
		Order("sort_order ASC, created_at ASC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) MostRecentFinishedOrActive(ctx context.Context) (*entity.Suggestion, error) {
	query := r.db.
		Where("status IN ?", []int{int(entity.StatusFinished), int(entity.StatusActive)}).
		Order("finished_at DESC NULLS LAST, active_at DESC NULLS LAST")
	return r.first(ctx, query)
}

func (r *suggestionRepo) CommitTransition(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus, activeAt, finishedAt *time.Time) error {
	values := map[string]interface{}{"status": int(status)}
	if activeAt != nil {
		values["active_at"] = activeAt.UTC()
	}
	if finishedAt != nil {
		values["finished_at"] = finishedAt.UTC()
	}

	result := r.byID(id).WithContext(ctx).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to commit transition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to commit transition: suggestion %s not found", id)
	}
	return nil
}

func (r *suggestionRepo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Suggestion, error) {
	query := r.db.Where("submitter_id = ?", memberID).Order("sort_order ASC, created_at ASC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status entity.SuggestionStatus) ([]*entity.Suggestion, error) {
	query := r.db.Where("submitter_id = ? AND status = ?", memberID, int(status)).Order("sort_order ASC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListScheduled(ctx context.Context) ([]*entity.Suggestion, error) {
	query := r.db.Where("status <> ?", int(entity.StatusPending)).Order("active_at ASC NULLS FIRST")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListFloating(ctx context.Context) ([]*entity.Suggestion, error) {
	query := r.db.Where("status = ? AND is_hidden = ?", int(entity.StatusPending), false).Order("sort_order ASC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListFinished(ctx context.Context) ([]*entity.Suggestion, error) {
	query := r.db.
		Where("status = ?", int(entity.StatusFinished)).
		Order("finished_at DESC NULLS LAST, created_at DESC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListFinishedAfter(ctx context.Context, after time.Time) ([]*entity.Suggestion, error) {
	query := r.db.
		Where("status = ? AND finished_at > ?", int(entity.StatusFinished), after.UTC()).
		Order("finished_at DESC")
	return r.list(ctx, query)
}

func (r *suggestionRepo) ListAll(ctx context.Context) ([]*entity.Suggestion, error) {
	return r.list(ctx, r.db.Order("sort_order ASC, created_at ASC"))
}

func (r *suggestionRepo) NextOrder(ctx context.Context, memberID uuid.UUID) (int, error) {
	var maxOrder int
	err := r.db.WithContext(ctx).Model(&suggestionModel{}).
		Where("submitter_id = ? AND status <> ?", memberID, int(entity.StatusFinished)).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get next order: %w", err)
	}
	return maxOrder + 1, nil
}

func (r *suggestionRepo) CountByMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&suggestionModel{}).Where("submitter_id = ?", memberID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count suggestions: %w", err)
	}
	return int(count), nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
