package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ratingRepo struct {
	db *gorm.DB
}

func newRatingRepo(db *gorm.DB) contract.RatingRepo {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(toRatingModel(rating)).Error
	if err != nil {
		if isDuplicate(err) {
			return domain.Conflict("member already rated this suggestion")
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

func (r *ratingRepo) first(ctx context.Context, query *gorm.DB) (*entity.Rating, error) {
	var models []ratingModel
	if err := query.WithContext(ctx).Limit(1).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return models[0].toEntity(), nil
}

func (r *ratingRepo) list(ctx context.Context, query *gorm.DB) ([]*entity.Rating, error) {
	var models []ratingModel
	if err := query.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}

	ratings := make([]*entity.Rating, 0, len(models))
	for i := range models {
		ratings = append(ratings, models[i].toEntity())
	}
	return ratings, nil
}

func (r *ratingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	return r.first(ctx, r.db.Where("id = ?", id))
}

func (r *ratingRepo) GetBySuggestionAndRater(ctx context.Context, suggestionID, raterID uuid.UUID) (*entity.Rating, error) {
	return r.first(ctx, r.db.Where("suggestion_id = ? AND rater_id = ?", suggestionID, raterID))
}

func (r *ratingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	err := r.db.WithContext(ctx).Model(&ratingModel{}).Where("id = ?", rating.ID).Updates(map[string]interface{}{
		"score":   rating.Score,
		"comment": rating.Comment,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	return nil
}

func (r *ratingRepo) ListBySuggestion(ctx context.Context, suggestionID uuid.UUID) ([]*entity.Rating, error) {
	return r.list(ctx, r.db.Where("suggestion_id = ?", suggestionID).Order("created_at ASC"))
}

func (r *ratingRepo) ListByRater(ctx context.Context, raterID uuid.UUID) ([]*entity.Rating, error) {
	return r.list(ctx, r.db.Where("rater_id = ?", raterID).Order("created_at DESC"))
}

func (r *ratingRepo) ListStats(ctx context.Context) ([]entity.RatingStats, error) {
	var stats []entity.RatingStats
	err := r.db.WithContext(ctx).Model(&ratingModel{}).
		Select("suggestion_id, SUM(score) AS sum, COUNT(*) AS count").
		Group("suggestion_id").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get rating stats: %w", err)
	}
	return stats, nil
}

func (r *ratingRepo) CountByRater(ctx context.Context, raterID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ratingModel{}).Where("rater_id = ?", raterID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return int(count), nil
}
