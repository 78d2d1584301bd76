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
)

type memberRepo struct {
	db *gorm.DB
}

func newMemberRepo(db *gorm.DB) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *entity.Member) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.RegisteredAt.IsZero() {
		member.RegisteredAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(toMemberModel(member)).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create member: %w", domain.Conflict("member name %q already exists", member.Name))
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *memberRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var models []memberModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return models[0].toEntity(), nil
}

func (r *memberRepo) list(ctx context.Context, query *gorm.DB) ([]*entity.Member, error) {
	var models []memberModel
	if err := query.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	members := make([]*entity.Member, 0, len(models))
	for i := range models {
		members = append(members, models[i].toEntity())
	}
	return members, nil
}

func (r *memberRepo) ListEligibleMembers(ctx context.Context) ([]*entity.Member, error) {
	return r.list(ctx, r.db.Where("rotation_position > 0").Order("rotation_position ASC, registered_at ASC"))
}

func (r *memberRepo) ListAll(ctx context.Context) ([]*entity.Member, error) {
	return r.list(ctx, r.db.Order("rotation_position ASC, name ASC"))
}

func (r *memberRepo) SetRotationPosition(ctx context.Context, id uuid.UUID, position int) error {
	err := r.db.WithContext(ctx).Model(&memberModel{}).Where("id = ?", id).Update("rotation_position", position).Error
	if err != nil {
		return fmt.Errorf("failed to set rotation position: %w", err)
	}
	return nil
}
