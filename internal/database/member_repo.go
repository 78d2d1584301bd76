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

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *entity.Member) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.RegisteredAt.IsZero() {
		member.RegisteredAt = time.Now().UTC()
	}

	query := `
		INSERT INTO members (id, name, rotation_position, registered_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.RotationPosition,
		member.RegisteredAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create member: %w", errDuplicate("member name", member.Name))
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

func (r *memberRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	member := &entity.Member{}
	query := `
		SELECT id, name, rotation_position, registered_at
		FROM members
		WHERE id = ?
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.RotationPosition,
		&member.RegisteredAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	member.RegisteredAt = member.RegisteredAt.UTC()
	return member, nil
}

func (r *memberRepo) ListEligibleMembers(ctx context.Context) ([]*entity.Member, error) {
	query := `
		SELECT id, name, rotation_position, registered_at
		FROM members
		WHERE rotation_position > 0
		ORDER BY rotation_position ASC, registered_at ASC
	`
	return r.list(ctx, query)
}

func (r *memberRepo) ListAll(ctx context.Context) ([]*entity.Member, error) {
	query := `
		SELECT id, name, rotation_position, registered_at
		FROM members
		ORDER BY rotation_position ASC, name ASC
	`
	return r.list(ctx, query)
}

func (r *memberRepo) list(ctx context.Context, query string, args ...interface{}) ([]*entity.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		member := &entity.Member{}
		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.RotationPosition,
			&member.RegisteredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		member.RegisteredAt = member.RegisteredAt.UTC()
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

func (r *memberRepo) SetRotationPosition(ctx context.Context, id uuid.UUID, position int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE members SET rotation_position = ? WHERE id = ?`, position, id)
	if err != nil {
		return fmt.Errorf("failed to set rotation position: %w", err)
	}

	return nil
}
