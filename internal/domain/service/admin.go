package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

type adminService struct {
	dm    contract.DataManager
	queue contract.QueueService
}

func newAdmin(dm contract.DataManager, queue contract.QueueService) *adminService {
	return &adminService{
		dm:    dm,
		queue: queue,
	}
}

// ForceTransition writes status, window and cycle number directly. It can
// move a suggestion backwards or leave more than one active until the next
// tick settles the queue.
func (s *adminService) ForceTransition(ctx context.Context, suggestionID uuid.UUID, input entity.ForceStateInput) error {
	if err := validateForcedState(input); err != nil {
		return err
	}

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		suggestion, err := dm.Suggestion().GetByID(ctx, suggestionID)
		if err != nil {
			return err
		}
		if suggestion == nil {
			return domain.NotFound("suggestion not found")
		}

		previous := suggestion.Status
		suggestion.Status = input.Status
		suggestion.ActiveAt = input.ActiveAt
		suggestion.FinishedAt = input.FinishedAt
		suggestion.CycleNumber = input.CycleNumber

		if err := dm.Suggestion().ForceState(ctx, suggestion); err != nil {
			return err
		}

		// Entering or leaving Finished changes the member's unfinished set.
		if (previous == entity.StatusFinished) != (input.Status == entity.StatusFinished) {
			return compactOrders(ctx, dm, suggestion.SubmitterID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.queue.UpdateQueue(ctx)
}

func (s *adminService) RefreshQueue(ctx context.Context) error {
	return s.queue.UpdateQueue(ctx)
}

func (s *adminService) AddMember(ctx context.Context, input entity.AddMemberInput) (uuid.UUID, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return uuid.Nil, domain.InvalidArgument("member name is required")
	}
	if input.RotationPosition < 0 {
		return uuid.Nil, domain.InvalidArgument("rotation position must not be negative")
	}

	member := &entity.Member{
		ID:               uuid.New(),
		Name:             name,
		RotationPosition: input.RotationPosition,
		RegisteredAt:     time.Now().UTC(),
	}
	if err := s.dm.Member().Create(ctx, member); err != nil {
		return uuid.Nil, err
	}

	return member.ID, nil
}

func (s *adminService) SetRotationPosition(ctx context.Context, memberID uuid.UUID, position int) error {
	if position < 0 {
		return domain.InvalidArgument("rotation position must not be negative")
	}

	member, err := s.dm.Member().GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.NotFound("member not found")
	}

	if err := s.dm.Member().SetRotationPosition(ctx, memberID, position); err != nil {
		return err
	}

	return s.queue.UpdateQueue(ctx)
}

func (s *adminService) ListMembers(ctx context.Context) ([]*entity.Member, error) {
	members, err := s.dm.Member().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *adminService) ListAllSuggestions(ctx context.Context) ([]*entity.Suggestion, error) {
	suggestions, err := s.dm.Suggestion().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}
