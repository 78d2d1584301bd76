package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

type suggestionService struct {
	dm    contract.DataManager
	queue contract.QueueService
}

func newSuggestion(dm contract.DataManager, queue contract.QueueService) *suggestionService {
	return &suggestionService{
		dm:    dm,
		queue: queue,
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.InvalidArgument("title is required")
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return "", domain.InvalidArgument("title must be at most %d characters", domain.MaxTitleLength)
	}
	return title, nil
}

func (s *suggestionService) Create(ctx context.Context, actorID uuid.UUID, input entity.CreateSuggestionInput) (uuid.UUID, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return uuid.Nil, err
	}

	suggestion := &entity.Suggestion{
		ID:           uuid.New(),
		Title:        title,
		IsHidden:     input.IsHidden,
		SubmitterID:  actorID,
		ExternalLink: input.ExternalLink,
		Status:       entity.StatusPending,
	}

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		member, err := dm.Member().GetByID(ctx, actorID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.NotFound("member not found")
		}

		suggestion.Order, err = dm.Suggestion().NextOrder(ctx, actorID)
		if err != nil {
			return err
		}

		return dm.Suggestion().Create(ctx, suggestion)
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.queue.UpdateQueue(ctx); err != nil {
		return suggestion.ID, err
	}

	return suggestion.ID, nil
}

// getOwned loads a suggestion and checks that actorID submitted it.
func getOwned(ctx context.Context, dm contract.DataManager, actorID, suggestionID uuid.UUID, action string) (*entity.Suggestion, error) {
	suggestion, err := dm.Suggestion().GetByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, domain.NotFound("suggestion not found")
	}
	if suggestion.SubmitterID != actorID {
		return nil, domain.Forbidden("you can only %s your own suggestions", action)
	}
	return suggestion, nil
}

func (s *suggestionService) Update(ctx context.Context, actorID, suggestionID uuid.UUID, input entity.UpdateSuggestionInput) error {
	title, err := validateTitle(input.Title)
	if err != nil {
		return err
	}

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		suggestion, err := getOwned(ctx, dm, actorID, suggestionID, "update")
		if err != nil {
			return err
		}

		suggestion.Title = title
		suggestion.IsHidden = input.IsHidden
		suggestion.ExternalLink = input.ExternalLink

		return dm.Suggestion().Update(ctx, suggestion)
	})
	if err != nil {
		return err
	}

	return s.queue.UpdateQueue(ctx)
}

func (s *suggestionService) Delete(ctx context.Context, actorID, suggestionID uuid.UUID) error {
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		suggestion, err := getOwned(ctx, dm, actorID, suggestionID, "delete")
		if err != nil {
			return err
		}

		if err := dm.Suggestion().Delete(ctx, suggestion.ID); err != nil {
			return err
		}

		return compactOrders(ctx, dm, actorID)
	})
	if err != nil {
		return err
	}

	return s.queue.UpdateQueue(ctx)
}

// Reorder swaps a pending suggestion with its pending neighbour. Scheduling
// fields are never touched, so the queue is not updated.
func (s *suggestionService) Reorder(ctx context.Context, actorID, suggestionID uuid.UUID, direction string) error {
	direction = strings.ToLower(strings.TrimSpace(direction))
	if direction != domain.DirectionUp && direction != domain.DirectionDown {
		return domain.InvalidArgument("invalid direction %q", direction)
	}

	return s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		suggestion, err := getOwned(ctx, dm, actorID, suggestionID, "reorder")
		if err != nil {
			return err
		}
		if suggestion.Status != entity.StatusPending {
			return domain.InvalidArgument("can only reorder pending suggestions")
		}

		pending, err := dm.Suggestion().ListByMemberAndStatus(ctx, actorID, entity.StatusPending)
		if err != nil {
			return err
		}

		neighbor := findNeighbor(pending, suggestion, direction)
		if neighbor == nil {
			return domain.InvalidArgument("cannot move %s", direction)
		}

		if err := dm.Suggestion().SetOrder(ctx, suggestion.ID, neighbor.Order); err != nil {
			return err
		}
		return dm.Suggestion().SetOrder(ctx, neighbor.ID, suggestion.Order)
	})
}

// findNeighbor returns the pending suggestion with the closest lower (up) or
// higher (down) Order than target.
func findNeighbor(pending []*entity.Suggestion, target *entity.Suggestion, direction string) *entity.Suggestion {
	var neighbor *entity.Suggestion
	for _, p := range pending {
		if p.ID == target.ID {
			continue
		}
		switch direction {
		case domain.DirectionUp:
			if p.Order < target.Order && (neighbor == nil || p.Order > neighbor.Order) {
				neighbor = p
			}
		case domain.DirectionDown:
			if p.Order > target.Order && (neighbor == nil || p.Order < neighbor.Order) {
				neighbor = p
			}
		}
	}
	return neighbor
}

func (s *suggestionService) ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Suggestion, error) {
	suggestions, err := s.dm.Suggestion().ListByMember(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}

func (s *suggestionService) Get(ctx context.Context, suggestionID uuid.UUID) (*entity.SuggestionDetail, error) {
	suggestion, err := s.dm.Suggestion().GetByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, domain.NotFound("suggestion not found")
	}

	sum, err := newSummarizer(ctx, s.dm)
	if err != nil {
		return nil, err
	}

	ratings, err := s.dm.Rating().ListBySuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	views := make([]entity.RatingView, 0, len(ratings))
	for _, r := range ratings {
		view := sum.ratingView(r)
		view.SuggestionTitle = suggestion.Title
		view.FinishedAt = suggestion.FinishedAt
		views = append(views, view)
	}
	sortRatingsForDetail(views)

	return &entity.SuggestionDetail{
		SuggestionSummary: sum.summary(suggestion),
		Ratings:           views,
	}, nil
}
