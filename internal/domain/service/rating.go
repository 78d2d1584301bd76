package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/diegoclair/game-club-rotation/internal/domain/rating"
	"github.com/google/uuid"
)

type ratingService struct {
	dm contract.DataManager
}

func newRating(dm contract.DataManager) *ratingService {
	return &ratingService{dm: dm}
}

func validateScore(score int) error {
	if !rating.ValidScore(score) {
		return domain.InvalidArgument("score must be between %d and %d", rating.MinScore, rating.MaxScore)
	}
	return nil
}

func normalizeComment(comment *string) (*string, error) {
	if comment == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxCommentLength {
		return nil, domain.InvalidArgument("comment must be at most %d characters", domain.MaxCommentLength)
	}
	return &trimmed, nil
}

// Create records the actor's rating. Checks run in order: the suggestion
// must exist, the actor must not have rated it yet, the score must be valid.
func (s *ratingService) Create(ctx context.Context, actorID uuid.UUID, input entity.RatingInput) (uuid.UUID, error) {
	suggestion, err := s.dm.Suggestion().GetByID(ctx, input.SuggestionID)
	if err != nil {
		return uuid.Nil, err
	}
	if suggestion == nil {
		return uuid.Nil, domain.NotFound("suggestion not found")
	}

	existing, err := s.dm.Rating().GetBySuggestionAndRater(ctx, input.SuggestionID, actorID)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Nil, domain.Conflict("you have already rated this suggestion")
	}

	if err := validateScore(input.Score); err != nil {
		return uuid.Nil, err
	}

	comment, err := normalizeComment(input.Comment)
	if err != nil {
		return uuid.Nil, err
	}

	r := &entity.Rating{
		ID:           uuid.New(),
		SuggestionID: input.SuggestionID,
		RaterID:      actorID,
		Score:        input.Score,
		Comment:      comment,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index still guards against a concurrent duplicate.
	if err := s.dm.Rating().Create(ctx, r); err != nil {
		return uuid.Nil, err
	}

	return r.ID, nil
}

func (s *ratingService) Update(ctx context.Context, actorID, ratingID uuid.UUID, score int, comment *string) error {
	r, err := s.dm.Rating().GetByID(ctx, ratingID)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.NotFound("rating not found")
	}
	if r.RaterID != actorID {
		return domain.Forbidden("you can only update your own ratings")
	}

	if err := validateScore(score); err != nil {
		return err
	}

	r.Comment, err = normalizeComment(comment)
	if err != nil {
		return err
	}
	r.Score = score

	return s.dm.Rating().Update(ctx, r)
}

func (s *ratingService) ListMine(ctx context.Context, actorID uuid.UUID) ([]entity.RatingView, error) {
	ratings, err := s.dm.Rating().ListByRater(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	views := make([]entity.RatingView, 0, len(ratings))
	for _, r := range ratings {
		view := entity.RatingView{
			Rating: *r,
			Label:  rating.Label(r.Score),
		}

		suggestion, err := s.dm.Suggestion().GetByID(ctx, r.SuggestionID)
		if err != nil {
			return nil, err
		}
		if suggestion != nil {
			view.SuggestionTitle = suggestion.Title
			view.FinishedAt = suggestion.FinishedAt
		}

		views = append(views, view)
	}

	return views, nil
}

// ListUnrated returns the suggestions finished after the actor registered
// that the actor has not rated yet, newest first.
func (s *ratingService) ListUnrated(ctx context.Context, actorID uuid.UUID) ([]entity.SuggestionSummary, error) {
	member, err := s.dm.Member().GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.NotFound("member not found")
	}

	finished, err := s.dm.Suggestion().ListFinishedAfter(ctx, member.RegisteredAt)
	if err != nil {
		return nil, err
	}

	rated, err := s.dm.Rating().ListByRater(ctx, actorID)
	if err != nil {
		return nil, err
	}
	ratedIDs := make(map[uuid.UUID]bool, len(rated))
	for _, r := range rated {
		ratedIDs[r.SuggestionID] = true
	}

	var unrated []*entity.Suggestion
	for _, suggestion := range finished {
		if !ratedIDs[suggestion.ID] {
			unrated = append(unrated, suggestion)
		}
	}

	sum, err := newSummarizer(ctx, s.dm)
	if err != nil {
		return nil, err
	}

	return sum.summaries(unrated), nil
}
