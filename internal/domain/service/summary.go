package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/diegoclair/game-club-rotation/internal/domain/rating"
	"github.com/google/uuid"
)

// summarizer resolves submitter names and rating aggregates for listings.
type summarizer struct {
	members map[uuid.UUID]*entity.Member
	stats   map[uuid.UUID]entity.RatingStats
}

func newSummarizer(ctx context.Context, dm contract.DataManager) (*summarizer, error) {
	members, err := dm.Member().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	stats, err := dm.Rating().ListStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating stats: %w", err)
	}

	s := &summarizer{
		members: make(map[uuid.UUID]*entity.Member, len(members)),
		stats:   make(map[uuid.UUID]entity.RatingStats, len(stats)),
	}
	for _, m := range members {
		s.members[m.ID] = m
	}
	for _, st := range stats {
		s.stats[st.SuggestionID] = st
	}

	return s, nil
}

func (s *summarizer) memberName(id uuid.UUID) string {
	if m, ok := s.members[id]; ok {
		return m.Name
	}
	return ""
}

func (s *summarizer) summary(suggestion *entity.Suggestion) entity.SuggestionSummary {
	st := s.stats[suggestion.ID]
	return entity.SuggestionSummary{
		Suggestion:    *suggestion,
		SubmitterName: s.memberName(suggestion.SubmitterID),
		AverageRating: rating.AverageOf(st.Sum, st.Count),
		RatingsCount:  st.Count,
	}
}

func (s *summarizer) summaries(suggestions []*entity.Suggestion) []entity.SuggestionSummary {
	result := make([]entity.SuggestionSummary, 0, len(suggestions))
	for _, suggestion := range suggestions {
		result = append(result, s.summary(suggestion))
	}
	return result
}

func (s *summarizer) ratingView(r *entity.Rating) entity.RatingView {
	return entity.RatingView{
		Rating:    *r,
		RaterName: s.memberName(r.RaterID),
		Label:     rating.Label(r.Score),
	}
}

// sortRatingsForDetail puts commented ratings first, then orders by creation.
func sortRatingsForDetail(views []entity.RatingView) {
	sort.SliceStable(views, func(i, j int) bool {
		ci := hasComment(views[i].Comment)
		cj := hasComment(views[j].Comment)
		if ci != cj {
			return ci
		}
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})
}

func hasComment(comment *string) bool {
	return comment != nil && strings.TrimSpace(*comment) != ""
}
