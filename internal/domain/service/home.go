package service

import (
	"context"
	"sort"

	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
)

// Home groups the active, queued and finished suggestions.
func (s *queueService) Home(ctx context.Context) (*entity.HomePage, error) {
	sum, err := newSummarizer(ctx, s.dm)
	if err != nil {
		return nil, err
	}

	active, err := s.dm.Suggestion().GetActiveSuggestion(ctx)
	if err != nil {
		return nil, err
	}

	queued, err := s.dm.Suggestion().ListQueued(ctx)
	if err != nil {
		return nil, err
	}

	finished, err := s.dm.Suggestion().ListFinished(ctx)
	if err != nil {
		return nil, err
	}

	page := &entity.HomePage{
		Queued:   sum.summaries(queued),
		Finished: sum.summaries(finished),
	}
	if active != nil {
		summary := sum.summary(active)
		page.Active = &summary
	}

	return page, nil
}

// Floating lists the visible pending suggestions in the order their
// submitters will be reached, counting from the submitter of the last
// queued suggestion.
func (s *queueService) Floating(ctx context.Context) ([]entity.SuggestionSummary, error) {
	sum, err := newSummarizer(ctx, s.dm)
	if err != nil {
		return nil, err
	}

	queued, err := s.dm.Suggestion().ListQueued(ctx)
	if err != nil {
		return nil, err
	}

	cycleStart := 0
	if len(queued) > 0 {
		if m, ok := sum.members[queued[len(queued)-1].SubmitterID]; ok {
			cycleStart = m.RotationPosition
		}
	}

	floating, err := s.dm.Suggestion().ListFloating(ctx)
	if err != nil {
		return nil, err
	}

	position := func(suggestion *entity.Suggestion) int {
		if m, ok := sum.members[suggestion.SubmitterID]; ok {
			return m.RotationPosition
		}
		return 0
	}

	maxPosition := 0
	for _, f := range floating {
		if p := position(f); p > maxPosition {
			maxPosition = p
		}
	}

	cycle := maxPosition + 1
	distance := func(suggestion *entity.Suggestion) int {
		return ((position(suggestion)-cycleStart)%cycle + cycle) % cycle
	}

	sort.SliceStable(floating, func(i, j int) bool {
		di, dj := distance(floating[i]), distance(floating[j])
		if di != dj {
			return di < dj
		}
		return floating[i].Order < floating[j].Order
	})

	return sum.summaries(floating), nil
}
