package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

// maxTickPasses bounds the expire/promote/rebuild loop of a single tick.
const maxTickPasses = 128

type queueService struct {
	dm        contract.DataManager
	locker    contract.QueueLocker
	publisher contract.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newQueue(dm contract.DataManager, locker contract.QueueLocker, publisher contract.EventPublisher, logger *slog.Logger) *queueService {
	return &queueService{
		dm:        dm,
		locker:    locker,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// tick carries the state of one UpdateQueue run.
type tick struct {
	dm      contract.DataManager
	now     time.Time
	members map[uuid.UUID]*entity.Member
	events  []entity.QueueEvent
}

// UpdateQueue expires the active suggestion, promotes the next queued one and
// rebuilds the queue windows. Passes repeat until nothing changes so that a
// second call with the same clock is a no-op. All changes of a tick commit in
// one transaction; events are published after the commit.
func (s *queueService) UpdateQueue(ctx context.Context) error {
	release, err := s.locker.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire queue lock: %w", err)
	}
	defer release()

	now := s.now().UTC()
	var events []entity.QueueEvent

	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		t := &tick{dm: dm, now: now, members: make(map[uuid.UUID]*entity.Member)}

		for pass := 1; ; pass++ {
			changed, err := t.runPass(ctx)
			if err != nil {
				return err
			}
			if !changed {
				break
			}
			if pass == maxTickPasses {
				s.logger.Warn("queue did not settle within a tick", "event", "update_queue", "passes", pass)
				break
			}
		}

		events = t.events
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update queue: %w", err)
	}

	if len(events) > 0 {
		s.logger.Info("queue updated", "event", "update_queue", "changes", len(events))
		s.publish(ctx, events)
	}

	return nil
}

func (s *queueService) publish(ctx context.Context, events []entity.QueueEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events); err != nil {
		s.logger.Error("failed to publish queue events", "event", "update_queue", "error", err)
	}
}

func (t *tick) runPass(ctx context.Context) (bool, error) {
	expired, err := t.expire(ctx)
	if err != nil {
		return false, err
	}

	promoted, err := t.promote(ctx)
	if err != nil {
		return false, err
	}

	rebuilt, err := t.rebuild(ctx)
	if err != nil {
		return false, err
	}

	return expired || promoted || rebuilt, nil
}

// expire finishes the active suggestion once its window has closed.
func (t *tick) expire(ctx context.Context) (bool, error) {
	active, err := t.dm.Suggestion().GetActiveSuggestion(ctx)
	if err != nil {
		return false, err
	}
	if active == nil || !canFinish(active, t.now) {
		return false, nil
	}

	if err := t.transition(ctx, active, entity.StatusFinished, nil, nil); err != nil {
		return false, err
	}
	if err := compactOrders(ctx, t.dm, active.SubmitterID); err != nil {
		return false, err
	}

	return true, nil
}

// promote activates the earliest queued suggestion whose window has opened
// while nothing else is active.
func (t *tick) promote(ctx context.Context) (bool, error) {
	active, err := t.dm.Suggestion().GetActiveSuggestion(ctx)
	if err != nil {
		return false, err
	}
	if active != nil {
		return false, nil
	}

	queued, err := t.dm.Suggestion().ListQueued(ctx)
	if err != nil {
		return false, err
	}

	for _, next := range queued {
		if next.ActiveAt == nil {
			continue
		}
		if !canActivate(next, nil, t.now) {
			return false, nil
		}
		if err := t.transition(ctx, next, entity.StatusActive, nil, nil); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// rebuild assigns consecutive windows to the first unfinished suggestion of
// every eligible member, in turn order from the current anchor.
func (t *tick) rebuild(ctx context.Context) (bool, error) {
	anchor, err := t.dm.Suggestion().MostRecentFinishedOrActive(ctx)
	if err != nil {
		return false, err
	}

	refPosition := 1
	refTime := domain.StartOfDay(t.now)
	if anchor != nil {
		submitter, err := t.member(ctx, anchor.SubmitterID)
		if err != nil {
			return false, err
		}
		if submitter != nil {
			refPosition = submitter.RotationPosition + 1
		}
		if anchor.FinishedAt != nil {
			refTime = anchor.FinishedAt.UTC()
		}
	}

	members, err := t.dm.Member().ListEligibleMembers(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		t.members[m.ID] = m
	}

	active, err := t.dm.Suggestion().GetActiveSuggestion(ctx)
	if err != nil {
		return false, err
	}

	changed := false
	assigned := make(map[uuid.UUID]bool)

	for _, member := range TurnOrder(members, refPosition) {
		if active != nil && active.SubmitterID == member.ID {
			continue
		}

		unfinished, err := t.dm.Suggestion().ListPendingForMember(ctx, member.ID)
		if err != nil {
			return false, err
		}
		if len(unfinished) == 0 {
			continue
		}

		next := unfinished[0]
		start := refTime
		end := start.Add(domain.PlayPeriod)
		refTime = end
		assigned[next.ID] = true

		status := entity.StatusQueued
		if active == nil && !t.now.Before(start) && t.now.Before(end) {
			status = entity.StatusActive
		}

		if next.SameWindow(status, start, end) {
			if status == entity.StatusActive {
				active = next
			}
			continue
		}

		if err := t.transition(ctx, next, status, &start, &end); err != nil {
			return false, err
		}
		changed = true

		if status == entity.StatusActive {
			active = next
		}
	}

	// Queued suggestions the rotation no longer reaches go back to pending.
	queued, err := t.dm.Suggestion().ListQueued(ctx)
	if err != nil {
		return false, err
	}
	for _, q := range queued {
		if assigned[q.ID] {
			continue
		}
		q.Status = entity.StatusPending
		q.ActiveAt = nil
		q.FinishedAt = nil
		if err := t.dm.Suggestion().ForceState(ctx, q); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}

// transition commits a status change and records the matching event.
// activeAt and finishedAt may be nil to keep the stored window.
func (t *tick) transition(ctx context.Context, s *entity.Suggestion, status entity.SuggestionStatus, activeAt, finishedAt *time.Time) error {
	if err := t.dm.Suggestion().CommitTransition(ctx, s.ID, status, activeAt, finishedAt); err != nil {
		return err
	}

	previous := s.Status
	s.Status = status
	if activeAt != nil {
		s.ActiveAt = activeAt
	}
	if finishedAt != nil {
		s.FinishedAt = finishedAt
	}

	eventType := eventFor(previous, status)
	if eventType == "" {
		return nil
	}

	submitter, err := t.member(ctx, s.SubmitterID)
	if err != nil {
		return err
	}

	event := entity.QueueEvent{
		Type:         eventType,
		SuggestionID: s.ID,
		Title:        s.Title,
		SubmitterID:  s.SubmitterID,
		Status:       status,
		StatusName:   status.String(),
		ActiveAt:     s.ActiveAt,
		FinishedAt:   s.FinishedAt,
		OccurredAt:   t.now,
	}
	if submitter != nil {
		event.SubmitterName = submitter.Name
	}
	t.events = append(t.events, event)

	return nil
}

func (t *tick) member(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	if m, ok := t.members[id]; ok {
		return m, nil
	}

	m, err := t.dm.Member().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m != nil {
		t.members[id] = m
	}
	return m, nil
}

// TurnOrder sorts members cyclically starting at refPosition: members at or
// after it come first, then the ones before it, both by ascending position.
func TurnOrder(members []*entity.Member, refPosition int) []*entity.Member {
	ordered := make([]*entity.Member, 0, len(members))
	for _, m := range members {
		if m.InRotation() {
			ordered = append(ordered, m)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		iAfter := ordered[i].RotationPosition >= refPosition
		jAfter := ordered[j].RotationPosition >= refPosition
		if iAfter != jAfter {
			return iAfter
		}
		return ordered[i].RotationPosition < ordered[j].RotationPosition
	})

	return ordered
}

// compactOrders renumbers the member's unfinished suggestions 1..N.
func compactOrders(ctx context.Context, dm contract.DataManager, memberID uuid.UUID) error {
	unfinished, err := dm.Suggestion().ListPendingForMember(ctx, memberID)
	if err != nil {
		return err
	}

	for i, s := range unfinished {
		order := i + 1
		if s.Order == order {
			continue
		}
		if err := dm.Suggestion().SetOrder(ctx, s.ID, order); err != nil {
			return err
		}
		s.Order = order
	}

	return nil
}
