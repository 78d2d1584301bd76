package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/database"
	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/diegoclair/game-club-rotation/internal/lock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.QueueEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, events []entity.QueueEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) take() []entity.QueueEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := p.events
	p.events = nil
	return events
}

type queueEnv struct {
	t         *testing.T
	ctx       context.Context
	dm        contract.DataManager
	queue     *queueService
	publisher *recordingPublisher
	now       time.Time
}

// day is the start of the day the tests run on; the clock starts at noon.
var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newQueueEnv(t *testing.T) *queueEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	env := &queueEnv{
		t:         t,
		ctx:       context.Background(),
		dm:        database.NewInstance(db),
		publisher: &recordingPublisher{},
		now:       day.Add(12 * time.Hour),
	}
	env.queue = newQueue(env.dm, lock.NewLocalLocker(), env.publisher, testLogger())
	env.queue.now = func() time.Time { return env.now }

	return env
}

func (e *queueEnv) member(name string, position int) *entity.Member {
	e.t.Helper()

	m := &entity.Member{Name: name, RotationPosition: position, RegisteredAt: day.Add(-30 * 24 * time.Hour)}
	require.NoError(e.t, e.dm.Member().Create(e.ctx, m))
	return m
}

func (e *queueEnv) suggestion(member *entity.Member, title string) *entity.Suggestion {
	e.t.Helper()

	order, err := e.dm.Suggestion().NextOrder(e.ctx, member.ID)
	require.NoError(e.t, err)

	s := &entity.Suggestion{Title: title, Order: order, SubmitterID: member.ID, Status: entity.StatusPending}
	require.NoError(e.t, e.dm.Suggestion().Create(e.ctx, s))
	return s
}

func (e *queueEnv) get(id uuid.UUID) *entity.Suggestion {
	e.t.Helper()

	s, err := e.dm.Suggestion().GetByID(e.ctx, id)
	require.NoError(e.t, err)
	require.NotNil(e.t, s)
	return s
}

func (e *queueEnv) tick() {
	e.t.Helper()
	require.NoError(e.t, e.queue.UpdateQueue(e.ctx))
}

func (e *queueEnv) assertSingleActive() {
	e.t.Helper()

	all, err := e.dm.Suggestion().ListAll(e.ctx)
	require.NoError(e.t, err)

	active := 0
	for _, s := range all {
		if s.Status == entity.StatusActive {
			active++
		}
	}
	assert.LessOrEqual(e.t, active, 1, "more than one active suggestion")
}

func assertWindow(t *testing.T, s *entity.Suggestion, status entity.SuggestionStatus, start time.Time) {
	t.Helper()

	assert.Equal(t, status, s.Status, s.Title)
	require.NotNil(t, s.ActiveAt, s.Title)
	require.NotNil(t, s.FinishedAt, s.Title)
	assert.True(t, s.ActiveAt.Equal(start), "%s starts at %s, want %s", s.Title, s.ActiveAt, start)
	assert.True(t, s.FinishedAt.Equal(start.Add(domain.PlayPeriod)), "%s ends at %s", s.Title, s.FinishedAt)
}

func TestTurnOrder(t *testing.T) {
	m1 := &entity.Member{Name: "one", RotationPosition: 1}
	m2 := &entity.Member{Name: "two", RotationPosition: 2}
	m3 := &entity.Member{Name: "three", RotationPosition: 3}
	out := &entity.Member{Name: "out", RotationPosition: 0}

	tests := []struct {
		name        string
		refPosition int
		want        []*entity.Member
	}{
		{name: "Should start at reference and wrap around", refPosition: 2, want: []*entity.Member{m2, m3, m1}},
		{name: "Should keep natural order from the first position", refPosition: 1, want: []*entity.Member{m1, m2, m3}},
		{name: "Should wrap when reference is past the last position", refPosition: 4, want: []*entity.Member{m1, m2, m3}},
		{name: "Should start at the last position", refPosition: 3, want: []*entity.Member{m3, m1, m2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TurnOrder([]*entity.Member{m1, out, m3, m2}, tt.refPosition)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateQueue_FirstTick(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	carol := env.member("carol", 3)

	a1 := env.suggestion(alice, "A1")
	a2 := env.suggestion(alice, "A2")
	b1 := env.suggestion(bob, "B1")
	c1 := env.suggestion(carol, "C1")

	env.tick()

	assertWindow(t, env.get(a1.ID), entity.StatusActive, day)
	assertWindow(t, env.get(b1.ID), entity.StatusQueued, day.Add(domain.PlayPeriod))
	assertWindow(t, env.get(c1.ID), entity.StatusQueued, day.Add(2*domain.PlayPeriod))
	assert.Equal(t, entity.StatusPending, env.get(a2.ID).Status)
	env.assertSingleActive()

	events := env.publisher.take()
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventSuggestionActivated, events[0].Type)
	assert.Equal(t, "alice", events[0].SubmitterName)
	assert.Equal(t, domain.EventSuggestionQueued, events[1].Type)
	assert.Equal(t, domain.EventSuggestionQueued, events[2].Type)
}

func TestUpdateQueue_Idempotent(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	env.suggestion(alice, "A1")
	env.suggestion(bob, "B1")

	env.tick()
	before, err := env.dm.Suggestion().ListAll(env.ctx)
	require.NoError(t, err)
	env.publisher.take()

	env.tick()
	after, err := env.dm.Suggestion().ListAll(env.ctx)
	require.NoError(t, err)

	assert.Empty(t, env.publisher.take())
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Status, after[i].Status)
		assert.True(t, before[i].ActiveAt.Equal(*after[i].ActiveAt))
		assert.True(t, before[i].FinishedAt.Equal(*after[i].FinishedAt))
	}
}

func TestUpdateQueue_Expiry(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	carol := env.member("carol", 3)

	a1 := env.suggestion(alice, "A1")
	a2 := env.suggestion(alice, "A2")
	b1 := env.suggestion(bob, "B1")
	c1 := env.suggestion(carol, "C1")

	env.tick()
	env.publisher.take()

	env.now = day.Add(domain.PlayPeriod).Add(time.Hour)
	env.tick()

	finished := env.get(a1.ID)
	assert.Equal(t, entity.StatusFinished, finished.Status)
	assertWindow(t, env.get(b1.ID), entity.StatusActive, day.Add(domain.PlayPeriod))
	assertWindow(t, env.get(c1.ID), entity.StatusQueued, day.Add(2*domain.PlayPeriod))

	next := env.get(a2.ID)
	assertWindow(t, next, entity.StatusQueued, day.Add(3*domain.PlayPeriod))
	assert.Equal(t, 1, next.Order)
	env.assertSingleActive()

	events := env.publisher.take()
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventSuggestionFinished, events[0].Type)
	assert.Equal(t, a1.ID, events[0].SuggestionID)
	assert.Equal(t, domain.EventSuggestionActivated, events[1].Type)
	assert.Equal(t, b1.ID, events[1].SuggestionID)
	assert.Equal(t, domain.EventSuggestionQueued, events[2].Type)
	assert.Equal(t, a2.ID, events[2].SuggestionID)
}

func TestUpdateQueue_CatchUpAfterDowntime(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	carol := env.member("carol", 3)

	a1 := env.suggestion(alice, "A1")
	a2 := env.suggestion(alice, "A2")
	b1 := env.suggestion(bob, "B1")
	c1 := env.suggestion(carol, "C1")

	env.tick()

	// Skip past bob's whole window into carol's.
	env.now = day.Add(2*domain.PlayPeriod + 2*24*time.Hour)
	env.tick()

	assert.Equal(t, entity.StatusFinished, env.get(a1.ID).Status)
	assert.Equal(t, entity.StatusFinished, env.get(b1.ID).Status)
	assertWindow(t, env.get(c1.ID), entity.StatusActive, day.Add(2*domain.PlayPeriod))
	assertWindow(t, env.get(a2.ID), entity.StatusQueued, day.Add(3*domain.PlayPeriod))
	env.assertSingleActive()

	env.publisher.take()
	env.tick()
	assert.Empty(t, env.publisher.take())
}

func TestUpdateQueue_Promotion(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	a1 := env.suggestion(alice, "A1")

	start := day.Add(-24 * time.Hour)
	end := start.Add(domain.PlayPeriod)
	a1.Status = entity.StatusQueued
	a1.ActiveAt = &start
	a1.FinishedAt = &end
	require.NoError(t, env.dm.Suggestion().ForceState(env.ctx, a1))

	env.tick()

	assertWindow(t, env.get(a1.ID), entity.StatusActive, start)
}

func TestUpdateQueue_NoPromotionBeforeWindowOpens(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	a1 := env.suggestion(alice, "A1")
	b1 := env.suggestion(bob, "B1")

	// A finished suggestion whose window ends tomorrow anchors the rotation.
	start := day.Add(-13 * 24 * time.Hour)
	end := day.Add(24 * time.Hour)
	a1.Status = entity.StatusFinished
	a1.ActiveAt = &start
	a1.FinishedAt = &end
	require.NoError(t, env.dm.Suggestion().ForceState(env.ctx, a1))

	env.tick()

	assertWindow(t, env.get(b1.ID), entity.StatusQueued, end)
	env.assertSingleActive()
}

func TestUpdateQueue_SkipsMembersWithoutSuggestions(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	env.member("bob", 2)
	carol := env.member("carol", 3)
	env.member("observer", 0)

	a1 := env.suggestion(alice, "A1")
	c1 := env.suggestion(carol, "C1")

	env.tick()

	assertWindow(t, env.get(a1.ID), entity.StatusActive, day)
	assertWindow(t, env.get(c1.ID), entity.StatusQueued, day.Add(domain.PlayPeriod))
}

func TestUpdateQueue_HiddenSuggestionsParticipate(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	env.suggestion(alice, "A1")
	b1 := env.suggestion(bob, "B1")

	b1.IsHidden = true
	require.NoError(t, env.dm.Suggestion().Update(env.ctx, b1))

	env.tick()

	assertWindow(t, env.get(b1.ID), entity.StatusQueued, day.Add(domain.PlayPeriod))
}

func TestUpdateQueue_MemberLeavesRotation(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	carol := env.member("carol", 3)
	env.suggestion(alice, "A1")
	b1 := env.suggestion(bob, "B1")
	c1 := env.suggestion(carol, "C1")

	env.tick()
	require.NoError(t, env.dm.Member().SetRotationPosition(env.ctx, bob.ID, 0))
	env.tick()

	left := env.get(b1.ID)
	assert.Equal(t, entity.StatusPending, left.Status)
	assert.Nil(t, left.ActiveAt)
	assertWindow(t, env.get(c1.ID), entity.StatusQueued, day.Add(domain.PlayPeriod))
}

func TestUpdateQueue_ConcurrentTicks(t *testing.T) {
	env := newQueueEnv(t)
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		m := env.member(name, i+1)
		env.suggestion(m, name+"-1")
		env.suggestion(m, name+"-2")
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- env.queue.UpdateQueue(env.ctx)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	env.assertSingleActive()

	scheduled, err := env.dm.Suggestion().ListScheduled(env.ctx)
	require.NoError(t, err)
	require.Len(t, scheduled, 4)
	for i := 1; i < len(scheduled); i++ {
		assert.True(t, scheduled[i].ActiveAt.Equal(*scheduled[i-1].FinishedAt), "windows must be contiguous")
	}
}

func Test_queueService_UpdateQueue_Failures(t *testing.T) {
	t.Run("Should return error when lock cannot be acquired", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		q := newQueue(m.mockDataManager, m.mockLocker, m.mockPublisher, testLogger())

		m.mockLocker.EXPECT().Acquire(gomock.Any()).Return(nil, context.Canceled)

		err := q.UpdateQueue(context.Background())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Should not publish when the store fails", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		q := newQueue(m.mockDataManager, m.mockLocker, m.mockPublisher, testLogger())

		released := false
		m.mockLocker.EXPECT().Acquire(gomock.Any()).Return(func() { released = true }, nil)
		m.mockSuggestionRepo.EXPECT().GetActiveSuggestion(gomock.Any()).Return(nil, assert.AnError)

		err := q.UpdateQueue(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
		assert.True(t, released)
	})

	t.Run("Should succeed when publishing fails", func(t *testing.T) {
		env := newQueueEnv(t)
		m, _ := newServiceTestMock(t)
		env.queue.publisher = m.mockPublisher

		alice := env.member("alice", 1)
		env.suggestion(alice, "A1")

		m.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Len(1)).Return(assert.AnError)

		assert.NoError(t, env.queue.UpdateQueue(env.ctx))
	})
}
