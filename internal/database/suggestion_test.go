package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSuggestion(t *testing.T, db *DB, member *entity.Member, title string, order int) *entity.Suggestion {
	t.Helper()

	s := &entity.Suggestion{
		Title:       title,
		Order:       order,
		SubmitterID: member.ID,
		Status:      entity.StatusPending,
	}
	err := newSuggestionRepo(db.conn).Create(context.Background(), s)
	require.NoError(t, err)
	return s
}

func TestSuggestionRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSuggestionRepo(db.conn)
	member := createTestMember(t, db, "alice", 1)

	link := "https://example.com/game"
	s := &entity.Suggestion{
		Title:        "Outer Wilds",
		Order:        1,
		SubmitterID:  member.ID,
		ExternalLink: &link,
	}

	err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)

	found, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Outer Wilds", found.Title)
	assert.Equal(t, entity.StatusPending, found.Status)
	assert.Equal(t, member.ID, found.SubmitterID)
	require.NotNil(t, found.ExternalLink)
	assert.Equal(t, link, *found.ExternalLink)
	assert.Nil(t, found.ActiveAt)
	assert.Nil(t, found.FinishedAt)
	assert.Nil(t, found.CycleNumber)

	missing, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSuggestionRepo_CommitTransition(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSuggestionRepo(db.conn)
	member := createTestMember(t, db, "alice", 1)
	s := createTestSuggestion(t, db, member, "Celeste", 1)

	activeAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	finishedAt := activeAt.Add(14 * 24 * time.Hour)

	t.Run("should set status and window", func(t *testing.T) {
		err := repo.CommitTransition(ctx, s.ID, entity.StatusQueued, &activeAt, &finishedAt)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusQueued, found.Status)
		require.NotNil(t, found.ActiveAt)
		assert.True(t, found.ActiveAt.Equal(activeAt))
		assert.True(t, found.FinishedAt.Equal(finishedAt))
	})

	t.Run("should keep window when times are nil", func(t *testing.T) {
		err := repo.CommitTransition(ctx, s.ID, entity.StatusActive, nil, nil)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusActive, found.Status)
		assert.True(t, found.ActiveAt.Equal(activeAt))
		assert.True(t, found.FinishedAt.Equal(finishedAt))

		active, err := repo.GetActiveSuggestion(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, s.ID, active.ID)
	})

	t.Run("should fail for unknown suggestion", func(t *testing.T) {
		err := repo.CommitTransition(ctx, uuid.New(), entity.StatusActive, nil, nil)
		assert.Error(t, err)
	})
}

func TestSuggestionRepo_MostRecentFinishedOrActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSuggestionRepo(db.conn)
	member := createTestMember(t, db, "alice", 1)

	none, err := repo.MostRecentFinishedOrActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	older := createTestSuggestion(t, db, member, "Older", 1)
	newer := createTestSuggestion(t, db, member, "Newer", 2)
	queued := createTestSuggestion(t, db, member, "Queued", 3)

	olderEnd := base.Add(14 * 24 * time.Hour)
	newerEnd := olderEnd.Add(14 * 24 * time.Hour)
	queuedEnd := newerEnd.Add(14 * 24 * time.Hour)
	require.NoError(t, repo.CommitTransition(ctx, older.ID, entity.StatusFinished, &base, &olderEnd))
	require.NoError(t, repo.CommitTransition(ctx, newer.ID, entity.StatusActive, &olderEnd, &newerEnd))
	require.NoError(t, repo.CommitTransition(ctx, queued.ID, entity.StatusQueued, &newerEnd, &queuedEnd))

	latest, err := repo.MostRecentFinishedOrActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newer.ID, latest.ID)

	finished, err := repo.ListFinishedAfter(ctx, base.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Equal(t, older.ID, finished[0].ID)

	scheduled, err := repo.ListScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, scheduled, 3)
	assert.Equal(t, older.ID, scheduled[0].ID)
	assert.Equal(t, queued.ID, scheduled[2].ID)

	windowless := createTestSuggestion(t, db, member, "Windowless", 4)
	windowless.Status = entity.StatusFinished
	require.NoError(t, repo.ForceState(ctx, windowless))

	allFinished, err := repo.ListFinished(ctx)
	require.NoError(t, err)
	require.Len(t, allFinished, 2)
	assert.Equal(t, older.ID, allFinished[0].ID)
	assert.Equal(t, windowless.ID, allFinished[1].ID)
}

func TestSuggestionRepo_PendingAndOrder(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSuggestionRepo(db.conn)
	alice := createTestMember(t, db, "alice", 1)
	bob := createTestMember(t, db, "bob", 2)

	next, err := repo.NextOrder(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	second := createTestSuggestion(t, db, alice, "Second", 2)
	first := createTestSuggestion(t, db, alice, "First", 1)
	done := createTestSuggestion(t, db, alice, "Done", 3)
	createTestSuggestion(t, db, bob, "Bob's", 1)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	require.NoError(t, repo.CommitTransition(ctx, done.ID, entity.StatusFinished, &start, &end))

	next, err = repo.NextOrder(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	pending, err := repo.ListPendingForMember(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)

	require.NoError(t, repo.SetOrder(ctx, first.ID, 2))
	require.NoError(t, repo.SetOrder(ctx, second.ID, 1))

	byStatus, err := repo.ListByMemberAndStatus(ctx, alice.ID, entity.StatusPending)
	require.NoError(t, err)
	require.Len(t, byStatus, 2)
	assert.Equal(t, second.ID, byStatus[0].ID)

	count, err := repo.CountByMember(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSuggestionRepo_ListFloating(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSuggestionRepo(db.conn)
	alice := createTestMember(t, db, "alice", 1)

	visible := createTestSuggestion(t, db, alice, "Visible", 1)
	hidden := createTestSuggestion(t, db, alice, "Hidden", 2)
	hidden.IsHidden = true
	require.NoError(t, repo.Update(ctx, hidden))

	floating, err := repo.ListFloating(ctx)
	require.NoError(t, err)
	require.Len(t, floating, 1)
	assert.Equal(t, visible.ID, floating[0].ID)
}

func TestSuggestionRepo_ForceStateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSuggestionRepo(db.conn)
	alice := createTestMember(t, db, "alice", 1)
	s := createTestSuggestion(t, db, alice, "Forced", 1)

	activeAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	finishedAt := activeAt.Add(24 * time.Hour)
	cycle := 4
	s.Status = entity.StatusFinished
	s.ActiveAt = &activeAt
	s.FinishedAt = &finishedAt
	s.CycleNumber = &cycle

	require.NoError(t, repo.ForceState(ctx, s))

	found, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFinished, found.Status)
	require.NotNil(t, found.CycleNumber)
	assert.Equal(t, 4, *found.CycleNumber)

	require.NoError(t, repo.Delete(ctx, s.ID))
	found, err = repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
