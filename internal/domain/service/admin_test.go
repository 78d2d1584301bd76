package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_adminService_ForceTransition(t *testing.T) {
	suggestionID := uuid.New()
	submitterID := uuid.New()
	start := day
	end := day.Add(domain.PlayPeriod)

	type args struct {
		input entity.ForceStateInput
	}

	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   error
	}{
		{
			name: "Should write the forced state and refresh the queue",
			args: args{input: entity.ForceStateInput{Status: entity.StatusActive, ActiveAt: &start, FinishedAt: &end, CycleNumber: ptr(2)}},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSuggestionRepo.EXPECT().GetByID(gomock.Any(), suggestionID).
					Return(&entity.Suggestion{ID: suggestionID, Order: 1, SubmitterID: submitterID, Status: entity.StatusFinished}, nil)
				mocks.mockSuggestionRepo.EXPECT().ForceState(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s *entity.Suggestion) error {
						require.Equal(t, entity.StatusActive, s.Status)
						require.Equal(t, &start, s.ActiveAt)
						require.Equal(t, &end, s.FinishedAt)
						require.Equal(t, 2, *s.CycleNumber)
						return nil
					})
				mocks.mockSuggestionRepo.EXPECT().ListPendingForMember(gomock.Any(), submitterID).
					Return([]*entity.Suggestion{{ID: suggestionID, Order: 1, SubmitterID: submitterID}}, nil)
				mocks.mockQueue.EXPECT().UpdateQueue(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Should not renumber when the status stays unfinished",
			args: args{input: entity.ForceStateInput{Status: entity.StatusPending}},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSuggestionRepo.EXPECT().GetByID(gomock.Any(), suggestionID).
					Return(&entity.Suggestion{ID: suggestionID, SubmitterID: submitterID, Status: entity.StatusQueued}, nil)
				mocks.mockSuggestionRepo.EXPECT().ForceState(gomock.Any(), gomock.Any()).Return(nil)
				mocks.mockQueue.EXPECT().UpdateQueue(gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Should reject unknown status",
			args:      args{input: entity.ForceStateInput{Status: entity.SuggestionStatus(9)}},
			buildMock: func(mocks allMocks, args args) {},
			wantErr:   domain.ErrInvalidArgument,
		},
		{
			name:      "Should reject inverted window",
			args:      args{input: entity.ForceStateInput{Status: entity.StatusQueued, ActiveAt: &end, FinishedAt: &start}},
			buildMock: func(mocks allMocks, args args) {},
			wantErr:   domain.ErrInvalidArgument,
		},
		{
			name:      "Should reject negative cycle",
			args:      args{input: entity.ForceStateInput{Status: entity.StatusPending, CycleNumber: ptr(-1)}},
			buildMock: func(mocks allMocks, args args) {},
			wantErr:   domain.ErrInvalidArgument,
		},
		{
			name: "Should return not found for missing suggestion",
			args: args{input: entity.ForceStateInput{Status: entity.StatusPending}},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSuggestionRepo.EXPECT().GetByID(gomock.Any(), suggestionID).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newServiceTestMock(t)
			tt.buildMock(m, tt.args)

			err := newAdmin(m.mockDataManager, m.mockQueue).ForceTransition(context.Background(), suggestionID, tt.args.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_adminService_Members(t *testing.T) {
	memberID := uuid.New()

	t.Run("Should add member with trimmed name", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		m.mockMemberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, member *entity.Member) error {
				require.Equal(t, "dave", member.Name)
				require.Equal(t, 4, member.RotationPosition)
				require.False(t, member.RegisteredAt.IsZero())
				return nil
			})

		id, err := newAdmin(m.mockDataManager, m.mockQueue).
			AddMember(context.Background(), entity.AddMemberInput{Name: " dave ", RotationPosition: 4})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("Should reject negative position", func(t *testing.T) {
		m, _ := newServiceTestMock(t)

		_, err := newAdmin(m.mockDataManager, m.mockQueue).
			AddMember(context.Background(), entity.AddMemberInput{Name: "dave", RotationPosition: -1})
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})

	t.Run("Should move member and refresh the queue", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		m.mockMemberRepo.EXPECT().GetByID(gomock.Any(), memberID).Return(&entity.Member{ID: memberID, RotationPosition: 2}, nil)
		m.mockMemberRepo.EXPECT().SetRotationPosition(gomock.Any(), memberID, 0).Return(nil)
		m.mockQueue.EXPECT().UpdateQueue(gomock.Any()).Return(nil)

		err := newAdmin(m.mockDataManager, m.mockQueue).SetRotationPosition(context.Background(), memberID, 0)
		require.NoError(t, err)
	})

	t.Run("Should return not found for unknown member", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		m.mockMemberRepo.EXPECT().GetByID(gomock.Any(), memberID).Return(nil, nil)

		err := newAdmin(m.mockDataManager, m.mockQueue).SetRotationPosition(context.Background(), memberID, 1)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestAdminService_ForceTransitionSettles(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	bob := env.member("bob", 2)
	admin := newAdmin(env.dm, env.queue)

	a1 := env.suggestion(alice, "A1")
	b1 := env.suggestion(bob, "B1")
	env.tick()
	env.publisher.take()

	assertWindow(t, env.get(a1.ID), entity.StatusActive, day)
	assertWindow(t, env.get(b1.ID), entity.StatusQueued, day.Add(domain.PlayPeriod))

	// Closing A1 early hands the slot to B1 from A1's forced end.
	start := day
	end := day.Add(6 * time.Hour)
	err := admin.ForceTransition(env.ctx, a1.ID, entity.ForceStateInput{
		Status:     entity.StatusFinished,
		ActiveAt:   &start,
		FinishedAt: &end,
	})
	require.NoError(t, err)

	assertWindow(t, env.get(b1.ID), entity.StatusActive, end)
	env.assertSingleActive()

	events := env.publisher.take()
	require.NotEmpty(t, events)
	assert.Equal(t, domain.EventSuggestionActivated, events[len(events)-1].Type)
	assert.Equal(t, "bob", events[len(events)-1].SubmitterName)
}

func TestAdminService_ForceFinishedRenumbersOrders(t *testing.T) {
	env := newQueueEnv(t)
	alice := env.member("alice", 1)
	admin := newAdmin(env.dm, env.queue)

	a1 := env.suggestion(alice, "A1")
	a2 := env.suggestion(alice, "A2")
	a3 := env.suggestion(alice, "A3")
	env.tick()

	assert.Equal(t, entity.StatusActive, env.get(a1.ID).Status)

	err := admin.ForceTransition(env.ctx, a1.ID, entity.ForceStateInput{Status: entity.StatusFinished})
	require.NoError(t, err)

	unfinished, err := env.dm.Suggestion().ListPendingForMember(env.ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, unfinished, 2)
	assert.Equal(t, a2.ID, unfinished[0].ID)
	assert.Equal(t, 1, unfinished[0].Order)
	assert.Equal(t, a3.ID, unfinished[1].ID)
	assert.Equal(t, 2, unfinished[1].Order)

	t.Run("reopening a finished suggestion renumbers again", func(t *testing.T) {
		err := admin.ForceTransition(env.ctx, a1.ID, entity.ForceStateInput{Status: entity.StatusPending})
		require.NoError(t, err)

		unfinished, err := env.dm.Suggestion().ListPendingForMember(env.ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, unfinished, 3)

		orders := make([]int, 0, len(unfinished))
		for _, s := range unfinished {
			orders = append(orders, s.Order)
		}
		assert.Equal(t, []int{1, 2, 3}, orders)
	})
}
