package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/diegoclair/game-club-rotation/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockSuggestionRepo *mocks.MockSuggestionRepo
	mockMemberRepo     *mocks.MockMemberRepo
	mockRatingRepo     *mocks.MockRatingRepo
	mockQueue          *mocks.MockQueueService
	mockLocker         *mocks.MockQueueLocker
	mockPublisher      *mocks.MockEventPublisher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	suggestionRepo := mocks.NewMockSuggestionRepo(ctrl)
	dm.EXPECT().Suggestion().Return(suggestionRepo).AnyTimes()

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	ratingRepo := mocks.NewMockRatingRepo(ctrl)
	dm.EXPECT().Rating().Return(ratingRepo).AnyTimes()

	// Transactions run inline against the same mocks.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockSuggestionRepo: suggestionRepo,
		mockMemberRepo:     memberRepo,
		mockRatingRepo:     ratingRepo,
		mockQueue:          mocks.NewMockQueueService(ctrl),
		mockLocker:         mocks.NewMockQueueLocker(ctrl),
		mockPublisher:      mocks.NewMockEventPublisher(ctrl),
	}

	return
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
