package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Suggestion() SuggestionRepo
	Member() MemberRepo
	Rating() RatingRepo
}

// SuggestionRepo defines the contract for suggestion repository.
// Lookups by id return (nil, nil) when nothing matches.
type SuggestionRepo interface {
	Create(ctx context.Context, suggestion *entity.Suggestion) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error)
	// Update stores the member-editable fields: title, order, hidden flag and link.
	Update(ctx context.Context, suggestion *entity.Suggestion) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetOrder(ctx context.Context, id uuid.UUID, order int) error
	// ForceState writes status, window and cycle number without any guard.
	ForceState(ctx context.Context, suggestion *entity.Suggestion) error

	GetActiveSuggestion(ctx context.Context) (*entity.Suggestion, error)
	// ListQueued returns queued suggestions ordered by ActiveAt.
	ListQueued(ctx context.Context) ([]*entity.Suggestion, error)
	// ListPendingForMember returns the member's suggestions that are not
	// finished yet (pending, queued or active), ordered by Order.
	ListPendingForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Suggestion, error)
	// MostRecentFinishedOrActive returns the finished or active suggestion
	// with the latest FinishedAt.
	MostRecentFinishedOrActive(ctx context.Context) (*entity.Suggestion, error)
	CommitTransition(ctx context.Context, id uuid.UUID, status entity.SuggestionStatus, activeAt, finishedAt *time.Time) error

	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Suggestion, error)
	ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status entity.SuggestionStatus) ([]*entity.Suggestion, error)
	// ListScheduled returns every suggestion that left Pending, ordered by ActiveAt.
	ListScheduled(ctx context.Context) ([]*entity.Suggestion, error)
	// ListFloating returns pending suggestions that are not hidden.
	ListFloating(ctx context.Context) ([]*entity.Suggestion, error)
	// ListFinished returns every finished suggestion, latest FinishedAt first;
	// rows without a FinishedAt come last.
	ListFinished(ctx context.Context) ([]*entity.Suggestion, error)
	ListFinishedAfter(ctx context.Context, after time.Time) ([]*entity.Suggestion, error)
	ListAll(ctx context.Context) ([]*entity.Suggestion, error)
	// NextOrder returns one past the highest Order among the member's unfinished suggestions.
	NextOrder(ctx context.Context, memberID uuid.UUID) (int, error)
	CountByMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

// MemberRepo defines the contract for member repository
type MemberRepo interface {
	Create(ctx context.Context, member *entity.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	// ListEligibleMembers returns members with a positive rotation position,
	// ordered by position.
	ListEligibleMembers(ctx context.Context) ([]*entity.Member, error)
	ListAll(ctx context.Context) ([]*entity.Member, error)
	SetRotationPosition(ctx context.Context, id uuid.UUID, position int) error
}

// RatingRepo defines the contract for rating repository
type RatingRepo interface {
	// Create fails with domain.ErrConflict when the rater already rated the suggestion.
	Create(ctx context.Context, rating *entity.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	GetBySuggestionAndRater(ctx context.Context, suggestionID, raterID uuid.UUID) (*entity.Rating, error)
	Update(ctx context.Context, rating *entity.Rating) error
	ListBySuggestion(ctx context.Context, suggestionID uuid.UUID) ([]*entity.Rating, error)
	ListByRater(ctx context.Context, raterID uuid.UUID) ([]*entity.Rating, error)
	ListStats(ctx context.Context) ([]entity.RatingStats, error)
	CountByRater(ctx context.Context, raterID uuid.UUID) (int, error)
}
