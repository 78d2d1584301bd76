package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

type QueueService interface {
	// UpdateQueue runs one tick of the rotation. Calls are serialized.
	UpdateQueue(ctx context.Context) error
	Home(ctx context.Context) (*entity.HomePage, error)
	Floating(ctx context.Context) ([]entity.SuggestionSummary, error)
}

type SuggestionService interface {
	Create(ctx context.Context, actorID uuid.UUID, input entity.CreateSuggestionInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, suggestionID uuid.UUID, input entity.UpdateSuggestionInput) error
	Delete(ctx context.Context, actorID, suggestionID uuid.UUID) error
	Reorder(ctx context.Context, actorID, suggestionID uuid.UUID, direction string) error
	ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Suggestion, error)
	Get(ctx context.Context, suggestionID uuid.UUID) (*entity.SuggestionDetail, error)
}

type RatingService interface {
	Create(ctx context.Context, actorID uuid.UUID, input entity.RatingInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, ratingID uuid.UUID, score int, comment *string) error
	ListMine(ctx context.Context, actorID uuid.UUID) ([]entity.RatingView, error)
	ListUnrated(ctx context.Context, actorID uuid.UUID) ([]entity.SuggestionSummary, error)
}

type AdminService interface {
	ForceTransition(ctx context.Context, suggestionID uuid.UUID, input entity.ForceStateInput) error
	RefreshQueue(ctx context.Context) error
	AddMember(ctx context.Context, input entity.AddMemberInput) (uuid.UUID, error)
	SetRotationPosition(ctx context.Context, memberID uuid.UUID, position int) error
	ListMembers(ctx context.Context) ([]*entity.Member, error)
	ListAllSuggestions(ctx context.Context) ([]*entity.Suggestion, error)
}
