package postgres

import (
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain/entity"
	"github.com/google/uuid"
)

type memberModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"size:255;uniqueIndex;not null"`
	RotationPosition int       `gorm:"index;not null;default:0"`
	RegisteredAt     time.Time `gorm:"not null"`
}

func (memberModel) TableName() string { return "members" }

type suggestionModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title        string      `gorm:"size:255;not null"`
	SortOrder    int         `gorm:"not null;default:1"`
	IsHidden     bool        `gorm:"not null;default:false"`
	SubmitterID  uuid.UUID   `gorm:"type:uuid;index;not null"`
	Submitter    memberModel `gorm:"foreignKey:SubmitterID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `gorm:"not null"`
	ExternalLink *string
	ActiveAt     *time.Time `gorm:"index"`
	FinishedAt   *time.Time `gorm:"index"`
	CycleNumber  *int
	Status       int `gorm:"index;not null;default:0"`
}

func (suggestionModel) TableName() string { return "suggestions" }

type ratingModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SuggestionID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_ratings_suggestion_rater,priority:1;not null"`
	Suggestion   suggestionModel `gorm:"foreignKey:SuggestionID;constraint:OnDelete:CASCADE"`
	RaterID      uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_ratings_suggestion_rater,priority:2;index;not null"`
	Rater        memberModel     `gorm:"foreignKey:RaterID;constraint:OnDelete:CASCADE"`
	Score        int             `gorm:"not null;check:chk_ratings_score,score >= 1 AND score <= 100"`
	Comment      *string         `gorm:"size:1000"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (ratingModel) TableName() string { return "ratings" }

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toMemberModel(m *entity.Member) *memberModel {
	return &memberModel{
		ID:               m.ID,
		Name:             m.Name,
		RotationPosition: m.RotationPosition,
		RegisteredAt:     m.RegisteredAt.UTC(),
	}
}

func (m *memberModel) toEntity() *entity.Member {
	return &entity.Member{
		ID:               m.ID,
		Name:             m.Name,
		RotationPosition: m.RotationPosition,
		RegisteredAt:     m.RegisteredAt.UTC(),
	}
}

func toSuggestionModel(s *entity.Suggestion) *suggestionModel {
	return &suggestionModel{
		ID:           s.ID,
		Title:        s.Title,
		SortOrder:    s.Order,
		IsHidden:     s.IsHidden,
		SubmitterID:  s.SubmitterID,
		CreatedAt:    s.CreatedAt.UTC(),
		ExternalLink: s.ExternalLink,
		ActiveAt:     utcPtr(s.ActiveAt),
		FinishedAt:   utcPtr(s.FinishedAt),
		CycleNumber:  s.CycleNumber,
		Status:       int(s.Status),
	}
}

func (m *suggestionModel) toEntity() *entity.Suggestion {
	return &entity.Suggestion{
		ID:           m.ID,
		Title:        m.Title,
		Order:        m.SortOrder,
		IsHidden:     m.IsHidden,
		SubmitterID:  m.SubmitterID,
		CreatedAt:    m.CreatedAt.UTC(),
		ExternalLink: m.ExternalLink,
		ActiveAt:     utcPtr(m.ActiveAt),
		FinishedAt:   utcPtr(m.FinishedAt),
		CycleNumber:  m.CycleNumber,
		Status:       entity.SuggestionStatus(m.Status),
	}
}

func toRatingModel(r *entity.Rating) *ratingModel {
	return &ratingModel{
		ID:           r.ID,
		SuggestionID: r.SuggestionID,
		RaterID:      r.RaterID,
		Score:        r.Score,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

func (m *ratingModel) toEntity() *entity.Rating {
	return &entity.Rating{
		ID:           m.ID,
		SuggestionID: m.SuggestionID,
		RaterID:      m.RaterID,
		Score:        m.Score,
		Comment:      m.Comment,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
