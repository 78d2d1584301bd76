package entity

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID   uuid.UUID
	Name string
	// RotationPosition is the member's place in the turn order; 0 keeps the
	// member out of the rotation.
	RotationPosition int
	RegisteredAt     time.Time
}

func (m *Member) InRotation() bool {
	return m.RotationPosition > 0
}
