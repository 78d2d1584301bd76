package database

import (
	"errors"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/mattn/go-sqlite3"
)

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func errDuplicate(what, value string) error {
	return domain.Conflict("%s %q already exists", what, value)
}
