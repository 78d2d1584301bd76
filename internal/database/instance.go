package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	suggestionRepo contract.SuggestionRepo
	memberRepo     contract.MemberRepo
	ratingRepo     contract.RatingRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.suggestionRepo = newSuggestionRepo(i.db.conn)
	i.memberRepo = newMemberRepo(i.db.conn)
	i.ratingRepo = newRatingRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		suggestionRepo: newSuggestionRepo(db),
		memberRepo:     newMemberRepo(db),
		ratingRepo:     newRatingRepo(db),
	}
}

func (i *instance) Suggestion() contract.SuggestionRepo {
	return i.suggestionRepo
}

func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

func (i *instance) Rating() contract.RatingRepo {
	return i.ratingRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
