package postgres

import (
	"context"
	"fmt"

	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres. Duplicate key errors are translated to
// gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&memberModel{}, &suggestionModel{}, &ratingModel{}); err != nil {
		return fmt.Errorf("failed to migrate postgres: %w", err)
	}
	return nil
}

// instance implements DataManager interface
type instance struct {
	db             *gorm.DB
	inTx           bool
	suggestionRepo contract.SuggestionRepo
	memberRepo     contract.MemberRepo
	ratingRepo     contract.RatingRepo
}

func NewInstance(db *gorm.DB) contract.DataManager {
	return newInstance(db, false)
}

func newInstance(db *gorm.DB, inTx bool) *instance {
	return &instance{
		db:             db,
		inTx:           inTx,
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
	if i.inTx {
		return fn(i)
	}

	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newInstance(tx, true))
	})
}
