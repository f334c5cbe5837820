package postgres

import (
	"context"

	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"

	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{db: db}
}

// Next increments the named counter with a single upsert. The row lock taken by
// the update serialises concurrent callers until their transaction ends.
func (repo *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64

	if err := repo.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to advance counter "+name)
	}

	return value, nil
}
