package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type systemRepository struct {
	db *sqlx.DB
}

func newSystemRepository(db *sqlx.DB) *systemRepository {
	return &systemRepository{
		db: db,
	}
}

// Ping is the liveness probe the health endpoint reports on.
func (r *systemRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.GetContext(ctx, &one, "SELECT 1;"); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
