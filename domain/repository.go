package domain

import (
	"context"

	"github.com/driverset/driverset/domain/model"
)

// OutcomeRepository persists load/validate outcomes for later inspection.
// The journal is append-only; records are never updated.
type OutcomeRepository interface {
	Append(ctx context.Context, o *model.Outcome) error
	List(ctx context.Context, environment string, limit int) ([]*model.Outcome, error)
}
