package rdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driverset/driverset/domain/model"
)

type OutcomeRepository struct{ db *gorm.DB }

func NewOutcomeRepository(db *gorm.DB) *OutcomeRepository { return &OutcomeRepository{db: db} }

func outcomeToRecord(o *model.Outcome) (*OutcomeRecord, error) {
	loaded, err := json.Marshal(o.Loaded)
	if err != nil {
		return nil, fmt.Errorf("encode loaded: %w", err)
	}
	failed, err := json.Marshal(o.Failed)
	if err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	unknown, err := json.Marshal(o.Unknown)
	if err != nil {
		return nil, fmt.Errorf("encode unknown: %w", err)
	}
	return &OutcomeRecord{
		ID:          "out-" + uuid.NewString(),
		Environment: o.Environment,
		Mode:        string(o.Mode),
		Success:     o.Success,
		Loaded:      string(loaded),
		Failed:      string(failed),
		Unknown:     string(unknown),
		CompletedAt: o.CompletedAt,
	}, nil
}

func outcomeToModel(r *OutcomeRecord) (*model.Outcome, error) {
	o := &model.Outcome{
		Environment: r.Environment,
		Mode:        model.OutcomeMode(r.Mode),
		Success:     r.Success,
		CompletedAt: r.CompletedAt,
	}
	if err := json.Unmarshal([]byte(r.Loaded), &o.Loaded); err != nil {
		return nil, fmt.Errorf("decode loaded: %w", err)
	}
	if err := json.Unmarshal([]byte(r.Failed), &o.Failed); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	if err := json.Unmarshal([]byte(r.Unknown), &o.Unknown); err != nil {
		return nil, fmt.Errorf("decode unknown: %w", err)
	}
	return o, nil
}

// Append writes one outcome to the journal.
func (r *OutcomeRepository) Append(ctx context.Context, o *model.Outcome) error {
	rec, err := outcomeToRecord(o)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

// List returns the most recent outcomes, newest first, optionally filtered
// by environment. limit <= 0 means no limit.
func (r *OutcomeRepository) List(ctx context.Context, environment string, limit int) ([]*model.Outcome, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if environment != "" {
		q = q.Where("environment = ?", environment)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []OutcomeRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Outcome, 0, len(recs))
	for i := range recs {
		o, err := outcomeToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
