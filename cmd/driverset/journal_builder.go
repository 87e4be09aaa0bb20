package main

import (
	"context"

	"github.com/driverset/driverset/adapters/store/rdb"
	"github.com/driverset/driverset/domain"
	"github.com/driverset/driverset/domain/model"
	"github.com/driverset/driverset/internal/logging"
)

// buildJournal opens the outcome journal for a journal-url, or returns nil
// when journaling is disabled (empty URL).
func buildJournal(journalURL string) (domain.OutcomeRepository, error) {
	if journalURL == "" {
		return nil, nil
	}
	db, err := rdb.OpenFromURL(journalURL)
	if err != nil {
		return nil, err
	}
	if err := rdb.AutoMigrate(db); err != nil {
		return nil, err
	}
	return rdb.NewOutcomeRepository(db), nil
}

// journalOutcome appends the outcome when a journal is configured.
// Journal write failures are logged, not fatal: the outcome itself is the
// product, the journal a side channel.
func journalOutcome(ctx context.Context, journal domain.OutcomeRepository, o *model.Outcome) {
	if journal == nil {
		return
	}
	if err := journal.Append(ctx, o); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to journal outcome", "error", err)
	}
}
