package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/migrations"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// retryDelays are the pauses between attempts of a retryable call.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn and repeats it while the returned error is classified
// as [Retryable] and ctx is alive.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		if db.logger != nil {
			db.logger.Warn().Err(err).Dur("delay", delay).Msg("retrying database call")
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}

		if err = fn(); err == nil {
			return nil
		}
	}

	return err
}
