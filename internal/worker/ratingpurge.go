package worker

import (
	"context"
	"fmt"

	"places/internal/catalog"
	"places/pkg/domain"
	"places/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PurgeUserRatingsWorker removes every rating left behind by a deleted user.
// The sweep inside the catalog is idempotent, so a retried job simply finds
// less (or nothing) to do; partial failures are reported as a job error and
// River's retry policy picks the remainder up.
type PurgeUserRatingsWorker struct {
	river.WorkerDefaults[catalog.PurgeUserRatingsArgs]

	catalog catalog.Catalog
}

// NewPurgeUserRatingsWorker constructs a PurgeUserRatingsWorker using the
// provided catalog.
func NewPurgeUserRatingsWorker(cat catalog.Catalog) *PurgeUserRatingsWorker {
	return &PurgeUserRatingsWorker{catalog: cat}
}

// Work runs one purge sweep for the user named in the job args.
func (w *PurgeUserRatingsWorker) Work(ctx context.Context, job *river.Job[catalog.PurgeUserRatingsArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("userID", job.Args.UserID.String()))

	report, err := w.catalog.RemoveAllRatingsForUser(ctx, domain.UserID(job.Args.UserID))
	if err != nil {
		logger.Error(ctx, "error purging user ratings", zap.Error(err))

		return fmt.Errorf("could not purge user ratings: %w", err)
	}

	for _, failure := range report.Failed {
		logger.Error(ctx, "could not purge rating from place",
			zap.String("placeID", failure.PlaceID.String()),
			zap.Error(failure.Err))
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("could not purge ratings from %d places", len(report.Failed))
	}

	logger.Info(ctx, "user ratings purged", zap.Int("purged", len(report.Purged)))

	return nil
}
