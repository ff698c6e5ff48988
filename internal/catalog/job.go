package catalog

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PurgeUserRatingsArgs contains the arguments for a rating purge job submitted
// to River when a user account is deleted. The user id is the unique key so a
// crashed sweep retried by the queue never piles up duplicates.
type PurgeUserRatingsArgs struct {
	// UserID identifies the deleted user whose ratings must be removed from
	// every place.
	UserID uuid.UUID `json:"userId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the purge worker.
func (args PurgeUserRatingsArgs) Kind() string { return "PurgeUserRatingsJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// limiting retries and deduplicating concurrent purges for the same user.
func (args PurgeUserRatingsArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
