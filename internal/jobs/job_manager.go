package jobs

import (
	"fmt"
	"log/slog"

	"loanaudit/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	inboxDigestJob *InboxDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	countByStatusHandler queries.CountByStatusQueryHandler,
	inboxDigestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		inboxDigestJob: NewInboxDigestJob(countByStatusHandler, inboxDigestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.inboxDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start inbox digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.inboxDigestJob.Stop()
}
