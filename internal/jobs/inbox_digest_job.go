package jobs

import (
	"context"
	"log/slog"

	"loanaudit/internal/core/application/usecases/queries"
	"loanaudit/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultInboxDigestSchedule runs the digest every five minutes.
const DefaultInboxDigestSchedule = "0 */5 * * * *"

// InboxDigest is the size of each role's work queue at one point in time.
type InboxDigest struct {
	Queues map[order.Role]int
	Total  int
}

// InboxDigestJob periodically logs how many orders wait for each role.
type InboxDigestJob struct {
	handler  queries.CountByStatusQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInboxDigestJob creates the job. An empty schedule means
// DefaultInboxDigestSchedule; schedules use the six-field cron format with seconds.
func NewInboxDigestJob(handler queries.CountByStatusQueryHandler, schedule string, logger *slog.Logger) *InboxDigestJob {
	if schedule == "" {
		schedule = DefaultInboxDigestSchedule
	}
	return &InboxDigestJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "inbox_digest_job"),
	}
}

// Start registers the digest on its schedule and starts the scheduler.
func (j *InboxDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Inbox digest job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Inbox digest job started", "schedule", j.schedule)
	return nil
}

// Run computes and logs one digest.
func (j *InboxDigestJob) Run(ctx context.Context) (InboxDigest, error) {
	counts, err := j.handler.Handle(ctx, queries.NewCountByStatusQuery())
	if err != nil {
		return InboxDigest{}, err
	}

	digest := InboxDigest{Queues: make(map[order.Role]int, len(order.AllRoles())), Total: counts.Total}
	for _, role := range order.AllRoles() {
		n := 0
		for _, status := range role.InboxStatuses() {
			n += counts.Count(status)
		}
		digest.Queues[role] = n
	}

	j.logger.InfoContext(ctx, "Inbox digest",
		"initiator", digest.Queues[order.Initiator],
		"delivery", digest.Queues[order.Delivery],
		"manager", digest.Queues[order.Manager],
		"total", digest.Total,
	)
	return digest, nil
}

// Stop stops the scheduler and waits for a running digest to finish.
func (j *InboxDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Inbox digest job stopped")
}
