// Package jobs provides scheduled background tasks for the loan audit service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// InboxDigestJob - logs how many orders wait in each role's inbox
// (initiator, delivery, manager) together with the total order count.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countByStatusHandler, config.InboxDigestSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six cron fields, seconds first. The digest defaults to
// "0 */5 * * * *" (every five minutes) and is configured by INBOX_DIGEST_SCHEDULE.
//
// # Error Handling
//
// A failed digest is logged and the next run proceeds normally. An invalid
// schedule fails StartAll.
package jobs
