// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the taxi dispatch service.
//
// # Available Jobs
//
// 1. SubscriptionReminderJob - Runs hourly to warn drivers whose subscription
// ends within the next 24 hours
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expiringSubscriptionsHandler, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Query failures abort the tick and are logged
// - Notification failures are logged per driver and never retried within a tick
// - Each driver is reminded once per subscription period; extending the
// subscription re-arms the reminder
package jobs
