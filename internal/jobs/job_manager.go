package jobs

import (
	"fmt"
	"log/slog"

	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	subscriptionReminderJob *SubscriptionReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expiringSubscriptionsHandler queries.ListExpiringSubscriptionsQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		subscriptionReminderJob: NewSubscriptionReminderJob(expiringSubscriptionsHandler, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.subscriptionReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start subscription reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.subscriptionReminderJob.Stop()
}
