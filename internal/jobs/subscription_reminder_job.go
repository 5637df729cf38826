package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"taxidispatch/internal/core/application/usecases/queries"
	"taxidispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// reminderWindow is how far ahead of expiry drivers are warned.
const reminderWindow = 24 * time.Hour

// SubscriptionReminderJob warns drivers whose subscription is about to run
// out. Runs hourly and messages each driver once per subscription period.
type SubscriptionReminderJob struct {
	handler  queries.ListExpiringSubscriptionsQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger

	mu sync.Mutex
	// reminded maps driver id to the subscription end already warned about,
	// so extending a subscription re-arms the reminder.
	reminded map[string]time.Time
}

// NewSubscriptionReminderJob creates a job that checks for expiring
// subscriptions every hour.
func NewSubscriptionReminderJob(
	handler queries.ListExpiringSubscriptionsQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *SubscriptionReminderJob {
	return &SubscriptionReminderJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "subscription_reminder_job"),
		reminded: make(map[string]time.Time),
	}
}

// Start begins the subscription reminder job to run at the top of every hour.
func (j *SubscriptionReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Subscription reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscription reminder job started (running hourly)")
	return nil
}

// Stop stops the subscription reminder job.
func (j *SubscriptionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Subscription reminder job stopped")
}

func (j *SubscriptionReminderJob) run(ctx context.Context) error {
	query, err := queries.NewListExpiringSubscriptionsQuery(reminderWindow)
	if err != nil {
		return err
	}

	expiring, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, subscription := range expiring {
		if !j.markReminded(subscription.DriverID, subscription.SubscriptionEnd) {
			continue
		}

		text := fmt.Sprintf(
			"Your subscription ends at %s. Extend it to keep receiving orders.",
			subscription.SubscriptionEnd.Format("2006-01-02 15:04"),
		)
		if err := j.notifier.NotifyUser(ctx, subscription.DriverID, text); err != nil {
			// Notification failures are logged, never retried within a tick.
			j.logger.ErrorContext(ctx, "Failed to send subscription reminder",
				"driver_id", subscription.DriverID, "error", err)
		}
	}

	return nil
}

// markReminded records the reminder and reports whether it was new for this
// subscription end.
func (j *SubscriptionReminderJob) markReminded(driverID string, subscriptionEnd time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if previous, ok := j.reminded[driverID]; ok && previous.Equal(subscriptionEnd) {
		return false
	}

	j.reminded[driverID] = subscriptionEnd
	return true
}
