// Package notify delivers welcome notifications for new registrations.
//
// Delivery is fully decoupled from the request/response cycle: Enqueue never
// blocks the registration response, and delivery failures are logged and
// swallowed, never retried indefinitely and never surfaced to the end user.
package notify

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountd/internal/logging"
)

// Mailer sends a single welcome message. mailer.SMTP and mailer.Log
// implement it.
type Mailer interface {
	SendWelcome(ctx context.Context, email string) error
}

// notification is one queued welcome job.
type notification struct {
	AccountID string
	Email     string
}

// Notifier owns a buffered queue and a single worker goroutine.
type Notifier struct {
	mailer Mailer
	logger logging.Logger
	queue  chan notification
	wg     sync.WaitGroup
}

const defaultQueueSize = 64

func NewNotifier(mailer Mailer, logger logging.Logger) *Notifier {
	return &Notifier{
		mailer: mailer,
		logger: logger.With("module", "notify"),
		queue:  make(chan notification, defaultQueueSize),
	}
}

// Enqueue schedules a welcome notification. It never blocks: when the queue
// is full the notification is dropped with a warning, which is acceptable
// for a best-effort welcome message.
func (n *Notifier) Enqueue(accountID, email string) {
	select {
	case n.queue <- notification{AccountID: accountID, Email: email}:
	default:
		n.logger.Warn(context.Background(), "welcome queue full, dropping notification", "email", email)
	}
}

// Start launches the worker. It drains the queue until ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for {
			select {
			case job := <-n.queue:
				n.deliver(ctx, job)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Wait blocks until the worker has stopped.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) deliver(ctx context.Context, job notification) {
	n.logger.Info(ctx, "sending welcome message", "email", job.Email)

	if err := n.mailer.SendWelcome(ctx, job.Email); err != nil {
		// The account may be gone by the time the job runs, or SMTP may be
		// down; either way this is swallowed, not retried.
		n.logger.Error(ctx, "welcome message failed", "email", job.Email, "error", err.Error())
		return
	}

	n.logger.Info(ctx, "welcome message sent", "email", job.Email)
}
