package dispatch

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/stayloop/notify/internal/model"
	"github.com/stayloop/notify/internal/rabbitmq/queue"
)

type notificationStore interface {
	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, bool, error)
}

type realtimePublisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

type deadLetterer interface {
	PublishDead(msg queue.DispatchMessage, strategy retry.Strategy) error
}

// Handler processes one dequeued dispatch job: persist the notification,
// then publish the stored record to the realtime channel. Persistence is
// retried with backoff; once attempts are exhausted the job is parked on
// the DLQ for operator inspection.
type Handler struct {
	store      notificationStore
	realtime   realtimePublisher
	dlq        deadLetterer
	jobTimeout time.Duration
}

func NewHandler(store notificationStore, rt realtimePublisher, dlq deadLetterer, jobTimeout time.Duration) *Handler {
	return &Handler{
		store:      store,
		realtime:   rt,
		dlq:        dlq,
		jobTimeout: jobTimeout,
	}
}

// HandleMessage runs the job to completion. A publish failure after a
// successful persist is logged and not retried: the durable record exists,
// and re-running the job would only risk duplicate rows.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy) {
	n := model.Notification{
		UserID:   msg.UserID,
		Category: msg.Category,
		Title:    msg.Title,
		Message:  msg.Message,
		Link:     msg.Link,
		Image:    msg.Image,
		DedupKey: msg.DedupKey,
	}

	attempt := 0
	currentDelay := strategy.Delay

	for attempt < strategy.Attempts {
		if ctx.Err() != nil {
			break
		}

		attemptCtx, cancel := context.WithTimeout(ctx, h.jobTimeout)
		saved, created, err := h.store.CreateNotification(attemptCtx, n)
		cancel()

		if err == nil {
			if !created {
				zlog.Logger.Printf("job %s redelivered, notification %s already persisted", msg.ID, saved.ID)
			}

			if pubErr := h.realtime.Publish(ctx, saved); pubErr != nil {
				zlog.Logger.Error().Err(pubErr).
					Str("notification_id", saved.ID.String()).
					Msg("realtime publish failed, notification remains delivered")
			}

			return
		}

		attempt++
		zlog.Logger.Printf("failed to persist notification for job %s: %v, retry %d/%d",
			msg.ID, err, attempt, strategy.Attempts,
		)

		time.Sleep(currentDelay)
		currentDelay = time.Duration(float64(currentDelay) * strategy.Backoff)
	}

	zlog.Logger.Printf("job %s failed after %d attempts, moving to DLQ", msg.ID, attempt)

	if err := h.dlq.PublishDead(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("job_id", msg.ID.String()).Msg("failed to dead-letter job")
	}
}
