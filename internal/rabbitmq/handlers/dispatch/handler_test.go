package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/stayloop/notify/internal/mocks/rabbitmq/handlers/dispatch"
	"github.com/stayloop/notify/internal/model"
	"github.com/stayloop/notify/internal/rabbitmq/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationStore, *mocks.MockrealtimePublisher, *mocks.MockdeadLetterer) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMocknotificationStore(ctrl)
	rt := mocks.NewMockrealtimePublisher(ctrl)
	dlq := mocks.NewMockdeadLetterer(ctrl)

	h := NewHandler(store, rt, dlq, time.Second)

	return h, store, rt, dlq
}

func testMessage() queue.DispatchMessage {
	return queue.DispatchMessage{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Category:   model.CategoryBooking,
		Title:      "Booking confirmed",
		Message:    "See you soon",
		DedupKey:   "key-1",
		EnqueuedAt: time.Now(),
	}
}

func TestHandleMessage_PersistsAndPublishes(t *testing.T) {
	h, store, rt, _ := setupHandler(t)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	saved := model.Notification{
		ID:       uuid.New(),
		UserID:   msg.UserID,
		Category: msg.Category,
		Title:    msg.Title,
		Message:  msg.Message,
		DedupKey: msg.DedupKey,
	}

	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.Notification) (model.Notification, bool, error) {
			assert.Equal(t, msg.UserID, n.UserID)
			assert.Equal(t, msg.DedupKey, n.DedupKey)
			return saved, true, nil
		},
	)
	rt.EXPECT().Publish(gomock.Any(), saved).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandleMessage_RedeliveryStillPublishes(t *testing.T) {
	h, store, rt, _ := setupHandler(t)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	existing := model.Notification{ID: uuid.New(), UserID: msg.UserID, DedupKey: msg.DedupKey}

	// created=false means the row was already there from an earlier delivery
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(existing, false, nil)
	rt.EXPECT().Publish(gomock.Any(), existing).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandleMessage_ExhaustedAttemptsDeadLetters(t *testing.T) {
	h, store, _, dlq := setupHandler(t)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		Return(model.Notification{}, false, errors.New("db down")).
		Times(3)
	dlq.EXPECT().PublishDead(msg, strategy).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandleMessage_PublishFailureDoesNotDeadLetter(t *testing.T) {
	h, store, rt, _ := setupHandler(t)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	saved := model.Notification{ID: uuid.New(), UserID: msg.UserID}

	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(saved, true, nil)
	rt.EXPECT().Publish(gomock.Any(), saved).Return(errors.New("redis down"))

	// no PublishDead expectation: the row is durable, the job is done

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandleMessage_CancelledContextDeadLetters(t *testing.T) {
	h, _, _, dlq := setupHandler(t)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no persist attempt is made once the context is gone
	dlq.EXPECT().PublishDead(msg, strategy).Return(nil)

	h.HandleMessage(ctx, msg, strategy)
}
