package notification

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/stayloop/notify/internal/model"
	"github.com/stayloop/notify/internal/rabbitmq/queue"
	"github.com/stayloop/notify/internal/repository/user"
)

// DefaultChunkSize bounds how many recipients go into one bulk-enqueue
// call during broadcast fanout.
const DefaultChunkSize = 300

// DefaultPageLimit is the page size used when the caller does not pass one.
const DefaultPageLimit = 10

// ErrQueueUnavailable marks enqueue failures: the job was never accepted,
// so the calling request must see the error rather than a false success.
var ErrQueueUnavailable = errors.New("dispatch queue unavailable")

type notificationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, cursor uuid.NullUUID, limit int) ([]model.Notification, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type preferenceRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Preferences, error)
}

type userDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListAllIDs(ctx context.Context) ([]uuid.UUID, error)
}

type dispatchPublisher interface {
	Publish(msg queue.DispatchMessage, strategy retry.Strategy) error
	PublishBatch(msgs []queue.DispatchMessage, strategy retry.Strategy) error
}

type Service struct {
	repo      notificationRepository
	prefs     preferenceRepository
	users     userDirectory
	queue     dispatchPublisher
	chunkSize int
}

func NewService(
	repo notificationRepository,
	prefs preferenceRepository,
	users userDirectory,
	q dispatchPublisher,
	chunkSize int,
) *Service {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Service{
		repo:      repo,
		prefs:     prefs,
		users:     users,
		queue:     q,
		chunkSize: chunkSize,
	}
}

// Notify schedules a single-recipient notification. The recipient must
// exist in the user directory and the category must pass their preference
// record; a gated category is skipped without enqueueing anything. The
// returned bool reports whether the job was accepted onto the queue.
func (s *Service) Notify(ctx context.Context, strategy retry.Strategy, userID uuid.UUID, in model.NotificationInput) (bool, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}

	if !exists {
		return false, user.ErrUserNotFound
	}

	prefs, err := s.prefs.GetByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get preferences: %w", err)
	}

	if !prefs.Allows(in.Category) {
		zlog.Logger.Debug().
			Str("user_id", userID.String()).
			Str("category", string(in.Category)).
			Msg("notification skipped by preferences")

		return false, nil
	}

	msg := newDispatchMessage(userID, in, time.Now())

	if err := s.queue.Publish(msg, strategy); err != nil {
		return false, fmt.Errorf("%w: %v", ErrQueueUnavailable, err)
	}

	zlog.Logger.Debug().
		Str("user_id", userID.String()).
		Str("job_id", msg.ID.String()).
		Msg("notification queued")

	return true, nil
}

// Broadcast fans a notification out to every user in the directory in
// bulk-enqueue chunks. Preferences are not consulted: broadcast categories
// are treated as always relevant, at enqueue time and at worker time.
// Chunks that fail do not roll back chunks that already succeeded; the
// failed ranges come back inside a *PartialFanoutError.
func (s *Service) Broadcast(ctx context.Context, strategy retry.Strategy, in model.NotificationInput) error {
	ids, err := s.users.ListAllIDs(ctx)
	if err != nil {
		return fmt.Errorf("list user ids: %w", err)
	}

	if len(ids) == 0 {
		zlog.Logger.Warn().Msg("no users found for broadcast")
		return nil
	}

	zlog.Logger.Info().Int("users", len(ids)).Str("category", string(in.Category)).Msg("broadcasting notification")

	enqueuedAt := time.Now()

	var failed []ChunkRange
	for start := 0; start < len(ids); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(ids) {
			end = len(ids)
		}

		msgs := make([]queue.DispatchMessage, 0, end-start)
		for _, id := range ids[start:end] {
			msgs = append(msgs, newDispatchMessage(id, in, enqueuedAt))
		}

		if err := s.queue.PublishBatch(msgs, strategy); err != nil {
			zlog.Logger.Error().Err(err).Int("start", start).Int("end", end).Msg("failed to enqueue broadcast chunk")
			failed = append(failed, ChunkRange{Start: start, End: end})
		}
	}

	if len(failed) > 0 {
		return &PartialFanoutError{Total: len(ids), Failed: failed}
	}

	return nil
}

// ListByUser returns one page of a user's notifications together with the
// user's total, newest first. The returned cursor resumes the listing.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, cursor uuid.NullUUID, limit int) (model.NotificationPage, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	items, err := s.repo.ListByUser(ctx, userID, cursor, limit)
	if err != nil {
		return model.NotificationPage{}, fmt.Errorf("list notifications: %w", err)
	}

	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return model.NotificationPage{}, fmt.Errorf("count notifications: %w", err)
	}

	page := model.NotificationPage{Data: items, Total: total}
	if len(items) > 0 {
		last := items[len(items)-1].ID
		page.Cursor = &last
	}

	return page, nil
}

// MarkRead marks one notification as read. It reports whether the row was
// already read, so callers can distinguish the no-op case.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	alreadyRead, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}

	return alreadyRead, nil
}

// MarkAllRead marks every unread notification of a user as read and
// returns the number mutated.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	return count, nil
}

// ClearAll hard-deletes every notification of a user.
func (s *Service) ClearAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear notifications: %w", err)
	}

	return count, nil
}

// newDispatchMessage builds the queue payload for one recipient. The dedup
// key covers the recipient, the payload and the enqueue instant, so a
// redelivered job maps onto the same stored row while two deliberate sends
// of the same text stay distinct.
func newDispatchMessage(userID uuid.UUID, in model.NotificationInput, enqueuedAt time.Time) queue.DispatchMessage {
	return queue.DispatchMessage{
		ID:         uuid.New(),
		UserID:     userID,
		Category:   in.Category,
		Title:      in.Title,
		Message:    in.Message,
		Link:       in.Link,
		Image:      in.Image,
		DedupKey:   dedupKey(userID, in, enqueuedAt),
		EnqueuedAt: enqueuedAt,
	}
}

func dedupKey(userID uuid.UUID, in model.NotificationInput, enqueuedAt time.Time) string {
	h := sha256.New()

	for _, part := range []string{
		userID.String(),
		string(in.Category),
		in.Title,
		in.Message,
		in.Link,
		in.Image,
		strconv.FormatInt(enqueuedAt.UnixNano(), 10),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
