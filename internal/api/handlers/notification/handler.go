package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/stayloop/notify/internal/api/dto"
	"github.com/stayloop/notify/internal/api/respond"
	"github.com/stayloop/notify/internal/config"
	"github.com/stayloop/notify/internal/model"
	notifrepo "github.com/stayloop/notify/internal/repository/notification"
	"github.com/stayloop/notify/internal/repository/user"
	notifsvc "github.com/stayloop/notify/internal/service/notification"
)

type notifService interface {
	Notify(ctx context.Context, strategy retry.Strategy, userID uuid.UUID, in model.NotificationInput) (bool, error)
	Broadcast(ctx context.Context, strategy retry.Strategy, in model.NotificationInput) error
	ListByUser(ctx context.Context, userID uuid.UUID, cursor uuid.NullUUID, limit int) (model.NotificationPage, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	ClearAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Handler struct {
	service   notifService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s notifService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

type sendResponse struct {
	Accepted bool `json:"accepted"`
}

type broadcastResponse struct {
	OK bool `json:"ok"`
}

type markReadResponse struct {
	OK          bool `json:"ok"`
	AlreadyRead bool `json:"already_read"`
}

type markAllReadResponse struct {
	OK    bool  `json:"ok"`
	Count int64 `json:"count"`
}

type clearResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// Send schedules a notification for one recipient.
func (h *Handler) Send(c *ginext.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", c.Param("user_id")).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	var req dto.SendRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	in := model.NotificationInput{
		Category: model.Category(req.Category),
		Title:    req.Title,
		Message:  req.Message,
		Link:     req.Link,
		Image:    req.Image,
	}

	accepted, err := h.service.Notify(c.Request.Context(), h.cfg.Retry, userID, in)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			zlog.Logger.Warn().Str("user_id", userID.String()).Msg("user not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("user not found"))
			return
		}

		if errors.Is(err, notifsvc.ErrQueueUnavailable) {
			zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to enqueue notification")
			respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("notification queue unavailable"))
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to send notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, sendResponse{Accepted: accepted})
}

// Broadcast fans a notification out to every user.
func (h *Handler) Broadcast(c *ginext.Context) {
	var req dto.BroadcastRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	in := model.NotificationInput{
		Category: model.Category(req.Category),
		Title:    req.Title,
		Message:  req.Message,
		Link:     req.Link,
		Image:    req.Image,
	}

	if err := h.service.Broadcast(c.Request.Context(), h.cfg.Retry, in); err != nil {
		var partial *notifsvc.PartialFanoutError
		if errors.As(err, &partial) {
			zlog.Logger.Error().Err(err).Int("total", partial.Total).Msg("broadcast partially failed")
			respond.Fail(c.Writer, http.StatusInternalServerError, partial)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to broadcast notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, broadcastResponse{OK: true})
}

// List returns one page of a user's notifications.
func (h *Handler) List(c *ginext.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", c.Param("user_id")).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	var cursor uuid.NullUUID
	if raw := c.Query("cursor"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("cursor", raw).Msg("failed to parse cursor")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid cursor"))
			return
		}

		cursor = uuid.NullUUID{UUID: id, Valid: true}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(notifsvc.DefaultPageLimit)))
	if err != nil || limit <= 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
		return
	}

	page, err := h.service.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, page)
}

// MarkRead marks one notification as read.
func (h *Handler) MarkRead(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", c.Param("id")).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	alreadyRead, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, markReadResponse{OK: true, AlreadyRead: alreadyRead})
}

// MarkAllRead marks every unread notification of a user as read.
func (h *Handler) MarkAllRead(c *ginext.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", c.Param("user_id")).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	count, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to mark all notifications read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, markAllReadResponse{OK: true, Count: count})
}

// Clear hard-deletes every notification of a user.
func (h *Handler) Clear(c *ginext.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", c.Param("user_id")).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	count, err := h.service.ClearAll(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNoNotifications) {
			zlog.Logger.Warn().Str("user_id", userID.String()).Msg("nothing to clear")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("no notifications to clear"))
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, clearResponse{DeletedCount: count})
}
