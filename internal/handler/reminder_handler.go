package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-visit-reminder/internal/auth"
	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type ReminderService interface {
	ParseScheduledDatetime(raw string) (time.Time, error)
	Create(ctx context.Context, callerID, recordID uint, scheduled time.Time) (*domain.Reminder, error)
	ListActive(ctx context.Context, callerID uint) ([]domain.Reminder, error)
	Cancel(ctx context.Context, callerID, reminderID uint) error
}

type ReminderHandler struct {
	reminderService ReminderService
}

func NewReminderHandler(reminderService ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) HandleCreate(c *gin.Context) {
	ctx := c.Request.Context()

	callerID, ok := auth.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "caller identity missing")
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	scheduled, err := h.reminderService.ParseScheduledDatetime(req.ScheduledDatetime)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	reminder, err := h.reminderService.Create(ctx, callerID, req.RecordID, scheduled)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateReminderResponse{ReminderID: reminder.ID})
}

func (h *ReminderHandler) HandleList(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "caller identity missing")
		return
	}

	reminders, err := h.reminderService.ListActive(c.Request.Context(), callerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListRemindersResponse{
		Count:     len(reminders),
		Reminders: newReminderItems(reminders),
	})
}

func (h *ReminderHandler) HandleCancel(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "caller identity missing")
		return
	}

	reminderID, err := strconv.ParseUint(c.Param("reminderId"), 10, 0)
	if err != nil || reminderID == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid reminder id")
		return
	}

	if err := h.reminderService.Cancel(c.Request.Context(), callerID, uint(reminderID)); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelReminderResponse{OK: true})
}
