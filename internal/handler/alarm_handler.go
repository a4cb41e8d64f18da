package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-visit-reminder/internal/auth"
	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/delivery"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/trigger"
)

type TriggerEvaluator interface {
	Evaluate(ctx context.Context, callerID uint, now time.Time) (*trigger.Result, error)
}

type DeliveryService interface {
	FetchQueue(ctx context.Context, callerID uint) ([]domain.QueueEntry, error)
	Dismiss(ctx context.Context, callerID uint, queueID string) (*delivery.DismissResult, error)
}

type AlarmHandler struct {
	evaluator       TriggerEvaluator
	deliveryService DeliveryService
	now             func() time.Time
}

func NewAlarmHandler(evaluator TriggerEvaluator, deliveryService DeliveryService) *AlarmHandler {
	return &AlarmHandler{
		evaluator:       evaluator,
		deliveryService: deliveryService,
		now:             time.Now,
	}
}

func (h *AlarmHandler) HandleCheckReminders(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "caller identity missing")
		return
	}

	result, err := h.evaluator.Evaluate(c.Request.Context(), callerID, h.now())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckRemindersResponse{NewlyQueued: result.NewlyQueued})
}

func (h *AlarmHandler) HandleGetQueue(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "caller identity missing")
		return
	}

	entries, err := h.deliveryService.FetchQueue(c.Request.Context(), callerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, QueueResponse{
		Count: len(entries),
		Queue: newQueueItems(entries),
	})
}

func (h *AlarmHandler) HandleDismiss(c *gin.Context) {
	callerID, ok := auth.CallerID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "caller identity missing")
		return
	}

	queueID := strings.TrimSpace(c.Param("queueId"))
	if queueID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "queue id is required")
		return
	}

	if _, err := h.deliveryService.Dismiss(c.Request.Context(), callerID, queueID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, DismissResponse{OK: true})
}
