package repository

import (
	"fmt"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

// All keys of one caller share the {callerID} hash tag so the scripts stay within one slot.

func queueKey(callerID uint) string {
	return fmt.Sprintf("alarm:{%d}:queue", callerID)
}

func sequenceKey(callerID uint) string {
	return fmt.Sprintf("alarm:{%d}:seq", callerID)
}

func entryKey(callerID uint, queueID string) string {
	return fmt.Sprintf("alarm:{%d}:entry:%s", callerID, queueID)
}

func triggerKey(callerID, reminderID uint, trigger domain.TriggerType) string {
	return fmt.Sprintf("alarm:{%d}:trigger:%d:%s", callerID, reminderID, trigger)
}
