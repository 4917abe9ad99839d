package pubsub

import (
	"strconv"

	"labgas/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.RecordEvent) map[string]string {
	attributes := map[string]string{
		"entity":    event.Entity,
		"action":    event.Action,
		"record_id": strconv.FormatInt(event.RecordID, 10),
		"user_id":   event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// eventKey identifies one change of one record, e.g. "cylinder.updated.42".
func eventKey(event *service.RecordEvent) string {
	return event.Entity + "." + event.Action + "." + strconv.FormatInt(event.RecordID, 10)
}
