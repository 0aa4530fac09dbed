package ws

import (
	"encoding/json"
	"time"
)

type InteractionEvent struct {
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	JobID     int64  `json:"job_id"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

// NotifyInteractionRecorded satisfies the interaction usecase's notifier
// interface and fans the event out to connected listeners.
func (h *Hub) NotifyInteractionRecorded(userID, jobID int64, event string) {
	if h == nil {
		return
	}

	evt := InteractionEvent{
		Type:      "interaction_recorded",
		UserID:    userID,
		JobID:     jobID,
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
