package entities

import "time"

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is the opaque user-facing message emitted after save, delete and
// summary actions.
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Action    string            `json:"action"`
	RecordID  string            `json:"record_id,omitempty"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}
