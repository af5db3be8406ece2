// internal/domain/models/message.go
package models

import "time"

// System message event types with synthesized content. Any other type
// is passed through literally as "{userName} {type}".
const (
	SystemEventJoin  = "join"
	SystemEventLeave = "leave"
)

// Message is a chat message in a group, including platform-authored
// system messages describing membership events.
type Message struct {
	ID                string    `json:"$id"`
	Content           string    `json:"content"`
	GroupID           string    `json:"group_id"`
	SenderID          string    `json:"sender_id"`
	SenderName        string    `json:"sender_name"`
	Timestamp         time.Time `json:"timestamp"`
	IsSystemMessage   bool      `json:"is_system_message"`
	SystemMessageType string    `json:"system_message_type,omitempty"`
	SystemMessageUser string    `json:"system_message_user,omitempty"`
}

// SystemMessageContent is the pure content function for system
// messages: join and leave have fixed phrasing, anything else appends
// the event type verbatim.
func SystemMessageContent(eventType, userName string) string {
	switch eventType {
	case SystemEventJoin:
		return userName + " joined the group"
	case SystemEventLeave:
		return userName + " left the group"
	default:
		return userName + " " + eventType
	}
}
