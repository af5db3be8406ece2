// internal/app/features/groups/types.go
package groups

import (
	"time"

	"github.com/genielearn/genielearn/internal/domain/models"
)

// groupSummary is the stable public projection of a group document.
// The store's raw metadata fields are never passed through wholesale.
type groupSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	MemberCount int       `json:"member_count"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func summarize(g models.Group) groupSummary {
	return groupSummary{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Subject:     g.Subject,
		MemberCount: len(g.Members),
		CreatorID:   g.CreatorID,
		CreatedAt:   g.CreatedAt,
	}
}

// memberEntry is one resolved member in a group's member listing. Role
// is derived, not stored: "creator" iff the member is the group's
// creator.
type memberEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// messageView is the public projection of a message document.
type messageView struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	GroupID           string    `json:"group_id"`
	SenderID          string    `json:"sender_id"`
	SenderName        string    `json:"sender_name"`
	Timestamp         time.Time `json:"timestamp"`
	IsSystemMessage   bool      `json:"is_system_message"`
	SystemMessageType string    `json:"system_message_type,omitempty"`
}

func viewMessage(m models.Message) messageView {
	return messageView{
		ID:                m.ID,
		Content:           m.Content,
		GroupID:           m.GroupID,
		SenderID:          m.SenderID,
		SenderName:        m.SenderName,
		Timestamp:         m.Timestamp,
		IsSystemMessage:   m.IsSystemMessage,
		SystemMessageType: m.SystemMessageType,
	}
}

// groupStats is the aggregate view computed over a single page of up to
// 1000 groups.
type groupStats struct {
	TotalGroups           int `json:"totalGroups"`
	TotalPublicGroups     int `json:"totalPublicGroups"`
	UserJoinedGroups      int `json:"userJoinedGroups"`
	PublicGroupsJoined    int `json:"publicGroupsJoined"`
	PublicGroupsNotJoined int `json:"publicGroupsNotJoined"`
}
