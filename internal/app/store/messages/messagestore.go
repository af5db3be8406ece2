// internal/app/store/messages/messagestore.go
package messagestore

import (
	"context"
	"time"

	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/genielearn/genielearn/internal/domain/models"
	"github.com/google/uuid"
)

// Store proxies the messages collection via the administrative client.
type Store struct {
	db           *appwrite.Databases
	collectionID string
}

func New(db *appwrite.Databases, collectionID string) *Store {
	return &Store{db: db, collectionID: collectionID}
}

type messageList struct {
	Total     int              `json:"total"`
	Documents []models.Message `json:"documents"`
}

// Create persists a message. The document ID is generated here rather
// than delegated to the store so the response can echo it immediately.
func (s *Store) Create(ctx context.Context, m models.Message) (models.Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	var out models.Message
	err := s.db.CreateDocument(ctx, s.collectionID, m.ID, map[string]any{
		"content":             m.Content,
		"group_id":            m.GroupID,
		"sender_id":           m.SenderID,
		"sender_name":         m.SenderName,
		"timestamp":           m.Timestamp,
		"is_system_message":   m.IsSystemMessage,
		"system_message_type": m.SystemMessageType,
		"system_message_user": m.SystemMessageUser,
	}, &out)
	if err != nil {
		return models.Message{}, err
	}
	return out, nil
}

// ListByGroup fetches one page of a group's messages in timestamp order.
func (s *Store) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]models.Message, error) {
	var out messageList
	err := s.db.ListDocuments(ctx, s.collectionID, []string{
		appwrite.QueryEqual("group_id", groupID),
		appwrite.QueryOrderAsc("timestamp"),
		appwrite.QueryLimit(limit),
		appwrite.QueryOffset(offset),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Documents, nil
}
