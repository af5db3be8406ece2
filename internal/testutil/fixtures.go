// internal/testutil/fixtures.go
package testutil

import (
	"time"

	"github.com/genielearn/genielearn/internal/domain/models"
)

// Fixture constructors for domain documents. Each returns a valid
// document a test can tweak before seeding into the fake store.

// GroupFixture returns a public group created by creatorID, who is also
// its first member.
func GroupFixture(id, name, creatorID string) models.Group {
	return models.Group{
		ID:          id,
		CreatedAt:   time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Name:        name,
		Description: "A study group for " + name,
		Subject:     "mathematics",
		CreatorID:   creatorID,
		Members:     []string{creatorID},
		IsPublic:    true,
	}
}

// ProfileFixture returns a profile whose document ID matches the
// account ID it belongs to.
func ProfileFixture(userID, name, email string) models.Profile {
	return models.Profile{
		ID:                 userID,
		Name:               name,
		Email:              email,
		SubjectsOfInterest: []string{"mathematics", "physics"},
		CreatedAt:          time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC),
	}
}

// MessageFixture returns a user-authored message in a group.
func MessageFixture(id, groupID, senderID, content string) models.Message {
	return models.Message{
		ID:         id,
		Content:    content,
		GroupID:    groupID,
		SenderID:   senderID,
		SenderName: "Test Sender",
		Timestamp:  time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
	}
}
