// internal/domain/models/group.go
package models

import "time"

// Group is a community document with a member list and public/private
// visibility. Members is an ordered sequence of user IDs, append-only
// in this layer; a user ID appears at most once.
type Group struct {
	ID          string    `json:"$id"`
	CreatedAt   time.Time `json:"$createdAt"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	CreatorID   string    `json:"creator_id"`
	Members     []string  `json:"members"`
	IsPublic    bool      `json:"is_public"`
}

// HasMember reports whether userID is already in the member list.
func (g Group) HasMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}
