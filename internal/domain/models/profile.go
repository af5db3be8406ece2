// internal/domain/models/profile.go
package models

import "time"

// Profile is the app-specific user document kept alongside the store's
// own account record. Invariant: the profile's document ID equals the
// account ID, tying the two 1:1. A profile may be absent, in which case
// handlers fall back to bare account fields.
type Profile struct {
	ID                 string    `json:"$id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	SubjectsOfInterest []string  `json:"subjects_of_interest"`
	CreatedAt          time.Time `json:"created_at"`
}
