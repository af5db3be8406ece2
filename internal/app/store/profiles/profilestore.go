// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"time"

	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/genielearn/genielearn/internal/domain/models"
)

// Store proxies the user-profile collection. Profiles are read with the
// administrative client because member fan-out resolves arbitrary user
// IDs the caller's own session could never read.
type Store struct {
	db           *appwrite.Databases
	collectionID string
}

func New(db *appwrite.Databases, collectionID string) *Store {
	return &Store{db: db, collectionID: collectionID}
}

// GetByID fetches one profile. An absent profile surfaces as a remote
// 404; callers decide whether that is an error or a fallback case.
func (s *Store) GetByID(ctx context.Context, id string) (models.Profile, error) {
	var p models.Profile
	if err := s.db.GetDocument(ctx, s.collectionID, id, &p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// Create writes a new profile using p.ID as the document ID, tying the
// profile 1:1 to the account with the same identifier.
func (s *Store) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	subjects := p.SubjectsOfInterest
	if subjects == nil {
		subjects = []string{}
	}
	var out models.Profile
	err := s.db.CreateDocument(ctx, s.collectionID, p.ID, map[string]any{
		"name":                 p.Name,
		"email":                p.Email,
		"subjects_of_interest": subjects,
		"created_at":           p.CreatedAt,
	}, &out)
	if err != nil {
		return models.Profile{}, err
	}
	return out, nil
}
