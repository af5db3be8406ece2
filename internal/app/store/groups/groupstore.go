// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"sync"

	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/genielearn/genielearn/internal/domain/models"
)

// Store proxies the groups collection of the remote store. All calls go
// through the administrative client: group documents are shared state
// no single user's session may read or write across members.
type Store struct {
	db           *appwrite.Databases
	collectionID string

	// mu guards locks; locks serializes joins per group ID so the
	// read-check-append-write on members cannot lose a member to a
	// concurrent join handled by this process.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var ErrAlreadyMember = errors.New("already a member of this group")

func New(db *appwrite.Databases, collectionID string) *Store {
	return &Store{
		db:           db,
		collectionID: collectionID,
		locks:        make(map[string]*sync.Mutex),
	}
}

type groupList struct {
	Total     int            `json:"total"`
	Documents []models.Group `json:"documents"`
}

// GetByID fetches one group. A missing group surfaces as a remote 404.
func (s *Store) GetByID(ctx context.Context, id string) (models.Group, error) {
	var g models.Group
	if err := s.db.GetDocument(ctx, s.collectionID, id, &g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// ListPage fetches one page of groups ordered by creation descending.
func (s *Store) ListPage(ctx context.Context, limit, offset int) ([]models.Group, error) {
	var out groupList
	err := s.db.ListDocuments(ctx, s.collectionID, []string{
		appwrite.QueryOrderDesc("$createdAt"),
		appwrite.QueryLimit(limit),
		appwrite.QueryOffset(offset),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Documents, nil
}

func (s *Store) groupLock(groupID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[groupID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[groupID] = m
	}
	return m
}

// Join appends userID to the group's member list and persists the full
// updated array. Returns ErrAlreadyMember when the user is already in
// the list. Joins are serialized per group within this process; the
// write itself is still last-writer-wins at the remote store.
func (s *Store) Join(ctx context.Context, groupID, userID string) (models.Group, error) {
	lock := s.groupLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	g, err := s.GetByID(ctx, groupID)
	if err != nil {
		return models.Group{}, err
	}
	if g.HasMember(userID) {
		return models.Group{}, ErrAlreadyMember
	}

	members := append(append([]string{}, g.Members...), userID)
	var updated models.Group
	err = s.db.UpdateDocument(ctx, s.collectionID, groupID, map[string]any{
		"members": members,
	}, &updated)
	if err != nil {
		return models.Group{}, err
	}
	return updated, nil
}
