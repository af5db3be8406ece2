package groupstore_test

import (
	"errors"
	"sync"
	"testing"

	groupstore "github.com/genielearn/genielearn/internal/app/store/groups"
	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/genielearn/genielearn/internal/testutil"
)

func newTestStore(t *testing.T) (*groupstore.Store, *testutil.FakeRemote) {
	t.Helper()
	fake := testutil.NewFakeRemote(t)
	store := groupstore.New(testutil.Databases(fake), testutil.TestGroupsCollection)
	return store, fake
}

func TestGetByID(t *testing.T) {
	store, fake := newTestStore(t)
	fake.SeedDocument(t, testutil.TestGroupsCollection, testutil.GroupFixture("g1", "Calculus", "u1"))

	g, err := store.GetByID(t.Context(), "g1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if g.Name != "Calculus" || g.CreatorID != "u1" {
		t.Errorf("unexpected group: %+v", g)
	}
}

func TestGetByID_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetByID(t.Context(), "nope")
	if !appwrite.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestListPage_NewestFirst(t *testing.T) {
	store, fake := newTestStore(t)

	older := testutil.GroupFixture("g1", "Algebra", "u1")
	newer := testutil.GroupFixture("g2", "Topology", "u1")
	newer.CreatedAt = older.CreatedAt.AddDate(0, 1, 0)
	fake.SeedDocument(t, testutil.TestGroupsCollection, older)
	fake.SeedDocument(t, testutil.TestGroupsCollection, newer)

	list, err := store.ListPage(t.Context(), 10, 0)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(list))
	}
	if list[0].ID != "g2" || list[1].ID != "g1" {
		t.Errorf("expected newest first, got %s, %s", list[0].ID, list[1].ID)
	}
}

func TestListPage_LimitAndOffset(t *testing.T) {
	store, fake := newTestStore(t)
	for _, id := range []string{"g1", "g2", "g3"} {
		fake.SeedDocument(t, testutil.TestGroupsCollection, testutil.GroupFixture(id, "Group "+id, "u1"))
	}

	list, err := store.ListPage(t.Context(), 2, 2)
	if err != nil {
		t.Fatalf("ListPage failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 group on the last page, got %d", len(list))
	}
}

func TestJoin(t *testing.T) {
	store, fake := newTestStore(t)
	fake.SeedDocument(t, testutil.TestGroupsCollection, testutil.GroupFixture("g1", "Calculus", "u1"))

	g, err := store.Join(t.Context(), "g1", "u2")
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if !g.HasMember("u2") || !g.HasMember("u1") {
		t.Errorf("expected both members, got %v", g.Members)
	}
}

func TestJoin_AlreadyMember(t *testing.T) {
	store, fake := newTestStore(t)
	fake.SeedDocument(t, testutil.TestGroupsCollection, testutil.GroupFixture("g1", "Calculus", "u1"))

	_, err := store.Join(t.Context(), "g1", "u1")
	if !errors.Is(err, groupstore.ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}
}

func TestJoin_MissingGroup(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Join(t.Context(), "nope", "u2")
	if !appwrite.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

// Concurrent joins to the same group must all land in the member list;
// the per-group lock prevents the read-modify-write from losing one.
func TestJoin_ConcurrentJoinsAllLand(t *testing.T) {
	store, fake := newTestStore(t)
	fake.SeedDocument(t, testutil.TestGroupsCollection, testutil.GroupFixture("g1", "Calculus", "u1"))

	users := []string{"u2", "u3", "u4", "u5", "u6"}
	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Join(t.Context(), "g1", u); err != nil {
				t.Errorf("Join(%s) failed: %v", u, err)
			}
		}()
	}
	wg.Wait()

	g, err := store.GetByID(t.Context(), "g1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(g.Members) != len(users)+1 {
		t.Fatalf("expected %d members, got %d: %v", len(users)+1, len(g.Members), g.Members)
	}
	for _, u := range users {
		if !g.HasMember(u) {
			t.Errorf("member %s lost in concurrent join", u)
		}
	}
}
