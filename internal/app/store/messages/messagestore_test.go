package messagestore_test

import (
	"testing"
	"time"

	messagestore "github.com/genielearn/genielearn/internal/app/store/messages"
	"github.com/genielearn/genielearn/internal/domain/models"
	"github.com/genielearn/genielearn/internal/testutil"
)

func newTestStore(t *testing.T) (*messagestore.Store, *testutil.FakeRemote) {
	t.Helper()
	fake := testutil.NewFakeRemote(t)
	store := messagestore.New(testutil.Databases(fake), testutil.TestMessagesCollection)
	return store, fake
}

func TestCreate_GeneratesIDAndTimestamp(t *testing.T) {
	store, fake := newTestStore(t)

	m, err := store.Create(t.Context(), models.Message{
		Content:  "hello",
		GroupID:  "g1",
		SenderID: "u1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if m.ID == "" {
		t.Error("expected a generated message ID")
	}
	if m.Timestamp.IsZero() {
		t.Error("expected a defaulted timestamp")
	}
	if _, ok := fake.Document(testutil.TestMessagesCollection, m.ID); !ok {
		t.Error("message document not written")
	}
}

func TestCreate_KeepsProvidedFields(t *testing.T) {
	store, _ := newTestStore(t)

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m, err := store.Create(t.Context(), models.Message{
		ID:        "m1",
		Content:   "hello",
		GroupID:   "g1",
		SenderID:  "u1",
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if m.ID != "m1" || !m.Timestamp.Equal(ts) {
		t.Errorf("provided fields overwritten: %+v", m)
	}
}

func TestListByGroup_FiltersAndOrders(t *testing.T) {
	store, fake := newTestStore(t)

	first := testutil.MessageFixture("m1", "g1", "u1", "first")
	second := testutil.MessageFixture("m2", "g1", "u2", "second")
	second.Timestamp = first.Timestamp.Add(time.Hour)
	other := testutil.MessageFixture("m3", "g2", "u1", "elsewhere")

	// Seed newest first to prove ordering comes from the query.
	fake.SeedDocument(t, testutil.TestMessagesCollection, second)
	fake.SeedDocument(t, testutil.TestMessagesCollection, first)
	fake.SeedDocument(t, testutil.TestMessagesCollection, other)

	list, err := store.ListByGroup(t.Context(), "g1", 20, 0)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(list))
	}
	if list[0].ID != "m1" || list[1].ID != "m2" {
		t.Errorf("expected chronological order, got %s, %s", list[0].ID, list[1].ID)
	}
}

func TestListByGroup_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	list, err := store.ListByGroup(t.Context(), "g1", 20, 0)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no messages, got %d", len(list))
	}
}
