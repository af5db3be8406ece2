package storage_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genielearn/genielearn/internal/app/features/storage"
	"github.com/genielearn/genielearn/internal/app/system/session"
	"github.com/genielearn/genielearn/internal/appwrite"
	"github.com/genielearn/genielearn/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*storage.Handler, *testutil.FakeRemote) {
	t.Helper()
	fake := testutil.NewFakeRemote(t)
	files := appwrite.NewStorage(testutil.Client(fake).AsAdmin(), testutil.TestBucketID)
	return storage.NewHandler(files, zap.NewNop()), fake
}

func TestHandleView_RedirectsToStore(t *testing.T) {
	h, fake := newTestHandler(t)
	fake.AddFile("f1", "avatar.png", "image/png", 1024)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/storage/f1/view", nil), "fileId", "f1")
	rec := httptest.NewRecorder()
	h.HandleView(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status: got %d, want 307 (body %s)", rec.Code, rec.Body.String())
	}
	want := fake.URL() + "/storage/buckets/" + testutil.TestBucketID + "/files/f1/view?project=" + testutil.TestProject
	if loc := rec.Header().Get("Location"); loc != want {
		t.Errorf("location: got %q, want %q", loc, want)
	}
}

func TestHandleDownload_RedirectsToStore(t *testing.T) {
	h, fake := newTestHandler(t)
	fake.AddFile("f1", "notes.pdf", "application/pdf", 2048)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/storage/f1/download", nil), "fileId", "f1")
	rec := httptest.NewRecorder()
	h.HandleDownload(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status: got %d, want 307", rec.Code)
	}
	want := fake.URL() + "/storage/buckets/" + testutil.TestBucketID + "/files/f1/download?project=" + testutil.TestProject
	if loc := rec.Header().Get("Location"); loc != want {
		t.Errorf("location: got %q, want %q", loc, want)
	}
}

func TestHandleView_MissingFile(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/storage/nope/view", nil), "fileId", "nope")
	rec := httptest.NewRecorder()
	h.HandleView(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestRoutes_RequireSession(t *testing.T) {
	h, fake := newTestHandler(t)
	fake.AddFile("f1", "avatar.png", "image/png", 1024)

	rs := session.NewResolver("session", false, testutil.Client(fake))
	router := storage.Routes(h, rs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/f1/view", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status without session: got %d, want 401", rec.Code)
	}
}
