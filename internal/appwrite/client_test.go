package appwrite_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/genielearn/genielearn/internal/appwrite"
)

func newTestClient(handler http.HandlerFunc) (*appwrite.Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := appwrite.New(appwrite.Config{
		Endpoint: srv.URL,
		Project:  "proj",
		APIKey:   "admin-key",
	})
	return c, srv
}

func TestClient_AdminHeaders(t *testing.T) {
	var gotProject, gotKey, gotSession string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotProject = r.Header.Get("X-Appwrite-Project")
		gotKey = r.Header.Get("X-Appwrite-Key")
		gotSession = r.Header.Get("X-Appwrite-Session")
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	if err := c.AsAdmin().Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if gotProject != "proj" {
		t.Errorf("project header: got %q, want %q", gotProject, "proj")
	}
	if gotKey != "admin-key" {
		t.Errorf("key header: got %q, want %q", gotKey, "admin-key")
	}
	if gotSession != "" {
		t.Errorf("session header should be empty on admin client, got %q", gotSession)
	}
}

func TestClient_SessionHeaders(t *testing.T) {
	var gotKey, gotSession string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Appwrite-Key")
		gotSession = r.Header.Get("X-Appwrite-Session")
		w.Write([]byte(`{"$id":"u1","name":"N","email":"e@x.com"}`))
	})
	defer srv.Close()

	if _, err := appwrite.NewAccount(c.AsSession("tok-123")).Get(context.Background()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotSession != "tok-123" {
		t.Errorf("session header: got %q, want %q", gotSession, "tok-123")
	}
	if gotKey != "" {
		t.Errorf("key header should be empty on session client, got %q", gotKey)
	}
}

func TestClient_BaseClientSendsNoCredentials(t *testing.T) {
	var gotKey, gotSession string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Appwrite-Key")
		gotSession = r.Header.Get("X-Appwrite-Session")
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if gotKey != "" || gotSession != "" {
		t.Errorf("base client sent credentials: key=%q session=%q", gotKey, gotSession)
	}
}

func TestClient_RemoteErrorDecodes(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":404,"type":"document_not_found","message":"Document with the requested ID could not be found."}`))
	})
	defer srv.Close()

	err := c.AsAdmin().Health(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !appwrite.IsNotFound(err) {
		t.Errorf("expected IsNotFound, got %v", err)
	}
	if got := appwrite.ErrorMessage(err); !strings.Contains(got, "could not be found") {
		t.Errorf("ErrorMessage: got %q", got)
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})
	defer srv.Close()

	err := c.AsAdmin().Health(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if appwrite.IsNotFound(err) || appwrite.IsUnauthorized(err) || appwrite.IsConflict(err) {
		t.Errorf("502 misclassified: %v", err)
	}
}

func TestClient_TransportErrorHasNoMessage(t *testing.T) {
	c := appwrite.New(appwrite.Config{
		Endpoint: "http://127.0.0.1:1", // nothing listens here
		Project:  "proj",
	})
	err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := appwrite.ErrorMessage(err); got != "" {
		t.Errorf("transport errors must not surface a message, got %q", got)
	}
}

func TestOAuth2URL(t *testing.T) {
	c := appwrite.New(appwrite.Config{Endpoint: "https://store.example/v1", Project: "proj"})
	got := appwrite.NewAccount(c).OAuth2URL("google",
		"https://app.example/auth/oauth/callback",
		"https://app.example/login?error=oauth")

	if !strings.HasPrefix(got, "https://store.example/v1/account/sessions/oauth2/google?") {
		t.Errorf("unexpected URL prefix: %q", got)
	}
	for _, want := range []string{"project=proj", "success=", "failure="} {
		if !strings.Contains(got, want) {
			t.Errorf("URL missing %q: %q", want, got)
		}
	}
}

func TestQueryBuilders(t *testing.T) {
	cases := []struct{ got, want string }{
		{appwrite.QueryLimit(20), `limit(20)`},
		{appwrite.QueryOffset(40), `offset(40)`},
		{appwrite.QueryOrderAsc("timestamp"), `orderAsc("timestamp")`},
		{appwrite.QueryOrderDesc("$createdAt"), `orderDesc("$createdAt")`},
		{appwrite.QueryEqual("group_id", "g1"), `equal("group_id", ["g1"])`},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("query builder: got %q, want %q", c.got, c.want)
		}
	}
}
