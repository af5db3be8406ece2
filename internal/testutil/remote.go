// internal/testutil/remote.go
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// Collection IDs the fake store serves. Construct stores against these
// in tests.
const (
	TestDatabaseID         = "maindb"
	TestProfilesCollection = "profiles"
	TestGroupsCollection   = "groups"
	TestMessagesCollection = "messages"
	TestBucketID           = "avatars"

	TestProject = "test-project"
	TestAPIKey  = "test-api-key"
)

type remoteUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

type remoteFile struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}

// FakeRemote is an in-memory stand-in for the remote document/file
// store, served over httptest. It implements the subset of the store's
// REST surface the app talks to: account and session endpoints,
// document CRUD with list queries, file metadata, and health.
type FakeRemote struct {
	Server *httptest.Server

	mu        sync.Mutex
	users     map[string]*remoteUser       // by ID
	byEmail   map[string]string            // email -> user ID
	sessions  map[string]string            // secret -> user ID
	oauth     map[string]string            // one-shot token secret -> user ID
	docs      map[string][]map[string]any  // collection ID -> ordered documents
	files     map[string]remoteFile        // by file ID
	unhealthy bool
	seq       int

	// Requests records method+path of every call, for assertions on
	// which endpoints a handler touched.
	Requests []string
}

// NewFakeRemote starts the fake store and registers cleanup on t.
func NewFakeRemote(t *testing.T) *FakeRemote {
	t.Helper()
	f := &FakeRemote{
		users:    make(map[string]*remoteUser),
		byEmail:  make(map[string]string),
		sessions: make(map[string]string),
		oauth:    make(map[string]string),
		docs:     make(map[string][]map[string]any),
		files:    make(map[string]remoteFile),
	}
	f.Server = httptest.NewServer(f.router())
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the fake store's endpoint, for appwrite.Config.Endpoint.
func (f *FakeRemote) URL() string { return f.Server.URL }

func (f *FakeRemote) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

// AddUser seeds an identity with known credentials and returns its ID.
func (f *FakeRemote) AddUser(name, email, password string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID("user")
	f.users[id] = &remoteUser{ID: id, Name: name, Email: email, Password: password}
	f.byEmail[email] = id
	return id
}

// AddSession seeds an active session secret for a user.
func (f *FakeRemote) AddSession(secret, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[secret] = userID
}

// AddOAuthToken seeds a one-shot userId/secret pair of the kind the
// store's OAuth callback hands back, exchangeable once for a session.
func (f *FakeRemote) AddOAuthToken(secret, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.oauth[secret] = userID
}

// HasSession reports whether secret is still an active session.
func (f *FakeRemote) HasSession(secret string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.sessions[secret]
	return ok
}

// AddFile seeds file metadata in the bucket.
func (f *FakeRemote) AddFile(id, name, mimeType string, size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[id] = remoteFile{ID: id, Name: name, MimeType: mimeType, Size: size}
}

// SetUnhealthy makes the health endpoint fail.
func (f *FakeRemote) SetUnhealthy(unhealthy bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unhealthy = unhealthy
}

// SeedDocument inserts v into a collection as a document. v marshals
// through JSON, so model structs land with their wire field names. A
// missing $createdAt gets the current time.
func (f *FakeRemote) SeedDocument(t *testing.T, collectionID string, v any) {
	t.Helper()
	doc, err := toDoc(v)
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, _ := doc["$id"].(string); id == "" {
		doc["$id"] = f.nextID("doc")
	}
	if ts, _ := doc["$createdAt"].(string); ts == "" {
		doc["$createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	}
	f.docs[collectionID] = append(f.docs[collectionID], doc)
}

// Document returns a stored document by ID, for assertions on writes.
func (f *FakeRemote) Document(collectionID, documentID string) (map[string]any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs[collectionID] {
		if d["$id"] == documentID {
			return d, true
		}
	}
	return nil, false
}

// Documents returns all documents of a collection in insertion order.
func (f *FakeRemote) Documents(collectionID string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any{}, f.docs[collectionID]...)
}

func toDoc(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (f *FakeRemote) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.Requests = append(f.Requests, req.Method+" "+req.URL.Path)
			f.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/health", f.handleHealth)

	r.Post("/account", f.handleAccountCreate)
	r.Post("/account/sessions/email", f.handleEmailSession)
	r.Post("/account/sessions/token", f.handleTokenSession)
	r.Get("/account", f.handleAccountGet)
	r.Delete("/account/sessions/{sessionID}", f.handleSessionDelete)

	r.Get("/users/{userID}", f.handleUserGet)

	r.Route("/databases/{databaseID}/collections/{collectionID}/documents", func(r chi.Router) {
		r.Get("/", f.handleDocumentList)
		r.Post("/", f.handleDocumentCreate)
		r.Get("/{documentID}", f.handleDocumentGet)
		r.Patch("/{documentID}", f.handleDocumentUpdate)
	})

	r.Get("/storage/buckets/{bucketID}/files/{fileID}", f.handleFileGet)

	return r
}

func writeRemoteError(w http.ResponseWriter, code int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"type":    errType,
		"message": message,
	})
}

func writeRemoteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *FakeRemote) handleHealth(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	bad := f.unhealthy
	f.mu.Unlock()
	if bad {
		writeRemoteError(w, http.StatusServiceUnavailable, "general_service_disabled", "Service is unhealthy")
		return
	}
	writeRemoteJSON(w, http.StatusOK, map[string]any{"status": "pass"})
}

func userJSON(u *remoteUser) map[string]any {
	return map[string]any{"$id": u.ID, "name": u.Name, "email": u.Email}
}

func sessionJSON(id, userID, secret string) map[string]any {
	return map[string]any{
		"$id":      id,
		"userId":   userID,
		"secret":   secret,
		"expire":   time.Now().UTC().Add(30 * 24 * time.Hour).Format(time.RFC3339Nano),
		"provider": "email",
	}
}

func (f *FakeRemote) handleAccountCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   string `json:"userId"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRemoteError(w, http.StatusBadRequest, "general_argument_invalid", "Invalid request body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byEmail[body.Email]; exists {
		writeRemoteError(w, http.StatusConflict, "user_already_exists",
			"A user with the same id, email, or phone already exists in this project.")
		return
	}
	id := body.UserID
	if id == "" || id == "unique()" {
		id = f.nextID("user")
	}
	u := &remoteUser{ID: id, Name: body.Name, Email: body.Email, Password: body.Password}
	f.users[id] = u
	f.byEmail[body.Email] = id
	writeRemoteJSON(w, http.StatusCreated, userJSON(u))
}

func (f *FakeRemote) handleEmailSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRemoteError(w, http.StatusBadRequest, "general_argument_invalid", "Invalid request body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byEmail[body.Email]
	if !ok || f.users[id].Password != body.Password {
		writeRemoteError(w, http.StatusUnauthorized, "user_invalid_credentials",
			"Invalid credentials. Please check the email and password.")
		return
	}
	secret := f.nextID("secret")
	f.sessions[secret] = id
	writeRemoteJSON(w, http.StatusCreated, sessionJSON(f.nextID("session"), id, secret))
}

func (f *FakeRemote) handleTokenSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
		Secret string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRemoteError(w, http.StatusBadRequest, "general_argument_invalid", "Invalid request body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.oauth[body.Secret] != body.UserID || body.UserID == "" {
		writeRemoteError(w, http.StatusUnauthorized, "user_invalid_token", "Invalid token")
		return
	}
	delete(f.oauth, body.Secret)
	secret := f.nextID("secret")
	f.sessions[secret] = body.UserID
	writeRemoteJSON(w, http.StatusCreated, sessionJSON(f.nextID("session"), body.UserID, secret))
}

func (f *FakeRemote) sessionUser(r *http.Request) (*remoteUser, string, bool) {
	secret := r.Header.Get("X-Appwrite-Session")
	id, ok := f.sessions[secret]
	if !ok {
		return nil, "", false
	}
	return f.users[id], secret, true
}

func (f *FakeRemote) handleAccountGet(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, _, ok := f.sessionUser(r)
	if !ok {
		writeRemoteError(w, http.StatusUnauthorized, "general_unauthorized_scope", "User (role: guests) missing scope (account)")
		return
	}
	writeRemoteJSON(w, http.StatusOK, userJSON(u))
}

func (f *FakeRemote) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, secret, ok := f.sessionUser(r)
	if !ok {
		writeRemoteError(w, http.StatusUnauthorized, "general_unauthorized_scope", "User (role: guests) missing scope (account)")
		return
	}
	id := chi.URLParam(r, "sessionID")
	if id != "current" && !strings.HasPrefix(id, "session") {
		writeRemoteError(w, http.StatusNotFound, "user_session_not_found", "Session not found")
		return
	}
	delete(f.sessions, secret)
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeRemote) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("X-Appwrite-Key") != TestAPIKey {
		writeRemoteError(w, http.StatusUnauthorized, "general_unauthorized_scope", "Missing API key")
		return false
	}
	return true
}

func (f *FakeRemote) handleUserGet(w http.ResponseWriter, r *http.Request) {
	if !f.requireAdmin(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[chi.URLParam(r, "userID")]
	if !ok {
		writeRemoteError(w, http.StatusNotFound, "user_not_found", "User with the requested ID could not be found.")
		return
	}
	writeRemoteJSON(w, http.StatusOK, userJSON(u))
}

var (
	reLimit  = regexp.MustCompile(`^limit\((\d+)\)$`)
	reOffset = regexp.MustCompile(`^offset\((\d+)\)$`)
	reAsc    = regexp.MustCompile(`^orderAsc\("([^"]+)"\)$`)
	reDesc   = regexp.MustCompile(`^orderDesc\("([^"]+)"\)$`)
	reEqual  = regexp.MustCompile(`^equal\("([^"]+)", \["([^"]*)"\]\)$`)
)

func (f *FakeRemote) handleDocumentList(w http.ResponseWriter, r *http.Request) {
	if !f.requireAdmin(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	docs := append([]map[string]any{}, f.docs[chi.URLParam(r, "collectionID")]...)

	limit, offset := 25, 0
	for _, q := range r.URL.Query()["queries[]"] {
		switch {
		case reLimit.MatchString(q):
			limit, _ = strconv.Atoi(reLimit.FindStringSubmatch(q)[1])
		case reOffset.MatchString(q):
			offset, _ = strconv.Atoi(reOffset.FindStringSubmatch(q)[1])
		case reAsc.MatchString(q):
			attr := reAsc.FindStringSubmatch(q)[1]
			sort.SliceStable(docs, func(i, j int) bool {
				return fmt.Sprint(docs[i][attr]) < fmt.Sprint(docs[j][attr])
			})
		case reDesc.MatchString(q):
			attr := reDesc.FindStringSubmatch(q)[1]
			sort.SliceStable(docs, func(i, j int) bool {
				return fmt.Sprint(docs[i][attr]) > fmt.Sprint(docs[j][attr])
			})
		case reEqual.MatchString(q):
			m := reEqual.FindStringSubmatch(q)
			attr, want := m[1], m[2]
			kept := docs[:0]
			for _, d := range docs {
				if fmt.Sprint(d[attr]) == want {
					kept = append(kept, d)
				}
			}
			docs = kept
		default:
			writeRemoteError(w, http.StatusBadRequest, "general_query_invalid", "Invalid query: "+q)
			return
		}
	}

	total := len(docs)
	if offset > len(docs) {
		offset = len(docs)
	}
	docs = docs[offset:]
	if limit < len(docs) {
		docs = docs[:limit]
	}
	writeRemoteJSON(w, http.StatusOK, map[string]any{"total": total, "documents": docs})
}

func (f *FakeRemote) handleDocumentCreate(w http.ResponseWriter, r *http.Request) {
	if !f.requireAdmin(w, r) {
		return
	}
	var body struct {
		DocumentID string         `json:"documentId"`
		Data       map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRemoteError(w, http.StatusBadRequest, "general_argument_invalid", "Invalid request body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	col := chi.URLParam(r, "collectionID")
	id := body.DocumentID
	if id == "" || id == "unique()" {
		id = f.nextID("doc")
	}
	for _, d := range f.docs[col] {
		if d["$id"] == id {
			writeRemoteError(w, http.StatusConflict, "document_already_exists",
				"Document with the requested ID already exists.")
			return
		}
	}
	doc := map[string]any{}
	for k, v := range body.Data {
		doc[k] = v
	}
	doc["$id"] = id
	doc["$createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	f.docs[col] = append(f.docs[col], doc)
	writeRemoteJSON(w, http.StatusCreated, doc)
}

func (f *FakeRemote) findDoc(col, id string) map[string]any {
	for _, d := range f.docs[col] {
		if d["$id"] == id {
			return d
		}
	}
	return nil
}

func (f *FakeRemote) handleDocumentGet(w http.ResponseWriter, r *http.Request) {
	if !f.requireAdmin(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.findDoc(chi.URLParam(r, "collectionID"), chi.URLParam(r, "documentID"))
	if doc == nil {
		writeRemoteError(w, http.StatusNotFound, "document_not_found",
			"Document with the requested ID could not be found.")
		return
	}
	writeRemoteJSON(w, http.StatusOK, doc)
}

func (f *FakeRemote) handleDocumentUpdate(w http.ResponseWriter, r *http.Request) {
	if !f.requireAdmin(w, r) {
		return
	}
	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeRemoteError(w, http.StatusBadRequest, "general_argument_invalid", "Invalid request body")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	doc := f.findDoc(chi.URLParam(r, "collectionID"), chi.URLParam(r, "documentID"))
	if doc == nil {
		writeRemoteError(w, http.StatusNotFound, "document_not_found",
			"Document with the requested ID could not be found.")
		return
	}
	for k, v := range body.Data {
		doc[k] = v
	}
	writeRemoteJSON(w, http.StatusOK, doc)
}

func (f *FakeRemote) handleFileGet(w http.ResponseWriter, r *http.Request) {
	if !f.requireAdmin(w, r) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[chi.URLParam(r, "fileID")]
	if !ok {
		writeRemoteError(w, http.StatusNotFound, "storage_file_not_found",
			"The requested file could not be found.")
		return
	}
	writeRemoteJSON(w, http.StatusOK, map[string]any{
		"$id":          file.ID,
		"name":         file.Name,
		"mimeType":     file.MimeType,
		"sizeOriginal": file.Size,
	})
}
