// internal/appwrite/storage.go
package appwrite

import (
	"context"
	"net/http"
	"net/url"
)

// File is the metadata record for a binary object in a bucket. The
// gateway never reads file bytes; it only existence-checks and
// redirects to the store's own view/download URLs.
type File struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// Storage wraps the binary object store for one bucket.
type Storage struct {
	c        *Client
	bucketID string
}

func NewStorage(c *Client, bucketID string) *Storage {
	return &Storage{c: c, bucketID: bucketID}
}

func (s *Storage) filePath(fileID string) string {
	return "/storage/buckets/" + url.PathEscape(s.bucketID) + "/files/" + url.PathEscape(fileID)
}

// GetFile fetches file metadata; a missing file surfaces as a 404.
func (s *Storage) GetFile(ctx context.Context, fileID string) (File, error) {
	var f File
	err := s.c.call(ctx, http.MethodGet, s.filePath(fileID), nil, nil, &f)
	return f, err
}

// ViewURL is the store's own inline-view URL for a file.
func (s *Storage) ViewURL(fileID string) string {
	return s.c.endpoint + s.filePath(fileID) + "/view?project=" + url.QueryEscape(s.c.project)
}

// DownloadURL is the store's own attachment-download URL for a file.
func (s *Storage) DownloadURL(fileID string) string {
	return s.c.endpoint + s.filePath(fileID) + "/download?project=" + url.QueryEscape(s.c.project)
}
