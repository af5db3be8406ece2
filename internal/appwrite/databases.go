// internal/appwrite/databases.go
package appwrite

import (
	"context"
	"net/http"
	"net/url"
)

// Databases wraps document CRUD for one database of the remote store.
// Documents live in collections keyed by database ID + collection ID +
// document ID; schemas are owned by the store, this client only moves
// JSON in and out.
type Databases struct {
	c          *Client
	databaseID string
}

func NewDatabases(c *Client, databaseID string) *Databases {
	return &Databases{c: c, databaseID: databaseID}
}

func (d *Databases) docPath(collectionID, documentID string) string {
	p := "/databases/" + url.PathEscape(d.databaseID) + "/collections/" + url.PathEscape(collectionID) + "/documents"
	if documentID != "" {
		p += "/" + url.PathEscape(documentID)
	}
	return p
}

// GetDocument fetches one document and decodes it into out.
func (d *Databases) GetDocument(ctx context.Context, collectionID, documentID string, out any) error {
	return d.c.call(ctx, http.MethodGet, d.docPath(collectionID, documentID), nil, nil, out)
}

// CreateDocument writes a new document. Pass UniqueID as documentID to
// let the store assign one; pass a concrete ID to tie documents across
// collections (e.g. profile ID == account ID).
func (d *Databases) CreateDocument(ctx context.Context, collectionID, documentID string, data, out any) error {
	return d.c.call(ctx, http.MethodPost, d.docPath(collectionID, ""), nil, map[string]any{
		"documentId": documentID,
		"data":       data,
	}, out)
}

// UpdateDocument patches fields of an existing document.
func (d *Databases) UpdateDocument(ctx context.Context, collectionID, documentID string, data, out any) error {
	return d.c.call(ctx, http.MethodPatch, d.docPath(collectionID, documentID), nil, map[string]any{
		"data": data,
	}, out)
}

// ListDocuments runs a filtered list query. out should point at a
// struct with `total` and `documents` fields.
func (d *Databases) ListDocuments(ctx context.Context, collectionID string, queries []string, out any) error {
	q := url.Values{}
	for _, s := range queries {
		q.Add("queries[]", s)
	}
	return d.c.call(ctx, http.MethodGet, d.docPath(collectionID, ""), q, nil, out)
}
