package deposit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Portal names accepted by NewClient.
const (
	PortalZenodo  = "zenodo"
	PortalInvenio = "invenio"
)

// Record states reported by the deposit API.
const (
	StateUnsubmitted = "unsubmitted"
	StatePublished   = "published"
)

// List output formats and the Content-Type each negotiates.
const (
	FormatJSON   = "json"
	FormatIDs    = "ids"
	FormatBiblio = "biblio"
	FormatBibtex = "bibtex"
)

var formatContentTypes = map[string]string{
	FormatJSON:   "application/json",
	FormatIDs:    "application/json",
	FormatBiblio: "text/x-bibliography",
	FormatBibtex: "application/x-bibtex",
}

// RecordID is a record identifier as either portal emits it: Zenodo's
// legacy API uses JSON numbers, InvenioRDM uses strings.
type RecordID string

func (id RecordID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both a JSON number and a JSON string.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RecordID(n.String())
	return nil
}

// Record is the subset of the deposit API's record representation the
// lifecycle driver acts on.
type Record struct {
	ID        RecordID          `json:"id"`
	State     string            `json:"state"`
	Submitted bool              `json:"submitted"`
	Title     string            `json:"title,omitempty"`
	Links     map[string]string `json:"links,omitempty"`
}

// Published reports whether the record has left the draft state.
func (r *Record) Published() bool {
	return r.State == StatePublished || r.Submitted
}

// ListQuery filters and formats a records listing.
type ListQuery struct {
	State     string
	Community string
	Format    string
}

// Client drives the deposit lifecycle against one portal environment.
// It performs no retries; every failure surfaces to the caller.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// portalBase resolves the records endpoint for a portal/environment pair.
func portalBase(portal string, production bool) (string, error) {
	switch portal {
	case PortalZenodo:
		if production {
			return "https://zenodo.org/api/deposit/depositions", nil
		}
		return "https://sandbox.zenodo.org/api/deposit/depositions", nil
	case PortalInvenio:
		if production {
			return "https://oneclimate.dmponline.cloud.edu.au/api/records", nil
		}
		return "https://test.dmponline.cloud.edu.au/api/records", nil
	}
	return "", fmt.Errorf("unknown portal %q", portal)
}

// NewClient builds a client for the named portal. The token is supplied
// by the caller, never minted here.
func NewClient(portal string, production bool, token string) (*Client, error) {
	base, err := portalBase(portal, production)
	if err != nil {
		return nil, err
	}
	return NewClientURL(base, token), nil
}

// NewClientURL builds a client against an explicit base URL.
func NewClientURL(base, token string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		http:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Create posts a serialized record and returns the draft the API minted.
// Posting the same metadata twice intentionally creates a second draft;
// the returned id is the record's identity from here on.
func (c *Client) Create(ctx context.Context, record any) (*Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	data, err := c.do(ctx, http.MethodPost, c.base, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding created record: %w", err)
	}
	return &rec, nil
}

// Update replaces the metadata of an existing draft in place. Unlike
// Create it never mints a new record, so repeated runs against the same
// id stay idempotent.
func (c *Client) Update(ctx context.Context, id string, record any) (*Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	data, err := c.do(ctx, http.MethodPut, c.base+"/"+id, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding updated record: %w", err)
	}
	return &rec, nil
}

// List retrieves records matching the query. For FormatJSON and
// FormatIDs the records are decoded; for the bibliographic formats the
// raw negotiated body is returned instead.
func (c *Client) List(ctx context.Context, q ListQuery) ([]Record, string, error) {
	u := c.base
	params := url.Values{}
	if q.State != "" {
		params.Set("state", q.State)
	}
	if q.Community != "" {
		params.Set("community", q.Community)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	format := q.Format
	if format == "" {
		format = FormatJSON
	}
	contentType, ok := formatContentTypes[format]
	if !ok {
		return nil, "", fmt.Errorf("unknown list format %q", format)
	}

	data, err := c.do(ctx, http.MethodGet, u, contentType, nil)
	if err != nil {
		return nil, "", err
	}
	if format == FormatBiblio || format == FormatBibtex {
		return nil, string(data), nil
	}
	records, err := decodeRecordList(data)
	if err != nil {
		return nil, "", err
	}
	return records, "", nil
}

// decodeRecordList accepts both listing shapes: Zenodo's legacy API returns
// a top-level array, InvenioRDM wraps the records in a hits envelope.
func decodeRecordList(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Hits struct {
			Hits []Record `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding records list: %w", err)
	}
	return envelope.Hits.Hits, nil
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, id string) (*Record, error) {
	data, err := c.do(ctx, http.MethodGet, c.base+"/"+id, "application/json", nil)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", id, err)
	}
	return &rec, nil
}

// Delete removes a draft. Published records are rejected before any
// request is made; the portal would refuse them anyway, and refusing
// locally keeps the rule visible in one place.
func (c *Client) Delete(ctx context.Context, rec *Record) error {
	if rec.Published() {
		return fmt.Errorf("deleting record %s: %w", rec.ID, ErrPublishedRecord)
	}
	_, err := c.do(ctx, http.MethodDelete, c.base+"/"+rec.ID.String(), "application/json", nil)
	return err
}

// NewVersion opens a new draft superseding a published record.
func (c *Client) NewVersion(ctx context.Context, id string) (*Record, error) {
	u := c.base + "/" + id + "/actions/newversion"
	data, err := c.do(ctx, http.MethodPost, u, "application/json", nil)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding new version of %s: %w", id, err)
	}
	return &rec, nil
}

// Bucket resolves the file bucket URL for a record.
func (c *Client) Bucket(ctx context.Context, id string) (string, error) {
	rec, err := c.Get(ctx, id)
	if err != nil {
		return "", err
	}
	bucket, ok := rec.Links["bucket"]
	if !ok || bucket == "" {
		return "", fmt.Errorf("record %s: %w", id, ErrNoBucket)
	}
	return bucket, nil
}

// UploadFile streams one local file into a record's bucket. Callers
// iterating a file list should log the error and continue with the
// next file.
func (c *Client) UploadFile(ctx context.Context, bucketURL, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	u := strings.TrimRight(bucketURL, "/") + "/" + filepath.Base(path)
	if _, err := c.do(ctx, http.MethodPut, u, "application/octet-stream", f); err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}
	return nil
}

// do issues one request with the access token attached and returns the
// response body. Non-2xx statuses become an APIError carrying the body.
func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body io.Reader) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url %s: %w", rawURL, err)
	}
	q := u.Query()
	q.Set("access_token", c.token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, rawURL, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response of %s %s: %w", method, rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("deposit api error", "method", method, "url", rawURL, "status", resp.StatusCode, "body", string(data))
		return nil, &APIError{Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
