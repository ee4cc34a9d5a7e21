// Package store implements the remote table client. All persistence in
// this service lives in a hosted relational store exposed over a
// PostgREST-style interface; rows are read and written exclusively
// through filtered REST calls against named table endpoints. The client
// performs no retries, no caching and no batching, and no transaction
// spans more than one call.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"
)

// Filters holds key-based equality criteria for a table operation.
// Each entry becomes a `column=eq.value` query parameter.
type Filters map[string]string

// Error describes a non-2xx response from the remote store. Handlers
// log it and translate it into a generic internal error envelope.
type Error struct {
	Status int    // HTTP status returned by the store
	Body   string // raw response body, useful for logs
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: status %d: %s", e.Status, e.Body)
}

// Client issues filtered fetch/insert/update/delete calls against the
// remote table endpoints. It is safe for concurrent use.
type Client struct {
	baseURL string       // base REST endpoint, e.g. https://xyz.supabase.co/rest/v1
	apiKey  string       // service key sent as apikey + bearer token
	http    *http.Client // underlying transport
}

// New constructs a Client for the given base URL and API key. The
// base URL should already include the /rest/v1 segment.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch retrieves rows from table matching the filters and decodes the
// returned JSON array into dest, which must be a pointer to a slice.
// An empty result decodes into an empty slice, never an error.
func (c *Client) Fetch(ctx context.Context, table string, f Filters, dest any) error {
	return c.do(ctx, http.MethodGet, table, f, nil, dest)
}

// Insert writes one or more rows into table. A single row value is
// wrapped into a one-element array because the store expects arrays on
// insert. The inserted rows, including generated identifiers and
// timestamps, are decoded into dest when dest is non-nil.
func (c *Client) Insert(ctx context.Context, table string, rows any, dest any) error {
	return c.do(ctx, http.MethodPost, table, nil, asArray(rows), dest)
}

// Update applies patch to every row of table matching the filters and
// decodes the updated rows into dest when dest is non-nil.
func (c *Client) Update(ctx context.Context, table string, patch any, f Filters, dest any) error {
	return c.do(ctx, http.MethodPatch, table, f, patch, dest)
}

// Delete removes rows of table matching the filters. Most flows prefer
// a soft delete through Update; hard deletes are rare.
func (c *Client) Delete(ctx context.Context, table string, f Filters, dest any) error {
	return c.do(ctx, http.MethodDelete, table, f, nil, dest)
}

// do performs a single request against a table endpoint. Transport
// failures and non-2xx statuses propagate to the caller unchanged in
// meaning; there is deliberately no retry loop here.
func (c *Client) do(ctx context.Context, method, table string, f Filters, body any, dest any) error {
	u, err := url.Parse(c.baseURL + "/" + table)
	if err != nil {
		return fmt.Errorf("store: bad table url: %w", err)
	}
	q := u.Query()
	for col, val := range f {
		q.Set(col, "eq."+val)
	}
	u.RawQuery = q.Encode()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: marshal body: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return fmt.Errorf("store: build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if method != http.MethodGet {
		// Writes must echo the affected rows back so callers see
		// generated ids and timestamps.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, table, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("store: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if dest == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("store: decode %s rows: %w", table, err)
	}
	return nil
}

// asArray wraps a single row into a one-element slice. Slices and
// arrays pass through untouched.
func asArray(rows any) any {
	if rows == nil {
		return rows
	}
	k := reflect.TypeOf(rows).Kind()
	if k == reflect.Slice || k == reflect.Array {
		return rows
	}
	return []any{rows}
}
