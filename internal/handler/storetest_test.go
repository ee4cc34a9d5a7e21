package handler

// storetest_test.go hosts a tiny in-memory stand-in for the remote
// table store. It speaks just enough of the filtered REST dialect for
// the controllers under test: eq filters, array inserts with generated
// ids, patch updates and deletes. Rows live in plain maps so tests can
// seed and inspect them directly.

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

type fakeStore struct {
	mu     sync.Mutex
	tables map[string][]map[string]any
	nextID int
	srv    *httptest.Server
}

func newFakeStore() *fakeStore {
	fs := &fakeStore{tables: map[string][]map[string]any{}}
	fs.srv = httptest.NewServer(http.HandlerFunc(fs.handle))
	return fs
}

func (fs *fakeStore) Close()      { fs.srv.Close() }
func (fs *fakeStore) URL() string { return fs.srv.URL }

// seed inserts a row directly, bypassing HTTP.
func (fs *fakeStore) seed(table string, row map[string]any) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.tables[table] = append(fs.tables[table], row)
}

// rows returns a snapshot of a table.
func (fs *fakeStore) rows(table string) []map[string]any {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]map[string]any, len(fs.tables[table]))
	copy(out, fs.tables[table])
	return out
}

func (fs *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	table := strings.Trim(r.URL.Path, "/")
	filters := map[string]string{}
	for col, vals := range r.URL.Query() {
		if len(vals) > 0 {
			filters[col] = strings.TrimPrefix(vals[0], "eq.")
		}
	}

	matches := func(row map[string]any) bool {
		for col, want := range filters {
			if fmt.Sprint(row[col]) != want {
				return false
			}
		}
		return true
	}

	writeJSON := func(v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	switch r.Method {
	case http.MethodGet:
		out := []map[string]any{}
		for _, row := range fs.tables[table] {
			if matches(row) {
				out = append(out, row)
			}
		}
		writeJSON(out)

	case http.MethodPost:
		var rows []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		now := time.Now().UTC().Format(time.RFC3339)
		for _, row := range rows {
			if row["id"] == nil || row["id"] == "" {
				fs.nextID++
				row["id"] = fmt.Sprintf("id-%d", fs.nextID)
			}
			row["created_at"] = now
			row["updated_at"] = now
			fs.tables[table] = append(fs.tables[table], row)
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(rows)

	case http.MethodPatch:
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		out := []map[string]any{}
		for _, row := range fs.tables[table] {
			if matches(row) {
				for col, val := range patch {
					row[col] = val
				}
				row["updated_at"] = time.Now().UTC().Format(time.RFC3339)
				out = append(out, row)
			}
		}
		writeJSON(out)

	case http.MethodDelete:
		kept := []map[string]any{}
		out := []map[string]any{}
		for _, row := range fs.tables[table] {
			if matches(row) {
				out = append(out, row)
			} else {
				kept = append(kept, row)
			}
		}
		fs.tables[table] = kept
		writeJSON(out)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
