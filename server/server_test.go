package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/search"
)

type stubSearcher struct {
	results []*core.MatchResult
	err     error
}

func (s *stubSearcher) Search(_ context.Context, _ string) ([]*core.MatchResult, error) {
	return s.results, s.err
}

func postSearch(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresSearcher(t *testing.T) {
	_, err := New(nil)
	assert.Equal(t, ErrSearchServiceRequired, err)
}

func TestHandleSearch_Success(t *testing.T) {
	stub := &stubSearcher{results: []*core.MatchResult{
		{
			Id:               "f1",
			FounderName:      "Ada Chen",
			MatchExplanation: "Strong overlap.",
			Provenance:       core.Provenance{MatchedOnFields: core.SearchFields, SourceId: "f1"},
		},
	}}
	srv, err := New(stub)
	require.NoError(t, err)

	rec := postSearch(t, srv.Handler(), `{"query": "fintech founders"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fintech founders", resp.Query)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, core.ID("f1"), resp.Matches[0].Id)
}

func TestHandleSearch_EmptyResultsAsArray(t *testing.T) {
	srv, err := New(&stubSearcher{results: nil})
	require.NoError(t, err)

	rec := postSearch(t, srv.Handler(), `{"query": "nobody"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matches":[]`)
}

func TestHandleSearch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty query", search.ErrEmptyQuery, http.StatusBadRequest},
		{"not initialized", search.ErrNotInitialized, http.StatusServiceUnavailable},
		{"internal", fmt.Errorf("badger exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := New(&stubSearcher{err: tt.err})
			require.NoError(t, err)

			rec := postSearch(t, srv.Handler(), `{"query": "x"}`)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				// Internal errors are not leaked to clients
				assert.NotContains(t, rec.Body.String(), "badger")
			}
		})
	}
}

func TestHandleSearch_BadBody(t *testing.T) {
	srv, err := New(&stubSearcher{})
	require.NoError(t, err)

	rec := postSearch(t, srv.Handler(), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv, err := New(&stubSearcher{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestCORSPreflight(t *testing.T) {
	srv, err := New(&stubSearcher{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/search", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
