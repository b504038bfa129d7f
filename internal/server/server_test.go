package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mwarzecha/weft/pkg/assemble"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := assemble.NewRunner(nil, nil, logger)
	return New(runner, logger).Router()
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestAssembleEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assemble",
		strings.NewReader(`{"sequences":["AACCGGTT"],"k":4}`))
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var res assemble.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Contigs) != 1 || res.Contigs[0] != "AACCGGTT" {
		t.Errorf("contigs = %v, want [AACCGGTT]", res.Contigs)
	}
	if res.Stats.N50 != 8 {
		t.Errorf("N50 = %d, want 8", res.Stats.N50)
	}
	if res.RunID == "" {
		t.Error("run_id missing from response")
	}
}

func TestAssembleMissingSequences(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assemble", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAssembleMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assemble", strings.NewReader(`{"sequences":`))
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAssembleInvalidBase(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assemble",
		strings.NewReader(`{"sequences":["ACGNACGT"],"k":4}`))
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error == "" {
		t.Error("error message missing")
	}
}

func TestAssembleCyclicInput(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assemble",
		strings.NewReader(`{"sequences":["AAAAA"],"k":4}`))
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestAssembleNegativeK(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assemble",
		strings.NewReader(`{"sequences":["AACCGGTT"],"k":-1}`))
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}
