package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := charmlog.New(io.Discard)
	srv := httptest.NewServer(newRouter(logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"name": "Shop",
		"description": "Online shop",
		"persons": [{"name": "User", "description": "A customer"}]
	}`
	resp, err := http.Post(srv.URL+"/v1/export", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `workspace "Shop" "Online shop" {`) {
		t.Errorf("body = %s", out)
	}
	if !strings.Contains(string(out), `u = person "User" "A customer"`) {
		t.Errorf("body missing person line: %s", out)
	}
}

func TestExportEndpointBadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/export", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestExportEndpointInvalidWorkspace(t *testing.T) {
	srv := newTestServer(t)

	body := `{"persons": [{"name": "", "description": "Nameless"}]}`
	resp, err := http.Post(srv.URL+"/v1/export", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestExportEndpointUnknownReference(t *testing.T) {
	srv := newTestServer(t)

	body := `{"relationships": [{"source": "a", "target": "b", "description": "Calls"}]}`
	resp, err := http.Post(srv.URL+"/v1/export", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestExportEndpointMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/export")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
