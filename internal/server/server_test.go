package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const ballRecord = `{"id":"79b73ef9-6e5c-469d-9da8-e7b0861ba93e","created":"2021-04-14T16:20:06.825Z","type":14,"category":0,"description":"Ball. 2-1","playerTags":[],"gameTags":["9466d8d8-bb1c-4b02-9b56-89b05f75e84c"],"teamTags":["36569151-a2fb-43c1-9df7-2df512424c82","b72f3061-f573-40d7-832a-5ad475bd7909"],"metadata":{"play":42,"subPlay":-1},"sim":"thisidisstaticyo","day":64,"season":14,"tournament":-1,"phase":6,"nuts":0}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New("127.0.0.1:0", slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return resp, out
}

func TestHandleParse_Ok(t *testing.T) {
	ts := newTestServer(t)
	resp, body := postJSON(t, ts.URL+"/v1/parse", ballRecord)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	var out struct {
		Kind        string `json:"kind"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Description != "Ball. 2-1" {
		t.Errorf("Description = %q, want %q", out.Description, "Ball. 2-1")
	}
	if out.Kind == "" {
		t.Error("Kind is empty, want the event type name")
	}
}

func TestHandleParse_UnparsableRecord(t *testing.T) {
	ts := newTestServer(t)
	broken := strings.Replace(ballRecord, "Ball. 2-1", "Ball. two-one", 1)
	resp, body := postJSON(t, ts.URL+"/v1/parse", broken)

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", resp.StatusCode, body)
	}
	var out struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Code == "" {
		t.Error("Code is empty, want a structured parse code")
	}
}

func TestHandleParse_BadJSON(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := postJSON(t, ts.URL+"/v1/parse", "{not json")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleBuild_Match(t *testing.T) {
	ts := newTestServer(t)
	resp, body := postJSON(t, ts.URL+"/v1/build", ballRecord)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	var out struct {
		Match  bool            `json:"match"`
		Record json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !out.Match {
		t.Errorf("Match = false, want true: %s", out.Record)
	}
}
