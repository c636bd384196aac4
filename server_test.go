// server_test.go
// Copyright (C) 2024 The GoRummi Authors
// This file contains tests for the HTTP and WebSocket surface

package rummi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestHandleSetsRequest(t *testing.T) {
	w := httptest.NewRecorder()
	HandleSetsRequest(w, SetsRequest{
		Tiles: []string{"B2", "R2", "Y2", "?"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %v", w.Code)
	}
	var resp SetsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if resp.Version != ProtocolVersion {
		t.Errorf("Unexpected version '%v'", resp.Version)
	}
	if resp.Count != 5 || len(resp.Sets) != 5 {
		t.Errorf("Expected 5 sets, got count=%v len=%v", resp.Count, len(resp.Sets))
	}
	for _, s := range resp.Sets {
		if s.Kind != "group" {
			t.Errorf("Expected only groups for this tray, got '%v'", s.Kind)
		}
		if len(s.Tiles) < 3 || len(s.Tiles) > 4 {
			t.Errorf("Group size out of bounds: %v", s.Tiles)
		}
	}
}

func TestHandleSetsRequestLimit(t *testing.T) {
	w := httptest.NewRecorder()
	HandleSetsRequest(w, SetsRequest{
		Tiles: []string{"B2", "R2", "Y2", "?"},
		Limit: 2,
	})
	var resp SetsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if resp.Count != 2 || len(resp.Sets) != 2 {
		t.Errorf("Expected 2 sets with limit 2, got count=%v len=%v",
			resp.Count, len(resp.Sets))
	}
}

func TestHandleSetsRequestBadTile(t *testing.T) {
	w := httptest.NewRecorder()
	HandleSetsRequest(w, SetsRequest{
		Tiles: []string{"B2", "X9"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a bad tile code, got %v", w.Code)
	}
}

func TestHandleSetsRequestEmpty(t *testing.T) {
	// An empty tray is a normal request with an empty result
	w := httptest.NewRecorder()
	HandleSetsRequest(w, SetsRequest{})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for an empty tray, got %v", w.Code)
	}
	var resp SetsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("Expected 0 sets for an empty tray, got %v", resp.Count)
	}
}

func TestTrayHash(t *testing.T) {
	a := trayHash([]string{"B2", "R2", "?"})
	b := trayHash([]string{"?", "R2", "B2"})
	if a != b {
		t.Errorf("Tray hash should not depend on tile order")
	}
	c := trayHash([]string{"B2", "R2"})
	if a == c {
		t.Errorf("Different trays should not share a hash")
	}
}

func TestResultCache(t *testing.T) {
	rc := makeResultCache(4)
	fetches := 0
	fetch := func() []SetJson {
		fetches++
		return []SetJson{{Kind: "group", Tiles: []string{"R2", "B2", "Y2"}}}
	}
	first := rc.Lookup("key", fetch)
	second := rc.Lookup("key", fetch)
	if fetches != 1 {
		t.Errorf("Expected a single fetch, got %v", fetches)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("Cache returned unexpected results")
	}
	// A different key fetches again
	rc.Lookup("other", fetch)
	if fetches != 2 {
		t.Errorf("Expected a second fetch for a new key, got %v", fetches)
	}
}

func TestLoadConfig(t *testing.T) {
	// Defaults with no file
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.CacheSize != DefaultCacheSize {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	// File values
	path := filepath.Join(t.TempDir(), "rummi.yaml")
	content := "addr: \":9000\"\nallowed_origins: \"https://example.com\"\ncache_size: 16\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Unable to write config file: %v", err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.AllowedOrigins != "https://example.com" ||
		cfg.CacheSize != 16 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	// Environment overrides
	t.Setenv("PORT", "7777")
	t.Setenv("ACCESS_KEY", "sesame")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":7777" || cfg.AccessKey != "sesame" {
		t.Errorf("Environment overrides not applied: %+v", cfg)
	}
	// A missing file is an error
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadConfig should fail on a missing file")
	}
}

func TestHandleWsMsg(t *testing.T) {
	payload, _ := json.Marshal(SetsRequest{Tiles: []string{"B2", "R2", "Y2"}})
	reply := handleWsMsg(InMsg{T: "solve", ReqID: "1", P: payload})
	if reply.T != "sets" || reply.ReqID != "1" {
		t.Fatalf("Unexpected solve reply: %+v", reply)
	}
	resp, ok := reply.P.(SetsResponse)
	if !ok {
		t.Fatalf("Solve reply payload has the wrong type")
	}
	if resp.Count != 1 {
		t.Errorf("Expected 1 set, got %v", resp.Count)
	}
	reply = handleWsMsg(InMsg{T: "ping", ReqID: "2"})
	if reply.T != "pong" || reply.ReqID != "2" {
		t.Errorf("Unexpected ping reply: %+v", reply)
	}
	reply = handleWsMsg(InMsg{T: "solve", ReqID: "3", P: []byte(`{"tiles":["Z9"]}`)})
	if reply.T != "err" {
		t.Errorf("Expected an err reply for a bad tile, got '%v'", reply.T)
	}
	reply = handleWsMsg(InMsg{T: "nonsense"})
	if reply.T != "err" {
		t.Errorf("Expected an err reply for an unknown type, got '%v'", reply.T)
	}
}

func TestWebSocketRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(HandleWebSocket))
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("WebSocket dial failed: %v", err)
	}
	defer ws.Close()
	payload, _ := json.Marshal(SetsRequest{Tiles: []string{"B2", "B3", "B4"}})
	if err := ws.WriteJSON(InMsg{T: "solve", ReqID: "42", P: payload}); err != nil {
		t.Fatalf("WebSocket write failed: %v", err)
	}
	var reply struct {
		T     string       `json:"t"`
		ReqID string       `json:"reqId"`
		P     SetsResponse `json:"p"`
	}
	if err := ws.ReadJSON(&reply); err != nil {
		t.Fatalf("WebSocket read failed: %v", err)
	}
	if reply.T != "sets" || reply.ReqID != "42" {
		t.Fatalf("Unexpected reply envelope: %+v", reply)
	}
	if reply.P.Count != 1 || len(reply.P.Sets) != 1 {
		t.Fatalf("Expected exactly 1 set, got %v", reply.P.Count)
	}
	if reply.P.Sets[0].Kind != "run" {
		t.Errorf("Expected a run, got '%v'", reply.P.Sets[0].Kind)
	}
}
