// server.go
//
// Copyright (C) 2024 The GoRummi Authors
//
// This file implements a compact HTTP server that receives
// JSON encoded requests and returns JSON encoded responses.

package rummi

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// ProtocolVersion is the version tag of the JSON responses
const ProtocolVersion = "1.0"

// DefaultCacheSize is the default capacity of the result cache
const DefaultCacheSize = 2048

// SetsRequest describes an incoming set-finding request
type SetsRequest struct {
	Tiles []string `json:"tiles"`
	Limit int      `json:"limit"`
}

// SetJson describes a single found set within a response
type SetJson struct {
	Kind  string   `json:"kind"`
	Tiles []string `json:"tiles"`
}

// SetsResponse is the JSON response header
type SetsResponse struct {
	Version string    `json:"version"`
	Count   int       `json:"count"`
	Sets    []SetJson `json:"sets"`
}

// resultCache encapsulates a simple LRU cached map of tray
// hashes to marshaled search results. Cached entries hold tile
// codes, never *Tile references, so the borrowed tiles of a
// Set do not outlive their tray.
type resultCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// makeResultCache initializes an empty resultCache of the
// given capacity
func makeResultCache(size int) *resultCache {
	rc := &resultCache{}
	rc.lru, _ = simplelru.NewLRU(size, nil)
	return rc
}

// Lookup returns the marshaled result for a tray hash key. If
// the key is found in the cache, it is returned immediately.
// Otherwise, the given fetchFunc() is called to run the search
// before storing its outcome in the cache.
func (rc *resultCache) Lookup(key string, fetchFunc func() []SetJson) []SetJson {
	rc.mux.Lock()
	defer rc.mux.Unlock()
	if sets, ok := rc.lru.Get(key); ok {
		return sets.([]SetJson)
	}
	sets := fetchFunc()
	rc.lru.Add(key, sets)
	return sets
}

// setsCache is the process-wide result cache
var setsCache = makeResultCache(DefaultCacheSize)

// InitCache replaces the result cache with an empty one of the
// given capacity. Intended to be called once at startup.
func InitCache(size int) {
	if size > 0 {
		setsCache = makeResultCache(size)
	}
}

// trayHash returns a SHA-1 key over the sorted tile codes of a
// tray. Trays holding the same multiset of tiles share a key,
// regardless of tile order.
func trayHash(codes []string) string {
	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)
	sum := sha1.Sum([]byte(strings.Join(sorted, "|")))
	return hex.EncodeToString(sum[:])
}

// describeSets converts found Sets to their marshaled form
func describeSets(sets []Set) []SetJson {
	described := make([]SetJson, len(sets))
	for i, s := range sets {
		kind := "run"
		if _, ok := s.(*Group); ok {
			kind = "group"
		}
		tiles := s.Tiles()
		codes := make([]string, len(tiles))
		for j, t := range tiles {
			codes[j] = t.String()
		}
		described[i] = SetJson{Kind: kind, Tiles: codes}
	}
	return described
}

// findSets runs the search for a parsed tray, consulting the
// result cache first
func findSets(tray Tray, codes []string) []SetJson {
	return setsCache.Lookup(trayHash(codes), func() []SetJson {
		return describeSets(tray.ValidSets())
	})
}

// HandleSetsRequest finds every valid set in the requested tray
// and returns the result as JSON
func HandleSetsRequest(w http.ResponseWriter, req SetsRequest) {
	tray, err := NewTray(req.Tiles)
	if err != nil {
		http.Error(w, err.Error()+"\n", http.StatusBadRequest)
		return
	}
	// An empty tray is not an error; it just has no valid sets
	sets := findSets(tray, req.Tiles)
	// If a limit is specified, use that as a cap on the number
	// of sets returned
	if req.Limit > 0 && req.Limit < len(sets) {
		sets = sets[:req.Limit]
	}
	result := SetsResponse{
		Version: ProtocolVersion,
		Count:   len(sets),
		Sets:    sets,
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
