// go-app/main.go
// HTTP service main package for the GoRummi set finder
// Copyright (C) 2024 The GoRummi Authors

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	rummi "github.com/gorummi/GoRummi"
	"github.com/joho/godotenv"
)

// Corresponding Authorization header (or "" if no auth required)
var AUTH_HEADER string

// Allowed access control (CORS) origins
var ALLOWED_ORIGINS string = "*" // Default to all origins allowed

func validate(w http.ResponseWriter, r *http.Request, req any) bool {
	// Set CORS headers
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", ALLOWED_ORIGINS)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle preflight OPTIONS request
	if r.Method == "OPTIONS" {
		// Returning false simply causes the handler to return the response headers
		return false
	}

	// We only accept POST requests
	if r.Method != "POST" {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return false
	}
	// Check for a bearer authorization token,
	// which must match the ACCESS_KEY configuration, if present
	if AUTH_HEADER != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != AUTH_HEADER {
			http.Error(w,
				fmt.Sprintf(
					"Authorization header mismatch: got '%s'",
					authHeader,
				),
				http.StatusUnauthorized,
			)
			return false
		}
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		// Not valid JSON
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func setsHandler(w http.ResponseWriter, r *http.Request) {
	var req rummi.SetsRequest
	if !validate(w, r, &req) {
		return
	}
	rummi.HandleSetsRequest(w, req)
}

func warmupHandler(w http.ResponseWriter, r *http.Request) {
	// No concrete action required
	log.Println("Warmup request received")
}

func main() {
	log.SetOutput(os.Stderr)
	log.Printf("Sets service starting, Go version %s", runtime.Version())
	// Load a .env file if present; real environment variables
	// take precedence over its contents
	_ = godotenv.Load()
	cfg, err := rummi.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	rummi.InitCache(cfg.CacheSize)
	// Figure out the authorization header, if required
	if cfg.AccessKey != "" {
		AUTH_HEADER = "Bearer " + cfg.AccessKey
	}
	if cfg.AllowedOrigins != "" {
		log.Printf("Allowed CORS origins: %s", cfg.AllowedOrigins)
		ALLOWED_ORIGINS = cfg.AllowedOrigins
	}
	// Set up a dummy warmup handler
	http.HandleFunc("/_ah/warmup", warmupHandler)
	// Set up the actual service handlers
	http.HandleFunc("/sets", setsHandler)
	http.HandleFunc("/ws", rummi.HandleWebSocket)
	log.Printf("Listening on %s", cfg.Addr)
	// Start the server loop
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatal(err)
	}
}
