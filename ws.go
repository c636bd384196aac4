// ws.go
//
// Copyright (C) 2024 The GoRummi Authors
//
// This file implements a WebSocket endpoint that answers
// set-finding requests over a persistent connection.

package rummi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// InMsg is the envelope of an incoming WebSocket message
type InMsg struct {
	T     string          `json:"t"`
	ReqID string          `json:"reqId,omitempty"`
	P     json.RawMessage `json:"p,omitempty"`
}

// OutMsg is the envelope of an outgoing WebSocket message
type OutMsg struct {
	T     string      `json:"t"`
	ReqID string      `json:"reqId,omitempty"`
	P     interface{} `json:"p,omitempty"`
}

// ErrPayload carries an error reply to a bad request
type ErrPayload struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// HandleWebSocket upgrades the connection and answers "solve"
// requests until the peer goes away. Each request is handled
// synchronously; the search is fast and bounded, so there is no
// need for per-request goroutines.
func HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer ws.Close()
	for {
		var msg InMsg
		if err := ws.ReadJSON(&msg); err != nil {
			// Peer closed the connection or sent garbage
			return
		}
		reply := handleWsMsg(msg)
		if err := ws.WriteJSON(reply); err != nil {
			log.Printf("WebSocket write failed: %v", err)
			return
		}
	}
}

// handleWsMsg maps one incoming message to its reply
func handleWsMsg(msg InMsg) OutMsg {
	switch msg.T {
	case "solve":
		var req SetsRequest
		if err := json.Unmarshal(msg.P, &req); err != nil {
			return OutMsg{T: "err", ReqID: msg.ReqID,
				P: ErrPayload{Code: "BAD_PAYLOAD", Msg: err.Error()}}
		}
		tray, err := NewTray(req.Tiles)
		if err != nil {
			return OutMsg{T: "err", ReqID: msg.ReqID,
				P: ErrPayload{Code: "BAD_TILE", Msg: err.Error()}}
		}
		sets := findSets(tray, req.Tiles)
		if req.Limit > 0 && req.Limit < len(sets) {
			sets = sets[:req.Limit]
		}
		return OutMsg{T: "sets", ReqID: msg.ReqID,
			P: SetsResponse{
				Version: ProtocolVersion,
				Count:   len(sets),
				Sets:    sets,
			}}
	case "ping":
		return OutMsg{T: "pong", ReqID: msg.ReqID}
	default:
		return OutMsg{T: "err", ReqID: msg.ReqID,
			P: ErrPayload{Code: "UNKNOWN_TYPE", Msg: msg.T}}
	}
}
