// SPDX-License-Identifier: LGPL-3.0-or-later

// Package registryclient implements the centralized fallback directory
// client of spec.md section 4.8: a URL-scheme-dispatched client that
// speaks REST against an http(s) registry or a correlated JSON framing
// against a ws(s) one, used when gossip discovery yields nothing.
package registryclient

import "encoding/json"

// RegisterRequest is the body of POST /api/register and the payload of
// a ws "register" frame.
type RegisterRequest struct {
	ID           string         `json:"id"`
	Addresses    []string       `json:"addresses"`
	Capabilities []CapabilityDTO `json:"capabilities"`
}

// CapabilityDTO is the wire shape of state.Capability.
type CapabilityDTO struct {
	Type     string                 `json:"type"`
	Name     string                 `json:"name"`
	Version  string                 `json:"version"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NodeDTO is the wire shape of a registry-known node, returned by
// GET /api/nodes/{id}, the "search" endpoint, and a ws "query"/"search"
// response.
type NodeDTO struct {
	ID           string          `json:"id"`
	Addresses    []string        `json:"addresses"`
	Capabilities []CapabilityDTO `json:"capabilities"`
	Reputation   float64         `json:"reputation"`
}

// ReputationUpdate is the body of POST /api/nodes/{id}/reputation.
type ReputationUpdate struct {
	Score         float64 `json:"score"`
	SuccessfulJob int64   `json:"successfulJobs"`
	FailedJobs    int64   `json:"failedJobs"`
}

// SearchQuery is the payload of a capability search, whichever transport
// carries it.
type SearchQuery struct {
	Type  string `json:"type,omitempty"`
	Name  string `json:"name,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// httpEnvelope is the response shape for every REST endpoint, per
// spec.md section 6: {success, data|error, timestamp}.
type httpEnvelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// wsRequest is an outbound ws(s) frame: {id, type, payload, timestamp}.
type wsRequest struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// wsResponse is an inbound ws(s) frame: {type: response|error, id, payload}.
type wsResponse struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Request type tags shared by both transport modes (HTTP maps these to
// routes; WS carries them in wsRequest.Type).
const (
	reqRegister   = "register"
	reqUnregister = "unregister"
	reqPing       = "ping"
	reqReputation = "reputation"
	reqNode       = "node"
	reqSearch     = "search"
)
