package models

import "encoding/json"

// TicketPayloadVersion is the current payload schema version
const TicketPayloadVersion = 1

// TicketPayload is the structured body stored in Ticket.Description. Bank
// details are kept encrypted; risk fields are a display snapshot taken at
// submission time and are always recomputable from the decrypted values.
type TicketPayload struct {
	Version       int      `json:"version"`
	BankEncrypted string   `json:"bank_encrypted"`
	IfscEncrypted string   `json:"ifsc_encrypted"`
	RiskScore     int      `json:"risk_score,omitempty"`
	RiskLevel     string   `json:"risk_level,omitempty"`
	RiskFlags     []string `json:"risk_flags,omitempty"`
}

// Encode serializes the payload for storage
func (p *TicketPayload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseTicketPayload decodes a ticket description. Returns ok=false for
// legacy plain-text descriptions ("Bank: ... | IFSC: ..."), which callers
// should surface verbatim instead of failing.
func ParseTicketPayload(description string) (*TicketPayload, bool) {
	var payload TicketPayload
	if err := json.Unmarshal([]byte(description), &payload); err != nil {
		return nil, false
	}
	if payload.BankEncrypted == "" && payload.IfscEncrypted == "" {
		return nil, false
	}
	return &payload, true
}
