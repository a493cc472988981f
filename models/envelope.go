package models

import (
	"encoding/json"
	"errors"
)

// ErrMalformedEnvelope is returned when stored ciphertext does not parse as
// the expected {iv, ciphertext} JSON shape. Callers treat this as data
// corruption: the row is skipped, never retried.
var ErrMalformedEnvelope = errors.New("malformed ciphertext envelope")

// Envelope is the symmetric wire format used everywhere a payload is
// AEAD-encrypted: a 12-byte GCM nonce and the ciphertext, both standard
// base64. Sealed (asymmetric) payloads are a single base64 blob instead and
// never use this type.
type Envelope struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// IsZero reports whether the envelope carries no data at all.
func (e Envelope) IsZero() bool {
	return e.IV == "" && e.Ciphertext == ""
}

// Encode returns the canonical JSON serialization of the envelope, the form
// stored in the remote ciphertext column.
func (e Envelope) Encode() string {
	raw, _ := json.Marshal(e)
	return string(raw)
}

// ParseEnvelope decodes raw as an {iv, ciphertext} JSON object. Returns
// [ErrMalformedEnvelope] if raw is not JSON or either field is missing —
// a payload without a nonce cannot be decrypted by anyone.
func ParseEnvelope(raw string) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Envelope{}, ErrMalformedEnvelope
	}
	if e.IV == "" || e.Ciphertext == "" {
		return Envelope{}, ErrMalformedEnvelope
	}
	return e, nil
}

// PlainNote is the decrypted form of a note payload.
type PlainNote struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
