package models

import (
	"bytes"
	"encoding/json"
)

// PermissionsDocument is the parsed representation of permissions.json.
//
// The document is opaque: any syntactically valid JSON value is accepted and
// kept in compacted form. Nothing inside it is read or validated at startup;
// callers that need structure can [PermissionsDocument.Decode] it into their
// own type.
type PermissionsDocument struct {
	raw json.RawMessage
}

// UnmarshalJSON stores b in compacted form. It fails only when b is not
// valid JSON.
func (p *PermissionsDocument) UnmarshalJSON(b []byte) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}

	p.raw = buf.Bytes()
	return nil
}

// MarshalJSON returns the stored document. A zero PermissionsDocument
// marshals as null.
func (p PermissionsDocument) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}

	return p.Raw(), nil
}

// Raw returns a copy of the compacted document bytes.
func (p PermissionsDocument) Raw() json.RawMessage {
	if p.raw == nil {
		return nil
	}

	out := make(json.RawMessage, len(p.raw))
	copy(out, p.raw)
	return out
}

// Decode unmarshals the document into v.
func (p PermissionsDocument) Decode(v any) error {
	if len(p.raw) == 0 {
		return json.Unmarshal([]byte("null"), v)
	}

	return json.Unmarshal(p.raw, v)
}

// Equal reports whether both documents hold the same compacted bytes.
func (p PermissionsDocument) Equal(other PermissionsDocument) bool {
	return bytes.Equal(p.raw, other.raw)
}
