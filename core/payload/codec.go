// ABOUTME: Payload codec for scannable article labels
// ABOUTME: Serializes article identity into the canonical tagged record and back

package payload

import (
	"fmt"

	json "github.com/goccy/go-json"

	"article-labels-api/core/domain"
	cerrors "article-labels-api/core/errors"
)

// RecordType is the discriminator value marking article payloads. Scanners
// use it to tell article labels apart from payloads produced for other
// entity kinds in the same ecosystem.
const RecordType = "article"

// Payload is the structured record encoded into a label symbol.
// The struct field order is the canonical serialization order.
type Payload struct {
	// Type is the record discriminator, always RecordType for articles
	Type string `json:"type"`

	// ID is the article's opaque unique identifier
	ID string `json:"id"`

	// Code is the human-assigned article code
	Code string `json:"code"`

	// Name is the article designation. It is always present in the
	// serialized form, as an empty string when the article has none.
	Name string `json:"name"`
}

// Encode builds the payload for an article identity. It fails with a
// ValidationError when the identity preconditions do not hold; it never
// performs I/O and has no side effects.
func Encode(identity domain.ArticleIdentity) (*Payload, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	return &Payload{
		Type: RecordType,
		ID:   identity.ID,
		Code: identity.Code,
		Name: identity.Designation,
	}, nil
}

// Canonical returns the serialized payload text. Encoding the same identity
// twice yields byte-identical output: compact JSON with fields in struct
// order and no volatile values.
func (p *Payload) Canonical() ([]byte, error) {
	return json.Marshal(p)
}

// Decode parses serialized payload text back into a Payload. Unknown extra
// fields are tolerated so that payloads stay versionable; a missing name key
// decodes as an empty designation. A wrong discriminator or an empty id or
// code is rejected with a ValidationError.
func Decode(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &cerrors.ValidationError{
			Field:   "payload",
			Message: fmt.Sprintf("not a valid label payload: %v", err),
		}
	}

	if p.Type != RecordType {
		return nil, &cerrors.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unsupported record type %q", p.Type),
		}
	}
	if p.ID == "" {
		return nil, &cerrors.ValidationError{Field: "id", Message: "id cannot be empty"}
	}
	if p.Code == "" {
		return nil, &cerrors.ValidationError{Field: "code", Message: "code cannot be empty"}
	}

	return &p, nil
}

// Identity converts the payload back into the article identity it encodes
func (p *Payload) Identity() domain.ArticleIdentity {
	return domain.ArticleIdentity{
		ID:          p.ID,
		Code:        p.Code,
		Designation: p.Name,
	}
}
