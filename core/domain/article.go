// ABOUTME: ArticleIdentity domain model represents the identity of a catalog article
// ABOUTME: Provides validation for the fields that participate in label generation

package domain

import (
	cerrors "article-labels-api/core/errors"
)

// ArticleIdentity holds the identity fields of an article as supplied by the
// catalog application. The catalog owns these values; this service only reads
// them to build scannable labels.
type ArticleIdentity struct {
	// ID is the opaque unique identifier, stable for the article's lifetime
	ID string

	// Code is the human-assigned article code, unique within the catalog
	Code string

	// Designation is the free-text article name, display-facing only
	Designation string
}

// Validate checks the preconditions for label generation.
// ID and Code must be non-empty; Designation may be empty.
func (a ArticleIdentity) Validate() error {
	if a.ID == "" {
		return &cerrors.ValidationError{Field: "id", Message: "id cannot be empty"}
	}
	if a.Code == "" {
		return &cerrors.ValidationError{Field: "code", Message: "code cannot be empty"}
	}
	return nil
}
