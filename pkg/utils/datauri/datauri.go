// ABOUTME: Utility functions for encoding and decoding data URIs
// ABOUTME: Handles the data:<media type>;base64,<payload> form used for inlined images

package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	scheme       = "data:"
	base64Marker = ";base64,"
)

// Encode builds a base64 data URI for the given media type and raw bytes
func Encode(mediaType string, data []byte) string {
	return scheme + mediaType + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a base64 data URI into its media type and raw bytes
func Decode(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, scheme) {
		return "", nil, fmt.Errorf("not a data URI")
	}

	rest := uri[len(scheme):]
	marker := strings.Index(rest, base64Marker)
	if marker < 0 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}

	mediaType := rest[:marker]
	if mediaType == "" {
		return "", nil, fmt.Errorf("data URI has no media type")
	}

	data, err := base64.StdEncoding.DecodeString(rest[marker+len(base64Marker):])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return mediaType, data, nil
}
