// ABOUTME: Request DTOs for label-related API endpoints
// ABOUTME: Provides validation constraints for incoming render, decode and print requests

package requests

// ArticleRequest carries the identity of the article a label is built for
type ArticleRequest struct {
	// ID is the article's opaque unique identifier
	ID string `json:"id" required:"true" minLength:"1" doc:"Opaque unique article identifier"`

	// Code is the human-assigned article code
	Code string `json:"code" required:"true" minLength:"1" doc:"Human-assigned article code"`

	// Designation is the free-text article name; may be empty
	Designation string `json:"designation,omitempty" doc:"Free-text article name"`
}

// RenderOptionsRequest carries optional rendering parameters. Omitted fields
// fall back to the service defaults.
type RenderOptionsRequest struct {
	// Width is the rendered image width and height in pixels
	Width int `json:"width,omitempty" minimum:"1" maximum:"4096" doc:"Image width in pixels"`

	// Margin is the quiet zone around the symbol in modules. A pointer so
	// that an explicit zero can be told apart from an omitted field.
	Margin *int `json:"margin,omitempty" minimum:"0" maximum:"32" doc:"Quiet zone in modules"`

	// Foreground is the module color
	Foreground string `json:"foreground,omitempty" pattern:"^#?[0-9a-fA-F]{6}$" doc:"Module color as #RRGGBB"`

	// Background is the canvas color
	Background string `json:"background,omitempty" pattern:"^#?[0-9a-fA-F]{6}$" doc:"Canvas color as #RRGGBB"`
}

// RenderLabelRequest represents the request body for rendering one label
type RenderLabelRequest struct {
	// Article is the identity to encode
	Article ArticleRequest `json:"article" required:"true" doc:"Article to label"`

	// Options are optional rendering parameters
	Options *RenderOptionsRequest `json:"options,omitempty" doc:"Optional rendering parameters"`
}

// RenderBatchRequest represents the request body for rendering many labels
type RenderBatchRequest struct {
	// Articles is the list of identities to encode
	Articles []ArticleRequest `json:"articles" minItems:"1" maxItems:"100" doc:"Articles to label"`

	// Options are optional rendering parameters applied to every label
	Options *RenderOptionsRequest `json:"options,omitempty" doc:"Optional rendering parameters"`
}

// DecodePayloadRequest represents the request body for decoding payload text
type DecodePayloadRequest struct {
	// Payload is the serialized payload text read from a scanned symbol
	Payload string `json:"payload" required:"true" minLength:"2" doc:"Serialized label payload text"`
}

// PrintLabelRequest represents the request body for composing a print document
type PrintLabelRequest struct {
	// Article is the identity to print a label for
	Article ArticleRequest `json:"article" required:"true" doc:"Article to label"`

	// Options are optional rendering parameters
	Options *RenderOptionsRequest `json:"options,omitempty" doc:"Optional rendering parameters"`
}

// PrintSheetRequest represents the request body for composing a print sheet
type PrintSheetRequest struct {
	// Articles is the list of identities to print labels for
	Articles []ArticleRequest `json:"articles" minItems:"1" maxItems:"50" doc:"Articles to label"`

	// Options are optional rendering parameters applied to every label
	Options *RenderOptionsRequest `json:"options,omitempty" doc:"Optional rendering parameters"`
}
