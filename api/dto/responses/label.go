// ABOUTME: Response DTOs for label-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// RenderedLabelResponse represents a rendered label artifact in API responses
type RenderedLabelResponse struct {
	RenderID    string    `json:"render_id" doc:"Unique identifier of this render invocation"`
	ArticleID   string    `json:"article_id" doc:"Identity token of the labeled article"`
	Payload     string    `json:"payload" doc:"Canonical payload text encoded in the symbol"`
	DataURI     string    `json:"data_uri" doc:"Rendered image as a data URI"`
	ContentType string    `json:"content_type" doc:"Media type of the embedded image"`
	Width       int       `json:"width" doc:"Image width in pixels"`
	Margin      int       `json:"margin" doc:"Quiet zone in modules"`
	Foreground  string    `json:"foreground" doc:"Module color as #RRGGBB"`
	Background  string    `json:"background" doc:"Canvas color as #RRGGBB"`
	RenderedAt  time.Time `json:"rendered_at" doc:"When the render completed"`
}

// RenderBatchResponse represents the response for a batch render
type RenderBatchResponse struct {
	// Labels maps article IDs to their rendered artifacts. Articles whose
	// render failed are absent.
	Labels map[string]RenderedLabelResponse `json:"labels" doc:"Rendered labels keyed by article ID"`

	Requested int `json:"requested" doc:"Number of articles requested"`
	Rendered  int `json:"rendered" doc:"Number of labels rendered"`
}

// DecodedPayloadResponse represents a decoded label payload
type DecodedPayloadResponse struct {
	Type        string `json:"type" doc:"Record discriminator"`
	ID          string `json:"id" doc:"Article identifier"`
	Code        string `json:"code" doc:"Article code"`
	Designation string `json:"designation" doc:"Article designation; empty when the label carries none"`
}

// HealthResponse represents the service liveness report
type HealthResponse struct {
	Status    string    `json:"status" doc:"Service status"`
	Service   string    `json:"service" doc:"Service name"`
	Version   string    `json:"version" doc:"Service version"`
	Timestamp time.Time `json:"timestamp" doc:"Time of the report"`
}
