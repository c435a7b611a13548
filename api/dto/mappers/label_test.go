package mappers

import (
	"testing"
	"time"

	"article-labels-api/api/dto/requests"
	"article-labels-api/core/domain"
	cerrors "article-labels-api/core/errors"
	"article-labels-api/core/payload"
)

func TestToArticleIdentity(t *testing.T) {
	req := requests.ArticleRequest{
		ID:          "42",
		Code:        "CER-100",
		Designation: "Ceramic Tile 30x30",
	}

	identity := ToArticleIdentity(req)

	if identity.ID != "42" {
		t.Errorf("Expected ID '42', got '%s'", identity.ID)
	}
	if identity.Code != "CER-100" {
		t.Errorf("Expected code 'CER-100', got '%s'", identity.Code)
	}
	if identity.Designation != "Ceramic Tile 30x30" {
		t.Errorf("Expected designation 'Ceramic Tile 30x30', got '%s'", identity.Designation)
	}
}

func TestToRenderOptions_NilRequestKeepsDefaults(t *testing.T) {
	defaults := domain.DefaultRenderOptions()

	opts, err := ToRenderOptions(nil, defaults)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts != defaults {
		t.Errorf("Expected defaults %+v, got %+v", defaults, opts)
	}
}

func TestToRenderOptions_OverridesProvidedFields(t *testing.T) {
	defaults := domain.DefaultRenderOptions()
	req := &requests.RenderOptionsRequest{
		Width:      400,
		Foreground: "#C81010",
	}

	opts, err := ToRenderOptions(req, defaults)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.Width != 400 {
		t.Errorf("Expected width 400, got %d", opts.Width)
	}
	if opts.Margin != defaults.Margin {
		t.Errorf("Expected default margin %d, got %d", defaults.Margin, opts.Margin)
	}
	if opts.Foreground != (domain.RGBColor{R: 200, G: 16, B: 16}) {
		t.Errorf("Expected foreground to be overridden, got %+v", opts.Foreground)
	}
	if opts.Background != defaults.Background {
		t.Errorf("Expected default background, got %+v", opts.Background)
	}
}

func TestToRenderOptions_ExplicitZeroMargin(t *testing.T) {
	defaults := domain.DefaultRenderOptions()
	zero := 0
	req := &requests.RenderOptionsRequest{Margin: &zero}

	opts, err := ToRenderOptions(req, defaults)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if opts.Margin != 0 {
		t.Errorf("Expected margin 0, got %d", opts.Margin)
	}
}

func TestToRenderOptions_InvalidColor(t *testing.T) {
	req := &requests.RenderOptionsRequest{Background: "not-a-color"}

	_, err := ToRenderOptions(req, domain.DefaultRenderOptions())
	if err == nil {
		t.Fatal("Expected error for invalid color, got nil")
	}
	if !cerrors.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestToRenderedLabelResponse(t *testing.T) {
	renderedAt := time.Now()
	artifact := &domain.RenderedArtifact{
		RenderID:    "render-1",
		ArticleID:   "42",
		DataURI:     "data:image/png;base64,AAAA",
		ContentType: "image/png",
		Width:       200,
		Margin:      2,
		Foreground:  domain.RGBColor{},
		Background:  domain.RGBColor{R: 255, G: 255, B: 255},
		RenderedAt:  renderedAt,
	}

	resp := ToRenderedLabelResponse(artifact, `{"type":"article"}`)
	if resp == nil {
		t.Fatal("Expected response, got nil")
	}

	if resp.RenderID != "render-1" {
		t.Errorf("Expected render ID 'render-1', got '%s'", resp.RenderID)
	}
	if resp.ArticleID != "42" {
		t.Errorf("Expected article ID '42', got '%s'", resp.ArticleID)
	}
	if resp.Payload != `{"type":"article"}` {
		t.Errorf("Expected payload text to be carried through, got '%s'", resp.Payload)
	}
	if resp.DataURI != artifact.DataURI {
		t.Errorf("Expected data URI '%s', got '%s'", artifact.DataURI, resp.DataURI)
	}
	if resp.Foreground != "#000000" {
		t.Errorf("Expected foreground '#000000', got '%s'", resp.Foreground)
	}
	if resp.Background != "#FFFFFF" {
		t.Errorf("Expected background '#FFFFFF', got '%s'", resp.Background)
	}
	if !resp.RenderedAt.Equal(renderedAt) {
		t.Errorf("Expected rendered-at %v, got %v", renderedAt, resp.RenderedAt)
	}
}

func TestToRenderedLabelResponse_NilArtifact(t *testing.T) {
	if resp := ToRenderedLabelResponse(nil, ""); resp != nil {
		t.Errorf("Expected nil response for nil artifact, got %+v", resp)
	}
}

func TestToRenderBatchResponse(t *testing.T) {
	artifacts := map[string]*domain.RenderedArtifact{
		"42": {RenderID: "render-1", ArticleID: "42"},
		"43": {RenderID: "render-2", ArticleID: "43"},
	}
	payloadTexts := map[string]string{
		"42": `{"id":"42"}`,
		"43": `{"id":"43"}`,
	}

	resp := ToRenderBatchResponse(artifacts, payloadTexts, 3)

	if resp.Requested != 3 {
		t.Errorf("Expected requested 3, got %d", resp.Requested)
	}
	if resp.Rendered != 2 {
		t.Errorf("Expected rendered 2, got %d", resp.Rendered)
	}
	if len(resp.Labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(resp.Labels))
	}
	if resp.Labels["42"].Payload != `{"id":"42"}` {
		t.Errorf("Expected payload text for article 42, got '%s'", resp.Labels["42"].Payload)
	}
}

func TestToRenderBatchResponse_Empty(t *testing.T) {
	resp := ToRenderBatchResponse(nil, nil, 0)

	if resp.Rendered != 0 {
		t.Errorf("Expected rendered 0, got %d", resp.Rendered)
	}
	if len(resp.Labels) != 0 {
		t.Errorf("Expected no labels, got %d", len(resp.Labels))
	}
}

func TestToDecodedPayloadResponse(t *testing.T) {
	p := &payload.Payload{
		Type: payload.RecordType,
		ID:   "42",
		Code: "CER-100",
		Name: "Ceramic Tile 30x30",
	}

	resp := ToDecodedPayloadResponse(p)
	if resp == nil {
		t.Fatal("Expected response, got nil")
	}

	if resp.Type != payload.RecordType {
		t.Errorf("Expected type '%s', got '%s'", payload.RecordType, resp.Type)
	}
	if resp.Designation != "Ceramic Tile 30x30" {
		t.Errorf("Expected designation 'Ceramic Tile 30x30', got '%s'", resp.Designation)
	}
}

func TestToDecodedPayloadResponse_Nil(t *testing.T) {
	if resp := ToDecodedPayloadResponse(nil); resp != nil {
		t.Errorf("Expected nil response for nil payload, got %+v", resp)
	}
}
