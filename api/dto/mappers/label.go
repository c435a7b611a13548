// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between the label pipeline and the API layer

package mappers

import (
	"article-labels-api/api/dto/requests"
	"article-labels-api/api/dto/responses"
	"article-labels-api/core/domain"
	cerrors "article-labels-api/core/errors"
	"article-labels-api/core/payload"
)

// ToArticleIdentity converts an ArticleRequest DTO to the domain identity
func ToArticleIdentity(req requests.ArticleRequest) domain.ArticleIdentity {
	return domain.ArticleIdentity{
		ID:          req.ID,
		Code:        req.Code,
		Designation: req.Designation,
	}
}

// ToRenderOptions merges a RenderOptionsRequest into the service defaults.
// Omitted fields keep the default; malformed colors yield a ValidationError.
func ToRenderOptions(req *requests.RenderOptionsRequest, defaults domain.RenderOptions) (domain.RenderOptions, error) {
	opts := defaults
	if req == nil {
		return opts, nil
	}

	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Margin != nil {
		opts.Margin = *req.Margin
	}
	if req.Foreground != "" {
		fg, err := domain.ParseHexColor(req.Foreground)
		if err != nil {
			return domain.RenderOptions{}, &cerrors.ValidationError{Field: "foreground", Message: err.Error()}
		}
		opts.Foreground = fg
	}
	if req.Background != "" {
		bg, err := domain.ParseHexColor(req.Background)
		if err != nil {
			return domain.RenderOptions{}, &cerrors.ValidationError{Field: "background", Message: err.Error()}
		}
		opts.Background = bg
	}

	return opts, nil
}

// ToRenderedLabelResponse converts a rendered artifact and its payload text
// to a RenderedLabelResponse DTO
func ToRenderedLabelResponse(artifact *domain.RenderedArtifact, payloadText string) *responses.RenderedLabelResponse {
	if artifact == nil {
		return nil
	}

	return &responses.RenderedLabelResponse{
		RenderID:    artifact.RenderID,
		ArticleID:   artifact.ArticleID,
		Payload:     payloadText,
		DataURI:     artifact.DataURI,
		ContentType: artifact.ContentType,
		Width:       artifact.Width,
		Margin:      artifact.Margin,
		Foreground:  artifact.Foreground.Hex(),
		Background:  artifact.Background.Hex(),
		RenderedAt:  artifact.RenderedAt,
	}
}

// ToRenderBatchResponse converts batch render results to a RenderBatchResponse
// DTO. payloadTexts maps article IDs to their canonical payload text.
func ToRenderBatchResponse(artifacts map[string]*domain.RenderedArtifact, payloadTexts map[string]string, requested int) *responses.RenderBatchResponse {
	labels := make(map[string]responses.RenderedLabelResponse, len(artifacts))

	for id, artifact := range artifacts {
		if label := ToRenderedLabelResponse(artifact, payloadTexts[id]); label != nil {
			labels[id] = *label
		}
	}

	return &responses.RenderBatchResponse{
		Labels:    labels,
		Requested: requested,
		Rendered:  len(labels),
	}
}

// ToDecodedPayloadResponse converts a decoded payload to a
// DecodedPayloadResponse DTO
func ToDecodedPayloadResponse(p *payload.Payload) *responses.DecodedPayloadResponse {
	if p == nil {
		return nil
	}

	return &responses.DecodedPayloadResponse{
		Type:        p.Type,
		ID:          p.ID,
		Code:        p.Code,
		Designation: p.Name,
	}
}
