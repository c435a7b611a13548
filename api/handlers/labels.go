// ABOUTME: Label handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for rendering, decoding, downloading and printing labels

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"article-labels-api/api/dto/mappers"
	"article-labels-api/api/dto/requests"
	"article-labels-api/api/dto/responses"
	"article-labels-api/core/domain"
	"article-labels-api/core/export"
	"article-labels-api/core/payload"
	"github.com/danielgtaylor/huma/v2"
)

// LabelRenderer interface defines the methods needed from the symbol renderer
type LabelRenderer interface {
	Render(ctx context.Context, p *payload.Payload, opts domain.RenderOptions) (*domain.RenderedArtifact, error)
	RenderBatch(ctx context.Context, payloads []*payload.Payload, opts domain.RenderOptions) map[string]*domain.RenderedArtifact
}

// LabelExporter interface defines the methods needed from the exporter
type LabelExporter interface {
	DownloadPayload(artifact *domain.RenderedArtifact, filenameHint string) (string, []byte, error)
}

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	renderer LabelRenderer
	exporter LabelExporter
	defaults domain.RenderOptions
}

// NewLabelHandler creates a new label handler. The defaults are applied to
// every render request that does not override them.
func NewLabelHandler(renderer LabelRenderer, exporter LabelExporter, defaults domain.RenderOptions) *LabelHandler {
	return &LabelHandler{
		renderer: renderer,
		exporter: exporter,
		defaults: defaults.Normalized(),
	}
}

// RegisterRoutes registers all label-related routes
func (h *LabelHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderLabel",
		Method:      http.MethodPost,
		Path:        "/labels/render",
		Summary:     "Render an article label",
		Description: "Encodes the article identity into a scannable payload and renders it as a PNG symbol",
		Tags:        []string{"Labels"},
	}, h.RenderLabel)

	huma.Register(api, huma.Operation{
		OperationID: "renderLabelBatch",
		Method:      http.MethodPost,
		Path:        "/labels/render/batch",
		Summary:     "Render labels for multiple articles",
		Description: "Renders labels for multiple articles concurrently, returning the artifacts keyed by article ID",
		Tags:        []string{"Labels"},
	}, h.RenderLabelBatch)

	huma.Register(api, huma.Operation{
		OperationID: "decodeLabelPayload",
		Method:      http.MethodPost,
		Path:        "/labels/decode",
		Summary:     "Decode a scanned label payload",
		Description: "Parses payload text read from a label symbol back into the article identity",
		Tags:        []string{"Labels"},
	}, h.DecodeLabelPayload)

	huma.Register(api, huma.Operation{
		OperationID: "downloadLabel",
		Method:      http.MethodGet,
		Path:        "/labels/download",
		Summary:     "Download an article label as a PNG file",
		Description: "Renders the article label and returns the PNG image as a file attachment",
		Tags:        []string{"Labels"},
	}, h.DownloadLabel)

	huma.Register(api, huma.Operation{
		OperationID: "printLabel",
		Method:      http.MethodPost,
		Path:        "/labels/print",
		Summary:     "Build a printable document for one label",
		Description: "Renders the article label and wraps it in an HTML document that triggers printing when opened",
		Tags:        []string{"Labels"},
	}, h.PrintLabel)

	huma.Register(api, huma.Operation{
		OperationID: "printLabelSheet",
		Method:      http.MethodPost,
		Path:        "/labels/print/sheet",
		Summary:     "Build a printable sheet for multiple labels",
		Description: "Renders labels for multiple articles and composes them into a single printable HTML document",
		Tags:        []string{"Labels"},
	}, h.PrintLabelSheet)
}

// RenderLabelInput defines the input for the RenderLabel operation
type RenderLabelInput struct {
	Body requests.RenderLabelRequest `json:"body"`
}

// RenderLabelOutput defines the output for the RenderLabel operation
type RenderLabelOutput struct {
	Body responses.RenderedLabelResponse
}

// RenderLabel handles the POST /labels/render endpoint
func (h *LabelHandler) RenderLabel(ctx context.Context, input *RenderLabelInput) (*RenderLabelOutput, error) {
	p, err := payload.Encode(mappers.ToArticleIdentity(input.Body.Article))
	if err != nil {
		return nil, toHumaError(err)
	}

	opts, err := mappers.ToRenderOptions(input.Body.Options, h.defaults)
	if err != nil {
		return nil, toHumaError(err)
	}

	artifact, err := h.renderer.Render(ctx, p, opts)
	if err != nil {
		return nil, toHumaError(err)
	}

	text, err := p.Canonical()
	if err != nil {
		return nil, toHumaError(err)
	}

	label := mappers.ToRenderedLabelResponse(artifact, string(text))
	if label == nil {
		return nil, huma.Error500InternalServerError("Renderer returned no artifact")
	}

	return &RenderLabelOutput{
		Body: *label,
	}, nil
}

// RenderLabelBatchInput defines the input for the RenderLabelBatch operation
type RenderLabelBatchInput struct {
	Body requests.RenderBatchRequest `json:"body"`
}

// RenderLabelBatchOutput defines the output for the RenderLabelBatch operation
type RenderLabelBatchOutput struct {
	Body responses.RenderBatchResponse
}

// RenderLabelBatch handles the POST /labels/render/batch endpoint.
// Invalid article identities reject the whole batch; articles that fail
// during rendering are omitted from the result map.
func (h *LabelHandler) RenderLabelBatch(ctx context.Context, input *RenderLabelBatchInput) (*RenderLabelBatchOutput, error) {
	opts, err := mappers.ToRenderOptions(input.Body.Options, h.defaults)
	if err != nil {
		return nil, toHumaError(err)
	}

	payloads := make([]*payload.Payload, 0, len(input.Body.Articles))
	payloadTexts := make(map[string]string, len(input.Body.Articles))
	for _, article := range input.Body.Articles {
		p, err := payload.Encode(mappers.ToArticleIdentity(article))
		if err != nil {
			return nil, toHumaError(err)
		}

		text, err := p.Canonical()
		if err != nil {
			return nil, toHumaError(err)
		}

		payloads = append(payloads, p)
		payloadTexts[p.ID] = string(text)
	}

	artifacts := h.renderer.RenderBatch(ctx, payloads, opts)

	return &RenderLabelBatchOutput{
		Body: *mappers.ToRenderBatchResponse(artifacts, payloadTexts, len(payloads)),
	}, nil
}

// DecodeLabelPayloadInput defines the input for the DecodeLabelPayload operation
type DecodeLabelPayloadInput struct {
	Body requests.DecodePayloadRequest `json:"body"`
}

// DecodeLabelPayloadOutput defines the output for the DecodeLabelPayload operation
type DecodeLabelPayloadOutput struct {
	Body responses.DecodedPayloadResponse
}

// DecodeLabelPayload handles the POST /labels/decode endpoint
func (h *LabelHandler) DecodeLabelPayload(ctx context.Context, input *DecodeLabelPayloadInput) (*DecodeLabelPayloadOutput, error) {
	p, err := payload.Decode([]byte(input.Body.Payload))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DecodeLabelPayloadOutput{
		Body: *mappers.ToDecodedPayloadResponse(p),
	}, nil
}

// DownloadLabelInput defines the input for the DownloadLabel operation
type DownloadLabelInput struct {
	ID          string `query:"id" required:"true" minLength:"1" doc:"Article identifier"`
	Code        string `query:"code" required:"true" minLength:"1" doc:"Article code, also used for the file name"`
	Designation string `query:"designation,omitempty" doc:"Article designation"`
	Width       int    `query:"width,omitempty" minimum:"1" maximum:"4096" default:"200" doc:"Symbol width in pixels"`
	Margin      int    `query:"margin,omitempty" minimum:"0" maximum:"32" default:"2" doc:"Quiet zone width in modules"`
	Foreground  string `query:"foreground,omitempty" pattern:"^#?[0-9a-fA-F]{6}$" default:"#000000" doc:"Module color as a hex triplet"`
	Background  string `query:"background,omitempty" pattern:"^#?[0-9a-fA-F]{6}$" default:"#FFFFFF" doc:"Background color as a hex triplet"`
}

// DownloadLabelOutput defines the output for the DownloadLabel operation
type DownloadLabelOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// DownloadLabel handles the GET /labels/download endpoint
func (h *LabelHandler) DownloadLabel(ctx context.Context, input *DownloadLabelInput) (*DownloadLabelOutput, error) {
	p, err := payload.Encode(domain.ArticleIdentity{
		ID:          input.ID,
		Code:        input.Code,
		Designation: input.Designation,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	margin := input.Margin
	opts, err := mappers.ToRenderOptions(&requests.RenderOptionsRequest{
		Width:      input.Width,
		Margin:     &margin,
		Foreground: input.Foreground,
		Background: input.Background,
	}, h.defaults)
	if err != nil {
		return nil, toHumaError(err)
	}

	artifact, err := h.renderer.Render(ctx, p, opts)
	if err != nil {
		return nil, toHumaError(err)
	}

	filename, data, err := h.exporter.DownloadPayload(artifact, input.Code)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DownloadLabelOutput{
		ContentType:        artifact.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Body:               data,
	}, nil
}

// PrintLabelInput defines the input for the PrintLabel operation
type PrintLabelInput struct {
	Body requests.PrintLabelRequest `json:"body"`
}

// PrintLabelOutput defines the output for the PrintLabel operation
type PrintLabelOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// PrintLabel handles the POST /labels/print endpoint
func (h *LabelHandler) PrintLabel(ctx context.Context, input *PrintLabelInput) (*PrintLabelOutput, error) {
	identity := mappers.ToArticleIdentity(input.Body.Article)

	p, err := payload.Encode(identity)
	if err != nil {
		return nil, toHumaError(err)
	}

	opts, err := mappers.ToRenderOptions(input.Body.Options, h.defaults)
	if err != nil {
		return nil, toHumaError(err)
	}

	artifact, err := h.renderer.Render(ctx, p, opts)
	if err != nil {
		return nil, toHumaError(err)
	}

	doc, err := export.BuildPrintDocument(artifact, identity.Code, identity.Designation)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PrintLabelOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        doc,
	}, nil
}

// PrintLabelSheetInput defines the input for the PrintLabelSheet operation
type PrintLabelSheetInput struct {
	Body requests.PrintSheetRequest `json:"body"`
}

// PrintLabelSheetOutput defines the output for the PrintLabelSheet operation
type PrintLabelSheetOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// PrintLabelSheet handles the POST /labels/print/sheet endpoint. Labels keep
// the request order; articles that fail to render are left off the sheet.
func (h *LabelHandler) PrintLabelSheet(ctx context.Context, input *PrintLabelSheetInput) (*PrintLabelSheetOutput, error) {
	opts, err := mappers.ToRenderOptions(input.Body.Options, h.defaults)
	if err != nil {
		return nil, toHumaError(err)
	}

	payloads := make([]*payload.Payload, 0, len(input.Body.Articles))
	for _, article := range input.Body.Articles {
		p, err := payload.Encode(mappers.ToArticleIdentity(article))
		if err != nil {
			return nil, toHumaError(err)
		}
		payloads = append(payloads, p)
	}

	artifacts := h.renderer.RenderBatch(ctx, payloads, opts)

	entries := make([]export.PrintEntry, 0, len(payloads))
	for _, p := range payloads {
		artifact, ok := artifacts[p.ID]
		if !ok {
			continue
		}
		entries = append(entries, export.PrintEntry{
			Artifact: artifact,
			Title:    p.Code,
			Subtitle: p.Name,
		})
	}

	if len(entries) == 0 {
		return nil, huma.Error500InternalServerError("no label could be rendered")
	}

	doc, err := export.BuildPrintSheet(entries)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &PrintLabelSheetOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        doc,
	}, nil
}
