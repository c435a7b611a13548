// ABOUTME: Renderer service encodes article payloads into QR symbols and rasterizes them
// ABOUTME: Provides synchronous, asynchronous and batch rendering independent of the HTTP layer

package symbol

import (
	"bytes"
	"context"
	"image/png"
	"sync"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"article-labels-api/core/domain"
	cerrors "article-labels-api/core/errors"
	"article-labels-api/core/interfaces"
	"article-labels-api/core/payload"
	"article-labels-api/pkg/utils/datauri"
)

// artifactContentType is the media type of every rendered artifact
const artifactContentType = "image/png"

// RenderResult carries the outcome of one asynchronous render
type RenderResult struct {
	Artifact *domain.RenderedArtifact
	Err      error
}

// Renderer handles symbol generation for article labels
type Renderer struct {
	deps interfaces.Dependencies
}

// NewRenderer creates a new renderer instance
func NewRenderer(deps interfaces.Dependencies) *Renderer {
	return &Renderer{
		deps: deps,
	}
}

// Render encodes the payload into a QR symbol and rasterizes it to a PNG.
// The whole pipeline runs in memory; nothing is written to disk and nothing
// is cached, so every call produces a fresh artifact. The error correction
// level is fixed at Medium.
func (r *Renderer) Render(ctx context.Context, p *payload.Payload, opts domain.RenderOptions) (*domain.RenderedArtifact, error) {
	if p == nil {
		return nil, &cerrors.ValidationError{Field: "payload", Message: "payload cannot be nil"}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	opts = opts.Normalized()

	text, err := p.Canonical()
	if err != nil {
		return nil, &cerrors.RenderError{Stage: "payload serialization", Err: err}
	}

	qr, err := qrcode.New(string(text), qrcode.Medium)
	if err != nil {
		r.deps.Logger.Error("Symbol encoding failed", map[string]interface{}{
			"article_id": p.ID,
			"error":      err.Error(),
		})
		return nil, &cerrors.RenderError{Stage: "symbol encoding", Err: err}
	}
	// The quiet zone is drawn by the rasterizer from opts.Margin
	qr.DisableBorder = true

	img := rasterize(qr.Bitmap(), opts)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &cerrors.RenderError{Stage: "rasterization", Err: err}
	}

	artifact := &domain.RenderedArtifact{
		RenderID:    uuid.New().String(),
		ArticleID:   p.ID,
		DataURI:     datauri.Encode(artifactContentType, buf.Bytes()),
		ContentType: artifactContentType,
		Width:       img.Bounds().Dx(),
		Margin:      opts.Margin,
		Foreground:  opts.Foreground,
		Background:  opts.Background,
		RenderedAt:  time.Now(),
	}

	r.deps.Logger.Debug("Rendered label symbol", map[string]interface{}{
		"article_id": p.ID,
		"render_id":  artifact.RenderID,
		"width":      artifact.Width,
	})

	return artifact, nil
}

// RenderAsync renders the payload in the background and delivers the result
// on the returned channel. The channel is buffered and closed after the
// single result, so the caller never blocks the render by reading late.
// Concurrent calls are independent; each produces its own result, and the
// caller decides which to keep by comparing the artifact's ArticleID against
// its current selection.
func (r *Renderer) RenderAsync(ctx context.Context, p *payload.Payload, opts domain.RenderOptions) <-chan RenderResult {
	results := make(chan RenderResult, 1)

	go func() {
		defer close(results)
		artifact, err := r.Render(ctx, p, opts)
		results <- RenderResult{Artifact: artifact, Err: err}
	}()

	return results
}

// RenderBatch renders symbols for multiple payloads concurrently. Payloads
// that fail to render are skipped; the returned map holds one artifact per
// succeeding payload, keyed by article ID.
func (r *Renderer) RenderBatch(ctx context.Context, payloads []*payload.Payload, opts domain.RenderOptions) map[string]*domain.RenderedArtifact {
	results := make(map[string]*domain.RenderedArtifact)
	resultsMutex := sync.Mutex{}

	// Log batch processing
	r.deps.Logger.Debug("Starting batch label render", map[string]interface{}{
		"count": len(payloads),
	})

	// Use a wait group and limited concurrency
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5) // Reasonable concurrency for background processing

	// Process payloads concurrently
	for _, item := range payloads {
		wg.Add(1)
		go func(p *payload.Payload) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				artifact, err := r.Render(ctx, p, opts)
				if err != nil {
					// Log error but keep rendering the rest of the batch
					r.deps.Logger.Debug("Failed to render label in batch", map[string]interface{}{
						"error": err.Error(),
					})
					return
				}

				resultsMutex.Lock()
				results[artifact.ArticleID] = artifact
				resultsMutex.Unlock()

			case <-ctx.Done():
				// Context cancelled
				return
			}
		}(item)
	}

	// Wait for all goroutines to complete
	wg.Wait()

	r.deps.Logger.Debug("Completed batch label render", map[string]interface{}{
		"requested": len(payloads),
		"rendered":  len(results),
	})

	return results
}
