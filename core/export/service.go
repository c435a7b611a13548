// ABOUTME: Exporter service produces user-facing outputs from rendered artifacts
// ABOUTME: Handles file downloads via temp file plus rename and printing via a PrintSurface

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"article-labels-api/core/domain"
	cerrors "article-labels-api/core/errors"
	"article-labels-api/core/interfaces"
	"article-labels-api/pkg/utils/datauri"
)

// pngMediaType is the only media type artifacts may carry
const pngMediaType = "image/png"

// Exporter handles download and print outputs for rendered artifacts
type Exporter struct {
	deps      interfaces.Dependencies
	exportDir string
	surface   interfaces.PrintSurface
}

// NewExporter creates a new exporter writing files into exportDir
func NewExporter(deps interfaces.Dependencies, exportDir string) *Exporter {
	return &Exporter{
		deps:      deps,
		exportDir: exportDir,
	}
}

// SetPrintSurface sets the surface print documents are presented on
func (e *Exporter) SetPrintSurface(surface interfaces.PrintSurface) {
	e.surface = surface
}

// FileName returns the download filename for a hint: "qr-<hint>.png"
func FileName(hint string) string {
	return "qr-" + hint + ".png"
}

// DownloadPayload validates the artifact and returns the download filename
// and the raw image bytes. It touches neither the filesystem nor the
// artifact itself, so repeat calls yield byte-identical results.
func (e *Exporter) DownloadPayload(artifact *domain.RenderedArtifact, filenameHint string) (string, []byte, error) {
	if artifact == nil {
		return "", nil, &cerrors.ValidationError{Field: "artifact", Message: "artifact cannot be nil"}
	}
	if err := validateFilenameHint(filenameHint); err != nil {
		return "", nil, err
	}

	mediaType, data, err := datauri.Decode(artifact.DataURI)
	if err != nil {
		return "", nil, &cerrors.ValidationError{
			Field:   "artifact",
			Message: fmt.Sprintf("artifact carries no decodable image: %v", err),
		}
	}
	if mediaType != pngMediaType {
		return "", nil, &cerrors.ValidationError{
			Field:   "artifact",
			Message: fmt.Sprintf("unsupported media type %q", mediaType),
		}
	}

	return FileName(filenameHint), data, nil
}

// ExportFile writes the artifact's image bytes into the export directory as
// "qr-<hint>.png" and returns the final path. The file is written to a
// temporary name and renamed into place, and the temporary file is removed
// on every failure path, so no partial export is ever left behind. Repeat
// calls with the same artifact produce byte-identical files.
func (e *Exporter) ExportFile(ctx context.Context, artifact *domain.RenderedArtifact, filenameHint string) (string, error) {
	filename, data, err := e.DownloadPayload(artifact, filenameHint)
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	dest := filepath.Join(e.exportDir, filename)

	if err := os.MkdirAll(e.exportDir, 0o755); err != nil {
		return "", &cerrors.ExportError{Op: "create", Path: dest, Err: err}
	}

	tmp, err := os.CreateTemp(e.exportDir, "."+filename+"-*")
	if err != nil {
		return "", &cerrors.ExportError{Op: "create", Path: dest, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", &cerrors.ExportError{Op: "write", Path: dest, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", &cerrors.ExportError{Op: "close", Path: dest, Err: err}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return "", &cerrors.ExportError{Op: "rename", Path: dest, Err: err}
	}

	e.deps.Logger.Debug("Exported label file", map[string]interface{}{
		"path": dest,
		"size": len(data),
	})

	return dest, nil
}

// Print composes the print document for the artifact and presents it on the
// configured surface. A missing or refusing surface yields a
// PrintBlockedError; the caller reports that the print did not proceed and
// nothing else is affected. Safe to invoke repeatedly.
func (e *Exporter) Print(ctx context.Context, artifact *domain.RenderedArtifact, title, subtitle string) error {
	if e.surface == nil {
		return &cerrors.PrintBlockedError{Reason: "no print surface configured"}
	}

	document, err := BuildPrintDocument(artifact, title, subtitle)
	if err != nil {
		return err
	}

	if err := e.surface.Present(ctx, document); err != nil {
		e.deps.Logger.Warn("Print surface refused the document", map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return &cerrors.PrintBlockedError{Reason: err.Error()}
	}

	e.deps.Logger.Debug("Presented print document", map[string]interface{}{
		"title": title,
	})

	return nil
}

// validateFilenameHint rejects hints that would escape the export directory
func validateFilenameHint(hint string) error {
	if hint == "" {
		return &cerrors.ValidationError{Field: "filename", Message: "filename hint cannot be empty"}
	}
	if strings.ContainsAny(hint, `/\`) || strings.Contains(hint, "..") {
		return &cerrors.ValidationError{Field: "filename", Message: "filename hint must not contain path elements"}
	}
	return nil
}
