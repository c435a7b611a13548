// ABOUTME: Print document composition for article labels
// ABOUTME: Builds minimal self-contained HTML documents that invoke the platform print flow on load

package export

import (
	"bytes"
	"fmt"
	"html/template"

	"article-labels-api/core/domain"
	cerrors "article-labels-api/core/errors"
)

// ScanCaption is the fixed caption printed under every label
const ScanCaption = "Scan to view article details"

// sheetTitle is the document title used for multi-label sheets
const sheetTitle = "Article labels"

// PrintEntry pairs a rendered artifact with the texts printed next to it
type PrintEntry struct {
	Artifact *domain.RenderedArtifact
	Title    string
	Subtitle string
}

type printDocument struct {
	Title   string
	Caption string
	Labels  []printLabel
}

type printLabel struct {
	Title    string
	Subtitle string
	Image    template.URL
	Size     int
}

const printTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; padding: 24px; display: flex; flex-direction: column; align-items: center; }
.label { border: 1px solid #000; border-radius: 4px; padding: 16px 24px; margin-bottom: 16px; text-align: center; page-break-inside: avoid; }
.label h1 { font-size: 20px; margin: 0 0 4px 0; }
.label .designation { font-size: 14px; margin: 0 0 12px 0; }
.label img { display: block; margin: 0 auto; }
.label .caption { font-size: 11px; color: #444; margin: 12px 0 0 0; }
</style>
</head>
<body onload="window.print()">
{{- range .Labels}}
<div class="label">
<h1>{{.Title}}</h1>
<p class="designation"><strong>{{.Subtitle}}</strong></p>
<img src="{{.Image}}" alt="{{.Title}}" width="{{.Size}}" height="{{.Size}}">
<p class="caption">{{$.Caption}}</p>
</div>
{{- end}}
</body>
</html>
`

var printTmpl = template.Must(template.New("print").Parse(printTemplate))

// BuildPrintDocument composes the printable document for a single label:
// the title as heading, the subtitle in bold, the artifact image inlined by
// data URI and the fixed scan caption, inside a centered bordered block.
// The document invokes the platform print flow when loaded.
func BuildPrintDocument(artifact *domain.RenderedArtifact, title, subtitle string) ([]byte, error) {
	if artifact == nil {
		return nil, &cerrors.ValidationError{Field: "artifact", Message: "artifact cannot be nil"}
	}

	return composePrintDocument(title, []printLabel{labelView(artifact, title, subtitle)})
}

// BuildPrintSheet composes one printable document holding every entry as its
// own label block, for printing several labels on a single page.
func BuildPrintSheet(entries []PrintEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, &cerrors.ValidationError{Field: "entries", Message: "at least one label is required"}
	}

	labels := make([]printLabel, 0, len(entries))
	for i, entry := range entries {
		if entry.Artifact == nil {
			return nil, &cerrors.ValidationError{
				Field:   "entries",
				Message: fmt.Sprintf("entry %d has no artifact", i),
			}
		}
		labels = append(labels, labelView(entry.Artifact, entry.Title, entry.Subtitle))
	}

	return composePrintDocument(sheetTitle, labels)
}

func labelView(artifact *domain.RenderedArtifact, title, subtitle string) printLabel {
	return printLabel{
		Title:    title,
		Subtitle: subtitle,
		// html/template strips data: URLs from src attributes; the artifact
		// URI is produced by our own renderer, so mark it pre-approved
		Image: template.URL(artifact.DataURI),
		Size:  artifact.Width,
	}
}

func composePrintDocument(docTitle string, labels []printLabel) ([]byte, error) {
	var buf bytes.Buffer
	err := printTmpl.Execute(&buf, printDocument{
		Title:   docTitle,
		Caption: ScanCaption,
		Labels:  labels,
	})
	if err != nil {
		return nil, cerrors.WrapError(err, "failed to compose print document")
	}
	return buf.Bytes(), nil
}
