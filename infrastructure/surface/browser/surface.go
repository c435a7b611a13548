// ABOUTME: Browser-backed print surface that opens composed documents in the default browser
// ABOUTME: Keeps presented documents as temp files and removes them after a TTL

package browser

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/browser"
)

// BrowserSurface presents print documents by opening them in the platform's
// default browser, where the document invokes the print flow on load. Each
// document is written to its own temporary file; a janitor removes the file
// once its TTL expires, long after the browser has loaded it.
type BrowserSurface struct {
	docs *cache.Cache
	open func(path string) error
}

// NewBrowserSurface creates a surface whose presented documents live for ttl
func NewBrowserSurface(ttl time.Duration) *BrowserSurface {
	docs := cache.New(ttl, ttl)
	docs.OnEvicted(func(path string, _ interface{}) {
		_ = os.Remove(path)
	})

	return &BrowserSurface{
		docs: docs,
		open: browser.OpenFile,
	}
}

// Present writes the document to a temporary file and opens it in the
// browser. The file is removed immediately when opening fails and by the
// janitor once its TTL expires, so presented documents never accumulate.
func (s *BrowserSurface) Present(ctx context.Context, document []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	f, err := os.CreateTemp("", "label-print-*.html")
	if err != nil {
		return fmt.Errorf("could not create print document: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(document); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("could not write print document: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("could not write print document: %w", err)
	}

	if err := s.open(path); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("could not open print surface: %w", err)
	}

	s.docs.Set(path, time.Now(), cache.DefaultExpiration)

	return nil
}
