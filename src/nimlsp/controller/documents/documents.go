// Package documents tracks the buffers open in the IDE and materializes unsaved ones for nimsuggest.
package documents

import (
	"context"
	"fmt"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/fs"
	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _overlayPattern = "nimlsp-*.nim"

// Controller keeps the text of open documents.
type Controller interface {
	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error
	DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error

	// Overlay returns the path of doc and, when its buffer differs from the saved text, a temporary file holding the buffer.
	// release removes the temporary file and must be called once the query using it is answered.
	// Documents that are not open are queried from disk.
	Overlay(ctx context.Context, doc protocol.TextDocumentIdentifier) (path string, overlay string, release func(), err error)
}

// Params are inbound parameters to initialize a new documents controller.
type Params struct {
	fx.In

	FS     fs.NimlspFS
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type document struct {
	path    string
	version int32
	text    string
	saved   string
}

func (d *document) dirty() bool {
	return d.text != d.saved
}

type controller struct {
	fs     fs.NimlspFS
	logger *zap.SugaredLogger
	stats  tally.Scope
	// overlayDir is where overlays are written, the system temp dir when empty.
	overlayDir string

	mu   sync.Mutex
	docs map[protocol.DocumentURI]*document
}

// New creates a documents Controller.
func New(p Params) Controller {
	return &controller{
		fs:     p.FS,
		logger: p.Logger.With("plugin", "documents"),
		stats:  p.Stats.SubScope("documents"),
		docs:   make(map[protocol.DocumentURI]*document),
	}
}

func (c *controller) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := mapper.DocumentURIToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.docs[params.TextDocument.URI] = &document{
		path:    path,
		version: params.TextDocument.Version,
		text:    params.TextDocument.Text,
		saved:   params.TextDocument.Text,
	}
	c.stats.Gauge("open").Update(float64(len(c.docs)))
	return nil
}

// DidChange applies full document changes. Only the last change matters since every change holds the whole text.
func (c *controller) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.docs[params.TextDocument.URI]
	if !ok {
		return &errors.DocumentNotFoundError{Document: params.TextDocument.TextDocumentIdentifier}
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	if params.TextDocument.Version != 0 && params.TextDocument.Version < d.version {
		c.logger.Warnw("ignoring out of order change", "uri", params.TextDocument.URI, "version", params.TextDocument.Version, "current", d.version)
		return nil
	}

	d.text = params.ContentChanges[len(params.ContentChanges)-1].Text
	d.version = params.TextDocument.Version
	return nil
}

func (c *controller) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.docs[params.TextDocument.URI]
	if !ok {
		return &errors.DocumentNotFoundError{Document: params.TextDocument}
	}
	if params.Text != "" {
		d.text = params.Text
	}
	d.saved = d.text
	return nil
}

func (c *controller) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.docs, params.TextDocument.URI)
	c.stats.Gauge("open").Update(float64(len(c.docs)))
	return nil
}

func (c *controller) Overlay(ctx context.Context, doc protocol.TextDocumentIdentifier) (string, string, func(), error) {
	c.mu.Lock()
	d, ok := c.docs[doc.URI]
	var (
		path  string
		text  string
		dirty bool
	)
	if ok {
		path, text, dirty = d.path, d.text, d.dirty()
	}
	c.mu.Unlock()

	if !ok {
		p, err := mapper.DocumentURIToPath(doc.URI)
		if err != nil {
			return "", "", nil, err
		}
		return p, "", func() {}, nil
	}
	if !dirty {
		return path, "", func() {}, nil
	}

	overlay, err := c.writeOverlay(text)
	if err != nil {
		return "", "", nil, fmt.Errorf("writing overlay for %q: %w", doc.URI, err)
	}
	c.stats.Counter("overlays").Inc(1)

	var once sync.Once
	release := func() {
		once.Do(func() {
			if err := c.fs.Remove(overlay); err != nil {
				c.logger.Warnw("removing overlay", "file", overlay, "error", err)
			}
		})
	}
	return path, overlay, release, nil
}

func (c *controller) writeOverlay(text string) (string, error) {
	f, err := c.fs.TempFile(c.overlayDir, _overlayPattern)
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		c.fs.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		c.fs.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
