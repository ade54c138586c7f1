// Package cover assembles a composite collection cover from member artwork.
package cover

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLimit caps how many member posters feed one cover.
	DefaultLimit = 20
	// defaultWorkers bounds concurrent poster downloads.
	defaultWorkers = 10
)

// Asset is one downloaded poster. Nil Data marks a failed download, which
// must not abort the batch.
type Asset struct {
	URL  string
	Data []byte
}

// AssetSource provides member poster URLs and their bytes.
type AssetSource interface {
	PosterURLs(ctx context.Context, collectionID string, limit int) ([]string, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Renderer composites downloaded posters and a title into one image.
type Renderer interface {
	Render(posters [][]byte, title string) (image.Image, error)
}

// Composer builds collection covers.
type Composer struct {
	source   AssetSource
	renderer Renderer
	limit    int
	workers  int
	log      *slog.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithLimit caps the number of posters per cover.
func WithLimit(n int) ComposerOption {
	return func(c *Composer) {
		c.limit = n
	}
}

// WithWorkers sets the download pool width.
func WithWorkers(n int) ComposerOption {
	return func(c *Composer) {
		c.workers = n
	}
}

// NewComposer creates a Composer.
func NewComposer(source AssetSource, renderer Renderer, log *slog.Logger, opts ...ComposerOption) *Composer {
	if log == nil {
		log = slog.Default()
	}
	c := &Composer{
		source:   source,
		renderer: renderer,
		limit:    DefaultLimit,
		workers:  defaultWorkers,
		log:      log.With("component", "cover"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildCover downloads member posters with a bounded pool, drops failures,
// and renders the survivors into one flattened JPEG. Returns (nil, nil) when
// no posters survive: a missing cover is a degraded outcome, not an error.
// Posters keep request order regardless of download completion order, so the
// mosaic layout is deterministic for a given member set.
func (c *Composer) BuildCover(ctx context.Context, collectionID, collectionName string) ([]byte, error) {
	urls, err := c.source.PosterURLs(ctx, collectionID, c.limit)
	if err != nil {
		return nil, fmt.Errorf("fetch poster urls: %w", err)
	}
	if len(urls) == 0 {
		c.log.Warn("no member posters available", "collection", collectionName)
		return nil, nil
	}

	assets := c.download(ctx, urls)

	posters := make([][]byte, 0, len(assets))
	for _, a := range assets {
		if a.Data != nil {
			posters = append(posters, a.Data)
		}
	}
	if len(posters) == 0 {
		c.log.Warn("all poster downloads failed", "collection", collectionName)
		return nil, nil
	}

	img, err := c.renderer.Render(posters, collectionName)
	if err != nil {
		return nil, fmt.Errorf("render cover: %w", err)
	}
	return flattenJPEG(img)
}

// download fetches all URLs concurrently, each slot indexed by request order.
// A failed fetch leaves a nil-Data asset in its slot and never fails the
// group.
func (c *Composer) download(ctx context.Context, urls []string) []Asset {
	assets := make([]Asset, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			data, err := c.source.FetchImage(ctx, u)
			if err != nil {
				c.log.Debug("poster download failed", "url", u, "error", err)
				assets[i] = Asset{URL: u}
				return nil
			}
			assets[i] = Asset{URL: u, Data: data}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return assets
}

// flattenJPEG re-draws the image onto an opaque canvas and JPEG-encodes it.
// The upload side rejects transparency.
func flattenJPEG(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
