package cover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves in-memory posters; URLs listed in fail error out.
type fakeSource struct {
	urls []string
	fail map[string]bool
	data map[string][]byte // real bytes per URL; default is a placeholder

	mu       sync.Mutex
	inFlight int32
	maxSeen  int32
}

func (f *fakeSource) PosterURLs(_ context.Context, _ string, limit int) ([]string, error) {
	if len(f.urls) > limit {
		return f.urls[:limit], nil
	}
	return f.urls, nil
}

func (f *fakeSource) FetchImage(_ context.Context, url string) ([]byte, error) {
	cur := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	f.mu.Lock()
	if cur > f.maxSeen {
		f.maxSeen = cur
	}
	f.mu.Unlock()

	if f.fail[url] {
		return nil, errors.New("download failed")
	}
	if d, ok := f.data[url]; ok {
		return d, nil
	}
	return []byte("poster:" + url), nil
}

// fakeRenderer records what it was asked to render.
type fakeRenderer struct {
	got [][]byte
}

func (f *fakeRenderer) Render(posters [][]byte, _ string) (image.Image, error) {
	f.got = posters
	return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
}

func TestBuildCover_PartialFailuresDegrade(t *testing.T) {
	source := &fakeSource{
		urls: []string{"u1", "u2", "u3", "u4", "u5"},
		fail: map[string]bool{"u2": true, "u4": true},
	}
	renderer := &fakeRenderer{}
	c := NewComposer(source, renderer, nil)

	data, err := c.BuildCover(context.Background(), "col-1", "Top 250")
	require.NoError(t, err)
	require.NotNil(t, data)

	// 3 of 5 survive, in request order regardless of completion order.
	assert.Equal(t, [][]byte{
		[]byte("poster:u1"),
		[]byte("poster:u3"),
		[]byte("poster:u5"),
	}, renderer.got)
}

func TestBuildCover_AllFailuresProduceNoCover(t *testing.T) {
	source := &fakeSource{
		urls: []string{"u1", "u2"},
		fail: map[string]bool{"u1": true, "u2": true},
	}
	renderer := &fakeRenderer{}
	c := NewComposer(source, renderer, nil)

	data, err := c.BuildCover(context.Background(), "col-1", "Top 250")
	require.NoError(t, err)
	assert.Nil(t, data, "no cover is a degraded outcome, not an error")
	assert.Nil(t, renderer.got, "renderer must not run with zero posters")
}

func TestBuildCover_NoMembersProduceNoCover(t *testing.T) {
	source := &fakeSource{}
	renderer := &fakeRenderer{}
	c := NewComposer(source, renderer, nil)

	data, err := c.BuildCover(context.Background(), "col-1", "Empty")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestBuildCover_RespectsLimit(t *testing.T) {
	urls := make([]string, 30)
	for i := range urls {
		urls[i] = fmt.Sprintf("u%d", i)
	}
	source := &fakeSource{urls: urls}
	renderer := &fakeRenderer{}
	c := NewComposer(source, renderer, nil, WithLimit(4))

	_, err := c.BuildCover(context.Background(), "col-1", "Top 250")
	require.NoError(t, err)
	assert.Len(t, renderer.got, 4)
}

func TestBuildCover_BoundsConcurrency(t *testing.T) {
	urls := make([]string, 20)
	for i := range urls {
		urls[i] = fmt.Sprintf("u%d", i)
	}
	source := &fakeSource{urls: urls}
	renderer := &fakeRenderer{}
	c := NewComposer(source, renderer, nil, WithWorkers(3))

	_, err := c.BuildCover(context.Background(), "col-1", "Top 250")
	require.NoError(t, err)
	assert.LessOrEqual(t, source.maxSeen, int32(3))
}

func TestBuildCover_OutputIsFlattenedJPEG(t *testing.T) {
	// Real poster bytes this time: a PNG with transparency.
	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	require.NoError(t, png.Encode(&buf, img))

	source := &fakeSource{
		urls: []string{"u1"},
		data: map[string][]byte{"u1": buf.Bytes()},
	}
	c := NewComposer(source, NewMosaic(), nil)

	data, err := c.BuildCover(context.Background(), "col-1", "Top 250")
	require.NoError(t, err)
	require.NotNil(t, data)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cellWidth, decoded.Bounds().Dx())
	assert.Equal(t, cellHeight+captionH, decoded.Bounds().Dy())
	// JPEG is inherently opaque; sample a pixel to be sure decode worked.
	_ = decoded.At(0, 0).(color.Color)
}
