package seerr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listsync/internal/list"
)

// fakeSeerr is a minimal request-service fake. Submitted requests are
// recorded for assertions.
type fakeSeerr struct {
	results   []SearchResult
	submitted []map[string]any
	searches  int
	failSearch bool
}

func (f *fakeSeerr) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/search", func(w http.ResponseWriter, r *http.Request) {
		f.searches++
		if f.failSearch {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": f.results})
	})
	mux.HandleFunc("/api/v1/request", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.submitted = append(f.submitted, body)
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func newTestSeerr(t *testing.T, f *fakeSeerr) *Client {
	t.Helper()
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	client, err := New(context.Background(), server.URL, Credentials{APIKey: "test-key"})
	require.NoError(t, err)
	return client
}

func strPtr(s string) *string { return &s }

var matrixItem = list.SourceItem{
	Title: "The Matrix", ReleaseYear: 1999, ExternalID: "tt0133093", MediaType: "movie",
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	f := &fakeSeerr{}
	server := httptest.NewServer(f.handler())
	defer server.Close()

	// Trailing slash and missing /api/v1 suffix are both fixed up.
	client, err := New(context.Background(), server.URL+"/", Credentials{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/api/v1", client.baseURL)
}

func TestNew_UnreachableIsFatal(t *testing.T) {
	_, err := New(context.Background(), "http://127.0.0.1:1", Credentials{APIKey: "k"})
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestNew_UnauthenticatedIsFatal(t *testing.T) {
	f := &fakeSeerr{}
	server := httptest.NewServer(f.handler())
	defer server.Close()

	_, err := New(context.Background(), server.URL, Credentials{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestNew_RejectsInvalidUserType(t *testing.T) {
	_, err := New(context.Background(), "http://ignored", Credentials{UserType: "emby"})
	require.Error(t, err)
}

func TestRequestIfMissing_SubmitsOnExternalIDMatch(t *testing.T) {
	f := &fakeSeerr{
		results: []SearchResult{
			{ID: 10, MediaType: "movie", MediaInfo: &MediaInfo{ImdbID: "tt0000001"}},
			{ID: 11, MediaType: "movie", MediaInfo: &MediaInfo{ImdbID: "tt0133093"}},
		},
	}
	client := newTestSeerr(t, f)

	client.RequestIfMissing(context.Background(), matrixItem)

	require.Len(t, f.submitted, 1)
	assert.Equal(t, "movie", f.submitted[0]["mediaType"])
	assert.Equal(t, float64(11), f.submitted[0]["mediaId"])
}

func TestRequestIfMissing_YearFallback(t *testing.T) {
	f := &fakeSeerr{
		results: []SearchResult{
			{ID: 20, MediaType: "movie", ReleaseDate: "2003-05-15"},
			{ID: 21, MediaType: "movie", ReleaseDate: "1999-03-31"},
		},
	}
	client := newTestSeerr(t, f)

	client.RequestIfMissing(context.Background(), matrixItem)

	require.Len(t, f.submitted, 1)
	assert.Equal(t, float64(21), f.submitted[0]["mediaId"])
}

func TestRequestIfMissing_SkipsWhenAlreadyOnServer(t *testing.T) {
	f := &fakeSeerr{
		results: []SearchResult{
			{ID: 11, MediaType: "movie", MediaInfo: &MediaInfo{
				ImdbID:          "tt0133093",
				JellyfinMediaID: strPtr("jf-1"),
			}},
		},
	}
	client := newTestSeerr(t, f)

	client.RequestIfMissing(context.Background(), matrixItem)

	assert.Equal(t, 1, f.searches)
	assert.Empty(t, f.submitted, "present media must not be re-requested")
}

func TestRequestIfMissing_NoMatchIsSilent(t *testing.T) {
	f := &fakeSeerr{
		results: []SearchResult{
			{ID: 30, MediaType: "movie", ReleaseDate: "2010-01-01"},
		},
	}
	client := newTestSeerr(t, f)

	client.RequestIfMissing(context.Background(), matrixItem)
	assert.Empty(t, f.submitted)
}

func TestRequestIfMissing_SearchFailureIsSilent(t *testing.T) {
	f := &fakeSeerr{failSearch: true}
	client := newTestSeerr(t, f)

	// Must not panic or submit; failure is logged only.
	client.RequestIfMissing(context.Background(), matrixItem)
	assert.Empty(t, f.submitted)
}

func TestFindMatch_IDTakesPrecedencePerResult(t *testing.T) {
	client := &Client{}
	// A result that carries an external id is matched by id only; the year
	// fallback applies just to results without media info.
	results := []SearchResult{
		{ID: 1, MediaInfo: &MediaInfo{ImdbID: "tt9999999"}, ReleaseDate: "1999-01-01"},
		{ID: 2, ReleaseDate: "1999-06-01"},
	}
	m := client.findMatch(matrixItem, results)
	require.NotNil(t, m)
	assert.Equal(t, 2, m.ID)
}
