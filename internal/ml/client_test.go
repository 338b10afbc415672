package ml

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SentenceSimilarity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		// one score per label; "drainage leakage" wins
		w.Write([]byte(`[0.1, 0.9, 0.2, 0.3, 0.1, 0.1, 0.4, 0.05]`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", "")
	res, err := c.SentenceSimilarity(context.Background(), "water pooling on the road")
	require.NoError(t, err)
	assert.Equal(t, "drainage leakage", res.Category)
	assert.InDelta(t, 0.9, res.Score, 1e-9)
	assert.Len(t, res.Scores, len(Labels))
}

func TestClient_SentenceSimilarity_ScoreCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[0.1, 0.9]`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "", "")
	_, err := c.SentenceSimilarity(context.Background(), "desc")
	assert.Error(t, err)
}

func TestClient_ZeroShot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"labels":["pothole","garbage dump"],"scores":[0.7,0.2]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL, "")
	res, err := c.ZeroShot(context.Background(), "huge hole in the street")
	require.NoError(t, err)
	assert.Equal(t, "pothole", res.Category)
	assert.InDelta(t, 0.7, res.Score, 1e-9)
}

func TestClient_ZeroShot_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.URL, "")
	_, err := c.ZeroShot(context.Background(), "desc")
	assert.Error(t, err)
}

func TestClient_ClassifyImage(t *testing.T) {
	imgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake-image-bytes"))
	}))
	defer imgSrv.Close()

	inferSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`[{"label":"manhole cover","score":0.83},{"label":"street sign","score":0.1}]`))
	}))
	defer inferSrv.Close()

	c := NewClient("test-key", "", "", inferSrv.URL)
	res, err := c.ClassifyImage(context.Background(), imgSrv.URL+"/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "manhole cover", res.Category)
	assert.InDelta(t, 0.83, res.Score, 1e-9)
}
