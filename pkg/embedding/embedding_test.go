package embedding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/pkg/voyage"
)

type countingEmbedder struct {
	calls [][]string
	err   error
}

func (c *countingEmbedder) Embed(ctx context.Context, texts []string, kind Kind) ([][]float32, error) {
	c.calls = append(c.calls, texts)
	if c.err != nil {
		return nil, c.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t))}
	}
	return out, nil
}

func (c *countingEmbedder) Name() string { return "counting" }

func TestCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{}
	e, err := NewCached(inner, 8)
	require.NoError(t, err)

	first, err := e.Embed(ctx, []string{"refund", "router"}, KindQuery)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{6}, {6}}, first)

	second, err := e.Embed(ctx, []string{"router", "billing"}, KindQuery)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{6}, {7}}, second)

	// only the unseen text reaches the backend
	require.Len(t, inner.calls, 2)
	assert.Equal(t, []string{"billing"}, inner.calls[1])

	_, err = e.Embed(ctx, []string{"refund"}, KindDocument)
	require.NoError(t, err)
	assert.Len(t, inner.calls, 3, "documents bypass the cache")
	assert.Equal(t, "counting", e.Name())
}

func TestCachedPropagatesErrors(t *testing.T) {
	inner := &countingEmbedder{err: errors.New("quota exceeded")}
	e, err := NewCached(inner, 4)
	require.NoError(t, err)

	_, err = e.Embed(context.Background(), []string{"hello"}, KindQuery)
	assert.EqualError(t, err, "quota exceeded")
}

func TestNewCachedRejectsBadSize(t *testing.T) {
	_, err := NewCached(&countingEmbedder{}, 0)
	assert.Error(t, err)
}

func TestVoyageEmbedder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"embedding":[1,0],"index":0}]}`))
	}))
	defer srv.Close()

	client, err := voyage.New(voyage.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	e := NewVoyage(client)
	vecs, err := e.Embed(context.Background(), []string{"where is my order"}, KindQuery)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}}, vecs)
	assert.Equal(t, "voyage/"+voyage.DefaultModel, e.Name())
}
