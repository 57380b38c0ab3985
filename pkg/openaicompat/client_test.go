package openaicompat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/pkg/openaicompat"
)

func TestComplete(t *testing.T) {
	var got openaicompat.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		switch r.Header.Get("Authorization") {
		case "Bearer test-key":
		case "Bearer busy":
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit"}}`))
			return
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("nope"))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"TECHNICAL\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer srv.Close()

	newClient := func(key string) *openaicompat.Client {
		c, err := openaicompat.New(openaicompat.Config{APIKey: key, Model: "deepseek-chat", BaseURL: srv.URL + "/v1/"})
		require.NoError(t, err)
		return c
	}
	req := openaicompat.Request{
		Messages:       []openaicompat.Message{{Role: "user", Content: "my router is down"}},
		ResponseFormat: openaicompat.JSONOutput(),
	}

	t.Run("success", func(t *testing.T) {
		resp, err := newClient("test-key").Complete(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, `{"intent":"TECHNICAL"}`, resp.Text())
		assert.Equal(t, 4, resp.Usage.TotalTokens)
		assert.Equal(t, "deepseek-chat", got.Model)
		assert.Equal(t, "json_object", got.ResponseFormat.Type)
	})

	t.Run("error envelope", func(t *testing.T) {
		_, err := newClient("busy").Complete(context.Background(), req)
		var apiErr *openaicompat.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Equal(t, "slow down", apiErr.Message)
	})

	t.Run("plain error body", func(t *testing.T) {
		_, err := newClient("wrong").Complete(context.Background(), req)
		var apiErr *openaicompat.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "nope", apiErr.Message)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  openaicompat.Config
	}{
		{"missing key", openaicompat.Config{Model: "m", BaseURL: "u"}},
		{"missing model", openaicompat.Config{APIKey: "k", BaseURL: "u"}},
		{"missing base url", openaicompat.Config{APIKey: "k", Model: "m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := openaicompat.New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestResponseTextEmpty(t *testing.T) {
	var r *openaicompat.Response
	assert.Equal(t, "", r.Text())
	assert.Equal(t, "", (&openaicompat.Response{}).Text())
}
