package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhalm/search-gateway/internal/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "gen-key", "gpt-4", 2*time.Second)
}

func TestCompleteRequestShape(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Here are your products."}}]}`))
	})

	text, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer gen-key", gotAuth)
	assert.Equal(t, "gpt-4", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "system prompt"}, gotBody.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "user prompt"}, gotBody.Messages[1])
	assert.Equal(t, "Here are your products.", text)
}

func TestCompleteFirstChoiceWins(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "first"}}, {"message": {"content": "second"}}]}`))
	})

	text, err := client.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "s", "u")

	var generationErr *apperrors.GenerationError
	require.ErrorAs(t, err, &generationErr)
}

func TestCompleteEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Complete(context.Background(), "s", "u")

	var generationErr *apperrors.GenerationError
	require.ErrorAs(t, err, &generationErr)
}

func TestCompleteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, "gen-key", "gpt-4", time.Second)

	_, err := client.Complete(context.Background(), "s", "u")

	var generationErr *apperrors.GenerationError
	require.ErrorAs(t, err, &generationErr)
}
