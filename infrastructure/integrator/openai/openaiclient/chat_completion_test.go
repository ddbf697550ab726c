package openaiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openaidomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
)

func clientForServer(server *httptest.Server) Client {
	return NewClient(&config.Config{
		OpenAI: config.OpenAI{
			BaseURL:        server.URL,
			APIKey:         "test-key",
			Model:          "gpt-3.5-turbo",
			RequestTimeout: 5 * time.Second,
		},
	})
}

func sampleRequest() openaidomain.ChatCompletionRequest {
	return openaidomain.ChatCompletionRequest{
		Model: "gpt-3.5-turbo",
		Messages: []openaidomain.Message{
			{Role: "user", Content: "Briefly explain why."},
		},
		Temperature: 0.5,
	}
}

func TestOpenAIClient_CreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req openaidomain.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Equal(t, 0.5, req.Temperature)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaidomain.ChatCompletionResponse{
			Choices: []openaidomain.Choice{
				{Message: openaidomain.Message{Role: "assistant", Content: "Because ROI is low."}},
			},
		})
	}))
	defer server.Close()

	client := clientForServer(server)

	resp, err := client.CreateChatCompletion(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "Because ROI is low.", resp.Choices[0].Message.Content)
}

func TestOpenAIClient_CreateChatCompletion_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	client := clientForServer(server)

	_, err := client.CreateChatCompletion(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestOpenAIClient_CreateChatCompletion_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaidomain.ChatCompletionResponse{
			Error: &openaidomain.APIErr{Message: "model overloaded", Type: "server_error"},
		})
	}))
	defer server.Close()

	client := clientForServer(server)

	_, err := client.CreateChatCompletion(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestOpenAIClient_CreateChatCompletion_ContextCancelled(t *testing.T) {
	started := make(chan struct{})
	unblock := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-unblock:
		}
	}))
	defer server.Close()
	defer close(unblock)

	client := clientForServer(server)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.CreateChatCompletion(ctx, sampleRequest())
	assert.Error(t, err)
}
