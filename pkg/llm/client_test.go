package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://example.test/api/generate", "llama3", 30*time.Second)

	require.NotNil(t, client)
	assert.Equal(t, "http://example.test/api/generate", client.endpoint)
	assert.Equal(t, "llama3", client.model)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "", 0)

	assert.Equal(t, OllamaEndpoint, client.endpoint)
	assert.Equal(t, OllamaModel, client.model)
	assert.Equal(t, time.Duration(0), client.httpClient.Timeout)
}

func TestGenerateSuccess(t *testing.T) {
	var got GenerateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"response": "hello"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "mistral:instruct", 0)

	result := client.Generate(context.Background(), "say hello")

	require.True(t, result.OK())
	assert.Equal(t, "hello", result.Text())
	assert.NoError(t, result.Err())
	assert.Nil(t, result.Failure())

	assert.Equal(t, "mistral:instruct", got.Model)
	assert.Equal(t, "say hello", got.Prompt)
	assert.False(t, got.Stream)
}

func TestGenerateStreamFlagIsSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		stream, present := raw["stream"]
		assert.True(t, present, "stream must be sent explicitly")
		assert.Equal(t, false, stream)
		_, _ = w.Write([]byte(`{"response": ""}`))
	}))
	defer server.Close()

	result := NewClient(server.URL, "", 0).Generate(context.Background(), "prompt")
	assert.True(t, result.OK())
}

func TestGenerateMissingResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model": "mistral:instruct", "done": true}`))
	}))
	defer server.Close()

	result := NewClient(server.URL, "", 0).Generate(context.Background(), "prompt")

	require.True(t, result.OK())
	assert.Equal(t, "", result.Text())
}

func TestGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer server.Close()

	var result Result
	assert.NotPanics(t, func() {
		result = NewClient(server.URL, "", 0).Generate(context.Background(), "prompt")
	})

	require.False(t, result.OK())
	failure := result.Failure()
	require.NotNil(t, failure)
	assert.Equal(t, HTTPError, failure.Reason)
	assert.Equal(t, http.StatusInternalServerError, failure.StatusCode)
	assert.Equal(t, "model not loaded", failure.Body)
	assert.Equal(t, "", result.Text())
	assert.EqualError(t, result.Err(), "http error: status 500")
}

func TestGenerateDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	result := NewClient(server.URL, "", 0).Generate(context.Background(), "prompt")

	require.False(t, result.OK())
	assert.Equal(t, DecodeError, result.Failure().Reason)
	assert.Equal(t, "<html>not json</html>", result.Failure().Body)
	assert.Error(t, result.Failure().Unwrap())
}

func TestGenerateNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	result := NewClient(endpoint, "", 0).Generate(context.Background(), "prompt")

	require.False(t, result.OK())
	assert.Equal(t, NetworkError, result.Failure().Reason)
	assert.Contains(t, result.Err().Error(), "network error")
}

func TestGenerateMalformedEndpoint(t *testing.T) {
	result := NewClient("://no-scheme", "", 0).Generate(context.Background(), "prompt")

	require.False(t, result.OK())
	assert.Equal(t, RequestError, result.Failure().Reason)
	assert.Contains(t, result.Err().Error(), "request error")
	assert.Error(t, result.Failure().Unwrap())
}

func TestGenerateCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": "late"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewClient(server.URL, "", 0).Generate(ctx, "prompt")

	require.False(t, result.OK())
	assert.Equal(t, NetworkError, result.Failure().Reason)
}

func TestTailor(t *testing.T) {
	req := TailoringRequest{
		ResumeText:     "Experience\nKnak – Developer",
		JobDescription: "Needs TypeScript",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got GenerateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, BuildTailoringPrompt(req), got.Prompt)

		_ = json.NewEncoder(w).Encode(GenerateResponse{Response: "Experience\n-Shipped TypeScript features", Done: true})
	}))
	defer server.Close()

	result := NewClient(server.URL, "", 0).Tailor(context.Background(), req)

	require.True(t, result.OK())
	assert.Equal(t, "Experience\n-Shipped TypeScript features", result.Text())
}

func TestFailureReasonString(t *testing.T) {
	assert.Equal(t, "network error", NetworkError.String())
	assert.Equal(t, "http error", HTTPError.String())
	assert.Equal(t, "decode error", DecodeError.String())
	assert.Equal(t, "request error", RequestError.String())
	assert.Equal(t, "unknown error", FailureReason(0).String())
}
