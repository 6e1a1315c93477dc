package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	// OllamaEndpoint is the default local generate endpoint.
	OllamaEndpoint = "http://localhost:11434/api/generate"
	// OllamaModel is the default model.
	OllamaModel = "mistral:instruct"
)

// Client represents a client for a local Ollama text-generation endpoint.
type Client struct {
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new completion client. A zero timeout leaves requests unbounded.
func NewClient(endpoint, model string, timeout time.Duration) (client *Client) {
	if endpoint == "" {
		endpoint = OllamaEndpoint
	}
	if model == "" {
		model = OllamaModel
	}
	client = &Client{
		model:    model,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return client
}

// Tailor builds the tailoring prompt for req and sends it to the endpoint.
func (c *Client) Tailor(ctx context.Context, req TailoringRequest) (result Result) {
	prompt := BuildTailoringPrompt(req)
	result = c.Generate(ctx, prompt)
	return result
}

// Generate sends a single non-streamed generate request. It never retries.
func (c *Client) Generate(ctx context.Context, prompt string) (result Result) {
	genReq := GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}

	reqBody, err := json.Marshal(genReq)
	if err != nil {
		result = Fail(&Failure{Reason: RequestError, Cause: errors.Wrap(err, "failed to marshal request")})
		return result
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		result = Fail(&Failure{Reason: RequestError, Cause: errors.Wrap(err, "failed to create HTTP request")})
		return result
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		result = Fail(&Failure{Reason: NetworkError, Cause: errors.Wrap(err, "HTTP request failed")})
		return result
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		result = Fail(&Failure{Reason: NetworkError, Cause: errors.Wrap(err, "failed to read response body")})
		return result
	}

	if resp.StatusCode != http.StatusOK {
		result = Fail(&Failure{Reason: HTTPError, StatusCode: resp.StatusCode, Body: string(respBody)})
		return result
	}

	var genResp GenerateResponse
	err = json.Unmarshal(respBody, &genResp)
	if err != nil {
		result = Fail(&Failure{Reason: DecodeError, Body: string(respBody), Cause: errors.Wrap(err, "failed to parse generate response")})
		return result
	}

	// A missing "response" field decodes to "" and is still a success.
	result = Success(genResp.Response)
	return result
}
