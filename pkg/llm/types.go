package llm

import (
	"fmt"
)

// TailoringRequest is the input to the tailoring prompt.
type TailoringRequest struct {
	ResumeText     string
	JobDescription string
}

// GenerateRequest represents the Ollama /api/generate request format.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse represents the non-streamed /api/generate response format.
type GenerateResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// FailureReason classifies why a completion call failed.
type FailureReason int

const (
	// NetworkError means the endpoint could not be reached or the body could not be read.
	NetworkError FailureReason = iota + 1
	// HTTPError means the endpoint answered with a non-200 status.
	HTTPError
	// DecodeError means a 200 response body was not valid JSON.
	DecodeError
	// RequestError means the request could not be built, e.g. a malformed endpoint URL.
	RequestError
)

func (r FailureReason) String() (s string) {
	switch r {
	case NetworkError:
		s = "network error"
	case HTTPError:
		s = "http error"
	case DecodeError:
		s = "decode error"
	case RequestError:
		s = "request error"
	default:
		s = "unknown error"
	}
	return s
}

// Failure describes an unsuccessful completion call.
type Failure struct {
	Reason     FailureReason
	StatusCode int    // set for HTTPError
	Body       string // response body, when one was received
	Cause      error
}

func (f *Failure) Error() (msg string) {
	switch {
	case f.Reason == HTTPError:
		msg = fmt.Sprintf("%s: status %d", f.Reason, f.StatusCode)
	case f.Cause != nil:
		msg = fmt.Sprintf("%s: %v", f.Reason, f.Cause)
	default:
		msg = f.Reason.String()
	}
	return msg
}

// Unwrap returns the underlying transport or decode error.
func (f *Failure) Unwrap() (err error) {
	err = f.Cause
	return err
}

// Result is the outcome of a completion call: either generated text or a Failure.
type Result struct {
	text    string
	failure *Failure
}

// Success builds a successful Result.
func Success(text string) (r Result) {
	r = Result{text: text}
	return r
}

// Fail builds a failed Result.
func Fail(failure *Failure) (r Result) {
	r = Result{failure: failure}
	return r
}

// OK reports whether the call succeeded.
func (r Result) OK() (ok bool) {
	ok = r.failure == nil
	return ok
}

// Text returns the generated text. It is empty for a failed Result.
func (r Result) Text() (text string) {
	text = r.text
	return text
}

// Failure returns the failure, or nil on success.
func (r Result) Failure() (failure *Failure) {
	failure = r.failure
	return failure
}

// Err returns the failure as an error, or nil on success.
func (r Result) Err() (err error) {
	if r.failure != nil {
		err = r.failure
	}
	return err
}
