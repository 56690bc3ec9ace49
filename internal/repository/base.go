// Package repository implements typed clients for the wallet backend.
//
// Every request body is a model.Envelope: the payload is encrypted by the
// configured crypto.ContentEncryptor and the operation is named by
// requestType. Failures are passed to the shared error handler once and
// then returned to the caller unchanged.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/cardano-wallet/internal/crypto"
	"github.com/AlexZinkM/cardano-wallet/internal/model"
)

const (
	defaultTimeout  = 15 * time.Second
	userAgent       = "cardano-wallet-client"
	maxResponseSize = 10 << 20
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrorHandler is the shared side effect run for every failed request.
// Its return value is ignored; the error is always returned to the caller.
type ErrorHandler func(err error)

// ResponseError is returned when the backend answers with a non-2xx status
type ResponseError struct {
	StatusCode int
	Body       []byte
	Detail     model.ErrorResponse // parsed from Body when it is JSON
}

func (e *ResponseError) Error() string {
	if text := e.Detail.Text(); text != "" {
		return fmt.Sprintf("%d status: %s", e.StatusCode, text)
	}
	return fmt.Sprintf("%d status: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

func newResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Body: body}
	_ = json.Unmarshal(body, &respErr.Detail) // best effort, body may be plain text
	return respErr
}

// Option configures a BaseRepository
type Option func(*BaseRepository)

// WithHTTPClient sets the transport used for requests
func WithHTTPClient(client Doer) Option {
	return func(r *BaseRepository) {
		r.client = client
	}
}

// WithEncryptor sets the content encryptor. Without one, envelopes are sent
// without content and contentKey.
func WithEncryptor(encryptor crypto.ContentEncryptor) Option {
	return func(r *BaseRepository) {
		r.encryptor = encryptor
	}
}

// WithErrorHandler sets the shared error handler
func WithErrorHandler(handler ErrorHandler) Option {
	return func(r *BaseRepository) {
		r.onError = handler
	}
}

// BaseRepository holds what all repositories share: the backend address,
// the path prefix, the transport, content encryption and error handling.
// It is immutable after construction and safe for concurrent use.
type BaseRepository struct {
	baseURL   string
	prefix    string
	client    Doer
	encryptor crypto.ContentEncryptor
	onError   ErrorHandler
}

// NewBaseRepository creates a repository base for baseURL with the given path prefix
func NewBaseRepository(baseURL, prefix string, opts ...Option) *BaseRepository {
	r := &BaseRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		prefix:  prefix,
		client:  &http.Client{Timeout: defaultTimeout},
		onError: func(error) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prefix returns the path prefix of the repository
func (r *BaseRepository) Prefix() string {
	return r.prefix
}

// EncryptContent encrypts payload with the configured encryptor.
// Returns nil content and nil error when no encryptor is configured.
func (r *BaseRepository) EncryptContent(payload any) (*crypto.EncryptedContent, error) {
	if r.encryptor == nil {
		return nil, nil
	}
	return r.encryptor.Encrypt(payload)
}

// ErrorResponseHandler runs the shared error handler for err
func (r *BaseRepository) ErrorResponseHandler(err error) {
	r.onError(err)
}

// newEnvelope encrypts payload and wraps it into an envelope for requestType
func (r *BaseRepository) newEnvelope(payload any, requestType string) (*model.Envelope, error) {
	encrypted, err := r.EncryptContent(payload)
	if err != nil {
		return nil, err
	}

	envelope := &model.Envelope{RequestType: requestType}
	if encrypted != nil {
		envelope.Content = encrypted.EncryptedData
		envelope.ContentKey = encrypted.EncryptedAESKey
	}
	return envelope, nil
}

// post sends body as JSON to prefix+path and returns the raw response body.
// Transport errors are returned as is.
func (r *BaseRepository) post(ctx context.Context, path string, body any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.fullPath(path), buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newResponseError(res.StatusCode, data)
	}
	return data, nil
}

func (r *BaseRepository) fullPath(path string) string {
	return r.baseURL + r.prefix + path
}
