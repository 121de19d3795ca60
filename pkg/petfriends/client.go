/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:generate go tool mockgen -source=client.go -destination=mock/interface.go -package=mock
package petfriends

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public PetFriends deployment.
	DefaultBaseURL = "https://petfriends.skillfactory.ru"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	photoField = "pet_photo"
)

// ErrPhotoUnreadable is returned when a photo path cannot be opened.
var ErrPhotoUnreadable = errors.New("pet photo cannot be read")

// Interface is the set of PetFriends operations.
type Interface interface {
	GetAPIKey(ctx context.Context, credentials Credentials) (*Result[AuthKey], error)
	ListPets(ctx context.Context, key AuthKey, filter Filter) (*Result[PetList], error)
	CreatePetSimple(ctx context.Context, key AuthKey, details PetDetails) (*Result[Pet], error)
	AddNewPet(ctx context.Context, key AuthKey, details PetDetails, photoPath string) (*Result[Pet], error)
	SetPhoto(ctx context.Context, key AuthKey, petID, photoPath string) (*Result[Pet], error)
	UpdatePetInfo(ctx context.Context, key AuthKey, petID string, details PetDetails) (*Result[Pet], error)
	DeletePet(ctx context.Context, key AuthKey, petID string) (*Result[Empty], error)
}

// Client talks to a PetFriends deployment. It never retries and never
// interprets status codes, that is left to the caller.
type Client struct {
	baseURL      string
	client       *resty.Client
	logger       *zap.Logger
	logRequests  bool
	logResponses bool
	endpoints    *Endpoints
}

var _ Interface = &Client{}

type options struct {
	timeout      time.Duration
	httpClient   *http.Client
	logger       *zap.Logger
	logRequests  bool
	logResponses bool
}

// Option customizes a Client.
type Option func(*options)

// WithTimeout sets the per request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient uses the given HTTP client for transport, its own timeout applies.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger for request tracing and errors.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRequestLogging logs a line per completed request.
func WithRequestLogging(enabled bool) Option {
	return func(o *options) {
		o.logRequests = enabled
	}
}

// WithResponseLogging logs every non-empty response body.
func WithResponseLogging(enabled bool) Option {
	return func(o *options) {
		o.logResponses = enabled
	}
}

// New returns a client for the service at baseURL, or DefaultBaseURL when empty.
func New(baseURL string, opts ...Option) *Client {
	o := options{
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var client *resty.Client

	if o.httpClient != nil {
		client = resty.NewWithClient(o.httpClient)
	} else {
		client = resty.New()
		client.SetTimeout(o.timeout)
	}

	client.SetLogger(o.logger.Sugar())

	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		client:       client,
		logger:       o.logger,
		logRequests:  o.logRequests,
		logResponses: o.logResponses,
		endpoints:    NewEndpoints(),
	}
}

// BaseURL returns the service root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// traceContext identifies a single request in the W3C trace context format.
// Every request gets its own so a failure can be found in the service logs.
type traceContext struct {
	traceID string
	spanID  string
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func newTraceContext() traceContext {
	return traceContext{
		traceID: randomHex(16),
		spanID:  randomHex(8),
	}
}

// traceParent renders the traceparent header value, sampled.
func (t traceContext) traceParent() string {
	return "00-" + t.traceID + "-" + t.spanID + "-01"
}

func (c *Client) logError(method, path string, duration time.Duration, trace traceContext, err error, context string) {
	c.logger.Error(context,
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("duration", duration),
		zap.String("traceID", trace.traceID),
		zap.Error(err),
	)
}

func (c *Client) doRequest(ctx context.Context, method, path string, prepare func(*resty.Request)) (int, []byte, error) {
	trace := newTraceContext()

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Traceparent", trace.traceParent()).
		SetHeader("Tracestate", "test-automation=petfriends")

	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, c.baseURL+path)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, trace, err, "http request failed")
		return 0, nil, fmt.Errorf("http request failed: %w", err)
	}

	body := resp.Body()

	if c.logRequests {
		c.logger.Info("request complete",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", duration),
			zap.String("traceID", trace.traceID),
		)
	}

	if c.logResponses && len(body) > 0 {
		c.logger.Info("response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.ByteString("body", body),
		)
	}

	return resp.StatusCode(), body, nil
}

func authorize(key AuthKey) func(*resty.Request) {
	return func(req *resty.Request) {
		req.SetHeader("auth_key", key.Key)
	}
}

// openPhoto opens a photo for streaming into a multipart body. The content
// type is derived from the extension, JPEG is assumed otherwise.
func openPhoto(photoPath string) (*os.File, string, error) {
	file, err := os.Open(photoPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrPhotoUnreadable, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(photoPath))
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return file, contentType, nil
}

// GetAPIKey exchanges credentials for an auth key.
func (c *Client) GetAPIKey(ctx context.Context, credentials Credentials) (*Result[AuthKey], error) {
	status, body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.APIKey(), func(req *resty.Request) {
		req.SetHeader("email", credentials.Email)
		req.SetHeader("password", credentials.Password)
	})
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	return newResult[AuthKey](status, body), nil
}

// ListPets lists pets, filter narrows the list to the caller's own pets.
func (c *Client) ListPets(ctx context.Context, key AuthKey, filter Filter) (*Result[PetList], error) {
	status, body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListPets(), func(req *resty.Request) {
		authorize(key)(req)
		req.SetQueryParam("filter", string(filter))
	})
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return newResult[PetList](status, body), nil
}

// CreatePetSimple creates a pet without a photo.
func (c *Client) CreatePetSimple(ctx context.Context, key AuthKey, details PetDetails) (*Result[Pet], error) {
	status, body, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePetSimple(), func(req *resty.Request) {
		authorize(key)(req)
		req.SetFormData(details.formData())
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return newResult[Pet](status, body), nil
}

// AddNewPet creates a pet and uploads its photo in one request.
func (c *Client) AddNewPet(ctx context.Context, key AuthKey, details PetDetails, photoPath string) (*Result[Pet], error) {
	photo, contentType, err := openPhoto(photoPath)
	if err != nil {
		return nil, err
	}

	defer photo.Close()

	status, body, err := c.doRequest(ctx, http.MethodPost, c.endpoints.AddNewPet(), func(req *resty.Request) {
		authorize(key)(req)
		req.SetMultipartFormData(details.formData())
		req.SetMultipartField(photoField, filepath.Base(photoPath), contentType, photo)
	})
	if err != nil {
		return nil, fmt.Errorf("adding pet: %w", err)
	}

	return newResult[Pet](status, body), nil
}

// SetPhoto replaces the photo of an existing pet.
func (c *Client) SetPhoto(ctx context.Context, key AuthKey, petID, photoPath string) (*Result[Pet], error) {
	photo, contentType, err := openPhoto(photoPath)
	if err != nil {
		return nil, err
	}

	defer photo.Close()

	status, body, err := c.doRequest(ctx, http.MethodPost, c.endpoints.SetPhoto(petID), func(req *resty.Request) {
		authorize(key)(req)
		req.SetMultipartField(photoField, filepath.Base(photoPath), contentType, photo)
	})
	if err != nil {
		return nil, fmt.Errorf("setting photo of pet %s: %w", petID, err)
	}

	return newResult[Pet](status, body), nil
}

// UpdatePetInfo replaces the name, type and age of an existing pet.
func (c *Client) UpdatePetInfo(ctx context.Context, key AuthKey, petID string, details PetDetails) (*Result[Pet], error) {
	status, body, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdatePet(petID), func(req *resty.Request) {
		authorize(key)(req)
		req.SetFormData(details.formData())
	})
	if err != nil {
		return nil, fmt.Errorf("updating pet %s: %w", petID, err)
	}

	return newResult[Pet](status, body), nil
}

// DeletePet deletes a pet. The service answers with an empty body.
func (c *Client) DeletePet(ctx context.Context, key AuthKey, petID string) (*Result[Empty], error) {
	status, body, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), authorize(key))
	if err != nil {
		return nil, fmt.Errorf("deleting pet %s: %w", petID, err)
	}

	return newResult[Empty](status, body), nil
}
