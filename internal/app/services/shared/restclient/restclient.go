package restclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
)

const DefaultRequestTimeout = 20 * time.Second

// Response is the raw outcome of one outbound call. Non-2xx statuses are not
// errors at this layer: callers inspect the status themselves.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= constvars.StatusOK && r.StatusCode < 300
}

// RestClient wraps net/http with a fixed per-request deadline and an optional
// header hook. Deadline exhaustion surfaces as a distinct timeout error so
// callers can tell a slow upstream from a refused one.
type RestClient struct {
	baseURL        string
	timeout        time.Duration
	httpClient     *http.Client
	headerProvider contracts.HeaderProvider
}

type Option func(*RestClient)

func WithTimeout(timeout time.Duration) Option {
	return func(c *RestClient) {
		c.timeout = timeout
	}
}

func WithHeaderProvider(provider contracts.HeaderProvider) Option {
	return func(c *RestClient) {
		c.headerProvider = provider
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *RestClient) {
		c.httpClient = httpClient
	}
}

func NewRestClient(baseURL string, opts ...Option) *RestClient {
	client := &RestClient{
		baseURL:    baseURL,
		timeout:    DefaultRequestTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *RestClient) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.do(ctx, constvars.MethodGet, endpoint, nil, "")
}

func (c *RestClient) Post(ctx context.Context, endpoint string, body []byte, contentType string) (*Response, error) {
	return c.do(ctx, constvars.MethodPost, endpoint, body, contentType)
}

func (c *RestClient) Put(ctx context.Context, endpoint string, body []byte, contentType string) (*Response, error) {
	return c.do(ctx, constvars.MethodPut, endpoint, body, contentType)
}

func (c *RestClient) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.do(ctx, constvars.MethodDelete, endpoint, nil, "")
}

func (c *RestClient) do(ctx context.Context, method, endpoint string, body []byte, contentType string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, joinURL(c.baseURL, endpoint), reader)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if c.headerProvider != nil {
		if err := c.headerProvider.ApplyHeaders(ctx, req.Header); err != nil {
			return nil, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendRequest(err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       responseBody,
	}, nil
}

// joinURL anchors an endpoint under the base URL with exactly one separating
// slash, whichever way the two sides were written.
func joinURL(baseURL, endpoint string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}
