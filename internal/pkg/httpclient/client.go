package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps resty for HTTP calls to the payment gateway.
type Client struct {
	r *resty.Client
}

// Response carries the pieces of an HTTP reply a caller needs to
// classify it. Non-2xx statuses are returned here, not as errors.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New creates a client with a default timeout. No retry policy: a
// failed gateway call surfaces to the caller as-is.
func New() *Client {
	return &Client{r: resty.New().SetTimeout(30 * time.Second)}
}

// WithTimeout sets a custom timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.r.SetTimeout(d)
	return c
}

// WithHeader sets a header on every request.
func (c *Client) WithHeader(key, value string) *Client {
	c.r.SetHeader(key, value)
	return c
}

// PostJSON sends a POST with a JSON body and returns the full response.
func (c *Client) PostJSON(ctx context.Context, url string, body interface{}) (*Response, error) {
	resp, err := c.r.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
