package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/httputil"
	"github.com/plankworks/plank/pkg/tabletop"
)

// Quoter obtains an authoritative price for a payload. The production
// implementation is [Client]; tests substitute fakes.
type Quoter interface {
	Quote(ctx context.Context, p tabletop.Payload) (float64, error)
}

// Client is the HTTP client for the remote pricing service. The service
// receives the full normalized payload and answers with a single price.
type Client struct {
	http *http.Client
	url  string
}

// NewClient creates a pricing client for the given endpoint URL.
func NewClient(url string) *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		url:  url,
	}
}

// SetTimeout overrides the default per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http.Timeout = d
	}
}

// quoteResponse is the service's answer envelope.
type quoteResponse struct {
	Price float64 `json:"price"`
}

// Quote posts the payload and decodes the authoritative price. Transient
// failures (network errors, 5xx) are retried with backoff; 4xx responses
// are returned immediately.
func (c *Client) Quote(ctx context.Context, p tabletop.Payload) (float64, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "encode pricing payload")
	}

	var price float64
	err = httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "pricing service unreachable")}
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return &httputil.RetryableError{Err: errors.New(errors.ErrCodePricingFailed, "pricing service error (status %d)", resp.StatusCode)}
		}
		if resp.StatusCode != http.StatusOK {
			return errors.New(errors.ErrCodePricingFailed, "pricing service rejected payload (status %d)", resp.StatusCode)
		}

		var qr quoteResponse
		if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
			return errors.Wrap(errors.ErrCodePricingFailed, err, "decode pricing response")
		}
		price = qr.Price
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, errors.Wrap(errors.ErrCodeTimeout, err, "pricing request timed out")
		}
		return 0, fmt.Errorf("quote: %w", err)
	}
	return price, nil
}
