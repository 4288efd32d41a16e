package autoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"vehicle_sync/internal/domain"
)

// Config holds connection settings for one auto-api style upstream.
type Config struct {
	BaseURL        string
	V1URL          string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// StatusError is a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the REST API shared by the Korea, China and Dubai feeds.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	v1URL          string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		v1URL:          cfg.V1URL,
		apiKey:         cfg.APIKey,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger,
	}
}

// ListOffers fetches one page of the full listing.
func (c *Client) ListOffers(ctx context.Context, page int, filters domain.OfferFilters) (*domain.OfferPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if filters.Mark != "" {
		params.Set("mark", filters.Mark)
	}
	if filters.Model != "" {
		params.Set("model", filters.Model)
	}
	if filters.YearFrom > 0 {
		params.Set("year_from", strconv.Itoa(filters.YearFrom))
	}
	if filters.YearTo > 0 {
		params.Set("year_to", strconv.Itoa(filters.YearTo))
	}

	var resp OffersResponse
	if err := c.get(ctx, "/offers", params, &resp); err != nil {
		return nil, fmt.Errorf("list offers page %d: %w", page, err)
	}
	if resp.Meta == nil {
		return nil, fmt.Errorf("list offers page %d: %w: missing meta", page, domain.ErrMalformedResponse)
	}

	return &domain.OfferPage{
		Offers:   toRawOffers(resp.Result),
		NextPage: resp.Meta.NextPage,
	}, nil
}

// ChangesSince fetches the change entries that follow changeID.
func (c *Client) ChangesSince(ctx context.Context, changeID string) (*domain.ChangePage, error) {
	params := url.Values{}
	params.Set("change_id", changeID)

	var resp ChangesResponse
	if err := c.get(ctx, "/changes", params, &resp); err != nil {
		return nil, fmt.Errorf("get changes since %s: %w", changeID, err)
	}
	if resp.Meta == nil {
		return nil, fmt.Errorf("get changes since %s: %w: missing meta", changeID, domain.ErrMalformedResponse)
	}

	return &domain.ChangePage{
		Changes:    toRawOffers(resp.Result),
		NextCursor: resp.Meta.NextChangeID.String(),
	}, nil
}

// ChangeIDForDate returns the first change id of the given day.
func (c *Client) ChangeIDForDate(ctx context.Context, date time.Time) (string, error) {
	params := url.Values{}
	params.Set("date", date.Format(time.DateOnly))

	var resp ChangeIDResponse
	if err := c.get(ctx, "/change_id", params, &resp); err != nil {
		return "", fmt.Errorf("get change id: %w", err)
	}
	if resp.ChangeID == "" {
		return "", fmt.Errorf("get change id: %w: empty change_id", domain.ErrMalformedResponse)
	}
	return resp.ChangeID.String(), nil
}

// OfferByID returns the raw vehicle payload of one listing.
func (c *Client) OfferByID(ctx context.Context, innerID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("inner_id", innerID)

	var raw json.RawMessage
	if err := c.get(ctx, "/offer", params, &raw); err != nil {
		return nil, fmt.Errorf("get offer %s: %w", innerID, err)
	}
	return raw, nil
}

// OfferByURL resolves a public listing URL through the v1 API.
func (c *Client) OfferByURL(ctx context.Context, listingURL string) (json.RawMessage, error) {
	if c.v1URL == "" {
		return nil, fmt.Errorf("get offer by url: %w", domain.ErrNotFound)
	}

	body, err := json.Marshal(map[string]string{"url": listingURL})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var raw json.RawMessage
	err = c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.v1URL+"/offer/info", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		return req, nil
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("get offer by url: %w", err)
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	params.Set("api_key", c.apiKey)
	target := c.baseURL + endpoint + "?" + params.Encode()

	return c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, result)
}

// do runs one request with exponential backoff. Rate limiting, 5xx and
// network failures are retried; everything else fails immediately.
func (c *Client) do(ctx context.Context, newRequest func() (*http.Request, error), result interface{}) error {
	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("execute request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return classifyStatus(resp.StatusCode, string(body))
		}

		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return backoff.Permanent(fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialBackoff
	b.MaxInterval = c.maxBackoff
	b.MaxElapsedTime = 0
	b.RandomizationFactor = 0.5

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxAttempts-1)), ctx)

	return backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		c.logger.Warn("request failed, retrying",
			"backoff", wait,
			"error", err,
		)
	})
}

func classifyStatus(code int, body string) error {
	statusErr := &StatusError{StatusCode: code, Body: body}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return backoff.Permanent(fmt.Errorf("%w: %w", domain.ErrUnauthorized, statusErr))
	case code == http.StatusNotFound:
		return backoff.Permanent(fmt.Errorf("%w: %w", domain.ErrNotFound, statusErr))
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return statusErr
	default:
		return backoff.Permanent(statusErr)
	}
}
