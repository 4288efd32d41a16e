package image

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"vehicle_sync/internal/domain"
)

//go:embed placeholder.svg
var placeholderSVG []byte

var ErrImageTooLarge = errors.New("image exceeds size limit")

const (
	placeholderType  = "image/svg+xml"
	placeholderCache = "public, max-age=300"
	maxImageBytes    = 10 << 20
)

type Fetcher interface {
	Fetch(ctx context.Context, raw string) (*Result, error)
}

// Image is a fully buffered image ready to be written to a client.
type Image struct {
	Data         []byte
	ContentType  string
	CacheControl string
	Placeholder  bool
	Attempts     int
}

// Placeholder returns the image served when a real one cannot be loaded.
func Placeholder() *Image {
	return &Image{
		Data:         placeholderSVG,
		ContentType:  placeholderType,
		CacheControl: placeholderCache,
		Placeholder:  true,
	}
}

// Loader fetches an image with a small fixed number of retries and falls
// back to the placeholder. Expired, malformed and disallowed URLs are not
// retried.
type Loader struct {
	fetcher Fetcher
	retries int
	delay   time.Duration
	logger  *slog.Logger
}

func NewLoader(fetcher Fetcher, retries int, delay time.Duration, logger *slog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		retries: max(retries, 0),
		delay:   delay,
		logger:  logger.With("component", "image_loader"),
	}
}

func (l *Loader) Load(ctx context.Context, raw string) *Image {
	var img *Image
	attempts := 0

	operation := func() error {
		attempts++
		res, err := l.fetcher.Fetch(ctx, raw)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		defer res.Close()

		data, err := io.ReadAll(io.LimitReader(res.Body, maxImageBytes+1))
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		if len(data) > maxImageBytes {
			return backoff.Permanent(fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, maxImageBytes))
		}
		img = &Image{Data: data, ContentType: res.ContentType, CacheControl: res.CacheControl}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(l.delay), uint64(l.retries)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		l.logger.Debug("serving placeholder", "attempts", attempts, "error", err)
		p := Placeholder()
		p.Attempts = attempts
		return p
	}

	img.Attempts = attempts
	return img
}

func retryable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrImageExpired),
		errors.Is(err, domain.ErrDomainNotAllowed),
		errors.Is(err, domain.ErrInvalidURL):
		return false
	}

	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}
