package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"vehicle_sync/internal/domain"
)

const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHeader   = "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8"
	acceptLanguage = "zh-CN,zh;q=0.9,en;q=0.8"

	che168Referer    = "https://www.che168.com/"
	dongchediReferer = "https://www.dongchedi.com/"

	sniffBytes   = 512
	maxRedirects = 5

	signedCacheBuffer = time.Hour
	minCacheAge       = time.Minute
	maxCacheAge       = 24 * time.Hour
	stableCacheAge    = 24 * time.Hour
	defaultCacheAge   = 7 * 24 * time.Hour
)

var ErrFetchTimeout = errors.New("image fetch timed out")

var che168Hosts = HostSet{"autoimg.cn"}

// UpstreamStatusError is returned when the image host answers with a
// non-2xx status.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("image upstream returned status %d", e.StatusCode)
}

// Retryable reports whether another attempt may succeed.
func (e *UpstreamStatusError) Retryable() bool {
	return e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= 500
}

// Result streams one proxied image. The caller must Close it.
type Result struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	CacheControl  string
}

func (r *Result) Close() error {
	if r.Body != nil {
		return r.Body.Close()
	}
	return nil
}

// Proxy fetches images from allowlisted hosts that refuse hotlinked or
// referrer-less requests.
type Proxy struct {
	allowed    HostSet
	classifier *Classifier
	client     *http.Client
	logger     *slog.Logger
}

func NewProxy(allowedHosts []string, classifier *Classifier, timeout time.Duration, logger *slog.Logger) *Proxy {
	p := &Proxy{
		allowed:    HostSet(allowedHosts),
		classifier: classifier,
		logger:     logger.With("component", "image_proxy"),
	}
	p.client = &http.Client{
		Timeout:       timeout,
		CheckRedirect: p.checkRedirect,
	}
	return p
}

// checkRedirect applies the allowlist to every hop.
func (p *Proxy) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if !p.allowed.Match(req.URL.Hostname()) {
		return fmt.Errorf("%w: redirect to %s", domain.ErrDomainNotAllowed, req.URL.Hostname())
	}
	return nil
}

// Allowed reports whether the proxy would serve the URL's host.
func (p *Proxy) Allowed(raw string) bool {
	u, err := parseHTTPURL(raw)
	return err == nil && p.allowed.Match(u.Hostname())
}

func (p *Proxy) Fetch(ctx context.Context, raw string) (*Result, error) {
	u, err := parseHTTPURL(raw)
	if err != nil {
		return nil, err
	}
	if !p.allowed.Match(u.Hostname()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDomainNotAllowed, u.Hostname())
	}

	cl, err := p.classifier.Classify(raw)
	if err != nil {
		return nil, err
	}
	if p.classifier.Expired(cl) {
		return nil, fmt.Errorf("%w: expired at %s", domain.ErrImageExpired, cl.ExpiresAt.UTC().Format(time.RFC3339))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Referer", refererFor(cl.Host))

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, domain.ErrDomainNotAllowed) {
			p.logger.Warn("blocked redirect off the allowlist", "host", cl.Host, "error", err)
			return nil, err
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if err := resp.Body.Close(); err != nil {
			p.logger.Warn("failed to close response body", "error", err)
		}
		p.logger.Warn("image upstream failed", "host", cl.Host, "status", resp.StatusCode)
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	body, contentType, err := sniff(resp)
	if err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("read image: %w", err)
	}

	return &Result{
		Body:          body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		CacheControl:  p.cacheControl(cl),
	}, nil
}

// sniff keeps the upstream content type when it names an image and detects
// it from the first bytes otherwise. The returned body still yields every
// byte.
func sniff(resp *http.Response) (io.ReadCloser, string, error) {
	declared := resp.Header.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(declared), "image/") {
		return resp.Body, declared, nil
	}

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(resp.Body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]

	body := struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), resp.Body), resp.Body}

	return body, mimetype.Detect(head).String(), nil
}

func (p *Proxy) cacheControl(cl Classification) string {
	age := defaultCacheAge
	switch cl.Kind {
	case KindSigned:
		remaining := cl.ExpiresAt.Sub(p.classifier.now()) - signedCacheBuffer
		age = min(max(remaining, minCacheAge), maxCacheAge)
	case KindPermanent:
		age = stableCacheAge
	}

	secs := int64(age / time.Second)
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d", secs, secs)
}

func refererFor(host string) string {
	if che168Hosts.Match(host) {
		return che168Referer
	}
	return dongchediReferer
}
