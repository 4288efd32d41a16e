package image

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vehicle_sync/internal/domain"
)

type Kind string

const (
	// KindPermanent is served from stable storage and never expires.
	KindPermanent Kind = "permanent"
	// KindSigned carries an x-expires unix timestamp.
	KindSigned Kind = "signed"
	// KindUnsigned is neither on a permanent host nor signed.
	KindUnsigned Kind = "unsigned"
)

const expiresParam = "x-expires"

type Classification struct {
	Kind      Kind
	Host      string
	ExpiresAt time.Time
}

// HostSet matches a host against domains by exact suffix: the host equals a
// domain or ends with "." followed by it.
type HostSet []string

func (h HostSet) Match(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, d := range h {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// Classifier decides the kind and validity of image URLs. Validity is a pure
// function of the URL and the clock, nothing is cached.
type Classifier struct {
	permanent HostSet
	margin    time.Duration
	now       func() time.Time
}

func NewClassifier(permanentHosts []string, margin time.Duration) *Classifier {
	return &Classifier{
		permanent: HostSet(permanentHosts),
		margin:    margin,
		now:       time.Now,
	}
}

func (c *Classifier) Classify(raw string) (Classification, error) {
	u, err := parseHTTPURL(raw)
	if err != nil {
		return Classification{}, err
	}

	host := strings.ToLower(u.Hostname())
	if c.permanent.Match(host) {
		return Classification{Kind: KindPermanent, Host: host}, nil
	}

	expires, ok, err := expiry(u)
	if err != nil {
		return Classification{}, err
	}
	if !ok {
		return Classification{Kind: KindUnsigned, Host: host}, nil
	}
	return Classification{Kind: KindSigned, Host: host, ExpiresAt: expires}, nil
}

// IsValid reports whether the URL can be served right now. Signed URLs need
// to outlive the safety margin.
func (c *Classifier) IsValid(raw string) bool {
	cl, err := c.Classify(raw)
	if err != nil {
		return false
	}
	return c.valid(cl)
}

func (c *Classifier) valid(cl Classification) bool {
	if cl.Kind != KindSigned {
		return true
	}
	return c.now().Add(c.margin).Before(cl.ExpiresAt)
}

// Expired reports whether a signed URL is already past its expiry, ignoring
// the safety margin.
func (c *Classifier) Expired(cl Classification) bool {
	return cl.Kind == KindSigned && !c.now().Before(cl.ExpiresAt)
}

// HasValidCover reports whether a vehicle may appear in customer listings.
func (c *Classifier) HasValidCover(v *domain.Vehicle) bool {
	cover := v.FirstImage()
	return cover != "" && c.IsValid(cover)
}

func parseHTTPURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", domain.ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	return u, nil
}

func expiry(u *url.URL) (time.Time, bool, error) {
	for key, values := range u.Query() {
		if !strings.EqualFold(key, expiresParam) || len(values) == 0 {
			continue
		}
		secs, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: bad %s %q", domain.ErrInvalidURL, expiresParam, values[0])
		}
		return time.Unix(secs, 0), true, nil
	}
	return time.Time{}, false, nil
}

// DecodeParam undoes extra percent-encoding of the url query parameter.
// Decoding stops once the value reads as an absolute URL so that encoded
// signature characters inside it survive.
func DecodeParam(raw string) string {
	decoded := strings.TrimSpace(raw)
	for i := 0; i < 2 && !looksAbsolute(decoded) && strings.Contains(decoded, "%"); i++ {
		next, err := url.QueryUnescape(decoded)
		if err != nil {
			break
		}
		decoded = next
	}
	return decoded
}

func looksAbsolute(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
