package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxBodyBytes caps how much of a sheet export is read.
const maxBodyBytes = 8 << 20

// ErrNonText is returned when a source answers with a body that is not text.
var ErrNonText = errors.New("non-text body")

// FetcherOptions configures a Fetcher.
type FetcherOptions struct {
	Timeout       time.Duration
	RatePerSecond float64
	UserAgent     string
	RetryDelay    time.Duration
}

// Fetcher downloads sheet exports over a shared, pooled HTTP client and
// throttles requests per host.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	retryDelay time.Duration
	perSecond  rate.Limit

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher builds a Fetcher. Zero options fall back to sensible defaults.
func NewFetcher(opts FetcherOptions) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 4
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   len(Categories),
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Fetcher{
		client:     &http.Client{Timeout: opts.Timeout, Transport: transport},
		userAgent:  opts.UserAgent,
		retryDelay: opts.RetryDelay,
		perSecond:  rate.Limit(opts.RatePerSecond),
		limiters:   make(map[string]*rate.Limiter),
	}
}

// Fetch returns the body of rawURL as text. Transport errors are retried
// once after the retry delay; HTTP status and content errors are not.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing source url: %w", err)
	}

	body, err := f.fetchOnce(ctx, u)
	var transportErr *url.Error
	if err != nil && errors.As(err, &transportErr) && ctx.Err() == nil {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.retryDelay):
		}
		body, err = f.fetchOnce(ctx, u)
	}
	return body, err
}

func (f *Fetcher) fetchOnce(ctx context.Context, u *url.URL) (string, error) {
	if err := f.limiter(u.Host).Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, u.Host)
	}
	if !isTextual(resp.Header.Get("Content-Type")) {
		return "", fmt.Errorf("%w: content type %q", ErrNonText, resp.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}

// limiter returns the token bucket for host, creating it on first use.
func (f *Fetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.limiters[host]
	if !ok {
		l = rate.NewLimiter(f.perSecond, len(Categories))
		f.limiters[host] = l
	}
	return l
}

// isTextual accepts text/*, CSV and a missing content type.
func isTextual(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	switch mediaType {
	case "application/csv", "application/vnd.ms-excel":
		return true
	}
	return false
}
