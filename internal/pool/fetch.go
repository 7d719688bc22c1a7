package pool

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/mpeirce/logipair/internal/model"
	"github.com/temoto/robotstxt"
	"golang.org/x/time/rate"
)

// Fetcher retrieves remote sentence sources politely: robots.txt is honored
// and requests are rate limited.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *rate.Limiter

	robotsMu    sync.RWMutex
	robotsCache map[string]*robotstxt.RobotsData
}

// NewFetcher creates a fetcher from pool configuration.
func NewFetcher(cfg model.PoolConfig) *Fetcher {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent:   cfg.UserAgent,
		maxBytes:    cfg.MaxBodyBytes,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
		robotsCache: make(map[string]*robotstxt.RobotsData),
	}
}

// FetchSentences downloads a page and extracts candidate sentences from it.
// HTML responses go through visible-text extraction; anything else is
// treated as a line-oriented sentence list.
func (f *Fetcher) FetchSentences(ctx context.Context, rawURL string, minWords, maxWords int) ([]string, error) {
	allowed, err := f.canFetch(ctx, rawURL)
	if err == nil && !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "html") {
		return ExtractSentences(string(body), minWords, maxWords)
	}

	return strings.Split(string(body), "\n"), nil
}

// canFetch checks robots.txt for the URL's host, caching per host.
// An unreachable robots.txt allows the fetch, matching crawler convention.
func (f *Fetcher) canFetch(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	f.robotsMu.RLock()
	data, ok := f.robotsCache[parsed.Host]
	f.robotsMu.RUnlock()

	if !ok {
		robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
		if err != nil {
			return false, err
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return true, nil
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusNotFound {
			data, _ = robotstxt.FromStatusAndBytes(http.StatusNotFound, nil)
		} else {
			data, err = robotstxt.FromResponse(resp)
			if err != nil {
				return true, nil
			}
		}

		f.robotsMu.Lock()
		f.robotsCache[parsed.Host] = data
		f.robotsMu.Unlock()
	}

	return data.TestAgent(parsed.Path, f.userAgent), nil
}

// LoadSource resolves a pool source by shape: http(s) URLs are fetched,
// .html files go through sentence extraction, everything else is read as a
// line-oriented sentence file.
func LoadSource(ctx context.Context, cfg model.PoolConfig) (*Pool, error) {
	src := cfg.Source

	switch {
	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		sentences, err := NewFetcher(cfg).FetchSentences(ctx, src, cfg.MinSentenceWords, cfg.MaxSentenceWords)
		if err != nil {
			return nil, fmt.Errorf("fetch source %s: %w", src, err)
		}
		p, err := New(sentences)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src, err)
		}
		return p, nil

	case strings.HasSuffix(src, ".html") || strings.HasSuffix(src, ".htm"):
		raw, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read html source: %w", err)
		}
		sentences, err := ExtractSentences(string(raw), cfg.MinSentenceWords, cfg.MaxSentenceWords)
		if err != nil {
			return nil, fmt.Errorf("extract sentences from %s: %w", src, err)
		}
		p, err := New(sentences)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src, err)
		}
		return p, nil

	default:
		return LoadFile(src)
	}
}
