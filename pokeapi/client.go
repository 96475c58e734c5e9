// Package pokeapi gets type charts and location encounters from PokeAPI (https://pokeapi.co).
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yatzbim/PokeQuery/cache"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseUrl = "https://pokeapi.co/api/v2"
	userAgent      = "PokeQuery/1.0 (github.com/yatzbim/PokeQuery)"

	maxConcurrentRequests = 10
)

// ErrNotFound is returned when PokeAPI has no resource at a URL
var ErrNotFound = errors.New("pokeapi: not found")

// Client is a rate-limited PokeAPI HTTP client with an optional response cache.
type Client struct {
	BaseUrl string
	// Version limits location encounters to one game version (e.g. "red"). Empty allows every version.
	Version string

	http  *http.Client
	sem   chan struct{}
	group singleflight.Group
	store *cache.Store
	ttl   time.Duration
}

// NewClient creates a client for the API at baseUrl. store may be nil to disable caching,
// ttl is how long cached responses stay valid (0 keeps them forever).
func NewClient(baseUrl string, store *cache.Store, ttl time.Duration) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	return &Client{
		BaseUrl: strings.TrimSuffix(baseUrl, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		sem:     make(chan struct{}, maxConcurrentRequests),
		store:   store,
		ttl:     ttl,
	}
}

func (c *Client) url(path string) string {
	return c.BaseUrl + "/" + strings.TrimPrefix(path, "/")
}

// GetJSON fetches a URL (or serves it from the cache) and decodes the JSON into dst.
// Concurrent requests for the same URL share one fetch. The shared fetch isn't tied to any
// single caller's cancellation, each caller stops waiting when its own ctx is done.
func (c *Client) GetJSON(ctx context.Context, url string, dst any) error {
	fetchCtx := context.WithoutCancel(ctx)
	resultChan := c.group.DoChan(url, func() (any, error) {
		return c.fetch(fetchCtx, url)
	})

	var result singleflight.Result
	select {
	case result = <-resultChan:
	case <-ctx.Done():
		return ctx.Err()
	}

	if result.Err != nil {
		return result.Err
	}

	if result.Shared {
		log.Trace().Str("url", url).Msg("shared in-flight response")
	}

	if err := json.Unmarshal(result.Val.([]byte), dst); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	return nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if c.store != nil {
		if body, ok := c.store.Get(url, c.ttl); ok {
			log.Trace().Str("url", url).Msg("cache hit")
			return body, nil
		}
	}

	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", url).Msg("fetching from PokeAPI")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PokeAPI %d: %s", resp.StatusCode, string(body))
	}

	if c.store != nil {
		if err := c.store.Put(url, body); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("could not cache response")
		}
	}

	return body, nil
}

// FollowNamedResource fetches the full resource a NamedApiResource points to
func FollowNamedResource[T any](ctx context.Context, c *Client, n NamedApiResource) (T, error) {
	var followed T
	if err := c.GetJSON(ctx, n.Url, &followed); err != nil {
		var t T
		return t, err
	}

	return followed, nil
}

// listAll walks every page of a paginated list endpoint
func (c *Client) listAll(ctx context.Context, url string) ([]NamedApiResource, error) {
	resources := make([]NamedApiResource, 0)

	for {
		page := listResponse{}
		if err := c.GetJSON(ctx, url, &page); err != nil {
			return nil, err
		}

		resources = append(resources, page.Results...)

		if page.Next == nil {
			break
		}
		url = *page.Next
	}

	return resources, nil
}
