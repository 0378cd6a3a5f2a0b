package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const userAgent = "gospoty/1.0"

// Get performs a cache-aware authenticated GET against the Web API.
//
// path is the endpoint path and query relative to the API base, for
// example "/albums/4aawyAB9vmqN3uQ7FjRGTy". The path doubles as the cache
// key: a fresh cached response is decoded into dst without touching the
// network or the token manager, and a successful live response is stored
// back under the same key for the client's TTL. A cached entry that no
// longer decodes into dst is treated as a miss and replaced by the live
// response.
//
// dst must be a non-nil pointer to the expected response shape.
//
// The endpoint services cover the common catalog operations; Get is
// exported for endpoints the services do not wrap.
func (c *Client) Get(ctx context.Context, path string, dst any) error {
	if raw, ok := c.cache.Get(path); ok {
		if err := json.Unmarshal(raw, dst); err == nil {
			c.logDebugf("spotify: cache hit for %s", path)
			c.metrics.recordCacheHit()
			return nil
		}
	}
	c.logDebugf("spotify: cache miss for %s", path)
	c.metrics.recordCacheMiss()

	if err := c.fetch(ctx, path, dst); err != nil {
		return err
	}

	raw, err := json.Marshal(dst)
	if err != nil {
		return parseError(err)
	}
	c.cache.Set(path, raw)
	return nil
}

// fetch performs an authenticated GET with no cache involvement. Bulk
// lookups use it directly so batch responses can be cached per item
// instead of under the batch key.
func (c *Client) fetch(ctx context.Context, path string, dst any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.recordRequest(path, 0, time.Since(start))
		return networkError(err)
	}
	defer resp.Body.Close()
	c.metrics.recordRequest(path, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return networkError(err)
		}
		if err := json.Unmarshal(body, dst); err != nil {
			return parseError(err)
		}
		c.logDebugf("spotify: GET %s succeeded", path)
		return nil

	case http.StatusTooManyRequests:
		c.metrics.recordRateLimited()
		seconds, err := strconv.ParseUint(resp.Header.Get("Retry-After"), 10, 64)
		if err != nil {
			return &Error{
				Kind:       KindUnexpected,
				Message:    "rate limited without a usable Retry-After header",
				StatusCode: resp.StatusCode,
			}
		}
		c.logDebugf("spotify: rate limited on %s, retry after %ds", path, seconds)
		return &Error{
			Kind:       KindRateLimited,
			Message:    fmt.Sprintf("rate limited, retry after %ds", seconds),
			StatusCode: resp.StatusCode,
			RetryAfter: time.Duration(seconds) * time.Second,
		}

	default:
		return unexpectedStatus(resp.StatusCode)
	}
}

// fetchSeveral is the shared engine behind the batched catalog lookups.
//
// It partitions ids into cache hits and misses using keyFor, fetches the
// misses in one batch via fetchBatch, caches each fetched item under its
// own key, and returns cached items first followed by fetched ones. When
// every id is cached, no token or network work happens at all.
func fetchSeveral[T any](
	ctx context.Context,
	c *Client,
	ids []string,
	keyFor func(id string) string,
	fetchBatch func(ctx context.Context, missing []string) ([]T, error),
	idOf func(item T) string,
) ([]T, error) {
	items := make([]T, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if raw, ok := c.cache.Get(keyFor(id)); ok {
			var item T
			if err := json.Unmarshal(raw, &item); err == nil {
				c.metrics.recordCacheHit()
				items = append(items, item)
				continue
			}
		}
		c.metrics.recordCacheMiss()
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return items, nil
	}
	c.logDebugf("spotify: %d of %d requested items cached, fetching %d", len(items), len(ids), len(missing))

	fetched, err := fetchBatch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, item := range fetched {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		c.cache.Set(keyFor(idOf(item)), raw)
	}
	return append(items, fetched...), nil
}
