// Package httputil provides HTTP utilities for the scene service
// client.
//
// # Overview
//
// This package provides infrastructure shared by code that talks to a
// scene service:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem
// (~/.cache/ansys-visualizer/) with configurable TTL, so repeated
// fetches of the same scene or artifact skip the network.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var doc SceneDoc
//	ok, err := cache.Get("scene:"+id, &doc)
//	if !ok {
//	    doc = fetchFromService()
//	    cache.Set("scene:"+id, doc)
//	}
//
// Cache keys should be namespaced per service to avoid collisions.
//
// # Retry
//
// [Retry] wraps requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap transient errors in [RetryableError] so Retry knows to attempt
// the operation again; other errors are returned immediately.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/ansys-visualizer/
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `visualizer cache clear` or by deleting
// the cache directory.
package httputil
