// Package httputil provides HTTP utilities for the artifact repository client.
//
// # Overview
//
// This package provides infrastructure used when resolving artifacts against
// remote Maven repositories:
//
//   - [Cache]: File-based metadata caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores repository responses in the filesystem (~/.cache/galleon/)
// with configurable TTL. This speeds up repeated provisioning runs and
// reduces load on remote repositories. Cache keys should be namespaced by
// source to avoid collisions (e.g., "maven:", "channel:").
//
// # Retry
//
// [Retry] wraps repository requests with automatic retry for transient
// failures (network errors, 5xx responses). It uses exponential backoff.
//
// The cache can be cleared via `galleon cache clear` or by deleting the
// cache directory.
package httputil
