package maven

import (
	"context"
	"errors"
)

// Sentinel errors for artifact resolution.
var (
	// ErrNotFound is returned when no repository holds the requested artifact.
	ErrNotFound = errors.New("artifact not found")

	// ErrNoChannel is returned when a channel-managed version is required but
	// no configured channel defines the artifact.
	ErrNoChannel = errors.New("no channel defines artifact")
)

// Resolver turns a coordinate string into a concrete, materialized artifact.
//
// channelResolution requests that channel-managed version overrides be
// honored where configured. requireChannel additionally demands that a
// managed version exists: when set and no channel covers the coordinates,
// Resolve must fail with an error wrapping [ErrNoChannel] instead of falling
// back to the version carried by the raw coordinates. The two flags are
// independent; callers may set either without the other.
//
// Implementations may block on I/O (repository fetch). Cancellation is the
// caller's responsibility via ctx; Resolve imposes no timeout of its own.
type Resolver interface {
	Resolve(ctx context.Context, coords string, channelResolution, requireChannel bool) (*Artifact, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, coords string, channelResolution, requireChannel bool) (*Artifact, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, coords string, channelResolution, requireChannel bool) (*Artifact, error) {
	return f(ctx, coords, channelResolution, requireChannel)
}
