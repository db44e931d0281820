package channel

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// Resolver decorates a base [maven.Resolver] with channel-managed version
// overrides. Channels are consulted in the order given; the first stream
// matching the coordinates wins.
type Resolver struct {
	delegate maven.Resolver
	channels []*Channel
	logger   *log.Logger
}

// NewResolver wraps delegate with the given channels.
// A nil logger defaults to log.Default().
func NewResolver(delegate maven.Resolver, logger *log.Logger, channels ...*Channel) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{delegate: delegate, channels: channels, logger: logger}
}

// Resolve implements [maven.Resolver].
//
// When channelResolution is set and a stream matches, the stream's version
// replaces the version carried by coords before delegating. When
// requireChannel is set and no stream matches, resolution fails with
// [maven.ErrNoChannel]; otherwise the raw coordinates pass through
// unchanged. The two flags stay independent.
func (r *Resolver) Resolve(ctx context.Context, coords string, channelResolution, requireChannel bool) (*maven.Artifact, error) {
	a, err := maven.ParseCoords(coords)
	if err != nil {
		return nil, err
	}

	version, channelName, found := r.find(a.GroupID, a.ArtifactID)

	if requireChannel && !found {
		return nil, errors.Wrap(errors.ErrCodeChannelRequired, maven.ErrNoChannel,
			"no channel defines %s", coords)
	}

	if channelResolution && found {
		r.logger.Debugf("channel %s pins %s to %s", channelName, a.GA(), version)
		a.Version = version
		return r.delegate.Resolve(ctx, a.Coords(), false, false)
	}

	return r.delegate.Resolve(ctx, coords, false, false)
}

func (r *Resolver) find(group, artifact string) (version, channelName string, found bool) {
	for _, ch := range r.channels {
		if v, ok := ch.Find(group, artifact); ok {
			return v, ch.Name, true
		}
	}
	return "", "", false
}
