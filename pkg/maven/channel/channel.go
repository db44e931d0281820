// Package channel implements channel-managed version resolution.
//
// A channel is a TOML manifest of version streams. Each stream pins a
// groupId:artifactId pair (or a whole group, via artifact = "*") to a
// managed version. During provisioning, channels act as an override
// authority: when channel resolution is requested, a stream's version
// replaces whatever version the raw coordinates carry.
//
// Manifest format:
//
//	name = "acme-25.1"
//
//	[[stream]]
//	group = "org.acme"
//	artifact = "core"
//	version = "1.2.4"
//
//	[[stream]]
//	group = "org.acme.legacy"
//	artifact = "*"
//	version = "0.9.1"
package channel

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
)

// Stream pins one artifact (or group) to a managed version.
type Stream struct {
	Group    string `toml:"group"`
	Artifact string `toml:"artifact"`
	Version  string `toml:"version"`
}

// Channel is a named collection of version streams.
type Channel struct {
	Name    string   `toml:"name"`
	Streams []Stream `toml:"stream"`
}

// Load reads and validates a channel manifest from path.
func Load(path string) (*Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ch Channel
	if err := toml.Unmarshal(data, &ch); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChannel, err, "parse channel manifest %s", path)
	}
	if ch.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidChannel, "channel manifest %s has no name", path)
	}
	for _, s := range ch.Streams {
		if s.Group == "" || s.Artifact == "" || s.Version == "" {
			return nil, errors.New(errors.ErrCodeInvalidChannel,
				"channel %s: stream requires group, artifact and version", ch.Name)
		}
	}
	return &ch, nil
}

// Find returns the managed version for a groupId:artifactId pair.
// Exact artifact matches win over group-level "*" streams.
func (c *Channel) Find(group, artifact string) (string, bool) {
	var wildcard string
	for _, s := range c.Streams {
		if s.Group != group {
			continue
		}
		if s.Artifact == artifact {
			return s.Version, true
		}
		if s.Artifact == "*" {
			wildcard = s.Version
		}
	}
	if wildcard != "" {
		return wildcard, true
	}
	return "", false
}
