// Package config loads the provisioning run configuration.
//
// Configuration lives in a TOML file (conventionally galleon.toml) next to
// the template tree:
//
//	mode = "thin"
//	templates = "modules"
//	versions = "artifact-versions.properties"
//	channels = ["channels/acme-25.1.toml"]
//	channel_resolution = true
//
//	[repository]
//	local = ".galleon/repository"
//	remote = "https://repo1.maven.org/maven2"
//	cache_ttl = "24h"
//
// Flags on the CLI override individual fields; see the provision command.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
)

// Repository configures artifact resolution sources.
type Repository struct {
	// Local is the local repository directory.
	Local string `toml:"local"`

	// Remote is the base URL of a remote repository. Empty means
	// local-only resolution.
	Remote string `toml:"remote"`

	// CacheTTL bounds how long version metadata lookups are cached.
	CacheTTL duration `toml:"cache_ttl"`
}

// Config is one provisioning run's configuration.
type Config struct {
	// Mode is the packaging mode, "fat" or "thin".
	Mode string `toml:"mode"`

	// Templates is the directory scanned for module.xml descriptors.
	Templates string `toml:"templates"`

	// Versions is the path of the artifact-versions properties file.
	Versions string `toml:"versions"`

	// Channels lists channel manifest paths, consulted in order.
	Channels []string `toml:"channels"`

	// ChannelResolution requests channel-managed version overrides.
	ChannelResolution bool `toml:"channel_resolution"`

	// RequireChannel makes resolution fail for artifacts no channel
	// defines. Independent of ChannelResolution.
	RequireChannel bool `toml:"require_channel"`

	Repository Repository `toml:"repository"`
}

// Load reads a configuration file. It does not validate: callers apply
// flag overrides first, then call [Config.Validate].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return &cfg, nil
}

// Validate checks field combinations that TOML decoding cannot.
func (c *Config) Validate() error {
	switch c.Mode {
	case "fat", "thin":
	case "":
		return errors.New(errors.ErrCodeInvalidConfig, "mode is required (fat or thin)")
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown mode %q (expected fat or thin)", c.Mode)
	}
	if c.Templates == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "templates directory is required")
	}
	if c.Versions == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "versions file is required")
	}
	return nil
}

// CacheTTL returns the configured metadata cache TTL, defaulting to 24h.
func (c *Config) CacheTTL() time.Duration {
	if c.Repository.CacheTTL.Duration <= 0 {
		return 24 * time.Hour
	}
	return c.Repository.CacheTTL.Duration
}

// duration wraps time.Duration for TOML decoding of strings like "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}
