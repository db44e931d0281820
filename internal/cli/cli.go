// Package cli implements the galleon command-line interface.
//
// This package provides commands for provisioning module trees from
// descriptor templates, resolving single artifact coordinates, rendering the
// module dependency graph, and managing the metadata cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
package cli

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rdnovell/galleon-plugins/pkg/buildinfo"
	"github.com/rdnovell/galleon-plugins/pkg/config"
	"github.com/rdnovell/galleon-plugins/pkg/httputil"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
	"github.com/rdnovell/galleon-plugins/pkg/maven/channel"
	"github.com/rdnovell/galleon-plugins/pkg/maven/repository"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "galleon"

	// defaultRemote is the remote repository used when none is configured.
	defaultRemote = "https://repo1.maven.org/maven2"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "galleon",
		Short:        "Galleon provisions module trees from descriptor templates",
		Long:         `Galleon is a CLI tool for provisioning installation module trees: it resolves artifact placeholders in module descriptors against a version table or channels, and packages artifacts either next to the descriptor (fat) or as coordinate references (thin).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.provisionCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Resolver Factory
// =============================================================================

// newResolver builds the artifact resolver chain from configuration:
// a repository resolver (local, then remote) wrapped by a channel resolver
// when channel manifests are configured.
func (c *CLI) newResolver(cfg *config.Config, noCache bool) (maven.Resolver, error) {
	cache, err := newCache(noCache, cfg.CacheTTL())
	if err != nil {
		return nil, err
	}

	repo, err := repository.New(repository.Config{
		LocalDir:  localDir(cfg),
		RemoteURL: remoteURL(cfg),
		Cache:     cache,
		HTTP:      &http.Client{Timeout: 60 * time.Second},
		Logger:    c.Logger,
	})
	if err != nil {
		return nil, err
	}

	if len(cfg.Channels) == 0 {
		return repo, nil
	}

	channels := make([]*channel.Channel, 0, len(cfg.Channels))
	for _, path := range cfg.Channels {
		ch, err := channel.Load(path)
		if err != nil {
			return nil, err
		}
		c.Logger.Debugf("Loaded channel %s (%d streams)", ch.Name, len(ch.Streams))
		channels = append(channels, ch)
	}
	return channel.NewResolver(repo, c.Logger, channels...), nil
}

// localDir returns the configured local repository, defaulting to the
// conventional ~/.m2/repository.
func localDir(cfg *config.Config) string {
	if cfg.Repository.Local != "" {
		return cfg.Repository.Local
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".m2/repository"
	}
	return filepath.Join(home, ".m2", "repository")
}

func remoteURL(cfg *config.Config) string {
	if cfg.Repository.Remote != "" {
		return cfg.Repository.Remote
	}
	return defaultRemote
}

func newCache(noCache bool, ttl time.Duration) (*httputil.Cache, error) {
	if noCache {
		return nil, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, nil
	}
	return httputil.NewCache(dir, ttl)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/galleon/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
