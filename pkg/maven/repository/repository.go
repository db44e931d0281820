// Package repository implements a Maven repository backed [maven.Resolver].
//
// Resolution first consults a local repository directory laid out in the
// standard Maven form (group/path/artifact/version/file). When the artifact
// is not present locally and a remote base URL is configured, the file is
// downloaded with retry/backoff, staged under a temporary name and renamed
// into place so concurrent runs never observe partial files.
//
// When coordinates carry no version, the latest version is discovered from
// the remote maven-metadata.xml; the lookup result is cached on disk with
// the configured TTL.
package repository

import (
	"context"
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
	"github.com/rdnovell/galleon-plugins/pkg/httputil"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// Config configures a repository resolver.
type Config struct {
	// LocalDir is the local repository root. Required. Created if missing.
	LocalDir string

	// RemoteURL is the base URL of a remote repository
	// (e.g., "https://repo1.maven.org/maven2"). Optional; when empty,
	// resolution is local-only.
	RemoteURL string

	// Cache stores version metadata lookups. Optional; when nil, metadata
	// is fetched on every call.
	Cache *httputil.Cache

	// HTTP is the client used for remote fetches. Defaults to http.DefaultClient.
	HTTP *http.Client

	// Logger receives debug output. Defaults to log.Default().
	Logger *log.Logger
}

// Resolver resolves coordinates against a local directory and an optional
// remote repository. It is safe for concurrent use as long as the underlying
// cache is not shared unsynchronized.
type Resolver struct {
	local  string
	remote string
	cache  *httputil.Cache
	http   *http.Client
	logger *log.Logger
}

// New creates a repository resolver from cfg.
func New(cfg Config) (*Resolver, error) {
	if cfg.LocalDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "repository: local directory is required")
	}
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, err
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{
		local:  cfg.LocalDir,
		remote: strings.TrimSuffix(cfg.RemoteURL, "/"),
		cache:  cfg.Cache,
		http:   httpClient,
		logger: logger,
	}, nil
}

// Resolve implements [maven.Resolver].
//
// This resolver has no channel knowledge: requireChannel always fails here,
// and channelResolution is a no-op. Wrap the resolver with the channel
// package to honor managed versions.
func (r *Resolver) Resolve(ctx context.Context, coords string, channelResolution, requireChannel bool) (*maven.Artifact, error) {
	if requireChannel {
		return nil, errors.Wrap(errors.ErrCodeChannelRequired, maven.ErrNoChannel,
			"channel-managed version required for %s", coords)
	}

	a, err := maven.ParseCoords(coords)
	if err != nil {
		return nil, err
	}

	if a.Version == "" {
		version, err := r.latestVersion(ctx, a)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeResolutionFailed, err,
				"no version for %s", coords)
		}
		a.Version = version
	}

	localPath := filepath.Join(r.local, relPath(a))
	if _, err := os.Stat(localPath); err == nil {
		r.logger.Debugf("resolved %s from local repository", a)
		a.Path = localPath
		return a, nil
	}

	if r.remote == "" {
		return nil, errors.Wrap(errors.ErrCodeArtifactNotFound, maven.ErrNotFound,
			"artifact %s not in local repository", a)
	}

	if err := r.download(ctx, a, localPath); err != nil {
		return nil, err
	}
	a.Path = localPath
	return a, nil
}

// latestVersion discovers the newest released version of a from the remote
// maven-metadata.xml. Results are cached when a cache is configured.
func (r *Resolver) latestVersion(ctx context.Context, a *maven.Artifact) (string, error) {
	if r.remote == "" {
		return "", fmt.Errorf("coordinates carry no version and no remote repository is configured")
	}

	key := a.GA()
	var version string
	if r.cache != nil {
		if ok, _ := r.cache.Get(key, &version); ok {
			return version, nil
		}
	}

	url := fmt.Sprintf("%s/%s/%s/maven-metadata.xml",
		r.remote, strings.ReplaceAll(a.GroupID, ".", "/"), a.ArtifactID)

	var meta repoMetadata
	err := httputil.RetryWithBackoff(ctx, func() error {
		return r.fetchXML(ctx, url, &meta)
	})
	if err != nil {
		return "", err
	}

	version = meta.Versioning.Release
	if version == "" {
		version = meta.Versioning.Latest
	}
	if version == "" {
		return "", fmt.Errorf("%w: no release version for %s", maven.ErrNotFound, key)
	}
	if r.cache != nil {
		_ = r.cache.Set(key, version)
	}
	return version, nil
}

// download fetches the artifact file and moves it into the local repository.
// The file is staged under a unique temporary name first; the final rename
// is atomic on POSIX filesystems.
func (r *Resolver) download(ctx context.Context, a *maven.Artifact, dest string) error {
	url := r.remote + "/" + strings.ReplaceAll(a.GroupID, ".", "/") +
		"/" + a.ArtifactID + "/" + a.Version + "/" + a.FileName()

	r.logger.Debugf("downloading %s", url)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	staging := dest + "." + uuid.NewString() + ".part"
	defer os.Remove(staging)

	err := httputil.RetryWithBackoff(ctx, func() error {
		return r.fetchFile(ctx, url, staging)
	})
	if err != nil {
		if stderrors.Is(err, maven.ErrNotFound) {
			return errors.Wrap(errors.ErrCodeArtifactNotFound, err, "artifact %s", a)
		}
		return errors.Wrap(errors.ErrCodeNetwork, err, "download %s", a)
	}
	return os.Rename(staging, dest)
}

func (r *Resolver) fetchXML(ctx context.Context, url string, v any) error {
	body, err := r.doGet(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return xml.NewDecoder(body).Decode(v)
}

func (r *Resolver) fetchFile(ctx context.Context, url, dest string) error {
	body, err := r.doGet(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *Resolver) doGet(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: err}
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", maven.ErrNotFound, url)
	case resp.StatusCode >= 500:
		resp.Body.Close()
		return nil, &httputil.RetryableError{Err: fmt.Errorf("status %d for %s", resp.StatusCode, url)}
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}
}

// relPath returns the repository-relative path of a.
func relPath(a *maven.Artifact) string {
	return filepath.Join(
		filepath.FromSlash(strings.ReplaceAll(a.GroupID, ".", "/")),
		a.ArtifactID, a.Version, a.FileName())
}

type repoMetadata struct {
	Versioning struct {
		Latest  string `xml:"latest"`
		Release string `xml:"release"`
	} `xml:"versioning"`
}
