package provision

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// Mode selects the packaging strategy for a run.
type Mode string

const (
	// ModeFat embeds artifacts as local resources next to the descriptor.
	ModeFat Mode = "fat"
	// ModeThin keeps artifacts external, referenced by resolved coordinates.
	ModeThin Mode = "thin"
)

// Valid reports whether m names a known packaging mode.
func (m Mode) Valid() bool { return m == ModeFat || m == ModeThin }

// Runner applies one packaging mode to every module template below a root
// directory. Each document is loaded, processed in memory and written back
// only on success, so a failed document never leaves a half-rewritten file
// on disk.
type Runner struct {
	Versions VersionTable
	Resolver maven.Resolver
	Mode     Mode

	// Schemas receives notifications from every processed document.
	// Defaults to NopSchemaListener.
	Schemas SchemaListener

	// Logger defaults to log.Default().
	Logger *log.Logger

	ChannelResolution bool
	RequireChannel    bool
}

// Result summarizes one run.
type Result struct {
	Processed int // module documents rewritten
	Ignored   int // non-module documents left untouched
}

// Run processes every "module.xml" below dir. The first failing document
// aborts the run; documents already written stay written (there is no
// cross-document rollback).
func (r *Runner) Run(ctx context.Context, dir string) (*Result, error) {
	if !r.Mode.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown packaging mode %q", r.Mode)
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	schemas := r.Schemas
	if schemas == nil {
		schemas = NopSchemaListener{}
	}

	res := &Result{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "module.xml" {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		tmpl, err := LoadTemplate(path)
		if err != nil {
			return err
		}
		if !tmpl.IsModule() {
			res.Ignored++
			return nil
		}

		var installer Installer
		if r.Mode == ModeFat {
			installer = &FatInstaller{TargetDir: filepath.Dir(path)}
		} else {
			installer = ThinInstaller{}
		}

		p, err := NewProcessor(Config{
			Template:          tmpl,
			Versions:          r.Versions,
			Resolver:          r.Resolver,
			Installer:         installer,
			Schemas:           schemas,
			Logger:            logger,
			ChannelResolution: r.ChannelResolution,
			RequireChannel:    r.RequireChannel,
		})
		if err != nil {
			return err
		}
		logger.Debugf("processing module %s (%s)", tmpl.Name(), path)
		if err := p.Process(ctx); err != nil {
			return err
		}
		if err := tmpl.Save(); err != nil {
			return err
		}
		res.Processed++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
