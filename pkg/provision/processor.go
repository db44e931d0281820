// Package provision implements the placeholder-resolution and
// descriptor-rewriting core.
//
// A [Processor] handles one module descriptor template: it resolves the
// document-level version placeholder (if present), then walks every
// artifact reference in document order, resolving each against the
// [VersionTable] and the configured [maven.Resolver] and rewriting it via
// the bound [Installer] strategy (fat or thin packaging).
//
// Processing is single-threaded and synchronous per document; the tree is
// mutated in place with no rollback. Callers needing atomicity snapshot the
// document before processing. Multiple documents may be processed in
// parallel by independent processors.
package provision

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// Installer is the packaging-mode strategy bound to a processing run.
// Exactly one implementation (fat or thin) is invoked per resolved
// reference, never both.
type Installer interface {
	// Install rewrites a resolved reference and performs any side effects
	// the packaging mode requires (e.g., copying the artifact file).
	Install(ctx context.Context, ref *ArtifactRef) error
}

// Config assembles a Processor.
type Config struct {
	Template *Template      // document to process (required)
	Versions VersionTable   // symbolic name → coordinates
	Resolver maven.Resolver // artifact resolution (required)
	Installer Installer     // packaging-mode strategy (required)

	// Schemas receives one notification per installed reference.
	// Defaults to NopSchemaListener.
	Schemas SchemaListener

	// Logger receives debug output. Defaults to log.Default().
	Logger *log.Logger

	// ChannelResolution requests channel-managed version overrides.
	ChannelResolution bool

	// RequireChannel makes resolution fail unless a channel defines the
	// artifact. Independent of ChannelResolution.
	RequireChannel bool
}

// Processor orchestrates one document. Create one per template with
// [NewProcessor]; a processor must not be reused across documents.
type Processor struct {
	template          *Template
	table             VersionTable
	resolver          maven.Resolver
	installer         Installer
	schemas           SchemaListener
	logger            *log.Logger
	channelResolution bool
	requireChannel    bool
}

// NewProcessor validates cfg and builds a Processor.
func NewProcessor(cfg Config) (*Processor, error) {
	if cfg.Template == nil {
		return nil, errors.New(errors.ErrCodeInternal, "processor: template is required")
	}
	if cfg.Resolver == nil {
		return nil, errors.New(errors.ErrCodeInternal, "processor: resolver is required")
	}
	if cfg.Installer == nil {
		return nil, errors.New(errors.ErrCodeInternal, "processor: installer is required")
	}
	schemas := cfg.Schemas
	if schemas == nil {
		schemas = NopSchemaListener{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		template:          cfg.Template,
		table:             cfg.Versions,
		resolver:          cfg.Resolver,
		installer:         cfg.Installer,
		schemas:           schemas,
		logger:            logger,
		channelResolution: cfg.ChannelResolution,
		requireChannel:    cfg.RequireChannel,
	}, nil
}

// Process runs the full pass over the document: version header first, then
// every artifact reference in document order. Non-module documents are a
// no-op. The first failure aborts the document; already-rewritten
// references are not rolled back.
func (p *Processor) Process(ctx context.Context) error {
	if !p.template.IsModule() {
		return nil
	}
	if err := p.processVersion(ctx); err != nil {
		return err
	}
	return p.processArtifacts(ctx)
}

// processVersion resolves the root "version" attribute when its value is a
// placeholder, overwriting it with the resolved version string only.
// Absent table keys leave the attribute untouched.
func (p *Processor) processVersion(ctx context.Context) error {
	attr := p.template.Root().SelectAttr("version")
	if attr == nil {
		return nil
	}
	expr := attr.Value
	if !strings.HasPrefix(expr, "${") || !strings.HasSuffix(expr, "}") {
		return nil
	}
	key := expr[2 : len(expr)-1]
	// The version header only trims an options suffix; a leading '?' is
	// kept as part of the key.
	if i := strings.IndexByte(key, '?'); i > 0 {
		key = key[:i]
	}

	coords, found := p.table.Lookup(key)
	if !found {
		return nil
	}
	if expr, ok := ParsePlaceholder(coords); ok {
		if coords, found = p.table.Lookup(expr.Key); !found {
			return nil
		}
	}
	a, err := p.resolver.Resolve(ctx, coords, p.channelResolution, p.requireChannel)
	if err != nil {
		return errors.Wrap(errors.ErrCodeResolutionFailed, err,
			"failed to resolve version %s in module %s", coords, p.template.Name())
	}
	attr.Value = a.Version
	return nil
}

// processArtifacts walks the artifact references in document order. Absent
// references are skipped silently; each present reference is installed by
// the packaging strategy and then reported to the schema listener.
func (p *Processor) processArtifacts(ctx context.Context) error {
	for _, el := range p.template.Artifacts() {
		ref, err := newArtifactRef(p, el)
		if err != nil {
			return err
		}
		a, ok, err := ref.Resolve(ctx)
		if err != nil {
			return err
		}
		if !ok {
			p.logger.Debugf("module %s: skipping %q (not in version table)",
				p.template.Name(), ref.attr.Value)
			continue
		}
		if err := p.installer.Install(ctx, ref); err != nil {
			return err
		}
		p.schemas.Notify(a.GroupID, a.Path)
	}
	return nil
}
