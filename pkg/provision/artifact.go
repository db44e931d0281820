package provision

import (
	"context"

	"github.com/beevik/etree"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// resolveState tracks the lifecycle of a reference's resolution.
// A reference starts unresolved and moves exactly once to resolved or
// absent; failures leave it unresolved.
type resolveState int

const (
	stateUnresolved resolveState = iota
	stateResolved
	stateAbsent
)

// ArtifactRef is one resolvable artifact reference in a descriptor: an
// element together with its "name" attribute. It reparses its own raw
// value, asks the resolver for a concrete artifact (once), and rewrites
// itself into fat or thin form.
//
// A reference is constructed per document scan and mutated at most once by
// the owning processor; it must not be reused across documents. Callers
// must not invoke RewriteFat or RewriteThin more than once per reference.
type ArtifactRef struct {
	element *etree.Element
	attr    *etree.Attr
	expr    Expression
	coords  string // mapped coordinate string; empty means intentionally absent

	template          *Template
	resolver          maven.Resolver
	channelResolution bool
	requireChannel    bool

	state    resolveState
	artifact *maven.Artifact
}

// newArtifactRef builds a reference for one artifact element. The element
// must carry a "name" attribute; descriptors without one are malformed.
func newArtifactRef(p *Processor, el *etree.Element) (*ArtifactRef, error) {
	attr := el.SelectAttr("name")
	if attr == nil {
		return nil, errors.New(errors.ErrCodeInvalidTemplate,
			"artifact element without name attribute in module %s", p.template.Name())
	}

	ref := &ArtifactRef{
		element:           el,
		attr:              attr,
		template:          p.template,
		resolver:          p.resolver,
		channelResolution: p.channelResolution,
		requireChannel:    p.requireChannel,
	}
	if expr, ok := ParsePlaceholder(attr.Value); ok {
		ref.expr = expr
	}
	ref.coords, _ = lookupCoords(p.table, attr.Value)
	return ref, nil
}

// Jandex reports whether the reference names the Jandex-indexed variant.
func (r *ArtifactRef) Jandex() bool { return r.expr.Jandex }

// Coords returns the mapped coordinate string, or "" when the placeholder
// key is absent from the version table.
func (r *ArtifactRef) Coords() string { return r.coords }

// Resolve returns the concrete artifact for this reference.
//
// Outcomes are explicit and three-way:
//   - (artifact, true, nil): resolved; the artifact is concrete and, where
//     the resolver materializes files, carries a local path.
//   - (nil, false, nil): intentionally absent — the placeholder key is not
//     in the version table. Not an error; the caller skips the reference.
//   - (nil, false, err): the coordinate was present but the resolver failed.
//
// The first successful resolution is memoized: repeated calls return the
// same artifact without re-invoking the resolver.
func (r *ArtifactRef) Resolve(ctx context.Context) (*maven.Artifact, bool, error) {
	switch r.state {
	case stateResolved:
		return r.artifact, true, nil
	case stateAbsent:
		return nil, false, nil
	}

	if r.coords == "" {
		r.state = stateAbsent
		return nil, false, nil
	}

	a, err := r.resolver.Resolve(ctx, r.coords, r.channelResolution, r.requireChannel)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeResolutionFailed, err,
			"failed to resolve %s in module %s", r.coords, r.template.Name())
	}
	r.artifact = a
	r.state = stateResolved
	return a, true, nil
}

// RewriteFat turns the reference into an embedded resource root: the
// element becomes "resource-root" and the "name" attribute becomes a
// "path" attribute holding the installer's final on-disk file name.
func (r *ArtifactRef) RewriteFat(finalName string) {
	r.element.Tag = "resource-root"
	r.attr.Key = "path"
	r.attr.Value = finalName
}

// RewriteThin replaces the attribute value with the fully resolved
// coordinate string. Element and attribute names are unchanged.
func (r *ArtifactRef) RewriteThin(coords string) {
	r.attr.Value = coords
}
