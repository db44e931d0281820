// Package maven provides the Maven artifact model and resolution contract
// used by the provisioning core.
//
// Artifacts are identified by colon-separated coordinates
// "groupId:artifactId[:version[:classifier[:extension]]]". Empty segments
// are allowed ("org.acme:core:1.0::jar" has no classifier). The extension
// defaults to "jar" when absent.
//
// Resolution of coordinates to concrete, materialized artifacts is performed
// by implementations of [Resolver]; see the repository and channel
// subpackages.
package maven

import (
	"strings"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
)

// DefaultExtension is assumed when coordinates carry no extension segment.
const DefaultExtension = "jar"

// Artifact holds the coordinates of a Maven artifact and, once materialized,
// the path of its local copy.
//
// Zero values: all string fields empty. An Artifact with an empty Version is
// "partial": it identifies a artifact stream but not a concrete release, and
// needs a channel or repository lookup to complete it.
type Artifact struct {
	GroupID    string // Maven groupId (e.g., "org.wildfly.core", never empty in valid coords)
	ArtifactID string // Maven artifactId (e.g., "wildfly-controller", never empty in valid coords)
	Version    string // Concrete version (may be empty before resolution)
	Classifier string // Optional classifier (e.g., "linux-x86_64")
	Extension  string // File extension, defaults to "jar"
	Path       string // Local file path (set once the artifact is materialized)
}

// ParseCoords parses a coordinate string into an Artifact.
//
// Accepted form: "groupId:artifactId[:version[:classifier[:extension]]]".
// Returns an INVALID_COORDS error when fewer than two segments are present
// or when groupId/artifactId are empty.
func ParseCoords(coords string) (*Artifact, error) {
	parts := strings.Split(coords, ":")
	if len(parts) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidCoords,
			"invalid coordinates %q (expected groupId:artifactId[:version[:classifier[:extension]]])", coords)
	}
	a := &Artifact{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Extension:  DefaultExtension,
	}
	if a.GroupID == "" || a.ArtifactID == "" {
		return nil, errors.New(errors.ErrCodeInvalidCoords,
			"invalid coordinates %q (empty groupId or artifactId)", coords)
	}
	if len(parts) > 2 {
		a.Version = parts[2]
	}
	if len(parts) > 3 {
		a.Classifier = parts[3]
	}
	if len(parts) > 4 && parts[4] != "" {
		a.Extension = parts[4]
	}
	return a, nil
}

// GA returns the "groupId:artifactId" pair that identifies the artifact
// stream independent of version.
func (a *Artifact) GA() string {
	return a.GroupID + ":" + a.ArtifactID
}

// Coords returns the resolved coordinate string written into thin
// descriptors: "groupId:artifactId:version", extended with the classifier
// and a non-jar extension only when present. Trailing default segments are
// omitted so the common case reads "org.acme:core:1.2.3".
func (a *Artifact) Coords() string {
	s := a.GroupID + ":" + a.ArtifactID + ":" + a.Version
	ext := a.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if a.Classifier != "" || ext != DefaultExtension {
		s += ":" + a.Classifier
		if ext != DefaultExtension {
			s += ":" + ext
		}
	}
	return s
}

// FileName returns the conventional repository file name,
// "artifactId-version[-classifier].extension".
func (a *Artifact) FileName() string {
	var sb strings.Builder
	sb.WriteString(a.ArtifactID)
	sb.WriteByte('-')
	sb.WriteString(a.Version)
	if a.Classifier != "" {
		sb.WriteByte('-')
		sb.WriteString(a.Classifier)
	}
	sb.WriteByte('.')
	if a.Extension != "" {
		sb.WriteString(a.Extension)
	} else {
		sb.WriteString(DefaultExtension)
	}
	return sb.String()
}

// String returns the coordinate form for logging.
func (a *Artifact) String() string { return a.Coords() }
