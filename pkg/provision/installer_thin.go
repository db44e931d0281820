package provision

import "context"

// ThinInstaller keeps artifacts external: the reference's attribute value
// is replaced with the fully resolved coordinate string so downstream
// consumers read a concrete coordinate instead of a placeholder. No files
// are copied.
type ThinInstaller struct{}

// Install implements [Installer].
func (ThinInstaller) Install(ctx context.Context, ref *ArtifactRef) error {
	a, ok, err := ref.Resolve(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	ref.RewriteThin(a.Coords())
	return nil
}
