package provision

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// FatInstaller embeds resolved artifacts as local resources: the artifact
// file is copied into the target directory and the reference is rewritten
// to a resource-root pointing at the copy.
type FatInstaller struct {
	// TargetDir receives the embedded copies, typically the directory of
	// the descriptor being processed. Required.
	TargetDir string
}

// Install implements [Installer].
func (i *FatInstaller) Install(ctx context.Context, ref *ArtifactRef) error {
	a, ok, err := ref.Resolve(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if a.Path == "" {
		return errors.New(errors.ErrCodeFileNotFound,
			"artifact %s was not materialized, cannot embed", a)
	}

	name := finalName(a, ref.Jandex())
	if err := copyFile(a.Path, filepath.Join(i.TargetDir, name)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "embed %s", a)
	}
	ref.RewriteFat(name)
	return nil
}

// finalName chooses the embedded file name. Jandex variants get a "-jandex"
// suffix before the extension so they sit next to the plain artifact.
func finalName(a *maven.Artifact, jandex bool) string {
	name := a.FileName()
	if !jandex {
		return name
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i] + "-jandex" + name[i:]
	}
	return name + "-jandex"
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
