package channel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "channel.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
name = "acme-25.1"

[[stream]]
group = "org.acme"
artifact = "core"
version = "1.2.4"

[[stream]]
group = "org.acme.legacy"
artifact = "*"
version = "0.9.1"
`)

	ch, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if ch.Name != "acme-25.1" {
		t.Errorf("Name = %q", ch.Name)
	}
	if len(ch.Streams) != 2 {
		t.Fatalf("len(Streams) = %d, want 2", len(ch.Streams))
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[[stream]]\ngroup = \"g\"\nartifact = \"a\"\nversion = \"1\"\n"},
		{"incomplete stream", "name = \"c\"\n[[stream]]\ngroup = \"g\"\n"},
		{"bad toml", "name = [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeManifest(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestChannel_Find(t *testing.T) {
	ch := &Channel{
		Name: "test",
		Streams: []Stream{
			{Group: "org.acme", Artifact: "*", Version: "9.9.9"},
			{Group: "org.acme", Artifact: "core", Version: "1.2.4"},
		},
	}

	if v, ok := ch.Find("org.acme", "core"); !ok || v != "1.2.4" {
		t.Errorf("Find(core) = %q, %v; exact stream should win over wildcard", v, ok)
	}
	if v, ok := ch.Find("org.acme", "other"); !ok || v != "9.9.9" {
		t.Errorf("Find(other) = %q, %v; want wildcard 9.9.9", v, ok)
	}
	if _, ok := ch.Find("com.example", "core"); ok {
		t.Error("Find() matched an unrelated group")
	}
}

// recordingResolver captures the coordinates passed to the delegate.
type recordingResolver struct {
	coords []string
}

func (r *recordingResolver) Resolve(ctx context.Context, coords string, channelResolution, requireChannel bool) (*maven.Artifact, error) {
	r.coords = append(r.coords, coords)
	return maven.ParseCoords(coords)
}

func TestResolver_Override(t *testing.T) {
	ch := &Channel{Name: "test", Streams: []Stream{
		{Group: "org.acme", Artifact: "core", Version: "2.0.0"},
	}}
	delegate := &recordingResolver{}
	r := NewResolver(delegate, nil, ch)

	a, err := r.Resolve(context.Background(), "org.acme:core:1.0.0", true, false)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a.Version != "2.0.0" {
		t.Errorf("Version = %q, want channel-managed 2.0.0", a.Version)
	}
}

func TestResolver_PassThroughWithoutChannelResolution(t *testing.T) {
	ch := &Channel{Name: "test", Streams: []Stream{
		{Group: "org.acme", Artifact: "core", Version: "2.0.0"},
	}}
	delegate := &recordingResolver{}
	r := NewResolver(delegate, nil, ch)

	a, err := r.Resolve(context.Background(), "org.acme:core:1.0.0", false, false)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a.Version != "1.0.0" {
		t.Errorf("Version = %q, want raw 1.0.0", a.Version)
	}
}

func TestResolver_RequireChannel(t *testing.T) {
	delegate := &recordingResolver{}
	r := NewResolver(delegate, nil)

	_, err := r.Resolve(context.Background(), "org.acme:core:1.0.0", true, true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, maven.ErrNoChannel) {
		t.Errorf("error %v does not wrap ErrNoChannel", err)
	}
	if len(delegate.coords) != 0 {
		t.Error("delegate must not be consulted when a required channel is missing")
	}
}

func TestResolver_RequireChannelSatisfied(t *testing.T) {
	ch := &Channel{Name: "test", Streams: []Stream{
		{Group: "org.acme", Artifact: "core", Version: "2.0.0"},
	}}
	delegate := &recordingResolver{}
	r := NewResolver(delegate, nil, ch)

	a, err := r.Resolve(context.Background(), "org.acme:core", true, true)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if a.Version != "2.0.0" {
		t.Errorf("Version = %q, want 2.0.0", a.Version)
	}
}
