package maven

import "testing"

func TestParseCoords(t *testing.T) {
	tests := []struct {
		name   string
		coords string
		want   Artifact
		wantErr bool
	}{
		{
			name:   "group and artifact only",
			coords: "org.acme:core",
			want:   Artifact{GroupID: "org.acme", ArtifactID: "core", Extension: "jar"},
		},
		{
			name:   "with version",
			coords: "org.acme:core:1.2.3",
			want:   Artifact{GroupID: "org.acme", ArtifactID: "core", Version: "1.2.3", Extension: "jar"},
		},
		{
			name:   "with classifier",
			coords: "org.acme:core:1.2.3:linux-x86_64",
			want:   Artifact{GroupID: "org.acme", ArtifactID: "core", Version: "1.2.3", Classifier: "linux-x86_64", Extension: "jar"},
		},
		{
			name:   "with empty classifier and extension",
			coords: "org.acme:core:1.2.3::so",
			want:   Artifact{GroupID: "org.acme", ArtifactID: "core", Version: "1.2.3", Extension: "so"},
		},
		{
			name:    "single segment",
			coords:  "org.acme",
			wantErr: true,
		},
		{
			name:    "empty artifactId",
			coords:  "org.acme:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoords(tt.coords)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoords() error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseCoords() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestArtifact_Coords(t *testing.T) {
	a := &Artifact{GroupID: "org.acme", ArtifactID: "core", Version: "1.2.3"}
	if got := a.Coords(); got != "org.acme:core:1.2.3" {
		t.Errorf("Coords() = %q", got)
	}

	a.Classifier = "sources"
	if got := a.Coords(); got != "org.acme:core:1.2.3:sources" {
		t.Errorf("Coords() = %q", got)
	}

	a.Extension = "zip"
	if got := a.Coords(); got != "org.acme:core:1.2.3:sources:zip" {
		t.Errorf("Coords() = %q", got)
	}
}

func TestArtifact_FileName(t *testing.T) {
	tests := []struct {
		name string
		a    Artifact
		want string
	}{
		{
			name: "plain",
			a:    Artifact{ArtifactID: "core", Version: "1.2.3", Extension: "jar"},
			want: "core-1.2.3.jar",
		},
		{
			name: "classifier",
			a:    Artifact{ArtifactID: "core", Version: "1.2.3", Classifier: "linux", Extension: "jar"},
			want: "core-1.2.3-linux.jar",
		},
		{
			name: "default extension",
			a:    Artifact{ArtifactID: "core", Version: "1.2.3"},
			want: "core-1.2.3.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.FileName(); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtifact_GA(t *testing.T) {
	a := &Artifact{GroupID: "org.acme", ArtifactID: "core", Version: "9"}
	if got := a.GA(); got != "org.acme:core" {
		t.Errorf("GA() = %q", got)
	}
}
