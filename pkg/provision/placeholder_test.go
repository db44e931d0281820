package provision

import "testing"

func TestParsePlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Expression
		wantOK bool
	}{
		{
			name:   "plain key",
			in:     "${org.acme:core}",
			want:   Expression{Key: "org.acme:core"},
			wantOK: true,
		},
		{
			name:   "jandex option",
			in:     "${org.acme:core?jandex}",
			want:   Expression{Key: "org.acme:core", Jandex: true},
			wantOK: true,
		},
		{
			name:   "other option leaves flag unset",
			in:     "${org.acme:core?other}",
			want:   Expression{Key: "org.acme:core"},
			wantOK: true,
		},
		{
			name:   "jandex matched by containment",
			in:     "${org.acme:core?pre-jandex-post}",
			want:   Expression{Key: "org.acme:core", Jandex: true},
			wantOK: true,
		},
		{
			name:   "literal coordinates",
			in:     "org.acme:core:1.0.0",
			wantOK: false,
		},
		{
			name:   "missing closing marker is a literal",
			in:     "${org.acme:core",
			wantOK: false,
		},
		{
			name:   "missing opening marker is a literal",
			in:     "org.acme:core}",
			wantOK: false,
		},
		{
			name:   "empty body",
			in:     "${}",
			want:   Expression{},
			wantOK: true,
		},
		{
			name:   "question mark first",
			in:     "${?jandex}",
			want:   Expression{Key: "", Jandex: true},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePlaceholder(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParsePlaceholder() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLookupCoords(t *testing.T) {
	table := NewVersionTable(map[string]string{
		"org.acme:core":  "org.acme:core:1.2.3",
		"alias":          "${org.acme:core}",
		"dangling.alias": "${missing}",
	})

	tests := []struct {
		name      string
		raw       string
		want      string
		wantFound bool
	}{
		{"literal passes through", "org.acme:core:9.9.9", "org.acme:core:9.9.9", true},
		{"placeholder resolves", "${org.acme:core}", "org.acme:core:1.2.3", true},
		{"missing key is absent", "${nope}", "", false},
		{"table value may be a placeholder", "${alias}", "org.acme:core:1.2.3", true},
		{"dangling alias is absent", "${dangling.alias}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := lookupCoords(table, tt.raw)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("lookupCoords() = %q, want %q", got, tt.want)
			}
		})
	}
}
