package provision

import "testing"

const moduleXML = `<?xml version="1.0" encoding="UTF-8"?>
<module xmlns="urn:jboss:module:1.9" name="org.acme.core" version="${org.acme:core}">
    <resources>
        <artifact name="${org.acme:core}"/>
        <artifact name="${org.acme:api}"/>
        <artifact name="org.acme:extras:0.5.0"/>
    </resources>
    <dependencies>
        <module name="org.acme.api"/>
        <module name="javax.api"/>
    </dependencies>
</module>
`

func TestTemplate_IsModule(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(moduleXML))
	if err != nil {
		t.Fatal(err)
	}
	if !tmpl.IsModule() {
		t.Error("IsModule() = false for module descriptor")
	}

	alias, err := ParseTemplate([]byte(`<module-alias name="org.acme.alias" target-name="org.acme.core"/>`))
	if err != nil {
		t.Fatal(err)
	}
	if alias.IsModule() {
		t.Error("IsModule() = true for module-alias descriptor")
	}
}

func TestTemplate_Name(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(moduleXML))
	if err != nil {
		t.Fatal(err)
	}
	if got := tmpl.Name(); got != "org.acme.core" {
		t.Errorf("Name() = %q", got)
	}
}

func TestTemplate_ArtifactsOrder(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(moduleXML))
	if err != nil {
		t.Fatal(err)
	}
	artifacts := tmpl.Artifacts()
	if len(artifacts) != 3 {
		t.Fatalf("len(Artifacts()) = %d, want 3", len(artifacts))
	}
	want := []string{"${org.acme:core}", "${org.acme:api}", "org.acme:extras:0.5.0"}
	for i, el := range artifacts {
		if got := el.SelectAttrValue("name", ""); got != want[i] {
			t.Errorf("artifact %d name = %q, want %q", i, got, want[i])
		}
	}
}

func TestTemplate_NoResources(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`<module name="org.acme.empty"/>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := tmpl.Artifacts(); got != nil {
		t.Errorf("Artifacts() = %v, want nil", got)
	}
}

func TestTemplate_ModuleDependencies(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(moduleXML))
	if err != nil {
		t.Fatal(err)
	}
	deps := tmpl.ModuleDependencies()
	if len(deps) != 2 || deps[0] != "org.acme.api" || deps[1] != "javax.api" {
		t.Errorf("ModuleDependencies() = %v", deps)
	}
}

func TestParseTemplate_Invalid(t *testing.T) {
	if _, err := ParseTemplate([]byte("not xml <<<")); err == nil {
		t.Error("expected error for malformed document")
	}
	if _, err := ParseTemplate([]byte("  ")); err == nil {
		t.Error("expected error for empty document")
	}
}
