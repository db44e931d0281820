package provision

import (
	"io"

	"github.com/beevik/etree"

	"github.com/rdnovell/galleon-plugins/pkg/errors"
)

// Template is one module descriptor document under processing.
//
// A template owns zero-or-one version placeholder (the root "version"
// attribute) and zero-or-many artifact references (the "artifact" elements
// under "resources", in document order). References do not outlive the
// template; the processor mutates the underlying tree in place.
type Template struct {
	doc  *etree.Document
	path string
}

// LoadTemplate reads a descriptor document from path.
func LoadTemplate(path string) (*Template, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse template %s", path)
	}
	if doc.Root() == nil {
		return nil, errors.New(errors.ErrCodeInvalidTemplate, "template %s has no root element", path)
	}
	return &Template{doc: doc, path: path}, nil
}

// ParseTemplate reads a descriptor document from raw bytes.
func ParseTemplate(data []byte) (*Template, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse template")
	}
	if doc.Root() == nil {
		return nil, errors.New(errors.ErrCodeInvalidTemplate, "template has no root element")
	}
	return &Template{doc: doc}, nil
}

// Path returns the file the template was loaded from, if any.
func (t *Template) Path() string { return t.path }

// Root returns the document's root element.
func (t *Template) Root() *etree.Element { return t.doc.Root() }

// IsModule reports whether the document is a module descriptor. Other
// document kinds (module aliases, absent modules) are left untouched by the
// processor.
func (t *Template) IsModule() bool {
	return t.doc.Root().Tag == "module"
}

// Name returns the module name declared on the root element, or the file
// path when the attribute is missing. Used for diagnostics only.
func (t *Template) Name() string {
	if a := t.doc.Root().SelectAttr("name"); a != nil {
		return a.Value
	}
	return t.path
}

// Artifacts returns the artifact reference elements under "resources" in
// document order. The slice is freshly built per call; retained elements
// stay valid until the tree is rewritten.
func (t *Template) Artifacts() []*etree.Element {
	resources := t.doc.Root().SelectElement("resources")
	if resources == nil {
		return nil
	}
	return resources.SelectElements("artifact")
}

// ModuleDependencies returns the names of modules this descriptor declares
// under "dependencies".
func (t *Template) ModuleDependencies() []string {
	deps := t.doc.Root().SelectElement("dependencies")
	if deps == nil {
		return nil
	}
	var names []string
	for _, el := range deps.SelectElements("module") {
		if a := el.SelectAttr("name"); a != nil {
			names = append(names, a.Value)
		}
	}
	return names
}

// WriteTo serializes the document to w.
func (t *Template) WriteTo(w io.Writer) error {
	_, err := t.doc.WriteTo(w)
	return err
}

// Save writes the document back to the file it was loaded from.
func (t *Template) Save() error {
	if t.path == "" {
		return errors.New(errors.ErrCodeInternal, "template has no backing file")
	}
	return t.doc.WriteToFile(t.path)
}

// String returns the serialized document. Used in tests and diagnostics.
func (t *Template) String() string {
	s, _ := t.doc.WriteToString()
	return s
}
