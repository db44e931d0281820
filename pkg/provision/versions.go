package provision

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"strings"
)

// VersionTable maps symbolic property names to coordinate strings.
//
// Keys are case-sensitive and unique. Values are either raw
// "groupId:artifactId[:version[:classifier[:extension]]]" coordinates or a
// further placeholder referring to another table entry. The table is
// immutable for the duration of one document's processing; a missing key is
// a valid, expected state (the reference is skipped), not an error.
type VersionTable struct {
	props map[string]string
}

// NewVersionTable builds a table from props. The map is copied, so later
// mutation of props does not affect the table.
func NewVersionTable(props map[string]string) VersionTable {
	return VersionTable{props: maps.Clone(props)}
}

// Lookup returns the value for key and whether the key is present.
func (t VersionTable) Lookup(key string) (string, bool) {
	v, ok := t.props[key]
	return v, ok
}

// Len returns the number of entries.
func (t VersionTable) Len() int { return len(t.props) }

// LoadVersionTable reads a table from a properties file: one "key=value"
// pair per line, "#" and "!" comment lines, blank lines ignored. This is the
// format provisioning pipelines ship version tables in
// (artifact-versions.properties).
func LoadVersionTable(path string) (VersionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return VersionTable{}, err
	}
	defer f.Close()

	props := make(map[string]string)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "!") {
			continue
		}
		key, value, found := strings.Cut(text, "=")
		if !found {
			return VersionTable{}, fmt.Errorf("%s:%d: expected key=value, got %q", path, line, text)
		}
		props[unescape(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return VersionTable{}, err
	}
	return VersionTable{props: props}, nil
}

// unescape removes the backslash escapes Java properties files put in front
// of ':', '=', and '\\' in keys.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
