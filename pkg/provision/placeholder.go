package provision

import "strings"

// Expression is the decoded form of a placeholder string.
type Expression struct {
	// Key is the version table lookup key (the body before any '?').
	Key string

	// Jandex marks the reference as the Jandex-indexed annotation variant.
	// The flag is set when the substring "jandex" occurs anywhere in the
	// options segment. This is containment, not token matching; callers
	// should not rely on stray matches.
	Jandex bool
}

// ParsePlaceholder decodes a raw attribute value.
//
// Only strings of the exact form "${body}" are placeholders. The body may
// carry an options segment after '?': "${org.acme:core?jandex}". Anything
// else, including malformed markers like "${x", is a literal coordinate and
// reported as ok=false; no error is ever raised.
func ParsePlaceholder(s string) (Expression, bool) {
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return Expression{}, false
	}
	body := s[2 : len(s)-1]
	if i := strings.IndexByte(body, '?'); i >= 0 {
		return Expression{
			Key:    body[:i],
			Jandex: strings.Contains(body[i+1:], "jandex"),
		}, true
	}
	return Expression{Key: body}, true
}

// lookupCoords maps a raw descriptor value to a concrete coordinate string.
//
// Placeholders are looked up in the table; table values may themselves be
// unresolved placeholders, which are followed one more level. Literals pass
// through unchanged. The second return is false when a placeholder key is
// absent from the table, meaning the reference is intentionally skipped.
func lookupCoords(table VersionTable, raw string) (string, bool) {
	coords := raw
	if expr, ok := ParsePlaceholder(raw); ok {
		v, found := table.Lookup(expr.Key)
		if !found {
			return "", false
		}
		coords = v
	}
	if expr, ok := ParsePlaceholder(coords); ok {
		v, found := table.Lookup(expr.Key)
		if !found {
			return "", false
		}
		coords = v
	}
	return coords, true
}
