package javadoc

import (
	"regexp"
	"strings"
)

// urlPatternPlaceholder matches one placeholder in a URL pattern:
// "{field}" or "{field delimiter}". Everything between the first run
// of whitespace and the closing brace is the delimiter argument, so
// delimiters may themselves contain spaces. A literal "}" cannot
// appear inside a delimiter; the grammar defines no escaping for it.
var urlPatternPlaceholder = regexp.MustCompile(`\{([^\s{}]*)(?:\s+([^}]*))?\}`)

// resolveURL computes the documentation URL for a class.
//
// When the metadata carries a URL pattern, the pattern wins and frames
// is ignored. Otherwise the URL is the base URL followed by the
// slash-separated class name and ".html"; the frame-style form inserts
// "index.html?" after the base URL. Without a pattern or a base URL no
// URL is resolvable and ok is false.
func resolveURL(meta Metadata, className string, frames bool) (url string, ok bool) {
	if pattern, ok := meta.URLPattern(); ok {
		return expandPattern(pattern, meta, className), true
	}

	base, ok := meta.BaseURL()
	if !ok {
		return "", false
	}

	slashed := strings.ReplaceAll(className, ".", "/")
	if frames {
		return base + "index.html?" + slashed + ".html", true
	}
	return base + slashed + ".html", true
}

// expandPattern substitutes placeholders in a single left-to-right
// pass. Replacement values are never re-scanned. Supported fields:
//
//   - {baseUrl}        the metadata's base URL (empty when absent)
//   - {full}           the fully-qualified class name
//   - {full <delim>}   the class name with "." replaced by <delim>
//
// Unrecognized fields are replaced by the empty string. Text outside
// placeholders is copied verbatim.
func expandPattern(pattern string, meta Metadata, className string) string {
	var b strings.Builder
	last := 0
	for _, m := range urlPatternPlaceholder.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(pattern[last:m[0]])

		var repl string
		switch field := pattern[m[2]:m[3]]; field {
		case "baseUrl":
			repl, _ = meta.BaseURL()
		case "full":
			repl = className
			if m[4] >= 0 {
				repl = strings.ReplaceAll(repl, ".", pattern[m[4]:m[5]])
			}
		}

		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(pattern[last:])
	return b.String()
}
