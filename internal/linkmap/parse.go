package linkmap

import "strings"

// Parse reads the entries of a map literal body (the text between its
// braces). Segments that do not split into a non-empty label and path are
// skipped and returned as malformed. Later duplicates win.
func Parse(body string) (m *Map, malformed []string) {
	m = NewMap()
	for _, seg := range strings.Split(body, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		rawKey, rawValue, ok := strings.Cut(seg, ":")
		if !ok {
			malformed = append(malformed, seg)
			continue
		}

		label := unquote(strings.TrimSpace(rawKey))
		path := unquote(strings.TrimSpace(rawValue))
		if label == "" || path == "" {
			malformed = append(malformed, seg)
			continue
		}
		m.Set(label, path)
	}
	return m, malformed
}

// unquote strips one layer of matching single or double quotes and resolves
// backslash escapes inside them. Unquoted text is returned as is.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return s
	}
	inner := s[1 : len(s)-1]
	if !strings.Contains(inner, `\`) {
		return inner
	}

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
