package linkmap

import "strings"

const entryIndent = "    "

var escaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Serialize renders m as a declaration sorted by label. Every entry line ends
// with a comma. indent prefixes every line after the first; the first line is
// expected to follow indentation already present in the host document.
func Serialize(name, indent string, m *Map) string {
	var b strings.Builder
	b.WriteString("const ")
	b.WriteString(nameOrDefault(name))
	b.WriteString(" = {\n")
	for _, e := range m.Sorted() {
		b.WriteString(indent)
		b.WriteString(entryIndent)
		b.WriteString("'")
		b.WriteString(escaper.Replace(e.Label))
		b.WriteString("': '")
		b.WriteString(escaper.Replace(e.Path))
		b.WriteString("',\n")
	}
	b.WriteString(indent)
	b.WriteString("};")
	return b.String()
}

// Commit replaces r's span in doc with block. Text before r.Start and after
// r.End is returned unchanged.
func Commit(doc string, r Region, block string) string {
	var b strings.Builder
	b.Grow(len(doc) + len(block))
	b.WriteString(doc[:r.Start])
	b.WriteString(r.Lead)
	b.WriteString(block)
	b.WriteString(r.Trail)
	b.WriteString(doc[r.End:])
	return b.String()
}
