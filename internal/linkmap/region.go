package linkmap

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultName is the JavaScript identifier of the navigation map.
const DefaultName = "quizLinkMap"

// Region is the located map inside a host document. doc[Start:End] is the
// span replaced on commit; Lead and Trail are the parts of that span kept
// around the rewritten declaration.
type Region struct {
	Start, End  int
	Lead, Trail string
	// Name is the declared identifier; Indent is the whitespace before the
	// declaration on its line.
	Name   string
	Indent string
	// Body is the raw text between the literal's braces.
	Body string
}

// Locator finds the map region in a host document.
type Locator interface {
	Locate(doc string) (Region, error)
}

// Declaration locates the map by its own syntax: "const <Name> = {" opens the
// region and the first "};" after it closes it.
type Declaration struct {
	Name string
}

// Sentinels locates the map between two literal marker lines. The markers are
// kept; only the text between them is rewritten. A span holding text but no
// matching declaration is reported as ErrRegionNotFound.
type Sentinels struct {
	Start string
	End   string
	// Name of the declaration expected between the markers.
	Name string
}

func declPattern(name string) *regexp.Regexp {
	if name == "" {
		name = DefaultName
	}
	return regexp.MustCompile(`(?s)const\s+` + regexp.QuoteMeta(name) + `\s*=\s*\{(.*?)\}\s*;`)
}

func nameOrDefault(name string) string {
	if name == "" {
		return DefaultName
	}
	return name
}

// Locate implements Locator.
func (d Declaration) Locate(doc string) (Region, error) {
	name := nameOrDefault(d.Name)
	loc := declPattern(name).FindStringSubmatchIndex(doc)
	if loc == nil {
		return Region{}, fmt.Errorf("%w: no 'const %s = {...};' declaration", ErrRegionNotFound, name)
	}
	return Region{
		Start:  loc[0],
		End:    loc[1],
		Name:   name,
		Indent: lineIndent(doc, loc[0]),
		Body:   doc[loc[2]:loc[3]],
	}, nil
}

// Locate implements Locator.
func (s Sentinels) Locate(doc string) (Region, error) {
	if s.Start == "" || s.End == "" {
		return Region{}, fmt.Errorf("%w: empty marker", ErrRegionNotFound)
	}

	start := strings.Index(doc, s.Start)
	if start < 0 {
		return Region{}, fmt.Errorf("%w: start marker %q not found", ErrRegionNotFound, s.Start)
	}
	spanStart := start + len(s.Start)

	rel := strings.Index(doc[spanStart:], s.End)
	if rel < 0 {
		if strings.Contains(doc[:start], s.End) {
			return Region{}, fmt.Errorf("%w: end marker %q precedes start marker", ErrRegionNotFound, s.End)
		}
		return Region{}, fmt.Errorf("%w: end marker %q not found", ErrRegionNotFound, s.End)
	}
	spanEnd := spanStart + rel
	span := doc[spanStart:spanEnd]

	name := nameOrDefault(s.Name)
	r := Region{Start: spanStart, End: spanEnd, Name: name}

	loc := declPattern(name).FindStringSubmatchIndex(span)
	if loc == nil {
		// Anything other than whitespace may be a map under another name or
		// keyword; rewriting it would lose its entries.
		if strings.TrimSpace(span) != "" {
			return Region{}, fmt.Errorf("%w: no 'const %s = {...};' between markers", ErrRegionNotFound, name)
		}
		// Empty span: write a fresh declaration on its own line, keeping the
		// end marker's indentation.
		r.Lead = "\n"
		r.Trail = "\n"
		if i := strings.LastIndex(span, "\n"); i >= 0 && strings.TrimSpace(span[i:]) == "" {
			r.Trail = span[i:]
		}
		return r, nil
	}

	r.Lead = span[:loc[0]]
	r.Trail = span[loc[1]:]
	r.Indent = lineIndent(span, loc[0])
	r.Body = span[loc[2]:loc[3]]
	return r, nil
}

// lineIndent returns the whitespace between the start of the line holding
// offset i and i, or "" when other text precedes i on that line.
func lineIndent(s string, i int) string {
	lineStart := strings.LastIndex(s[:i], "\n") + 1
	prefix := s[lineStart:i]
	if strings.TrimLeft(prefix, " \t") != "" {
		return ""
	}
	return prefix
}
