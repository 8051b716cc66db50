package quiz

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ettle/strcase"
)

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// Page describes one quiz page to generate.
type Page struct {
	// Label is the chapter label used as the page title and map key,
	// e.g. "1. Matter in Our Surroundings".
	Label string
	// Table is the backend table holding the chapter's questions.
	Table string
	// FileName is the output file name, always ending in .html.
	FileName string
}

// StripOrdinal removes a leading chapter number such as "11. ".
func StripOrdinal(label string) string {
	return strings.TrimSpace(ordinalPrefix.ReplaceAllString(label, ""))
}

// SnakeName converts a chapter name to lower snake_case. Apostrophes are
// dropped and other punctuation becomes a word break. Case changes inside a
// word do not split it, so "pH Scale" becomes "ph_scale".
func SnakeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\'' || r == '’':
			return -1
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		default:
			return ' '
		}
	}, name)
	return strcase.ToSnake(strings.ToLower(strings.Join(strings.Fields(cleaned), " ")))
}

// EnsureHTMLExt appends ".html" unless name already ends in it, ignoring case.
func EnsureHTMLExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".html") {
		return name
	}
	return name + ".html"
}

// NewPage derives the table and file name for label. tables maps a chapter
// name without its ordinal to a preferred table name; when no entry exists
// the snake_case name is used and a warning is returned.
func NewPage(label string, tables map[string]string) (Page, []string) {
	name := StripOrdinal(label)
	snake := SnakeName(name)

	p := Page{
		Label:    label,
		FileName: snake + "_quiz.html",
	}

	var warnings []string
	if t, ok := tables[name]; ok && t != "" {
		p.Table = t
	} else {
		p.Table = snake
		if tables != nil {
			warnings = append(warnings,
				fmt.Sprintf("no table name configured for %q, using %q", name, snake))
		}
	}
	return p, warnings
}
