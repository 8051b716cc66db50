package quiz

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tablePattern = regexp.MustCompile(`const\s+SUPABASE_TABLE\s*=\s*['"]([^'"]*)['"]\s*;`)
	scoreAnchor  = regexp.MustCompile(`score\s*=\s*finalScore;`)
	scriptBlock  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
)

// Tokens are the values a template page currently carries for the fields
// that change per chapter.
type Tokens struct {
	Title             string // text of <title>
	Heading           string // text of the first <h1>
	DifficultyHeading string // text of the first <h2 class="text-2xl">
	Table             string // SUPABASE_TABLE literal
}

// DiscoverTokens reads the current tokens of a template page.
func DiscoverTokens(tmpl []byte) (Tokens, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(tmpl))
	if err != nil {
		return Tokens{}, fmt.Errorf("parsing template HTML: %w", err)
	}

	t := Tokens{
		Title:             strings.TrimSpace(doc.Find("title").First().Text()),
		Heading:           strings.TrimSpace(doc.Find("h1").First().Text()),
		DifficultyHeading: strings.TrimSpace(doc.Find("h2.text-2xl").First().Text()),
	}
	if m := tablePattern.FindSubmatch(tmpl); m != nil {
		t.Table = string(m[1])
	}
	return t, nil
}

// DifficultyHeading is the text of the difficulty chooser heading for label.
func DifficultyHeading(label string) string {
	return "Choose Difficulty for " + label + " Chapter"
}

type replacement struct {
	field    string
	old, new string
}

// Substitute swaps the template's tokens for page's values with exact
// substring replacement on the raw bytes. Markup around the tokens is not
// re-serialized. Title and headings are replaced only outside <script>
// elements; inside scripts only the SUPABASE_TABLE declaration changes.
// Tokens missing from the template produce warnings.
func Substitute(tmpl []byte, tokens Tokens, page Page) ([]byte, []string) {
	var (
		pairs    []replacement
		warnings []string
	)
	markup := scriptBlock.ReplaceAll(tmpl, nil)

	add := func(field, old, new string) {
		if old == "" {
			warnings = append(warnings, fmt.Sprintf("template has no %s", field))
			return
		}
		// goquery decodes entities; fall back to the escaped form.
		if !bytes.Contains(markup, []byte(old)) {
			escaped := html.EscapeString(old)
			if !bytes.Contains(markup, []byte(escaped)) {
				warnings = append(warnings, fmt.Sprintf("%s %q not found verbatim in template", field, old))
				return
			}
			old = escaped
		}
		pairs = append(pairs, replacement{field: field, old: old, new: html.EscapeString(new)})
	}

	add("difficulty heading", tokens.DifficultyHeading, DifficultyHeading(page.Label))
	add("title", tokens.Title, page.Label)
	if tokens.Heading != tokens.Title {
		add("heading", tokens.Heading, page.Label)
	}

	// Longest first so a heading that embeds the title wins at its position.
	sort.SliceStable(pairs, func(i, j int) bool { return len(pairs[i].old) > len(pairs[j].old) })

	args := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		args = append(args, p.old, p.new)
	}
	out := []byte(replaceOutsideScripts(string(tmpl), strings.NewReplacer(args...)))

	if tokens.Table == "" {
		warnings = append(warnings, "template has no SUPABASE_TABLE declaration")
	} else if page.Table != "" {
		decl := []byte("const SUPABASE_TABLE = '" + escapeJSString(page.Table) + "';")
		out = tablePattern.ReplaceAllLiteral(out, decl)
	}

	return out, warnings
}

// replaceOutsideScripts applies r to the parts of doc outside <script>
// elements.
func replaceOutsideScripts(doc string, r *strings.Replacer) string {
	var b strings.Builder
	b.Grow(len(doc))
	last := 0
	for _, loc := range scriptBlock.FindAllStringIndex(doc, -1) {
		b.WriteString(r.Replace(doc[last:loc[0]]))
		b.WriteString(doc[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(r.Replace(doc[last:]))
	return b.String()
}

// InjectScoreLogging inserts the score logging snippet before the first
// "score = finalScore;" statement. It reports false when the anchor is absent.
func InjectScoreLogging(page []byte) ([]byte, bool) {
	loc := scoreAnchor.FindIndex(page)
	if loc == nil {
		return page, false
	}

	var b bytes.Buffer
	b.Grow(len(page) + len(scoreSnippet) + 16)
	b.Write(page[:loc[0]])
	b.Write(scoreSnippet)
	b.WriteString("\n\n            ")
	b.Write(page[loc[0]:])
	return b.Bytes(), true
}

func escapeJSString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
