package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizgen-labs/quizgen/internal/linkmap"
)

//go:embed snippets/score_logging.js
var scoreSnippet []byte

// Options control page generation.
type Options struct {
	// OutputDir receives the generated pages. Missing directories are created.
	OutputDir string
	// LinkBase is the directory links are made relative to, normally the
	// directory of the host page. Defaults to the current directory.
	LinkBase string
	// InjectScoreLogging adds the score logging snippet to each page.
	InjectScoreLogging bool
	// Force overwrites existing pages.
	Force bool
}

// Result holds the outcome of generating one page.
type Result struct {
	OutputPath string
	Link       linkmap.Entry
	Warnings   []string
}

// Instantiator generates pages from one template.
type Instantiator struct {
	template []byte
	tokens   Tokens
	opts     Options
}

// NewInstantiator reads the template page at path and discovers its tokens.
func NewInstantiator(path string, opts Options) (*Instantiator, error) {
	tmpl, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: template %s", linkmap.ErrSourceFileMissing, path)
		}
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return New(tmpl, opts)
}

// New returns an Instantiator for an in-memory template.
func New(tmpl []byte, opts Options) (*Instantiator, error) {
	tokens, err := DiscoverTokens(tmpl)
	if err != nil {
		return nil, err
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.LinkBase == "" {
		opts.LinkBase = "."
	}
	return &Instantiator{template: tmpl, tokens: tokens, opts: opts}, nil
}

// Tokens returns the tokens found in the template.
func (in *Instantiator) Tokens() Tokens { return in.tokens }

// Render returns the page content without writing it.
func (in *Instantiator) Render(p Page) ([]byte, []string) {
	out, warnings := Substitute(in.template, in.tokens, p)
	if in.opts.InjectScoreLogging {
		var ok bool
		if out, ok = InjectScoreLogging(out); !ok {
			warnings = append(warnings, "no 'score = finalScore;' statement; score logging not injected")
		}
	}
	return out, warnings
}

// Generate renders p and writes it under the output directory. It refuses to
// replace an existing page unless Force is set.
func (in *Instantiator) Generate(p Page) (*Result, error) {
	if p.Label == "" {
		return nil, fmt.Errorf("page has no label")
	}
	if p.FileName == "" {
		return nil, fmt.Errorf("page %q has no file name", p.Label)
	}

	outPath := filepath.Join(in.opts.OutputDir, EnsureHTMLExt(p.FileName))
	if !in.opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return nil, fmt.Errorf("%s already exists; use --force to overwrite", outPath)
		}
	}

	content, warnings := in.Render(p)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	link, err := RelativeLink(in.opts.LinkBase, outPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		OutputPath: outPath,
		Link:       linkmap.Entry{Label: p.Label, Path: link},
		Warnings:   warnings,
	}, nil
}

// RelativeLink returns target relative to base as a "./"-prefixed,
// forward-slash path suitable for the navigation map.
func RelativeLink(base, target string) (string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", base, err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", fmt.Errorf("relating %s to %s: %w", target, base, err)
	}
	return LinkPath(filepath.ToSlash(rel)), nil
}

// LinkPath prefixes a relative path with "./". Paths already starting with
// "./", "../" or "/", and URLs, are returned unchanged.
func LinkPath(p string) string {
	for _, prefix := range []string{"./", "../", "/"} {
		if strings.HasPrefix(p, prefix) {
			return p
		}
	}
	if strings.Contains(p, "://") {
		return p
	}
	return "./" + p
}
