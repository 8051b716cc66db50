//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	startMarker = "// ** THIS BLOCK WILL BE DYNAMICALLY UPDATED BY THE PYTHON SCRIPT **"
	endMarker   = "// --- END QUIZ NAVIGATION MAP ---"
)

// site holds paths inside an isolated copy of a subject website.
type site struct {
	Root     string
	Host     string // science.html, holds the navigation map
	Template string // an existing physics quiz page
	Manifest string
}

// setupSite lays out a synthetic website: a host page whose navigation map
// already links a physics quiz and a stale chemistry quiz, the physics quiz
// used as template, and a chemistry batch manifest.
func setupSite(t *testing.T, hostScript string) *site {
	t.Helper()

	root := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	s := &site{
		Root:     root,
		Host:     filepath.Join(root, "science.html"),
		Template: filepath.Join(root, "science", "physics", "sound_quiz.html"),
		Manifest: filepath.Join(root, "chemistry.yaml"),
	}

	writeFile(t, s.Host, `<!DOCTYPE html>
<html lang="en">
<head><title>Science</title></head>
<body>
    <nav id="chapters"></nav>
    <script>
`+hostScript+`
        buildNavigation(quizLinkMap);
    </script>
</body>
</html>
`)

	writeFile(t, s.Template, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>11. Sound</title>
</head>
<body>
    <h1 class="text-3xl font-bold">11. Sound</h1>
    <h2 class="text-2xl">Choose Difficulty for 11. Sound Chapter</h2>
    <script>
        const SUPABASE_TABLE = 'sound';
        function finish(finalScore) {
            score = finalScore;
            showResults();
        }
    </script>
</body>
</html>
`)

	writeFile(t, s.Manifest, `version: "1.0"
host: science.html
template: science/physics/sound_quiz.html
output_dir: science/chemistry
markers:
  start: "`+startMarker+`"
  end: "`+endMarker+`"
exclude: chemistry
inject_score_logging: true
chapters:
  - label: "1. Matter in Our Surroundings"
    table: matter_surroundings
  - label: "2. Is Matter Around Us Pure"
  - label: "4. Structure of the Atom"
    file: structure_atom_quiz
`)

	return s
}

// sentinelScript is a navigation map wrapped in sentinel comments.
const sentinelScript = `        ` + startMarker + `
        const quizLinkMap = {
            '11. Sound': './science/physics/sound_quiz.html',
            '1. Matter in Our Surroundings': './science/chemistry/old_matter.html',
        };
        ` + endMarker

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s unexpectedly contains %q.\nContents:\n%s", path, substr, string(data))
	}
}
