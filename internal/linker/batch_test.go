package linker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quizgen-labs/quizgen/internal/linkmap"
	"github.com/quizgen-labs/quizgen/internal/manifest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	startMarker = "// ** THIS BLOCK WILL BE DYNAMICALLY UPDATED BY THE PYTHON SCRIPT **"
	endMarker   = "// --- END QUIZ NAVIGATION MAP ---"
)

const sentinelHost = `<html><body><script>
` + startMarker + `
       const quizLinkMap = {
    '1. Matter in Our Surroundings': './science/chemistry/old_matter.html',
    '11. Sound': './science/physics/sound_quiz.html',
   };
        ` + endMarker + `
</script></body></html>
`

// setupSite lays out a site root with a template page and returns the root.
func setupSite(t *testing.T, host string) string {
	t.Helper()
	root := t.TempDir()
	tmpl, err := os.ReadFile(filepath.Join("testdata", "sound_quiz.html"))
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "science", "physics", "sound_quiz.html"), string(tmpl))
	writeFile(t, filepath.Join(root, "science.html"), host)
	return root
}

func chemistryBatch(root string) *manifest.Batch {
	return &manifest.Batch{
		Version:            "1.0",
		Host:               "science.html",
		Template:           "science/physics/sound_quiz.html",
		OutputDir:          "science/chemistry",
		Markers:            &manifest.Markers{Start: startMarker, End: endMarker},
		Exclude:            "chemistry",
		InjectScoreLogging: true,
		Chapters: []manifest.Chapter{
			{Label: "1. Matter in Our Surroundings", Table: "matter_surroundings"},
			{Label: "3. Atoms and Molecules"},
		},
		Dir: root,
	}
}

func TestRunBatch(t *testing.T) {
	root := setupSite(t, sentinelHost)

	report, err := RunBatch(chemistryBatch(root), nil)
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	if len(report.Generated) != 2 || len(report.Failed) != 0 {
		t.Fatalf("generated %d, failed %d; want 2, 0", len(report.Generated), len(report.Failed))
	}

	page := readFile(t, filepath.Join(root, "science", "chemistry", "atoms_and_molecules_quiz.html"))
	if !strings.Contains(page, "const SUPABASE_TABLE = 'atoms_and_molecules';") {
		t.Errorf("table not substituted:\n%s", page)
	}
	if !strings.Contains(page, "quiz_scores") {
		t.Error("score logging not injected")
	}

	host := readFile(t, filepath.Join(root, "science.html"))
	for _, want := range []string{
		"'1. Matter in Our Surroundings': './science/chemistry/matter_in_our_surroundings_quiz.html',",
		"'3. Atoms and Molecules': './science/chemistry/atoms_and_molecules_quiz.html',",
		"'11. Sound': './science/physics/sound_quiz.html',",
		startMarker + "\n       const quizLinkMap = {\n",
		"       };\n        " + endMarker + "\n</script></body></html>\n",
	} {
		if !strings.Contains(host, want) {
			t.Errorf("host missing %q:\n%s", want, host)
		}
	}
	if strings.Contains(host, "old_matter") {
		t.Errorf("stale chemistry link kept:\n%s", host)
	}
	if len(report.Linked) != 2 {
		t.Errorf("len(Linked) = %d, want 2", len(report.Linked))
	}

	// Only the chapter without a table in the manifest falls back.
	if len(report.Warnings) != 1 {
		t.Fatalf("Warnings = %q, want one table fallback warning", report.Warnings)
	}
	w := report.Warnings[0]
	if !strings.HasPrefix(w, "3. Atoms and Molecules: ") || !strings.Contains(w, `using "atoms_and_molecules"`) {
		t.Errorf("warning = %q, want the atoms chapter table fallback", w)
	}
}

func TestRunBatch_LogsTableFallback(t *testing.T) {
	root := setupSite(t, sentinelHost)
	core, logs := observer.New(zapcore.WarnLevel)

	if _, err := RunBatch(chemistryBatch(root), zap.New(core)); err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	entries := logs.FilterField(zap.String("chapter", "3. Atoms and Molecules")).All()
	if len(entries) != 1 || !strings.Contains(entries[0].Message, "no table name configured") {
		t.Errorf("warn entries for atoms chapter = %+v, want one table fallback", entries)
	}
	if n := logs.FilterField(zap.String("chapter", "1. Matter in Our Surroundings")).Len(); n != 0 {
		t.Errorf("got %d warnings for a chapter with a table, want 0", n)
	}
}

func TestRunBatch_RegionMissing(t *testing.T) {
	noMap := "<html><body>no map here</body></html>\n"
	root := setupSite(t, noMap)

	report, err := RunBatch(chemistryBatch(root), nil)
	if !errors.Is(err, linkmap.ErrRegionNotFound) {
		t.Fatalf("error = %v, want ErrRegionNotFound", err)
	}

	if len(report.Generated) != 2 {
		t.Errorf("len(Generated) = %d, want 2", len(report.Generated))
	}
	if len(report.Unlinked) != 2 {
		t.Errorf("len(Unlinked) = %d, want 2", len(report.Unlinked))
	}
	if got := readFile(t, filepath.Join(root, "science.html")); got != noMap {
		t.Errorf("host changed:\n%s", got)
	}
}

func TestRunBatch_ChapterFailureContinues(t *testing.T) {
	root := setupSite(t, sentinelHost)
	existing := filepath.Join(root, "science", "chemistry", "atoms_and_molecules_quiz.html")
	writeFile(t, existing, "keep me")

	report, err := RunBatch(chemistryBatch(root), nil)
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	if len(report.Failed) != 1 || report.Failed[0].Label != "3. Atoms and Molecules" {
		t.Errorf("Failed = %+v, want the atoms chapter", report.Failed)
	}
	if got := readFile(t, existing); got != "keep me" {
		t.Error("existing page overwritten without force")
	}
	if len(report.Linked) != 1 {
		t.Errorf("len(Linked) = %d, want 1", len(report.Linked))
	}
}

func TestRunBatch_MissingTemplate(t *testing.T) {
	root := setupSite(t, sentinelHost)
	b := chemistryBatch(root)
	b.Template = "nope.html"

	_, err := RunBatch(b, nil)
	if !errors.Is(err, linkmap.ErrSourceFileMissing) {
		t.Errorf("error = %v, want ErrSourceFileMissing", err)
	}
}

func TestTargetFor(t *testing.T) {
	b := &manifest.Batch{Host: "science.html", MapName: "navMap", Dir: "site"}

	got := TargetFor(b)
	want := Target{Host: filepath.Join("site", "science.html"), MapName: "navMap"}
	if got != want {
		t.Errorf("TargetFor() = %+v, want %+v", got, want)
	}
}
