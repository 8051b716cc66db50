package linker

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/quizgen-labs/quizgen/internal/linkmap"
	"github.com/quizgen-labs/quizgen/internal/manifest"
	"github.com/quizgen-labs/quizgen/internal/quiz"
	"go.uber.org/zap"
)

// ChapterError records a chapter whose page could not be generated.
type ChapterError struct {
	Label string
	Err   error
}

func (e ChapterError) Error() string { return fmt.Sprintf("%s: %v", e.Label, e.Err) }

// BatchReport summarizes a batch run.
type BatchReport struct {
	Generated []*quiz.Result
	Failed    []ChapterError
	// Linked holds the entries written to the map; Unlinked holds entries
	// for generated pages that could not be applied.
	Linked   []linkmap.Entry
	Unlinked []linkmap.Entry
	// Malformed lists existing map segments dropped while rewriting.
	Malformed []string
	// Warnings are per-chapter notes, prefixed with the chapter label.
	Warnings []string
}

// tableOverrides maps chapter names, without their ordinal, to the tables the
// manifest names for them.
func tableOverrides(chapters []manifest.Chapter) map[string]string {
	tables := make(map[string]string, len(chapters))
	for _, ch := range chapters {
		if ch.Table != "" {
			tables[quiz.StripOrdinal(ch.Label)] = ch.Table
		}
	}
	return tables
}

// TargetFor returns the host target described by a batch manifest.
func TargetFor(b *manifest.Batch) Target {
	t := Target{Host: b.Resolve(b.Host), MapName: b.MapName}
	if b.Markers != nil {
		t.StartMarker = b.Markers.Start
		t.EndMarker = b.Markers.End
	}
	return t
}

// RunBatch generates every chapter page of b and then links them in a single
// map update. A chapter that fails is recorded and skipped. When the map
// region is missing the pages stay written, their links are reported as
// unlinked, and an error wrapping linkmap.ErrRegionNotFound is returned.
func RunBatch(b *manifest.Batch, log *zap.Logger) (*BatchReport, error) {
	if log == nil {
		log = zap.NewNop()
	}
	target := TargetFor(b)

	outDir := b.OutputDir
	if outDir == "" {
		outDir = "."
	}

	in, err := quiz.NewInstantiator(b.Resolve(b.Template), quiz.Options{
		OutputDir:          b.Resolve(outDir),
		LinkBase:           filepath.Dir(target.Host),
		InjectScoreLogging: b.InjectScoreLogging,
		Force:              b.Force,
	})
	if err != nil {
		return nil, err
	}

	report := &BatchReport{}
	links := linkmap.NewMap()
	tables := tableOverrides(b.Chapters)

	warn := func(label, msg string) {
		log.Warn(msg, zap.String("chapter", label))
		report.Warnings = append(report.Warnings, label+": "+msg)
	}

	for _, ch := range b.Chapters {
		page, warnings := quiz.NewPage(ch.Label, tables)
		if ch.Table != "" {
			page.Table = ch.Table
		}
		for _, w := range warnings {
			warn(ch.Label, w)
		}
		if ch.File != "" {
			page.FileName = quiz.EnsureHTMLExt(ch.File)
		}

		res, err := in.Generate(page)
		if err != nil {
			log.Warn("skipping chapter", zap.String("chapter", ch.Label), zap.Error(err))
			report.Failed = append(report.Failed, ChapterError{Label: ch.Label, Err: err})
			continue
		}
		for _, w := range res.Warnings {
			warn(ch.Label, w)
		}

		log.Info("generated quiz page",
			zap.String("chapter", ch.Label),
			zap.String("path", res.OutputPath),
			zap.String("table", page.Table))
		report.Generated = append(report.Generated, res)
		links.Set(res.Link.Label, res.Link.Path)
	}

	if links.Len() == 0 {
		return report, fmt.Errorf("no pages generated")
	}

	res, err := target.synchronizer(linkmap.PathContains(b.Exclude), log).UpdateFile(target.Host, links)
	if err != nil {
		report.Unlinked = links.Sorted()
		if errors.Is(err, linkmap.ErrRegionNotFound) {
			log.Warn("navigation map not updated", zap.String("host", target.Host), zap.Error(err))
		}
		return report, fmt.Errorf("linking %d generated pages: %w", links.Len(), err)
	}

	report.Linked = links.Sorted()
	report.Malformed = res.Malformed
	return report, nil
}
