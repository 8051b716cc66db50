package linker

import (
	"fmt"

	"github.com/quizgen-labs/quizgen/internal/linkmap"
	"github.com/quizgen-labs/quizgen/internal/quiz"
	"go.uber.org/zap"
)

// AddLink points label at path in the target's map, replacing any existing
// entry for label. A bare relative path gets a "./" prefix.
func AddLink(t Target, label, path string, log *zap.Logger) (*linkmap.Result, error) {
	if label == "" {
		return nil, fmt.Errorf("chapter label is empty")
	}
	if path == "" {
		return nil, fmt.Errorf("link path for %q is empty", label)
	}

	entry := linkmap.Entry{Label: label, Path: quiz.LinkPath(path)}
	res, err := t.synchronizer(nil, log).UpdateFile(t.Host, linkmap.FromEntries(entry))
	if err != nil {
		return res, fmt.Errorf("applying link %q -> %q: %w", entry.Label, entry.Path, err)
	}
	return res, nil
}

// RemoveLinks drops the entries for labels from the target's map. Labels not
// present are ignored.
func RemoveLinks(t Target, labels []string, log *zap.Logger) (*linkmap.Result, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no chapter labels given")
	}

	res, err := t.synchronizer(linkmap.LabelIs(labels...), log).UpdateFile(t.Host, nil)
	if err != nil {
		return res, fmt.Errorf("removing links: %w", err)
	}
	return res, nil
}

// List returns the target's map entries sorted by label.
func List(t Target) ([]linkmap.Entry, error) {
	m, err := t.synchronizer(nil, nil).ReadFile(t.Host)
	if err != nil {
		return nil, err
	}
	return m.Sorted(), nil
}
