package linker

import (
	"github.com/quizgen-labs/quizgen/internal/linkmap"
	"go.uber.org/zap"
)

// Target identifies a host page and how its navigation map is delimited.
type Target struct {
	Host    string
	MapName string
	// StartMarker and EndMarker select sentinel lines around the map. When
	// either is empty the map is located by its declaration.
	StartMarker string
	EndMarker   string
}

// Locator returns the region locator for the target.
func (t Target) Locator() linkmap.Locator {
	if t.StartMarker != "" && t.EndMarker != "" {
		return linkmap.Sentinels{Start: t.StartMarker, End: t.EndMarker, Name: t.MapName}
	}
	return linkmap.Declaration{Name: t.MapName}
}

func (t Target) synchronizer(exclude linkmap.Predicate, log *zap.Logger) *linkmap.Synchronizer {
	return &linkmap.Synchronizer{
		Locator: t.Locator(),
		Exclude: exclude,
		Logger:  log,
	}
}
