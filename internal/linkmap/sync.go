package linkmap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/quizgen-labs/quizgen/internal/platform"
	"go.uber.org/zap"
)

// Synchronizer rewrites the navigation map of a host document. It holds no
// state between calls; concurrent writers to the same file are not guarded
// against.
type Synchronizer struct {
	Locator Locator
	// Exclude drops stale existing entries before the batch is merged in.
	// Nil keeps everything.
	Exclude Predicate
	Logger  *zap.Logger
}

// Result describes one synchronization.
type Result struct {
	// Document is the full updated host document, or the input unchanged
	// when the region was not found.
	Document string
	// Map is the map that was written.
	Map *Map
	// Malformed lists existing segments dropped because they did not parse.
	Malformed []string
	// Changed reports whether Document differs from the input.
	Changed bool
}

func (s *Synchronizer) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Synchronizer) locator() Locator {
	if s.Locator == nil {
		return Declaration{Name: DefaultName}
	}
	return s.Locator
}

// Read parses the map currently held by doc.
func (s *Synchronizer) Read(doc string) (*Map, []string, error) {
	region, err := s.locator().Locate(doc)
	if err != nil {
		return nil, nil, err
	}
	m, malformed := Parse(region.Body)
	return m, malformed, nil
}

// Apply merges batch into the map held by doc and returns the updated
// document. On ErrRegionNotFound the returned Result carries doc unmodified.
func (s *Synchronizer) Apply(doc string, batch *Map) (*Result, error) {
	log := s.logger()

	region, err := s.locator().Locate(doc)
	if err != nil {
		return &Result{Document: doc}, err
	}

	existing, malformed := Parse(region.Body)
	for _, seg := range malformed {
		log.Debug("skipping malformed link map entry", zap.String("segment", seg))
	}

	kept := Filter(existing, s.Exclude)
	if dropped := existing.Len() - kept.Len(); dropped > 0 {
		log.Debug("dropped excluded entries", zap.Int("count", dropped))
	}

	merged := Merge(kept, batch)
	out := Commit(doc, region, Serialize(region.Name, region.Indent, merged))

	return &Result{
		Document:  out,
		Map:       merged,
		Malformed: malformed,
		Changed:   out != doc,
	}, nil
}

// ReadFile parses the map held by the host document at path.
func (s *Synchronizer) ReadFile(path string) (*Map, error) {
	data, err := readHost(path)
	if err != nil {
		return nil, err
	}
	m, _, err := s.Read(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// UpdateFile applies batch to the host document at path and writes it back
// atomically. The file is not touched when the region is missing or when the
// map is already up to date.
func (s *Synchronizer) UpdateFile(path string, batch *Map) (*Result, error) {
	data, err := readHost(path)
	if err != nil {
		return nil, err
	}

	res, err := s.Apply(string(data), batch)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	if !res.Changed {
		s.logger().Debug("link map already up to date", zap.String("path", path))
		return res, nil
	}

	if err := platform.WriteFileAtomic(path, []byte(res.Document), 0644); err != nil {
		return res, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	s.logger().Debug("wrote link map",
		zap.String("path", path),
		zap.Int("entries", res.Map.Len()))
	return res, nil
}

func readHost(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceFileMissing, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceFileMissing, err)
	}
	return data, nil
}
