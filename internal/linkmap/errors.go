package linkmap

import "errors"

var (
	// ErrRegionNotFound means the map region markers are missing or out of
	// order. Nothing is written; callers should warn and carry on.
	ErrRegionNotFound = errors.New("link map region not found")

	// ErrSourceFileMissing means the host document could not be read.
	ErrSourceFileMissing = errors.New("host document missing")

	// ErrWriteFailed means the updated host document could not be written.
	// The original file is left untouched.
	ErrWriteFailed = errors.New("writing host document failed")
)
