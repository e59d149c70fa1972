package generator

import (
	"context"
	"errors"

	"dcofeed/internal/feed"
	"dcofeed/internal/sink"
)

// Hint maps a generation failure to the next step a user should take.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, feed.ErrConfiguration):
		return "fix the campaign file; run 'dcofeed campaign validate' to recheck"
	case errors.Is(err, sink.ErrExists):
		return "pass --overwrite or set output.overwrite = true"
	case errors.Is(err, sink.ErrLocked):
		return "another dcofeed run is writing this artifact; wait for it to finish"
	case errors.Is(err, sink.ErrUnsupportedFormat):
		return "choose a supported --format"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "run was interrupted; rerun to regenerate the artifact"
	default:
		return "check logs for details"
	}
}
