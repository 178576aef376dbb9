package nmea

import (
	"context"

	internalopts "github.com/asnimansari/nmea/internal/options"
)

// AnalyzeOptions configures parsing.
type AnalyzeOptions struct {
	// Only limits decoding to a comma-separated list of message ids,
	// e.g. "DBS,DBT". Other sentences are reported as skipped.
	Only string
}

func (opts AnalyzeOptions) toInternal(ctx context.Context) (context.Context, error) {
	ids, err := internalopts.ParseSentenceFilter(opts.Only)
	if err != nil {
		return ctx, err
	}
	return internalopts.WithSentenceFilter(ctx, ids), nil
}
