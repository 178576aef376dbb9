package options

import (
	"context"
	"fmt"
	"strings"

	"github.com/asnimansari/nmea/internal/nmea"
)

type contextKey struct{}

// WithSentenceFilter stores the set of message ids to decode inside the
// context. An empty filter leaves the context untouched.
func WithSentenceFilter(ctx context.Context, ids []nmea.SentenceType) context.Context {
	if len(ids) == 0 {
		return ctx
	}
	set := make(map[nmea.SentenceType]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return context.WithValue(ctx, contextKey{}, set)
}

// Allowed reports whether the sentence type passes the filter stored in
// ctx. Without a filter every type is allowed.
func Allowed(ctx context.Context, id nmea.SentenceType) bool {
	set, ok := ctx.Value(contextKey{}).(map[nmea.SentenceType]struct{})
	if !ok {
		return true
	}
	_, ok = set[id]
	return ok
}

// ParseSentenceFilter validates a comma-separated list of message ids
// such as "DBS,DBT".
func ParseSentenceFilter(input string) ([]nmea.SentenceType, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	var ids []nmea.SentenceType
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, ok := nmea.ParseSentenceType(part)
		if !ok {
			return nil, fmt.Errorf("unknown sentence type %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
