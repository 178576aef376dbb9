package nmea

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/asnimansari/nmea/internal/driver"
	"github.com/asnimansari/nmea/internal/driver/dbs"
	"github.com/asnimansari/nmea/internal/frame"
	inmea "github.com/asnimansari/nmea/internal/nmea"
	internalopts "github.com/asnimansari/nmea/internal/options"
)

// Driver names reported for sentences that were not decoded.
const (
	DriverUnknown = "unknown"
	DriverSkipped = "skipped"
)

type (
	// DBSData is a decoded Depth Below Surface report.
	DBSData = dbs.Data
	// SentenceType identifies the message id of a sentence.
	SentenceType = inmea.SentenceType
	// WrongSentenceHeaderError reports a sentence handed to the wrong decoder.
	WrongSentenceHeaderError = inmea.WrongSentenceHeaderError
	// SyntaxError reports where a payload stopped matching its grammar.
	SyntaxError = inmea.SyntaxError
)

var (
	ErrWrongSentenceHeader = inmea.ErrWrongSentenceHeader
	ErrSyntax              = inmea.ErrSyntax
)

// Result captures the outcome of AnalyzeLine.
type Result struct {
	Driver   string
	Raw      string
	TalkerID string
	Sentence SentenceType
	Checksum string
	Fields   map[string]any
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"driver":    r.Driver,
		"raw":       r.Raw,
		"talker_id": r.TalkerID,
		"sentence":  r.Sentence.String(),
	}
	if r.Checksum != "" {
		summary["checksum"] = r.Checksum
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("driver: %s sentence:%s raw:%s (marshal error: %v)", r.Driver, r.Sentence, r.Raw, err)
	}
	return string(data)
}

// AnalyzeLine frames a raw sentence, selects a driver and returns the
// decoded fields.
func AnalyzeLine(ctx context.Context, raw string) (Result, error) {
	return AnalyzeLineWithOptions(ctx, raw, AnalyzeOptions{})
}

// AnalyzeLineWithOptions analyzes a raw sentence with custom options.
// Sentences without a registered driver are reported with the "unknown"
// driver and no error.
func AnalyzeLineWithOptions(ctx context.Context, raw string, opts AnalyzeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	s, err := frame.Parse(raw)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Driver:   DriverUnknown,
		Raw:      s.Raw,
		TalkerID: s.TalkerID,
		Sentence: s.MessageID,
		Checksum: s.ChecksumString(),
	}
	if !internalopts.Allowed(ctx, s.MessageID) {
		result.Driver = DriverSkipped
		return result, nil
	}

	drv, err := driver.Lookup(s.MessageID)
	if err != nil {
		return result, nil
	}
	result.Driver = drv.Name()
	fields, err := drv.Process(ctx, &s)
	if err != nil {
		return result, fmt.Errorf("%s: %w", drv.Name(), err)
	}
	result.Fields = fields
	return result, nil
}

// DecodeDBS decodes the data payload of a DBS sentence, i.e. everything
// between "$--DBS," and the checksum.
func DecodeDBS(payload string) (DBSData, error) {
	return dbs.ParsePayload(payload)
}

// ParseDBS frames a raw line and decodes it as a DBS sentence.
func ParseDBS(raw string) (DBSData, error) {
	s, err := frame.Parse(raw)
	if err != nil {
		return DBSData{}, err
	}
	return dbs.Parse(s)
}
