package dbs

import (
	"context"

	"github.com/asnimansari/nmea/internal/driver"
	"github.com/asnimansari/nmea/internal/frame"
	"github.com/asnimansari/nmea/internal/nmea"
)

func init() {
	driver.Register(nmea.DBS, Driver{})
}

// Driver exposes the DBS decoder through the driver registry.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "dbs" }

// Process decodes the sentence and flattens the readings into a field map.
// Readings the sensor left empty are omitted.
func (Driver) Process(_ context.Context, s *frame.Sentence) (map[string]any, error) {
	data, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{
		"sentence":  s.MessageID.String(),
		"talker_id": s.TalkerID,
	}
	putDepth(fields, "water_depth_feet", data.WaterDepthFeet)
	putDepth(fields, "water_depth_meters", data.WaterDepthMeters)
	putDepth(fields, "water_depth_fathoms", data.WaterDepthFathoms)
	return fields, nil
}

func putDepth(fields map[string]any, key string, v *float32) {
	if v != nil {
		fields[key] = float64(*v)
	}
}
