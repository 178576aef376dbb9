package dbs

import (
	"github.com/asnimansari/nmea/internal/frame"
	"github.com/asnimansari/nmea/internal/nmea"
)

// Data holds one Depth Below Surface report. Sensors often leave some of
// the three readings empty, so each one is optional and they are not
// checked against each other.
//
//	$--DBS,x.x,f,x.x,M,x.x,F*hh
//	       |   | |   | |   |
//	       |   | |   | |   fathoms unit
//	       |   | |   | depth, fathoms
//	       |   | |   meters unit
//	       |   | depth, meters
//	       |   feet unit
//	       depth, feet
type Data struct {
	WaterDepthFeet    *float32
	WaterDepthMeters  *float32
	WaterDepthFathoms *float32
}

// depthFields lists the unit literal that must follow each reading.
var depthFields = [3]byte{'f', 'M', 'F'}

// Parse decodes a DBS sentence. Sentences with any other message id are
// rejected before the payload is read.
func Parse(s frame.Sentence) (Data, error) {
	if s.MessageID != nmea.DBS {
		return Data{}, &nmea.WrongSentenceHeaderError{
			Expected: nmea.DBS,
			Found:    s.MessageID,
		}
	}
	return ParsePayload(s.Data)
}

// ParsePayload decodes the data fields of a DBS sentence. Anything after
// the third unit literal is ignored.
func ParsePayload(payload string) (Data, error) {
	c := nmea.NewCursor(payload)
	var values [3]*float32
	for i, unit := range depthFields {
		if i > 0 {
			if err := c.Char(','); err != nil {
				return Data{}, err
			}
		}
		v, err := c.OptFloat32()
		if err != nil {
			return Data{}, err
		}
		if err := c.Char(','); err != nil {
			return Data{}, err
		}
		if err := c.Char(unit); err != nil {
			return Data{}, err
		}
		values[i] = v
	}
	return Data{
		WaterDepthFeet:    values[0],
		WaterDepthMeters:  values[1],
		WaterDepthFathoms: values[2],
	}, nil
}
