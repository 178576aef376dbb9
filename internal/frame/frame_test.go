package frame

import (
	"testing"

	"github.com/asnimansari/nmea/internal/nmea"
)

func TestParse(t *testing.T) {
	s, err := Parse("$SDDBS,7.8,f,2.4,M,1.3,F*0A\r\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.TalkerID != "SD" {
		t.Fatalf("talker mismatch: %s", s.TalkerID)
	}
	if s.MessageID != nmea.DBS {
		t.Fatalf("unexpected message id %s", s.MessageID)
	}
	if s.Data != "7.8,f,2.4,M,1.3,F" {
		t.Fatalf("data mismatch: %q", s.Data)
	}
	if !s.HasChecksum || s.Checksum != 0x0A {
		t.Fatalf("checksum mismatch: %v 0x%02X", s.HasChecksum, s.Checksum)
	}
	if got := s.ChecksumString(); got != "0A" {
		t.Fatalf("checksum string mismatch: %s", got)
	}
}

func TestParseWithoutChecksum(t *testing.T) {
	s, err := Parse("$SDDBT,,f,22.5,M,,F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.HasChecksum || s.ChecksumString() != "" {
		t.Fatalf("unexpected checksum on %q", s.Raw)
	}
	if s.MessageID != nmea.DBT || s.Data != ",f,22.5,M,,F" {
		t.Fatalf("unexpected sentence %+v", s)
	}
}

func TestParseUnknownAndProprietary(t *testing.T) {
	s, err := Parse("$IIXYZ,1,2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.MessageID != nmea.Unknown || s.Header != "IIXYZ" {
		t.Fatalf("unexpected sentence %+v", s)
	}

	p, err := Parse("$PGRME,15.0,M,45.0,M,25.0,M*1C")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.TalkerID != "P" || p.MessageID != nmea.Unknown {
		t.Fatalf("unexpected proprietary sentence %+v", p)
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"SDDBS,7.8,f,2.4,M,1.3,F",
		"$SDDBS",
		"$DB,1",
		"$SDDBS,7.8,f*0",
		"$SDDBS,7.8,f*ZZ",
	} {
		if _, err := Parse(line); err == nil {
			t.Fatalf("expected error for %q", line)
		}
	}
}
